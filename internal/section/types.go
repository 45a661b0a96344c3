package section

// TokenType distinguishes note boundary events in a token sequence.
type TokenType string

const (
	NoteOn  TokenType = "NOTE_ON"
	NoteOff TokenType = "NOTE_OFF"
)

// Token is one event in a section's ordered token sequence. Time is relative
// to the section start so that identical musical content produces identical
// tokens regardless of where in the piece it occurred.
type Token struct {
	Type     TokenType `json:"type"`
	Pitch    int       `json:"pitch"`
	Velocity int       `json:"velocity"`
	Time     float64   `json:"time"`
}

// Aggregate holds per-section descriptive metadata.
type Aggregate struct {
	NoteCount   int     `json:"note_count"`
	AvgPitch    float64 `json:"avg_pitch"`
	AvgVelocity float64 `json:"avg_velocity"`
	AvgBPM      float64 `json:"avg_bpm"`
	PitchRange  int     `json:"pitch_range"`
	Duration    float64 `json:"duration"`
}

// Section is a fixed-size group of consecutive bars reduced to a token
// sequence. Index is the group's position in the file; it does not
// participate in the content hash.
type Section struct {
	Index       int       `json:"index"`
	Tokens      []Token   `json:"tokens"`
	BarsCovered int       `json:"bars_covered"`
	GroupSize   int       `json:"group_size"`
	Hash        string    `json:"hash"`
	Meta        Aggregate `json:"meta"`
}

// Set is the tokenizer output. When Error is true an upstream failure was
// passed through and only TenantID/FileID are meaningful. TotalSections
// counts every group formed; UniqueSections counts groups surviving dedup
// and always equals len(Sections).
type Set struct {
	Error          bool      `json:"error"`
	TenantID       string    `json:"tenant_id"`
	FileID         string    `json:"file_id"`
	TotalSections  int       `json:"total_sections"`
	UniqueSections int       `json:"unique_sections"`
	Sections       []Section `json:"sections"`
}

// DefaultSize is the number of bars per section.
const DefaultSize = 4
