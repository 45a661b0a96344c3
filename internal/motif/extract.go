package motif

import (
	"log/slog"
	"sort"

	"github.com/tonefold/motive/internal/score"
)

// Params controls extraction.
type Params struct {
	BarLength float64 // window length in beats
	MinNotes  int     // minimum notes for a window to qualify
	MaxMotifs int     // cap across the whole file
}

// DefaultParams returns the extraction defaults: one 4-beat bar per window,
// at least two notes, at most 200 motifs per file.
func DefaultParams() Params {
	return Params{BarLength: 4, MinNotes: 2, MaxMotifs: 200}
}

func (p Params) withDefaults() Params {
	d := DefaultParams()
	if p.BarLength <= 0 {
		p.BarLength = d.BarLength
	}
	if p.MinNotes <= 0 {
		p.MinNotes = d.MinNotes
	}
	if p.MaxMotifs <= 0 {
		p.MaxMotifs = d.MaxMotifs
	}
	return p
}

// timedNote is a note lifted to absolute file time for windowing.
type timedNote struct {
	start float64
	note  score.Note
}

// Extract slides a bar-length window across every non-percussion track and
// emits a motif for each window holding at least MinNotes notes, until
// MaxMotifs have been emitted for the file. Motifs are deduplicated by
// pitch-pattern hash, first occurrence wins: melodically identical but
// differently voiced windows collapse to one entry, which is an accepted
// lossy simplification.
//
// A set flagged as an upstream load failure contributes zero motifs; that is
// logged, not raised, so batch processing of other files continues.
func Extract(set score.BarSet, params Params) []Motif {
	if set.Error {
		slog.Warn("source failed to load, contributing no motifs",
			"tenant", set.TenantID, "file", set.FileID)
		return nil
	}
	params = params.withDefaults()

	barDur := params.BarLength * 60.0 / set.Tempo()
	seen := make(map[string]bool)
	var motifs []Motif

	for _, track := range set.Tracks {
		if track.IsPercussion {
			continue
		}
		if len(motifs) >= params.MaxMotifs {
			break
		}
		extracted, err := extractTrack(set.FileID, track, barDur, params, seen, params.MaxMotifs-len(motifs))
		if err != nil {
			slog.Warn("track extraction failed", "file", set.FileID,
				"instrument", track.InstrumentIndex, "err", err)
			continue
		}
		motifs = append(motifs, extracted...)
	}
	return motifs
}

func extractTrack(fileID string, track score.Track, barDur float64, params Params, seen map[string]bool, budget int) ([]Motif, error) {
	notes := flatten(track.Bars)
	if len(notes) == 0 {
		return nil, nil
	}
	trackEnd := notes[len(notes)-1].start + notes[len(notes)-1].note.Duration

	var motifs []Motif
	for w := 0; float64(w)*barDur < trackEnd && len(motifs) < budget; w++ {
		ws := float64(w) * barDur
		we := ws + barDur

		var window []score.Note
		for _, tn := range notes {
			if tn.start >= ws && tn.start < we {
				n := tn.note
				n.Start = tn.start - ws
				window = append(window, n)
			}
		}
		if len(window) < params.MinNotes {
			continue
		}

		m, err := build(fileID, track.InstrumentIndex, w, window, barDur)
		if err != nil {
			return nil, err
		}
		if seen[m.PitchPatternHash] {
			continue
		}
		seen[m.PitchPatternHash] = true
		motifs = append(motifs, m)
	}
	return motifs, nil
}

// flatten lifts bar-relative notes to absolute time and sorts them.
func flatten(bars []score.Bar) []timedNote {
	var notes []timedNote
	for _, bar := range bars {
		for _, n := range bar.Notes {
			notes = append(notes, timedNote{start: bar.StartSec + n.Start, note: n})
		}
	}
	sort.SliceStable(notes, func(i, j int) bool {
		if notes[i].start != notes[j].start {
			return notes[i].start < notes[j].start
		}
		return notes[i].note.Pitch < notes[j].note.Pitch
	})
	return notes
}

func build(fileID string, instrument, barIndex int, notes []score.Note, duration float64) (Motif, error) {
	pitches := make([]int, len(notes))
	for i, n := range notes {
		pitches[i] = n.Pitch
	}
	patternHash, err := score.PitchPatternHash(pitches)
	if err != nil {
		return Motif{}, err
	}
	id, err := score.HashCanonical(score.DomainMotif, map[string]any{
		"source_file":        fileID,
		"instrument_index":   instrument,
		"bar_index":          barIndex,
		"pitch_pattern_hash": patternHash,
	})
	if err != nil {
		return Motif{}, err
	}

	return Motif{
		ID:               id,
		SourceFile:       fileID,
		InstrumentIndex:  instrument,
		BarIndex:         barIndex,
		PitchPatternHash: patternHash,
		Notes:            notes,
		Metadata:         describe(notes, duration),
		Label:            Unlabeled,
	}, nil
}

func describe(notes []score.Note, duration float64) Metadata {
	meta := Metadata{NoteCount: len(notes), Duration: duration, LowestPitch: 127}
	var velSum int
	for _, n := range notes {
		velSum += n.Velocity
		if n.Pitch < meta.LowestPitch {
			meta.LowestPitch = n.Pitch
		}
		if n.Pitch > meta.HighestPitch {
			meta.HighestPitch = n.Pitch
		}
	}
	if len(notes) > 0 {
		meta.AvgVelocity = velSum / len(notes)
		meta.PitchRange = meta.HighestPitch - meta.LowestPitch
	} else {
		meta.LowestPitch = 0
	}
	if duration > 0 {
		meta.NoteDensity = float64(len(notes)) / duration
	}
	return meta
}
