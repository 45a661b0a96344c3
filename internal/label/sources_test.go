package label

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tonefold/motive/internal/score"
)

func TestParseManualCSV(t *testing.T) {
	input := `# annotator: jo, 2026-08-12
bar_index,label,description
0,MOMENTUM_POS,strong opening
# mid-song notes below
4,MOMENTUM_NEG,energy drop
9,STEADY
`
	labels, err := ParseManualCSV(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, labels, 3)
	assert.Equal(t, BarLabel{BarIndex: 0, Label: "MOMENTUM_POS", Description: "strong opening"}, labels[0])
	assert.Equal(t, BarLabel{BarIndex: 4, Label: "MOMENTUM_NEG", Description: "energy drop"}, labels[1])
	assert.Equal(t, BarLabel{BarIndex: 9, Label: "STEADY"}, labels[2])
}

func TestParseManualCSV_BadBarIndex(t *testing.T) {
	_, err := ParseManualCSV(strings.NewReader("abc,MOMENTUM_POS,x\n"))
	assert.Error(t, err)
}

func TestFromMarkers_ReservedPrefixesOnly(t *testing.T) {
	set := score.BarSet{
		BPM:       120, // 2-second bars
		TotalBars: 8,
		Markers: []score.Marker{
			{Text: "MOMENTUM_POS big lift", TimeSec: 0.5},
			{Text: "verse 2 starts here", TimeSec: 4.0}, // not a label
			{Text: "LABEL:STEADY holding pattern", TimeSec: 9.1},
		},
	}
	labels := FromMarkers(set)

	require.Len(t, labels, 2)
	assert.Equal(t, BarLabel{BarIndex: 0, Label: "MOMENTUM_POS", Description: "big lift"}, labels[0])
	assert.Equal(t, BarLabel{BarIndex: 4, Label: "STEADY", Description: "holding pattern"}, labels[1])
}

func TestFromMarkers_ClampsToBarRange(t *testing.T) {
	set := score.BarSet{
		BPM:       120,
		TotalBars: 4,
		Markers:   []score.Marker{{Text: "MOMENTUM_NEG fade", TimeSec: 500}},
	}
	labels := FromMarkers(set)
	require.Len(t, labels, 1)
	assert.Equal(t, 3, labels[0].BarIndex)
}
