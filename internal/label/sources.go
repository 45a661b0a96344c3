// Package label merges externally supplied bar-level momentum labels onto
// bar collections and projects them onto the motif catalog. It never invents
// labels: everything here is a pure merge of what an annotator provided.
package label

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/tonefold/motive/internal/score"
)

// BarLabel is one externally supplied label for a bar.
type BarLabel struct {
	BarIndex    int    `json:"bar_index"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// Reserved marker prefixes. A marker event whose text starts with one of
// these carries a label; all other markers are ignored.
const (
	markerPrefixMomentum = "MOMENTUM_"
	markerPrefixLabel    = "LABEL:"
)

// ParseManualCSV reads a `bar_index,label,description` file. Rows starting
// with '#' are comments. A literal header row is tolerated and skipped.
func ParseManualCSV(r io.Reader) ([]BarLabel, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var labels []BarLabel
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse label csv: %w", err)
		}
		if len(record) < 2 {
			return nil, fmt.Errorf("parse label csv: row %v needs at least bar_index and label", record)
		}
		if record[0] == "bar_index" {
			continue
		}
		idx, err := strconv.Atoi(strings.TrimSpace(record[0]))
		if err != nil {
			return nil, fmt.Errorf("parse label csv: bad bar_index %q: %w", record[0], err)
		}
		bl := BarLabel{BarIndex: idx, Label: strings.TrimSpace(record[1])}
		if len(record) > 2 {
			bl.Description = strings.TrimSpace(record[2])
		}
		labels = append(labels, bl)
	}
	return labels, nil
}

// FromMarkers maps embedded marker events onto approximate bar indexes.
// The bar index is the marker time divided by the nominal bar duration,
// clamped to the file's bar range.
func FromMarkers(set score.BarSet) []BarLabel {
	if len(set.Markers) == 0 {
		return nil
	}
	barDur := 4 * 60.0 / set.Tempo()

	var labels []BarLabel
	for _, m := range set.Markers {
		lbl, desc, ok := parseMarkerText(m.Text)
		if !ok {
			continue
		}
		idx := int(math.Floor(m.TimeSec / barDur))
		if max := set.TotalBars - 1; max >= 0 && idx > max {
			idx = max
		}
		if idx < 0 {
			idx = 0
		}
		labels = append(labels, BarLabel{BarIndex: idx, Label: lbl, Description: desc})
	}
	return labels
}

func parseMarkerText(text string) (label, description string, ok bool) {
	text = strings.TrimSpace(text)
	switch {
	case strings.HasPrefix(text, markerPrefixLabel):
		rest := strings.TrimSpace(strings.TrimPrefix(text, markerPrefixLabel))
		if rest == "" {
			return "", "", false
		}
		label, description, _ = strings.Cut(rest, " ")
		return label, strings.TrimSpace(description), true
	case strings.HasPrefix(text, markerPrefixMomentum):
		label, description, _ = strings.Cut(text, " ")
		return label, strings.TrimSpace(description), true
	default:
		return "", "", false
	}
}
