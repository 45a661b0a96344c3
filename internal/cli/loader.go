package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/tonefold/motive/internal/score"
)

// loadBarSet reads one bar-source JSON file. The bar source itself (MIDI or
// DAW export tooling) is an external collaborator; this CLI consumes its
// already-extracted output.
func loadBarSet(path string) (score.BarSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return score.BarSet{}, fmt.Errorf("read bar set: %w", err)
	}
	var set score.BarSet
	if err := json.Unmarshal(data, &set); err != nil {
		return score.BarSet{}, fmt.Errorf("parse bar set %s: %w", path, err)
	}
	if set.FileID == "" {
		set.FileID = path
	}
	return set, nil
}

// parseMetrics turns key=value pairs into a metrics vector.
func parseMetrics(pairs []string) (map[string]float64, error) {
	metrics := make(map[string]float64, len(pairs))
	for _, pair := range pairs {
		key, raw, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("bad metric %q: want key=value", pair)
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("bad metric %q: %w", pair, err)
		}
		metrics[key] = value
	}
	return metrics, nil
}
