package motif

import (
	"encoding/json"
	"fmt"
	"os"
)

// NewCatalog returns an empty catalog at the current version.
func NewCatalog() *Catalog {
	return &Catalog{
		Version:    CurrentVersion,
		Categories: make(map[string][]string),
	}
}

// LoadCatalog reads a catalog file wholesale. A missing file is not an
// error: label propagation over a fresh deployment starts from an empty
// catalog.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return NewCatalog(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	var cat Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	if cat.Categories == nil {
		cat.Categories = make(map[string][]string)
	}
	return &cat, nil
}

// Save rewrites the catalog file wholesale. Callers are responsible for
// serializing concurrent writers; the catalog is a value, not a shared
// object.
func (c *Catalog) Save(path string) error {
	c.TotalMotifs = len(c.Motifs)
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("save catalog: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("save catalog %s: %w", path, err)
	}
	return nil
}

// Append adds newly extracted motifs from one source file, skipping any
// whose pitch pattern is already cataloged, then rebuilds the category
// indexes and training metadata. Existing entries are never removed.
func (c *Catalog) Append(fileID string, motifs []Motif) int {
	known := make(map[string]bool, len(c.Motifs))
	for _, m := range c.Motifs {
		known[m.PitchPatternHash] = true
	}

	added := 0
	for _, m := range motifs {
		if known[m.PitchPatternHash] {
			continue
		}
		known[m.PitchPatternHash] = true
		c.Motifs = append(c.Motifs, m)
		added++
	}

	c.TotalMotifs = len(c.Motifs)
	c.ProcessedFiles = appendUnique(c.ProcessedFiles, fileID)
	c.Categories = Categorize(c.Motifs)
	c.TrainingMetadata = ComputeTrainingStats(c.Motifs)
	return added
}

func appendUnique(files []string, file string) []string {
	for _, f := range files {
		if f == file {
			return files
		}
	}
	return append(files, file)
}
