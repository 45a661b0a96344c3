package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// NewSet compiles a rule document into an evaluation-ready set. Condition
// parse failures are fatal; structural defects (missing default rule,
// unknown labels) are returned alongside the set so callers can decide
// whether to refuse the configuration or surface the defect at decision
// time.
func NewSet(doc Document, sourceFile string) (*Set, []ValidationError, error) {
	compiled, err := compile(doc)
	if err != nil {
		return nil, nil, err
	}
	set := &Set{
		SourceFile:  sourceFile,
		ValidLabels: doc.ValidLabels,
		rules:       compiled,
	}
	return set, Validate(doc), nil
}

// LoadFile reads and compiles a YAML rule file. Rule files are loaded fresh
// on every call; callers wanting caching keep the returned Set themselves.
// Any validation defect is fatal here: a file that fails validation never
// becomes a live Set.
func LoadFile(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load rules: %w", err)
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("load rules %s: %w", path, err)
	}

	set, defects, err := NewSet(doc, path)
	if err != nil {
		return nil, fmt.Errorf("load rules %s: %w", path, err)
	}
	if len(defects) > 0 {
		return nil, fmt.Errorf("load rules %s: %d validation errors, first: %w", path, len(defects), defects[0])
	}
	return set, nil
}
