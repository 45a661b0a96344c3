// Package rules implements the declarative decision layer: an ordered list
// of condition rules mapping a normalized metrics vector and a mode tag to
// one label from a closed set. Rules are data, not code: they are loaded
// from configuration, validated against a schema, and evaluated first-match.
package rules

import "fmt"

// ModeKey is the reserved condition key compared against the caller's mode
// tag instead of the metrics vector.
const ModeKey = "mode"

// Rule is one ordered element of a rule set. An empty When matches
// unconditionally; exactly one such rule must exist and it must be last.
type Rule struct {
	When        map[string]string `yaml:"when" json:"when"`
	ChooseLabel string            `yaml:"choose_label" json:"choose_label"`
	Description string            `yaml:"description,omitempty" json:"description,omitempty"`
}

// Document is the on-disk rule file shape.
type Document struct {
	Rules       []Rule   `yaml:"rules" json:"rules"`
	ValidLabels []string `yaml:"valid_labels" json:"valid_labels"`
}

// Op is a comparison operator, parsed once at load time rather than
// re-parsed per evaluation.
type Op int

const (
	OpGE Op = iota
	OpLE
	OpGT
	OpLT
	OpEQ
)

func (o Op) String() string {
	switch o {
	case OpGE:
		return ">="
	case OpLE:
		return "<="
	case OpGT:
		return ">"
	case OpLT:
		return "<"
	case OpEQ:
		return "=="
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// condition is one parsed when-entry. Mode conditions compare strings;
// everything else compares a metric value against a numeric threshold.
type condition struct {
	key       string
	isMode    bool
	wantMode  string
	op        Op
	threshold float64
}

// compiledRule pairs a source rule with its parsed conditions.
type compiledRule struct {
	source     Rule
	conditions []condition
}

// Set is a validated, evaluation-ready rule set.
type Set struct {
	SourceFile  string
	ValidLabels []string
	rules       []compiledRule
}

// Len returns the number of rules in evaluation order.
func (s *Set) Len() int { return len(s.rules) }

// Rules returns the source rules in evaluation order.
func (s *Set) Rules() []Rule {
	out := make([]Rule, len(s.rules))
	for i, r := range s.rules {
		out[i] = r.source
	}
	return out
}
