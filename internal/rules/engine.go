package rules

import (
	"log/slog"

	"github.com/tonefold/motive/internal/score"
)

// Decide evaluates rules strictly in order and returns the label of the
// first rule whose conditions ALL hold. Conditions within a rule are ANDed;
// alternatives must be separate rules. A well-formed set always resolves
// because its mandatory default rule matches everything; if evaluation
// falls off the end the set is a configuration defect and a
// MISSING_DEFAULT_RULE fault is returned rather than an arbitrary label.
func (s *Set) Decide(metrics map[string]float64, mode string) (string, error) {
	for i, rule := range s.rules {
		if !matches(rule, metrics, mode) {
			continue
		}
		slog.Debug("rule matched",
			"index", i, "label", rule.source.ChooseLabel, "mode", mode)
		return rule.source.ChooseLabel, nil
	}
	return "", score.NewMissingDefaultRule(s.SourceFile)
}

func matches(rule compiledRule, metrics map[string]float64, mode string) bool {
	for _, cond := range rule.conditions {
		if !cond.holds(metrics, mode) {
			return false
		}
	}
	// Zero conditions match unconditionally (the default rule).
	return true
}
