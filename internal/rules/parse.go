package rules

import (
	"fmt"
	"strconv"
	"strings"
)

// Operators ordered so two-character forms are tried before their
// one-character prefixes.
var operators = []struct {
	token string
	op    Op
}{
	{">=", OpGE},
	{"<=", OpLE},
	{"==", OpEQ},
	{">", OpGT},
	{"<", OpLT},
	{"=", OpEQ},
}

// parseCondition parses one when-entry. The reserved "mode" key takes a bare
// string, optionally prefixed with "=="; every other key requires a
// comparison operator followed by a numeric literal.
func parseCondition(key, value string) (condition, error) {
	value = strings.TrimSpace(value)
	if key == ModeKey {
		want := strings.TrimSpace(strings.TrimPrefix(value, "=="))
		if want == "" {
			return condition{}, fmt.Errorf("condition %q: empty mode match", key)
		}
		return condition{key: key, isMode: true, wantMode: want}, nil
	}

	for _, o := range operators {
		if !strings.HasPrefix(value, o.token) {
			continue
		}
		lit := strings.TrimSpace(value[len(o.token):])
		threshold, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return condition{}, fmt.Errorf("condition %q: bad numeric literal %q", key, lit)
		}
		return condition{key: key, op: o.op, threshold: threshold}, nil
	}
	return condition{}, fmt.Errorf("condition %q: no comparison operator in %q", key, value)
}

// compile parses every rule's conditions once.
func compile(doc Document) ([]compiledRule, error) {
	compiled := make([]compiledRule, 0, len(doc.Rules))
	for i, rule := range doc.Rules {
		cr := compiledRule{source: rule}
		for key, value := range rule.When {
			cond, err := parseCondition(key, value)
			if err != nil {
				return nil, fmt.Errorf("rule %d (%s): %w", i, rule.ChooseLabel, err)
			}
			cr.conditions = append(cr.conditions, cond)
		}
		compiled = append(compiled, cr)
	}
	return compiled, nil
}

// holds evaluates one condition. A metric key absent from the vector makes
// the condition false rather than raising.
func (c condition) holds(metrics map[string]float64, mode string) bool {
	if c.isMode {
		return mode == c.wantMode
	}
	v, ok := metrics[c.key]
	if !ok {
		return false
	}
	switch c.op {
	case OpGE:
		return v >= c.threshold
	case OpLE:
		return v <= c.threshold
	case OpGT:
		return v > c.threshold
	case OpLT:
		return v < c.threshold
	case OpEQ:
		return v == c.threshold
	default:
		return false
	}
}
