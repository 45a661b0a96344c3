package rules

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

//go:embed schema.cue
var schemaCUE string

// Validation error codes.
const (
	ErrSchemaViolation   = "R100" // document does not satisfy the CUE schema
	ErrNoRules           = "R101" // rule set is empty
	ErrUnknownLabel      = "R102" // choose_label not in valid_labels
	ErrNoDefaultRule     = "R103" // no unconditional catch-all rule
	ErrDefaultNotLast    = "R104" // catch-all present but not the last rule
	ErrMultipleDefaults  = "R105" // more than one unconditional rule
	ErrNoValidLabels     = "R106" // valid_labels is empty
)

// ValidationError describes one rule-set defect. Validation collects every
// error rather than failing fast so an author sees the whole list at once.
type ValidationError struct {
	Code    string `json:"code"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
}

// validateSchema checks the decoded document against the embedded CUE
// schema.
func validateSchema(doc Document) []ValidationError {
	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaCUE)
	if err := schema.Err(); err != nil {
		return []ValidationError{{Code: ErrSchemaViolation, Field: "schema", Message: err.Error()}}
	}

	value := ctx.Encode(doc)
	if err := value.Err(); err != nil {
		return []ValidationError{{Code: ErrSchemaViolation, Field: "document", Message: err.Error()}}
	}

	unified := schema.Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return []ValidationError{{Code: ErrSchemaViolation, Field: "document", Message: err.Error()}}
	}
	return nil
}

// validateSemantics checks everything the schema cannot express: label
// membership, the mandatory default rule, and its placement.
func validateSemantics(doc Document) []ValidationError {
	var errs []ValidationError

	if len(doc.Rules) == 0 {
		errs = append(errs, ValidationError{
			Code: ErrNoRules, Field: "rules", Message: "rule set has no rules",
		})
	}
	if len(doc.ValidLabels) == 0 {
		errs = append(errs, ValidationError{
			Code: ErrNoValidLabels, Field: "valid_labels", Message: "closed label set is empty",
		})
	}

	valid := make(map[string]bool, len(doc.ValidLabels))
	for _, l := range doc.ValidLabels {
		valid[l] = true
	}

	defaults := 0
	for i, rule := range doc.Rules {
		field := fmt.Sprintf("rules[%d]", i)
		if len(doc.ValidLabels) > 0 && !valid[rule.ChooseLabel] {
			errs = append(errs, ValidationError{
				Code:    ErrUnknownLabel,
				Field:   field,
				Message: fmt.Sprintf("choose_label %q is not in valid_labels", rule.ChooseLabel),
			})
		}
		if len(rule.When) == 0 {
			defaults++
			if i != len(doc.Rules)-1 {
				errs = append(errs, ValidationError{
					Code:    ErrDefaultNotLast,
					Field:   field,
					Message: "unconditional rule must be the last rule evaluated",
				})
			}
		}
	}

	switch {
	case defaults == 0 && len(doc.Rules) > 0:
		errs = append(errs, ValidationError{
			Code: ErrNoDefaultRule, Field: "rules",
			Message: "rule set needs exactly one rule with an empty when",
		})
	case defaults > 1:
		errs = append(errs, ValidationError{
			Code: ErrMultipleDefaults, Field: "rules",
			Message: fmt.Sprintf("rule set has %d unconditional rules, want exactly 1", defaults),
		})
	}
	return errs
}

// Validate runs schema and semantic validation over a rule document,
// returning all defects found.
func Validate(doc Document) []ValidationError {
	errs := validateSchema(doc)
	return append(errs, validateSemantics(doc)...)
}
