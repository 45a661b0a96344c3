package score

import (
	"errors"
	"fmt"
)

// FaultCode categorizes pipeline failures.
type FaultCode string

const (
	// FaultEmptyInput indicates a stage received no bars or sections to
	// process. Always surfaced as an error, never as an empty success.
	FaultEmptyInput FaultCode = "EMPTY_INPUT"

	// FaultMissingDefaultRule indicates a rule set that cannot resolve every
	// input. This is a configuration defect and must not be patched over.
	FaultMissingDefaultRule FaultCode = "MISSING_DEFAULT_RULE"

	// FaultUpstream indicates an already-failed input was handed to a stage.
	FaultUpstream FaultCode = "UPSTREAM_ERROR"

	// FaultParse indicates a single source file failed to load. Logged and
	// skipped during batch processing; never aborts the batch.
	FaultParse FaultCode = "PARSE_FAILURE"
)

// Fault is a typed pipeline error. TenantID and FileID are carried so
// callers can correlate a failure back to the input that produced it.
type Fault struct {
	Code     FaultCode
	Message  string
	TenantID string
	FileID   string
	Err      error
}

// Error implements the error interface.
func (f *Fault) Error() string {
	if f.TenantID != "" || f.FileID != "" {
		return fmt.Sprintf("%s: %s (tenant=%s, file=%s)", f.Code, f.Message, f.TenantID, f.FileID)
	}
	return fmt.Sprintf("%s: %s", f.Code, f.Message)
}

func (f *Fault) Unwrap() error {
	return f.Err
}

// NewEmptyInput creates a Fault for an empty bar or section collection.
func NewEmptyInput(tenantID, fileID, what string) *Fault {
	return &Fault{
		Code:     FaultEmptyInput,
		Message:  fmt.Sprintf("no %s to process", what),
		TenantID: tenantID,
		FileID:   fileID,
	}
}

// NewMissingDefaultRule creates a Fault for an unmatchable rule set.
func NewMissingDefaultRule(ruleFile string) *Fault {
	return &Fault{
		Code:    FaultMissingDefaultRule,
		Message: "rule set has no unconditional default rule",
		FileID:  ruleFile,
	}
}

// IsFault reports whether err carries the given code, unwrapping as needed.
func IsFault(err error, code FaultCode) bool {
	var f *Fault
	if errors.As(err, &f) {
		return f.Code == code
	}
	return false
}
