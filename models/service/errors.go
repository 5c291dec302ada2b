package service

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/APTrust/bucket-tester/models/common"
)

// ProcessingError records which step of which round trip failed.
// The underlying error is usually a *common.Error.
type ProcessingError struct {
	Err        error
	Identifier string
	RunID      string
	Source     string
	Step       string
}

// NewProcessingError returns a new ProcessingError. Param runID is the
// ID of the round trip being processed when the error occurred. Param
// identifier is the object key or local file path the step was working
// on. Param err is what went wrong.
func NewProcessingError(runID, step, identifier string, err error) *ProcessingError {
	_, filename, line, ok := runtime.Caller(1)
	source := "unknown:0"
	if ok {
		source = fmt.Sprintf("%s:%d", filename, line)
	}
	return &ProcessingError{
		Err:        err,
		Identifier: identifier,
		RunID:      runID,
		Source:     source,
		Step:       step,
	}
}

// IsFatal returns true if the underlying error ended the round trip.
func (e *ProcessingError) IsFatal() bool {
	var commonErr *common.Error
	if errors.As(e.Err, &commonErr) {
		return commonErr.IsFatal
	}
	return false
}

func (e *ProcessingError) Unwrap() error {
	return e.Err
}

func (e *ProcessingError) Error() string {
	severity := "non-fatal"
	if e.IsFatal() {
		severity = "fatal"
	}
	message := "unknown error"
	if e.Err != nil {
		message = e.Err.Error()
	}
	return fmt.Sprintf("(run %s) (step: %s) (message: %s) (severity: %s) "+
		"(identifier: %s) (source: %s)", e.RunID, e.Step, message,
		severity, e.Identifier, e.Source)
}
