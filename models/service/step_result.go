package service

import (
	"time"

	"github.com/APTrust/bucket-tester/constants"
)

// StepResult describes the outcome of one step of a bucket round trip.
type StepResult struct {
	// Step is the name of the step. See constants.RoundTripSteps.
	Step string

	// StartedAt describes when the step started. If StartedAt.IsZero(),
	// the step was never attempted.
	StartedAt time.Time

	// FinishedAt describes when the step completed. The step may have
	// completed without succeeding. Check Succeeded().
	FinishedAt time.Time

	// Error is set when the step failed.
	Error *ProcessingError
}

func NewStepResult(step string) *StepResult {
	return &StepResult{
		Step: step,
	}
}

func (result *StepResult) Start() {
	result.StartedAt = time.Now().UTC()
}

func (result *StepResult) Attempted() bool {
	return !result.StartedAt.IsZero()
}

// Finish marks the step complete. Pass nil for err if the step
// succeeded.
func (result *StepResult) Finish(err *ProcessingError) {
	result.Error = err
	result.FinishedAt = time.Now().UTC()
}

func (result *StepResult) Finished() bool {
	return !result.FinishedAt.IsZero()
}

func (result *StepResult) Succeeded() bool {
	return result.Finished() && result.Error == nil
}

func (result *StepResult) RunTime() time.Duration {
	startTime := result.StartedAt
	if startTime.IsZero() {
		return time.Duration(0)
	}
	endTime := result.FinishedAt
	if endTime.IsZero() {
		endTime = time.Now()
	}
	return endTime.Sub(startTime)
}

// RoundTripResult collects the results of every step of one run.
// It exists for reporting only. A failed round trip still exits 0.
type RoundTripResult struct {
	Bucket     string
	Key        string
	RunID      string
	StartedAt  time.Time
	FinishedAt time.Time
	Steps      []*StepResult
}

func NewRoundTripResult(runID, bucket string) *RoundTripResult {
	return &RoundTripResult{
		Bucket: bucket,
		RunID:  runID,
		Steps:  make([]*StepResult, 0, len(constants.RoundTripSteps)),
	}
}

func (r *RoundTripResult) Start() {
	r.StartedAt = time.Now().UTC()
}

func (r *RoundTripResult) Finish() {
	r.FinishedAt = time.Now().UTC()
}

// AddStep appends result to the list of steps.
func (r *RoundTripResult) AddStep(result *StepResult) {
	r.Steps = append(r.Steps, result)
}

// Step returns the result for the named step, or nil if that
// step was never recorded.
func (r *RoundTripResult) Step(name string) *StepResult {
	for _, step := range r.Steps {
		if step.Step == name {
			return step
		}
	}
	return nil
}

// Succeeded returns true if every round trip step ran and none failed.
func (r *RoundTripResult) Succeeded() bool {
	for _, name := range constants.RoundTripSteps {
		step := r.Step(name)
		if step == nil || !step.Succeeded() {
			return false
		}
	}
	return true
}

// Aborted returns true if a fatal error stopped the round trip early.
func (r *RoundTripResult) Aborted() bool {
	for _, err := range r.Errors() {
		if err.IsFatal() {
			return true
		}
	}
	return false
}

// Errors returns the errors of all failed steps, in step order.
func (r *RoundTripResult) Errors() []*ProcessingError {
	errs := make([]*ProcessingError, 0)
	for _, step := range r.Steps {
		if step.Error != nil {
			errs = append(errs, step.Error)
		}
	}
	return errs
}

// FirstError returns the first error encountered, or nil.
func (r *RoundTripResult) FirstError() *ProcessingError {
	errs := r.Errors()
	if len(errs) == 0 {
		return nil
	}
	return errs[0]
}

func (r *RoundTripResult) RunTime() time.Duration {
	if r.StartedAt.IsZero() {
		return time.Duration(0)
	}
	endTime := r.FinishedAt
	if endTime.IsZero() {
		endTime = time.Now()
	}
	return endTime.Sub(r.StartedAt)
}
