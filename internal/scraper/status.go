package scraper

import "errors"

// ErrControlNotFound indicates a required interactive element never attached
// to the page within its wait window. The run cannot continue without it.
var ErrControlNotFound = errors.New("required control not found")

// Status classifies a step's outcome beyond plain success/failure: some
// steps tolerate a soft miss (log and continue) that callers may still want
// to inspect.
type Status int

const (
	// StatusOK means the step fully succeeded.
	StatusOK Status = iota
	// StatusSkipped means the step's effect could not be confirmed but the
	// run continues.
	StatusSkipped
	// StatusFatal means the step failed in a way that makes continuing
	// meaningless.
	StatusFatal
)

// StepResult carries a step's status and, for non-OK outcomes, why.
type StepResult struct {
	Status Status
	Reason string
}

func ok() StepResult {
	return StepResult{Status: StatusOK}
}

func skipped(reason string) StepResult {
	return StepResult{Status: StatusSkipped, Reason: reason}
}

func fatal(reason string) StepResult {
	return StepResult{Status: StatusFatal, Reason: reason}
}
