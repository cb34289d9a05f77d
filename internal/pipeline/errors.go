package pipeline

import "fmt"

// StepError represents a fatal failure of one build step.
type StepError struct {
	Step    string
	Locale  string
	Message string
	Cause   error
}

func (e *StepError) Error() string {
	prefix := e.Step
	if e.Locale != "" {
		prefix = fmt.Sprintf("%s [%s]", e.Step, e.Locale)
	}
	if e.Cause != nil {
		return fmt.Sprintf("build error: %s: %s: %v", prefix, e.Message, e.Cause)
	}
	return fmt.Sprintf("build error: %s: %s", prefix, e.Message)
}

func (e *StepError) Unwrap() error {
	return e.Cause
}
