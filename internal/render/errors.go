// Package render invokes the external resume renderer.
package render

import "fmt"

// CommandError represents a failed external command.
type CommandError struct {
	Command string
	Message string
	Cause   error
}

func (e *CommandError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("command error: %s: %s: %v", e.Message, e.Command, e.Cause)
	}
	return fmt.Sprintf("command error: %s: %s", e.Message, e.Command)
}

func (e *CommandError) Unwrap() error {
	return e.Cause
}
