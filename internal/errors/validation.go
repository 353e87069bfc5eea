package errors

import "strings"

// ValidationError carries the human-readable messages a failed validation
// produced. It maps to a 422 response.
type ValidationError struct {
	Messages []string
}

func NewValidation(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

func (e *ValidationError) Error() string {
	return e.Sentence()
}

// Sentence joins the messages the way they are reported to the caller.
func (e *ValidationError) Sentence() string {
	return strings.Join(e.Messages, ", ")
}
