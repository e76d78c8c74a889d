package config

import "fmt"

// ValidationError reports a profile field that cannot be used for a projection
type ValidationError struct {
	Profile string
	Field   string
	Reason  string
	Err     error
}

func (e *ValidationError) Error() string {
	subject := e.Field
	if e.Profile != "" {
		subject = e.Profile + ": " + e.Field
	}
	return fmt.Sprintf("%s %s", subject, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a new ValidationError.
func NewValidationError(profile, field, reason string, err error) error {
	return &ValidationError{
		Profile: profile,
		Field:   field,
		Reason:  reason,
		Err:     err,
	}
}
