package booking

import "fmt"

// BookingError is a typed service error with a stable code.
type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewValidationError marks input that can never commit.
func NewValidationError(msg string) error {
	return &BookingError{Code: "validationError", Message: msg}
}

// NewCommitInProgressError marks a rejected re-entrant commit; the caller
// should retry once the outstanding commit settles.
func NewCommitInProgressError() error {
	return &BookingError{Code: "commitInProgress", Message: "another update to this plan is in progress"}
}

// NewCollaboratorError wraps a persistence or dispatch failure as a generic
// retryable failure; the plan is left unmodified.
func NewCollaboratorError(msg string) error {
	return &BookingError{Code: "collaboratorError", Message: msg}
}
