package domain

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists signals a duplicate resource.
	ErrAlreadyExists = errors.New("already exists")
	// ErrValidation signals a rejected request payload.
	ErrValidation = errors.New("validation failed")
	// ErrInvalidParameter signals a bad programmatic parameter (strict path).
	ErrInvalidParameter = errors.New("invalid parameter")
)

// StatusError is an error carrying a simulated HTTP status. Its message
// renders exactly the way the real APIs phrase their errors, e.g.
// "422 Unprocessable Entity: Search results are limited to 1000 records...".
// Callers assert on that text, so the format is part of the contract.
type StatusError struct {
	Status int
	Detail string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.Status, http.StatusText(e.Status), e.Detail)
}

// NewStatusError creates a StatusError for the given simulated status code.
func NewStatusError(status int, detail string) *StatusError {
	return &StatusError{Status: status, Detail: detail}
}

// StatusOf extracts the simulated HTTP status from err, or 0 if err carries none.
func StatusOf(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Status
	}
	return 0
}
