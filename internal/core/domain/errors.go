package domain

import (
	"errors"
	"fmt"
	"time"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotConfigured indicates a required service or adapter was not wired.
	ErrNotConfigured = errors.New("not configured")

	// ErrInvalidSetting indicates a settings key or value was rejected.
	ErrInvalidSetting = errors.New("invalid setting")

	// ErrUnparseableDocument indicates a fetched body could not be read as HTML.
	ErrUnparseableDocument = errors.New("unparseable document")
)

// FetchError is a classified retrieval failure.
//
// Error returns only the sanitised, user-facing message. The remaining fields
// are diagnostics for the developer log and must not be shown to end users.
type FetchError struct {
	// Category is the taxonomy label for programmatic handling.
	Category Category

	// Message is the sanitised description shown to the user.
	Message string

	// URL is the address that was requested.
	URL string

	// StatusCode is the HTTP status, or 0 for transport failures.
	StatusCode int

	// Timeout is the request bound that was in effect.
	Timeout time.Duration

	// Cause is the underlying transport error, if any.
	Cause error
}

func (e *FetchError) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause to errors.Is and errors.As.
func (e *FetchError) Unwrap() error {
	return e.Cause
}

// Diagnostic renders the full developer-facing description of the failure.
func (e *FetchError) Diagnostic() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: GET %s returned HTTP %d", e.Category, e.URL, e.StatusCode)
	case e.Cause != nil:
		return fmt.Sprintf("%s: GET %s (timeout %s): %v", e.Category, e.URL, e.Timeout, e.Cause)
	default:
		return fmt.Sprintf("%s: GET %s", e.Category, e.URL)
	}
}

// RootCause returns the innermost error in err's tree. Errors joining several
// causes (errors.Join, fmt.Errorf with more than one %w) are followed into the
// last branch that ends in a typed error, so a leading sentinel does not hide
// the concrete failure behind it.
func RootCause(err error) error {
	switch u := err.(type) {
	case interface{ Unwrap() error }:
		if next := u.Unwrap(); next != nil {
			return RootCause(next)
		}
	case interface{ Unwrap() []error }:
		var found error
		for _, e := range u.Unwrap() {
			if e == nil {
				continue
			}
			root := RootCause(e)
			if found == nil || !isPlainError(root) {
				found = root
			}
		}
		if found != nil {
			return found
		}
	}
	return err
}

// isPlainError reports whether err is an untyped errors.New value.
func isPlainError(err error) bool {
	return fmt.Sprintf("%T", err) == "*errors.errorString"
}

// AsFetchError reports whether err is, or wraps, a *FetchError and returns it.
func AsFetchError(err error) (*FetchError, bool) {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
