package form

import "errors"

// Error definitions for the form view.
var (
	// ErrNoResetService indicates that no reset service was provided.
	ErrNoResetService = errors.New("reset service is required")

	// ErrNoProfileService indicates that no profile service was provided.
	ErrNoProfileService = errors.New("profile service is required")
)
