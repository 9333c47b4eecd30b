// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/profiltool/internal/core/domain"
	"github.com/custodia-labs/profiltool/internal/core/ports/driving"
)

// RunRequested is sent when the user triggers both operations.
type RunRequested struct {
	Target     string
	Code       string
	Credential string
}

// ResetCompleted carries the reset simulation result.
type ResetCompleted struct {
	Outcome domain.Outcome
}

// FetchCompleted carries the profile fetch result.
type FetchCompleted struct {
	Target  string
	Outcome domain.ProfileOutcome
}

// SettingsChanged is sent when the settings file changed on disk.
type SettingsChanged struct{}

// SettingsReloaded carries a profile service rebuilt from new settings.
type SettingsReloaded struct {
	Profile driving.ProfileService
	Err     error
}

// ErrorOccurred signals that an error happened outside an operation.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
