// Package tui provides an interactive terminal form for profiltool.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/profiltool/internal/adapters/driving/tui/views/form"
	"github.com/custodia-labs/profiltool/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Reset runs the credential reset simulation.
	Reset driving.ResetService

	// Profile fetches public profiles.
	Profile driving.ProfileService

	// Reload rebuilds the profile service from the current settings.
	// Optional; without it settings changes are ignored.
	Reload func() (driving.ProfileService, error)

	// Changes delivers a value whenever the settings file changes.
	// Optional; closing it stops the TUI from listening.
	Changes <-chan struct{}

	// Prefill holds the initial form values.
	Prefill form.Values
}

// NewPorts creates a new Ports aggregate with the required services.
func NewPorts(reset driving.ResetService, profile driving.ProfileService) *Ports {
	return &Ports{
		Reset:   reset,
		Profile: profile,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Reset == nil {
		return ErrMissingResetService
	}
	if p.Profile == nil {
		return ErrMissingProfileService
	}
	return nil
}
