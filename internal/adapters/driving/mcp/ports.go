package mcp

import (
	"github.com/custodia-labs/profiltool/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Reset runs the credential reset simulation.
	Reset driving.ResetService

	// Profile fetches public profiles.
	Profile driving.ProfileService

	// Settings exposes the current settings as a resource. Optional.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Reset == nil {
		return ErrMissingResetService
	}
	if p.Profile == nil {
		return ErrMissingProfileService
	}
	return nil
}
