// Package mcp provides an MCP (Model Context Protocol) server adapter for profiltool.
// It lets AI assistants run the reset simulation and fetch public profiles.
package mcp

import "errors"

// ErrMissingResetService is returned when the reset service is not provided.
var ErrMissingResetService = errors.New("mcp: reset service is required")

// ErrMissingProfileService is returned when the profile service is not provided.
var ErrMissingProfileService = errors.New("mcp: profile service is required")
