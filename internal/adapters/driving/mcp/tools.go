package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/profiltool/internal/core/domain"
)

// VerifyResetInput is the input schema for the verify_reset tool.
type VerifyResetInput struct {
	Code        string `json:"code" jsonschema:"the reset code received by the user"`
	NewPassword string `json:"new_password" jsonschema:"the new password, at least 8 characters"`
}

// VerifyResetOutput is the output schema for the verify_reset tool.
type VerifyResetOutput struct {
	OK       bool   `json:"ok"`
	Category string `json:"category,omitempty"`
	Message  string `json:"message"`
}

// FetchProfileInput is the input schema for the fetch_profile tool.
type FetchProfileInput struct {
	Target string `json:"target" jsonschema:"an absolute http(s) profile URL or a profile identifier"`
	ByID   bool   `json:"by_id,omitempty" jsonschema:"treat target as an identifier even if it looks like a URL"`
}

// FetchProfileOutput is the output schema for the fetch_profile tool.
type FetchProfileOutput struct {
	OK          bool   `json:"ok"`
	Category    string `json:"category,omitempty"`
	Message     string `json:"message"`
	DisplayName string `json:"display_name,omitempty"`
	Location    string `json:"location,omitempty"`
	URL         string `json:"url,omitempty"`
	RequestID   string `json:"request_id,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "verify_reset",
		Description: "Simulate a password reset: check a reset code and the new password length",
	}, s.handleVerifyReset)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "fetch_profile",
		Description: "Fetch a public profile page and extract the display name and location",
	}, s.handleFetchProfile)
}

// handleVerifyReset handles the verify_reset tool invocation.
// A rejected reset is a normal result, not a tool error.
func (s *Server) handleVerifyReset(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input VerifyResetInput,
) (*mcp.CallToolResult, VerifyResetOutput, error) {
	outcome := s.ports.Reset.Reset(domain.ResetRequest{
		SubmittedCode: input.Code,
		NewCredential: input.NewPassword,
	})

	return nil, VerifyResetOutput{
		OK:       outcome.OK,
		Category: outcome.Category.String(),
		Message:  outcome.Message,
	}, nil
}

// handleFetchProfile handles the fetch_profile tool invocation.
func (s *Server) handleFetchProfile(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input FetchProfileInput,
) (*mcp.CallToolResult, FetchProfileOutput, error) {
	var outcome domain.ProfileOutcome
	if input.ByID {
		outcome = s.ports.Profile.FetchByID(ctx, input.Target)
	} else {
		outcome = s.ports.Profile.Fetch(ctx, input.Target)
	}

	output := FetchProfileOutput{
		OK:        outcome.OK,
		Category:  outcome.Category.String(),
		Message:   outcome.Message,
		URL:       outcome.URL,
		RequestID: outcome.RequestID,
	}
	if outcome.OK {
		output.DisplayName = outcome.Profile.DisplayName
		output.Location = outcome.Profile.Location
	}

	return nil, output, nil
}
