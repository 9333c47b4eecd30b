package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for profiltool resources.
	uriScheme = "profiltool://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "settings",
		Name:        "settings",
		Description: "Current fetch and logging settings",
		MIMEType:    "application/json",
	}, s.handleSettingsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "profiles/{id}",
		Name:        "profile",
		Description: "Display name and location of a profile, fetched by identifier",
		MIMEType:    "text/plain",
	}, s.handleProfileResource)
}

// settingsInfo is the JSON shape of the settings resource.
type settingsInfo struct {
	TimeoutSeconds float64 `json:"timeout_seconds"`
	ProfileBaseURL string  `json:"profile_base_url"`
	MaxBodyBytes   int64   `json:"max_body_bytes"`
	LogFile        string  `json:"log_file"`
	LogConsole     bool    `json:"log_console"`
}

// handleSettingsResource returns the current settings.
func (s *Server) handleSettingsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	text := "{}"
	if s.ports.Settings != nil {
		settings, err := s.ports.Settings.Get()
		if err != nil {
			return nil, fmt.Errorf("loading settings: %w", err)
		}
		data, err := json.MarshalIndent(settingsInfo{
			TimeoutSeconds: settings.Fetch.Timeout.Seconds(),
			ProfileBaseURL: settings.Fetch.ProfileBaseURL,
			MaxBodyBytes:   settings.Fetch.MaxBodyBytes,
			LogFile:        settings.Log.File,
			LogConsole:     settings.Log.Console,
		}, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshalling settings: %w", err)
		}
		text = string(data)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     text,
		}},
	}, nil
}

// handleProfileResource fetches a profile by identifier.
func (s *Server) handleProfileResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	id := extractProfileID(req.Params.URI)
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	outcome := s.ports.Profile.FetchByID(ctx, id)
	if !outcome.OK {
		return nil, errors.New(outcome.Message)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text: fmt.Sprintf("Name: %s\nLocation: %s\n",
				outcome.Profile.DisplayName, outcome.Profile.Location),
		}},
	}, nil
}

// extractProfileID extracts the identifier from a URI like profiltool://profiles/{id}.
// The identifier is unescaped, so the service escapes it exactly once.
func extractProfileID(uri string) string {
	const prefix = uriScheme + "profiles/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	id, err := url.PathUnescape(strings.TrimPrefix(uri, prefix))
	if err != nil {
		return ""
	}
	return id
}
