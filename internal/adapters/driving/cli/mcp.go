package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/profiltool/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

The server exposes two tools, verify_reset and fetch_profile, plus a
settings resource and a profiltool://profiles/{id} resource template.

By default, the server communicates over stdio using JSON-RPC. Use --port to
start an HTTP server instead, or --http to pick the first free port from 8765.

Examples:
  # Stdio mode (default)
  profiltool mcp serve

  # HTTP mode
  profiltool mcp serve --port 8080
  profiltool mcp serve --http`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpServeCmd.Flags().Bool("http", false, "serve HTTP on the first free port when --port is not set")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

// newMCPServer builds the server from the package services.
func newMCPServer() (*mcp.Server, error) {
	if resetService == nil || profileService == nil {
		return nil, errors.New("services not configured")
	}
	return mcp.NewServer(&mcp.Ports{
		Reset:    resetService,
		Profile:  profileService,
		Settings: settingsService,
	})
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}
	if port < 0 || port > 65535 {
		return fmt.Errorf("invalid port %d", port)
	}
	useHTTP, err := cmd.Flags().GetBool("http")
	if err != nil {
		return fmt.Errorf("getting http flag: %w", err)
	}
	if useHTTP && port == 0 {
		port, err = mcp.FindAvailablePort(mcp.DefaultPortStart, mcp.DefaultPortEnd)
		if err != nil {
			return err
		}
	}

	server, err := newMCPServer()
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
