package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change fetch and logging settings.

Settings are stored in config.toml inside the config directory.`,
	Args: cobra.NoArgs,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long: `Change a single setting.

Keys:
  fetch.timeout_seconds    request timeout in whole seconds (> 0)
  fetch.profile_base_url   host used to expand profile identifiers
  fetch.max_body_bytes     maximum response body size read (> 0)
  log.file                 log file, relative to the config directory
  log.console              mirror log entries to stderr (true/false)`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, "Current Settings")
	fmt.Fprintln(w, "================")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "[Fetch]")
	fmt.Fprintf(w, "  Timeout: %s\n", settings.Fetch.Timeout)
	fmt.Fprintf(w, "  Profile base URL: %s\n", settings.Fetch.ProfileBaseURL)
	fmt.Fprintf(w, "  Max body bytes: %d\n", settings.Fetch.MaxBodyBytes)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "[Log]")
	fmt.Fprintf(w, "  File: %s\n", settings.Log.File)
	fmt.Fprintf(w, "  Console: %s\n", yesNo(settings.Log.Console))
	fmt.Fprintln(w)

	if appRuntime != nil {
		fmt.Fprintf(w, "Config file: %s\n", appRuntime.ConfigPath())
	}
	fmt.Fprintf(w, "Keys: %s\n", strings.Join(settingsService.Keys(), ", "))
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.Set(args[0], args[1]); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", args[0], args[1])
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
