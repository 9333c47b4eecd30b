// Package cli implements the profiltool command line with cobra.
//
// Services are package-level so commands can share them. They are either
// injected with SetServices or built from the config directory by the root
// command's PersistentPreRunE.
package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/profiltool/internal/core/ports/driving"
)

// version is set at build time with -ldflags "-X ...cli.version=...".
var version = "dev"

// Services used by commands.
var (
	resetService    driving.ResetService
	profileService  driving.ProfileService
	settingsService driving.SettingsService
	appRuntime      *Runtime
)

// servicesInjected skips bootstrap when SetServices has been called.
var servicesInjected bool

// Global flags.
var (
	configDir string
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "profiltool",
	Short: "Simulated credential reset and public profile lookup",
	Long: `profiltool simulates a credential reset against a fixed reset code and
fetches the public name and location from a profile page.

Failures are reported as short messages; full diagnostics go to the log
file (app_errors.log in the config directory by default).`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: bootstrap,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "config directory (default ~/.profiltool)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "mirror debug logs to stderr")
}

// Services groups the driving ports used by the commands.
type Services struct {
	Reset    driving.ResetService
	Profile  driving.ProfileService
	Settings driving.SettingsService
}

// SetServices injects services and disables bootstrap.
func SetServices(s Services) {
	resetService = s.Reset
	profileService = s.Profile
	settingsService = s.Settings
	servicesInjected = true
}

// Execute runs the root command. Interrupts cancel the command context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	defer shutdown()

	return rootCmd.ExecuteContext(ctx)
}

// IsReported reports whether err is an operation failure whose result has
// already been printed, so callers only need to set the exit status.
func IsReported(err error) bool {
	var re *resultError
	return errors.As(err, &re)
}

// bootstrap builds the runtime from flags unless services were injected.
func bootstrap(cmd *cobra.Command, _ []string) error {
	if servicesInjected || appRuntime != nil {
		return nil
	}

	rt, err := NewRuntime(RuntimeOptions{
		ConfigDir: configDir,
		Verbose:   verbose,
		// The TUI draws on the terminal, so logs stay in the file.
		FileOnly: cmd == tuiCmd,
	})
	if err != nil {
		return err
	}

	appRuntime = rt
	resetService = rt.Reset
	profileService = rt.Profile
	settingsService = rt.Settings
	return nil
}

func shutdown() {
	if appRuntime != nil {
		_ = appRuntime.Close()
		appRuntime = nil
	}
}
