package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/profiltool/internal/adapters/driven/config/file"
	"github.com/custodia-labs/profiltool/internal/adapters/driving/tui"
	"github.com/custodia-labs/profiltool/internal/adapters/driving/tui/views/form"
	"github.com/custodia-labs/profiltool/internal/core/ports/driven"
	"github.com/custodia-labs/profiltool/internal/core/ports/driving"
	"github.com/custodia-labs/profiltool/internal/core/services"
)

// demoTarget and demoCredential prefill the form so it can be run at once.
const (
	demoTarget     = "https://www.fiktivnistranica.com/profil/test"
	demoCredential = "NovaJakaLozinka123"
)

// runApp starts the bubbletea program. Tests replace it.
var runApp = func(app *tui.App) error {
	return app.Run()
}

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive form",
	Long: `Launch the interactive terminal form.

The form has three fields: the profile URL or code, the reset code and the
new password. Running it performs the reset simulation and then the profile
fetch, and shows both results. Edits to config.toml are picked up while the
form is open.

Controls:
  tab/↓, shift+tab/↑  Move between fields
  enter               Next field, or run from the last field
  ctrl+r              Run
  ctrl+l              Clear results
  esc, ctrl+c         Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if resetService == nil || profileService == nil {
		return errors.New("services not configured")
	}

	ports := tui.NewPorts(resetService, profileService)
	ports.Prefill = form.Values{
		Target:     demoTarget,
		Code:       services.ReferenceResetCode,
		Credential: demoCredential,
	}

	if appRuntime != nil {
		watcher := file.NewWatcher(appRuntime.ConfigPath(), appRuntime.Logger)
		changes, err := watcher.Start(cmd.Context())
		if err != nil {
			// the form still works, only live reload is lost
			appRuntime.Logger.Warn("settings watch unavailable", driven.Fields{"error": err.Error()})
		} else {
			ports.Changes = changes
			rt := appRuntime
			ports.Reload = func() (driving.ProfileService, error) {
				return rt.ReloadProfile()
			}
		}
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	if err := runApp(app); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
