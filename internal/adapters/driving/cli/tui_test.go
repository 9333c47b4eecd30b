package cli

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/profiltool/internal/adapters/driving/tui"
	"github.com/custodia-labs/profiltool/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/profiltool/internal/adapters/driving/tui/views/form"
	"github.com/custodia-labs/profiltool/internal/core/services"
)

func stubRunApp(t *testing.T, err error) **tui.App {
	t.Helper()
	var captured *tui.App
	prev := runApp
	runApp = func(app *tui.App) error {
		captured = app
		return err
	}
	t.Cleanup(func() { runApp = prev })
	return &captured
}

func TestTUICmd_Use(t *testing.T) {
	assert.Equal(t, "tui", tuiCmd.Use)
	assert.Contains(t, tuiCmd.Long, "ctrl+r")
}

func TestTUICmd_PrefillsForm(t *testing.T) {
	setupTestServices(t)
	app := stubRunApp(t, nil)

	_, _, err := execute(t, "", "tui")

	require.NoError(t, err)
	require.NotNil(t, *app)
	f := (*app).Form()
	assert.Equal(t, demoTarget, f.Value(form.FieldTarget))
	assert.Equal(t, services.ReferenceResetCode, f.Value(form.FieldCode))
	assert.Equal(t, demoCredential, f.Value(form.FieldCredential))
}

func TestTUICmd_WithoutRuntimeHasNoReload(t *testing.T) {
	setupTestServices(t)
	app := stubRunApp(t, nil)

	_, _, err := execute(t, "", "tui")
	require.NoError(t, err)

	_, cmd := (*app).Update(messages.SettingsChanged{})
	assert.Nil(t, cmd)
}

func TestTUICmd_RunError(t *testing.T) {
	setupTestServices(t)
	stubRunApp(t, errors.New("no tty"))

	_, _, err := execute(t, "", "tui")

	require.EqualError(t, err, "TUI error: no tty")
}

func TestTUICmd_NotConfigured(t *testing.T) {
	setupTestServices(t)
	resetService = nil
	app := stubRunApp(t, nil)

	_, _, err := execute(t, "", "tui")

	require.EqualError(t, err, "services not configured")
	assert.Nil(t, *app)
}

func TestTUICmd_WithRuntimeReloadsSettings(t *testing.T) {
	setupTestServices(t)
	rt, err := NewRuntime(RuntimeOptions{ConfigDir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = rt.Close() })
	appRuntime = rt
	resetService, profileService, settingsService = rt.Reset, rt.Profile, rt.Settings
	app := stubRunApp(t, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	tuiCmd.SetContext(ctx)
	t.Cleanup(func() { tuiCmd.SetContext(context.Background()) })

	require.NoError(t, runTUI(tuiCmd, nil))
	require.NotNil(t, *app)
	before := rt.Profile

	require.NoError(t, os.WriteFile(rt.ConfigPath(), []byte("[fetch]\ntimeout_seconds = 9\n"), 0o600))
	_, cmd := (*app).Update(messages.SettingsChanged{})
	require.NotNil(t, cmd)

	msg, ok := cmd().(messages.SettingsReloaded)
	require.True(t, ok)
	require.NoError(t, msg.Err)
	assert.Same(t, rt.Profile, msg.Profile)
	assert.NotSame(t, before, rt.Profile)
	settings, err := rt.Settings.Get()
	require.NoError(t, err)
	assert.Equal(t, "9s", settings.Fetch.Timeout.String())
}
