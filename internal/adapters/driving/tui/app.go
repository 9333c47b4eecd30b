package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/profiltool/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/profiltool/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/profiltool/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/profiltool/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/profiltool/internal/adapters/driving/tui/views/form"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap

	// formView is the only screen.
	formView *form.View

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has received its first window size.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:    ports,
		ctx:      context.Background(),
		styles:   s,
		keymap:   km,
		formView: form.NewView(s, km, ports.Reset, ports.Profile, ports.Prefill),
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.formView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("profiltool"),
		a.formView.Init(),
		a.waitForChange(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if keymap.Matches(msg.String(), a.keymap.Quit) {
			return a, tea.Quit
		}

	case messages.SettingsChanged:
		return a, a.reload()

	case messages.SettingsReloaded:
		a.applyReload(msg)
		return a, a.waitForChange()

	case messages.ErrorOccurred:
		a.err = msg.Err

	case messages.Quit:
		return a, tea.Quit
	}

	a.formView, cmd = a.formView.Update(msg)
	return a, cmd
}

// waitForChange blocks on the settings channel in a command goroutine.
func (a *App) waitForChange() tea.Cmd {
	changes := a.ports.Changes
	if changes == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return messages.SettingsChanged{}
	}
}

func (a *App) reload() tea.Cmd {
	reload := a.ports.Reload
	if reload == nil {
		return a.waitForChange()
	}
	return func() tea.Msg {
		p, err := reload()
		return messages.SettingsReloaded{Profile: p, Err: err}
	}
}

func (a *App) applyReload(msg messages.SettingsReloaded) {
	if msg.Err != nil || msg.Profile == nil {
		err := msg.Err
		if err == nil {
			err = ErrMissingProfileService
		}
		a.err = err
		if !a.formView.Running() {
			a.formView.SetStatus(status.StateError, "settings reload failed: "+err.Error())
		}
		return
	}

	a.ports.Profile = msg.Profile
	a.formView.SetProfileService(msg.Profile)
	if !a.formView.Running() {
		a.formView.SetStatus(status.StateReady, "settings reloaded")
	}
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}
	return a.formView.View()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// Form returns the form view.
func (a *App) Form() *form.View {
	return a.formView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.formView.SetDimensions(width, height)
}
