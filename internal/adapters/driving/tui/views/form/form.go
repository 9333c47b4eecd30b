// Package form provides the single-screen form that runs the credential reset
// simulation followed by the profile fetch.
package form

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/profiltool/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/profiltool/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/profiltool/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/profiltool/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/profiltool/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/profiltool/internal/core/domain"
	"github.com/custodia-labs/profiltool/internal/core/ports/driving"
)

// Field indexes, in focus order.
const (
	FieldTarget = iota
	FieldCode
	FieldCredential
	fieldCount
)

const ruleWidth = 30

// Values are the initial contents of the three inputs.
type Values struct {
	Target     string
	Code       string
	Credential string
}

// View is the form screen.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	ctx     context.Context
	reset   driving.ResetService
	profile driving.ProfileService

	fields  []*input.Field
	focus   int
	spinner spinner.Model
	status  *status.Bar

	running     bool
	resetResult *domain.Outcome
	fetchResult *domain.ProfileOutcome
	fetchTarget string

	width  int
	height int
}

// NewView creates the form with prefilled values.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	reset driving.ResetService,
	profile driving.ProfileService,
	values Values,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = s.Section

	fields := make([]*input.Field, fieldCount)
	fields[FieldTarget] = input.NewField("Profile URL or code", s,
		input.WithValue(values.Target), input.WithPlaceholder("https://... or identifier"))
	fields[FieldCode] = input.NewField("Reset code", s,
		input.WithValue(values.Code))
	fields[FieldCredential] = input.NewField("New password", s,
		input.WithValue(values.Credential), input.WithPlaceholder("at least 8 characters"), input.Masked())

	return &View{
		styles:  s,
		keymap:  km,
		ctx:     context.Background(),
		reset:   reset,
		profile: profile,
		fields:  fields,
		spinner: sp,
		status:  status.NewBar(s, km),
	}
}

// WithContext sets the context passed to the profile fetch.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init focuses the first field.
func (v *View) Init() tea.Cmd {
	return v.focusField(FieldTarget)
}

// Update handles messages.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.ResetCompleted:
		out := msg.Outcome
		v.resetResult = &out
		return v, nil

	case messages.FetchCompleted:
		out := msg.Outcome
		v.fetchResult = &out
		v.fetchTarget = msg.Target
		v.running = false
		v.status.SetState(status.StateDone)
		v.status.SetMessage(v.summary())
		return v, nil

	case messages.ErrorOccurred:
		v.running = false
		v.status.SetState(status.StateError)
		v.status.SetMessage(msg.Err.Error())
		return v, nil

	case spinner.TickMsg:
		if !v.running {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd
	}

	var cmd tea.Cmd
	v.fields[v.focus], cmd = v.fields[v.focus].Update(msg)
	return v, cmd
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	k := msg.String()
	switch {
	case keymap.Matches(k, v.keymap.Run):
		return v, v.Run()

	case keymap.Matches(k, v.keymap.Submit):
		if v.focus == FieldCredential {
			return v, v.Run()
		}
		return v, v.focusField(v.focus + 1)

	case keymap.Matches(k, v.keymap.Next):
		return v, v.focusField((v.focus + 1) % fieldCount)

	case keymap.Matches(k, v.keymap.Prev):
		return v, v.focusField((v.focus + fieldCount - 1) % fieldCount)

	case keymap.Matches(k, v.keymap.Clear):
		v.ClearResults()
		return v, nil
	}

	var cmd tea.Cmd
	v.fields[v.focus], cmd = v.fields[v.focus].Update(msg)
	return v, cmd
}

func (v *View) focusField(i int) tea.Cmd {
	for j, f := range v.fields {
		if j != i {
			f.Blur()
		}
	}
	v.focus = i
	return v.fields[i].Focus()
}

// Run starts the reset simulation and then the profile fetch. It does
// nothing while a previous run is still in flight.
func (v *View) Run() tea.Cmd {
	if v.running {
		return nil
	}
	v.running = true
	v.resetResult = nil
	v.fetchResult = nil
	v.fetchTarget = ""
	v.status.SetState(status.StateRunning)
	v.status.SetMessage("")

	code := v.fields[FieldCode].Value()
	credential := v.fields[FieldCredential].Value()
	target := v.fields[FieldTarget].Value()

	return tea.Batch(
		v.spinner.Tick,
		tea.Sequence(v.performReset(code, credential), v.performFetch(target)),
	)
}

func (v *View) performReset(code, credential string) tea.Cmd {
	reset := v.reset
	return func() tea.Msg {
		if reset == nil {
			return messages.ErrorOccurred{Err: ErrNoResetService}
		}
		return messages.ResetCompleted{Outcome: reset.Reset(domain.ResetRequest{
			SubmittedCode: code,
			NewCredential: credential,
		})}
	}
}

func (v *View) performFetch(target string) tea.Cmd {
	// captured now; a settings reload may swap v.profile while this runs
	profile := v.profile
	ctx := v.ctx
	return func() tea.Msg {
		if profile == nil {
			return messages.ErrorOccurred{Err: ErrNoProfileService}
		}
		return messages.FetchCompleted{Target: target, Outcome: profile.Fetch(ctx, target)}
	}
}

func (v *View) summary() string {
	part := func(name string, ok bool) string {
		if ok {
			return name + " ok"
		}
		return name + " failed"
	}
	var parts []string
	if v.resetResult != nil {
		parts = append(parts, part("reset", v.resetResult.OK))
	}
	if v.fetchResult != nil {
		parts = append(parts, part("fetch", v.fetchResult.OK))
	}
	return strings.Join(parts, ", ")
}

// View renders the form.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Profile Tool"))
	b.WriteString("\n\n")
	for _, f := range v.fields {
		b.WriteString(f.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if results := v.renderResults(); results != "" {
		panel := v.styles.Panel
		if v.width > 4 {
			panel = panel.Width(v.width - 4)
		}
		b.WriteString(panel.Render(results))
		b.WriteString("\n")
	}

	b.WriteString(v.status.View())
	return b.String()
}

func (v *View) renderResults() string {
	if !v.running && v.resetResult == nil && v.fetchResult == nil {
		return ""
	}

	lines := []string{
		v.styles.Section.Render("--- START ---"),
		"Credential reset simulation...",
	}
	if r := v.resetResult; r != nil {
		style := v.styles.Success
		if !r.OK {
			style = v.styles.Error
		}
		lines = append(lines, style.Render(fmt.Sprintf("  [%s]: %s", r.Label(), r.Message)))
	}
	lines = append(lines, "", v.styles.Muted.Render(strings.Repeat("-", ruleWidth)))

	if f := v.fetchResult; f != nil {
		lines = append(lines, fmt.Sprintf("Profile fetch (target: %s)...", v.fetchTarget))
		first, second := f.Pair()
		if f.OK {
			lines = append(lines,
				v.styles.Success.Render("  [SUCCESS - parsed]:"),
				"  Name found: "+first,
				"  Location found: "+second,
			)
		} else {
			lines = append(lines,
				v.styles.Error.Render("  [FETCH/PARSE ERROR]:"),
				"  Details: "+second,
			)
		}
		lines = append(lines, "", v.styles.Section.Render("--- DONE ---"))
	}

	if v.running {
		lines = append(lines, v.spinner.View()+" working...")
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// SetDimensions sets the terminal dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	for _, f := range v.fields {
		f.SetWidth(width)
	}
	v.status.SetWidth(width)
}

// SetProfileService swaps the profile port, for example after a settings reload.
func (v *View) SetProfileService(p driving.ProfileService) {
	v.profile = p
}

// SetStatus shows a message in the status bar without touching the results.
func (v *View) SetStatus(state status.State, msg string) {
	v.status.SetState(state)
	v.status.SetMessage(msg)
}

// ClearResults empties the results panel. It does nothing while running.
func (v *View) ClearResults() {
	if v.running {
		return
	}
	v.resetResult = nil
	v.fetchResult = nil
	v.fetchTarget = ""
	v.status.Clear()
}

// Running reports whether a run is in flight.
func (v *View) Running() bool {
	return v.running
}

// Focus returns the index of the focused field.
func (v *View) Focus() int {
	return v.focus
}

// Value returns the content of the field at index i.
func (v *View) Value(i int) string {
	return v.fields[i].Value()
}

// ResetResult returns the last reset outcome, if any.
func (v *View) ResetResult() *domain.Outcome {
	return v.resetResult
}

// FetchResult returns the last fetch outcome, if any.
func (v *View) FetchResult() *domain.ProfileOutcome {
	return v.fetchResult
}

// StatusBar returns the status bar.
func (v *View) StatusBar() *status.Bar {
	return v.status
}
