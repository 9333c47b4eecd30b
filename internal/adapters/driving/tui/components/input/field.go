// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/profiltool/internal/adapters/driving/tui/styles"
)

const (
	defaultWidth = 50
	minWidth     = 20
	charLimit    = 512
)

// Field is a labelled single-line input. A masked field echoes bullets.
type Field struct {
	label     string
	textinput textinput.Model
	styles    *styles.Styles
	width     int
}

// Option configures a Field.
type Option func(*Field)

// WithPlaceholder sets the hint shown while the field is empty.
func WithPlaceholder(p string) Option {
	return func(f *Field) {
		f.textinput.Placeholder = p
	}
}

// WithValue prefills the field.
func WithValue(v string) Option {
	return func(f *Field) {
		f.textinput.SetValue(v)
	}
}

// Masked hides the typed characters.
func Masked() Option {
	return func(f *Field) {
		f.textinput.EchoMode = textinput.EchoPassword
		f.textinput.EchoCharacter = '•'
	}
}

// NewField creates a new unfocused field.
func NewField(label string, s *styles.Styles, opts ...Option) *Field {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = charLimit
	ti.Width = defaultWidth

	f := &Field{
		label:     label,
		textinput: ti,
		styles:    s,
		width:     defaultWidth,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Update handles input messages.
func (f *Field) Update(msg tea.Msg) (*Field, tea.Cmd) {
	var cmd tea.Cmd
	f.textinput, cmd = f.textinput.Update(msg)
	return f, cmd
}

// View renders the label and the input box.
func (f *Field) View() string {
	box := f.styles.Field
	if f.Focused() {
		box = f.styles.FocusedField
	}
	label := f.styles.Label.Render(f.label)
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, box.Render(f.textinput.View()))
}

// Label returns the field label.
func (f *Field) Label() string {
	return f.label
}

// Value returns the current input value.
func (f *Field) Value() string {
	return f.textinput.Value()
}

// SetValue sets the input value.
func (f *Field) SetValue(value string) {
	f.textinput.SetValue(value)
}

// IsMasked reports whether the field hides its input.
func (f *Field) IsMasked() bool {
	return f.textinput.EchoMode == textinput.EchoPassword
}

// Focus sets focus on the field.
func (f *Field) Focus() tea.Cmd {
	return f.textinput.Focus()
}

// Blur removes focus from the field.
func (f *Field) Blur() {
	f.textinput.Blur()
}

// Focused returns whether the field is focused.
func (f *Field) Focused() bool {
	return f.textinput.Focused()
}

// SetWidth sets the total width available to the field.
func (f *Field) SetWidth(width int) {
	f.width = width
	// label column plus border and padding
	inputWidth := width - f.styles.Label.GetWidth() - 4
	if inputWidth < minWidth {
		inputWidth = minWidth
	}
	f.textinput.Width = inputWidth
}

// Width returns the current width.
func (f *Field) Width() int {
	return f.width
}
