// Package loginform renders the LoginForm component in a terminal. Keystrokes drive the
// mounted component; Enter submits it and each emitted submission is forwarded
package loginform

import (
	"context"
	"fmt"

	form "stubdemo/internal/components/loginform"
	"stubdemo/internal/platform/component"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	purple = lipgloss.Color("#7D56F4")
	white  = lipgloss.Color("#FAFAFA")
	gray   = lipgloss.Color("#626262")

	titleStyle = lipgloss.NewStyle().
			Foreground(white).
			Background(purple).
			Padding(0, 1).
			Bold(true)
	docStyle   = lipgloss.NewStyle().Margin(1, 2)
	labelStyle = lipgloss.NewStyle().Foreground(purple).Bold(true)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F87"))
	helpStyle  = lipgloss.NewStyle().Foreground(gray)
)

// Forwarder delivers one submission, e.g. to the events stub
type Forwarder func(ctx context.Context, s form.Submission) error

// ForwardedMsg reports the outcome of forwarding one submission
type ForwardedMsg struct {
	Submission form.Submission
	Err        error
}

// Model is the bubbletea model around a mounted LoginForm
type Model struct {
	ctx     context.Context
	input   textinput.Model
	form    *form.Form
	w       *component.Wrapper
	field   *component.NodeWrapper
	forward Forwarder

	pending []form.Submission
	sent    int
	status  string
	err     error
}

// New mounts a LoginForm. forward may be nil, then submissions are only counted
func New(ctx context.Context, forward Forwarder) *Model {
	ti := textinput.New()
	ti.Placeholder = "your name"
	ti.Prompt = "> "
	ti.CharLimit = 256
	ti.Focus()

	m := &Model{ctx: ctx, input: ti, form: form.New(), forward: forward}
	m.w = component.Mount(m.form, component.OnEmit(form.EventSubmitted, func(args []any) {
		if s, ok := args[0].(form.Submission); ok {
			m.pending = append(m.pending, s)
		}
	}))
	m.field = m.w.Find(`input[type="text"]`)
	return m
}

// Wrapper exposes the mounted component
func (m *Model) Wrapper() *component.Wrapper { return m.w }

// Init starts the cursor blink
func (m *Model) Init() tea.Cmd { return textinput.Blink }

// Update routes keys to the input and the component
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.w.Unmount()
			return m, tea.Quit
		case tea.KeyEnter:
			return m, m.submit()
		}
	case ForwardedMsg:
		if msg.Err != nil {
			m.err = msg.Err
			m.status = fmt.Sprintf("forwarding %q failed", msg.Submission.Name)
			return m, nil
		}
		m.err = nil
		m.sent++
		m.status = fmt.Sprintf("submitted %q", msg.Submission.Name)
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != before {
		if err := m.field.SetValue(v); err != nil {
			m.err = err
			m.status = "input rejected"
		}
	}
	return m, cmd
}

func (m *Model) submit() tea.Cmd {
	if err := m.w.Trigger("submit"); err != nil {
		m.err = err
		m.status = "submit failed"
		return nil
	}
	subs := m.pending
	m.pending = nil

	cmds := make([]tea.Cmd, 0, len(subs))
	for _, s := range subs {
		if m.forward == nil {
			cmds = append(cmds, func() tea.Msg { return ForwardedMsg{Submission: s} })
			continue
		}
		cmds = append(cmds, func() tea.Msg {
			return ForwardedMsg{Submission: s, Err: m.forward(m.ctx, s)}
		})
	}
	return tea.Batch(cmds...)
}

// View draws the form
func (m *Model) View() string {
	status := helpStyle.Render(fmt.Sprintf("state: %s  sent: %d", m.form.State(), m.sent))
	switch {
	case m.err != nil:
		status = errStyle.Render(m.status+": "+m.err.Error()) + "\n" + status
	case m.status != "":
		status = okStyle.Render(m.status) + "\n" + status
	}

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(" LOGIN FORM "),
		"",
		labelStyle.Render("Name"),
		m.input.View(),
		"",
		status,
		"",
		helpStyle.Render("[enter: submit] [esc: quit]"),
	))
}
