package main

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/AnatoleLucet/rxcounter/counter"
)

func newTUICommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the interactive four-button UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			labels, err := opts.labels()
			if err != nil {
				return err
			}

			// stderr would corrupt the alt screen, so logs only go to --log-file
			logger, closeLog, err := opts.logger(nil)
			if err != nil {
				return err
			}
			defer closeLog()

			program := tea.NewProgram(newModel(labels, logger), tea.WithAltScreen())
			_, err = program.Run()
			return err
		},
	}
}

type button int

const (
	buttonStart button = iota
	buttonIncrement
	buttonRaiseError
	buttonComplete

	buttonCount
)

var buttonCaptions = [buttonCount]string{
	buttonStart:      "Start new counter",
	buttonIncrement:  "Count",
	buttonRaiseError: "Raise error",
	buttonComplete:   "Complete",
}

// keyMap defines the key bindings of the counter TUI.
type keyMap struct {
	// Buttons.
	Start      key.Binding
	Increment  key.Binding
	RaiseError key.Binding
	Complete   key.Binding

	// Focus and press the focused button.
	Next     key.Binding
	Previous key.Binding
	Press    key.Binding

	// Error prompt.
	Submit key.Binding
	Cancel key.Binding

	Quit key.Binding
}

var defaultKeyMap = keyMap{
	Start: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "start"),
	),
	Increment: key.NewBinding(
		key.WithKeys("i", "+", " "),
		key.WithHelp("i/space", "count"),
	),
	RaiseError: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "error"),
	),
	Complete: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "complete"),
	),
	Next: key.NewBinding(
		key.WithKeys("tab", "right", "l"),
		key.WithHelp("tab", "next"),
	),
	Previous: key.NewBinding(
		key.WithKeys("shift+tab", "left", "h"),
		key.WithHelp("S-tab", "previous"),
	),
	Press: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "press"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "raise"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "dismiss"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// screen is the counter.Display the controller renders into; View reads it.
type screen struct {
	counter.DisplayState
}

func (s *screen) SetStatus(text string) { s.Status = text }
func (s *screen) SetCurrentCount(text string) { s.CurrentCount = text }
func (s *screen) SetEvenCount(text string) { s.EvenCount = text }

type model struct {
	controller *counter.Controller
	screen     *screen
	keys       keyMap

	focus button

	// set while the error message prompt is open
	prompting bool
	prompt    textinput.Model
}

func newModel(labels counter.Labels, logger *slog.Logger) model {
	s := &screen{}

	prompt := textinput.New()
	prompt.Placeholder = labels.ErrorFallback
	prompt.CharLimit = 200

	return model{
		controller: counter.New(s, counter.WithLabels(labels), counter.WithLogger(logger)),
		screen:     s,
		keys:       defaultKeyMap,
		prompt:     prompt,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.prompting {
			var cmd tea.Cmd
			m.prompt, cmd = m.prompt.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.prompting {
		return m.updatePrompt(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Next):
		m.focus = (m.focus + 1) % buttonCount
	case key.Matches(keyMsg, m.keys.Previous):
		m.focus = (m.focus + buttonCount - 1) % buttonCount
	case key.Matches(keyMsg, m.keys.Press):
		return m.press(m.focus)
	case key.Matches(keyMsg, m.keys.Start):
		return m.press(buttonStart)
	case key.Matches(keyMsg, m.keys.Increment):
		return m.press(buttonIncrement)
	case key.Matches(keyMsg, m.keys.RaiseError):
		return m.press(buttonRaiseError)
	case key.Matches(keyMsg, m.keys.Complete):
		return m.press(buttonComplete)
	}

	return m, nil
}

func (m model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	case key.Matches(msg, m.keys.Submit):
		return m.closePrompt(m.prompt.Value())
	case key.Matches(msg, m.keys.Cancel):
		// a dismissed prompt still raises, with the fallback message
		return m.closePrompt("")
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m model) closePrompt(message string) (tea.Model, tea.Cmd) {
	m.prompting = false
	m.prompt.Blur()
	m.controller.RaiseError(message)
	return m, nil
}

func (m model) press(b button) (tea.Model, tea.Cmd) {
	m.focus = b
	if !m.enabled(b) {
		return m, nil
	}

	switch b {
	case buttonStart:
		m.controller.StartNewCounter()
	case buttonIncrement:
		m.controller.Increment()
	case buttonRaiseError:
		m.prompting = true
		m.prompt.Reset()
		return m, m.prompt.Focus()
	case buttonComplete:
		m.controller.Complete()
	}

	return m, nil
}

// enabled reports whether pressing b does anything: only start works without an active counter.
func (m model) enabled(b button) bool {
	return b == buttonStart || m.controller.State().Active()
}

var (
	buttonStyle         = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder())
	focusedButtonStyle  = buttonStyle.BorderForeground(lipgloss.Color("12")).Bold(true)
	disabledButtonStyle = buttonStyle.Faint(true)
	slotNameStyle       = lipgloss.NewStyle().Width(16).Faint(true)
	promptStyle         = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
	helpStyle           = lipgloss.NewStyle().Faint(true)
)

func (m model) View() string {
	var b strings.Builder

	buttons := make([]string, 0, buttonCount)
	for btn := range buttonCount {
		style := buttonStyle
		switch {
		case !m.enabled(btn):
			style = disabledButtonStyle
		case btn == m.focus:
			style = focusedButtonStyle
		}
		buttons = append(buttons, style.Render(buttonCaptions[btn]))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, buttons...))
	b.WriteString("\n\n")

	for _, row := range [][2]string{
		{"Status", m.screen.Status},
		{"Current count", m.screen.CurrentCount},
		{"Even count", m.screen.EvenCount},
	} {
		b.WriteString(slotNameStyle.Render(row[0]))
		b.WriteString(row[1])
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.prompting {
		b.WriteString(promptStyle.Render(m.controller.Labels().Prompt + "\n" + m.prompt.View()))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(helpLine(m.keys.Submit, m.keys.Cancel)))
	} else {
		b.WriteString(helpStyle.Render(helpLine(
			m.keys.Start, m.keys.Increment, m.keys.RaiseError, m.keys.Complete,
			m.keys.Next, m.keys.Press, m.keys.Quit,
		)))
	}
	b.WriteString("\n")

	return b.String()
}

func helpLine(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		parts = append(parts, help.Key+" "+help.Desc)
	}
	return strings.Join(parts, " • ")
}
