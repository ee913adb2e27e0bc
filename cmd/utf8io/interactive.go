package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/wippyai/winutf8io"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateSelectArg modelState = iota
	stateEditText
)

type inspectorModel struct {
	input    textinput.Model
	args     []string
	width    int
	selected int
	state    modelState
}

// inspection is what the inspector shows for one string.
type inspection struct {
	err     error
	text    string
	utf8    []byte
	units   []uint16
	length  int
	columns int
}

func newInspectorModel(args []string) *inspectorModel {
	ti := textinput.New()
	ti.Placeholder = "type text to inspect"
	ti.Prompt = "text: "
	ti.Width = 40
	return &inspectorModel{
		input: ti,
		args:  args,
		width: winutf8io.ConsoleWidth(),
		state: stateSelectArg,
	}
}

func (m *inspectorModel) Init() tea.Cmd {
	return nil
}

func (m *inspectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state == stateSelectArg {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectArg && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectArg && m.selected < len(m.args)-1 {
				m.selected++
			}

		case "tab":
			if m.state == stateSelectArg {
				m.state = stateEditText
				return m, m.input.Focus()
			}
			m.state = stateSelectArg
			m.input.Blur()
			return m, nil

		case "esc":
			if m.state == stateEditText {
				m.state = stateSelectArg
				m.input.Blur()
				return m, nil
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
	}

	if m.state == stateEditText {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *inspectorModel) current() string {
	if m.state == stateEditText {
		return m.input.Value()
	}
	if len(m.args) == 0 {
		return ""
	}
	return m.args[m.selected]
}

func inspect(s string) inspection {
	in := inspection{
		text:    s,
		utf8:    []byte(s),
		length:  winutf8io.Len(s),
		columns: runewidth.StringWidth(s),
	}
	in.units, in.err = winutf8io.ToWide([]byte(s))
	return in
}

func (m *inspectorModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("UTF-8 Inspector"))
	b.WriteString(fmt.Sprintf(" console width %d\n\n", m.width))

	b.WriteString("Arguments:\n\n")
	for i, a := range m.args {
		line := fmt.Sprintf("[%d] %s", i, a)
		if i == m.selected && m.state == stateSelectArg {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	in := inspect(m.current())
	b.WriteString(field("UTF-8 bytes", fmt.Sprintf("% x", in.utf8)))
	if in.err != nil {
		b.WriteString(field("wide units", errorStyle.Render(in.err.Error())))
	} else {
		b.WriteString(field("wide units", formatUnits(in.units)))
	}
	b.WriteString(field("Len", fmt.Sprint(in.length)))
	b.WriteString(field("columns", fmt.Sprint(in.columns)))
	b.WriteString("\n")

	if m.state == stateSelectArg {
		b.WriteString(helpStyle.Render("↑/↓ select • tab edit text • q quit"))
	} else {
		b.WriteString(helpStyle.Render("tab/esc back to arguments • ctrl+c quit"))
	}
	return b.String()
}

func field(label, value string) string {
	return labelStyle.Render(runewidth.FillRight(label, 12)) + valueStyle.Render(value) + "\n"
}

func formatUnits(units []uint16) string {
	parts := make([]string, len(units))
	for i, u := range units {
		parts[i] = fmt.Sprintf("%04x", u)
	}
	return strings.Join(parts, " ")
}

func runInteractive(args []string) error {
	p := tea.NewProgram(newInspectorModel(args), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
