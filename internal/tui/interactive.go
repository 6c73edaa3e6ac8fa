// Package tui is the interactive terminal front end: pick an equation kind,
// type its coefficients, read the solved report.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/polysolve/internal/analysis"
	"github.com/san-kum/polysolve/internal/equation"
	"github.com/san-kum/polysolve/internal/report"
	"github.com/san-kum/polysolve/internal/solve"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	red    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

var kindInfo = map[equation.Kind]string{
	equation.Linear:    "a·x + b = 0",
	equation.Quadratic: "a·x² + b·x + c = 0",
	equation.Cubic:     "a·x³ + b·x² + c·x + d = 0",
}

const (
	stateMenu = iota
	stateInput
	stateReport
)

type model struct {
	state  int
	cursor int
	kinds  []equation.Kind

	kind   equation.Kind
	fields []string // one buffer per coefficient, highest power first
	field  int
	errmsg string
	solved string

	width, height int
}

// New returns the initial TUI model.
func New() tea.Model {
	return model{
		state: stateMenu,
		kinds: []equation.Kind{equation.Linear, equation.Quadratic, equation.Cubic},
		width: 80, height: 24,
	}
}

// Run starts the interactive program and blocks until it exits.
func Run() error {
	_, err := tea.NewProgram(New()).Run()
	return err
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateMenu:
		return m.menuKey(msg)
	case stateInput:
		return m.inputKey(msg)
	case stateReport:
		return m.reportKey(msg)
	}
	return m, nil
}

func (m model) menuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.kinds)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.kind = m.kinds[m.cursor]
		m.fields = make([]string, m.kind.Degree()+1)
		m.field = 0
		m.errmsg = ""
		m.state = stateInput
	}
	return m, nil
}

func (m model) inputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.state = stateMenu
		return m, nil
	case "up", "shift+tab":
		if m.field > 0 {
			m.field--
		}
	case "down", "tab":
		if m.field < len(m.fields)-1 {
			m.field++
		}
	case "backspace":
		if buf := m.fields[m.field]; len(buf) > 0 {
			m.fields[m.field] = buf[:len(buf)-1]
		}
	case "enter":
		if m.field < len(m.fields)-1 {
			m.field++
			return m, nil
		}
		return m.trySolve()
	default:
		if s := msg.String(); len(s) == 1 && strings.ContainsAny(s, "0123456789.-+eE") {
			m.fields[m.field] += s
		}
	}
	return m, nil
}

func (m model) trySolve() (tea.Model, tea.Cmd) {
	coeffs := make([]float64, len(m.fields))
	for i, buf := range m.fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(buf), 64)
		if err != nil {
			m.errmsg = fmt.Sprintf("coefficient %s is not a number", fieldName(i))
			return m, nil
		}
		coeffs[i] = v
	}

	eq, err := equation.New(m.kind.Degree(), coeffs)
	if err != nil {
		m.errmsg = err.Error()
		return m, nil
	}

	m.solved = report.Render(eq, solve.Roots(eq), analysis.Analyze(eq))
	m.state = stateReport
	return m, nil
}

func (m model) reportKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc", "enter":
		m.state = stateMenu
	}
	return m, nil
}

func fieldName(i int) string { return string(rune('a' + i)) }

func (m model) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case stateInput:
		return m.viewInput()
	case stateReport:
		return m.viewReport()
	}
	return ""
}

func (m model) viewMenu() string {
	var b strings.Builder
	b.WriteString(cyan.Render("polysolve") + dim.Render("  closed-form equation solver") + "\n\n")

	for i, kind := range m.kinds {
		marker := "  "
		line := fmt.Sprintf("%-10s %s", kind, kindInfo[kind])
		if i == m.cursor {
			marker = green.Render("> ")
			line = white.Render(line)
		} else {
			line = dim.Render(line)
		}
		b.WriteString(marker + line + "\n")
	}

	b.WriteString("\n" + dim.Render("↑/↓ select · enter confirm · q quit"))
	return b.String()
}

func (m model) viewInput() string {
	var b strings.Builder
	b.WriteString(cyan.Render(fmt.Sprintf("%s  ", m.kind)) + dim.Render(kindInfo[m.kind]) + "\n\n")

	for i, buf := range m.fields {
		label := fieldName(i)
		val := buf
		if val == "" {
			val = dim.Render("_")
		}
		if i == m.field {
			b.WriteString(yellow.Render(fmt.Sprintf("  %s = ", label)) + white.Render(val) + yellow.Render("▌") + "\n")
		} else {
			b.WriteString(dim.Render(fmt.Sprintf("  %s = ", label)) + white.Render(val) + "\n")
		}
	}

	if m.errmsg != "" {
		b.WriteString("\n" + red.Render(m.errmsg) + "\n")
	}

	b.WriteString("\n" + dim.Render("enter next/solve · tab move · esc back"))
	return b.String()
}

func (m model) viewReport() string {
	return m.solved + "\n" + dim.Render("enter/esc back · q quit")
}
