package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jriverag/ganttop/engine"
	"github.com/jriverag/ganttop/model"
)

// focusArea identifies which pane receives movement keys.
type focusArea int

const (
	focusSelector focusArea = iota
	focusChart
)

// Model is the bubbletea model: an equipment selector on the left and
// the Gantt panel on the right. Every selection change goes through
// engine.OnSelectionChanged; the model itself holds no schedule data.
type Model struct {
	engine  *engine.Engine
	options []string

	selected int // index into options, -1 when none
	spec     model.ChartSpec
	cursor   int // highlighted bar in the chart

	focus    focusArea
	showHelp bool
	width    int
	height   int
}

// NewModel creates the TUI model. initial picks the starting equipment;
// when empty or unknown the first available option wins, matching the
// selector's default.
func NewModel(eng *engine.Engine, initial string) Model {
	m := Model{
		engine:   eng,
		options:  eng.Equipments(),
		selected: -1,
		// Sized for tests and the first frame; WindowSizeMsg overrides.
		width:  100,
		height: 30,
	}
	if len(m.options) > 0 {
		m.selected = 0
		for i, opt := range m.options {
			if opt == initial {
				m.selected = i
				break
			}
		}
	}
	m.spec = eng.OnSelectionChanged(m.selection())
	return m
}

// selection returns the currently selected equipment key, "" when none.
func (m Model) selection() string {
	if m.selected < 0 || m.selected >= len(m.options) {
		return ""
	}
	return m.options[m.selected]
}

// reselect moves the selector and rebuilds the chart.
func (m *Model) reselect(i int) {
	if len(m.options) == 0 {
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= len(m.options) {
		i = len(m.options) - 1
	}
	if i == m.selected {
		return
	}
	m.selected = i
	m.spec = m.engine.OnSelectionChanged(m.selection())
	m.cursor = 0
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			switch msg.String() {
			case "q", "ctrl+c":
				return m, tea.Quit
			}
			m.showHelp = false
			return m, nil
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "?":
			m.showHelp = true
		case "tab":
			if m.focus == focusSelector {
				m.focus = focusChart
			} else {
				m.focus = focusSelector
			}
		case "j", "down":
			if m.focus == focusSelector {
				m.reselect(m.selected + 1)
			} else if m.cursor < len(m.spec.Bars)-1 {
				m.cursor++
			}
		case "k", "up":
			if m.focus == focusSelector {
				m.reselect(m.selected - 1)
			} else if m.cursor > 0 {
				m.cursor--
			}
		case "g", "home":
			if m.focus == focusSelector {
				m.reselect(0)
			} else {
				m.cursor = 0
			}
		case "G", "end":
			if m.focus == focusSelector {
				m.reselect(len(m.options) - 1)
			} else if n := len(m.spec.Bars); n > 0 {
				m.cursor = n - 1
			}
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.showHelp {
		return m.renderHelp()
	}

	header := headerStyle.Render("ganttop") +
		dimStyle.Render(fmt.Sprintf("  %d activities · %d equipments", m.engine.Len(), len(m.options)))

	chartCursor := m.cursor
	if m.focus != focusChart {
		chartCursor = -1
	}
	selectorW := m.selectorWidth()
	left := m.renderSelector(selectorW)
	right := renderGantt(m.spec, m.width-selectorW-4, chartCursor)

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)

	footer := helpStyle.Render("j/k select · tab focus chart · ? help · q quit")

	return header + "\n\n" + body + "\n" + footer + "\n"
}

func (m Model) selectorWidth() int {
	w := 12
	for _, opt := range m.options {
		if n := lipgloss.Width(opt); n > w {
			w = n
		}
	}
	if limit := m.width / 3; w > limit && limit > 4 {
		w = limit
	}
	return w
}

// renderSelector draws the equipment list, one option per row.
func (m Model) renderSelector(innerW int) string {
	label := dimStyle.Render("Equipment")
	if m.focus == focusSelector {
		label = titleStyle.Render("Equipment")
	}
	lines := []string{label}
	if len(m.options) == 0 {
		lines = append(lines, helpStyle.Render("none loaded"))
	}
	for i, opt := range m.options {
		row := styledPad(valueStyle.Render(opt), innerW)
		if i == m.selected {
			row = styledPad(selectedStyle.Render("› "+opt), innerW)
		}
		lines = append(lines, row)
	}
	return renderBox(lines, innerW)
}

func (m Model) renderHelp() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("ganttop — keys") + "\n\n")
	for _, row := range [][2]string{
		{"j / k, ↓ / ↑", "move selection or bar cursor"},
		{"g / G", "jump to first / last"},
		{"tab", "switch focus between selector and chart"},
		{"?", "toggle this help"},
		{"q, ctrl+c", "quit"},
	} {
		sb.WriteString(fmt.Sprintf("  %s  %s\n",
			styledPad(valueStyle.Render(row[0]), 16), helpStyle.Render(row[1])))
	}
	sb.WriteString("\n" + helpStyle.Render("press any key to close"))
	return sb.String()
}
