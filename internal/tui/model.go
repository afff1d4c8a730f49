// Package tui provides the Bubble Tea practice interface.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/adaptype/adaptype/internal/queue"
	"github.com/adaptype/adaptype/internal/session"
)

var (
	correctStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pendingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	nextWordStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	repeatStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	headerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0"))
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// Model implements the Bubble Tea practice UI.
type Model struct {
	sess *session.Session

	width  int
	height int

	showStats bool
	stats     statsView
}

// NewModel constructs a practice TUI model over a running session.
func NewModel(sess *session.Session) *Model {
	return &Model{sess: sess, stats: newStatsView()}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.stats.resize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.showStats = !m.showStats
		if m.showStats {
			m.stats.refresh(m.sess)
		}
		return m, nil
	case tea.KeyTab:
		m.sess.SwitchList((m.sess.ListIndex() + 1) % maxInt(len(m.sess.Lists()), 1))
		return m, nil
	case tea.KeyShiftTab:
		n := maxInt(len(m.sess.Lists()), 1)
		m.sess.SwitchList((m.sess.ListIndex() + n - 1) % n)
		return m, nil
	}

	if m.showStats {
		m.stats.handleKey(msg)
		return m, nil
	}

	switch msg.Type {
	case tea.KeyBackspace, tea.KeyDelete:
		m.sess.OnKey(session.Key{Kind: session.KeyBackspace})
	case tea.KeySpace:
		m.sess.OnKey(session.Key{Kind: session.KeyRune, Rune: ' '})
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			m.sess.OnKey(session.Key{Kind: session.KeyRune, Rune: r})
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.showStats {
		return m.stats.render(m.width, m.height)
	}
	content := m.renderPractice()
	if m.width == 0 || m.height == 0 {
		return content
	}
	footer := m.renderFooter()
	if m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

func (m *Model) renderPractice() string {
	header := headerStyle.Render(m.sess.ListName())
	if m.sess.IsProblemRepeat() {
		header += "  " + repeatStyle.Render(fmt.Sprintf("repeat %d/%d", m.sess.ProblemRepetitions(), queue.RequiredRepetitions))
	}

	wordLine := renderWordLine(m.sess.CurrentWord(), m.sess.Input(), m.sess.MistypedPositions())
	nextLine := nextWordStyle.Render(strings.Join(m.sess.NextWords(), "  "))

	return strings.Join([]string{header, "", wordLine, "", nextLine}, "\n")
}

func (m *Model) renderFooter() string {
	segments := []string{
		fmt.Sprintf("Last 10: %.1f WPM", m.sess.RollingAverage()),
		fmt.Sprintf("Session: %.1f WPM", m.sess.AverageWPM()),
		"Tab list · Esc stats · Ctrl+C quit",
	}
	return footerStyle.Render(strings.Join(segments, "  "))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
