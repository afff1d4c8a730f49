package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/adaptype/adaptype/internal/model"
	"github.com/adaptype/adaptype/internal/session"
)

const (
	tabProblemWords = iota
	tabFastest
	tabSlowest
	tabCombos
)

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	statsHeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// statsView renders the live performance rankings inside the practice TUI.
type statsView struct {
	tabs      []string
	activeTab int
	tables    []table.Model

	width  int
	height int
}

func newStatsView() statsView {
	v := statsView{
		tabs:   []string{"Problem Words", "Fastest", "Slowest", "Combos"},
		tables: make([]table.Model, 4),
	}
	for i := range v.tables {
		v.tables[i] = table.New(
			table.WithHeight(1),
			table.WithFocused(true),
			table.WithStyles(statsTableStyles()),
		)
	}
	return v
}

func (v *statsView) resize(width, height int) {
	v.width = width
	v.height = height
	tableHeight := height - 4
	if tableHeight < 1 {
		tableHeight = 1
	}
	for i := range v.tables {
		v.tables[i].SetHeight(tableHeight)
	}
}

// refresh rebuilds the tables from the session's current trackers.
func (v *statsView) refresh(sess *session.Session) {
	wordWidth := 6
	widen := func(word string) {
		if w := runewidth.StringWidth(word); w > wordWidth {
			wordWidth = w
		}
	}
	for _, e := range sess.ProblemWords() {
		widen(e.Word)
	}
	for _, e := range sess.FastestWords() {
		widen(e.Word)
	}
	for _, e := range sess.SlowestWords() {
		widen(e.Word)
	}

	problemRows := make([]table.Row, 0, len(sess.ProblemWords()))
	for _, e := range sess.ProblemWords() {
		problemRows = append(problemRows, table.Row{
			e.Word,
			fmt.Sprintf("%.1f", e.Speed),
			fmt.Sprintf("%d", e.Backspaces),
			fmt.Sprintf("%d", e.CorrectAttempts),
		})
	}
	v.tables[tabProblemWords].SetColumns([]table.Column{
		{Title: "Word", Width: wordWidth},
		{Title: "WPM", Width: 6},
		{Title: "Backspaces", Width: 10},
		{Title: "Correct", Width: 7},
	})
	v.tables[tabProblemWords].SetRows(problemRows)

	v.setWordSpeedTab(tabFastest, wordWidth, sess.FastestWords())
	v.setWordSpeedTab(tabSlowest, wordWidth, sess.SlowestWords())

	comboRows := make([]table.Row, 0, len(sess.StruggleCombinations()))
	for _, c := range sess.StruggleCombinations() {
		comboRows = append(comboRows, table.Row{
			c.Combination,
			fmt.Sprintf("%.1f", c.Speed),
		})
	}
	v.tables[tabCombos].SetColumns([]table.Column{
		{Title: "Combination", Width: 11},
		{Title: "WPM", Width: 6},
	})
	v.tables[tabCombos].SetRows(comboRows)
}

func (v *statsView) setWordSpeedTab(tab, wordWidth int, entries []model.WordSpeed) {
	rows := make([]table.Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, table.Row{e.Word, fmt.Sprintf("%.1f", e.Speed)})
	}
	v.tables[tab].SetColumns([]table.Column{
		{Title: "Word", Width: wordWidth},
		{Title: "WPM", Width: 6},
	})
	v.tables[tab].SetRows(rows)
}

func (v *statsView) handleKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "left", "h":
		v.moveTab(-1)
	case "right", "l":
		v.moveTab(1)
	case "g", "home":
		v.tables[v.activeTab].GotoTop()
	case "G", "end":
		v.tables[v.activeTab].GotoBottom()
	default:
		v.tables[v.activeTab], _ = v.tables[v.activeTab].Update(msg)
	}
}

func (v *statsView) moveTab(delta int) {
	n := len(v.tabs)
	v.activeTab = (v.activeTab + delta + n) % n
}

func (v *statsView) render(width, height int) string {
	nav := v.renderNav()
	body := v.tables[v.activeTab].View()
	hint := statsHeaderStyle.Render("←/→ tab · ↑/↓ scroll · Esc back")
	content := strings.Join([]string{nav, body, hint}, "\n")
	if width == 0 || height == 0 {
		return content
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, content)
}

func (v *statsView) renderNav() string {
	parts := make([]string, 0, len(v.tabs))
	for i, tab := range v.tabs {
		if i == v.activeTab {
			parts = append(parts, activeNavStyle.Render(tab))
		} else {
			parts = append(parts, inactiveNavStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

func statsTableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	return styles
}
