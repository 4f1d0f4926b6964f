// Package dictui provides the Bubble Tea dictionary browser.
package dictui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/lexiglyph/internal/model"
	"github.com/verte-zerg/lexiglyph/internal/pipeline"
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
	headerStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	tableMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
)

// Model implements the Bubble Tea dictionary browser.
type Model struct {
	path string
	dict pipeline.Dictionary

	tabs      []string
	activeTab int
	wordTable table.Model

	width  int
	height int

	searchMode  bool
	searchInput textinput.Model
	search      string
}

// NewModel constructs a browser model over a loaded dictionary.
func NewModel(path string, dict pipeline.Dictionary) *Model {
	m := &Model{
		path: path,
		dict: dict,
		tabs: dict.Order,
	}
	m.searchInput = textinput.New()
	m.searchInput.Prompt = "Search: "
	m.searchInput.CharLimit = 0
	m.searchInput.Cursor.SetMode(cursor.CursorBlink)
	m.wordTable = newWordTable()
	m.refreshRows()
	return m
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
		m.updateLayout()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.searchMode {
			return m.updateSearch(msg)
		}
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "left", "h":
			m.moveTab(-1)
			return m, tea.ClearScreen
		case "right", "l":
			m.moveTab(1)
			return m, tea.ClearScreen
		case "/":
			return m.startSearch()
		case "g", "home":
			m.wordTable.GotoTop()
			return m, nil
		case "G", "end":
			m.wordTable.GotoBottom()
			return m, nil
		default:
			var cmd tea.Cmd
			m.wordTable, cmd = m.wordTable.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	headerHeight, bodyHeight, footerHeight := m.layoutHeights()
	header := fitLines(m.renderHeader(), m.width, headerHeight)
	body := fitLines(m.renderBody(), m.width, bodyHeight)
	footer := fitLines(m.renderFooter(), m.width, footerHeight)
	return strings.Join([]string{header, body, footer}, "\n")
}

func (m *Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.searchMode = false
		m.searchInput.SetValue(m.search)
		return m, nil
	case tea.KeyEnter:
		m.search = strings.TrimSpace(m.searchInput.Value())
		m.searchMode = false
		m.refreshRows()
		return m, nil
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m *Model) startSearch() (tea.Model, tea.Cmd) {
	m.searchMode = true
	m.searchInput.SetValue(m.search)
	return m, m.searchInput.Focus()
}

func (m *Model) moveTab(delta int) {
	count := len(m.tabs)
	if count == 0 {
		return
	}
	next := m.activeTab + delta
	if next < 0 {
		next = count - 1
	}
	if next >= count {
		next = 0
	}
	m.activeTab = next
	m.refreshRows()
}

func (m *Model) activeEntries() []model.Entry {
	if m.activeTab < 0 || m.activeTab >= len(m.tabs) {
		return nil
	}
	entries := m.dict.Buckets[m.tabs[m.activeTab]]
	if m.search == "" {
		return entries
	}
	needle := strings.ToUpper(m.search)
	matched := make([]model.Entry, 0, len(entries))
	for _, entry := range entries {
		if strings.Contains(entry.Word, needle) {
			matched = append(matched, entry)
		}
	}
	return matched
}

func (m *Model) refreshRows() {
	entries := m.activeEntries()
	rows := make([]table.Row, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, table.Row{entry.Word, fmt.Sprintf("%.2f", entry.Score)})
	}
	m.wordTable.SetRows(rows)
	m.wordTable.GotoTop()
}

func (m *Model) layoutHeights() (headerHeight, bodyHeight, footerHeight int) {
	tabsHeight := lipgloss.Height(activeNavStyle.Render("X"))
	if tabsHeight < 1 {
		tabsHeight = 1
	}
	headerHeight = tabsHeight + 1
	footerHeight = 1
	bodyHeight = m.height - headerHeight - footerHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	return headerHeight, bodyHeight, footerHeight
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	_, bodyHeight, _ := m.layoutHeights()
	m.wordTable.SetWidth(m.width)
	m.wordTable.SetHeight(maxInt(1, bodyHeight-1))
	promptWidth := lipgloss.Width(m.searchInput.Prompt)
	m.searchInput.Width = maxInt(10, m.width-promptWidth-2)
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		label := fmt.Sprintf("%s (%d)", tab, len(m.dict.Buckets[tab]))
		if i == m.activeTab {
			parts = append(parts, activeNavStyle.Render(label))
		} else {
			parts = append(parts, inactiveNavStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderHeader() string {
	tabs := padLines(m.renderTabs(), m.width)
	summary := fmt.Sprintf("Dictionary: %s", m.path)
	if m.search != "" {
		summary += fmt.Sprintf("  search=%q", m.search)
	}
	summary = truncateLine(summary, m.width)
	return tabs + "\n" + headerStyle.Render(summary)
}

func (m *Model) renderBody() string {
	if m.searchMode {
		return m.searchInput.View()
	}
	if len(m.activeEntries()) == 0 {
		if m.search != "" {
			return "No matching words in this tier."
		}
		return "No words in this tier."
	}
	return tableMutedStyle.Render(m.wordTable.View())
}

func (m *Model) renderFooter() string {
	if m.searchMode {
		return headerStyle.Render("enter: apply  esc: cancel")
	}
	return headerStyle.Render("Nav: left/right  Scroll: up/down/pgup/pgdn  Search: /  Quit: q")
}

func newWordTable() table.Model {
	columns := []table.Column{
		{Title: "Word", Width: 14},
		{Title: "Score", Width: 8},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(nil),
		table.WithHeight(1),
		table.WithFocused(true),
	)
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
	t.SetStyles(styles)
	return t
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func padLines(s string, width int) string {
	if width <= 0 || s == "" {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	return strings.Join(lines, "\n")
}

func padLine(line string, width int) string {
	lineWidth := lipgloss.Width(line)
	if lineWidth < width {
		return line + strings.Repeat(" ", width-lineWidth)
	}
	return line
}

func fitLines(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}

func truncateLine(s string, width int) string {
	if width <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}
