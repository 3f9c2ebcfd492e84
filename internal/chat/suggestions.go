package chat

import (
	"strconv"
	"strings"

	"github.com/adamavenir/mentions/internal/mention"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	menuZone  = "mention-menu"
	inputZone = "mention-input"
)

// menuRow is the rendered handle for one suggestion row.
type menuRow struct {
	highlighted bool
}

func (r *menuRow) SetHighlighted(on bool) {
	r.highlighted = on
}

type menuEntry struct {
	index   int
	value   string
	row     *menuRow
	onClick func()
}

func itemZone(index int) string {
	return "mention-item-" + strconv.Itoa(index)
}

// syncMenu re-renders the suggestion entries after the core changed state.
func (m *Model) syncMenu() {
	m.menu = mention.Items(m.mentions, func(item mention.Item) menuEntry {
		row := m.rows[item.Index]
		item.SetItemRef(row)
		return menuEntry{
			index:   item.Index,
			value:   item.DataValue,
			row:     row,
			onClick: item.OnClick,
		}
	})
	if m.hoverIndex >= len(m.menu) {
		m.hoverIndex = -1
	}
}

func (m *Model) suggestionHeight() int {
	if len(m.menu) == 0 {
		return 0
	}
	return lipgloss.Height(m.renderSuggestions())
}

func (m *Model) renderSuggestions() string {
	if len(m.menu) == 0 {
		return ""
	}
	width := m.mainWidth()
	rowWidth := width - 4
	normalStyle := lipgloss.NewStyle().Foreground(textColor).Background(menuBg).Padding(0, 1)
	activeStyle := normalStyle.Background(menuActiveBg).Foreground(userColor).Bold(true)
	if rowWidth > 0 {
		normalStyle = normalStyle.Width(rowWidth)
		activeStyle = activeStyle.Width(rowWidth)
	}

	lines := make([]string, 0, len(m.menu))
	for _, entry := range m.menu {
		style := normalStyle
		if m.rowHighlighted(entry) {
			style = activeStyle
		}
		line := "@" + entry.value
		if rowWidth > 2 {
			line = ansi.Truncate(line, rowWidth-2, "…")
		}
		lines = append(lines, m.zoneManager.Mark(itemZone(entry.index), style.Render(line)))
	}
	menu := lipgloss.NewStyle().Background(menuBg).Padding(0, 1).Render(strings.Join(lines, "\n"))
	return m.zoneManager.Mark(menuZone, menu)
}

// rowHighlighted reports whether entry draws with the active style. The
// hover style only applies while no row holds the keyboard highlight.
func (m *Model) rowHighlighted(entry menuEntry) bool {
	if entry.row.highlighted {
		return true
	}
	return entry.index == m.hoverIndex && m.mentions.Active() == mention.NoActive
}

// commitFirstOrActive is the Tab behavior: take the highlighted row, or the
// first one when the pointer cleared the highlight.
func (m *Model) commitFirstOrActive() (bool, tea.Cmd) {
	if !m.mentions.Open() {
		return false, nil
	}
	index := m.mentions.Active()
	if index == mention.NoActive {
		index = 0
	}
	m.mentions.Commit(index)
	m.syncMenu()
	m.resize()
	return true, m.field.takeFocusCmd()
}

func (m *Model) clickMenuItem(index int) (bool, tea.Cmd) {
	if index < 0 || index >= len(m.menu) {
		return false, nil
	}
	m.menu[index].onClick()
	m.hoverIndex = -1
	m.syncMenu()
	m.resize()
	return true, m.field.takeFocusCmd()
}
