package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m *Model) View() string {
	statusLine := lipgloss.NewStyle().Foreground(statusColor).Render(truncateLine(m.status, m.mainWidth()))

	lines := []string{m.viewport.View()}
	if suggestions := m.renderSuggestions(); suggestions != "" {
		lines = append(lines, suggestions)
	} else {
		lines = append(lines, "") // margin line when the menu is closed
	}
	lines = append(lines, m.renderInput(), statusLine)
	return m.zoneManager.Scan(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m *Model) renderInput() string {
	style := lipgloss.NewStyle().Background(inputBg).Padding(0, inputPadding)
	if width := m.mainWidth(); width > 0 {
		style = style.Width(width)
	}
	blank := style.Render("")
	box := strings.Join([]string{blank, style.Render(m.input.View()), blank}, "\n")
	return m.zoneManager.Mark(inputZone, box)
}

func (m *Model) hintLine() string {
	newline := "alt+enter newline · "
	if !m.multiline {
		newline = ""
	}
	return "@ to mention · ↑/↓ choose · enter send · " + newline + "ctrl+y copy · ctrl+c quit"
}

func truncateLine(value string, maxLen int) string {
	if maxLen <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= maxLen {
		return value
	}
	if maxLen <= 1 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-1]) + "…"
}
