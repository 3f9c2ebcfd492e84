package chat

import tea "github.com/charmbracelet/bubbletea"

func (m *Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionMotion && msg.Button == tea.MouseButtonNone {
		m.handleMouseMotion(m.menuIndexAt(msg), m.zoneManager.Get(menuZone).InBounds(msg))
		return m, nil
	}
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		return m, m.handleMouseClick(msg)
	}
	isWheel := msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown
	if isWheel {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

// menuIndexAt returns the suggestion row under the pointer, or -1.
func (m *Model) menuIndexAt(msg tea.MouseMsg) int {
	for _, entry := range m.menu {
		if m.zoneManager.Get(itemZone(entry.index)).InBounds(msg) {
			return entry.index
		}
	}
	return -1
}

// handleMouseMotion gives the highlight to the pointer while it is over the
// menu, so keyboard and pointer highlights never show together.
func (m *Model) handleMouseMotion(index int, overMenu bool) {
	if !overMenu && index < 0 {
		m.hoverIndex = -1
		return
	}
	m.mentions.OnMenuPointerMove()
	m.hoverIndex = index
}

func (m *Model) handleMouseClick(msg tea.MouseMsg) tea.Cmd {
	if index := m.menuIndexAt(msg); index >= 0 {
		_, cmd := m.clickMenuItem(index)
		return cmd
	}
	if m.zoneManager.Get(menuZone).InBounds(msg) {
		return nil
	}
	if m.zoneManager.Get(inputZone).InBounds(msg) {
		return m.clickInput()
	}
	m.clickAway()
	return nil
}

// clickInput handles a click inside the input. A click on an unfocused
// input only focuses it.
func (m *Model) clickInput() tea.Cmd {
	m.mentions.OnClick()
	cmd := m.focusInput()
	m.syncMenu()
	m.resize()
	return cmd
}

func (m *Model) clickAway() {
	m.mentions.OnClickAway()
	m.blurInput()
	m.hoverIndex = -1
	m.syncMenu()
	m.resize()
}
