package chat

import (
	"strings"

	"github.com/adamavenir/mentions/internal/mention"
	tea "github.com/charmbracelet/bubbletea"
)

// mentionKey maps a key press to what the mention core understands. The
// terminal cannot report shift+enter, so alt+enter stands in for it.
// Word jumps (alt+arrow) move more than one character and are not steps.
func mentionKey(msg tea.KeyMsg) mention.Key {
	switch msg.Type {
	case tea.KeyUp:
		return mention.Key{Code: mention.KeyUp}
	case tea.KeyDown:
		return mention.Key{Code: mention.KeyDown}
	case tea.KeyLeft:
		if msg.Alt {
			break
		}
		return mention.Key{Code: mention.KeyLeft}
	case tea.KeyRight:
		if msg.Alt {
			break
		}
		return mention.Key{Code: mention.KeyRight}
	case tea.KeyEnter:
		return mention.Key{Code: mention.KeyEnter, Shift: msg.Alt}
	}
	return mention.Key{Code: mention.KeyOther}
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if handled, cmd := m.handleSuggestionKeys(msg); handled {
		return m, cmd
	}
	if msg.Type == tea.KeyRunes && msg.Paste {
		m.insertInputText(normalizeNewlines(string(msg.Runes)))
		return m, nil
	}

	switch msg.Type {
	case tea.KeyCtrlC:
		if m.input.Value() != "" {
			m.resetInput()
			return m, nil
		}
		return m, tea.Quit
	case tea.KeyCtrlY:
		m.copyLastMessage()
		return m, nil
	case tea.KeyCtrlJ:
		if m.multiline {
			m.insertInputText("\n")
		}
		return m, nil
	case tea.KeyPgUp, tea.KeyPgDown:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	if !m.input.Focused() {
		if msg.Type == tea.KeyRunes || msg.Type == tea.KeyEnter {
			cmd := m.focusInput()
			_, next := m.handleKeyMsg(msg)
			return m, tea.Batch(cmd, next)
		}
		return m, nil
	}

	key := mentionKey(msg)
	if m.mentions.OnKeyDown(key) {
		if key.Code == mention.KeyUp || key.Code == mention.KeyDown {
			m.hoverIndex = -1
		}
		m.syncMenu()
		m.resize()
		return m, m.field.takeFocusCmd()
	}

	if msg.Type == tea.KeyEnter {
		// The pointer owns the highlight; Enter waits for a click or an arrow.
		if !key.Shift && m.mentions.Open() && m.mentions.Active() == mention.NoActive {
			return m, nil
		}
		if key.Shift && m.multiline {
			m.insertInputText("\n")
			return m, nil
		}
		return m, m.submitInput()
	}

	return m, m.updateInput(msg, key)
}

// handleSuggestionKeys covers the keys only meaningful while the menu is
// showing. Arrow and Enter handling stays with the mention core.
func (m *Model) handleSuggestionKeys(msg tea.KeyMsg) (bool, tea.Cmd) {
	if !m.mentions.Open() {
		return false, nil
	}
	switch msg.Type {
	case tea.KeyEsc:
		m.mentions.Dismiss()
		m.syncMenu()
		m.resize()
		return true, nil
	case tea.KeyTab:
		return m.commitFirstOrActive()
	}
	return false, nil
}

// updateInput lets the textarea apply msg, then reports the outcome to the
// mention core: a value change is a change event; a caret move that was not
// a single-character step is rescanned the same way.
func (m *Model) updateInput(msg tea.Msg, key mention.Key) tea.Cmd {
	beforeValue := m.input.Value()
	beforeCaret, _ := m.field.Caret()

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	afterCaret, _ := m.field.Caret()
	stepped := key.Code == mention.KeyLeft || key.Code == mention.KeyRight
	switch {
	case m.input.Value() != beforeValue:
		m.mentions.OnChange()
	case afterCaret != beforeCaret && !stepped:
		m.mentions.OnChange()
	}
	m.syncMenu()
	m.resize()
	return cmd
}

func (m *Model) submitInput() tea.Cmd {
	value := strings.TrimSpace(m.input.Value())
	m.resetInput()
	if value == "" {
		return nil
	}
	m.appendMessage(value)
	return nil
}
