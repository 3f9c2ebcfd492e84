package chat

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

func (m *Model) copyLastMessage() {
	if len(m.messages) == 0 {
		m.status = "Nothing to copy"
		return
	}
	last := m.messages[len(m.messages)-1]
	if err := writeClipboard(last.Body); err != nil {
		m.log.Warn("clipboard write failed", "err", err)
		m.status = fmt.Sprintf("Copy failed: %v", err)
		return
	}
	m.status = "Copied last message"
}
