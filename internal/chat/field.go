package chat

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// inputField adapts the textarea to mention.Field. Offsets are runes into
// the full value, newlines included.
type inputField struct {
	input    *textarea.Model
	focusCmd tea.Cmd
}

func (f *inputField) Value() string {
	return f.input.Value()
}

func (f *inputField) Caret() (int, bool) {
	if f.input == nil {
		return 0, false
	}
	return cursorOffset(f.input.Value(), f.input.Line(), f.input.LineInfo()), true
}

func (f *inputField) SetValue(value string) {
	f.input.SetValue(value)
}

// SetCaret walks the cursor to the row holding caret, then sets the column.
// SetValue leaves the cursor at the end, so walking up is the usual case.
func (f *inputField) SetCaret(caret int) {
	value := f.input.Value()
	row, col := rowCol(value, caret)
	steps := len(value) + 1
	for i := 0; f.input.Line() > row && i < steps; i++ {
		f.input.CursorUp()
	}
	for i := 0; f.input.Line() < row && i < steps; i++ {
		f.input.CursorDown()
	}
	f.input.SetCursor(col)
}

// Focus keeps the textarea's blink command until the model collects it.
func (f *inputField) Focus() {
	f.focusCmd = tea.Batch(f.focusCmd, f.input.Focus())
}

func (f *inputField) takeFocusCmd() tea.Cmd {
	cmd := f.focusCmd
	f.focusCmd = nil
	return cmd
}

func cursorOffset(value string, row int, info textarea.LineInfo) int {
	if value == "" {
		return 0
	}
	lines := strings.Split(value, "\n")
	if row < 0 {
		row = 0
	}
	if row >= len(lines) {
		row = len(lines) - 1
	}
	col := info.StartColumn + info.ColumnOffset
	if col < 0 {
		col = 0
	}
	lineRunes := []rune(lines[row])
	if col > len(lineRunes) {
		col = len(lineRunes)
	}

	pos := 0
	for i := 0; i < row; i++ {
		pos += len([]rune(lines[i])) + 1
	}
	pos += col

	total := len([]rune(value))
	if pos > total {
		pos = total
	}
	return pos
}

func rowCol(value string, caret int) (int, int) {
	if caret < 0 {
		caret = 0
	}
	row, col := 0, 0
	for i, r := range []rune(value) {
		if i >= caret {
			break
		}
		if r == '\n' {
			row++
			col = 0
			continue
		}
		col++
	}
	return row, col
}
