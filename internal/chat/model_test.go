package chat

import (
	"errors"
	"strings"
	"testing"

	"github.com/adamavenir/mentions/internal/config"
	"github.com/adamavenir/mentions/internal/mention"
	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	m := NewModel(Options{
		Users:     config.DefaultUsers,
		Username:  "tester",
		Multiline: true,
		MaxRows:   5,
	})
	t.Cleanup(m.Close)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m
}

func typeRunes(m *Model, text string) {
	for _, r := range text {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func press(m *Model, keyType tea.KeyType) {
	m.Update(tea.KeyMsg{Type: keyType})
}

func caret(t *testing.T, m *Model) int {
	t.Helper()
	pos, ok := m.field.Caret()
	if !ok {
		t.Fatal("field detached")
	}
	return pos
}

func menuValues(m *Model) []string {
	values := make([]string, 0, len(m.menu))
	for _, entry := range m.menu {
		values = append(values, entry.value)
	}
	return values
}

func TestTypingMentionOpensMenu(t *testing.T) {
	m := newTestModel(t)
	typeRunes(m, "hello @jo")

	if got := m.mentions.Pattern(); got != "@jo" {
		t.Fatalf("pattern: got %q want %q", got, "@jo")
	}
	if got := strings.Join(menuValues(m), ","); got != "johnsmith,josephhernandez" {
		t.Fatalf("menu: got %s", got)
	}
	if !m.rows[0].highlighted || m.rows[1].highlighted {
		t.Fatal("expected first row highlighted")
	}
	if !strings.Contains(m.View(), "@johnsmith") {
		t.Fatal("menu not rendered")
	}
}

func TestEnterCommitsMention(t *testing.T) {
	m := newTestModel(t)
	typeRunes(m, "hello @jo")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if got := m.input.Value(); got != "hello @johnsmith " {
		t.Fatalf("value: got %q", got)
	}
	if got := caret(t, m); got != 17 {
		t.Fatalf("caret: got %d want 17", got)
	}
	if len(m.menu) != 0 || m.mentions.Open() {
		t.Fatal("menu should be closed after commit")
	}
	if len(m.messages) != 0 {
		t.Fatal("commit must not submit")
	}
	if cmd == nil {
		t.Fatal("expected refocus to schedule the cursor blink")
	}
}

func TestCommitInMiddleKeepsRest(t *testing.T) {
	m := newTestModel(t)
	typeRunes(m, "hi @ma ok")
	for i := 0; i < 3; i++ {
		press(m, tea.KeyLeft)
	}
	if got := m.mentions.Pattern(); got != "@ma" {
		t.Fatalf("pattern: got %q want %q", got, "@ma")
	}
	press(m, tea.KeyDown)
	press(m, tea.KeyEnter)

	if got := m.input.Value(); got != "hi @mariajackson  ok" {
		t.Fatalf("value: got %q", got)
	}
	if got := caret(t, m); got != len("hi @mariajackson ") {
		t.Fatalf("caret: got %d", got)
	}
}

func TestArrowNavigationWraps(t *testing.T) {
	m := newTestModel(t)
	typeRunes(m, "@jo")
	press(m, tea.KeyDown)
	if m.mentions.Active() != 1 || !m.rows[1].highlighted {
		t.Fatalf("active: got %d want 1", m.mentions.Active())
	}
	press(m, tea.KeyDown)
	if m.mentions.Active() != 0 {
		t.Fatalf("active: got %d want 0", m.mentions.Active())
	}
	press(m, tea.KeyUp)
	if m.mentions.Active() != 1 {
		t.Fatalf("active: got %d want 1", m.mentions.Active())
	}
	if got := m.input.Value(); got != "@jo" {
		t.Fatalf("arrows changed value: %q", got)
	}
}

func TestLeftRightTrackPattern(t *testing.T) {
	m := newTestModel(t)
	typeRunes(m, "@mar")
	press(m, tea.KeyLeft)
	if got := m.mentions.Pattern(); got != "@ma" {
		t.Fatalf("pattern: got %q want %q", got, "@ma")
	}
	if got := caret(t, m); got != 3 {
		t.Fatalf("caret: got %d want 3", got)
	}
	press(m, tea.KeyRight)
	if got := m.mentions.Pattern(); got != "@mar" {
		t.Fatalf("pattern: got %q want %q", got, "@mar")
	}
}

func TestBackspacePastTriggerCloses(t *testing.T) {
	m := newTestModel(t)
	typeRunes(m, "x @m")
	press(m, tea.KeyBackspace)
	if !m.mentions.Open() {
		t.Fatal("bare trigger should keep the menu open")
	}
	press(m, tea.KeyBackspace)
	if m.mentions.Open() || m.mentions.Pattern() != "" {
		t.Fatalf("expected closed menu, pattern %q", m.mentions.Pattern())
	}
}

func TestEscDismisses(t *testing.T) {
	m := newTestModel(t)
	typeRunes(m, "@da")
	press(m, tea.KeyEsc)
	if m.mentions.Open() || len(m.menu) != 0 {
		t.Fatal("esc should close the menu")
	}
	if got := m.input.Value(); got != "@da" {
		t.Fatalf("value: got %q", got)
	}
}

func TestTabCommitsFirstAfterPointerMove(t *testing.T) {
	m := newTestModel(t)
	typeRunes(m, "@da")
	m.handleMouseMotion(-1, true)
	if m.mentions.Active() != mention.NoActive {
		t.Fatalf("active: got %d", m.mentions.Active())
	}
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if got := m.input.Value(); got != "@davidmiller " {
		t.Fatalf("value: got %q", got)
	}
	if cmd == nil {
		t.Fatal("expected refocus to schedule the cursor blink")
	}
}

func TestPointerMoveClearsKeyboardHighlight(t *testing.T) {
	m := newTestModel(t)
	typeRunes(m, "@")
	m.handleMouseMotion(2, true)
	for i, row := range m.rows {
		if row.highlighted {
			t.Fatalf("row %d still highlighted", i)
		}
	}
	if !m.mentions.Open() || m.hoverIndex != 2 {
		t.Fatalf("open=%v hover=%d", m.mentions.Open(), m.hoverIndex)
	}

	press(m, tea.KeyEnter)
	if len(m.messages) != 0 || m.input.Value() != "@" {
		t.Fatalf("enter with only a hovered row: messages=%d value=%q", len(m.messages), m.input.Value())
	}
	if !m.mentions.Open() {
		t.Fatal("menu should stay open")
	}
}

func highlightedRows(m *Model) []int {
	var rows []int
	for _, entry := range m.menu {
		if m.rowHighlighted(entry) {
			rows = append(rows, entry.index)
		}
	}
	return rows
}

func TestArrowAfterHoverShowsOneHighlight(t *testing.T) {
	m := newTestModel(t)
	typeRunes(m, "@")
	m.handleMouseMotion(2, true)
	if got := highlightedRows(m); len(got) != 1 || got[0] != 2 {
		t.Fatalf("hover highlight: got %v want [2]", got)
	}

	press(m, tea.KeyDown)
	if got := highlightedRows(m); len(got) != 1 || got[0] != 0 {
		t.Fatalf("after down: got %v want [0]", got)
	}
	if m.hoverIndex != -1 {
		t.Fatalf("hover: got %d want -1", m.hoverIndex)
	}
}

func TestHoverWithoutPointerResetStillSingle(t *testing.T) {
	m := newTestModel(t)
	typeRunes(m, "@")
	m.hoverIndex = 3
	if got := highlightedRows(m); len(got) != 1 || got[0] != 0 {
		t.Fatalf("got %v want [0]", got)
	}
}

func TestClickMenuItem(t *testing.T) {
	m := newTestModel(t)
	typeRunes(m, "ping @ja")
	handled, cmd := m.clickMenuItem(0)
	if !handled {
		t.Fatal("click not handled")
	}
	if cmd == nil {
		t.Fatal("expected refocus to schedule the cursor blink")
	}
	if got := m.input.Value(); got != "ping @jamesanderson " {
		t.Fatalf("value: got %q", got)
	}
	if handled, _ := m.clickMenuItem(4); handled {
		t.Fatal("click on missing row handled")
	}
}

func TestClickAwayAndBack(t *testing.T) {
	m := newTestModel(t)
	typeRunes(m, "hi @jo")
	m.clickAway()
	if m.mentions.Open() || m.input.Focused() {
		t.Fatal("click away should close the menu and blur")
	}
	if got := m.input.Value(); got != "hi @jo" {
		t.Fatalf("value: got %q", got)
	}

	m.clickInput()
	if m.mentions.Open() {
		t.Fatal("first click should only focus")
	}
	if !m.input.Focused() {
		t.Fatal("click should focus the input")
	}
	m.clickInput()
	if !m.mentions.Open() {
		t.Fatal("second click should reopen the menu")
	}
}

func TestSubmitRecordsMentions(t *testing.T) {
	m := newTestModel(t)
	typeRunes(m, "hey @jo")
	press(m, tea.KeyEnter)
	typeRunes(m, "and @nobody")
	press(m, tea.KeyEnter)

	if len(m.messages) != 1 {
		t.Fatalf("messages: got %d want 1", len(m.messages))
	}
	msg := m.messages[0]
	if msg.Body != "hey @johnsmith and @nobody" || msg.From != "tester" || msg.ID == "" {
		t.Fatalf("message: %+v", msg)
	}
	if len(msg.Mentions) != 1 || msg.Mentions[0] != "johnsmith" {
		t.Fatalf("mentions: %v", msg.Mentions)
	}
	if m.status != "notified @johnsmith" {
		t.Fatalf("status: %q", m.status)
	}
	if m.input.Value() != "" {
		t.Fatal("input should be cleared")
	}
}

func TestEmptySubmitIgnored(t *testing.T) {
	m := newTestModel(t)
	typeRunes(m, "   ")
	press(m, tea.KeyEnter)
	if len(m.messages) != 0 {
		t.Fatal("blank message sent")
	}
}

func TestAltEnterInsertsNewline(t *testing.T) {
	m := newTestModel(t)
	typeRunes(m, "line")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter, Alt: true})
	typeRunes(m, "@ma")
	if got := m.input.Value(); got != "line\n@ma" {
		t.Fatalf("value: got %q", got)
	}
	if got := m.mentions.Pattern(); got != "@ma" {
		t.Fatalf("pattern: got %q", got)
	}
	press(m, tea.KeyEnter)
	if got := m.input.Value(); got != "line\n@maryjones " {
		t.Fatalf("value: got %q", got)
	}
	if got := caret(t, m); got != len("line\n@maryjones ") {
		t.Fatalf("caret: got %d", got)
	}
}

func TestCopyLastMessage(t *testing.T) {
	m := newTestModel(t)
	orig := writeClipboard
	t.Cleanup(func() { writeClipboard = orig })
	var copied string
	writeClipboard = func(text string) error {
		copied = text
		return nil
	}

	press(m, tea.KeyCtrlY)
	if m.status != "Nothing to copy" {
		t.Fatalf("status: %q", m.status)
	}
	typeRunes(m, "hello")
	press(m, tea.KeyEnter)
	press(m, tea.KeyCtrlY)
	if copied != "hello" || m.status != "Copied last message" {
		t.Fatalf("copied %q status %q", copied, m.status)
	}

	writeClipboard = func(string) error { return errors.New("no clipboard") }
	press(m, tea.KeyCtrlY)
	if !strings.HasPrefix(m.status, "Copy failed") {
		t.Fatalf("status: %q", m.status)
	}
}
