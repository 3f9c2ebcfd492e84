package mention

import (
	"io"

	"github.com/charmbracelet/log"
)

// Field is the host text control the mention context lives in.
type Field interface {
	Value() string
	// Caret returns the caret offset in runes. ok is false when the field
	// is detached and has no caret.
	Caret() (caret int, ok bool)
	SetValue(value string)
	SetCaret(caret int)
	Focus()
}

// KeyCode names the keys the widget reacts to.
type KeyCode int

const (
	KeyOther KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
)

// Key is a key press delivered to the field.
type Key struct {
	Code  KeyCode
	Shift bool
}

// Option configures Mentions.
type Option func(*Mentions)

// WithMatcher replaces the default case-sensitive substring matcher.
func WithMatcher(match Matcher) Option {
	return func(m *Mentions) { m.match = match }
}

// WithIgnoreCase selects FoldedSubstringMatch.
func WithIgnoreCase(ignore bool) Option {
	return func(m *Mentions) {
		if ignore {
			m.match = FoldedSubstringMatch
		}
	}
}

// WithLogger traces state transitions at debug level.
func WithLogger(logger *log.Logger) Option {
	return func(m *Mentions) {
		if logger != nil {
			m.log = logger
		}
	}
}

// Mentions wires a Tracker and a Controller to a Field.
type Mentions struct {
	field   Field
	tracker *Tracker
	list    *Controller
	match   Matcher
	log     *log.Logger
}

// New builds the widget core for a fixed candidate list.
func New(candidates []string, opts ...Option) *Mentions {
	m := &Mentions{
		tracker: NewTracker(),
		match:   SubstringMatch,
		log:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.list = NewController(candidates, m.match)
	return m
}

// RegisterField attaches the host text control. Passing nil detaches it.
func (m *Mentions) RegisterField(field Field) {
	m.field = field
}

func (m *Mentions) Pattern() string      { return m.tracker.Pattern() }
func (m *Mentions) Anchor() int          { return m.tracker.Anchor() }
func (m *Mentions) Active() int          { return m.list.Active() }
func (m *Mentions) Visible() []string    { return m.list.Visible() }
func (m *Mentions) Candidates() []string { return m.list.Candidates() }
func (m *Mentions) Focused() bool        { return m.tracker.Focused() }

// Open reports whether the suggestion menu is showing.
func (m *Mentions) Open() bool {
	return menuOpen(m.tracker.Pattern(), m.list.Visible())
}

func menuOpen(pattern string, visible []string) bool {
	return pattern != "" && len(visible) > 0
}

func (m *Mentions) snapshot() ([]rune, int, bool) {
	if m.field == nil {
		return nil, 0, false
	}
	caret, ok := m.field.Caret()
	if !ok {
		return nil, 0, false
	}
	text := []rune(m.field.Value())
	return text, clampCaret(text, caret), true
}

// OnKeyDown must run before the field applies the key. It returns true when
// the field's default handling has to be suppressed.
func (m *Mentions) OnKeyDown(key Key) bool {
	text, caret, ok := m.snapshot()
	if !ok {
		return false
	}
	m.tracker.Reanchor(text, caret)

	switch key.Code {
	case KeyUp, KeyDown:
		if !m.Open() {
			return false
		}
		delta := 1
		if key.Code == KeyUp {
			delta = -1
		}
		m.list.MoveActive(delta)
		m.log.Debug("move active", "index", m.list.Active())
		return true
	case KeyEnter:
		if !m.Open() || m.list.Active() == NoActive || key.Shift {
			return false
		}
		m.Commit(m.list.Active())
		return true
	case KeyLeft, KeyRight:
		if m.tracker.Anchor() == NoAnchor {
			return false
		}
		dir := Right
		if key.Code == KeyLeft {
			dir = Left
		}
		m.tracker.CaretMoved(text, caret, dir)
		m.patternPublished()
	}
	return false
}

// OnChange runs after the field's value changed.
func (m *Mentions) OnChange() {
	text, caret, ok := m.snapshot()
	if !ok {
		return
	}
	m.tracker.TextChanged(text, caret)
	m.patternPublished()
}

// OnClick runs for a pointer click inside the field.
func (m *Mentions) OnClick() {
	text, caret, ok := m.snapshot()
	if !ok {
		return
	}
	if !m.tracker.Focused() {
		m.tracker.Reanchor(text, caret)
		return
	}
	m.tracker.PointerClick(text, caret)
	m.patternPublished()
}

func (m *Mentions) OnFocus() { m.tracker.FocusGained() }
func (m *Mentions) OnBlur()  { m.tracker.FocusLost() }

// OnMenuPointerMove hands highlighting over to the pointer.
func (m *Mentions) OnMenuPointerMove() {
	m.list.ClearActiveHighlight()
}

// OnClickAway runs for a click outside both the menu and the field.
func (m *Mentions) OnClickAway() {
	m.Dismiss()
}

// Dismiss closes the menu and drops the mention context. The field's text
// is left alone.
func (m *Mentions) Dismiss() {
	wasOpen := m.Open()
	m.tracker.Clear()
	m.list.Clear()
	if wasOpen {
		m.log.Debug("menu closed")
	}
}

// Commit replaces the anchored span up to the caret with "@value " and
// moves the caret after the inserted space. Invalid indices and a missing
// anchor are ignored.
func (m *Mentions) Commit(index int) {
	visible := m.list.Visible()
	if index < 0 || index >= len(visible) {
		return
	}
	anchor := m.tracker.Anchor()
	text, caret, ok := m.snapshot()
	if !ok || anchor == NoAnchor || anchor > len(text) {
		return
	}
	caret = max(caret, anchor)

	value, caretAfter := Splice(text, anchor, caret, visible[index])
	m.field.SetValue(value)
	m.field.SetCaret(caretAfter)
	m.log.Debug("commit", "value", visible[index], "anchor", anchor, "caret", caretAfter)

	m.Dismiss()
	m.field.Focus()
	m.tracker.FocusGained()
}

// Splice replaces text[anchor:caret] with "@"+value+" " and returns the new
// text and the caret offset just past the inserted space.
func Splice(text []rune, anchor, caret int, value string) (string, int) {
	insert := []rune(string(Trigger) + value + " ")
	out := make([]rune, 0, len(text)-(caret-anchor)+len(insert))
	out = append(out, text[:anchor]...)
	out = append(out, insert...)
	out = append(out, text[caret:]...)
	return string(out), anchor + len(insert)
}

func (m *Mentions) patternPublished() {
	wasOpen := len(m.list.Visible()) > 0
	m.list.Refilter(m.tracker.Pattern())
	if !m.Open() {
		if wasOpen {
			m.log.Debug("menu closed", "pattern", m.tracker.Pattern())
		}
		return
	}
	if !wasOpen {
		m.log.Debug("menu opened", "pattern", m.tracker.Pattern(), "count", m.list.Count())
	}
	m.list.Reset()
}
