package mention

// Tracker keeps the filter pattern equal to the text between the nearest
// '@' at or before the caret and the caret.
type Tracker struct {
	anchor  int
	pattern string
	focused bool
}

// NewTracker returns a tracker with no active mention context.
func NewTracker() *Tracker {
	return &Tracker{anchor: NoAnchor}
}

func (t *Tracker) Anchor() int     { return t.anchor }
func (t *Tracker) Pattern() string { return t.pattern }
func (t *Tracker) Focused() bool   { return t.focused }

// Reanchor recomputes the anchor for caret without publishing a new pattern.
func (t *Tracker) Reanchor(text []rune, caret int) {
	t.anchor = LastAnchor(text, caret)
}

// TextChanged rescans text at caret and publishes the resulting pattern.
// It reports whether the pattern changed.
func (t *Tracker) TextChanged(text []rune, caret int) bool {
	anchor, pattern := Scan(text, caret)
	return t.publish(anchor, pattern)
}

// CaretMoved re-derives the pattern for a one-character caret movement.
// The anchor is refreshed for the pre-move caret first, so it is always the
// nearest '@' even after edits elsewhere in the text. Nothing happens when
// there is no mention context.
func (t *Tracker) CaretMoved(text []rune, caret int, dir Direction) bool {
	t.Reanchor(text, caret)
	if t.anchor == NoAnchor {
		return false
	}
	pattern := PatternAt(text, t.anchor, caret)
	anchor, pattern := Step(text, caret, t.anchor, pattern, dir)
	return t.publish(anchor, pattern)
}

// PointerClick handles a click inside the field. A click that lands while
// the field is unfocused only re-anchors; the pattern is left alone.
func (t *Tracker) PointerClick(text []rune, caret int) bool {
	t.Reanchor(text, caret)
	if !t.focused {
		return false
	}
	return t.publish(t.anchor, PatternAt(text, t.anchor, caret))
}

func (t *Tracker) FocusGained() { t.focused = true }
func (t *Tracker) FocusLost()   { t.focused = false }

// Clear drops the mention context. Focus is kept.
func (t *Tracker) Clear() bool {
	return t.publish(NoAnchor, "")
}

func (t *Tracker) publish(anchor int, pattern string) bool {
	if pattern == "" {
		anchor = NoAnchor
	}
	changed := pattern != t.pattern
	t.anchor = anchor
	t.pattern = pattern
	return changed
}
