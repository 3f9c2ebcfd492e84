package mention

// NoActive means no suggestion is keyboard-highlighted.
const NoActive = -1

// ItemHandle is the caller's rendered suggestion row. The controller only
// toggles its highlight.
type ItemHandle interface {
	SetHighlighted(on bool)
}

// Controller derives the visible suggestions from the candidate list and
// tracks which one is active.
type Controller struct {
	candidates []string
	match      Matcher
	visible    []string
	active     int
	handles    [MaxVisible]ItemHandle
}

// NewController copies candidates; later changes to the slice are not seen.
func NewController(candidates []string, match Matcher) *Controller {
	if match == nil {
		match = SubstringMatch
	}
	return &Controller{
		candidates: append([]string(nil), candidates...),
		match:      match,
		active:     NoActive,
	}
}

func (c *Controller) Candidates() []string { return c.candidates }

// Visible returns the current suggestions. The slice must not be modified.
func (c *Controller) Visible() []string { return c.visible }

func (c *Controller) Count() int { return len(c.visible) }

func (c *Controller) Active() int { return c.active }

// ActiveValue returns the highlighted candidate, if any.
func (c *Controller) ActiveValue() (string, bool) {
	if c.active < 0 || c.active >= len(c.visible) {
		return "", false
	}
	return c.visible[c.active], true
}

// Refilter recomputes the visible list for pattern. Handles registered for
// rows that no longer exist are dropped and the active index is cleared.
func (c *Controller) Refilter(pattern string) {
	c.visible = ComputeVisible(c.candidates, pattern, c.match)
	for i := len(c.visible); i < MaxVisible; i++ {
		c.handles[i] = nil
	}
	c.setActive(NoActive)
}

// Reset highlights the first suggestion, or clears the highlight when there
// is nothing to show.
func (c *Controller) Reset() {
	if len(c.visible) == 0 {
		c.setActive(NoActive)
		return
	}
	c.setActive(0)
}

// MoveActive walks the active index by delta (+1 or -1) around the list.
// From NoActive, +1 lands on the first row and -1 on the last.
func (c *Controller) MoveActive(delta int) {
	count := len(c.visible)
	if count == 0 || (delta != 1 && delta != -1) {
		return
	}
	next := c.active + delta
	if c.active == NoActive && delta == -1 {
		next = count - 1
	}
	c.setActive(((next % count) + count) % count)
}

// ClearActiveHighlight drops the keyboard highlight without touching the
// visible list.
func (c *Controller) ClearActiveHighlight() {
	c.setActive(NoActive)
}

// Clear empties the visible list and the active index.
func (c *Controller) Clear() {
	c.Refilter("")
}

// SetHandle registers the rendered row for index and syncs its highlight.
// Out of range indices are ignored.
func (c *Controller) SetHandle(index int, handle ItemHandle) {
	if index < 0 || index >= MaxVisible {
		return
	}
	c.handles[index] = handle
	if handle != nil {
		handle.SetHighlighted(index == c.active)
	}
}

// ClearHandles forgets every registered row.
func (c *Controller) ClearHandles() {
	c.handles = [MaxVisible]ItemHandle{}
}

func (c *Controller) setActive(index int) {
	c.active = index
	for i, handle := range c.handles {
		if handle != nil {
			handle.SetHighlighted(i == index)
		}
	}
}
