package mention

// Item is what the caller gets to render one visible suggestion.
type Item struct {
	Index int
	Value string
	// DataValue carries the candidate value on the rendered row so it can
	// be recovered from the row on click.
	DataValue string
	// OnClick commits this suggestion.
	OnClick func()
	// SetItemRef registers the rendered row so highlight state can reach it.
	SetItemRef func(ItemHandle)
}

// Items calls render once per visible suggestion, in order, and returns
// what it produced. The core never inspects the rendered values. Handles
// from a previous render are forgotten first.
func Items[T any](m *Mentions, render func(Item) T) []T {
	m.list.ClearHandles()
	visible := m.list.Visible()
	if !m.Open() {
		return nil
	}
	out := make([]T, 0, len(visible))
	for i, value := range visible {
		index := i
		out = append(out, render(Item{
			Index:     index,
			Value:     value,
			DataValue: value,
			OnClick:   func() { m.Commit(index) },
			SetItemRef: func(handle ItemHandle) {
				m.list.SetHandle(index, handle)
			},
		}))
	}
	return out
}
