package chat

func (m *Model) mainWidth() int {
	if m.width == 0 {
		return 0
	}
	return max(m.width, 1)
}

func (m *Model) resize() {
	if m.width == 0 || m.height == 0 {
		return
	}

	width := m.mainWidth()
	m.input.SetWidth(max(width-2*inputPadding, 1))
	lineCount := min(max(m.input.LineCount(), 1), m.maxRows)
	m.input.SetHeight(lineCount)
	inputHeight := m.input.Height() + 2

	statusHeight := 1
	suggestionHeight := m.suggestionHeight()
	marginHeight := 0
	if suggestionHeight == 0 {
		marginHeight = 1
	}
	m.viewport.Width = width
	m.viewport.Height = max(m.height-inputHeight-statusHeight-suggestionHeight-marginHeight, 1)
	m.refreshViewport(false)
}
