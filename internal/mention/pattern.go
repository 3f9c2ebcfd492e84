package mention

import "unicode/utf8"

// NoAnchor marks the absence of an active mention context.
const NoAnchor = -1

// Trigger opens a mention context.
const Trigger = '@'

// Direction is a one-character caret movement.
type Direction int

const (
	Left  Direction = -1
	Right Direction = 1
)

func clampCaret(text []rune, caret int) int {
	if caret < 0 {
		return 0
	}
	if caret > len(text) {
		return len(text)
	}
	return caret
}

// LastAnchor returns the offset of the nearest '@' at or before caret, or
// NoAnchor. An '@' sitting directly at the caret counts.
func LastAnchor(text []rune, caret int) int {
	caret = clampCaret(text, caret)
	start := caret
	if start >= len(text) {
		start = len(text) - 1
	}
	for i := start; i >= 0; i-- {
		if text[i] == Trigger {
			return i
		}
	}
	return NoAnchor
}

// PatternAt returns text[anchor:caret], or "" when there is no anchor or the
// caret sits at or before it.
func PatternAt(text []rune, anchor, caret int) string {
	caret = clampCaret(text, caret)
	if anchor == NoAnchor || anchor < 0 || anchor >= caret {
		return ""
	}
	return string(text[anchor:caret])
}

// Scan derives the anchor and filter pattern for caret from scratch.
func Scan(text []rune, caret int) (int, string) {
	anchor := LastAnchor(text, caret)
	return anchor, PatternAt(text, anchor, caret)
}

// Step derives the anchor and pattern after the caret moves one character
// in dir, starting from the state (anchor, pattern) that Scan produced for
// caret. The result always equals Scan at the moved caret; only moving left
// off an anchor that sits directly at the caret needs to search backwards.
func Step(text []rune, caret, anchor int, pattern string, dir Direction) (int, string) {
	caret = clampCaret(text, caret)
	moved := clampCaret(text, caret+int(dir))
	if moved == caret {
		return anchor, pattern
	}

	if dir == Right {
		if moved < len(text) && text[moved] == Trigger {
			return moved, ""
		}
		if anchor == NoAnchor {
			return NoAnchor, ""
		}
		return anchor, pattern + string(text[caret])
	}

	if anchor == NoAnchor {
		return NoAnchor, ""
	}
	if anchor <= moved {
		_, size := utf8.DecodeLastRuneInString(pattern)
		return anchor, pattern[:len(pattern)-size]
	}
	return Scan(text, moved)
}
