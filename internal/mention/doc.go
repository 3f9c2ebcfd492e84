// Package mention implements @-mention autocomplete for a text field.
//
// The package has no dependency on a UI runtime. A host text control is
// adapted to the Field interface and its events are forwarded to the
// handlers on Mentions; the caller renders the suggestion menu through the
// Items render callback and reflects highlight state through ItemHandle.
//
// All caret offsets are rune offsets into the field's value.
package mention
