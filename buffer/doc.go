// Package buffer implements the editable document behind a quill prompt.
//
// Lines stores the text as rune lines, Selection tracks the focus and an
// optional anchor, and Buffer combines them into the Text Model whose
// operations keep both consistent.
//
// Coordinates are 0-based (Row, Col) in runes. A '\n' between two lines counts
// as one character in char offsets. Ranges are half-open: [Start, End).
package buffer
