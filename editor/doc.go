// Package editor collects a block of text from the user in a terminal.
//
// A Session draws the buffer inline below the shell prompt, reads key
// events in raw mode and redraws incrementally until the user presses Escape
// or Enter on an empty last line. Model offers the same editing inside a
// Bubble Tea program.
package editor
