// Package render draws a buffer into a region of a terminal and keeps it up to
// date with the fewest writes it can.
//
// A Renderer remembers what it drew last (DrawState) and, on Redraw, chooses
// between doing nothing, moving the cursor, rewriting one row, or repainting
// the frame. It talks to the terminal only through the Terminal interface,
// using relative cursor moves, so the frame can live anywhere on screen
// without taking over the whole display.
package render
