// Package input decodes the bytes a terminal sends in raw mode into key
// events.
//
// Event names follow Bubble Tea's key strings ("shift+left", "ctrl+c",
// "alt+enter", "pgup"), so one github.com/charmbracelet/bubbles/key keymap
// serves both a raw terminal session and a Bubble Tea program.
package input
