package main

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/quill/editor"
	"github.com/iw2rmb/quill/render"
)

// options are the settings shared by the config file and the flags.
type options struct {
	Style     string `toml:"style"`
	Lazy      bool   `toml:"lazy"`
	MaxHeight int    `toml:"max_height"`
	TabWidth  int    `toml:"tab_width"`
	Message   string `toml:"message"`
	Clipboard string `toml:"clipboard"`
	Accent    string `toml:"accent"`
	NoColor   bool   `toml:"no_color"`
}

func defaultOptions() options {
	return options{
		Style:     "classic",
		Lazy:      true,
		Message:   "Type away. Esc, or Enter on an empty last line, to finish.",
		Clipboard: "system",
		Accent:    render.DefaultAccent,
	}
}

// loadOptions decodes the TOML file at path over base. Unknown keys are an
// error so typos do not go unnoticed.
func loadOptions(path string, base options) (options, error) {
	md, err := toml.DecodeFile(path, &base)
	if err != nil {
		return options{}, fmt.Errorf("read config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return options{}, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	return base, nil
}

func (o options) validate() error {
	if _, ok := editor.Preset(o.Style, ""); !ok {
		return fmt.Errorf("unknown style %q (want classic, fancy, numbers or plain)", o.Style)
	}
	switch o.Clipboard {
	case "system", "osc52", "none":
	default:
		return fmt.Errorf("unknown clipboard %q (want system, osc52 or none)", o.Clipboard)
	}
	if o.MaxHeight < 0 {
		return fmt.Errorf("max height must not be negative, got %d", o.MaxHeight)
	}
	if o.TabWidth < 0 {
		return fmt.Errorf("tab width must not be negative, got %d", o.TabWidth)
	}
	return nil
}

// editorConfig builds the session config for a frame drawn on out.
func (o options) editorConfig(text string, out io.Writer) editor.Config {
	r := lipgloss.NewRenderer(out)
	if o.NoColor {
		r.SetColorProfile(termenv.Ascii)
	}

	var st render.Style
	if o.Style == "fancy" {
		st = render.FancyPalette(o.Message, render.NewPalette(r, o.Accent))
	} else {
		st, _ = editor.Preset(o.Style, o.Message)
	}

	style := editor.DefaultStyle()
	style.Text = style.Text.Renderer(r)
	style.Selection = style.Selection.Renderer(r)
	style.Cursor = style.Cursor.Renderer(r)

	cfg := editor.Config{
		Text:      text,
		Lazy:      o.Lazy,
		MaxHeight: o.MaxHeight,
		TabWidth:  o.TabWidth,
		Header:    st.Header,
		Margin:    st.Margin,
		Footer:    st.Footer,
		Style:     style,
		KeyMap:    editor.DefaultKeyMap(),
	}
	switch o.Clipboard {
	case "system":
		cfg.Clipboard = editor.SystemClipboard{}
	case "osc52":
		cfg.Clipboard = editor.NewOSC52Clipboard(out)
	}
	return cfg
}
