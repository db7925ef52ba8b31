// Command quill asks for a block of text on the terminal and prints it to
// stdout.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/iw2rmb/quill"
	"github.com/iw2rmb/quill/editor"
	"github.com/iw2rmb/quill/internal/debug"
)

func main() {
	log.SetFlags(0)
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatalf("error: %v", err)
	}
}

// run draws on stderr so the result can be piped.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("quill", flag.ContinueOnError)
	fs.SetOutput(stderr)

	opts := defaultOptions()
	var (
		configPath = fs.String("config", "", "TOML config `file`")
		textPath   = fs.String("file", "", "read the initial text from `file`")
		debugPath  = fs.String("debug", "", "append a trace log to `file` (default $"+debug.EnvVar+")")
		useTea     = fs.Bool("tea", false, "run as a Bubble Tea program")
		dumpKeys   = fs.Bool("dump-keys", false, "type a dump of each key instead of editing")
		version    = fs.Bool("version", false, "print the version and exit")
	)
	flagOpts := opts
	fs.StringVar(&flagOpts.Style, "style", opts.Style, "decoration: classic, fancy, numbers or plain")
	fs.BoolVar(&flagOpts.Lazy, "lazy", opts.Lazy, "redraw only what changed")
	fs.IntVar(&flagOpts.MaxHeight, "max-height", opts.MaxHeight, "cap the frame height (0 = terminal height)")
	fs.IntVar(&flagOpts.TabWidth, "tab-width", opts.TabWidth, "tab stop width (0 = 4)")
	fs.StringVar(&flagOpts.Message, "message", opts.Message, "header message")
	fs.StringVar(&flagOpts.Clipboard, "clipboard", opts.Clipboard, "clipboard: system, osc52 or none")
	fs.StringVar(&flagOpts.Accent, "accent", opts.Accent, "accent colour of the fancy style")
	fs.BoolVar(&flagOpts.NoColor, "no-color", opts.NoColor, "disable colours")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	if *version {
		_, err := fmt.Fprintln(stdout, quill.Banner())
		return err
	}

	if *debugPath != "" {
		if err := debug.Init(*debugPath); err != nil {
			return err
		}
	} else if err := debug.InitFromEnv(); err != nil {
		return err
	}
	defer debug.Close()

	if *configPath != "" {
		var err error
		if opts, err = loadOptions(*configPath, opts); err != nil {
			return err
		}
	}
	opts = overrideSet(fs, opts, flagOpts)
	if err := opts.validate(); err != nil {
		return err
	}
	debug.Dump("options", opts)

	var text string
	if *textPath != "" {
		b, err := os.ReadFile(*textPath)
		if err != nil {
			return fmt.Errorf("read initial text: %w", err)
		}
		text = strings.TrimSuffix(string(b), "\n")
	}

	cfg := opts.editorConfig(text, stderr)
	if *dumpKeys {
		cfg.Dispatcher = editor.DebugDispatcher{}
	}

	var (
		result string
		err    error
	)
	if *useTea {
		result, err = runTea(cfg, stdin, stderr)
	} else {
		cfg.Input, cfg.Output = stdin, stderr
		result, err = editor.Read(cfg)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, result)
	return err
}

// overrideSet copies the flags given on the command line from set into
// opts, so flags win over the config file.
func overrideSet(fs *flag.FlagSet, opts, set options) options {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "style":
			opts.Style = set.Style
		case "lazy":
			opts.Lazy = set.Lazy
		case "max-height":
			opts.MaxHeight = set.MaxHeight
		case "tab-width":
			opts.TabWidth = set.TabWidth
		case "message":
			opts.Message = set.Message
		case "clipboard":
			opts.Clipboard = set.Clipboard
		case "accent":
			opts.Accent = set.Accent
		case "no-color":
			opts.NoColor = set.NoColor
		}
	})
	return opts
}
