package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/example/tilewall/internal/config"
	"github.com/example/tilewall/internal/notify"
	"github.com/example/tilewall/internal/palette"
)

var (
	version            = "dev"
	commit             = ""
	date               = ""
	configPathOverride = ""
)

type runnable interface{ Run() error }

type root struct {
	fs            *flag.FlagSet
	program       string
	notifier      *notify.Notifier
	config        *config.Config
	copyAlerts    bool
	verbose       bool
	paletteName   string
	activePalette *palette.Palette
	stdout        io.Writer
}

func (r *root) Program() string {
	return r.program
}

func (r *root) subcommand(name string) *root {
	sub := &root{program: "tilewall " + name}
	if r != nil {
		sub = &root{
			program:       strings.TrimSpace(strings.Join([]string{r.program, name}, " ")),
			notifier:      r.notifier,
			config:        r.config,
			copyAlerts:    r.copyAlerts,
			verbose:       r.verbose,
			paletteName:   r.paletteName,
			activePalette: r.activePalette,
			stdout:        r.stdout,
		}
	}
	if sub.config == nil {
		sub.config = config.New()
	}
	if sub.activePalette == nil {
		sub.activePalette = palette.Default()
	}
	return sub
}

func (r *root) FlagSet() *flag.FlagSet {
	return r.fs
}

func (r *root) out() io.Writer {
	if r == nil || r.stdout == nil {
		return os.Stdout
	}
	return r.stdout
}

func newRoot() *root {
	prefs := notify.LoadPreferences()
	loader := config.NewLoader(version, configPathOverride)
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load config: %v\n", err)
		cfg = config.New()
	}

	r := &root{
		fs:       flag.NewFlagSet("tilewall", flag.ExitOnError),
		program:  "tilewall",
		notifier: notify.New(prefs),
		config:   cfg,
	}
	r.fs.BoolVar(&r.copyAlerts, "notify-copy", cfg.Notify.Copy, "show a desktop notification after copying a pattern to the clipboard")
	r.fs.BoolVar(&r.verbose, "v", false, "log sampler faults and fallbacks to stderr")

	// Precedence: CLI > Env > Config > Default
	r.fs.StringVar(&r.paletteName, "palette", "", "tile palette name or file (uptown, coastal, terracotta)")
	r.fs.Usage = usageFunc(r)
	return r
}

func (r *root) Run(args []string) error {
	if err := r.fs.Parse(args); err != nil {
		return err
	}
	if r.fs.NArg() < 1 {
		return &UsageError{of: r}
	}
	if !r.verbose {
		log.SetOutput(io.Discard)
	}
	if r.notifier != nil {
		r.notifier.Enable(notify.EventCopy, r.copyAlerts)
	}

	p, err := r.resolvePalette()
	if err != nil {
		return err
	}
	r.activePalette = p

	cmdName := r.fs.Arg(0)
	subArgs := r.fs.Args()[1:]

	var cmd runnable
	switch cmdName {
	case "fill":
		cmd, err = parseFillCmd(subArgs, r)
	case "stats":
		cmd, err = parseStatsCmd(subArgs, r)
	case "mix":
		cmd, err = parseMixCmd(subArgs, r)
	case "colors":
		cmd, err = parseColorsCmd(subArgs, r)
	case "palettes":
		cmd, err = parsePalettesCmd(subArgs, r)
	case "config":
		cmd, err = parseConfigCmd(subArgs, r)
	case "version":
		cmd = &versionCmd{r: r}
	default:
		err = &UsageError{of: r}
	}
	if err != nil {
		return err
	}
	return cmd.Run()
}

// resolvePalette picks the palette named on the command line, in
// TILEWALL_PALETTE or in the config, in that order. Config sections win
// over files of the same name.
func (r *root) resolvePalette() (*palette.Palette, error) {
	name := r.paletteName
	if name == "" {
		name = os.Getenv("TILEWALL_PALETTE")
	}
	if name == "" && r.config != nil {
		name = r.config.Palette
	}

	var p *palette.Palette
	if r.config != nil {
		p = r.config.Palettes[name]
	}
	if p == nil {
		var err error
		p, err = palette.NewLoader().Load(name)
		if err != nil {
			if name != "" && name != "default" {
				fmt.Fprintf(os.Stderr, "warning: failed to load palette '%s': %v. using default.\n", name, err)
			}
			p = palette.Default()
		}
	}

	warnings, err := p.Check()
	if err != nil {
		return nil, err
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: palette %s: %s\n", p.Name, w)
	}
	return p, nil
}

func main() {
	r := newRoot()
	if err := r.Run(os.Args[1:]); err != nil {
		var uerr *UsageError
		if errors.As(err, &uerr) {
			fmt.Fprintln(os.Stderr, uerr.Error())
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (r *root) notifyCopy(detail string) {
	if r == nil || r.notifier == nil {
		return
	}
	r.notifier.Copy(detail)
}
