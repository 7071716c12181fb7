package main

import (
	"bytes"
	"embed"
	"errors"
	"flag"
	"fmt"
	"log"
	"sync"
	"text/template"
)

//go:embed templates/*.txt
var helpFS embed.FS

var (
	helpOnce sync.Once
	helpTmpl *template.Template
)

func parseHelpTemplates() {
	helpTmpl = template.Must(template.New("").Funcs(map[string]any{
		"flags": func(fs *flag.FlagSet) []flagInfo {
			result := []flagInfo{}
			if fs == nil {
				return result
			}
			fs.VisitAll(func(f *flag.Flag) {
				result = append(result, flagInfo{f.Name, f.DefValue, f.Usage})
			})
			return result
		},
	}).ParseFS(helpFS, "templates/*.txt"))
}

type flagInfo struct {
	Name     string
	DefValue string
	Usage    string
}

type HelpData interface {
	Program() string
	Template() string
	FlagSet() *flag.FlagSet
}

type UsageError struct {
	of  HelpData
	err error
}

func (e *UsageError) Error() string {
	help, err := e.renderHelp()
	if err != nil {
		return err.Error()
	}
	if e.err != nil {
		return fmt.Sprintf("%v\n\n%s", e.err, help)
	}
	return help
}

func (e *UsageError) Unwrap() error {
	return e.err
}

func (e *UsageError) renderHelp() (string, error) {
	helpOnce.Do(parseHelpTemplates)
	var buf bytes.Buffer
	if err := helpTmpl.ExecuteTemplate(&buf, e.of.Template(), e.of); err != nil {
		log.Printf("error rendering help template: %v", err)
		return "", err
	}
	return buf.String(), nil
}

// usageFunc returns a flag.FlagSet Usage hook that prints the command's
// help template.
func usageFunc(h HelpData) func() {
	return func() {
		out := flag.CommandLine.Output()
		if fs := h.FlagSet(); fs != nil {
			out = fs.Output()
		}
		fmt.Fprint(out, (&UsageError{of: h}).Error())
	}
}

// parseFlags parses args into fs and turns -h and bad flags into a
// UsageError for h.
func parseFlags(fs *flag.FlagSet, args []string, h HelpData) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return &UsageError{of: h}
		}
		return &UsageError{of: h, err: err}
	}
	return nil
}

func (r *root) Template() string {
	return "root.txt"
}

func (c *fillCmd) Template() string {
	return "fill.txt"
}

func (c *statsCmd) Template() string {
	return "stats.txt"
}

func (c *mixCmd) Template() string {
	return "mix.txt"
}

func (c *colorsCmd) Template() string {
	return "colors.txt"
}

func (c *palettesCmd) Template() string {
	return "palettes.txt"
}

func (c *configCmd) Template() string {
	return "config.txt"
}

func (v *versionCmd) Template() string {
	return "version.txt"
}
