package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/example/tilewall/internal/config"
)

type configCmd struct {
	*root
	fs *flag.FlagSet
}

func parseConfigCmd(args []string, r *root) (*configCmd, error) {
	fs := newFlagSet("config")
	c := &configCmd{root: r.subcommand("config"), fs: fs}
	if err := parseFlags(fs, args, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *configCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func (c *configCmd) Run() error {
	args := c.fs.Args()
	if len(args) < 1 {
		return &UsageError{of: c}
	}

	switch args[0] {
	case "print":
		return c.runPrint()
	case "save":
		return c.runSave()
	case "path":
		return c.runPath()
	default:
		return fmt.Errorf("unknown config command: %s", args[0])
	}
}

func (c *configCmd) runPrint() error {
	fmt.Fprint(c.out(), c.config.String())
	return nil
}

func (c *configCmd) savePath() (string, error) {
	loader := config.NewLoader(version, configPathOverride)
	if path := loader.GetConfigPath(); path != "" {
		return path, nil
	}
	path, err := config.DefaultPath()
	if err != nil {
		return "", fmt.Errorf("failed to get user home dir: %w", err)
	}
	return path, nil
}

func (c *configCmd) runPath() error {
	path, err := c.savePath()
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out(), path)
	return nil
}

func (c *configCmd) runSave() error {
	path, err := c.savePath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(c.config.String()); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Configuration saved to %s\n", path)
	return f.Close()
}
