package palette

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// EmbeddedPalettes holds the palettes shipped with the binary.
//
//go:embed defaults/*.palette
var EmbeddedPalettes embed.FS

const ext = ".palette"

// Loader handles loading palettes from various sources.
type Loader struct {
	ConfigDir string
	SystemDir string
}

// NewLoader creates a new Loader with standard paths.
func NewLoader() *Loader {
	home, _ := os.UserHomeDir()
	return &Loader{
		ConfigDir: filepath.Join(home, ".config", "tilewall", "palettes"),
		SystemDir: "/usr/share/tilewall/palettes",
	}
}

// Load attempts to load a palette by name or path.
// Order:
// 1. If it's a file path that exists, load it.
// 2. Check embedded palettes.
// 3. Check ConfigDir.
// 4. Check SystemDir.
func (l *Loader) Load(name string) (*Palette, error) {
	if name == "" {
		return Default(), nil
	}

	if _, err := os.Stat(name); err == nil {
		return parseFile(name)
	}

	filename := name
	if !strings.HasSuffix(filename, ext) {
		filename += ext
	}

	if f, err := EmbeddedPalettes.Open("defaults/" + filename); err == nil {
		defer f.Close()
		return Parse(f)
	}

	for _, dir := range []string{l.ConfigDir, l.SystemDir} {
		if dir == "" {
			continue
		}
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err == nil {
			return parseFile(path)
		}
	}

	return nil, fmt.Errorf("palette '%s' not found", name)
}

func parseFile(path string) (*Palette, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	p, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Embedded lists the names of the built-in palettes.
func Embedded() []string {
	entries, err := fs.ReadDir(EmbeddedPalettes, "defaults")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ext) {
			names = append(names, strings.TrimSuffix(e.Name(), ext))
		}
	}
	sort.Strings(names)
	return names
}
