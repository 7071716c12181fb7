//go:build linux || freebsd || openbsd || netbsd || dragonfly

package clipboard

import (
	"errors"
	"sync"
	"testing"
)

func resetInit(t *testing.T) {
	t.Helper()
	t.Setenv("DISPLAY", "")
	t.Setenv("WAYLAND_DISPLAY", "")
	initOnce = sync.Once{}
	initErr = nil
}

func TestWriteTextWithoutDisplay(t *testing.T) {
	resetInit(t)
	if err := WriteText("white\nblue\n"); !errors.Is(err, errNoDisplay) {
		t.Fatalf("expected errNoDisplay, got %v", err)
	}
}

func TestReadTextWithoutDisplay(t *testing.T) {
	resetInit(t)
	if _, err := ReadText(); !errors.Is(err, errNoDisplay) {
		t.Fatalf("expected errNoDisplay, got %v", err)
	}
}
