//go:build !(linux || freebsd || openbsd || netbsd || dragonfly)

// Package clipboard copies wall patterns to and from the system clipboard.
package clipboard

import "fmt"

func WriteText(string) error {
	return fmt.Errorf("clipboard text operations are not supported on this platform")
}

func ReadText() (string, error) {
	return "", fmt.Errorf("clipboard text operations are not supported on this platform")
}
