//go:build !windows

package config

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// CleanFileName makes name usable as a single path element: separators and
// leading dots are removed.
func CleanFileName(in string) string {
	out := strings.TrimLeft(strings.Map(dropRunes(string(os.PathSeparator)+string(os.PathListSeparator)), in), ".")
	if len(out) == 0 {
		return badFileName
	}
	return out
}

// EnableColorOutput checks if colorized output is possible.
func EnableColorOutput(stream *os.File) bool {
	return colorAllowed() && term.IsTerminal(int(stream.Fd()))
}
