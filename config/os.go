package config

import (
	"os"
	"strings"
)

// badFileName replaces names which have nothing left after cleaning.
const badFileName = "_bad_file_name_"

// dropRunes returns mapping function for strings.Map removing every rune
// from set.
func dropRunes(set string) func(rune) rune {
	return func(sym rune) rune {
		if sym == 0 || strings.ContainsRune(set, sym) {
			return -1
		}
		return sym
	}
}

// colorAllowed honors NO_COLOR convention (https://no-color.org).
func colorAllowed() bool {
	v, ok := os.LookupEnv("NO_COLOR")
	return !ok || len(v) == 0
}
