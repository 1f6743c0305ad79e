package toc

import (
	"regexp"
	"strings"
)

// MaxLevel is the deepest ATX heading level.
const MaxLevel = 6

// 1-6 hashes, whitespace, title, optional closing hashes.
var headingRe = regexp.MustCompile(`^(#{1,6})` + space + `+(.+?)` + space + `*#*` + space + `*$`)

// Heading represents a markdown ATX heading.
type Heading struct {
	Level int
	Title string
	Line  int // 1-based line number
}

// ExtractHeadings returns ATX headings in document order. Headings inside
// fenced code blocks (``` or ~~~) and Liquid highlight blocks are ignored.
func ExtractHeadings(md string) []Heading {
	var (
		headings []Heading
		scanner  fenceScanner
	)

	for i, line := range splitLines(md) {
		if !scanner.content(line) {
			continue
		}
		m := headingRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		headings = append(headings, Heading{
			Level: len(m[1]),
			Title: strings.TrimFunc(m[2], isSpace),
			Line:  i + 1,
		})
	}
	return headings
}
