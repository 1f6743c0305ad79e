package toc

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

// space matches any Unicode white space character, RE2 \s is ASCII only.
const space = `[\s\v\x{1c}-\x{1f}\x{85}\p{Z}]`

// isSpace is the rune counterpart of space.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || ('\x1c' <= r && r <= '\x1f')
}

var (
	fenceOpenRe  = regexp.MustCompile("^(```|~~~)")
	fenceCloseRe = regexp.MustCompile("^(```|~~~)" + space + "*$")

	// Liquid (Jekyll) code blocks: {% highlight go %} ... {% endhighlight %}
	highlightOpenRe  = regexp.MustCompile(`^` + space + `*\{%` + space + `*highlight(?:[^\p{L}\p{M}\p{N}_]|$)`)
	highlightCloseRe = regexp.MustCompile(`^` + space + `*\{%` + space + `*endhighlight` + space + `*%\}` + space + `*$`)
)

type scanState int

const (
	scanNormal scanState = iota
	scanFence
	scanHighlight
)

func (s scanState) String() string {
	switch s {
	case scanFence:
		return "fence"
	case scanHighlight:
		return "highlight"
	default:
		return "normal"
	}
}

// fenceScanner classifies document lines. Once in a skip state only the
// matching closing marker gets it out, unterminated blocks swallow the rest
// of the document.
type fenceScanner struct {
	state scanState
}

// content advances scanner by one line and reports whether the line is
// regular document text which may hold a heading. Marker lines themselves
// are never content.
func (s *fenceScanner) content(line string) bool {
	switch s.state {
	case scanFence:
		if fenceCloseRe.MatchString(line) {
			s.state = scanNormal
		}
		return false
	case scanHighlight:
		if highlightCloseRe.MatchString(line) {
			s.state = scanNormal
		}
		return false
	}

	switch {
	case fenceOpenRe.MatchString(line):
		s.state = scanFence
		return false
	case highlightOpenRe.MatchString(line):
		s.state = scanHighlight
		return false
	}
	return true
}

// splitLines breaks text on every Unicode line boundary: "\n", "\r\n", "\r",
// "\v", "\f", file/group/record separators, NEL, LINE and PARAGRAPH
// SEPARATOR. Trailing line break does not produce an empty last line.
func splitLines(s string) []string {
	var (
		lines []string
		start int
	)
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		if !isLineBreak(r) {
			continue
		}
		lines = append(lines, s[start:i-size])
		if r == '\r' && i < len(s) && s[i] == '\n' {
			i++
		}
		start = i
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}
