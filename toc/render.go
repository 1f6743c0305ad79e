package toc

import (
	"fmt"
	"strconv"
	"strings"

	"mdtoc/common"
)

// Options control table of contents generation.
type Options struct {
	// SkipFirst drops the first heading (document title) and renders
	// the rest one level shallower.
	SkipFirst bool
	// Indent is the number of spaces per nesting level.
	Indent int
	// Numbering selects between sibling-local and dotted numbers.
	Numbering common.NumberingMode
	// MaxLevel limits depth of listed headings, zero means no limit.
	MaxLevel int
	// Slugs selects anchor generation.
	Slugs common.SlugStyle
}

// DefaultOptions returns options producing classic output: first heading
// skipped, four spaces indentation, flat numbering, GitHub anchors.
func DefaultOptions() Options {
	return Options{
		SkipFirst: true,
		Indent:    4,
		Numbering: common.NumberingModeFlat,
		MaxLevel:  MaxLevel,
		Slugs:     common.SlugStyleGithub,
	}
}

// Entry is a single table of contents line.
type Entry struct {
	Level       int
	Title       string
	Slug        string
	LocalNumber int    // sibling-local counter at Level
	Number      string // label actually rendered
	Depth       int    // indentation steps, never negative
}

// Entries numbers headings. All headings receive anchors (so slugs match what
// renderers generate for the full document), the first one is consumed when
// opts.SkipFirst is set and headings deeper than opts.MaxLevel are left out.
func Entries(headings []Heading, opts Options) []Entry {
	if len(headings) == 0 {
		return nil
	}

	slugger := SluggerFor(opts.Slugs)
	bases := make([]string, len(headings))
	for i, h := range headings {
		bases[i] = slugger(h.Title)
	}
	slugs := UniqueSlugs(bases)

	var (
		n       numberer
		entries = make([]Entry, 0, len(headings))
		offset  = -1
		skip    = opts.SkipFirst
	)
	for i, h := range headings {
		if skip {
			// skipped heading is the document title, everything else
			// moves one level up
			skip = false
			offset = -2
			continue
		}
		level := clampLevel(h.Level)
		if opts.MaxLevel > 0 && level > opts.MaxLevel {
			continue
		}

		local := n.next(level)
		number := strconv.Itoa(local)
		if opts.Numbering.Dotted() {
			number = n.path(level)
		}
		entries = append(entries, Entry{
			Level:       level,
			Title:       h.Title,
			Slug:        slugs[i],
			LocalNumber: local,
			Number:      number,
			Depth:       max(0, level+offset),
		})
	}
	return entries
}

// Render formats entries as Markdown list, one entry per line without
// trailing line break.
func Render(entries []Entry, indent int) string {
	unit := strings.Repeat(" ", max(0, indent))
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("%s%s. [%s](#%s)", strings.Repeat(unit, e.Depth), e.Number, e.Title, e.Slug))
	}
	return strings.Join(lines, "\n")
}

// Build returns Markdown table of contents for md. Document without headings
// produces empty string.
func Build(md string, opts Options) string {
	return Render(Entries(ExtractHeadings(md), opts), opts.Indent)
}
