package toc

import "mdtoc/utils/debug"

// Outline returns readable dump of extracted headings and produced entries.
// It exists solely for debug reports.
func Outline(headings []Heading, entries []Entry) string {
	tw := debug.NewTreeWriter()
	tw.Line(0, "Headings: %d", len(headings))
	for _, h := range headings {
		tw.Line(h.Level, "H%d line=%d", h.Level, h.Line)
		tw.Field(h.Level+1, "title", h.Title)
	}
	tw.Line(0, "Entries: %d", len(entries))
	for _, e := range entries {
		tw.Line(e.Depth+1, "%s. #%s", e.Number, e.Slug)
	}
	return tw.String()
}
