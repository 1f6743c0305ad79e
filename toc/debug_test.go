package toc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutline(t *testing.T) {
	headings := ExtractHeadings("# Title\n## A\n### B")
	entries := Entries(headings, DefaultOptions())

	want := "Headings: 3\n" +
		"  H1 line=1\n" +
		"    title: \"Title\"\n" +
		"    H2 line=2\n" +
		"      title: \"A\"\n" +
		"      H3 line=3\n" +
		"        title: \"B\"\n" +
		"Entries: 2\n" +
		"  1. #a\n" +
		"    1. #b\n"
	assert.Equal(t, want, Outline(headings, entries))
}

func TestOutline_Empty(t *testing.T) {
	assert.Equal(t, "Headings: 0\nEntries: 0\n", Outline(nil, nil))
}
