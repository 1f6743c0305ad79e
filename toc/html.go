package toc

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
)

// htmlIndent nests an item under "1. " marker of its parent.
const htmlIndent = 3

// RenderHTML converts entries into HTML fragment of nested ordered lists.
// Numbering is expressed by lists themselves, so every item is written with
// "1." marker (it may always interrupt paragraph) and heading level jumps
// deeper than one step are flattened to keep list nesting valid.
func RenderHTML(entries []Entry) (string, error) {
	if len(entries) == 0 {
		return "", nil
	}

	var src strings.Builder
	for i, depth := range htmlDepths(entries) {
		fmt.Fprintf(&src, "%s1. [%s](#%s)\n", strings.Repeat(" ", depth*htmlIndent), entries[i].Title, entries[i].Slug)
	}

	var out bytes.Buffer
	if err := goldmark.Convert([]byte(src.String()), &out); err != nil {
		return "", fmt.Errorf("unable to render table of contents as html: %w", err)
	}
	return out.String(), nil
}

// htmlDepths maps entry depths to list nesting levels. Open parents are kept
// on a stack: entry at the same depth as the top is a sibling, deeper entry
// goes exactly one level down, shallower entry closes parents first.
func htmlDepths(entries []Entry) []int {
	type open struct{ depth, nested int }

	var (
		stack []open
		out   = make([]int, len(entries))
	)
	for i, e := range entries {
		for len(stack) > 0 && stack[len(stack)-1].depth > e.Depth {
			stack = stack[:len(stack)-1]
		}
		switch {
		case len(stack) == 0:
			stack = append(stack, open{e.Depth, 0})
		case stack[len(stack)-1].depth == e.Depth:
			// sibling
		default:
			stack = append(stack, open{e.Depth, stack[len(stack)-1].nested + 1})
		}
		out[i] = stack[len(stack)-1].nested
	}
	return out
}
