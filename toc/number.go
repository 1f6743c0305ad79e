package toc

import (
	"strconv"
	"strings"
)

// numberer keeps per level counters for a single render pass.
type numberer struct {
	counters [MaxLevel]int
}

// next counts another heading at level and forgets numbering of all deeper
// levels. Returned value is sibling-local: it restarts at 1 under every new
// parent.
func (n *numberer) next(level int) int {
	idx := level - 1
	n.counters[idx]++
	for j := idx + 1; j < len(n.counters); j++ {
		n.counters[j] = 0
	}
	return n.counters[idx]
}

// path returns dotted number ("3.2.1") of the last heading counted at level,
// levels never seen are left out.
func (n *numberer) path(level int) string {
	parts := make([]string, 0, level)
	for _, c := range n.counters[:level] {
		if c > 0 {
			parts = append(parts, strconv.Itoa(c))
		}
	}
	return strings.Join(parts, ".")
}

// NumberHeadings assigns dotted hierarchical numbers to all headings, the
// first one included. It is independent of table of contents rendering.
func NumberHeadings(headings []Heading) []string {
	var n numberer
	out := make([]string, len(headings))
	for i, h := range headings {
		level := clampLevel(h.Level)
		n.next(level)
		out[i] = n.path(level)
	}
	return out
}

func clampLevel(level int) int {
	return min(max(level, 1), MaxLevel)
}
