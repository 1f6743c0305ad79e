package toc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mdtoc/common"
)

const sampleDoc = "# Title\n## A\n## B\n### C\n## D"

func TestBuild_SkipFirst(t *testing.T) {
	want := "1. [A](#a)\n" +
		"2. [B](#b)\n" +
		"    1. [C](#c)\n" +
		"3. [D](#d)"
	assert.Equal(t, want, Build(sampleDoc, DefaultOptions()))
}

func TestBuild_KeepFirst(t *testing.T) {
	opts := DefaultOptions()
	opts.SkipFirst = false

	want := "1. [Title](#title)\n" +
		"    1. [A](#a)\n" +
		"    2. [B](#b)\n" +
		"        1. [C](#c)\n" +
		"    3. [D](#d)"
	assert.Equal(t, want, Build(sampleDoc, opts))
}

func TestBuild_Empty(t *testing.T) {
	assert.Equal(t, "", Build("", DefaultOptions()))
	assert.Equal(t, "", Build("no headings\n```\n# hidden\n```\n", DefaultOptions()))
	// the only heading is the skipped title
	assert.Equal(t, "", Build("# Title\ntext", DefaultOptions()))
}

func TestBuild_Idempotent(t *testing.T) {
	opts := DefaultOptions()
	opts.SkipFirst = false
	out := Build(sampleDoc, opts)
	require.NotEmpty(t, out)
	assert.Equal(t, "", Build(out, opts))
}

func TestBuild_DuplicateTitles(t *testing.T) {
	want := "1. [Intro](#intro)\n2. [Intro](#intro-1)"
	assert.Equal(t, want, Build("# Doc\n## Intro\n## Intro", DefaultOptions()))

	// skipped title still takes its anchor
	want = "1. [Intro](#intro-1)"
	assert.Equal(t, want, Build("# Intro\n## Intro", DefaultOptions()))
}

func TestBuild_CountersRestartUnderNewParent(t *testing.T) {
	doc := "# T\n## A\n### x\n### y\n### z\n## B\n### w\n#### deep\n## C\n#### jump"
	want := "1. [A](#a)\n" +
		"    1. [x](#x)\n" +
		"    2. [y](#y)\n" +
		"    3. [z](#z)\n" +
		"2. [B](#b)\n" +
		"    1. [w](#w)\n" +
		"        1. [deep](#deep)\n" +
		"3. [C](#c)\n" +
		"        1. [jump](#jump)"
	assert.Equal(t, want, Build(doc, DefaultOptions()))
}

func TestBuild_NegativeIndentClamped(t *testing.T) {
	// level 1 heading after skipped title renders at depth -1, clamped to 0
	assert.Equal(t, "1. [Top](#top)\n1. [Sub](#sub)", Build("## Doc\n# Top\n## Sub", DefaultOptions()))
}

func TestBuild_Hierarchical(t *testing.T) {
	opts := DefaultOptions()
	opts.Numbering = common.NumberingModeHierarchical

	want := "1. [A](#a)\n" +
		"2. [B](#b)\n" +
		"    2.1. [C](#c)\n" +
		"3. [D](#d)"
	assert.Equal(t, want, Build(sampleDoc, opts))
}

func TestBuild_MaxLevel(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxLevel = 2
	assert.Equal(t, "1. [A](#a)\n2. [B](#b)\n3. [D](#d)", Build(sampleDoc, opts))
}

func TestBuild_Indent(t *testing.T) {
	opts := DefaultOptions()
	opts.Indent = 2
	assert.Equal(t, "1. [A](#a)\n2. [B](#b)\n  1. [C](#c)\n3. [D](#d)", Build(sampleDoc, opts))

	opts.Indent = -1
	assert.Equal(t, "1. [A](#a)\n2. [B](#b)\n1. [C](#c)\n3. [D](#d)", Build(sampleDoc, opts))
}

func TestBuild_TitlesKeepMarkup(t *testing.T) {
	out := Build("# Doc\n## Using `toc` with [links](http://x.y)\n## !!!", DefaultOptions())
	assert.Equal(t, "1. [Using `toc` with [links](http://x.y)](#using-toc-with-links)\n2. [!!!](#)", out)
}

func TestBuild_Transliterate(t *testing.T) {
	opts := DefaultOptions()
	opts.Slugs = common.SlugStyleTransliterate
	assert.Equal(t, "1. [Глава первая](#glava-pervaia)", Build("# Книга\n## Глава первая", opts))
}

func TestEntries(t *testing.T) {
	entries := Entries(ExtractHeadings(sampleDoc), DefaultOptions())
	require.Len(t, entries, 4)

	assert.Equal(t, Entry{Level: 3, Title: "C", Slug: "c", LocalNumber: 1, Number: "1", Depth: 1}, entries[2])
	for _, e := range entries {
		assert.GreaterOrEqual(t, e.Depth, 0)
		assert.False(t, strings.HasPrefix(e.Number, "0"))
	}
}

func TestEntries_NoHeadings(t *testing.T) {
	assert.Nil(t, Entries(nil, DefaultOptions()))
	assert.Equal(t, "", Render(nil, 4))
}
