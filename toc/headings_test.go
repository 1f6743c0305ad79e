package toc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractHeadings(t *testing.T) {
	input := `# Heading 1

Some text.

## Heading 2 ##

### Heading 3   #
#### Tabbed	
###### Six
####### Seven
#NoSpace
`
	headings := ExtractHeadings(input)
	require.Len(t, headings, 5)

	want := []Heading{
		{Level: 1, Title: "Heading 1", Line: 1},
		{Level: 2, Title: "Heading 2", Line: 5},
		{Level: 3, Title: "Heading 3", Line: 7},
		{Level: 4, Title: "Tabbed", Line: 8},
		{Level: 6, Title: "Six", Line: 9},
	}
	assert.Equal(t, want, headings)
}

func TestExtractHeadings_Empty(t *testing.T) {
	assert.Empty(t, ExtractHeadings(""))
	assert.Empty(t, ExtractHeadings("Just plain text without any headings."))
	assert.Empty(t, ExtractHeadings("1. [A](#a)\n2. [B](#b)\n    1. [C](#c)"))
}

func TestExtractHeadings_SkipsFences(t *testing.T) {
	input := "# Title\n" +
		"```bash\n" +
		"# comment in shell\n" +
		"###### deep\n" +
		"```\n" +
		"## After\n" +
		"~~~\n" +
		"## Tilde hidden\n" +
		"~~~\n" +
		"{% highlight python %}\n" +
		"# python comment\n" +
		"{% endhighlight %}\n" +
		"## Last\n"

	headings := ExtractHeadings(input)

	titles := make([]string, 0, len(headings))
	for _, h := range headings {
		titles = append(titles, h.Title)
	}
	assert.Equal(t, []string{"Title", "After", "Last"}, titles)
}

func TestExtractHeadings_KeepsInnerHashes(t *testing.T) {
	headings := ExtractHeadings("## C# and F#\n## Issue #42 ###")
	require.Len(t, headings, 2)
	assert.Equal(t, "C# and F", headings[0].Title)
	assert.Equal(t, "Issue #42", headings[1].Title)
}

func TestExtractHeadings_CRLF(t *testing.T) {
	headings := ExtractHeadings("# One\r\n## Two\r\n")
	require.Len(t, headings, 2)
	assert.Equal(t, "One", headings[0].Title)
	assert.Equal(t, "Two", headings[1].Title)
	assert.Equal(t, 2, headings[1].Line)
}

func TestExtractHeadings_UnicodeWhitespace(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Heading
	}{
		{"no-break space", "#\u00a0Title", []Heading{{Level: 1, Title: "Title", Line: 1}}},
		{"em space", "##\u2003Title\u2003##\u00a0", []Heading{{Level: 2, Title: "Title", Line: 1}}},
		{"ideographic space", "#\u3000見出し", []Heading{{Level: 1, Title: "見出し", Line: 1}}},
		{"unit separator", "#\x1fTitle\x1f", []Heading{{Level: 1, Title: "Title", Line: 1}}},
		{"zero width space is not space", "#\u200bTitle", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractHeadings(tt.input))
		})
	}
}

func TestExtractHeadings_UnicodeLineBreaks(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Heading
	}{
		{"form feed", "text\f# Hidden", []Heading{{Level: 1, Title: "Hidden", Line: 2}}},
		{"vertical tab", "# A\v## B", []Heading{{Level: 1, Title: "A", Line: 1}, {Level: 2, Title: "B", Line: 2}}},
		{"next line", "# A\u0085## B", []Heading{{Level: 1, Title: "A", Line: 1}, {Level: 2, Title: "B", Line: 2}}},
		{"line separator", "# A\u2028## B", []Heading{{Level: 1, Title: "A", Line: 1}, {Level: 2, Title: "B", Line: 2}}},
		{"paragraph separator", "# A\u2029## B", []Heading{{Level: 1, Title: "A", Line: 1}, {Level: 2, Title: "B", Line: 2}}},
		{"fence closed after record separator", "```\x1e# in\x1e```\x1e# out", []Heading{{Level: 1, Title: "out", Line: 4}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractHeadings(tt.input))
		})
	}
}
