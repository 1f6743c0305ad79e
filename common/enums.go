// Enumerations shared by configuration, command line and table of contents
// generator. They live in a separate package so the toc package does not have
// to depend on configuration.
package common

//go:generate go tool go-enum --marshal --names

// Specification of table of contents entry numbering.
// ENUM(flat, hierarchical)
type NumberingMode int

// Dotted reports whether numbers are rendered as full paths (2.1.3).
func (n NumberingMode) Dotted() bool {
	return n == NumberingModeHierarchical
}

// Specification of anchor slug generation.
// ENUM(github, transliterate)
type SlugStyle int

// Specification of requested output type.
// ENUM(markdown, html)
type OutputFmt int

func (o OutputFmt) Ext() string {
	switch o {
	case OutputFmtMarkdown:
		return ".md"
	case OutputFmtHtml:
		return ".html"
	default:
		// this should never happen
		panic("unsupported format requested")
	}
}
