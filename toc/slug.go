package toc

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/gosimple/slug"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"mdtoc/common"
)

var (
	linkRe      = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	hyphenRunRe = regexp.MustCompile(`-{2,}`)
)

// Slugger maps heading title to anchor slug.
type Slugger func(title string) string

// SluggerFor returns slug function for requested style. Unknown styles get
// GitHub compatible slugs.
func SluggerFor(style common.SlugStyle) Slugger {
	if style == common.SlugStyleTransliterate {
		return TransliteratedSlug
	}
	return Slugify
}

// Slugify approximates GitHub anchor generation: accents stripped, text
// lowercased, links reduced to their text, punctuation other than hyphens
// removed and whitespace replaced with single hyphen. Steps are order
// sensitive. Result may be empty.
func Slugify(title string) string {
	s := stripAccents(title)
	s = cases.Lower(language.Und).String(s)
	s = stripMarkup(s)
	s = strings.Map(func(r rune) rune {
		if isWordRune(r) || isSpace(r) || r == '-' {
			return r
		}
		return -1
	}, s)
	s = strings.Join(strings.FieldsFunc(s, isSpace), "-")
	return hyphenRunRe.ReplaceAllString(s, "-")
}

// TransliteratedSlug produces ASCII only slugs, "Война и мир" becomes
// "voina-i-mir". Markdown links and code spans are reduced to their visible
// text first so link targets never leak into anchor.
func TransliteratedSlug(title string) string {
	return slug.Make(stripMarkup(title))
}

// stripAccents decomposes text (compatibility decomposition) and drops
// nonspacing marks.
func stripAccents(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// stripMarkup keeps visible text of [text](url) links and removes inline code
// backticks.
func stripMarkup(s string) string {
	s = linkRe.ReplaceAllString(s, "$1")
	return strings.ReplaceAll(s, "`", "")
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
