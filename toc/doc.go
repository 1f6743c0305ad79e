// Package toc builds numbered, linked table of contents from Markdown text.
//
// The work is done in a single pass over the document lines: fenced code
// blocks and Liquid highlight tags are skipped, ATX headings are collected,
// their titles turned into anchor slugs, repeated slugs made unique and the
// result numbered and rendered as a Markdown list. Nothing is kept between
// calls.
package toc
