// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mdlines converts line-oriented Markdown text into a flat,
// ordered sequence of typed elements and converts such a sequence
// back into Markdown text.
//
// Each input line produces exactly one element, except for fenced code
// blocks and tables, which gather several lines into one element, and
// setext headings, which consume their underline. Contiguous runs of list
// and task items are bracketed by synthetic [ListStart] and [ListEnd]
// elements that print as nothing.
//
// Parsing never fails: a line that matches no other construct
// becomes a [Paragraph]. Paragraph text is stored with its inline
// markup rewritten to tagged spans; see [ParseInline].
//
// The round trip
//
//	ToMarkdown(new(Parser).Parse(text))
//
// reproduces text up to trailing newlines, blank lines made of spaces,
// CRLF line endings, and a few spellings the element sequence does not
// record: setext headings print in ATX form, task checkboxes print
// as [x] or [ ], table cells are padded with single spaces,
// and list items indented with tabs print indented with spaces.
package mdlines

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'mdlines'.
func tracer() tracing.Trace {
	return tracing.Select("mdlines")
}
