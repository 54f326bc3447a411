// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdlines

// A Paragraph is an [Element] representing a line of ordinary text.
//
// Text holds the line with its inline markup rewritten
// by [ParseInline]: "a **b**" is stored as "a <strong>b</strong>".
// Printing applies [FormatInline] to recover the Markdown.
type Paragraph struct {
	Text string
}

func (Paragraph) Kind() Kind { return KindParagraph }

func (b Paragraph) printMarkdown(p *printer) {
	p.text(FormatInline(b.Text))
}

// startParagraph is a [starter] for a [Paragraph].
// It accepts any line, so it must be last.
func startParagraph(p *parser, s string) bool {
	p.emit(Paragraph{ParseInline(s)})
	return true
}
