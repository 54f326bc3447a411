// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdlines

// A Quote is an [Element] representing one line of a block quote.
// Nested quotes are not modeled: "> > x" is a Quote with Text "> x".
type Quote struct {
	Text string
}

func (Quote) Kind() Kind { return KindBlockquote }

func (b Quote) printMarkdown(p *printer) {
	if b.Text == "" {
		p.md(">")
		return
	}
	p.md("> ")
	p.text(b.Text)
}

// startQuote is a [starter] for a [Quote].
func startQuote(p *parser, s string) bool {
	if len(s) == 0 || s[0] != '>' {
		return false
	}
	p.emit(Quote{trimSpaceTab(s[1:])})
	return true
}
