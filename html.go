// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdlines

import "regexp"

// An HTMLBlock is an [Element] representing a line of raw HTML
// holding an opening and a closing tag, such as "<b>hi</b>".
// The line is kept verbatim and not interpreted.
type HTMLBlock struct {
	Text string
}

func (HTMLBlock) Kind() Kind { return KindHTML }

func (b HTMLBlock) printMarkdown(p *printer) {
	p.text(b.Text)
}

var htmlLineRE = regexp.MustCompile(`^<.*>.*</.*>$`)

// startHTMLBlock is a [starter] for an [HTMLBlock].
func startHTMLBlock(p *parser, s string) bool {
	if !htmlLineRE.MatchString(s) {
		return false
	}
	p.emit(HTMLBlock{s})
	return true
}
