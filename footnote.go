// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdlines

import "regexp"

// A Footnote is an [Element] representing a footnote definition:
// [^ID]: Text.
type Footnote struct {
	ID   string
	Text string
}

func (Footnote) Kind() Kind { return KindFootnote }

func (x Footnote) printMarkdown(p *printer) {
	p.md("[^", x.ID, "]:")
	if x.Text != "" {
		p.md(" ")
		p.text(x.Text)
	}
}

var footnoteRE = regexp.MustCompile(`^\[\^([^\]]+)\]:[ \t]*(.*)$`)

// startFootnote is a [starter] for a [Footnote].
func startFootnote(p *parser, s string) bool {
	m := footnoteRE.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	p.emit(Footnote{ID: m[1], Text: trimRightSpaceTab(m[2])})
	return true
}
