// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdlines

import (
	"bytes"
	"strings"
)

type printer struct {
	buf bytes.Buffer
}

func (p *printer) nl() {
	p.buf.WriteByte('\n')
}

func (p *printer) md(list ...string) {
	for _, s := range list {
		p.buf.WriteString(s)
	}
}

// text writes s, which may span multiple lines.
// Elements built by other tools can carry embedded newlines
// (a wrapped paragraph, for example); they are written as line breaks.
func (p *printer) text(s string) {
	for i, line := range strings.Split(s, "\n") {
		if i > 0 {
			p.nl()
		}
		p.buf.WriteString(line)
	}
}

// ToMarkdown returns the Markdown text for the element sequence list.
//
// Every element is printed on its own line (or lines),
// except [ListStart] and [ListEnd], which print nothing.
// A [Break] prints as one blank line.
// Trailing white space is removed from the result,
// and non-empty results end in a single newline.
// Nil elements, which [Validate] reports, print nothing.
func ToMarkdown(list []Element) string {
	var p printer
	for _, e := range list {
		if e == nil {
			continue
		}
		e.printMarkdown(&p)
		if !isListMarker(e) {
			p.nl()
		}
	}

	// Terminate with a single newline.
	text := p.buf.Bytes()
	w := len(text)
	for w > 0 && (text[w-1] == '\n' || text[w-1] == ' ' || text[w-1] == '\t' || text[w-1] == '\r') {
		w--
	}
	p.buf.Truncate(w)
	if w > 0 {
		p.nl()
	}
	return p.buf.String()
}

// FormatElement returns the Markdown text for the single element e,
// without a trailing newline.
// List markers and nil format as the empty string.
func FormatElement(e Element) string {
	if e == nil {
		return ""
	}
	var p printer
	e.printMarkdown(&p)
	return p.buf.String()
}

func isListMarker(e Element) bool {
	switch e.(type) {
	case ListStart, ListEnd:
		return true
	}
	return false
}
