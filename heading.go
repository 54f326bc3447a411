// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdlines

import "strings"

// A Heading is an [Element] representing an ATX heading ("## Text")
// or a setext heading (a line of text underlined by ='s or -'s).
// Headings always print in ATX form.
type Heading struct {
	// Level is the heading level: 1 through 6.
	// Larger values print as level 6.
	Level int

	// Text is the text of the heading, without the leading #'s.
	Text string
}

func (Heading) Kind() Kind { return KindHeading }

// level returns the effective level, clamping Level to the range [1, 6].
func (h Heading) level() int {
	return max(1, min(6, h.Level))
}

func (h Heading) printMarkdown(p *printer) {
	p.md(strings.Repeat("#", h.level()), " ")
	p.text(h.Text)
}

// startHeading is a [starter] for a [Heading].
// It accepts an ATX heading line, or a line of text
// whose following line is a setext underline.
func startHeading(p *parser, s string) bool {
	if level, text, ok := trimATX(s); ok {
		p.emit(Heading{level, text})
		return true
	}

	// A setext heading needs text that would otherwise be a paragraph.
	if isBlank(s) || isListLine(s) {
		return false
	}
	u, ok := p.peek()
	if !ok {
		return false
	}
	level, ok := trimSetext(u)
	if !ok {
		return false
	}
	p.next()
	p.emit(Heading{level, trimSpaceTab(s)})
	return true
}

// trimATX parses an ATX heading line: 1-6 #s at the start of s
// followed by a space or tab and then the heading text,
// or by the end of the line for an empty heading.
func trimATX(s string) (level int, text string, ok bool) {
	n := 0
	for n < len(s) && s[n] == '#' {
		n++
	}
	if n < 1 || n > 6 || (n < len(s) && s[n] != ' ' && s[n] != '\t') {
		return 0, "", false
	}
	return n, trimSpaceTab(s[n:]), true
}

// trimSetext parses a setext underline, reporting the heading level
// it introduces: 1 for ='s, 2 for -'s.
// A line of three or more -'s is a thematic break, not an underline.
func trimSetext(s string) (level int, ok bool) {
	switch {
	case isRun(s, '=', 1):
		return 1, true
	case isRun(s, '-', 1) && !isThematicBreak(s):
		return 2, true
	}
	return 0, false
}
