// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdlines

// A ThematicBreak is an [Element] representing a thematic break,
// usually displayed as a horizontal rule (<hr> tag).
type ThematicBreak struct {
	Text string // the rule as written, such as "---" or "***"
}

func (ThematicBreak) Kind() Kind { return KindHR }

func (b ThematicBreak) printMarkdown(p *printer) {
	if b.Text == "" {
		p.md("***")
		return
	}
	p.md(b.Text)
}

// startThematicBreak is a [starter] for a [ThematicBreak].
// It runs before the setext heading and list starters,
// so "---" is a rule, never an underline or a list item.
func startThematicBreak(p *parser, s string) bool {
	if !isThematicBreak(s) {
		return false
	}
	p.emit(ThematicBreak{trimRightSpaceTab(s)})
	return true
}

// isThematicBreak reports whether s is three or more
// copies of one of -, *, or _.
func isThematicBreak(s string) bool {
	return isRun(s, '-', 3) || isRun(s, '*', 3) || isRun(s, '_', 3)
}

// A Break is an [Element] representing a blank line.
type Break struct{}

func (Break) Kind() Kind { return KindBreak }

func (Break) printMarkdown(*printer) {}

// startBreak is a [starter] for a [Break].
// Lines holding only spaces and tabs count as blank.
func startBreak(p *parser, s string) bool {
	if !isBlank(s) {
		return false
	}
	p.emit(Break{})
	return true
}
