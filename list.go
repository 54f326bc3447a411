// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdlines

import (
	"regexp"
	"strings"
)

// A ListItem is an [Element] representing one line of a bullet list
// ("- text") or ordered list ("12. text").
type ListItem struct {
	// Level is the number of spaces and tabs indenting the marker.
	// A tab counts as one, and Level prints as that many spaces,
	// so "\t- a" prints as " - a".
	Level int

	// Marker is the bullet (-, *, or +) or the ordinal ("12.")
	// as written. It is printed verbatim.
	Marker string

	Text string
}

func (ListItem) Kind() Kind { return KindListItem }

func (x ListItem) printMarkdown(p *printer) {
	p.md(strings.Repeat(" ", x.Level), x.Marker, " ")
	p.text(x.Text)
}

// A TaskItem is an [Element] representing a list item
// that starts with a checkbox: "- [ ] text" or "- [x] text".
type TaskItem struct {
	Level   int    // number of spaces and tabs indenting the marker, as in ListItem
	Marker  string // bullet as written; empty means "-"
	Checked bool
	Text    string
}

func (TaskItem) Kind() Kind { return KindTaskItem }

func (x TaskItem) marker() string {
	if x.Marker == "" {
		return "-"
	}
	return x.Marker
}

func (x TaskItem) printMarkdown(p *printer) {
	box := "[ ] "
	if x.Checked {
		box = "[x] "
	}
	p.md(strings.Repeat(" ", x.Level), x.marker(), " ", box)
	p.text(x.Text)
}

// A ListStart is an [Element] marking the start of a run
// of list and task items. It prints as nothing.
type ListStart struct{}

func (ListStart) Kind() Kind { return KindListStart }

func (ListStart) printMarkdown(*printer) {}

// A ListEnd is an [Element] marking the end of a run
// of list and task items. It prints as nothing.
type ListEnd struct{}

func (ListEnd) Kind() Kind { return KindListEnd }

func (ListEnd) printMarkdown(*printer) {}

var (
	// An item with no text may end right after its marker or checkbox,
	// as it does when printed last.
	taskItemRE = regexp.MustCompile(`^(\s*)([-*+])\s\[([xX ])\](?:\s(.*))?$`)
	listItemRE = regexp.MustCompile(`^(\s*)([-*+]|\d+\.)(?:\s(.*))?$`)
)

// startTaskItem is a [starter] for a [TaskItem].
// It runs before [startListItem]: every task item
// would also parse as a list item.
func startTaskItem(p *parser, s string) bool {
	m := taskItemRE.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	p.emit(TaskItem{
		Level:   len(m[1]),
		Marker:  m[2],
		Checked: m[3] != " ",
		Text:    strings.TrimSpace(m[4]),
	})
	return true
}

// startListItem is a [starter] for a [ListItem].
func startListItem(p *parser, s string) bool {
	m := listItemRE.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	p.emit(ListItem{
		Level:  len(m[1]),
		Marker: m[2],
		Text:   strings.TrimSpace(m[3]),
	})
	return true
}

// isListLine reports whether s is a list or task item.
func isListLine(s string) bool {
	return listItemRE.MatchString(s)
}

func isBullet(s string) bool {
	return s == "-" || s == "*" || s == "+"
}

// isOrdinal reports whether s is an ordered list marker: digits and a dot.
func isOrdinal(s string) bool {
	n := len(s) - 1
	if n < 1 || s[n] != '.' {
		return false
	}
	for i := 0; i < n; i++ {
		if s[i] < '0' || '9' < s[i] {
			return false
		}
	}
	return true
}
