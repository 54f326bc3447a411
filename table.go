// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdlines

import "strings"

// A Table is an [Element] representing a pipe table:
// a header row, a delimiter row, and any number of body rows.
//
// Rows are kept exactly as wide as they were written.
// A body row may have more or fewer cells than Header;
// nothing is padded or dropped, in parsing or in printing.
type Table struct {
	Header []string
	Align  []string // delimiter cells as written, such as "---" or ":-:"
	Rows   [][]string
}

func (Table) Kind() Kind { return KindTable }

// Alignment returns the alignment of column i:
// "left", "center", "right", or "" if unset or out of range.
func (t Table) Alignment(i int) string {
	if i < 0 || i >= len(t.Align) {
		return ""
	}
	return tableAlign(t.Align[i])
}

func (t Table) printMarkdown(p *printer) {
	printTableRow(p, t.Header)
	p.nl()
	printTableRow(p, t.Align)
	for _, row := range t.Rows {
		p.nl()
		printTableRow(p, row)
	}
}

func printTableRow(p *printer, row []string) {
	p.md("| ", strings.Join(row, " | "), " |")
}

// startTable is a [starter] for a [Table].
// A table is a run of lines that each begin and end with a pipe;
// the run ends at the first line that does not.
// If the run does not start with a header row and a delimiter row,
// its first line is only a paragraph, and the next line is
// classified on its own.
func startTable(p *parser, s string) bool {
	if !isTableRow(s) {
		return false
	}
	next, ok := p.peek()
	if !ok || !isTableRow(next) || !isTableDelim(next) {
		p.emit(Paragraph{ParseInline(s)})
		return true
	}
	p.next()
	t := Table{
		Header: splitTableRow(s),
		Align:  splitTableRow(next),
	}
	for {
		row, ok := p.peek()
		if !ok || !isTableRow(row) {
			break
		}
		p.next()
		t.Rows = append(t.Rows, splitTableRow(row))
	}
	p.emit(t)
	return true
}

func isTableSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\v' || c == '\f'
}

func tableTrimSpace(s string) string {
	i := 0
	for i < len(s) && isTableSpace(s[i]) {
		i++
	}
	j := len(s)
	for j > i && isTableSpace(s[j-1]) {
		j--
	}
	return s[i:j]
}

func tableTrimOuter(row string) string {
	row = tableTrimSpace(row)
	if len(row) > 0 && row[0] == '|' {
		row = row[1:]
	}
	if len(row) > 0 && row[len(row)-1] == '|' {
		row = row[:len(row)-1]
	}
	return row
}

// isTableRow reports whether s begins and ends with a pipe.
func isTableRow(s string) bool {
	s = trimRightSpaceTab(s)
	return len(s) >= 2 && s[0] == '|' && s[len(s)-1] == '|'
}

// isTableDelim reports whether row is a delimiter row,
// made of cells like ---, :--, --:, and :-:.
func isTableDelim(row string) bool {
	delim := tableTrimOuter(row)
	i := 0
	for col := 0; ; col++ {
		for i < len(delim) && isTableSpace(delim[i]) {
			i++
		}
		if i >= len(delim) {
			return col > 0
		}
		if delim[i] == ':' {
			i++
		}
		if i >= len(delim) || delim[i] != '-' {
			return false
		}
		for i < len(delim) && delim[i] == '-' {
			i++
		}
		if i < len(delim) && delim[i] == ':' {
			i++
		}
		for i < len(delim) && isTableSpace(delim[i]) {
			i++
		}
		if i < len(delim) {
			if delim[i] != '|' {
				return false
			}
			i++
		}
	}
}

// splitTableRow splits row into trimmed cells.
// A pipe preceded by a backslash does not separate cells,
// even if the backslash is itself escaped, and is kept as written.
func splitTableRow(row string) []string {
	row = tableTrimOuter(row)
	var out []string
	start := 0
	for i := 0; i < len(row); i++ {
		if row[i] == '|' && (i == 0 || row[i-1] != '\\') {
			out = append(out, tableTrimSpace(row[start:i]))
			start = i + 1
		}
	}
	return append(out, tableTrimSpace(row[start:]))
}

func tableAlign(cell string) string {
	cell = tableTrimSpace(cell)
	if cell == "" {
		return ""
	}
	l := cell[0] == ':'
	r := cell[len(cell)-1] == ':'
	switch {
	case l && r:
		return "center"
	case l:
		return "left"
	case r:
		return "right"
	}
	return ""
}
