// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdlines

import "strings"

// splitLines splits text into lines, removing the line terminators.
// A final newline ends the last line; it does not begin another one.
// A carriage return before a newline is removed too.
func splitLines(text string) []string {
	var lines []string
	for text != "" {
		var line string
		if i := strings.IndexByte(text, '\n'); i >= 0 {
			line, text = text[:i], text[i+1:]
		} else {
			line, text = text, ""
		}
		lines = append(lines, strings.TrimSuffix(line, "\r"))
	}
	return lines
}

// indentWidth returns the number of spaces and tabs at the start of s.
func indentWidth(s string) int {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return i
}

func trimLeftSpaceTab(s string) string {
	return s[indentWidth(s):]
}

func trimRightSpaceTab(s string) string {
	j := len(s)
	for j > 0 && (s[j-1] == ' ' || s[j-1] == '\t') {
		j--
	}
	return s[:j]
}

func trimSpaceTab(s string) string {
	return trimRightSpaceTab(trimLeftSpaceTab(s))
}

func isBlank(s string) bool {
	return indentWidth(s) == len(s)
}

// isRun reports whether s consists of at least n copies of c,
// optionally followed by spaces and tabs.
func isRun(s string, c byte, n int) bool {
	s = trimRightSpaceTab(s)
	if len(s) < n {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] != c {
			return false
		}
	}
	return true
}
