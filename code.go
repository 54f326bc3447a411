// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdlines

import "strings"

// A CodeBlock is an [Element] representing a fenced code block
// or, if [Parser.IndentedCode] is set, an indented code block.
type CodeBlock struct {
	Lang string // language tag following the opening fence

	// Text is the content of the block: its lines joined by newlines,
	// exactly as written (for indented blocks, minus the indentation).
	Text string

	// Indented marks a block that prints with indentation
	// instead of fences. The Lang of an indented block is not printed.
	Indented bool
}

func (CodeBlock) Kind() Kind { return KindCode }

const fence = "```"

func (b CodeBlock) printMarkdown(p *printer) {
	if b.Indented {
		for i, line := range strings.Split(b.Text, "\n") {
			if i > 0 {
				p.nl()
			}
			if line != "" {
				p.md("    ", line)
			}
		}
		return
	}
	p.md(fence, b.Lang)
	p.nl()
	p.text(b.Text)
	p.nl()
	p.md(fence)
}

// startFencedCodeBlock is a [starter] for a fenced [CodeBlock].
// The block runs from the opening fence line to the next line
// starting with a fence, or to the end of the input if there is none:
// an unterminated block keeps everything after its opening fence.
// The lines between the fences are never reinterpreted.
func startFencedCodeBlock(p *parser, s string) bool {
	lang, ok := trimFence(s)
	if !ok {
		return false
	}
	var text []string
	closed := false
	for {
		line, ok := p.next()
		if !ok {
			break
		}
		if _, ok := trimFence(line); ok {
			closed = true
			break
		}
		text = append(text, line)
	}
	if !closed {
		tracer().Debugf("mdlines: unterminated code fence at end of input, keeping %d lines", len(text))
	}
	p.emit(CodeBlock{Lang: lang, Text: strings.Join(text, "\n")})
	return true
}

// trimFence parses a fence line, returning the text after the fence.
func trimFence(s string) (info string, ok bool) {
	t := trimSpaceTab(s)
	if !strings.HasPrefix(t, fence) {
		return "", false
	}
	return trimSpaceTab(t[len(fence):]), true
}

// startIndentedCodeBlock is a [starter] for an indented [CodeBlock].
func startIndentedCodeBlock(p *parser, s string) bool {
	if !p.IndentedCode || p.listOpen {
		return false
	}
	text, ok := trimCodeIndent(s)
	if !ok {
		return false
	}
	lines := []string{text}
	for {
		next, ok := p.peek()
		if !ok {
			break
		}
		t, ok := trimCodeIndent(next)
		if !ok {
			break
		}
		lines = append(lines, t)
		p.next()
	}
	p.emit(CodeBlock{Text: strings.Join(lines, "\n"), Indented: true})
	return true
}

// trimCodeIndent removes a code indentation (four spaces or a tab)
// from a non-blank line.
func trimCodeIndent(s string) (string, bool) {
	if isBlank(s) {
		return "", false
	}
	switch {
	case strings.HasPrefix(s, "    "):
		return s[4:], true
	case strings.HasPrefix(s, "\t"):
		return s[1:], true
	}
	return "", false
}
