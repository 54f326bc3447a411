// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdlines

// A Parser is a Markdown line tokenizer.
// Its exported fields configure optional syntax.
// The zero value is ready to use.
//
// A Parser holds no state between calls to Parse,
// so one Parser may be used by multiple goroutines at once.
type Parser struct {
	// IndentedCode enables indented code blocks:
	// a run of lines each starting with four spaces or a tab
	// becomes a single [CodeBlock] with Indented set.
	// Indented code is tried after list items and never while
	// a list run is open, so indented list items still parse as list items.
	IndentedCode bool
}

// parser is the state of a single Parse call.
type parser struct {
	*Parser
	lines    []string
	i        int // index of the current line in lines
	list     []Element
	listOpen bool
}

// A starter tries to classify the current line s.
// If s does not have the starter's syntax, the starter
// reports false and leaves the parser unchanged.
// Otherwise it emits zero or more elements, possibly consuming
// following lines as well, and reports true.
type starter func(p *parser, s string) bool

// starters is the ordered table of line classifiers.
// Many of them can accept the same line:
// the first starter that accepts a line wins.
var starters = []struct {
	kind  Kind
	start starter
}{
	{KindCode, startFencedCodeBlock},
	{KindHTML, startHTMLBlock},
	{KindHR, startThematicBreak},
	{KindBlockquote, startQuote},
	{KindImage, startImage},
	{KindLinkRef, startLinkRef},
	{KindFootnote, startFootnote},
	{KindTable, startTable},
	{KindHeading, startHeading},
	{KindTaskItem, startTaskItem},
	{KindListItem, startListItem},
	{KindCode, startIndentedCodeBlock},
	{KindBreak, startBreak},
	{KindParagraph, startParagraph},
}

// Precedence returns the kinds of the line classifiers
// in the order the parser tries them.
// [KindCode] appears twice: fenced code is tried first of all,
// and indented code (when enabled) just before blank lines.
func Precedence() []Kind {
	var list []Kind
	for _, s := range starters {
		list = append(list, s.kind)
	}
	return list
}

// Parse splits text into lines and returns the element sequence
// for those lines. Parse never fails: every line that matches
// no other syntax becomes a [Paragraph].
func (p *Parser) Parse(text string) []Element {
	ps := &parser{Parser: p, lines: splitLines(text)}
	for ; ps.i < len(ps.lines); ps.i++ {
		ps.addLine(ps.lines[ps.i])
	}
	ps.closeList()
	tracer().Infof("mdlines: parsed %d lines into %d elements", len(ps.lines), len(ps.list))
	return ps.list
}

func (p *parser) addLine(s string) {
	for _, st := range starters {
		if st.start(p, s) {
			tracer().Debugf("mdlines: line %d: %s", p.i+1, st.kind)
			return
		}
	}
	// unreachable: startParagraph accepts every line
	panic("mdlines: no starter for line")
}

// emit appends e to the element list.
// List and task items open a list run if none is open;
// any other element closes the open run first,
// so that ListStart and ListEnd always bracket items only.
func (p *parser) emit(e Element) {
	switch e.(type) {
	case ListItem, TaskItem:
		if !p.listOpen {
			p.list = append(p.list, ListStart{})
			p.listOpen = true
		}
	default:
		p.closeList()
	}
	p.list = append(p.list, e)
}

func (p *parser) closeList() {
	if p.listOpen {
		p.list = append(p.list, ListEnd{})
		p.listOpen = false
	}
}

// peek returns the line following the current one.
func (p *parser) peek() (string, bool) {
	if p.i+1 >= len(p.lines) {
		return "", false
	}
	return p.lines[p.i+1], true
}

// next consumes and returns the line following the current one.
func (p *parser) next() (string, bool) {
	s, ok := p.peek()
	if ok {
		p.i++
	}
	return s, ok
}
