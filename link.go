// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdlines

import (
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// An Image is an [Element] representing a line holding
// only an image: ![Alt](URL "Title").
type Image struct {
	Alt   string
	URL   string
	Title string // optional
}

func (Image) Kind() Kind { return KindImage }

func (x Image) printMarkdown(p *printer) {
	p.md("![", x.Alt, "](", x.URL)
	if x.Title != "" {
		p.md(` "`, x.Title, `"`)
	}
	p.md(")")
}

var imageRE = regexp.MustCompile(`^!\[([^\]]*)\]\(([^)\s]+)(?:\s"([^"]+)")?\)[ \t]*$`)

// startImage is a [starter] for an [Image].
// An image followed by other text on the same line
// is left for the paragraph starter.
func startImage(p *parser, s string) bool {
	m := imageRE.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	p.emit(Image{Alt: m[1], URL: m[2], Title: m[3]})
	return true
}

// A LinkRef is an [Element] representing a link reference definition:
// [Label]: URL "Title".
type LinkRef struct {
	Label string
	URL   string
	Title string // optional
}

func (LinkRef) Kind() Kind { return KindLinkRef }

func (x LinkRef) printMarkdown(p *printer) {
	p.md("[", x.Label, "]:")
	if x.URL != "" {
		p.md(" ", x.URL)
	}
	if x.Title != "" {
		p.md(` "`, x.Title, `"`)
	}
}

var (
	// The label may not start with ^, which would make it a footnote.
	linkRefRE   = regexp.MustCompile(`^\[([^\]^][^\]]*)\]:[ \t]*(.*)$`)
	linkTitleRE = regexp.MustCompile(`^(\S+)[ \t]+"([^"]*)"[ \t]*$`)
)

// startLinkRef is a [starter] for a [LinkRef].
func startLinkRef(p *parser, s string) bool {
	m := linkRefRE.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	ref := LinkRef{Label: m[1], URL: trimRightSpaceTab(m[2])}
	if t := linkTitleRE.FindStringSubmatch(ref.URL); t != nil {
		ref.URL, ref.Title = t[1], t[2]
	}
	p.emit(ref)
	return true
}

// Definitions indexes the link reference and footnote definitions
// of an element sequence by normalized label.
// Labels match without regard to case or to runs of white space,
// and the first definition of a label wins.
type Definitions struct {
	links map[string]LinkRef
	notes map[string]Footnote
}

// CollectDefinitions returns the definitions in list.
func CollectDefinitions(list []Element) *Definitions {
	d := &Definitions{
		links: make(map[string]LinkRef),
		notes: make(map[string]Footnote),
	}
	for _, e := range list {
		switch e := e.(type) {
		case LinkRef:
			key := normalizeLabel(e.Label)
			if _, ok := d.links[key]; !ok && key != "" {
				d.links[key] = e
			}
		case Footnote:
			key := normalizeLabel(e.ID)
			if _, ok := d.notes[key]; !ok && key != "" {
				d.notes[key] = e
			}
		}
	}
	return d
}

// Link returns the link reference definition for label.
func (d *Definitions) Link(label string) (LinkRef, bool) {
	l, ok := d.links[normalizeLabel(label)]
	return l, ok
}

// Footnote returns the footnote definition for id.
func (d *Definitions) Footnote(id string) (Footnote, bool) {
	n, ok := d.notes[normalizeLabel(id)]
	return n, ok
}

// Labels returns the normalized link labels, sorted.
func (d *Definitions) Labels() []string {
	var keys []string
	for k := range d.links {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// normalizeLabel returns the normalized label for s, for uniquely identifying that label.
func normalizeLabel(s string) string {
	if strings.ContainsAny(s, "[]") {
		// Labels cannot have [ ].
		return ""
	}

	// Case fold, strip leading and trailing white space,
	// and collapse internal runs of white space to a single space.
	s = strings.Trim(s, " \t\n")
	var b strings.Builder
	space := false
	hi := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case ' ', '\t', '\n':
			space = true
			continue
		default:
			if space {
				b.WriteByte(' ')
				space = false
			}
			if 'A' <= c && c <= 'Z' {
				c += 'a' - 'A'
			}
			if c >= 0x80 {
				hi = true
			}
			b.WriteByte(c)
		}
	}
	s = b.String()
	if hi {
		s = cases.Fold().String(s)
	}
	return s
}
