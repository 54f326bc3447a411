// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdlines

import "fmt"

// A Kind is the type tag of an [Element].
// The string values are part of the element field surface
// and must not change.
type Kind string

const (
	KindHeading    Kind = "heading"
	KindParagraph  Kind = "paragraph"
	KindBreak      Kind = "break"
	KindHTML       Kind = "html"
	KindHR         Kind = "hr"
	KindBlockquote Kind = "blockquote"
	KindImage      Kind = "image"
	KindLinkRef    Kind = "link-ref"
	KindFootnote   Kind = "footnote"
	KindTable      Kind = "table"
	KindTaskItem   Kind = "task-item"
	KindListItem   Kind = "list-item"
	KindListStart  Kind = "list-start"
	KindListEnd    Kind = "list-end"
	KindCode       Kind = "code"
)

var kinds = []Kind{
	KindHeading,
	KindParagraph,
	KindBreak,
	KindHTML,
	KindHR,
	KindBlockquote,
	KindImage,
	KindLinkRef,
	KindFootnote,
	KindTable,
	KindTaskItem,
	KindListItem,
	KindListStart,
	KindListEnd,
	KindCode,
}

// Kinds returns the closed set of element kinds.
func Kinds() []Kind {
	return append([]Kind(nil), kinds...)
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	for _, x := range kinds {
		if x == k {
			return true
		}
	}
	return false
}

// An Element is one structural unit of a document:
// one of [Heading], [Paragraph], [Break], [HTMLBlock], [ThematicBreak],
// [Quote], [Image], [LinkRef], [Footnote], [Table], [TaskItem],
// [ListItem], [ListStart], [ListEnd], and [CodeBlock].
//
// Elements are values and are never modified after construction.
// Code that rewrites a document builds new elements instead.
type Element interface {
	Kind() Kind

	printMarkdown(*printer)
}

// An ElementError reports an element that cannot be constructed
// from the given content and attributes.
type ElementError struct {
	Kind  Kind
	Field string // offending field; empty if the kind itself is bad
	Msg   string
}

func (e *ElementError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("mdlines: %s element: %s", e.Kind, e.Msg)
	}
	return fmt.Sprintf("mdlines: %s element: %s %s", e.Kind, e.Field, e.Msg)
}

// An Attr sets an optional attribute for [New].
type Attr func(*Fields)

// Level sets the heading depth or list indentation.
func Level(n int) Attr { return func(f *Fields) { f.Level = &n } }

// Marker sets the list bullet or ordinal token, such as "-" or "12.".
func Marker(s string) Attr { return func(f *Fields) { f.Marker = &s } }

// Checked sets the completion state of a task item.
func Checked(b bool) Attr { return func(f *Fields) { f.Checked = &b } }

// Lang sets the language tag of a code block.
func Lang(s string) Attr { return func(f *Fields) { f.Lang = &s } }

// URL sets the target of an image or link reference.
func URL(s string) Attr { return func(f *Fields) { f.URL = &s } }

// Title sets the title of an image or link reference.
func Title(s string) Attr { return func(f *Fields) { f.Title = &s } }

// ID sets the identifier of a footnote.
func ID(s string) Attr { return func(f *Fields) { f.ID = &s } }

// New constructs an element of the given kind.
// Content is a string for every kind except [KindTable],
// whose content is a [TableContent] (or a pointer to one).
// Attributes not passed to New are absent; New reports an error
// if a required attribute is missing or if an attribute
// has no meaning for kind.
func New(kind Kind, content any, attrs ...Attr) (Element, error) {
	f := Fields{Type: kind, Content: content}
	for _, a := range attrs {
		a(&f)
	}
	return f.Element()
}
