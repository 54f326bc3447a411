// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdlines

import (
	"encoding/json"
	"fmt"
)

// Fields is the flat view of an [Element]: the field surface
// that tools outside this package address elements by.
// Optional attributes are pointers; nil means absent.
//
// Which attributes are present depends on Type:
//
//	heading      level
//	image        url, title (if any)
//	link-ref     url, title (if any)
//	footnote     id
//	task-item    level, marker, checked
//	list-item    level, marker
//	code         lang (if any)
//
// All other kinds carry content only.
type Fields struct {
	Type    Kind    `json:"type"`
	Content any     `json:"content"` // string, or TableContent for tables
	Level   *int    `json:"level,omitempty"`
	Marker  *string `json:"marker,omitempty"`
	Checked *bool   `json:"checked,omitempty"`
	Lang    *string `json:"lang,omitempty"`
	URL     *string `json:"url,omitempty"`
	Title   *string `json:"title,omitempty"`
	ID      *string `json:"id,omitempty"`
}

// TableContent is the content of a table element.
// Rows may have a different number of cells than Headers.
type TableContent struct {
	Headers []string   `json:"headers"`
	Aligns  []string   `json:"aligns"`
	Rows    [][]string `json:"rows"`
}

func ptr[T any](v T) *T { return &v }

// nonEmpty returns a pointer to s, or nil if s is empty.
func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// FieldsOf returns the flat view of e.
// It panics if e is nil.
func FieldsOf(e Element) Fields {
	switch e := e.(type) {
	case Heading:
		return Fields{Type: KindHeading, Content: e.Text, Level: ptr(e.Level)}
	case Paragraph:
		return Fields{Type: KindParagraph, Content: e.Text}
	case Break:
		return Fields{Type: KindBreak, Content: ""}
	case HTMLBlock:
		return Fields{Type: KindHTML, Content: e.Text}
	case ThematicBreak:
		return Fields{Type: KindHR, Content: e.Text}
	case Quote:
		return Fields{Type: KindBlockquote, Content: e.Text}
	case Image:
		return Fields{Type: KindImage, Content: e.Alt, URL: ptr(e.URL), Title: nonEmpty(e.Title)}
	case LinkRef:
		return Fields{Type: KindLinkRef, Content: e.Label, URL: ptr(e.URL), Title: nonEmpty(e.Title)}
	case Footnote:
		return Fields{Type: KindFootnote, Content: e.Text, ID: ptr(e.ID)}
	case Table:
		return Fields{Type: KindTable, Content: TableContent{e.Header, e.Align, e.Rows}}
	case TaskItem:
		return Fields{Type: KindTaskItem, Content: e.Text, Level: ptr(e.Level), Marker: ptr(e.marker()), Checked: ptr(e.Checked)}
	case ListItem:
		return Fields{Type: KindListItem, Content: e.Text, Level: ptr(e.Level), Marker: ptr(e.Marker)}
	case ListStart:
		return Fields{Type: KindListStart, Content: ""}
	case ListEnd:
		return Fields{Type: KindListEnd, Content: ""}
	case CodeBlock:
		return Fields{Type: KindCode, Content: e.Text, Lang: nonEmpty(e.Lang)}
	}
	panic(fmt.Sprintf("mdlines: unexpected element %T", e))
}

// Element converts f back into an [Element],
// checking that the attributes present match f.Type.
func (f Fields) Element() (Element, error) {
	if !f.Type.Valid() {
		return nil, &ElementError{Kind: f.Type, Msg: "unknown kind"}
	}

	if f.Type == KindTable {
		if err := f.allow(); err != nil {
			return nil, err
		}
		var tc TableContent
		switch c := f.Content.(type) {
		case TableContent:
			tc = c
		case *TableContent:
			if c == nil {
				return nil, &ElementError{KindTable, "content", "is nil"}
			}
			tc = *c
		default:
			return nil, &ElementError{KindTable, "content", fmt.Sprintf("must be TableContent, not %T", f.Content)}
		}
		return Table{Header: tc.Headers, Align: tc.Aligns, Rows: tc.Rows}, nil
	}

	text, ok := f.Content.(string)
	if !ok && f.Content != nil {
		return nil, &ElementError{f.Type, "content", fmt.Sprintf("must be a string, not %T", f.Content)}
	}

	switch f.Type {
	case KindHeading:
		if err := f.allow("level"); err != nil {
			return nil, err
		}
		if f.Level == nil {
			return nil, &ElementError{f.Type, "level", "is required"}
		}
		if *f.Level < 1 {
			return nil, &ElementError{f.Type, "level", fmt.Sprintf("must be at least 1, not %d", *f.Level)}
		}
		return Heading{Level: *f.Level, Text: text}, nil

	case KindParagraph, KindBreak, KindHTML, KindHR, KindBlockquote, KindListStart, KindListEnd:
		if err := f.allow(); err != nil {
			return nil, err
		}
		switch f.Type {
		case KindParagraph:
			return Paragraph{text}, nil
		case KindBreak:
			return Break{}, nil
		case KindHTML:
			return HTMLBlock{text}, nil
		case KindHR:
			return ThematicBreak{text}, nil
		case KindBlockquote:
			return Quote{text}, nil
		case KindListStart:
			return ListStart{}, nil
		}
		return ListEnd{}, nil

	case KindImage, KindLinkRef:
		if err := f.allow("url", "title"); err != nil {
			return nil, err
		}
		if f.URL == nil {
			return nil, &ElementError{f.Type, "url", "is required"}
		}
		title := ""
		if f.Title != nil {
			title = *f.Title
		}
		if f.Type == KindImage {
			return Image{Alt: text, URL: *f.URL, Title: title}, nil
		}
		return LinkRef{Label: text, URL: *f.URL, Title: title}, nil

	case KindFootnote:
		if err := f.allow("id"); err != nil {
			return nil, err
		}
		if f.ID == nil {
			return nil, &ElementError{f.Type, "id", "is required"}
		}
		return Footnote{ID: *f.ID, Text: text}, nil

	case KindTaskItem:
		if err := f.allow("level", "marker", "checked"); err != nil {
			return nil, err
		}
		if err := f.checkIndent(); err != nil {
			return nil, err
		}
		if f.Checked == nil {
			return nil, &ElementError{f.Type, "checked", "is required"}
		}
		t := TaskItem{Level: *f.Level, Marker: "-", Checked: *f.Checked, Text: text}
		if f.Marker != nil {
			if !isBullet(*f.Marker) {
				return nil, &ElementError{f.Type, "marker", fmt.Sprintf("%q is not a bullet", *f.Marker)}
			}
			t.Marker = *f.Marker
		}
		return t, nil

	case KindListItem:
		if err := f.allow("level", "marker"); err != nil {
			return nil, err
		}
		if err := f.checkIndent(); err != nil {
			return nil, err
		}
		if f.Marker == nil {
			return nil, &ElementError{f.Type, "marker", "is required"}
		}
		if !isBullet(*f.Marker) && !isOrdinal(*f.Marker) {
			return nil, &ElementError{f.Type, "marker", fmt.Sprintf("%q is not a list marker", *f.Marker)}
		}
		return ListItem{Level: *f.Level, Marker: *f.Marker, Text: text}, nil

	case KindCode:
		if err := f.allow("lang"); err != nil {
			return nil, err
		}
		c := CodeBlock{Text: text}
		if f.Lang != nil {
			c.Lang = *f.Lang
		}
		return c, nil
	}

	// unreachable: Valid checked the kind
	panic("mdlines: unhandled kind " + string(f.Type))
}

// allow returns an error if f has an attribute not named in names.
func (f Fields) allow(names ...string) error {
	attrs := []struct {
		name    string
		present bool
	}{
		{"level", f.Level != nil},
		{"marker", f.Marker != nil},
		{"checked", f.Checked != nil},
		{"lang", f.Lang != nil},
		{"url", f.URL != nil},
		{"title", f.Title != nil},
		{"id", f.ID != nil},
	}
Attrs:
	for _, a := range attrs {
		if !a.present {
			continue
		}
		for _, n := range names {
			if n == a.name {
				continue Attrs
			}
		}
		return &ElementError{f.Type, a.name, "is not allowed"}
	}
	return nil
}

func (f Fields) checkIndent() error {
	if f.Level == nil {
		return &ElementError{f.Type, "level", "is required"}
	}
	if *f.Level < 0 {
		return &ElementError{f.Type, "level", fmt.Sprintf("must not be negative, not %d", *f.Level)}
	}
	return nil
}

// UnmarshalJSON decodes f, reading table content as a [TableContent]
// and all other content as a string.
func (f *Fields) UnmarshalJSON(data []byte) error {
	type plain Fields
	var raw struct {
		plain
		Content json.RawMessage `json:"content"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*f = Fields(raw.plain)
	f.Content = nil
	if len(raw.Content) == 0 || string(raw.Content) == "null" {
		return nil
	}
	if f.Type == KindTable {
		var tc TableContent
		if err := json.Unmarshal(raw.Content, &tc); err != nil {
			return fmt.Errorf("mdlines: table content: %w", err)
		}
		f.Content = tc
		return nil
	}
	var s string
	if err := json.Unmarshal(raw.Content, &s); err != nil {
		return fmt.Errorf("mdlines: %s content: %w", f.Type, err)
	}
	f.Content = s
	return nil
}
