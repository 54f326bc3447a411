// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdlines

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKinds(t *testing.T) {
	kinds := Kinds()
	assert.Len(t, kinds, 15)
	for _, k := range kinds {
		assert.True(t, k.Valid(), "kind %q", k)
	}
	assert.False(t, Kind("bogus").Valid())

	// Kinds returns a copy.
	kinds[0] = "bogus"
	assert.Equal(t, KindHeading, Kinds()[0])
}

var newTests = []struct {
	kind    Kind
	content any
	attrs   []Attr
	want    Element
}{
	{KindHeading, "Title", []Attr{Level(2)}, Heading{2, "Title"}},
	{KindHeading, "Deep", []Attr{Level(9)}, Heading{9, "Deep"}},
	{KindParagraph, "text", nil, Paragraph{"text"}},
	{KindBreak, nil, nil, Break{}},
	{KindBreak, "", nil, Break{}},
	{KindHTML, "<i>x</i>", nil, HTMLBlock{"<i>x</i>"}},
	{KindHR, "---", nil, ThematicBreak{"---"}},
	{KindBlockquote, "q", nil, Quote{"q"}},
	{KindImage, "alt", []Attr{URL("a.png")}, Image{Alt: "alt", URL: "a.png"}},
	{KindImage, "alt", []Attr{URL("a.png"), Title("t")}, Image{"alt", "a.png", "t"}},
	{KindLinkRef, "go", []Attr{URL("https://go.dev")}, LinkRef{Label: "go", URL: "https://go.dev"}},
	{KindFootnote, "note", []Attr{ID("1")}, Footnote{"1", "note"}},
	{KindTaskItem, "do", []Attr{Level(0), Checked(true)}, TaskItem{Level: 0, Marker: "-", Checked: true, Text: "do"}},
	{KindTaskItem, "do", []Attr{Level(2), Marker("+"), Checked(false)}, TaskItem{Level: 2, Marker: "+", Text: "do"}},
	{KindListItem, "one", []Attr{Level(0), Marker("1.")}, ListItem{0, "1.", "one"}},
	{KindListItem, "b", []Attr{Level(4), Marker("*")}, ListItem{4, "*", "b"}},
	{KindListStart, nil, nil, ListStart{}},
	{KindListEnd, nil, nil, ListEnd{}},
	{KindCode, "x := 1", []Attr{Lang("go")}, CodeBlock{Lang: "go", Text: "x := 1"}},
	{KindCode, "plain", nil, CodeBlock{Text: "plain"}},
	{
		KindTable,
		TableContent{Headers: []string{"a"}, Aligns: []string{"---"}, Rows: [][]string{{"1", "2"}}},
		nil,
		Table{Header: []string{"a"}, Align: []string{"---"}, Rows: [][]string{{"1", "2"}}},
	},
	{
		KindTable,
		&TableContent{Headers: []string{"a"}, Aligns: []string{":-:"}},
		nil,
		Table{Header: []string{"a"}, Align: []string{":-:"}},
	},
}

func TestNew(t *testing.T) {
	for _, tt := range newTests {
		e, err := New(tt.kind, tt.content, tt.attrs...)
		if assert.NoError(t, err, "New(%q, %#v)", tt.kind, tt.content) {
			assert.Equal(t, tt.want, e)
			assert.Equal(t, tt.kind, e.Kind())
		}
	}
}

var newErrorTests = []struct {
	kind    Kind
	content any
	attrs   []Attr
	err     string
}{
	{"bogus", "", nil, "mdlines: bogus element: unknown kind"},
	{KindHeading, "x", nil, "mdlines: heading element: level is required"},
	{KindHeading, "x", []Attr{Level(0)}, "mdlines: heading element: level must be at least 1, not 0"},
	{KindHeading, 42, []Attr{Level(1)}, "mdlines: heading element: content must be a string, not int"},
	{KindParagraph, "x", []Attr{Level(1)}, "mdlines: paragraph element: level is not allowed"},
	{KindImage, "alt", nil, "mdlines: image element: url is required"},
	{KindLinkRef, "x", []Attr{URL("u"), ID("1")}, "mdlines: link-ref element: id is not allowed"},
	{KindFootnote, "x", nil, "mdlines: footnote element: id is required"},
	{KindTaskItem, "x", []Attr{Level(0)}, "mdlines: task-item element: checked is required"},
	{KindTaskItem, "x", []Attr{Level(-1), Checked(true)}, "mdlines: task-item element: level must not be negative, not -1"},
	{KindTaskItem, "x", []Attr{Level(0), Checked(true), Marker("1.")}, `mdlines: task-item element: marker "1." is not a bullet`},
	{KindListItem, "x", []Attr{Marker("-")}, "mdlines: list-item element: level is required"},
	{KindListItem, "x", []Attr{Level(0)}, "mdlines: list-item element: marker is required"},
	{KindListItem, "x", []Attr{Level(0), Marker("a.")}, `mdlines: list-item element: marker "a." is not a list marker`},
	{KindCode, "x", []Attr{URL("u")}, "mdlines: code element: url is not allowed"},
	{KindTable, "x", nil, "mdlines: table element: content must be TableContent, not string"},
	{KindTable, (*TableContent)(nil), nil, "mdlines: table element: content is nil"},
	{KindTable, TableContent{}, []Attr{Level(1)}, "mdlines: table element: level is not allowed"},
}

func TestNewError(t *testing.T) {
	for _, tt := range newErrorTests {
		e, err := New(tt.kind, tt.content, tt.attrs...)
		assert.Nil(t, e, "New(%q, %#v)", tt.kind, tt.content)
		require.Error(t, err)
		assert.EqualError(t, err, tt.err)

		var ee *ElementError
		if assert.True(t, errors.As(err, &ee)) {
			assert.Equal(t, tt.kind, ee.Kind)
		}
	}
}

func TestFieldsOf(t *testing.T) {
	for _, tt := range newTests {
		f := FieldsOf(tt.want)
		assert.Equal(t, tt.kind, f.Type)
		e, err := f.Element()
		require.NoError(t, err)
		assert.Equal(t, tt.want, e)
	}
}

func TestFieldsOfNew(t *testing.T) {
	for _, tt := range newTests {
		e, err := New(tt.kind, tt.content, tt.attrs...)
		require.NoError(t, err)
		back, err := FieldsOf(e).Element()
		require.NoError(t, err)
		assert.Equal(t, e, back, "FieldsOf(%#v).Element()", e)
	}

	// A literal task item with no bullet reads back with the default one.
	e, err := FieldsOf(TaskItem{Text: "x"}).Element()
	require.NoError(t, err)
	assert.Equal(t, TaskItem{Marker: "-", Text: "x"}, e)
	assert.Equal(t, FormatElement(TaskItem{Text: "x"}), FormatElement(e))
}

func TestFieldsOfAbsentAttrs(t *testing.T) {
	f := FieldsOf(Paragraph{"x"})
	assert.Nil(t, f.Level)
	assert.Nil(t, f.Marker)
	assert.Nil(t, f.Checked)
	assert.Nil(t, f.Lang)
	assert.Nil(t, f.URL)
	assert.Nil(t, f.Title)
	assert.Nil(t, f.ID)

	f = FieldsOf(CodeBlock{Text: "x"})
	assert.Nil(t, f.Lang, "empty language is absent")

	f = FieldsOf(Image{Alt: "a", URL: "u"})
	require.NotNil(t, f.URL)
	assert.Equal(t, "u", *f.URL)
	assert.Nil(t, f.Title, "empty title is absent")
}

func TestFieldsJSON(t *testing.T) {
	list := []Element{
		Heading{1, "Title"},
		ListStart{},
		TaskItem{Level: 0, Marker: "-", Checked: false, Text: "todo"},
		ListEnd{},
		CodeBlock{Lang: "go", Text: "x := 1"},
		Table{Header: []string{"a", "b"}, Align: []string{"---", "--:"}, Rows: [][]string{{"1"}}},
	}

	var fields []Fields
	for _, e := range list {
		fields = append(fields, FieldsOf(e))
	}
	data, err := json.Marshal(fields)
	require.NoError(t, err)

	const want = `[` +
		`{"type":"heading","content":"Title","level":1},` +
		`{"type":"list-start","content":""},` +
		`{"type":"task-item","content":"todo","level":0,"marker":"-","checked":false},` +
		`{"type":"list-end","content":""},` +
		`{"type":"code","content":"x := 1","lang":"go"},` +
		`{"type":"table","content":{"headers":["a","b"],"aligns":["---","--:"],"rows":[["1"]]}}` +
		`]`
	assert.JSONEq(t, want, string(data))

	var back []Fields
	require.NoError(t, json.Unmarshal(data, &back))
	require.Len(t, back, len(list))
	for i, f := range back {
		e, err := f.Element()
		require.NoError(t, err)
		assert.Equal(t, list[i], e)
	}
}

func TestFieldsJSONBadContent(t *testing.T) {
	var f Fields
	err := json.Unmarshal([]byte(`{"type":"paragraph","content":["x"]}`), &f)
	assert.Error(t, err)

	err = json.Unmarshal([]byte(`{"type":"table","content":"x"}`), &f)
	assert.Error(t, err)

	require.NoError(t, json.Unmarshal([]byte(`{"type":"break"}`), &f))
	e, err := f.Element()
	require.NoError(t, err)
	assert.Equal(t, Break{}, e)
}
