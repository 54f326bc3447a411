// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdlines

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	ghtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/tools/txtar"
)

var (
	goldmarkFlag = flag.Bool("goldmark", false, "check that goldmark renders round trips identically")
	update       = flag.Bool("update", false, "update golden files")
)

// Test runs the cases in testdata/*.txt.
// Each case is a triple of files: name.md is the input,
// name.elems is the dump of the parsed elements,
// and name.out is the Markdown printed from those elements.
func Test(t *testing.T) {
	files, err := filepath.Glob("testdata/*.txt")
	if err != nil {
		t.Fatal(err)
	}
	for _, file := range files {
		t.Run(strings.TrimSuffix(filepath.Base(file), ".txt"), func(t *testing.T) {
			a, err := txtar.ParseFile(file)
			if err != nil {
				t.Fatal(err)
			}

			var p Parser
			if err := setParserOptions(&p, a.Comment); err != nil {
				t.Fatal(err)
			}
			if len(a.Files)%3 != 0 {
				t.Fatalf("%d files, want md/elems/out triples", len(a.Files))
			}

			for i := 0; i+3 <= len(a.Files); i += 3 {
				md, elems, out := &a.Files[i], &a.Files[i+1], &a.Files[i+2]
				name := strings.TrimSuffix(md.Name, ".md")
				if elems.Name != name+".elems" || out.Name != name+".out" {
					t.Fatalf("mismatched file triple: %s, %s, and %s", md.Name, elems.Name, out.Name)
				}

				t.Run(name, func(t *testing.T) {
					list := p.Parse(decode(string(md.Data)))
					d := dump(list)
					text := ToMarkdown(list)
					if *update {
						elems.Data = []byte(d)
						out.Data = []byte(encode(text))
						return
					}
					if d != string(elems.Data) {
						t.Errorf("input %q\nhave elements:\n%s\nwant:\n%s", md.Data, d, elems.Data)
					}
					if h := encode(text); h != string(out.Data) {
						t.Errorf("input %q\nhave output %q\nwant %q", md.Data, h, out.Data)
					}
					if again := dump(p.Parse(text)); again != d {
						t.Errorf("reparsing output %q\nhave elements:\n%s\nwant:\n%s", text, again, d)
					}
					if err := Validate(list); err != nil {
						t.Error(err)
					}
				})

				if !*goldmarkFlag {
					continue
				}
				t.Run("goldmark/"+name, func(t *testing.T) {
					in := decode(string(md.Data))
					text := ToMarkdown(p.Parse(in))
					want := goldmarkHTML(t, in)
					if have := goldmarkHTML(t, text); have != want {
						t.Errorf("input %q\noutput %q\nhave html %q\nwant %q", in, text, have, want)
					}
				})
			}

			if *update {
				if err := os.WriteFile(file, txtar.Format(a), 0o666); err != nil {
					t.Fatal(err)
				}
			}
		})
	}
}

func goldmarkHTML(t *testing.T, md string) string {
	gm := goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Footnote),
		goldmark.WithRendererOptions(ghtml.WithUnsafe()),
	)
	var buf bytes.Buffer
	if err := gm.Convert([]byte(md), &buf); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

// dump returns a line-per-element description of list,
// listing the attributes present in each element's [Fields].
func dump(list []Element) string {
	var b strings.Builder
	for _, e := range list {
		f := FieldsOf(e)
		b.WriteString(string(f.Type))
		if f.Level != nil {
			fmt.Fprintf(&b, " level=%d", *f.Level)
		}
		if f.Marker != nil {
			fmt.Fprintf(&b, " marker=%q", *f.Marker)
		}
		if f.Checked != nil {
			fmt.Fprintf(&b, " checked=%v", *f.Checked)
		}
		if f.Lang != nil {
			fmt.Fprintf(&b, " lang=%q", *f.Lang)
		}
		if f.URL != nil {
			fmt.Fprintf(&b, " url=%q", *f.URL)
		}
		if f.Title != nil {
			fmt.Fprintf(&b, " title=%q", *f.Title)
		}
		if f.ID != nil {
			fmt.Fprintf(&b, " id=%q", *f.ID)
		}
		switch c := f.Content.(type) {
		case TableContent:
			fmt.Fprintf(&b, " headers=%q aligns=%q rows=%q", c.Headers, c.Aligns, c.Rows)
		case string:
			if c != "" {
				fmt.Fprintf(&b, " %q", c)
			}
		}
		if c, ok := e.(CodeBlock); ok && c.Indented {
			b.WriteString(" indented")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func decode(s string) string {
	s = strings.ReplaceAll(s, "^J\n", "\n")
	s = strings.ReplaceAll(s, "^M", "\r")
	s = strings.ReplaceAll(s, "^D\n", "")
	return s
}

func encode(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "^M\n")
	s = strings.ReplaceAll(s, " \n", " ^J\n")
	s = strings.ReplaceAll(s, "\t\n", "\t^J\n")
	if s != "" && !strings.HasSuffix(s, "\n") {
		s += "^D\n"
	}
	return s
}

// setParserOptions extracts lines of the form
//
//	key: value
//
// from data and sets the corresponding options on the Parser.
func setParserOptions(p *Parser, data []byte) error {
	for _, line := range strings.Split(string(data), "\n") {
		if strings.HasPrefix(line, "//") {
			continue
		}
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		value = strings.TrimSpace(value)
		switch key {
		case "IndentedCode":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return err
			}
			p.IndentedCode = b
		default:
			return fmt.Errorf("unknown option: %q", key)
		}
	}
	return nil
}
