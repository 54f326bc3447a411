// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdlines

import "regexp"

// An inlineRule rewrites one inline construct between its
// Markdown spelling and its tagged-span spelling.
type inlineRule struct {
	name   string
	md     *regexp.Regexp // Markdown pattern
	tagged string         // replacement producing tags
	tag    *regexp.Regexp // tagged pattern
	markup string         // replacement producing Markdown
}

// inlineRules is applied in order by ParseInline.
// ** must come before *.
var inlineRules = []inlineRule{
	{
		name:   "code",
		md:     regexp.MustCompile("`([^`]+)`"),
		tagged: "<code>$1</code>",
		tag:    regexp.MustCompile(`(?s)<code>(.+?)</code>`),
		markup: "`$1`",
	},
	{
		name:   "strong",
		md:     regexp.MustCompile(`\*\*([^*]+)\*\*`),
		tagged: "<strong>$1</strong>",
		tag:    regexp.MustCompile(`(?s)<strong>(.+?)</strong>`),
		markup: "**$1**",
	},
	{
		name:   "emph",
		md:     regexp.MustCompile(`\*([^*]+)\*`),
		tagged: "<em>$1</em>",
		tag:    regexp.MustCompile(`(?s)<em>(.+?)</em>`),
		markup: "*$1*",
	},
	{
		name:   "del",
		md:     regexp.MustCompile(`~~([^~]+)~~`),
		tagged: "<del>$1</del>",
		tag:    regexp.MustCompile(`(?s)<del>(.+?)</del>`),
		markup: "~~$1~~",
	},
	{
		name:   "link",
		md:     regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`),
		tagged: `<a href="$2">$1</a>`,
		tag:    regexp.MustCompile(`(?s)<a href="(.+?)">(.+?)</a>`),
		markup: "[$2]($1)",
	},
}

// ParseInline rewrites the inline Markdown in s as tagged spans:
// code spans as <code>, strong emphasis (**) as <strong>,
// emphasis (*) as <em>, strikethrough (~~) as <del>,
// and links as <a href="...">. Other text is unchanged.
//
// [FormatInline] undoes ParseInline for text using these constructs
// without nesting one inside another of the same kind.
// Emphasis nested in strong emphasis, such as "**a *b* c**", does not round-trip.
func ParseInline(s string) string {
	for _, r := range inlineRules {
		s = r.md.ReplaceAllString(s, r.tagged)
	}
	return s
}

// FormatInline rewrites the tagged spans produced by [ParseInline]
// back into inline Markdown.
//
// Span text may hold anything, including other tags ("<code>Vec<T></code>")
// and quotes in link targets. The rules are applied in reverse order,
// and the pass repeats until the text stops changing,
// so every span written by ParseInline is restored.
// Text that contained these tags literally before ParseInline
// (a code span holding "<em>", say) cannot be told apart from
// real spans and is rewritten too.
func FormatInline(s string) string {
	for {
		t := s
		for i := len(inlineRules) - 1; i >= 0; i-- {
			r := inlineRules[i]
			t = r.tag.ReplaceAllString(t, r.markup)
		}
		if t == s {
			return s
		}
		s = t
	}
}
