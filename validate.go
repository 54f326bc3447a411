// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdlines

import (
	"fmt"
	"strings"
)

// A ValidationError describes one problem in an element sequence.
type ValidationError struct {
	Index int // index of the offending element in the sequence
	Msg   string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("element %d: %s", e.Index, e.Msg)
}

// ValidationErrors is the list of problems found by [Validate].
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	switch len(v) {
	case 0:
		return ""
	case 1:
		return "mdlines: invalid element sequence: " + v[0].Error()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "mdlines: invalid element sequence: %d problems:", len(v))
	for _, e := range v {
		b.WriteString("\n\t")
		b.WriteString(e.Error())
	}
	return b.String()
}

// Validate checks the list brackets of an element sequence,
// such as one rewritten by another tool before printing.
// Every run of [ListItem] and [TaskItem] elements must be enclosed
// by a [ListStart] and a [ListEnd], brackets must not nest,
// and brackets must hold nothing but items.
// Sequences returned by [Parser.Parse] are always valid.
//
// If there are problems, Validate returns a [ValidationErrors].
func Validate(list []Element) error {
	var errs ValidationErrors
	bad := func(i int, format string, args ...any) {
		errs = append(errs, ValidationError{i, fmt.Sprintf(format, args...)})
	}

	open := -1 // index of the open ListStart
	for i, e := range list {
		switch e.(type) {
		case nil:
			bad(i, "nil element")
		case ListStart:
			if open >= 0 {
				bad(i, "list-start inside list opened at element %d", open)
			}
			open = i
		case ListEnd:
			if open < 0 {
				bad(i, "list-end without list-start")
			}
			open = -1
		case ListItem, TaskItem:
			if open < 0 {
				bad(i, "%s outside list", e.Kind())
			}
		default:
			if open >= 0 {
				bad(i, "%s inside list opened at element %d", e.Kind(), open)
			}
		}
	}
	if open >= 0 {
		bad(open, "list-start without list-end")
	}

	if len(errs) > 0 {
		tracer().Debugf("mdlines: %v", errs)
		return errs
	}
	return nil
}
