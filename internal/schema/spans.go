// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package schema

import (
	"fmt"
	"unicode/utf16"

	"github.com/pdiddy/elementary-assertions/pkg/types"
)

// CheckSpans verifies that every segment, token, and mention span is a
// well-formed range inside canonical_text, measured in UTF-16 code units.
func CheckSpans(doc *types.Document) error {
	n := len(utf16.Encode([]rune(doc.CanonicalText)))
	for i, s := range doc.Segments {
		if err := checkSpan(fmt.Sprintf("segments[%d].span", i), s.Span, n); err != nil {
			return err
		}
	}
	for i, t := range doc.Tokens {
		if err := checkSpan(fmt.Sprintf("tokens[%d].span", i), t.Span, n); err != nil {
			return err
		}
	}
	for i, m := range doc.Mentions {
		if err := checkSpan(fmt.Sprintf("mentions[%d].span", i), m.Span, n); err != nil {
			return err
		}
	}
	return nil
}

func checkSpan(field string, s types.Span, textLen int) error {
	if s.Start < 0 || s.End < s.Start || s.End > textLen {
		return &ShapeError{
			Field:   field,
			Problem: fmt.Sprintf("span [%d,%d) outside canonical_text of %d code units", s.Start, s.End, textLen),
		}
	}
	return nil
}
