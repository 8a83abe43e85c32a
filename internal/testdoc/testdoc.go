// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package testdoc builds small, valid elementary assertion documents for tests.
package testdoc

import (
	"fmt"
	"strings"
	"unicode/utf16"

	"github.com/pdiddy/elementary-assertions/pkg/types"
)

// Builder assembles a document whose token spans are located in the
// canonical text automatically.
type Builder struct {
	doc    types.Document
	cursor int // byte offset into the canonical text
	tokens map[string]*types.Token
	// explicitCoverage disables automatic coverage computation in Build.
	explicitCoverage bool
}

// New starts a document over text.
func New(text string) *Builder {
	return &Builder{
		doc: types.Document{
			DocID:         "doc-test",
			SchemaVersion: "1.0",
			CanonicalText: text,
			Tokens:        []types.Token{},
			Segments:      []types.Segment{},
			Mentions:      []types.Mention{},
			Assertions:    []types.Assertion{},
			Diagnostics:   types.Diagnostics{SuppressedAssertions: []types.SuppressedAssertion{}},
			WikiTitleEvidence: types.WikiTitleEvidence{
				Normalization:             types.WikiNormalization{UnicodeForm: "NFC", CaseFold: true},
				MentionMatches:            []types.WikiMentionMatch{},
				AssertionPredicateMatches: []types.WikiPredicateMatch{},
			},
		},
		tokens: map[string]*types.Token{},
	}
}

// Segment appends a segment made of the given tokens, written "surface/TAG".
// Tokens are found in order in the canonical text starting from the end of
// the previous segment; the segment span extends over trailing newlines.
// Token ids are assigned t1, t2, ... across the document.
func (b *Builder) Segment(id string, tokens ...string) *Builder {
	text := b.doc.CanonicalText
	seg := types.Segment{ID: id}
	seg.TokenRange.Start = len(b.doc.Tokens)
	first := true
	for _, spec := range tokens {
		surface, tag := splitSpec(spec)
		at := strings.Index(text[b.cursor:], surface)
		if at < 0 {
			panic(fmt.Sprintf("testdoc: token %q not found after offset %d", surface, b.cursor))
		}
		start := b.cursor + at
		end := start + len(surface)
		tok := types.Token{
			ID:        fmt.Sprintf("t%d", len(b.doc.Tokens)+1),
			I:         len(b.doc.Tokens),
			SegmentID: id,
			Span:      types.Span{Start: utf16Len(text[:start]), End: utf16Len(text[:end])},
			Surface:   surface,
			POS:       types.POS{Tag: tag},
		}
		if first {
			seg.Span.Start = tok.Span.Start
			first = false
		}
		b.doc.Tokens = append(b.doc.Tokens, tok)
		b.cursor = end
	}
	for b.cursor < len(text) && (text[b.cursor] == '\n' || text[b.cursor] == '\r') {
		b.cursor++
	}
	seg.Span.End = utf16Len(text[:b.cursor])
	seg.TokenRange.End = len(b.doc.Tokens)
	b.doc.Segments = append(b.doc.Segments, seg)
	return b
}

// Mention appends a mention over the given token ids. The last token is the head.
func (b *Builder) Mention(id string, primary bool, tokenIDs ...string) *Builder {
	kind := types.MentionToken
	if len(tokenIDs) > 1 {
		kind = types.MentionChunk
	}
	m := types.Mention{
		ID:          id,
		Kind:        kind,
		TokenIDs:    append([]string{}, tokenIDs...),
		HeadTokenID: tokenIDs[len(tokenIDs)-1],
		IsPrimary:   primary,
	}
	firstTok, lastTok := b.token(tokenIDs[0]), b.token(tokenIDs[len(tokenIDs)-1])
	if firstTok != nil && lastTok != nil {
		m.Span = types.Span{Start: firstTok.Span.Start, End: lastTok.Span.End}
		m.SegmentID = firstTok.SegmentID
	}
	b.doc.Mentions = append(b.doc.Mentions, m)
	return b
}

// Assertion appends an assertion. Nil role and operator sequences are
// replaced by empty ones; the predicate head token and segment are filled
// from the predicate mention when left blank.
func (b *Builder) Assertion(a types.Assertion) *Builder {
	if a.Arguments == nil {
		a.Arguments = []types.RoleEntry{}
	}
	if a.Modifiers == nil {
		a.Modifiers = []types.RoleEntry{}
	}
	if a.Operators == nil {
		a.Operators = []types.Operator{}
	}
	if a.Diagnostics.PredicateQuality == "" {
		a.Diagnostics.PredicateQuality = types.QualityOK
	}
	for _, m := range b.doc.Mentions {
		if m.ID != a.Predicate.MentionID {
			continue
		}
		if a.Predicate.HeadTokenID == "" {
			a.Predicate.HeadTokenID = m.HeadTokenID
		}
		if a.SegmentID == "" {
			a.SegmentID = m.SegmentID
		}
	}
	b.doc.Assertions = append(b.doc.Assertions, a)
	return b
}

// Unresolved appends an unresolved attachment record for a mention.
func (b *Builder) Unresolved(mentionID, reason string, relationIDs ...string) *Builder {
	u := types.Unresolved{
		Kind:      "unresolved_attachment",
		MentionID: mentionID,
		Reason:    reason,
		Evidence: types.UnresolvedEvidence{
			MentionIDs:          []string{mentionID},
			UpstreamRelationIDs: append([]string{}, relationIDs...),
		},
	}
	for _, m := range b.doc.Mentions {
		if m.ID == mentionID {
			u.SegmentID = m.SegmentID
			u.Evidence.TokenIDs = append([]string{}, m.TokenIDs...)
		}
	}
	b.doc.Coverage.Unresolved = append(b.doc.Coverage.Unresolved, u)
	return b
}

// Suppressed appends a suppressed-assertion record.
func (b *Builder) Suppressed(s types.SuppressedAssertion) *Builder {
	b.doc.Diagnostics.SuppressedAssertions = append(b.doc.Diagnostics.SuppressedAssertions, s)
	return b
}

// WikiMention records title matches for a mention.
func (b *Builder) WikiMention(mentionID string, exact, prefix []string) *Builder {
	b.doc.WikiTitleEvidence.MentionMatches = append(b.doc.WikiTitleEvidence.MentionMatches, types.WikiMentionMatch{
		MentionID:    mentionID,
		ExactTitles:  exact,
		PrefixTitles: prefix,
	})
	return b
}

// WikiPredicate records title matches for an assertion predicate.
func (b *Builder) WikiPredicate(assertionID string, exact, prefix []string) *Builder {
	p := types.WikiPredicateMatch{AssertionID: assertionID, ExactTitles: exact, PrefixTitles: prefix}
	for _, a := range b.doc.Assertions {
		if a.ID == assertionID {
			p.PredicateMentionID = a.Predicate.MentionID
		}
	}
	b.doc.WikiTitleEvidence.AssertionPredicateMatches = append(b.doc.WikiTitleEvidence.AssertionPredicateMatches, p)
	return b
}

// Coverage sets the coverage id lists explicitly instead of deriving them.
func (b *Builder) Coverage(primary, covered, uncovered []string) *Builder {
	b.doc.Coverage.PrimaryMentionIDs = primary
	b.doc.Coverage.CoveredPrimaryMentionIDs = covered
	b.doc.Coverage.UncoveredPrimaryMentionIDs = uncovered
	b.explicitCoverage = true
	return b
}

// Build returns the document. Unless Coverage was called, the coverage id
// lists are derived from primary mentions and the mentions assertions use.
func (b *Builder) Build() *types.Document {
	doc := b.doc
	if doc.Coverage.Unresolved == nil {
		doc.Coverage.Unresolved = []types.Unresolved{}
	}
	if !b.explicitCoverage {
		used := map[string]bool{}
		for _, a := range doc.Assertions {
			used[a.Predicate.MentionID] = true
			for _, e := range a.Roles() {
				for _, mid := range e.MentionIDs {
					used[mid] = true
				}
			}
		}
		doc.Coverage.PrimaryMentionIDs = []string{}
		doc.Coverage.CoveredPrimaryMentionIDs = []string{}
		doc.Coverage.UncoveredPrimaryMentionIDs = []string{}
		for _, m := range doc.Mentions {
			if !m.IsPrimary {
				continue
			}
			doc.Coverage.PrimaryMentionIDs = append(doc.Coverage.PrimaryMentionIDs, m.ID)
			if used[m.ID] {
				doc.Coverage.CoveredPrimaryMentionIDs = append(doc.Coverage.CoveredPrimaryMentionIDs, m.ID)
			} else {
				doc.Coverage.UncoveredPrimaryMentionIDs = append(doc.Coverage.UncoveredPrimaryMentionIDs, m.ID)
			}
		}
	}
	return &doc
}

// Role is shorthand for a role entry over the given mentions.
func Role(role string, mentionIDs ...string) types.RoleEntry {
	return types.RoleEntry{
		Role:       role,
		MentionIDs: mentionIDs,
		Evidence:   types.RoleEvidence{RelationIDs: []string{}, TokenIDs: []string{}},
	}
}

func (b *Builder) token(id string) *types.Token {
	for i := range b.doc.Tokens {
		if b.doc.Tokens[i].ID == id {
			return &b.doc.Tokens[i]
		}
	}
	return nil
}

func splitSpec(spec string) (surface, tag string) {
	if i := strings.LastIndex(spec, "/"); i > 0 {
		return spec[:i], spec[i+1:]
	}
	return spec, ""
}

func utf16Len(s string) int {
	return len(utf16.Encode([]rune(s)))
}
