// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render projects a validated elementary assertion document into a
// text report. Rendering is a pure function of the document and the
// options: it performs no I/O and the same input always yields the same
// bytes. Every collection whose order carries no meaning is sorted on an
// explicit key before it reaches the output.
package render

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf16"

	"golang.org/x/text/cases"

	"github.com/pdiddy/elementary-assertions/internal/roles"
	"github.com/pdiddy/elementary-assertions/internal/validate"
	"github.com/pdiddy/elementary-assertions/pkg/types"
)

// Title heads every rendered report.
const Title = "Elementary Assertions"

// Render validates doc and renders it. An integrity failure is returned
// before any text is produced.
func Render(doc *types.Document, opts Options) (string, error) {
	ix, err := validate.Check(doc)
	if err != nil {
		return "", err
	}
	return RenderIndexed(doc, ix, opts)
}

// RenderIndexed renders a document that has already passed validate.Check;
// ix must be the index Check returned for doc.
func RenderIndexed(doc *types.Document, ix *validate.Index, opts Options) (string, error) {
	opts, err := opts.normalized()
	if err != nil {
		return "", fmt.Errorf("render: %w", err)
	}
	v := newView(doc, ix, opts)
	w := newWriter(opts.Format)

	w.title(Title)
	if opts.DebugIDs && doc.DocID != "" {
		w.line("doc_id=" + doc.DocID)
	}
	if opts.Segments {
		v.writeSegments(w)
	}
	if opts.Mentions {
		v.writeMentions(w)
	}
	v.writeAssertions(w)
	if opts.Coverage {
		v.writeCoverage(w)
	}
	return w.String(), nil
}

// view is the per-call read-only projection the layouts draw from.
type view struct {
	doc  *types.Document
	ix   *validate.Index
	opts Options

	text16        []uint16
	lower         cases.Caser
	// tokenWiki is the strongest mention-level title match over every
	// mention covering a token.
	tokenWiki     map[string]wikiLevel
	predicateWiki map[string]wikiLevel
	assertions    []*types.Assertion
}

func newView(doc *types.Document, ix *validate.Index, opts Options) *view {
	v := &view{
		doc:           doc,
		ix:            ix,
		opts:          opts,
		text16:        utf16.Encode([]rune(doc.CanonicalText)),
		lower:         newLowerCaser(),
		tokenWiki:     make(map[string]wikiLevel),
		predicateWiki: make(map[string]wikiLevel),
	}
	for _, mm := range doc.WikiTitleEvidence.MentionMatches {
		l := levelOf(mm.ExactTitles, mm.PrefixTitles)
		m := ix.Mention(mm.MentionID)
		if l == wikiNone || m == nil {
			continue
		}
		for _, tid := range m.TokenIDs {
			if l > v.tokenWiki[tid] {
				v.tokenWiki[tid] = l
			}
		}
	}
	for _, p := range doc.WikiTitleEvidence.AssertionPredicateMatches {
		if l := levelOf(p.ExactTitles, p.PrefixTitles); l > v.predicateWiki[p.AssertionID] {
			v.predicateWiki[p.AssertionID] = l
		}
	}

	v.assertions = make([]*types.Assertion, len(doc.Assertions))
	for i := range doc.Assertions {
		v.assertions[i] = &doc.Assertions[i]
	}
	sort.SliceStable(v.assertions, func(i, j int) bool {
		return naturalLess(v.assertions[i].SegmentID, v.assertions[j].SegmentID)
	})
	return v
}

// hasWiki reports whether any wiki evidence touches the assertion's
// predicate or the tokens of its predicate and role mentions.
func (v *view) hasWiki(a *types.Assertion) bool {
	if v.predicateWiki[a.ID] != wikiNone || v.mentionHasWiki(a.Predicate.MentionID) {
		return true
	}
	for _, e := range a.Roles() {
		for _, mid := range e.MentionIDs {
			if v.mentionHasWiki(mid) {
				return true
			}
		}
	}
	return false
}

func (v *view) mentionHasWiki(id string) bool {
	m := v.ix.Mention(id)
	if m == nil {
		return false
	}
	for _, tid := range m.TokenIDs {
		if v.tokenWiki[tid] != wikiNone {
			return true
		}
	}
	return false
}

// roleText renders the mentions of one canonical role entry.
func (v *view) roleText(e types.RoleEntry) string {
	parts := make([]string, len(e.MentionIDs))
	for i, mid := range e.MentionIDs {
		parts[i] = v.mentionSurface(mid)
	}
	return strings.Join(parts, ", ")
}

// canonicalRoles returns the assertion's roles in canonical order.
func (v *view) canonicalRoles(a *types.Assertion) []types.RoleEntry {
	return roles.CanonicalRoles(*a, roles.DefaultPriority)
}

// operators formats an assertion's operators in canonical order.
func (v *view) operators(a *types.Assertion) []string {
	ops := append([]types.Operator(nil), a.Operators...)
	sort.SliceStable(ops, func(i, j int) bool {
		oi, oj := ops[i], ops[j]
		if oi.Kind != oj.Kind {
			return oi.Kind < oj.Kind
		}
		if oi.TokenID != oj.TokenID {
			return naturalLess(oi.TokenID, oj.TokenID)
		}
		if oi.GroupID != oj.GroupID {
			return oi.GroupID < oj.GroupID
		}
		return oi.Value < oj.Value
	})
	out := make([]string, len(ops))
	for i, op := range ops {
		out[i] = formatOperator(op)
	}
	return out
}

// formatOperator renders an operator as kind(args).
func formatOperator(op types.Operator) string {
	kind := string(op.Kind)
	switch {
	case strings.HasPrefix(kind, string(types.OperatorComparePrefix)):
		arg := op.TokenID
		if arg == "" {
			arg = op.Value
		}
		return kind + "(" + arg + ")"
	case op.Kind == types.OperatorQuantifier:
		return kind + "(" + op.Value + "|" + op.TokenID + ")"
	case op.Kind == types.OperatorCoordinationGroup:
		return kind + "(" + op.GroupID + ":" + op.Value + ")"
	}
	var args []string
	for _, s := range []string{op.GroupID, op.Value, op.TokenID} {
		if s != "" {
			args = append(args, s)
		}
	}
	return kind + "(" + strings.Join(args, "|") + ")"
}

// assertionDebug is the debug suffix shared by the assertion layouts.
func (v *view) assertionDebug(a *types.Assertion) string {
	var mids []string
	for _, e := range a.Roles() {
		mids = append(mids, e.MentionIDs...)
	}
	mids = roles.SortedUnique(mids)
	relIDs := make([]string, 0, len(a.Evidence.RelationEvidence))
	for _, r := range a.Evidence.RelationEvidence {
		relIDs = append(relIDs, r.RelationID)
	}
	relIDs = roles.SortedUnique(relIDs)
	tokIDs := roles.SortedUnique(a.Evidence.TokenIDs)

	parts := []string{
		"id=" + a.ID,
		"segment_id=" + a.SegmentID,
		"predicate_mention_id=" + a.Predicate.MentionID,
		"mention_ids=" + idList(mids),
	}
	return strings.Join(append(parts, v.evidenceCounters(relIDs, tokIDs)...), " ")
}

// evidenceCounters renders relation and token evidence as counts, or as
// full lists in the meaning layout.
func (v *view) evidenceCounters(relationIDs, tokenIDs []string) []string {
	if v.opts.fullDebugLists() {
		return []string{
			"upstream_relation_ids=" + idList(relationIDs),
			"token_ids=" + idList(tokenIDs),
			fmt.Sprintf("token_ids_len=%d", len(tokenIDs)),
		}
	}
	return []string{
		fmt.Sprintf("upstream_relation_ids_len=%d", len(relationIDs)),
		fmt.Sprintf("token_ids_len=%d", len(tokenIDs)),
	}
}

func (v *view) writeAssertions(w *writer) {
	w.section("Assertions")
	if len(v.assertions) == 0 {
		w.item("(none)")
		return
	}
	switch v.opts.Layout {
	case types.LayoutReadable:
		v.writeReadable(w)
	case types.LayoutTable:
		v.writeTable(w)
	case types.LayoutMeaning:
		v.writeMeaning(w)
	default:
		v.writeCompact(w)
	}
}
