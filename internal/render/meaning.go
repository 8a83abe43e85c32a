// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"strings"

	"github.com/pdiddy/elementary-assertions/internal/roles"
	"github.com/pdiddy/elementary-assertions/pkg/types"
)

// Category groups assertions in the meaning layout.
type Category string

const (
	CategoryDefinitions  Category = "Definitions"
	CategoryRequirements Category = "Requirements"
	CategoryComparisons  Category = "Comparisons"
	CategoryActions      Category = "Actions"
	CategoryOther        Category = "Other"
)

// categoryOrder is the order categories appear in.
var categoryOrder = []Category{
	CategoryDefinitions,
	CategoryRequirements,
	CategoryComparisons,
	CategoryActions,
	CategoryOther,
}

// meaningHeader is shared by every category's rows.
var meaningHeader = []string{"Actor", "Predicate", "Theme", "Attr", "Location", "wiki⁺"}

const wikiMarker = "wiki✓"

var requirementMarkers = map[string]bool{
	"must": true, "shall": true, "should": true,
	"require": true, "requires": true, "required": true,
	"need": true, "needs": true,
}

var copulas = map[string]bool{
	"be": true, "is": true, "are": true, "was": true, "were": true, "been": true, "being": true, "am": true,
	"means": true, "mean": true, "denotes": true, "refers": true, "defined": true,
}

// categorize assigns an assertion to a meaning category. Requirement
// markers win over copulas, copulas over comparison operators, and
// comparisons over plain verbal predicates.
func (v *view) categorize(a *types.Assertion) Category {
	for _, t := range v.assertionTokens(a) {
		if requirementMarkers[v.lower.String(t.Surface)] {
			return CategoryRequirements
		}
	}
	head := v.ix.Token(a.Predicate.HeadTokenID)
	if head == nil {
		if m := v.ix.Mention(a.Predicate.MentionID); m != nil {
			head = v.ix.Token(m.HeadTokenID)
		}
	}
	if head != nil && copulas[v.lower.String(head.Surface)] {
		return CategoryDefinitions
	}
	for _, op := range a.Operators {
		if strings.HasPrefix(string(op.Kind), string(types.OperatorComparePrefix)) {
			return CategoryComparisons
		}
	}
	if head != nil && strings.HasPrefix(head.POS.Tag, "VB") {
		return CategoryActions
	}
	return CategoryOther
}

// assertionTokens lists the tokens of the predicate, the role mentions, and
// the assertion evidence.
func (v *view) assertionTokens(a *types.Assertion) []*types.Token {
	ids := append([]string{}, a.Evidence.TokenIDs...)
	mids := []string{a.Predicate.MentionID}
	for _, e := range a.Roles() {
		mids = append(mids, e.MentionIDs...)
	}
	for _, mid := range mids {
		if m := v.ix.Mention(mid); m != nil {
			ids = append(ids, m.TokenIDs...)
		}
	}
	var toks []*types.Token
	for _, id := range roles.SortedUnique(ids) {
		if t := v.ix.Token(id); t != nil {
			toks = append(toks, t)
		}
	}
	return toks
}

// writeMeaning groups assertions by category under the shared row header.
func (v *view) writeMeaning(w *writer) {
	groups := make(map[Category][]*types.Assertion)
	for _, a := range v.assertions {
		c := v.categorize(a)
		groups[c] = append(groups[c], a)
	}

	header := meaningHeader
	if v.opts.DebugIDs {
		header = append(append([]string{}, meaningHeader...), "debug")
	}
	for _, c := range categoryOrder {
		group := groups[c]
		if len(group) == 0 {
			continue
		}
		w.subsection(string(c))
		rows := make([][]string, 0, len(group))
		for _, a := range group {
			s := roles.ToSlots(*a)
			row := []string{
				v.slotText(s.Actor),
				v.predicateSurface(a),
				v.slotText(s.Theme),
				v.slotText(s.Attr),
				v.slotText(s.Location),
				"",
			}
			if v.hasWiki(a) {
				row[5] = wikiMarker
			}
			if v.opts.DebugIDs {
				row = append(row, v.assertionDebug(a))
			}
			rows = append(rows, row)
		}
		w.table(header, rows)
	}
}
