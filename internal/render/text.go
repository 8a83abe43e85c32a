// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"sort"
	"strings"
	"unicode/utf16"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pdiddy/elementary-assertions/pkg/types"
)

// wikiLevel is the strongest title-match kind known for a span.
type wikiLevel int

const (
	wikiNone wikiLevel = iota
	wikiPrefix
	wikiExact
)

func (l wikiLevel) tag() string {
	switch l {
	case wikiExact:
		return "wiki:exact"
	case wikiPrefix:
		return "wiki:prefix"
	}
	return ""
}

func levelOf(exact, prefix []string) wikiLevel {
	switch {
	case len(exact) > 0:
		return wikiExact
	case len(prefix) > 0:
		return wikiPrefix
	}
	return wikiNone
}

// articles are the leading tokens determiner normalization parenthesizes.
var articles = map[string]bool{"a": true, "an": true, "the": true}

// newLowerCaser returns a fresh caser; casers keep state and are not shared.
func newLowerCaser() cases.Caser {
	return cases.Lower(language.English)
}

// isPossessive reports whether a token surface is a detached possessive marker.
func isPossessive(surface string) bool {
	return surface == "'s" || surface == "’s"
}

// orderedTokens returns a mention's tokens in sequence order.
func (v *view) orderedTokens(m *types.Mention) []*types.Token {
	toks := make([]*types.Token, 0, len(m.TokenIDs))
	for _, id := range m.TokenIDs {
		if t := v.ix.Token(id); t != nil {
			toks = append(toks, t)
		}
	}
	sort.SliceStable(toks, func(i, j int) bool { return toks[i].I < toks[j].I })
	return toks
}

// joinSurfaces joins token surfaces with single spaces, attaching detached
// possessive markers to the previous surface when join is set. Each run of
// consecutive tokens sharing a wiki level other than wikiNone is wrapped in
// one marker; floor raises every token to at least that level.
func (v *view) joinSurfaces(toks []*types.Token, join bool, floor wikiLevel) string {
	var sb strings.Builder
	cur := wikiNone
	for i, t := range toks {
		l := max(v.tokenWiki[t.ID], floor)
		if l != cur && cur != wikiNone {
			sb.WriteString("|" + cur.tag() + "⟧")
		}
		if i > 0 && !(join && isPossessive(t.Surface)) {
			sb.WriteByte(' ')
		}
		if l != cur && l != wikiNone {
			sb.WriteString("⟦")
		}
		sb.WriteString(t.Surface)
		cur = l
	}
	if cur != wikiNone {
		sb.WriteString("|" + cur.tag() + "⟧")
	}
	return sb.String()
}

// surface renders a mention's text with determiner normalization,
// possessive joining, and wiki markup applied as the options ask. Wiki
// markup comes from every mention covering each token; floor adds
// evidence that applies to this rendering only.
func (v *view) surface(m *types.Mention, floor wikiLevel) string {
	toks := v.orderedTokens(m)
	prefix := ""
	if v.opts.NormalizeDeterminers && len(toks) > 1 {
		if art := v.lower.String(toks[0].Surface); articles[art] {
			prefix = "(" + art + ") "
			toks = toks[1:]
		}
	}
	return prefix + v.joinSurfaces(toks, v.opts.joinPossessives(), floor)
}

// mentionSurface renders a mention by id.
func (v *view) mentionSurface(id string) string {
	if id == "" {
		return "(unknown)"
	}
	m := v.ix.Mention(id)
	if m == nil {
		return id
	}
	return v.surface(m, wikiNone)
}

// predicateSurface renders an assertion's predicate, adding its
// predicate-level wiki evidence to the token-level evidence, with the low-quality annotation where
// the layout shows it.
func (v *view) predicateSurface(a *types.Assertion) string {
	m := v.ix.Mention(a.Predicate.MentionID)
	if m == nil {
		return a.Predicate.MentionID
	}
	text := v.surface(m, v.predicateWiki[a.ID])
	if v.opts.annotateQuality() && a.Diagnostics.PredicateQuality == types.QualityLow {
		text += " [predicate_quality=low]"
	}
	return text
}

// segmentText slices the canonical text by a UTF-16 span. Outside compact
// layout, leading and trailing newline characters are trimmed.
func (v *view) segmentText(span types.Span) string {
	start, end := span.Start, span.End
	if start < 0 {
		start = 0
	}
	if end > len(v.text16) {
		end = len(v.text16)
	}
	if start >= end {
		return ""
	}
	text := string(utf16.Decode(v.text16[start:end]))
	if v.opts.trimSegments() {
		text = strings.Trim(text, "\r\n")
	}
	return text
}

// idList formats ids as [a,b,c].
func idList(ids []string) string {
	return "[" + strings.Join(ids, ",") + "]"
}
