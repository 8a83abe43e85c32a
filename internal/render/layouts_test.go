// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/elementary-assertions/internal/testdoc"
	"github.com/pdiddy/elementary-assertions/pkg/types"
)

func TestTableSuppressesEmptyColumns(t *testing.T) {
	doc := testdoc.New("The shop is plain.\n").
		Segment("s1", "The/DT", "shop/NN", "is/VBZ", "plain/JJ", "./.").
		Mention("m1", true, "t1", "t2").
		Mention("m2", false, "t3").
		Mention("m3", true, "t4").
		Assertion(types.Assertion{
			ID:        "a1",
			Predicate: types.Predicate{MentionID: "m2"},
			Arguments: []types.RoleEntry{testdoc.Role("theme", "m1"), testdoc.Role("attr", "m3")},
		}).
		Build()

	opts := DefaultOptions()
	opts.Layout = types.LayoutTable
	out := mustRender(t, doc, opts)

	want := "Assertions:\n" +
		"segment | predicate | theme | attr\n" +
		"----------------------------------\n" +
		"s1 | is | (the) shop | plain\n"
	assert.Contains(t, out, want)
	assert.NotContains(t, out, "actor")
	assert.NotContains(t, out, "ops")
}

func TestTableSampleColumns(t *testing.T) {
	opts := DefaultOptions()
	opts.Layout = types.LayoutTable
	out := mustRender(t, testdoc.Sample(), opts)

	assert.Contains(t, out, "segment | actor | predicate | theme | attr | other | ops\n")
	assert.Contains(t, out, "s1 | (the) customer | buy | (a) ⟦cart|wiki:exact⟧ |  | modality: must |\n")
	assert.Contains(t, out, "s10 | Every price | ⟦exceeds|wiki:prefix⟧ | 5 |  |  | compare_gt(t18), quantifier(every|t15)\n")

	opts.DebugIDs = true
	debug := mustRender(t, testdoc.Sample(), opts)
	assert.Contains(t, debug, "id | segment | actor | predicate")
	assert.Contains(t, debug, "a2 | s2 |  | is [predicate_quality=low] | (the) ⟦shop|wiki:prefix⟧'s cart | plain")
}

func TestTableOrdersSegmentsNaturally(t *testing.T) {
	doc := testdoc.New("Prices rise.\nCosts fall.\n").
		Segment("s10", "Prices/NNS", "rise/VBP", "./.").
		Segment("s2", "Costs/NNS", "fall/VBP", "./.").
		Mention("m1", true, "t1").
		Mention("m2", false, "t2").
		Mention("m3", true, "t4").
		Mention("m4", false, "t5").
		Assertion(types.Assertion{
			ID:        "a1",
			Predicate: types.Predicate{MentionID: "m2"},
			Arguments: []types.RoleEntry{testdoc.Role("actor", "m1")},
		}).
		Assertion(types.Assertion{
			ID:        "a2",
			Predicate: types.Predicate{MentionID: "m4"},
			Arguments: []types.RoleEntry{testdoc.Role("actor", "m3")},
		}).
		Build()

	for _, layout := range allLayouts {
		opts := DefaultOptions()
		opts.Layout = layout
		opts.Segments = true
		out := mustRender(t, doc, opts)
		costs := strings.Index(out, "Costs fall.")
		prices := strings.Index(out, "Prices rise.")
		require.NotEqual(t, -1, costs, "layout %s", layout)
		require.NotEqual(t, -1, prices, "layout %s", layout)
		assert.Less(t, costs, prices, "layout %s segments", layout)

		assertions := out[strings.Index(out, "\nAssertions:"):]
		assert.Less(t, strings.Index(assertions, "Costs"), strings.Index(assertions, "Prices"), "layout %s assertions", layout)
	}

	opts := DefaultOptions()
	opts.Layout = types.LayoutTable
	out := mustRender(t, doc, opts)
	assert.Contains(t, out, "segment | actor | predicate\n")
	assert.Less(t, strings.Index(out, "s2 | Costs | fall"), strings.Index(out, "s10 | Prices | rise"))
}

func TestMarkdownTableEscapesPipes(t *testing.T) {
	opts := DefaultOptions()
	opts.Format = types.FormatMarkdown
	opts.Layout = types.LayoutTable
	out := mustRender(t, testdoc.Sample(), opts)

	assert.Contains(t, out, "| segment | actor | predicate | theme | attr | other | ops |\n| --- | --- | --- | --- | --- | --- | --- |\n")
	assert.Contains(t, out, `(a) ⟦cart\|wiki:exact⟧`)
	assert.NotContains(t, out, "⟦cart|wiki:exact⟧")
	assert.Contains(t, out, `quantifier(every\|t15)`)

	opts.Layout = types.LayoutCompact
	assert.Contains(t, mustRender(t, testdoc.Sample(), opts), "(a) ⟦cart|wiki:exact⟧")
}

func TestMeaningLayout(t *testing.T) {
	opts := DefaultOptions()
	opts.Layout = types.LayoutMeaning
	out := mustRender(t, testdoc.Sample(), opts)

	defs := strings.Index(out, "Definitions:")
	reqs := strings.Index(out, "Requirements:")
	comps := strings.Index(out, "Comparisons:")
	require.NotEqual(t, -1, defs)
	require.NotEqual(t, -1, reqs)
	require.NotEqual(t, -1, comps)
	assert.Less(t, defs, reqs)
	assert.Less(t, reqs, comps)
	assert.NotContains(t, out, "Actions:")
	assert.NotContains(t, out, "Other:")

	assert.Equal(t, 3, strings.Count(out, "Actor | Predicate | Theme | Attr | Location | wiki⁺\n"))
	assert.Contains(t, out, "(the) customer | buy | (a) ⟦cart|wiki:exact⟧ |  |  | wiki✓\n")
	assert.Contains(t, out, " | is [predicate_quality=low] | (the) ⟦shop|wiki:prefix⟧ 's cart | plain |  | wiki✓\n")
	assert.Contains(t, out, "Every price | ⟦exceeds|wiki:prefix⟧ | 5 |  |  | wiki✓\n")
}

func TestMeaningCategories(t *testing.T) {
	tests := []struct {
		name string
		tags []string
		ops  []types.Operator
		want Category
	}{
		{"action", []string{"Dogs/NNS", "run/VBP", "./."}, nil, CategoryActions},
		{"definition", []string{"Dogs/NNS", "are/VBP", "./."}, nil, CategoryDefinitions},
		{"comparison", []string{"Dogs/NNS", "outrun/VBP", "./."}, []types.Operator{{Kind: "compare_gt", TokenID: "t2"}}, CategoryComparisons},
		{"other", []string{"Dogs/NNS", "aloud/RB", "./."}, nil, CategoryOther},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			words := make([]string, len(tt.tags))
			for i, tag := range tt.tags {
				words[i] = tag[:strings.Index(tag, "/")]
			}
			doc := testdoc.New(strings.Join(words, " ")+"\n").
				Segment("s1", tt.tags...).
				Mention("m1", true, "t1").
				Mention("m2", false, "t2").
				Assertion(types.Assertion{
					ID:        "a1",
					Predicate: types.Predicate{MentionID: "m2"},
					Arguments: []types.RoleEntry{testdoc.Role("actor", "m1")},
					Operators: tt.ops,
				}).
				Build()

			opts := DefaultOptions()
			opts.Layout = types.LayoutMeaning
			out := mustRender(t, doc, opts)
			assert.Contains(t, out, string(tt.want)+":\n")
		})
	}
}

func TestCoverageSection(t *testing.T) {
	opts := DefaultOptions()
	opts.Coverage = true
	out := mustRender(t, testdoc.Sample(), opts)

	want := "Coverage:\n" +
		"- primary=9 covered=6 uncovered=3\n" +
		"\n" +
		"Uncovered Primary Mentions:\n" +
		"- ⟦shop|wiki:prefix⟧ reason=possessive_owner\n" +
		"- ⟦cart|wiki:exact⟧ reason=head_of_covered_chunk\n" +
		"- today reason=no_governing_predicate\n" +
		"\n" +
		"Unresolved:\n" +
		"- ⟦cart|wiki:exact⟧ kind=unresolved_attachment reason=head_of_covered_chunk\n" +
		"- ⟦shop|wiki:prefix⟧ kind=unresolved_attachment reason=possessive_owner\n" +
		"- today kind=unresolved_attachment reason=no_governing_predicate\n" +
		"\n" +
		"Suppressed Assertions:\n" +
		"- is reason=copula_absorbed\n"
	assert.True(t, strings.HasSuffix(out, want), out)
}

func TestUncoveredDeltaSample(t *testing.T) {
	opts := DefaultOptions()
	opts.Coverage = true
	opts.RenderUncoveredDelta = true
	out := mustRender(t, testdoc.Sample(), opts)

	want := "Strictly Uncovered Primary Mentions:\n" +
		"- today mention_id=m13 reason=no_governing_predicate\n" +
		"\n" +
		"Contained Uncovered Primary Mentions:\n" +
		"- ⟦shop|wiki:prefix⟧ mention_id=m5 contained_in=[m4] reason=possessive_owner\n" +
		"- ⟦cart|wiki:exact⟧ mention_id=m8 contained_in=[m3] reason=head_of_covered_chunk\n" +
		"\n" +
		"Uncovered Delta Summary:\n" +
		"- strictly_uncovered_count=1\n" +
		"- contained_uncovered_count=2\n"
	assert.Contains(t, out, want)
	assert.NotContains(t, out, "Uncovered Primary Mentions:\n- ⟦shop")
}

func TestUncoveredDeltaRequiresCoverage(t *testing.T) {
	opts := DefaultOptions()
	plain := mustRender(t, testdoc.Sample(), opts)

	opts.RenderUncoveredDelta = true
	out := mustRender(t, testdoc.Sample(), opts)
	assert.Equal(t, plain, out)
	assert.NotContains(t, out, "strictly_uncovered_count")

	opts.Coverage = true
	assert.Contains(t, mustRender(t, testdoc.Sample(), opts), "strictly_uncovered_count=1")
}

func TestUncoveredDeltaContainment(t *testing.T) {
	doc := testdoc.New("We buy big red carts.\n").
		Segment("s1", "We/PRP", "buy/VBP", "big/JJ", "red/JJ", "carts/NNS", "./.").
		Mention("mp", false, "t2").
		Mention("ma", true, "t3").
		Mention("mb", true, "t4").
		Mention("mc", true, "t3", "t4", "t5").
		Assertion(types.Assertion{
			ID:        "a1",
			Predicate: types.Predicate{MentionID: "mp"},
			Arguments: []types.RoleEntry{testdoc.Role("theme", "mc")},
		}).
		Build()
	require.Equal(t, []string{"ma", "mb"}, doc.Coverage.UncoveredPrimaryMentionIDs)

	opts := DefaultOptions()
	opts.Coverage = true
	opts.RenderUncoveredDelta = true
	out := mustRender(t, doc, opts)

	want := "- primary=3 covered=1 uncovered=2\n" +
		"\n" +
		"Strictly Uncovered Primary Mentions:\n" +
		"- (none)\n" +
		"\n" +
		"Contained Uncovered Primary Mentions:\n" +
		"- big mention_id=ma contained_in=[mc] reason=unspecified\n" +
		"- red mention_id=mb contained_in=[mc] reason=unspecified\n" +
		"\n" +
		"Uncovered Delta Summary:\n" +
		"- strictly_uncovered_count=0\n" +
		"- contained_uncovered_count=2\n"
	assert.True(t, strings.HasSuffix(out, want), out)
}

func TestMarkdownSections(t *testing.T) {
	opts := DefaultOptions()
	opts.Format = types.FormatMarkdown
	opts.Coverage = true
	opts.RenderUncoveredDelta = true
	out := mustRender(t, testdoc.Sample(), opts)

	assert.True(t, strings.HasPrefix(out, "# Elementary Assertions\n\n## Assertions\n\n- s1: buy"))
	assert.Contains(t, out, "## Coverage\n\n- primary=9")
	assert.Contains(t, out, "### Strictly Uncovered Primary Mentions\n\n- today")
	assert.True(t, strings.HasSuffix(out, "- contained_uncovered_count=2\n"))
}

func TestWarnings(t *testing.T) {
	warnings := Warnings(testdoc.Sample())
	assert.Equal(t, []string{
		"1 suppressed assertion(s) not rendered as assertions",
		"3 uncovered primary mention(s)",
	}, warnings)

	bare := testdoc.New("Dogs run.\n").
		Segment("s1", "Dogs/NNS", "run/VBP", "./.").
		Mention("m1", true, "t1").
		Mention("m2", false, "t2").
		Assertion(types.Assertion{
			ID:        "a1",
			Predicate: types.Predicate{MentionID: "m2"},
			Arguments: []types.RoleEntry{testdoc.Role("actor", "m1")},
		}).
		Build()
	bare.Diagnostics.Warnings = []string{"parser fallback"}
	assert.Equal(t, []string{
		"no wiki title evidence; wiki markup will be absent",
		"upstream: parser fallback",
	}, Warnings(bare))
}
