// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package testdoc

import "github.com/pdiddy/elementary-assertions/pkg/types"

// SampleText is the canonical text of Sample.
const SampleText = "The customer must buy a cart.\nThe shop's cart is plain.\nEvery price exceeds 5 today.\n"

// Sample returns a three-segment document exercising every render feature:
// a requirement, a low-quality copula definition, a comparison with
// operators, a possessive, wiki evidence, a suppressed assertion, and
// uncovered primary mentions of both the strict and the contained kind.
//
// Tokens:
//
//	s1:  t1 The, t2 customer, t3 must, t4 buy, t5 a, t6 cart, t7 .
//	s2:  t8 The, t9 shop, t10 's, t11 cart, t12 is, t13 plain, t14 .
//	s10: t15 Every, t16 price, t17 exceeds, t18 5, t19 today, t20 .
func Sample() *types.Document {
	b := New(SampleText).
		Segment("s1", "The/DT", "customer/NN", "must/MD", "buy/VB", "a/DT", "cart/NN", "./.").
		Segment("s2", "The/DT", "shop/NN", "'s/POS", "cart/NN", "is/VBZ", "plain/JJ", "./.").
		Segment("s10", "Every/DT", "price/NN", "exceeds/VBZ", "5/CD", "today/NN", "./.").
		Mention("m1", true, "t1", "t2").
		Mention("m2", false, "t4").
		Mention("m3", true, "t5", "t6").
		Mention("m4", true, "t8", "t9", "t10", "t11").
		Mention("m5", true, "t9").
		Mention("m6", false, "t12").
		Mention("m7", true, "t13").
		Mention("m8", true, "t6").
		Mention("m9", true, "t15", "t16").
		Mention("m10", false, "t17").
		Mention("m11", true, "t18").
		Mention("m12", false, "t3").
		Mention("m13", true, "t19")

	b.Assertion(types.Assertion{
		ID:        "a1",
		Predicate: types.Predicate{MentionID: "m2"},
		Arguments: []types.RoleEntry{Role("theme", "m3"), Role("actor", "m1")},
		Modifiers: []types.RoleEntry{Role("modality", "m12")},
		Evidence: types.AssertionEvidence{
			TokenIDs: []string{"t1", "t2", "t3", "t4", "t5", "t6"},
			RelationEvidence: []types.RelationEvidence{
				{RelationID: "r1", Label: "nsubj", FromTokenID: "t4", ToTokenID: "t2"},
				{RelationID: "r2", Label: "obj", FromTokenID: "t4", ToTokenID: "t6"},
				{RelationID: "r3", Label: "aux", FromTokenID: "t4", ToTokenID: "t3"},
			},
		},
	})
	b.Assertion(types.Assertion{
		ID:          "a2",
		Predicate:   types.Predicate{MentionID: "m6"},
		Arguments:   []types.RoleEntry{Role("theme", "m4"), Role("attr", "m7")},
		Diagnostics: types.AssertionDiagnostics{PredicateQuality: types.QualityLow},
		Evidence: types.AssertionEvidence{
			TokenIDs: []string{"t8", "t9", "t10", "t11", "t12", "t13"},
			RelationEvidence: []types.RelationEvidence{
				{RelationID: "r4", Label: "nsubj", FromTokenID: "t12", ToTokenID: "t11"},
				{RelationID: "r5", Label: "acomp", FromTokenID: "t12", ToTokenID: "t13"},
			},
		},
	})
	b.Assertion(types.Assertion{
		ID:        "a3",
		Predicate: types.Predicate{MentionID: "m10"},
		Arguments: []types.RoleEntry{Role("actor", "m9"), Role("theme", "m11")},
		Operators: []types.Operator{
			{Kind: "compare_gt", TokenID: "t18"},
			{Kind: types.OperatorQuantifier, Value: "every", TokenID: "t15"},
		},
		Evidence: types.AssertionEvidence{
			TokenIDs: []string{"t15", "t16", "t17", "t18"},
			RelationEvidence: []types.RelationEvidence{
				{RelationID: "r6", Label: "nsubj", FromTokenID: "t17", ToTokenID: "t16"},
				{RelationID: "r7", Label: "obj", FromTokenID: "t17", ToTokenID: "t18"},
			},
		},
	})

	b.Unresolved("m5", "possessive_owner", "r4").
		Unresolved("m8", "head_of_covered_chunk").
		Unresolved("m13", "no_governing_predicate", "r8", "r9")

	b.Suppressed(types.SuppressedAssertion{
		ID:                "a9",
		SegmentID:         "s2",
		Predicate:         types.Predicate{MentionID: "m6", HeadTokenID: "t12"},
		Kind:              "predicate_redirect",
		Reason:            "copula_absorbed",
		TargetAssertionID: "a2",
		Evidence: types.SuppressionEvidence{
			UpstreamRelationIDs: []string{"r4", "r5"},
			TokenIDs:            []string{"t12"},
		},
	})

	b.WikiMention("m3", []string{"Cart"}, []string{"Cartography"}).
		WikiMention("m5", nil, []string{"Shopping"}).
		WikiPredicate("a3", nil, []string{"Exceedance"})

	return b.Build()
}
