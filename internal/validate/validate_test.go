// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package validate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/elementary-assertions/internal/testdoc"
	"github.com/pdiddy/elementary-assertions/pkg/types"
)

func TestCheckValidDocument(t *testing.T) {
	doc := testdoc.Sample()
	ix, err := Check(doc)
	require.NoError(t, err)

	assert.Len(t, ix.Tokens, len(doc.Tokens))
	assert.Len(t, ix.Segments, 3)
	assert.Len(t, ix.Mentions, 13)
	assert.Len(t, ix.Assertions, 3)
	assert.Equal(t, "customer", ix.Token("t2").Surface)
	assert.Same(t, &doc.Mentions[0], ix.Mention("m1"))
	assert.Nil(t, ix.Mention("m99"))
}

func TestCheckViolations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*types.Document)
		rule   Rule
		id     string
		ref    string
	}{
		{
			name:   "duplicate mention id",
			mutate: func(d *types.Document) { d.Mentions[1].ID = "m1" },
			rule:   RuleDuplicateID,
			id:     "m1",
		},
		{
			name:   "duplicate assertion id",
			mutate: func(d *types.Document) { d.Assertions[2].ID = "a1" },
			rule:   RuleDuplicateID,
			id:     "a1",
		},
		{
			name:   "empty mention tokens",
			mutate: func(d *types.Document) { d.Mentions[2].TokenIDs = []string{} },
			rule:   RuleMentionTokenEmpty,
			id:     "m3",
		},
		{
			name:   "duplicate mention token",
			mutate: func(d *types.Document) { d.Mentions[0].TokenIDs = []string{"t1", "t2", "t1"} },
			rule:   RuleMentionTokenDuplicate,
			id:     "m1",
			ref:    "t1",
		},
		{
			name:   "unknown mention token",
			mutate: func(d *types.Document) { d.Mentions[3].TokenIDs = append(d.Mentions[3].TokenIDs, "t404") },
			rule:   RuleMentionTokenRef,
			id:     "m4",
			ref:    "t404",
		},
		{
			name:   "unknown head token",
			mutate: func(d *types.Document) { d.Mentions[1].HeadTokenID = "t404" },
			rule:   RuleHeadTokenRef,
			id:     "m2",
			ref:    "t404",
		},
		{
			name:   "head outside mention",
			mutate: func(d *types.Document) { d.Mentions[0].HeadTokenID = "t3" },
			rule:   RuleHeadTokenMember,
			id:     "m1",
			ref:    "t3",
		},
		{
			name:   "unknown predicate mention",
			mutate: func(d *types.Document) { d.Assertions[1].Predicate.MentionID = "m404" },
			rule:   RulePredicateMentionRef,
			id:     "a2",
			ref:    "m404",
		},
		{
			name:   "null arguments",
			mutate: func(d *types.Document) { d.Assertions[0].Arguments = nil },
			rule:   RuleRoleSequenceMissing,
			id:     "a1",
		},
		{
			name:   "null modifiers",
			mutate: func(d *types.Document) { d.Assertions[1].Modifiers = nil },
			rule:   RuleRoleSequenceMissing,
			id:     "a2",
		},
		{
			name:   "null operators",
			mutate: func(d *types.Document) { d.Assertions[2].Operators = nil },
			rule:   RuleRoleSequenceMissing,
			id:     "a3",
		},
		{
			name:   "unknown evidence token",
			mutate: func(d *types.Document) { d.Assertions[0].Evidence.TokenIDs = []string{"t404"} },
			rule:   RuleEvidenceTokenRef,
			id:     "a1",
			ref:    "t404",
		},
		{
			name:   "unknown relation endpoint",
			mutate: func(d *types.Document) { d.Assertions[2].Evidence.RelationEvidence[0].ToTokenID = "t404" },
			rule:   RuleEvidenceTokenRef,
			id:     "a3",
			ref:    "t404",
		},
		{
			name:   "unknown role mention",
			mutate: func(d *types.Document) { d.Assertions[0].Modifiers[0].MentionIDs = []string{"m404"} },
			rule:   RuleRoleMentionRef,
			id:     "a1",
			ref:    "m404",
		},
		{
			name: "suppressed out of order",
			mutate: func(d *types.Document) {
				d.Diagnostics.SuppressedAssertions = append(d.Diagnostics.SuppressedAssertions, types.SuppressedAssertion{ID: "a8"})
			},
			rule: RuleSuppressedOrder,
			id:   "a8",
			ref:  "a9",
		},
		{
			name:   "unknown suppression target",
			mutate: func(d *types.Document) { d.Diagnostics.SuppressedAssertions[0].TargetAssertionID = "a404" },
			rule:   RuleSuppressedTargetRef,
			id:     "a9",
			ref:    "a404",
		},
		{
			name:   "unknown suppressed predicate",
			mutate: func(d *types.Document) { d.Diagnostics.SuppressedAssertions[0].Predicate.MentionID = "m404" },
			rule:   RulePredicateMentionRef,
			id:     "a9",
			ref:    "m404",
		},
		{
			name:   "unknown uncovered mention",
			mutate: func(d *types.Document) { d.Coverage.UncoveredPrimaryMentionIDs = append(d.Coverage.UncoveredPrimaryMentionIDs, "m404") },
			rule:   RuleCoverageMentionRef,
			id:     "uncovered_primary_mention_ids",
			ref:    "m404",
		},
		{
			name:   "unknown unresolved mention",
			mutate: func(d *types.Document) { d.Coverage.Unresolved[0].MentionID = "m404" },
			rule:   RuleCoverageMentionRef,
			id:     "m404",
			ref:    "m404",
		},
		{
			name:   "unknown wiki mention",
			mutate: func(d *types.Document) { d.WikiTitleEvidence.MentionMatches[0].MentionID = "m404" },
			rule:   RuleWikiRef,
			id:     "m404",
			ref:    "m404",
		},
		{
			name:   "unknown wiki assertion",
			mutate: func(d *types.Document) { d.WikiTitleEvidence.AssertionPredicateMatches[0].AssertionID = "a404" },
			rule:   RuleWikiRef,
			id:     "a404",
			ref:    "a404",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := testdoc.Sample()
			tt.mutate(doc)

			ix, err := Check(doc)
			require.Error(t, err)
			assert.Nil(t, ix)
			assert.True(t, errors.Is(err, ErrIntegrity))

			var ie *IntegrityError
			require.True(t, errors.As(err, &ie))
			assert.Equal(t, tt.rule, ie.Rule)
			assert.Equal(t, tt.id, ie.ID)
			assert.Equal(t, tt.ref, ie.Ref)
		})
	}
}

func TestCheckAllowsEmptyOptionalReferences(t *testing.T) {
	doc := testdoc.Sample()
	doc.Diagnostics.SuppressedAssertions[0].TargetAssertionID = ""
	doc.Coverage.Unresolved[0].MentionID = ""
	_, err := Check(doc)
	assert.NoError(t, err)
}

func TestCheckDoesNotModify(t *testing.T) {
	doc := testdoc.Sample()
	want := testdoc.Sample()
	_, err := Check(doc)
	require.NoError(t, err)
	assert.Equal(t, want, doc)
}

func TestIntegrityErrorMessage(t *testing.T) {
	err := violation(RuleMentionTokenRef, "mention", "m1", "t9", "token_ids references an unknown token")
	assert.Equal(t, `integrity: mention "m1": token_ids references an unknown token (ref "t9") [mention-token-ref]`, err.Error())

	bare := violation(RuleRoleSequenceMissing, "assertion", "a1", "", "")
	assert.Equal(t, `integrity: assertion "a1" [role-sequence-missing]`, bare.Error())
}
