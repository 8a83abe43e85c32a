// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package coverage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/elementary-assertions/internal/testdoc"
	"github.com/pdiddy/elementary-assertions/pkg/types"
)

func mentionMap(doc *types.Document) map[string]*types.Mention {
	out := make(map[string]*types.Mention, len(doc.Mentions))
	for i := range doc.Mentions {
		out[doc.Mentions[i].ID] = &doc.Mentions[i]
	}
	return out
}

func TestUsedMentions(t *testing.T) {
	used := UsedMentions(testdoc.Sample().Assertions)
	for _, id := range []string{"m1", "m2", "m3", "m4", "m6", "m7", "m9", "m10", "m11", "m12"} {
		assert.True(t, used[id], id)
	}
	for _, id := range []string{"m5", "m8", "m13"} {
		assert.False(t, used[id], id)
	}
}

func TestSplitSample(t *testing.T) {
	doc := testdoc.Sample()
	delta := Split(doc.Coverage.UncoveredPrimaryMentionIDs, UsedMentions(doc.Assertions), mentionMap(doc), doc.Coverage.Unresolved)

	assert.Equal(t, []Entry{
		{MentionID: "m13", Reason: "no_governing_predicate"},
	}, delta.Strict)
	assert.Equal(t, []Entry{
		{MentionID: "m5", ContainedIn: []string{"m4"}, Reason: "possessive_owner"},
		{MentionID: "m8", ContainedIn: []string{"m3"}, Reason: "head_of_covered_chunk"},
	}, delta.Contained)
}

func TestSplitContainment(t *testing.T) {
	mentions := map[string]*types.Mention{
		"a": {ID: "a", TokenIDs: []string{"t1"}},
		"b": {ID: "b", TokenIDs: []string{"t2"}},
		"c": {ID: "c", TokenIDs: []string{"t1", "t2", "t3"}},
		"d": {ID: "d", TokenIDs: []string{"t1", "t4"}},
		"e": {ID: "e", TokenIDs: []string{"t1", "t2"}},
	}
	tests := []struct {
		name          string
		uncovered     []string
		used          map[string]bool
		wantStrict    []string
		wantContained map[string][]string
	}{
		{
			name:          "covering chunk",
			uncovered:     []string{"b", "a"},
			used:          map[string]bool{"c": true},
			wantStrict:    []string{},
			wantContained: map[string][]string{"a": {"c"}, "b": {"c"}},
		},
		{
			name:          "partial overlap is strict",
			uncovered:     []string{"e"},
			used:          map[string]bool{"d": true},
			wantStrict:    []string{"e"},
			wantContained: map[string][]string{},
		},
		{
			name:          "self is not a container",
			uncovered:     []string{"c"},
			used:          map[string]bool{"c": true},
			wantStrict:    []string{"c"},
			wantContained: map[string][]string{},
		},
		{
			name:          "several containers",
			uncovered:     []string{"a"},
			used:          map[string]bool{"e": true, "d": true, "c": true, "b": true},
			wantStrict:    []string{},
			wantContained: map[string][]string{"a": {"c", "d", "e"}},
		},
		{
			name:          "unknown ids are strict",
			uncovered:     []string{"zz", "a", "a"},
			used:          map[string]bool{"ghost": true},
			wantStrict:    []string{"a", "zz"},
			wantContained: map[string][]string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			delta := Split(tt.uncovered, tt.used, mentions, nil)

			strict := []string{}
			for _, e := range delta.Strict {
				strict = append(strict, e.MentionID)
				assert.Empty(t, e.ContainedIn)
				assert.Equal(t, UnspecifiedReason, e.Reason)
			}
			assert.Equal(t, tt.wantStrict, strict)

			contained := map[string][]string{}
			for _, e := range delta.Contained {
				contained[e.MentionID] = e.ContainedIn
			}
			assert.Equal(t, tt.wantContained, contained)
		})
	}
}

func TestSplitFirstReasonWins(t *testing.T) {
	mentions := map[string]*types.Mention{"a": {ID: "a", TokenIDs: []string{"t1"}}}
	unresolved := []types.Unresolved{
		{MentionID: "a", Reason: ""},
		{MentionID: "a", Reason: "first"},
		{MentionID: "a", Reason: "second"},
	}
	delta := Split([]string{"a"}, nil, mentions, unresolved)
	assert.Equal(t, []Entry{{MentionID: "a", Reason: "first"}}, delta.Strict)
	assert.Equal(t, []Entry{}, delta.Contained)
}
