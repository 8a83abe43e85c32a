// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package roles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/elementary-assertions/pkg/types"
)

func entry(role string, mids ...string) types.RoleEntry {
	return types.RoleEntry{Role: role, MentionIDs: mids}
}

func rolesOf(entries []types.RoleEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Role
	}
	return out
}

func TestDefaultPriority(t *testing.T) {
	assert.Less(t, DefaultPriority("actor"), DefaultPriority("theme"))
	assert.Less(t, DefaultPriority("theme"), DefaultPriority("attr"))
	assert.Less(t, DefaultPriority("attr"), DefaultPriority("topic"))
	assert.Less(t, DefaultPriority("topic"), DefaultPriority("location"))
	assert.Less(t, DefaultPriority("location"), DefaultPriority("modality"))
	assert.Equal(t, DefaultPriority("modality"), DefaultPriority("time"))
}

func TestCanonicalizeOrdering(t *testing.T) {
	in := []types.RoleEntry{
		entry("time", "m9"),
		entry("theme", "m3"),
		entry("modality", "m2"),
		entry("actor", "m1"),
		entry("location", "m5"),
	}
	got := Canonicalize(in, DefaultPriority)
	assert.Equal(t, []string{"actor", "theme", "location", "modality", "time"}, rolesOf(got))
}

func TestCanonicalizeIsPermutationInvariant(t *testing.T) {
	base := []types.RoleEntry{
		{Role: "actor", MentionIDs: []string{"m2", "m1"}, Evidence: types.RoleEvidence{RelationIDs: []string{"r2", "r1"}}},
		entry("theme", "m3"),
		entry("theme", "m4"),
		entry("modality", "m7"),
		entry("negation", "m7"),
		{Role: "actor", MentionIDs: []string{"m1", "m2", "m1"}, Evidence: types.RoleEvidence{TokenIDs: []string{"t1"}}},
	}
	want := Canonicalize(base, DefaultPriority)

	perms := [][]int{
		{5, 4, 3, 2, 1, 0},
		{2, 0, 5, 1, 4, 3},
		{3, 1, 4, 0, 2, 5},
	}
	for _, p := range perms {
		shuffled := make([]types.RoleEntry, len(p))
		for i, j := range p {
			shuffled[i] = base[j]
		}
		assert.Equal(t, want, Canonicalize(shuffled, DefaultPriority))
	}

	require.Len(t, want, 5)
	assert.Equal(t, types.RoleEntry{
		Role:       "actor",
		MentionIDs: []string{"m1", "m2"},
		Evidence:   types.RoleEvidence{RelationIDs: []string{"r1", "r2"}, TokenIDs: []string{"t1"}},
	}, want[0])
	assert.Equal(t, []string{"actor", "theme", "theme", "modality", "negation"}, rolesOf(want))
	assert.Equal(t, []string{"m3"}, want[1].MentionIDs)
	assert.Equal(t, []string{"m4"}, want[2].MentionIDs)
}

func TestCanonicalizeDropsEmptyAndKeepsInput(t *testing.T) {
	in := []types.RoleEntry{
		entry("theme", "m2", "m1"),
		entry("topic"),
		entry("attr", ""),
	}
	got := Canonicalize(in, nil)
	require.Len(t, got, 1)
	assert.Equal(t, []string{"m1", "m2"}, got[0].MentionIDs)
	assert.NotNil(t, got[0].Evidence.RelationIDs)
	assert.NotNil(t, got[0].Evidence.TokenIDs)
	assert.Equal(t, []string{"m2", "m1"}, in[0].MentionIDs)
}

func TestCanonicalizeCustomPriority(t *testing.T) {
	reverse := func(role string) int { return -DefaultPriority(role) }
	got := Canonicalize([]types.RoleEntry{entry("actor", "m1"), entry("theme", "m2")}, reverse)
	assert.Equal(t, []string{"theme", "actor"}, rolesOf(got))
}

func TestCanonicalRolesMergesArgumentsAndModifiers(t *testing.T) {
	a := types.Assertion{
		Arguments: []types.RoleEntry{entry("theme", "m3")},
		Modifiers: []types.RoleEntry{entry("actor", "m1")},
	}
	assert.Equal(t, []string{"actor", "theme"}, rolesOf(CanonicalRoles(a, DefaultPriority)))
}

func TestSortedUnique(t *testing.T) {
	assert.Equal(t, []string{}, SortedUnique(nil))
	assert.Equal(t, []string{"a", "b"}, SortedUnique([]string{"b", "", "a", "b"}))
}

func TestToSlots(t *testing.T) {
	a := types.Assertion{
		Arguments: []types.RoleEntry{
			entry("agent", "m2"),
			entry("actor", "m1"),
			entry("patient", "m3"),
			entry("attribute", "m4"),
		},
		Modifiers: []types.RoleEntry{
			entry("loc", "m5"),
			entry("time", "m7", "m6"),
			entry("modality", "m8"),
			entry("time", "m6"),
		},
	}
	s := ToSlots(a)
	assert.Equal(t, []string{"m1", "m2"}, s.Actor)
	assert.Equal(t, []string{"m3"}, s.Theme)
	assert.Equal(t, []string{"m4"}, s.Attr)
	assert.Equal(t, []string{}, s.Topic)
	assert.Equal(t, []string{"m5"}, s.Location)
	assert.Equal(t, []OtherSlot{
		{Role: "modality", MentionIDs: []string{"m8"}},
		{Role: "time", MentionIDs: []string{"m6", "m7"}},
	}, s.Other)
	assert.False(t, s.IsEmpty())
}

func TestToSlotsEmpty(t *testing.T) {
	s := ToSlots(types.Assertion{})
	assert.True(t, s.IsEmpty())
	assert.NotNil(t, s.Actor)
	assert.NotNil(t, s.Other)
}

func TestSlotName(t *testing.T) {
	tests := map[string]string{
		"actor":    "actor",
		"agent":    "actor",
		"patient":  "theme",
		"loc":      "location",
		"modality": "",
	}
	for role, want := range tests {
		assert.Equal(t, want, SlotName(role), role)
	}
}
