// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package roles canonicalizes semantic-role assignments so that logically
// identical assertions serialize identically, whatever order the upstream
// producer emitted them in. It also projects roles back onto the legacy
// slot shape that older report scripts read.
package roles

import (
	"sort"

	"github.com/pdiddy/elementary-assertions/pkg/types"
)

// PriorityFunc ranks role names; lower values sort first.
type PriorityFunc func(role string) int

// coreRoles is the fixed leading order used by DefaultPriority.
var coreRoles = map[string]int{
	"actor":    0,
	"theme":    1,
	"attr":     2,
	"topic":    3,
	"location": 4,
}

// DefaultPriority orders the core roles first and every other role after
// them. Roles outside the core set share one rank and fall back to the
// mention-id and role-name tie-breakers.
func DefaultPriority(role string) int {
	if p, ok := coreRoles[role]; ok {
		return p
	}
	return len(coreRoles)
}

// Canonicalize returns a new, canonical role-entry sequence:
// entries with no mentions are dropped, mention ids and evidence ids are
// deduplicated and sorted, entries sharing a role and mention set are merged,
// and the result is ordered by priority, then mention ids, then role name.
// The input slice is not modified.
func Canonicalize(entries []types.RoleEntry, priority PriorityFunc) []types.RoleEntry {
	if priority == nil {
		priority = DefaultPriority
	}

	byKey := make(map[string]int)
	out := make([]types.RoleEntry, 0, len(entries))
	for _, e := range entries {
		mids := SortedUnique(e.MentionIDs)
		if len(mids) == 0 {
			continue
		}
		key := e.Role + "\x00" + joinKey(mids)
		if i, ok := byKey[key]; ok {
			out[i].Evidence = mergeEvidence(out[i].Evidence, e.Evidence)
			continue
		}
		byKey[key] = len(out)
		out = append(out, types.RoleEntry{
			Role:       e.Role,
			MentionIDs: mids,
			Evidence:   mergeEvidence(types.RoleEvidence{}, e.Evidence),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		pi, pj := priority(out[i].Role), priority(out[j].Role)
		if pi != pj {
			return pi < pj
		}
		if c := compareIDs(out[i].MentionIDs, out[j].MentionIDs); c != 0 {
			return c < 0
		}
		return out[i].Role < out[j].Role
	})
	return out
}

// CanonicalRoles canonicalizes an assertion's arguments and modifiers together.
func CanonicalRoles(a types.Assertion, priority PriorityFunc) []types.RoleEntry {
	return Canonicalize(a.Roles(), priority)
}

// SortedUnique returns a sorted copy of ids with duplicates and empty
// strings removed. It never returns nil.
func SortedUnique(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func mergeEvidence(a, b types.RoleEvidence) types.RoleEvidence {
	return types.RoleEvidence{
		RelationIDs: SortedUnique(append(append([]string{}, a.RelationIDs...), b.RelationIDs...)),
		TokenIDs:    SortedUnique(append(append([]string{}, a.TokenIDs...), b.TokenIDs...)),
	}
}

// compareIDs compares two sorted id sequences lexicographically.
func compareIDs(a, b []string) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

func joinKey(ids []string) string {
	n := 0
	for _, id := range ids {
		n += len(id) + 1
	}
	buf := make([]byte, 0, n)
	for _, id := range ids {
		buf = append(buf, id...)
		buf = append(buf, 0)
	}
	return string(buf)
}
