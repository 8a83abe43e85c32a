// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package coverage separates genuine coverage gaps from primary mentions that
// are already subsumed by a larger mention some assertion uses.
package coverage

import (
	"sort"

	"github.com/pdiddy/elementary-assertions/pkg/types"
)

// UnspecifiedReason is reported when an uncovered mention has no unresolved record.
const UnspecifiedReason = "unspecified"

// Entry is one uncovered primary mention after the split.
type Entry struct {
	MentionID string `json:"mention_id" yaml:"mention_id"`
	// ContainedIn lists the used mentions whose tokens include this one's.
	// Empty for strictly uncovered mentions.
	ContainedIn []string `json:"contained_in,omitempty" yaml:"contained_in,omitempty"`
	Reason      string   `json:"reason" yaml:"reason"`
}

// Delta is the strict/contained partition of uncovered primary mentions.
type Delta struct {
	Strict    []Entry `json:"strict" yaml:"strict"`
	Contained []Entry `json:"contained" yaml:"contained"`
}

// UsedMentions returns the set of mention ids any assertion uses as its
// predicate or in a role entry. Primary and non-primary mentions both count.
func UsedMentions(assertions []types.Assertion) map[string]bool {
	used := make(map[string]bool)
	for _, a := range assertions {
		if a.Predicate.MentionID != "" {
			used[a.Predicate.MentionID] = true
		}
		for _, e := range a.Roles() {
			for _, mid := range e.MentionIDs {
				used[mid] = true
			}
		}
	}
	return used
}

// Split classifies each uncovered primary mention as strictly uncovered or
// contained. Mention B contains A when B is used, B != A, and B's token set
// is a superset of A's. Entries are ordered by mention id, and ContainedIn is
// sorted and unique. Ids missing from mentions are treated as strict.
func Split(uncovered []string, used map[string]bool, mentions map[string]*types.Mention, unresolved []types.Unresolved) Delta {
	reasons := make(map[string]string, len(unresolved))
	for _, u := range unresolved {
		if _, ok := reasons[u.MentionID]; !ok && u.Reason != "" {
			reasons[u.MentionID] = u.Reason
		}
	}

	usedIDs := make([]string, 0, len(used))
	for id := range used {
		if mentions[id] != nil {
			usedIDs = append(usedIDs, id)
		}
	}
	sort.Strings(usedIDs)

	tokenSets := make(map[string]map[string]bool, len(usedIDs))
	for _, id := range usedIDs {
		tokenSets[id] = tokenSet(mentions[id])
	}

	ids := append([]string(nil), uncovered...)
	sort.Strings(ids)

	delta := Delta{Strict: []Entry{}, Contained: []Entry{}}
	var prev string
	for i, id := range ids {
		if i > 0 && id == prev {
			continue
		}
		prev = id

		reason := reasons[id]
		if reason == "" {
			reason = UnspecifiedReason
		}
		entry := Entry{MentionID: id, Reason: reason}

		if m := mentions[id]; m != nil {
			for _, bid := range usedIDs {
				if bid == id {
					continue
				}
				if isSuperset(tokenSets[bid], m.TokenIDs) {
					entry.ContainedIn = append(entry.ContainedIn, bid)
				}
			}
		}

		if len(entry.ContainedIn) > 0 {
			delta.Contained = append(delta.Contained, entry)
		} else {
			delta.Strict = append(delta.Strict, entry)
		}
	}
	return delta
}

func tokenSet(m *types.Mention) map[string]bool {
	set := make(map[string]bool, len(m.TokenIDs))
	for _, t := range m.TokenIDs {
		set[t] = true
	}
	return set
}

func isSuperset(set map[string]bool, ids []string) bool {
	if len(ids) == 0 {
		return false
	}
	for _, id := range ids {
		if !set[id] {
			return false
		}
	}
	return true
}
