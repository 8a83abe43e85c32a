// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package validate checks the referential integrity of an elementary
// assertion document and builds the id lookup tables later stages traverse.
// Validation is a read-only pass: the document is never modified, and the
// first violation aborts the check.
package validate

import (
	"github.com/pdiddy/elementary-assertions/pkg/types"
)

// Index holds the arena-style lookup tables built from a validated document.
// The maps point into the document's own slices.
type Index struct {
	Tokens     map[string]*types.Token
	Segments   map[string]*types.Segment
	Mentions   map[string]*types.Mention
	Assertions map[string]*types.Assertion
}

// Token returns the token with the given id, or nil.
func (ix *Index) Token(id string) *types.Token { return ix.Tokens[id] }

// Mention returns the mention with the given id, or nil.
func (ix *Index) Mention(id string) *types.Mention { return ix.Mentions[id] }

// Check verifies every cross reference in doc and returns the lookup tables.
// Checks run in a fixed order so the same broken document always reports the
// same violation.
func Check(doc *types.Document) (*Index, error) {
	ix := &Index{
		Tokens:     make(map[string]*types.Token, len(doc.Tokens)),
		Segments:   make(map[string]*types.Segment, len(doc.Segments)),
		Mentions:   make(map[string]*types.Mention, len(doc.Mentions)),
		Assertions: make(map[string]*types.Assertion, len(doc.Assertions)),
	}
	for i := range doc.Tokens {
		ix.Tokens[doc.Tokens[i].ID] = &doc.Tokens[i]
	}
	for i := range doc.Segments {
		ix.Segments[doc.Segments[i].ID] = &doc.Segments[i]
	}

	steps := []func(*types.Document, *Index) error{
		checkUniqueIDs,
		checkMentionTokens,
		checkMentionHeads,
		checkPredicates,
		checkRoleSequences,
		checkEvidenceTokens,
		checkRoleMentions,
		checkSuppressed,
		checkCoverageRefs,
		checkWikiRefs,
	}
	for _, step := range steps {
		if err := step(doc, ix); err != nil {
			return nil, err
		}
	}
	return ix, nil
}

func checkUniqueIDs(doc *types.Document, ix *Index) error {
	for i := range doc.Mentions {
		m := &doc.Mentions[i]
		if _, dup := ix.Mentions[m.ID]; dup {
			return violation(RuleDuplicateID, "mention", m.ID, "", "duplicate mention id")
		}
		ix.Mentions[m.ID] = m
	}
	for i := range doc.Assertions {
		a := &doc.Assertions[i]
		if _, dup := ix.Assertions[a.ID]; dup {
			return violation(RuleDuplicateID, "assertion", a.ID, "", "duplicate assertion id")
		}
		ix.Assertions[a.ID] = a
	}
	seen := make(map[string]bool, len(doc.Diagnostics.SuppressedAssertions))
	for _, s := range doc.Diagnostics.SuppressedAssertions {
		if seen[s.ID] {
			return violation(RuleDuplicateID, "suppressed_assertion", s.ID, "", "duplicate suppressed assertion id")
		}
		seen[s.ID] = true
	}
	return nil
}

func checkMentionTokens(doc *types.Document, ix *Index) error {
	for _, m := range doc.Mentions {
		if len(m.TokenIDs) == 0 {
			return violation(RuleMentionTokenEmpty, "mention", m.ID, "", "token_ids is empty")
		}
		seen := make(map[string]bool, len(m.TokenIDs))
		for _, tid := range m.TokenIDs {
			if seen[tid] {
				return violation(RuleMentionTokenDuplicate, "mention", m.ID, tid, "token_ids lists a token twice")
			}
			seen[tid] = true
			if ix.Tokens[tid] == nil {
				return violation(RuleMentionTokenRef, "mention", m.ID, tid, "token_ids references an unknown token")
			}
		}
	}
	return nil
}

func checkMentionHeads(doc *types.Document, ix *Index) error {
	for _, m := range doc.Mentions {
		if ix.Tokens[m.HeadTokenID] == nil {
			return violation(RuleHeadTokenRef, "mention", m.ID, m.HeadTokenID, "head_token_id references an unknown token")
		}
		if !contains(m.TokenIDs, m.HeadTokenID) {
			return violation(RuleHeadTokenMember, "mention", m.ID, m.HeadTokenID, "head_token_id is not one of token_ids")
		}
	}
	return nil
}

func checkPredicates(doc *types.Document, ix *Index) error {
	for _, a := range doc.Assertions {
		if ix.Mentions[a.Predicate.MentionID] == nil {
			return violation(RulePredicateMentionRef, "assertion", a.ID, a.Predicate.MentionID, "predicate references an unknown mention")
		}
	}
	return nil
}

func checkRoleSequences(doc *types.Document, _ *Index) error {
	for _, a := range doc.Assertions {
		switch {
		case a.Arguments == nil:
			return violation(RuleRoleSequenceMissing, "assertion", a.ID, "", "arguments is null")
		case a.Modifiers == nil:
			return violation(RuleRoleSequenceMissing, "assertion", a.ID, "", "modifiers is null")
		case a.Operators == nil:
			return violation(RuleRoleSequenceMissing, "assertion", a.ID, "", "operators is null")
		}
	}
	return nil
}

func checkEvidenceTokens(doc *types.Document, ix *Index) error {
	for _, a := range doc.Assertions {
		for _, tid := range a.Evidence.TokenIDs {
			if ix.Tokens[tid] == nil {
				return violation(RuleEvidenceTokenRef, "assertion", a.ID, tid, "evidence.token_ids references an unknown token")
			}
		}
		for _, rel := range a.Evidence.RelationEvidence {
			if ix.Tokens[rel.FromTokenID] == nil {
				return violation(RuleEvidenceTokenRef, "assertion", a.ID, rel.FromTokenID, "relation_evidence "+rel.RelationID+" from_token_id is unknown")
			}
			if ix.Tokens[rel.ToTokenID] == nil {
				return violation(RuleEvidenceTokenRef, "assertion", a.ID, rel.ToTokenID, "relation_evidence "+rel.RelationID+" to_token_id is unknown")
			}
		}
	}
	return nil
}

func checkRoleMentions(doc *types.Document, ix *Index) error {
	for _, a := range doc.Assertions {
		for _, entry := range a.Roles() {
			for _, mid := range entry.MentionIDs {
				if ix.Mentions[mid] == nil {
					return violation(RuleRoleMentionRef, "assertion", a.ID, mid, "role "+entry.Role+" references an unknown mention")
				}
			}
		}
	}
	return nil
}

func checkSuppressed(doc *types.Document, ix *Index) error {
	suppressed := doc.Diagnostics.SuppressedAssertions
	for i, s := range suppressed {
		if i > 0 && suppressed[i-1].ID > s.ID {
			return violation(RuleSuppressedOrder, "suppressed_assertion", s.ID, suppressed[i-1].ID, "suppressed_assertions is not sorted by id")
		}
		if s.Predicate.MentionID != "" && ix.Mentions[s.Predicate.MentionID] == nil {
			return violation(RulePredicateMentionRef, "suppressed_assertion", s.ID, s.Predicate.MentionID, "predicate references an unknown mention")
		}
		if s.TargetAssertionID != "" && ix.Assertions[s.TargetAssertionID] == nil {
			return violation(RuleSuppressedTargetRef, "suppressed_assertion", s.ID, s.TargetAssertionID, "target_assertion_id references an unknown assertion")
		}
	}
	return nil
}

func checkCoverageRefs(doc *types.Document, ix *Index) error {
	cov := doc.Coverage
	lists := []struct {
		name string
		ids  []string
	}{
		{"primary_mention_ids", cov.PrimaryMentionIDs},
		{"covered_primary_mention_ids", cov.CoveredPrimaryMentionIDs},
		{"uncovered_primary_mention_ids", cov.UncoveredPrimaryMentionIDs},
	}
	for _, l := range lists {
		for _, mid := range l.ids {
			if ix.Mentions[mid] == nil {
				return violation(RuleCoverageMentionRef, "coverage", l.name, mid, "references an unknown mention")
			}
		}
	}
	for _, u := range cov.Unresolved {
		if u.MentionID != "" && ix.Mentions[u.MentionID] == nil {
			return violation(RuleCoverageMentionRef, "unresolved", u.MentionID, u.MentionID, "mention_id references an unknown mention")
		}
		for _, mid := range u.Evidence.MentionIDs {
			if ix.Mentions[mid] == nil {
				return violation(RuleCoverageMentionRef, "unresolved", u.MentionID, mid, "evidence.mention_ids references an unknown mention")
			}
		}
	}
	return nil
}

func checkWikiRefs(doc *types.Document, ix *Index) error {
	for _, m := range doc.WikiTitleEvidence.MentionMatches {
		if ix.Mentions[m.MentionID] == nil {
			return violation(RuleWikiRef, "wiki_mention_match", m.MentionID, m.MentionID, "mention_id references an unknown mention")
		}
	}
	for _, p := range doc.WikiTitleEvidence.AssertionPredicateMatches {
		if ix.Assertions[p.AssertionID] == nil {
			return violation(RuleWikiRef, "wiki_predicate_match", p.AssertionID, p.AssertionID, "assertion_id references an unknown assertion")
		}
		if p.PredicateMentionID != "" && ix.Mentions[p.PredicateMentionID] == nil {
			return violation(RuleWikiRef, "wiki_predicate_match", p.AssertionID, p.PredicateMentionID, "predicate_mention_id references an unknown mention")
		}
	}
	return nil
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
