// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package validate

import (
	"errors"
	"fmt"
)

// ErrIntegrity is the sentinel every IntegrityError matches with errors.Is.
var ErrIntegrity = errors.New("integrity violation")

// Rule identifies the referential-integrity rule that was violated.
type Rule string

const (
	// RuleDuplicateID indicates an id appears twice within one collection.
	RuleDuplicateID Rule = "duplicate-id"
	// RuleMentionTokenDuplicate indicates a mention lists the same token twice.
	RuleMentionTokenDuplicate Rule = "mention-token-duplicate"
	// RuleMentionTokenEmpty indicates a mention has no tokens.
	RuleMentionTokenEmpty Rule = "mention-token-empty"
	// RuleMentionTokenRef indicates a mention token id does not resolve.
	RuleMentionTokenRef Rule = "mention-token-ref"
	// RuleHeadTokenRef indicates a mention head token id does not resolve.
	RuleHeadTokenRef Rule = "head-token-ref"
	// RuleHeadTokenMember indicates a head token is not one of the mention's tokens.
	RuleHeadTokenMember Rule = "head-token-member"
	// RulePredicateMentionRef indicates a predicate mention id does not resolve.
	RulePredicateMentionRef Rule = "predicate-mention-ref"
	// RuleRoleSequenceMissing indicates arguments, modifiers, or operators is null.
	RuleRoleSequenceMissing Rule = "role-sequence-missing"
	// RuleEvidenceTokenRef indicates an assertion evidence token id does not resolve.
	RuleEvidenceTokenRef Rule = "evidence-token-ref"
	// RuleRoleMentionRef indicates a role entry mention id does not resolve.
	RuleRoleMentionRef Rule = "role-mention-ref"
	// RuleSuppressedOrder indicates suppressed assertions are not sorted by id.
	RuleSuppressedOrder Rule = "suppressed-order"
	// RuleSuppressedTargetRef indicates a suppression target does not resolve.
	RuleSuppressedTargetRef Rule = "suppressed-target-ref"
	// RuleCoverageMentionRef indicates a coverage or unresolved mention id does not resolve.
	RuleCoverageMentionRef Rule = "coverage-mention-ref"
	// RuleWikiRef indicates a wiki evidence record points at an unknown mention or assertion.
	RuleWikiRef Rule = "wiki-ref"
)

// IntegrityError reports the entity that broke a referential-integrity rule.
type IntegrityError struct {
	Rule Rule
	// Entity is the collection the offending record lives in (mention, assertion, ...).
	Entity string
	// ID is the offending record's id.
	ID string
	// Ref is the unresolved or duplicated reference, when there is one.
	Ref    string
	Detail string
}

// Error returns a one-line description naming the entity and the rule.
func (e *IntegrityError) Error() string {
	msg := fmt.Sprintf("integrity: %s %q", e.Entity, e.ID)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Ref != "" {
		msg += fmt.Sprintf(" (ref %q)", e.Ref)
	}
	return msg + " [" + string(e.Rule) + "]"
}

// Is lets errors.Is(err, ErrIntegrity) match any IntegrityError.
func (e *IntegrityError) Is(target error) bool {
	return target == ErrIntegrity
}

func violation(rule Rule, entity, id, ref, detail string) *IntegrityError {
	return &IntegrityError{Rule: rule, Entity: entity, ID: id, Ref: ref, Detail: detail}
}
