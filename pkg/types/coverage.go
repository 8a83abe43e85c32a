// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// UnresolvedEvidence lists what the upstream stage looked at before giving up
// on an attachment.
type UnresolvedEvidence struct {
	MentionIDs          []string `json:"mention_ids" yaml:"mention_ids"`
	TokenIDs            []string `json:"token_ids" yaml:"token_ids"`
	UpstreamRelationIDs []string `json:"upstream_relation_ids" yaml:"upstream_relation_ids"`
}

// Unresolved records an attachment failure for a mention.
type Unresolved struct {
	Kind      string             `json:"kind" yaml:"kind"`
	SegmentID string             `json:"segment_id" yaml:"segment_id"`
	MentionID string             `json:"mention_id" yaml:"mention_id"`
	Reason    string             `json:"reason" yaml:"reason"`
	Evidence  UnresolvedEvidence `json:"evidence" yaml:"evidence"`
}

// Coverage accounts for which primary mentions are referenced by at least
// one assertion.
type Coverage struct {
	PrimaryMentionIDs          []string     `json:"primary_mention_ids" yaml:"primary_mention_ids"`
	CoveredPrimaryMentionIDs   []string     `json:"covered_primary_mention_ids" yaml:"covered_primary_mention_ids"`
	UncoveredPrimaryMentionIDs []string     `json:"uncovered_primary_mention_ids" yaml:"uncovered_primary_mention_ids"`
	Unresolved                 []Unresolved `json:"unresolved" yaml:"unresolved"`
}

// SuppressionEvidence lists the upstream relations and tokens behind a suppression.
type SuppressionEvidence struct {
	UpstreamRelationIDs []string `json:"upstream_relation_ids" yaml:"upstream_relation_ids"`
	TokenIDs            []string `json:"token_ids" yaml:"token_ids"`
}

// SuppressedAssertion is an assertion dropped from the primary list.
type SuppressedAssertion struct {
	ID        string    `json:"id" yaml:"id"`
	SegmentID string    `json:"segment_id" yaml:"segment_id"`
	Predicate Predicate `json:"predicate" yaml:"predicate"`

	// Kind names the suppression mechanism (e.g. "predicate_redirect").
	Kind string `json:"kind" yaml:"kind"`

	// Reason is the human-readable suppression reason.
	Reason string `json:"reason" yaml:"reason"`

	// TargetAssertionID points at the assertion that absorbed this one, if any.
	TargetAssertionID string `json:"target_assertion_id,omitempty" yaml:"target_assertion_id,omitempty"`

	Evidence SuppressionEvidence `json:"evidence" yaml:"evidence"`
}

// Diagnostics holds document-level diagnostics from the upstream stage.
type Diagnostics struct {
	SuppressedAssertions []SuppressedAssertion `json:"suppressed_assertions" yaml:"suppressed_assertions"`
	Warnings             []string              `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}
