// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the elementary assertion document model shared by every
// stage: loading, shape checking, integrity validation, canonicalization,
// rendering, and indexing.
package types

// Span is a half-open character range over the canonical text, measured in
// UTF-16 code units.
type Span struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// Len returns the number of code units covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// TokenRange is a half-open range of token sequence indexes.
type TokenRange struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// POS holds the part-of-speech annotation of a token.
type POS struct {
	Tag string `json:"tag" yaml:"tag"`
}

// Token is the atomic unit of the canonical text. Tokens are produced
// upstream and never modified.
type Token struct {
	// ID is the stable token identifier (e.g. "t12").
	ID string `json:"id" yaml:"id"`

	// I is the 0-based sequence index of the token in the document.
	I int `json:"i" yaml:"i"`

	// SegmentID names the segment the token belongs to.
	SegmentID string `json:"segment_id" yaml:"segment_id"`

	// Span locates the token in the canonical text.
	Span Span `json:"span" yaml:"span"`

	// Surface is the literal token text.
	Surface string `json:"surface" yaml:"surface"`

	// POS is the part-of-speech tag.
	POS POS `json:"pos" yaml:"pos"`
}

// Segment is a contiguous paragraph- or sentence-like span of the canonical text.
type Segment struct {
	ID         string     `json:"id" yaml:"id"`
	Span       Span       `json:"span" yaml:"span"`
	TokenRange TokenRange `json:"token_range" yaml:"token_range"`
}

// MentionKind distinguishes single-token mentions from multi-token chunks.
type MentionKind string

const (
	MentionToken MentionKind = "token"
	MentionChunk MentionKind = "chunk"
)

// Mention refers to one or more tokens standing for an entity or concept.
type Mention struct {
	// ID is the mention identifier (e.g. "m3").
	ID string `json:"id" yaml:"id"`

	// Kind is token or chunk.
	Kind MentionKind `json:"kind" yaml:"kind"`

	// TokenIDs lists the tokens of the mention. Unique and non-empty.
	TokenIDs []string `json:"token_ids" yaml:"token_ids"`

	// HeadTokenID must be one of TokenIDs.
	HeadTokenID string `json:"head_token_id" yaml:"head_token_id"`

	Span      Span   `json:"span" yaml:"span"`
	SegmentID string `json:"segment_id" yaml:"segment_id"`

	// IsPrimary marks the mention as a countable unit for coverage accounting.
	IsPrimary bool `json:"is_primary" yaml:"is_primary"`
}

// Predicate points at the mention and head token that realise an assertion's predicate.
type Predicate struct {
	MentionID   string `json:"mention_id" yaml:"mention_id"`
	HeadTokenID string `json:"head_token_id" yaml:"head_token_id"`
}

// RoleEvidence lists the upstream relations and tokens supporting a role entry.
type RoleEvidence struct {
	RelationIDs []string `json:"relation_ids" yaml:"relation_ids"`
	TokenIDs    []string `json:"token_ids" yaml:"token_ids"`
}

// RoleEntry binds a role name to an ordered set of mentions.
type RoleEntry struct {
	Role       string       `json:"role" yaml:"role"`
	MentionIDs []string     `json:"mention_ids" yaml:"mention_ids"`
	Evidence   RoleEvidence `json:"evidence" yaml:"evidence"`
}

// OperatorKind names an assertion operator. Comparison kinds share the
// "compare" prefix (compare_gt, compare_lt, ...).
type OperatorKind string

const (
	OperatorQuantifier        OperatorKind = "quantifier"
	OperatorCoordinationGroup OperatorKind = "coordination_group"
	OperatorComparePrefix     OperatorKind = "compare"
)

// Operator is a compare, quantifier, or coordination marker attached to an assertion.
type Operator struct {
	Kind    OperatorKind `json:"kind" yaml:"kind"`
	Value   string       `json:"value,omitempty" yaml:"value,omitempty"`
	TokenID string       `json:"token_id,omitempty" yaml:"token_id,omitempty"`
	GroupID string       `json:"group_id,omitempty" yaml:"group_id,omitempty"`
}

// RelationEvidence is one upstream dependency relation between two tokens.
type RelationEvidence struct {
	RelationID  string `json:"relation_id" yaml:"relation_id"`
	Label       string `json:"label" yaml:"label"`
	FromTokenID string `json:"from_token_id" yaml:"from_token_id"`
	ToTokenID   string `json:"to_token_id" yaml:"to_token_id"`
}

// AssertionEvidence lists the tokens and relations an assertion was built from.
type AssertionEvidence struct {
	TokenIDs         []string           `json:"token_ids" yaml:"token_ids"`
	RelationEvidence []RelationEvidence `json:"relation_evidence" yaml:"relation_evidence"`
}

// PredicateQuality grades how trustworthy the predicate choice is.
type PredicateQuality string

const (
	QualityOK  PredicateQuality = "ok"
	QualityLow PredicateQuality = "low"
)

// AssertionDiagnostics carries per-assertion quality signals.
type AssertionDiagnostics struct {
	PredicateQuality PredicateQuality `json:"predicate_quality" yaml:"predicate_quality"`
}

// Assertion is one elementary proposition: a predicate plus its roles.
type Assertion struct {
	ID          string               `json:"id" yaml:"id"`
	SegmentID   string               `json:"segment_id" yaml:"segment_id"`
	Predicate   Predicate            `json:"predicate" yaml:"predicate"`
	Arguments   []RoleEntry          `json:"arguments" yaml:"arguments"`
	Modifiers   []RoleEntry          `json:"modifiers" yaml:"modifiers"`
	Operators   []Operator           `json:"operators" yaml:"operators"`
	Evidence    AssertionEvidence    `json:"evidence" yaml:"evidence"`
	Diagnostics AssertionDiagnostics `json:"diagnostics" yaml:"diagnostics"`
}

// Roles returns the assertion's arguments followed by its modifiers.
func (a Assertion) Roles() []RoleEntry {
	out := make([]RoleEntry, 0, len(a.Arguments)+len(a.Modifiers))
	out = append(out, a.Arguments...)
	return append(out, a.Modifiers...)
}

// Document is the complete elementary assertion graph handed over by the
// upstream relation-extraction stage. Cross references are ids, never pointers.
type Document struct {
	DocID         string `json:"doc_id,omitempty" yaml:"doc_id,omitempty"`
	SchemaVersion string `json:"schema_version,omitempty" yaml:"schema_version,omitempty"`
	CanonicalText string `json:"canonical_text" yaml:"canonical_text"`

	Tokens     []Token     `json:"tokens" yaml:"tokens"`
	Segments   []Segment   `json:"segments" yaml:"segments"`
	Mentions   []Mention   `json:"mentions" yaml:"mentions"`
	Assertions []Assertion `json:"assertions" yaml:"assertions"`

	Coverage          Coverage          `json:"coverage" yaml:"coverage"`
	Diagnostics       Diagnostics       `json:"diagnostics" yaml:"diagnostics"`
	WikiTitleEvidence WikiTitleEvidence `json:"wiki_title_evidence" yaml:"wiki_title_evidence"`
}
