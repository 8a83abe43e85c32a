// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DocumentSummary holds the per-document counts the summary index stores
// and exports. Aggregate scoring over these counts happens elsewhere.
type DocumentSummary struct {
	// Digest is the blake3 digest of the document bytes; it identifies the
	// indexed document.
	Digest        string `json:"digest" yaml:"digest"`
	DocID         string `json:"doc_id" yaml:"doc_id"`
	Path          string `json:"path" yaml:"path"`
	SchemaVersion string `json:"schema_version" yaml:"schema_version"`

	Tokens     int `json:"tokens" yaml:"tokens"`
	Segments   int `json:"segments" yaml:"segments"`
	Mentions   int `json:"mentions" yaml:"mentions"`
	Assertions int `json:"assertions" yaml:"assertions"`

	PrimaryMentions    int `json:"primary_mentions" yaml:"primary_mentions"`
	CoveredMentions    int `json:"covered_mentions" yaml:"covered_mentions"`
	UncoveredMentions  int `json:"uncovered_mentions" yaml:"uncovered_mentions"`
	StrictlyUncovered  int `json:"strictly_uncovered" yaml:"strictly_uncovered"`
	ContainedUncovered int `json:"contained_uncovered" yaml:"contained_uncovered"`

	Unresolved int `json:"unresolved" yaml:"unresolved"`
	Suppressed int `json:"suppressed" yaml:"suppressed"`
	Warnings   int `json:"warnings" yaml:"warnings"`
	// WikiMatches counts mention and predicate title-match records.
	WikiMatches int `json:"wiki_matches" yaml:"wiki_matches"`

	// RunID identifies the index run that stored this summary.
	RunID     string `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	IndexedAt string `json:"indexed_at,omitempty" yaml:"indexed_at,omitempty"`
}
