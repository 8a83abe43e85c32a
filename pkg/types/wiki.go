// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// WikiNormalization describes how surfaces were normalised before title lookup.
type WikiNormalization struct {
	UnicodeForm string `json:"unicode_form,omitempty" yaml:"unicode_form,omitempty"`
	CaseFold    bool   `json:"case_fold" yaml:"case_fold"`
	Punctuation string `json:"punctuation,omitempty" yaml:"punctuation,omitempty"`
}

// WikiMentionMatch holds title-index matches for one mention.
type WikiMentionMatch struct {
	MentionID         string   `json:"mention_id" yaml:"mention_id"`
	NormalizedSurface string   `json:"normalized_surface,omitempty" yaml:"normalized_surface,omitempty"`
	ExactTitles       []string `json:"exact_titles" yaml:"exact_titles"`
	PrefixTitles      []string `json:"prefix_titles" yaml:"prefix_titles"`
}

// WikiPredicateMatch holds title-index matches for an assertion predicate.
type WikiPredicateMatch struct {
	AssertionID        string   `json:"assertion_id" yaml:"assertion_id"`
	PredicateMentionID string   `json:"predicate_mention_id" yaml:"predicate_mention_id"`
	ExactTitles        []string `json:"exact_titles" yaml:"exact_titles"`
	PrefixTitles       []string `json:"prefix_titles" yaml:"prefix_titles"`
}

// WikiTitleEvidence is the document's wiki title-index evidence.
type WikiTitleEvidence struct {
	Normalization             WikiNormalization    `json:"normalization" yaml:"normalization"`
	MentionMatches            []WikiMentionMatch   `json:"mention_matches" yaml:"mention_matches"`
	AssertionPredicateMatches []WikiPredicateMatch `json:"assertion_predicate_matches" yaml:"assertion_predicate_matches"`
}

// IsEmpty reports whether the document carries no wiki matches at all.
func (w WikiTitleEvidence) IsEmpty() bool {
	return len(w.MentionMatches) == 0 && len(w.AssertionPredicateMatches) == 0
}
