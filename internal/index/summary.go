// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package index

import (
	"github.com/pdiddy/elementary-assertions/internal/coverage"
	"github.com/pdiddy/elementary-assertions/internal/document"
	"github.com/pdiddy/elementary-assertions/internal/render"
	"github.com/pdiddy/elementary-assertions/internal/validate"
	"github.com/pdiddy/elementary-assertions/pkg/types"
)

// Summarize counts a validated document. ix must come from validate.Check
// on src.Doc.
func Summarize(src *document.Source, ix *validate.Index) types.DocumentSummary {
	doc := src.Doc
	cov := doc.Coverage
	delta := coverage.Split(cov.UncoveredPrimaryMentionIDs, coverage.UsedMentions(doc.Assertions), ix.Mentions, cov.Unresolved)

	return types.DocumentSummary{
		Digest:        src.Digest,
		DocID:         doc.DocID,
		Path:          src.Path,
		SchemaVersion: doc.SchemaVersion,

		Tokens:     len(doc.Tokens),
		Segments:   len(doc.Segments),
		Mentions:   len(doc.Mentions),
		Assertions: len(doc.Assertions),

		PrimaryMentions:    len(cov.PrimaryMentionIDs),
		CoveredMentions:    len(cov.CoveredPrimaryMentionIDs),
		UncoveredMentions:  len(cov.UncoveredPrimaryMentionIDs),
		StrictlyUncovered:  len(delta.Strict),
		ContainedUncovered: len(delta.Contained),

		Unresolved:  len(cov.Unresolved),
		Suppressed:  len(doc.Diagnostics.SuppressedAssertions),
		Warnings:    len(render.Warnings(doc)),
		WikiMatches: len(doc.WikiTitleEvidence.MentionMatches) + len(doc.WikiTitleEvidence.AssertionPredicateMatches),
	}
}
