// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"

	"github.com/pdiddy/elementary-assertions/pkg/types"
)

// Warnings lists informational findings about a document. They never stop
// rendering; callers decide whether to log them.
func Warnings(doc *types.Document) []string {
	var out []string
	if doc.WikiTitleEvidence.IsEmpty() {
		out = append(out, "no wiki title evidence; wiki markup will be absent")
	}
	if n := len(doc.Diagnostics.SuppressedAssertions); n > 0 {
		out = append(out, fmt.Sprintf("%d suppressed assertion(s) not rendered as assertions", n))
	}
	if n := len(doc.Coverage.UncoveredPrimaryMentionIDs); n > 0 {
		out = append(out, fmt.Sprintf("%d uncovered primary mention(s)", n))
	}
	for _, w := range doc.Diagnostics.Warnings {
		out = append(out, "upstream: "+w)
	}
	return out
}
