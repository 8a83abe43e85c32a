// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pdiddy/elementary-assertions/internal/coverage"
	"github.com/pdiddy/elementary-assertions/internal/roles"
	"github.com/pdiddy/elementary-assertions/pkg/types"
)

// writeSegments dumps each segment's text. SegmentText lines are never
// given wiki markup.
func (v *view) writeSegments(w *writer) {
	w.section("Segments")
	segs := make([]*types.Segment, len(v.doc.Segments))
	for i := range v.doc.Segments {
		segs[i] = &v.doc.Segments[i]
	}
	sort.SliceStable(segs, func(i, j int) bool { return naturalLess(segs[i].ID, segs[j].ID) })

	if v.opts.Layout == types.LayoutTable {
		header := []string{"segment", "text"}
		if v.opts.DebugIDs {
			header = append(header, "debug")
		}
		rows := make([][]string, 0, len(segs))
		for _, s := range segs {
			row := []string{s.ID, "SegmentText: " + v.segmentText(s.Span)}
			if v.opts.DebugIDs {
				row = append(row, segmentDebug(s))
			}
			rows = append(rows, row)
		}
		w.table(header, rows)
		return
	}

	for _, s := range segs {
		text := v.segmentText(s.Span)
		switch {
		case v.opts.Layout == types.LayoutCompact:
			line := s.ID + " SegmentText: " + text
			if v.opts.DebugIDs {
				line = s.ID + " " + segmentDebug(s) + " SegmentText: " + text
			}
			w.item(line)
		default:
			head := s.ID
			if v.opts.DebugIDs {
				head += " " + segmentDebug(s)
			}
			w.item(head)
			w.line("  SegmentText: " + text)
		}
	}
}

func segmentDebug(s *types.Segment) string {
	return fmt.Sprintf("span=[%d,%d) token_range=[%d,%d)", s.Span.Start, s.Span.End, s.TokenRange.Start, s.TokenRange.End)
}

// writeMentions lists mentions in text order.
func (v *view) writeMentions(w *writer) {
	w.section("Mentions")
	ms := make([]*types.Mention, len(v.doc.Mentions))
	for i := range v.doc.Mentions {
		ms[i] = &v.doc.Mentions[i]
	}
	sort.SliceStable(ms, func(i, j int) bool {
		a, b := ms[i], ms[j]
		if a.Span.Start != b.Span.Start {
			return a.Span.Start < b.Span.Start
		}
		if a.Span.End != b.Span.End {
			return a.Span.End > b.Span.End
		}
		return naturalLess(a.ID, b.ID)
	})

	if v.opts.Layout == types.LayoutTable {
		header := []string{"mention", "kind", "primary"}
		if v.opts.DebugIDs {
			header = append([]string{"id"}, append(header, "debug")...)
		}
		rows := make([][]string, 0, len(ms))
		for _, m := range ms {
			row := []string{v.surface(m, wikiNone), string(m.Kind), fmt.Sprintf("%t", m.IsPrimary)}
			if v.opts.DebugIDs {
				row = append([]string{m.ID}, append(row, mentionDebug(m))...)
			}
			rows = append(rows, row)
		}
		w.table(header, rows)
		return
	}

	for _, m := range ms {
		text := v.surface(m, wikiNone)
		var line string
		if v.opts.Layout == types.LayoutCompact {
			line = fmt.Sprintf("%s kind=%s primary=%t", text, m.Kind, m.IsPrimary)
		} else {
			flags := string(m.Kind)
			if m.IsPrimary {
				flags += ", primary"
			}
			line = text + " [" + flags + "]"
		}
		if v.opts.DebugIDs {
			line += " id=" + m.ID + " " + mentionDebug(m)
		}
		w.item(line)
	}
}

func mentionDebug(m *types.Mention) string {
	return "segment_id=" + m.SegmentID +
		" token_ids=" + idList(m.TokenIDs) +
		" head_token_id=" + m.HeadTokenID
}

// writeCoverage reports coverage counts, the uncovered primary mentions
// (split into strict and contained when asked), unresolved attachments,
// and suppressed assertions.
func (v *view) writeCoverage(w *writer) {
	cov := v.doc.Coverage
	w.section("Coverage")
	w.itemf("primary=%d covered=%d uncovered=%d",
		len(cov.PrimaryMentionIDs), len(cov.CoveredPrimaryMentionIDs), len(cov.UncoveredPrimaryMentionIDs))

	if v.opts.RenderUncoveredDelta {
		v.writeUncoveredDelta(w)
	} else {
		v.writeUncovered(w)
	}
	v.writeUnresolved(w)
	v.writeSuppressed(w)
}

func (v *view) writeUncovered(w *writer) {
	w.subsection("Uncovered Primary Mentions")
	reasons := make(map[string]string)
	for _, u := range v.doc.Coverage.Unresolved {
		if _, ok := reasons[u.MentionID]; !ok {
			reasons[u.MentionID] = u.Reason
		}
	}
	ids := roles.SortedUnique(v.doc.Coverage.UncoveredPrimaryMentionIDs)
	sort.SliceStable(ids, func(i, j int) bool { return naturalLess(ids[i], ids[j]) })
	if len(ids) == 0 {
		w.item("(none)")
		return
	}
	for _, id := range ids {
		reason := reasons[id]
		if reason == "" {
			reason = coverage.UnspecifiedReason
		}
		line := v.mentionSurface(id) + " reason=" + reason
		if v.opts.DebugIDs {
			line += " mention_id=" + id
		}
		w.item(line)
	}
}

// writeUncoveredDelta splits uncovered primary mentions by containment in
// mentions the assertions use, and closes with a count summary.
func (v *view) writeUncoveredDelta(w *writer) {
	delta := coverage.Split(
		v.doc.Coverage.UncoveredPrimaryMentionIDs,
		coverage.UsedMentions(v.doc.Assertions),
		v.ix.Mentions,
		v.doc.Coverage.Unresolved,
	)
	sortEntries(delta.Strict)
	sortEntries(delta.Contained)

	w.subsection("Strictly Uncovered Primary Mentions")
	if len(delta.Strict) == 0 {
		w.item("(none)")
	}
	for _, e := range delta.Strict {
		w.itemf("%s mention_id=%s reason=%s", v.mentionSurface(e.MentionID), e.MentionID, e.Reason)
	}

	w.subsection("Contained Uncovered Primary Mentions")
	if len(delta.Contained) == 0 {
		w.item("(none)")
	}
	for _, e := range delta.Contained {
		w.itemf("%s mention_id=%s contained_in=%s reason=%s",
			v.mentionSurface(e.MentionID), e.MentionID, idList(e.ContainedIn), e.Reason)
	}

	w.subsection("Uncovered Delta Summary")
	w.itemf("strictly_uncovered_count=%d", len(delta.Strict))
	w.itemf("contained_uncovered_count=%d", len(delta.Contained))
}

func sortEntries(entries []coverage.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return naturalLess(entries[i].MentionID, entries[j].MentionID)
	})
}

func (v *view) writeUnresolved(w *writer) {
	items := append([]types.Unresolved(nil), v.doc.Coverage.Unresolved...)
	if len(items) == 0 {
		return
	}
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.SegmentID != b.SegmentID {
			return naturalLess(a.SegmentID, b.SegmentID)
		}
		if a.MentionID != b.MentionID {
			return naturalLess(a.MentionID, b.MentionID)
		}
		return a.Reason < b.Reason
	})

	w.subsection("Unresolved")
	for _, u := range items {
		parts := []string{v.mentionSurface(u.MentionID), "kind=" + u.Kind, "reason=" + u.Reason}
		if v.opts.DebugIDs {
			mids := u.Evidence.MentionIDs
			if len(mids) == 0 && u.MentionID != "" {
				mids = []string{u.MentionID}
			}
			parts = append(parts, "segment_id="+u.SegmentID, "mention_ids="+idList(roles.SortedUnique(mids)))
			parts = append(parts, v.evidenceCounters(
				roles.SortedUnique(u.Evidence.UpstreamRelationIDs),
				roles.SortedUnique(u.Evidence.TokenIDs))...)
		}
		w.item(strings.Join(parts, " "))
	}
}

func (v *view) writeSuppressed(w *writer) {
	suppressed := v.doc.Diagnostics.SuppressedAssertions
	if len(suppressed) == 0 {
		return
	}
	w.subsection("Suppressed Assertions")
	for _, s := range suppressed {
		parts := []string{v.mentionSurface(s.Predicate.MentionID), "reason=" + s.Reason}
		if v.opts.DebugIDs {
			parts = append(parts,
				"id="+s.ID,
				"segment_id="+s.SegmentID,
				"mention_ids="+idList(roles.SortedUnique([]string{s.Predicate.MentionID})),
				"kind="+s.Kind,
				"target_assertion_id="+s.TargetAssertionID,
			)
			parts = append(parts, v.evidenceCounters(
				roles.SortedUnique(s.Evidence.UpstreamRelationIDs),
				roles.SortedUnique(s.Evidence.TokenIDs))...)
		}
		w.item(strings.Join(parts, " "))
	}
}
