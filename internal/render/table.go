// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"strings"

	"github.com/pdiddy/elementary-assertions/internal/roles"
)

// tableColumns is the fixed column order of the table layout.
var tableColumns = []string{"segment", "actor", "predicate", "theme", "attr", "topic", "location", "other", "ops"}

// alwaysShown columns stay in the table even when every cell is empty.
var alwaysShown = map[string]bool{"segment": true, "predicate": true}

// writeTable emits one row per assertion, ordered by natural segment id.
// A column no assertion populates is left out of the header and every row.
func (v *view) writeTable(w *writer) {
	rows := make([]map[string]string, 0, len(v.assertions))
	for _, a := range v.assertions {
		s := roles.ToSlots(*a)
		row := map[string]string{
			"segment":   a.SegmentID,
			"predicate": v.predicateSurface(a),
			"actor":     v.slotText(s.Actor),
			"theme":     v.slotText(s.Theme),
			"attr":      v.slotText(s.Attr),
			"topic":     v.slotText(s.Topic),
			"location":  v.slotText(s.Location),
			"ops":       strings.Join(v.operators(a), ", "),
		}
		var other []string
		for _, o := range s.Other {
			other = append(other, o.Role+": "+v.slotText(o.MentionIDs))
		}
		row["other"] = strings.Join(other, "; ")
		if v.opts.DebugIDs {
			row["id"] = a.ID
		}
		rows = append(rows, row)
	}

	var header []string
	if v.opts.DebugIDs {
		header = append(header, "id")
	}
	for _, col := range tableColumns {
		if alwaysShown[col] || columnUsed(rows, col) {
			header = append(header, col)
		}
	}

	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = make([]string, len(header))
		for j, col := range header {
			cells[i][j] = row[col]
		}
	}
	w.table(header, cells)
}

func (v *view) slotText(mentionIDs []string) string {
	parts := make([]string, len(mentionIDs))
	for i, mid := range mentionIDs {
		parts[i] = v.mentionSurface(mid)
	}
	return strings.Join(parts, "; ")
}

func columnUsed(rows []map[string]string, col string) bool {
	for _, r := range rows {
		if r[col] != "" {
			return true
		}
	}
	return false
}
