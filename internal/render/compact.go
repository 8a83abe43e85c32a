// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import "strings"

// writeCompact emits one terse line per assertion:
//
//	- s1: buy | actor=(the) customer | theme=(a) cart | ops=compare_gt(t4)
func (v *view) writeCompact(w *writer) {
	for _, a := range v.assertions {
		parts := []string{a.SegmentID + ": " + v.predicateSurface(a)}
		for _, e := range v.canonicalRoles(a) {
			parts = append(parts, e.Role+"="+v.roleText(e))
		}
		if ops := v.operators(a); len(ops) > 0 {
			parts = append(parts, "ops="+strings.Join(ops, ", "))
		}
		if v.opts.DebugIDs {
			parts = append(parts, v.assertionDebug(a))
		}
		w.item(strings.Join(parts, " | "))
	}
}
