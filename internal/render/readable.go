// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import "fmt"

// writeReadable emits a numbered block per assertion with the predicate on
// a pred: line and roles and operators indented beneath it.
func (v *view) writeReadable(w *writer) {
	for n, a := range v.assertions {
		if n > 0 {
			w.line("")
		}
		w.line(fmt.Sprintf("Assertion %d:", n+1))
		w.line("  segment: " + a.SegmentID)
		w.line("  pred: " + v.predicateSurface(a))
		for _, e := range v.canonicalRoles(a) {
			w.line("  " + e.Role + ": " + v.roleText(e))
		}
		for _, op := range v.operators(a) {
			w.line("  op: " + op)
		}
		if v.opts.DebugIDs {
			w.line("  debug: " + v.assertionDebug(a))
		}
	}
}
