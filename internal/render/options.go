// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"

	"github.com/pdiddy/elementary-assertions/pkg/types"
)

// Options controls what Render emits and how.
type Options struct {
	// Format is txt or md. Empty means txt.
	Format types.OutputFormat
	// Layout is compact, readable, table, or meaning. Empty means compact.
	Layout types.Layout

	Segments bool
	Mentions bool
	Coverage bool

	DebugIDs             bool
	NormalizeDeterminers bool
	// RenderUncoveredDelta replaces the uncovered list inside the Coverage
	// section with the strict/contained split. It has no effect unless
	// Coverage is set.
	RenderUncoveredDelta bool
}

// DefaultOptions returns the options used when the caller sets nothing:
// txt, compact, no optional sections, determiner normalization on.
func DefaultOptions() Options {
	return Options{
		Format:               types.FormatText,
		Layout:               types.LayoutCompact,
		NormalizeDeterminers: true,
	}
}

// FromConfig converts a RenderConfig into Options.
func FromConfig(cfg types.RenderConfig) Options {
	return Options{
		Format:               cfg.Format,
		Layout:               cfg.Layout,
		Segments:             cfg.Segments,
		Mentions:             cfg.Mentions,
		Coverage:             cfg.Coverage,
		DebugIDs:             cfg.DebugIDs,
		NormalizeDeterminers: cfg.NormalizeDeterminers,
		RenderUncoveredDelta: cfg.RenderUncoveredDelta,
	}
}

// normalized fills the empty format and layout with their defaults and
// rejects values it does not know.
func (o Options) normalized() (Options, error) {
	if o.Format == "" {
		o.Format = types.FormatText
	}
	if o.Layout == "" {
		o.Layout = types.LayoutCompact
	}
	switch o.Format {
	case types.FormatText, types.FormatMarkdown:
	default:
		return o, fmt.Errorf("unknown format %q (want txt or md)", o.Format)
	}
	switch o.Layout {
	case types.LayoutCompact, types.LayoutReadable, types.LayoutTable, types.LayoutMeaning:
	default:
		return o, fmt.Errorf("unknown layout %q (want compact, readable, table, or meaning)", o.Layout)
	}
	return o, nil
}

// trimSegments reports whether segment text is trimmed of surrounding newlines.
func (o Options) trimSegments() bool {
	return o.Layout != types.LayoutCompact
}

// joinPossessives reports whether detached possessive markers are joined to
// the preceding surface.
func (o Options) joinPossessives() bool {
	return o.Layout == types.LayoutReadable || o.Layout == types.LayoutTable
}

// annotateQuality reports whether low predicate quality is shown inline.
func (o Options) annotateQuality() bool {
	return o.Layout != types.LayoutCompact
}

// fullDebugLists reports whether debug lines show id lists instead of counts.
func (o Options) fullDebugLists() bool {
	return o.Layout == types.LayoutMeaning
}
