// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// OutputFormat selects the rendered text format.
type OutputFormat string

const (
	FormatText     OutputFormat = "txt"
	FormatMarkdown OutputFormat = "md"
)

// Layout selects how assertions are laid out in the rendered report.
type Layout string

const (
	LayoutCompact  Layout = "compact"
	LayoutReadable Layout = "readable"
	LayoutTable    Layout = "table"
	LayoutMeaning  Layout = "meaning"
)

// RenderConfig holds the render options as read from flags, environment,
// and the config file.
type RenderConfig struct {
	// Format is txt or md (default txt).
	Format OutputFormat `json:"format" yaml:"format"`

	// Layout is compact, readable, table, or meaning. Empty means compact.
	Layout Layout `json:"layout" yaml:"layout"`

	// Segments, Mentions, and Coverage toggle the optional report sections.
	Segments bool `json:"segments" yaml:"segments"`
	Mentions bool `json:"mentions" yaml:"mentions"`
	Coverage bool `json:"coverage" yaml:"coverage"`

	// DebugIDs includes raw internal ids and debug counters.
	DebugIDs bool `json:"debug_ids" yaml:"debug_ids"`

	// NormalizeDeterminers parenthesizes leading articles (default true).
	NormalizeDeterminers bool `json:"normalize_determiners" yaml:"normalize_determiners"`

	// RenderUncoveredDelta splits uncovered primary mentions into strict and
	// contained lists with counts.
	RenderUncoveredDelta bool `json:"render_uncovered_delta" yaml:"render_uncovered_delta"`
}

// BatchConfig holds settings for rendering many documents at once.
type BatchConfig struct {
	Render RenderConfig `json:"render" yaml:"render"`

	// OutDir receives one rendered file per input document.
	OutDir string `json:"out_dir" yaml:"out_dir"`

	// Jobs bounds the number of documents processed concurrently (default 4).
	Jobs int `json:"jobs" yaml:"jobs"`
}

// IndexConfig holds settings for the document summary index.
type IndexConfig struct {
	// DBPath is the SQLite database file (default index/assertions.db).
	DBPath string `json:"db_path" yaml:"db_path"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is debug, info, warn, or error (default warn).
	Level string `json:"level" yaml:"level"`

	// Format is text or json (default text).
	Format string `json:"format" yaml:"format"`
}

// Config groups every configurable section of the tool.
type Config struct {
	Render RenderConfig `json:"render" yaml:"render"`
	Batch  BatchConfig  `json:"batch" yaml:"batch"`
	Index  IndexConfig  `json:"index" yaml:"index"`
	Log    LogConfig    `json:"log" yaml:"log"`
}
