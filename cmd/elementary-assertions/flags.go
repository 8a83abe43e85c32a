// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdiddy/elementary-assertions/internal/render"
	"github.com/pdiddy/elementary-assertions/pkg/types"
)

// literalBool is a boolean flag that always takes an explicit true or false,
// as in --segments true or --segments=true.
type literalBool bool

func (b *literalBool) String() string { return strconv.FormatBool(bool(*b)) }

func (b *literalBool) Set(s string) error {
	switch s {
	case "true":
		*b = true
	case "false":
		*b = false
	default:
		return fmt.Errorf("want true or false, got %q", s)
	}
	return nil
}

func (b *literalBool) Type() string { return "true|false" }

func addLiteralBool(fs *pflag.FlagSet, name string, value bool, usage string) {
	b := literalBool(value)
	fs.Var(&b, name, usage)
}

// renderFlag pairs a render flag with its config key.
type renderFlag struct {
	flag string
	key  string
}

var renderFlags = []renderFlag{
	{"format", "render.format"},
	{"layout", "render.layout"},
	{"segments", "render.segments"},
	{"mentions", "render.mentions"},
	{"coverage", "render.coverage"},
	{"debug-ids", "render.debug_ids"},
	{"normalize-determiners", "render.normalize_determiners"},
	{"render-uncovered-delta", "render.render_uncovered_delta"},
}

// addRenderFlags registers the render option flags on cmd.
func addRenderFlags(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.String("format", "txt", "output format: txt or md")
	fs.String("layout", "compact", "assertion layout: compact, readable, table, or meaning")
	addLiteralBool(fs, "segments", false, "include the Segments section")
	addLiteralBool(fs, "mentions", false, "include the Mentions section")
	addLiteralBool(fs, "coverage", false, "include the Coverage section")
	addLiteralBool(fs, "debug-ids", false, "show raw ids and debug counters")
	addLiteralBool(fs, "normalize-determiners", true, "parenthesize leading articles")
	addLiteralBool(fs, "render-uncovered-delta", false, "split uncovered mentions into strict and contained (needs --coverage true)")
}

// bindRenderFlags binds cmd's render flags to their config keys. Binding
// happens when the command runs so that commands sharing flag names do
// not overwrite each other's bindings.
func bindRenderFlags(cmd *cobra.Command) error {
	for _, rf := range renderFlags {
		if err := viper.BindPFlag(rf.key, cmd.Flags().Lookup(rf.flag)); err != nil {
			return fmt.Errorf("binding --%s: %w", rf.flag, err)
		}
	}
	return nil
}

// renderConfig reads the effective render settings: flags, then
// environment, then the config file, then defaults.
func renderConfig() types.RenderConfig {
	return types.RenderConfig{
		Format:               types.OutputFormat(viper.GetString("render.format")),
		Layout:               types.Layout(viper.GetString("render.layout")),
		Segments:             viper.GetBool("render.segments"),
		Mentions:             viper.GetBool("render.mentions"),
		Coverage:             viper.GetBool("render.coverage"),
		DebugIDs:             viper.GetBool("render.debug_ids"),
		NormalizeDeterminers: viper.GetBool("render.normalize_determiners"),
		RenderUncoveredDelta: viper.GetBool("render.render_uncovered_delta"),
	}
}

// renderOptions binds cmd's flags and returns the render options they select.
func renderOptions(cmd *cobra.Command) (render.Options, error) {
	if err := bindRenderFlags(cmd); err != nil {
		return render.Options{}, err
	}
	return render.FromConfig(renderConfig()), nil
}
