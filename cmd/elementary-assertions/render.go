// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/elementary-assertions/internal/logging"
)

var renderCmd = &cobra.Command{
	Use:   "render <document>",
	Short: "Render one document as a text or Markdown report",
	Long: `Render checks a document's shape and referential integrity, then writes
a deterministic report. Optional sections are switched on with explicit
true/false values, for example --segments true --coverage true.

Nothing is written when the document fails either check. Soft warnings
(low-quality or unresolved-heavy documents) are logged to stderr and do not
change the exit status.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	opts, err := renderOptions(cmd)
	if err != nil {
		return err
	}
	outPath, _ := cmd.Flags().GetString("out")

	res := newRunner().Run(args[0], opts)
	if res.Err != nil {
		return res.Err
	}
	logging.DocumentWarnings(res.Path, res.Warnings)
	return writeOutput(cmd, outPath, res.Output)
}

func init() {
	addRenderFlags(renderCmd)
	renderCmd.Flags().String("out", "", "write the report to this file instead of stdout")

	rootCmd.AddCommand(renderCmd)
}
