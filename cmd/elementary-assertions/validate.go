// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/elementary-assertions/internal/logging"
	"github.com/pdiddy/elementary-assertions/internal/render"
)

var validateCmd = &cobra.Command{
	Use:   "validate <document>...",
	Short: "Check documents for shape and referential integrity",
	Long: `Validate runs the input-shape check and the integrity check on each
document without rendering it. Every document is checked and reported on
stderr; the command fails if any document fails.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	runner := newRunner()
	out := cmd.ErrOrStderr()

	failed := 0
	for _, path := range args {
		src, _, err := runner.Check(path)
		if err != nil {
			failed++
			fmt.Fprintf(out, "  %s: error: %v\n", path, err)
			continue
		}
		warnings := render.Warnings(src.Doc)
		logging.DocumentWarnings(path, warnings)
		fmt.Fprintf(out, "  %s: ok (%d warnings)\n", path, len(warnings))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d document(s) failed validation", failed, len(args))
	}
	return nil
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
