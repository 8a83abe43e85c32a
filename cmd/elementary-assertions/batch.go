// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/elementary-assertions/internal/logging"
	"github.com/pdiddy/elementary-assertions/internal/pipeline"
	"github.com/pdiddy/elementary-assertions/pkg/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch <document>...",
	Short: "Render many documents in parallel",
	Long: `Batch renders each document into --out-dir as <name>.txt or <name>.md,
where name is the input file name without directory or extensions. Up to
--jobs documents are processed at once. A document that fails its checks is
reported and skipped; the others are still written.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatch,
}

func runBatch(cmd *cobra.Command, args []string) error {
	opts, err := renderOptions(cmd)
	if err != nil {
		return err
	}
	if err := viper.BindPFlag("batch.out_dir", cmd.Flags().Lookup("out-dir")); err != nil {
		return err
	}
	if err := viper.BindPFlag("batch.jobs", cmd.Flags().Lookup("jobs")); err != nil {
		return err
	}
	cfg := loadConfig().Batch

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := newRunner().RunBatch(ctx, args, opts, cfg.Jobs)
	if err != nil {
		return err
	}

	ext := ".txt"
	if opts.Format == types.FormatMarkdown {
		ext = ".md"
	}
	seen := make(map[string]string)
	for i := range results {
		res := &results[i]
		if res.Err != nil {
			continue
		}
		name := res.Source.Name() + ext
		if prev, ok := seen[name]; ok {
			res.Err = fmt.Errorf("output %s already written for %s", name, prev)
			continue
		}
		seen[name] = res.Path
		if err := writeOutput(cmd, filepath.Join(cfg.OutDir, name), res.Output); err != nil {
			res.Err = err
			continue
		}
		logging.DocumentWarnings(res.Path, res.Warnings)
	}

	failed := pipeline.Report(cmd.ErrOrStderr(), results)
	if failed > 0 {
		return fmt.Errorf("%d document(s) failed", failed)
	}
	return nil
}

func init() {
	addRenderFlags(batchCmd)
	batchCmd.Flags().String("out-dir", "rendered", "directory receiving one report per document")
	batchCmd.Flags().Int("jobs", pipeline.DefaultJobs, "documents processed concurrently")

	rootCmd.AddCommand(batchCmd)
}
