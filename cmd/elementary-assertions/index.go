// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/elementary-assertions/internal/index"
	"github.com/pdiddy/elementary-assertions/pkg/types"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Manage the document summary index (store, list, export)",
	Long: `Index keeps a local SQLite database of per-document summary counts
(mentions, assertions, coverage, warnings) so that reports can aggregate
across runs. Documents are identified by the digest of their contents.`,
}

// --- store subcommand ---

var indexStoreCmd = &cobra.Command{
	Use:   "store <document>...",
	Short: "Validate documents and record their summaries",
	Long: `Store runs the shape and integrity checks on each document and records
a summary row for every document that passes. Documents whose contents are
already indexed are skipped; a path indexed earlier with different contents
is replaced.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runIndexStore,
}

func runIndexStore(cmd *cobra.Command, args []string) error {
	store, err := openIndex(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.ErrOrStderr()
	runner := newRunner()
	invalid := 0
	summaries := make([]types.DocumentSummary, 0, len(args))
	for _, path := range args {
		src, ix, err := runner.Check(path)
		if err != nil {
			fmt.Fprintf(out, "invalid %s: %v\n", path, err)
			invalid++
			continue
		}
		summaries = append(summaries, index.Summarize(src, ix))
	}

	summary, err := store.Ingest(context.Background(), out, summaries)
	if err != nil {
		return err
	}
	if failed := summary.Failed + invalid; failed > 0 {
		return fmt.Errorf("%d document(s) failed indexing", failed)
	}
	return nil
}

// --- list subcommand ---

var indexListCmd = &cobra.Command{
	Use:   "list",
	Short: "List indexed document summaries",
	RunE:  runIndexList,
}

func runIndexList(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	store, err := openIndex(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	rows, err := store.List(context.Background(), queryOptions(cmd))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON {
		if rows == nil {
			rows = []types.DocumentSummary{}
		}
		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	if len(rows) == 0 {
		fmt.Fprintln(out, "No documents indexed.")
		return nil
	}
	for _, r := range rows {
		fmt.Fprintf(out, "%s  %s  assertions=%d mentions=%d uncovered=%d (strict=%d contained=%d) warnings=%d\n",
			r.Digest[:min(12, len(r.Digest))], r.Path, r.Assertions, r.Mentions,
			r.UncoveredMentions, r.StrictlyUncovered, r.ContainedUncovered, r.Warnings)
	}
	fmt.Fprintf(out, "\n%d document(s)\n", len(rows))
	return nil
}

// --- export subcommand ---

var indexExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export indexed summaries to YAML or JSON",
	Long: `Export writes every stored summary to a file. Without --out the file is
written next to the database as export.yaml or export.json.`,
	RunE: runIndexExport,
}

func runIndexExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	outPath, _ := cmd.Flags().GetString("out")

	store, err := openIndex(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	opts := queryOptions(cmd)
	var path string
	switch format {
	case "yaml":
		path, err = store.ExportYAML(ctx, outPath, opts)
	case "json":
		path, err = store.ExportJSON(ctx, outPath, opts)
	default:
		return fmt.Errorf("unknown export format %q (want yaml or json)", format)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", path)
	return nil
}

// openIndex binds the --db flag and opens the configured store.
func openIndex(cmd *cobra.Command) (*index.Store, error) {
	if err := viper.BindPFlag("index.db_path", cmd.Flags().Lookup("db")); err != nil {
		return nil, err
	}
	return index.NewStore(loadConfig().Index)
}

func queryOptions(cmd *cobra.Command) index.QueryOptions {
	docID, _ := cmd.Flags().GetString("doc-id")
	runID, _ := cmd.Flags().GetString("run")
	limit, _ := cmd.Flags().GetInt("limit")
	return index.QueryOptions{DocID: docID, RunID: runID, Limit: limit}
}

func init() {
	indexCmd.PersistentFlags().String("db", index.DefaultDBPath, "index database file")

	for _, c := range []*cobra.Command{indexListCmd, indexExportCmd} {
		c.Flags().String("doc-id", "", "only documents with this doc_id")
		c.Flags().String("run", "", "only documents indexed by this run id")
		c.Flags().Int("limit", 0, "maximum rows (0 means all)")
	}
	indexListCmd.Flags().Bool("json", false, "output as JSON")
	indexExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	indexExportCmd.Flags().String("out", "", "export file (default: export.<format> next to the database)")

	indexCmd.AddCommand(indexStoreCmd)
	indexCmd.AddCommand(indexListCmd)
	indexCmd.AddCommand(indexExportCmd)
	rootCmd.AddCommand(indexCmd)
}
