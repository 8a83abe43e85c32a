// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the elementary-assertions CLI.
// Rendered reports go to stdout or the file named by --out; progress and
// log lines go to stderr.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/elementary-assertions/internal/document"
	"github.com/pdiddy/elementary-assertions/internal/index"
	"github.com/pdiddy/elementary-assertions/internal/logging"
	"github.com/pdiddy/elementary-assertions/internal/pipeline"
	"github.com/pdiddy/elementary-assertions/internal/schema"
	"github.com/pdiddy/elementary-assertions/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the elementary-assertions CLI.
var rootCmd = &cobra.Command{
	Use:   "elementary-assertions",
	Short: "Validate and render elementary assertion documents",
	Long: `elementary-assertions checks elementary assertion documents for shape and
referential integrity, then renders them as deterministic plain-text or
Markdown reports.

Documents may be JSON or YAML, optionally xz-compressed. A path of "-"
reads the document from stdin. Rendering the same document with the same
options always produces the same bytes.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading .env: %w", err)
		}
		return initLogging(cmd)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./elementary-assertions.yaml or ~/.config/elementary-assertions/elementary-assertions.yaml)")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level: debug, info, warn, or error")
	rootCmd.PersistentFlags().String("log-format", "text", "log format: text or json")

	viper.SetDefault("render.format", string(types.FormatText))
	viper.SetDefault("render.layout", string(types.LayoutCompact))
	viper.SetDefault("render.normalize_determiners", true)
	viper.SetDefault("batch.jobs", pipeline.DefaultJobs)
	viper.SetDefault("batch.out_dir", "rendered")
	viper.SetDefault("index.db_path", index.DefaultDBPath)
	viper.SetDefault("log.level", "warn")
	viper.SetDefault("log.format", "text")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("elementary-assertions")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "elementary-assertions"))
		}
	}

	viper.SetEnvPrefix("ELEMENTARY_ASSERTIONS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func initLogging(cmd *cobra.Command) error {
	if err := viper.BindPFlag("log.level", cmd.Flags().Lookup("log-level")); err != nil {
		return err
	}
	if err := viper.BindPFlag("log.format", cmd.Flags().Lookup("log-format")); err != nil {
		return err
	}
	level, err := logging.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		return err
	}
	format, err := logging.ParseFormat(viper.GetString("log.format"))
	if err != nil {
		return err
	}
	logging.InitLogger(level, format, cmd.ErrOrStderr())
	return nil
}

// loadConfig assembles the effective configuration from flags,
// environment, the config file, and defaults.
func loadConfig() types.Config {
	r := renderConfig()
	return types.Config{
		Render: r,
		Batch: types.BatchConfig{
			Render: r,
			OutDir: viper.GetString("batch.out_dir"),
			Jobs:   viper.GetInt("batch.jobs"),
		},
		Index: types.IndexConfig{DBPath: viper.GetString("index.db_path")},
		Log: types.LogConfig{
			Level:  viper.GetString("log.level"),
			Format: viper.GetString("log.format"),
		},
	}
}

// newRunner returns a pipeline runner with a fresh shape validator whose
// memo lives for the process.
func newRunner() *pipeline.Runner {
	return pipeline.NewRunner(document.NewLoader(schema.NewValidator(0)))
}

// writeOutput writes text to the file at path, or to cmd's stdout when path
// is empty.
func writeOutput(cmd *cobra.Command, path, text string) error {
	if path == "" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), text)
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal: %v\n", err)
		os.Exit(1)
	}
}
