//go:build mage

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"

	"github.com/pdiddy/elementary-assertions/internal/testdoc"
)

const samplePath = "testdata/sample.json"

var sampleLayouts = []string{"compact", "readable", "table", "meaning"}

// Sample writes the sample document to testdata/ and renders it with every
// layout in both formats into rendered/.
func Sample() error {
	mg.Deps(Build)

	if err := os.MkdirAll(filepath.Dir(samplePath), 0o755); err != nil {
		return fmt.Errorf("creating testdata: %w", err)
	}
	data, err := json.MarshalIndent(testdoc.Sample(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling sample: %w", err)
	}
	if err := os.WriteFile(samplePath, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", samplePath, err)
	}
	fmt.Printf("Wrote %s\n", samplePath)

	for _, layout := range sampleLayouts {
		for _, format := range []string{"txt", "md"} {
			out := filepath.Join("rendered", "sample-"+layout+"."+format)
			if err := sh.RunV(binPath, "render", samplePath,
				"--layout", layout, "--format", format,
				"--segments", "true", "--mentions", "true", "--coverage", "true",
				"--render-uncovered-delta", "true",
				"--out", out,
			); err != nil {
				return fmt.Errorf("rendering %s: %w", out, err)
			}
			fmt.Println("  ", out)
		}
	}
	return nil
}

// Index records the sample document in the summary index and exports it.
func Index() error {
	mg.Deps(Sample)

	if err := sh.RunV(binPath, "index", "store", samplePath); err != nil {
		return err
	}
	return sh.RunV(binPath, "index", "export", "--format", "yaml")
}
