// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package index

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/elementary-assertions/pkg/types"
)

// ExportYAML writes the stored summaries to path, or to export.yaml next to
// the database when path is empty. It returns the path written.
func (s *Store) ExportYAML(ctx context.Context, path string, opts QueryOptions) (string, error) {
	entries, err := s.exportEntries(ctx, opts)
	if err != nil {
		return "", err
	}
	if path == "" {
		path = filepath.Join(s.Dir(), "export.yaml")
	}
	data, err := yaml.Marshal(entries)
	if err != nil {
		return "", fmt.Errorf("marshaling YAML: %w", err)
	}
	return path, os.WriteFile(path, data, 0o644)
}

// ExportJSON writes the stored summaries to path, or to export.json next to
// the database when path is empty. It returns the path written.
func (s *Store) ExportJSON(ctx context.Context, path string, opts QueryOptions) (string, error) {
	entries, err := s.exportEntries(ctx, opts)
	if err != nil {
		return "", err
	}
	if path == "" {
		path = filepath.Join(s.Dir(), "export.json")
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling JSON: %w", err)
	}
	return path, os.WriteFile(path, data, 0o644)
}

func (s *Store) exportEntries(ctx context.Context, opts QueryOptions) ([]types.DocumentSummary, error) {
	entries, err := s.List(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("querying for export: %w", err)
	}
	if entries == nil {
		entries = []types.DocumentSummary{}
	}
	return entries, nil
}
