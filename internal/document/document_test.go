// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/elementary-assertions/internal/schema"
	"github.com/pdiddy/elementary-assertions/internal/testdoc"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func compress(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := xz.NewWriter(&buf)
	require.NoError(t, err)
	_, err = w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestLoadFormats(t *testing.T) {
	jsonData, err := json.MarshalIndent(testdoc.Sample(), "", "\t")
	require.NoError(t, err)
	yamlData, err := yaml.Marshal(testdoc.Sample())
	require.NoError(t, err)

	tests := []struct {
		name string
		file string
		data []byte
	}{
		{"json", "doc.json", jsonData},
		{"yaml", "doc.yaml", yamlData},
		{"xz json", "doc.json.xz", compress(t, jsonData)},
		{"xz yaml", "doc.yml.xz", compress(t, yamlData)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLoader(schema.NewValidator(0))
			src, err := l.Load(writeFile(t, tt.file, tt.data))
			require.NoError(t, err)
			assert.Equal(t, "doc", src.Name())
			assert.Equal(t, testdoc.SampleText, src.Doc.CanonicalText)
			assert.Len(t, src.Doc.Assertions, 3)
			assert.Len(t, src.Digest, 64)
		})
	}
}

func TestDigestIgnoresCompression(t *testing.T) {
	data, err := json.Marshal(testdoc.Sample())
	require.NoError(t, err)

	l := NewLoader(schema.NewValidator(0))
	plain, err := l.Parse("a.json", data)
	require.NoError(t, err)
	packed, err := l.Parse("a.json.xz", compress(t, data))
	require.NoError(t, err)
	assert.Equal(t, plain.Digest, packed.Digest)
}

func TestLoadShapeFailure(t *testing.T) {
	l := NewLoader(schema.NewValidator(0))
	_, err := l.Load(writeFile(t, "bad.json", []byte(`{"canonical_text": "x", "tokens": []}`)))
	require.Error(t, err)
	assert.True(t, errors.Is(err, schema.ErrShape))
	assert.Contains(t, err.Error(), "bad.json")
}

func TestLoadSpanFailure(t *testing.T) {
	doc := testdoc.Sample()
	doc.Tokens[0].Span.End = 9999
	data, err := json.Marshal(doc)
	require.NoError(t, err)

	_, err = NewLoader(schema.NewValidator(0)).Parse("span.json", data)
	require.Error(t, err)
	assert.True(t, errors.Is(err, schema.ErrShape))
	assert.Contains(t, err.Error(), "tokens[0].span")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := NewLoader(schema.NewValidator(0)).Load(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestDecompressPassThrough(t *testing.T) {
	data := []byte("plain")
	out, err := Decompress(data)
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

func TestSourceName(t *testing.T) {
	tests := map[string]string{
		"-":                     "stdin",
		"dir/report.json":       "report",
		"dir/report.yaml.xz":    "report",
		"report.yml":            "report",
		"notes.txt":             "notes.txt",
		"/abs/path/doc.v2.json": "doc.v2",
	}
	for path, want := range tests {
		assert.Equal(t, want, (&Source{Path: path}).Name(), path)
	}
}
