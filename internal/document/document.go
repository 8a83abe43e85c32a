// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package document loads elementary assertion documents from disk or a
// reader. Inputs may be JSON or YAML, optionally xz-compressed; every
// document passes the input-shape check before it is decoded into types.
package document

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"

	"github.com/pdiddy/elementary-assertions/internal/schema"
	"github.com/pdiddy/elementary-assertions/pkg/types"
)

// xzMagic opens every xz stream.
var xzMagic = []byte{0xFD, '7', 'z', 'X', 'Z', 0x00}

// Source is a decoded document together with where it came from.
type Source struct {
	// Path is the file the document was read from, or "-" for stdin.
	Path string
	// Digest is the blake3 digest of the decompressed document bytes.
	Digest string
	Doc    *types.Document
}

// Name returns the file name without directory or known extensions.
func (s *Source) Name() string {
	if s.Path == "-" || s.Path == "" {
		return "stdin"
	}
	base := filepath.Base(s.Path)
	base = strings.TrimSuffix(base, ".xz")
	for _, ext := range []string{".json", ".yaml", ".yml"} {
		if strings.HasSuffix(base, ext) {
			return strings.TrimSuffix(base, ext)
		}
	}
	return base
}

// Loader reads documents, sharing one shape validator across loads.
type Loader struct {
	shapes *schema.Validator
}

// NewLoader returns a loader that checks shapes with v.
func NewLoader(v *schema.Validator) *Loader {
	return &Loader{shapes: v}
}

// Load reads and decodes the document at path. A path of "-" reads stdin.
func (l *Loader) Load(path string) (*Source, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading document %s: %w", path, err)
	}
	return l.Parse(path, data)
}

// Parse decodes document bytes read from path.
func (l *Loader) Parse(path string, data []byte) (*Source, error) {
	data, err := Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("decompressing %s: %w", path, err)
	}
	if err := l.shapes.CheckBytes(data); err != nil {
		return nil, fmt.Errorf("checking %s: %w", path, err)
	}

	var doc types.Document
	if err := schema.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	if err := schema.CheckSpans(&doc); err != nil {
		return nil, fmt.Errorf("checking %s: %w", path, err)
	}
	return &Source{Path: path, Digest: schema.Digest(data), Doc: &doc}, nil
}

// Decompress returns data unchanged unless it starts with the xz magic
// bytes, in which case the decompressed stream is returned.
func Decompress(data []byte) ([]byte, error) {
	if !bytes.HasPrefix(data, xzMagic) {
		return data, nil
	}
	r, err := xz.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("opening xz stream: %w", err)
	}
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading xz stream: %w", err)
	}
	return out, nil
}
