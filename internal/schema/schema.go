// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package schema performs the pass/fail input-shape check that runs before
// referential integrity: the decoded input must be an object carrying every
// required top-level collection with the right kind. Each Validator owns its
// memo of earlier results; nothing is cached process-wide.
package schema

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/zeebo/blake3"
	"go.yaml.in/yaml/v3"
)

// ErrShape is the sentinel every ShapeError matches with errors.Is.
var ErrShape = errors.New("input shape")

// ShapeError names the top-level field that does not have the expected shape.
type ShapeError struct {
	Field   string
	Problem string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("shape: %s: %s", e.Field, e.Problem)
}

// Is lets errors.Is(err, ErrShape) match any ShapeError.
func (e *ShapeError) Is(target error) bool {
	return target == ErrShape
}

type kind string

const (
	kindString   kind = "string"
	kindSequence kind = "array"
	kindMapping  kind = "object"
)

// requiredFields lists the top-level fields every document carries.
var requiredFields = map[string]kind{
	"canonical_text":      kindString,
	"tokens":              kindSequence,
	"segments":            kindSequence,
	"mentions":            kindSequence,
	"assertions":          kindSequence,
	"coverage":            kindMapping,
	"diagnostics":         kindMapping,
	"wiki_title_evidence": kindMapping,
}

// Validator checks document shapes and remembers the outcome per input digest.
type Validator struct {
	memo *gocache.Cache
}

// memoEntry wraps a result so a passing check (nil error) can be cached.
type memoEntry struct {
	err error
}

// NewValidator returns a validator whose memoised results expire after ttl.
// A ttl of zero or less keeps results until Reset.
func NewValidator(ttl time.Duration) *Validator {
	if ttl <= 0 {
		return &Validator{memo: gocache.New(gocache.NoExpiration, 0)}
	}
	return &Validator{memo: gocache.New(ttl, 2*ttl)}
}

// Check verifies an already decoded document value.
func (v *Validator) Check(raw any) error {
	top, ok := asMapping(raw)
	if !ok {
		return &ShapeError{Field: "(document)", Problem: "expected an object at the top level"}
	}

	fields := make([]string, 0, len(requiredFields))
	for f := range requiredFields {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	for _, f := range fields {
		want := requiredFields[f]
		val, present := top[f]
		if !present {
			return &ShapeError{Field: f, Problem: "missing"}
		}
		if val == nil {
			return &ShapeError{Field: f, Problem: fmt.Sprintf("is null, expected %s", want)}
		}
		if got := kindOf(val); got != want {
			return &ShapeError{Field: f, Problem: fmt.Sprintf("is %s, expected %s", got, want)}
		}
	}
	return nil
}

// CheckBytes decodes data and checks it. The result is memoised under the
// blake3 digest of data, so re-checking identical bytes skips decoding.
func (v *Validator) CheckBytes(data []byte) error {
	key := Digest(data)
	if cached, found := v.memo.Get(key); found {
		return cached.(memoEntry).err
	}

	var raw any
	err := Unmarshal(data, &raw)
	if err != nil {
		err = &ShapeError{Field: "(document)", Problem: "not decodable: " + err.Error()}
	} else {
		err = v.Check(raw)
	}
	v.memo.Set(key, memoEntry{err: err}, gocache.DefaultExpiration)
	return err
}

// Cached returns the number of memoised results.
func (v *Validator) Cached() int {
	return v.memo.ItemCount()
}

// Reset forgets every memoised result.
func (v *Validator) Reset() {
	v.memo.Flush()
}

// Digest returns the hex blake3-256 digest of data.
func Digest(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Unmarshal decodes a document encoded as JSON or YAML into out. Input
// whose first non-blank byte opens a JSON object or array is read as JSON;
// anything else goes through the YAML decoder.
func Unmarshal(data []byte, out any) error {
	trimmed := bytes.TrimLeft(data, " \t\r\n\ufeff")
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		if err := json.Unmarshal(trimmed, out); err != nil {
			return fmt.Errorf("decoding JSON: %w", err)
		}
		return nil
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding YAML: %w", err)
	}
	return nil
}

func asMapping(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	}
	return nil, false
}

func kindOf(v any) kind {
	switch v.(type) {
	case string:
		return kindString
	case []any:
		return kindSequence
	case map[string]any, map[any]any:
		return kindMapping
	case bool:
		return "boolean"
	case int, int64, uint64, float64:
		return "number"
	}
	return kind(fmt.Sprintf("%T", v))
}
