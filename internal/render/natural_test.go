// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNaturalLess(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"s2", "s10", true},
		{"s10", "s2", false},
		{"s1", "s1", false},
		{"s01", "s1", true},
		{"a", "b", true},
		{"s", "s1", true},
		{"9", "s", true},
		{"t2x", "t2y", true},
		{"seg10b", "seg10a", false},
	}
	for _, tt := range tests {
		t.Run(tt.a+"<"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, naturalLess(tt.a, tt.b))
		})
	}
}

func TestNaturalSort(t *testing.T) {
	ids := []string{"s10", "s2", "s1", "s100", "s20", "s3"}
	sort.Slice(ids, func(i, j int) bool { return naturalLess(ids[i], ids[j]) })
	assert.Equal(t, []string{"s1", "s2", "s3", "s10", "s20", "s100"}, ids)
}
