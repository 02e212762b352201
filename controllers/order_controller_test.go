package controllers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewReference(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		ref := newReference()
		assert.Len(t, ref, 6)
		for _, c := range ref {
			assert.True(t, strings.ContainsRune(referenceCharset, c))
		}
		seen[ref] = true
	}
	// A seeded generator over a 36^6 space should not collapse to one value.
	assert.Greater(t, len(seen), 1)
}
