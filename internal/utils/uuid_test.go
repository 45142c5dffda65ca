package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameGenerator_Format(t *testing.T) {
	name := NewNameGenerator("organization").Generate()

	assert.True(t, strings.HasPrefix(name, "organization-"))
	assert.Len(t, name, len("organization-")+8)
}

func TestNameGenerator_Unique(t *testing.T) {
	g := NewNameGenerator("organization")
	seen := make(map[string]struct{}, 100)
	for range 100 {
		name := g.Generate()
		_, dup := seen[name]
		assert.False(t, dup, "duplicate name %s", name)
		seen[name] = struct{}{}
	}
}
