package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_GenerateIsParsable(t *testing.T) {
	id := NewUUIDGenerator().Generate()

	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

func TestUUIDGenerator_GenerateIsUnique(t *testing.T) {
	g := NewUUIDGenerator()
	seen := make(map[string]struct{}, 10000)

	// rapid successive calls within the same millisecond must not collide
	for i := 0; i < 10000; i++ {
		id := g.Generate()
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s at iteration %d", id, i)
		seen[id] = struct{}{}
	}
}
