package idgen_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/wayfarer/internal/idgen"
)

func TestUUID_NewID_IsVersion7AndUnique(t *testing.T) {
	var g idgen.UUID
	seen := make(map[string]struct{})

	for i := 0; i < 1000; i++ {
		id := g.NewID()
		parsed, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(7), parsed.Version())

		_, dup := seen[id]
		require.False(t, dup, "duplicate id %q", id)
		seen[id] = struct{}{}
	}
}

func TestSnowflake_NewID_Unique(t *testing.T) {
	g, err := idgen.NewSnowflake(1)
	require.NoError(t, err)

	a := g.NewID()
	b := g.NewID()

	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}

func TestNewSnowflake_InvalidNode(t *testing.T) {
	_, err := idgen.NewSnowflake(5000)

	assert.Error(t, err)
}

func TestSequence_NewID(t *testing.T) {
	g := &idgen.Sequence{Prefix: "trip-"}

	assert.Equal(t, "trip-1", g.NewID())
	assert.Equal(t, "trip-2", g.NewID())
}
