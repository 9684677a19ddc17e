package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher(t *testing.T) {
	// Minimum cost keeps the test fast
	hasher := NewBcryptHasher(4)

	t.Run("Hash and compare round trip", func(t *testing.T) {
		hash, err := hasher.Hash("secret123")
		require.NoError(t, err)
		assert.NotEqual(t, "secret123", hash)

		assert.True(t, hasher.Compare(hash, "secret123"))
		assert.False(t, hasher.Compare(hash, "secret124"))
		assert.False(t, hasher.Compare(hash, ""))
	})

	t.Run("Same password yields different hashes", func(t *testing.T) {
		h1, err := hasher.Hash("secret123")
		require.NoError(t, err)
		h2, err := hasher.Hash("secret123")
		require.NoError(t, err)

		assert.NotEqual(t, h1, h2)
		assert.True(t, hasher.Compare(h1, "secret123"))
		assert.True(t, hasher.Compare(h2, "secret123"))
	})

	t.Run("Compare against garbage hash", func(t *testing.T) {
		assert.False(t, hasher.Compare("not-a-bcrypt-hash", "secret123"))
	})

	t.Run("Out of range cost is clamped", func(t *testing.T) {
		clamped := NewBcryptHasher(99)
		hash, err := clamped.Hash("secret123")
		require.NoError(t, err)
		assert.True(t, clamped.Compare(hash, "secret123"))
	})
}
