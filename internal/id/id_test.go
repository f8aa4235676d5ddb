package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToken(t *testing.T) {
	token, err := Token()
	require.NoError(t, err)
	assert.Len(t, token, tokenLength)
}

func TestTokenUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for range 1000 {
		token, err := Token()
		require.NoError(t, err)
		assert.False(t, seen[token], "duplicate token generated: %s", token)
		seen[token] = true
	}
}

func TestSuffix(t *testing.T) {
	s, err := Suffix(9)
	require.NoError(t, err)
	assert.Len(t, s, 9)
}
