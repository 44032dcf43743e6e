package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	// Stored credentials depend on this exact digest format.
	require.Equal(t,
		"ecd71870d1963316a97e3ac3408c9835ad8cf0f3c1bc703527c30265534f75ae",
		HashPassword("test123"))

	assert.NotEqual(t, HashPassword("test123"), HashPassword("wrong"))
	assert.Equal(t, HashPassword("test123"), HashPassword("test123"))
	assert.Len(t, HashPassword(""), 64)
}
