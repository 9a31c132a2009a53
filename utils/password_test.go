package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("tr33hugger")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "tr33hugger", hash)

	assert.True(t, CheckPassword(hash, "tr33hugger"))
	assert.False(t, CheckPassword(hash, "tr33huggerX"))
	assert.False(t, CheckPassword("", "tr33hugger"))
}
