package controllers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidUsername(t *testing.T) {
	assert.True(t, validUsername("eco-warrior"))
	assert.True(t, validUsername("Greta2025"))
	assert.False(t, validUsername(""))
	assert.False(t, validUsername("has space"))
	assert.False(t, validUsername("semi;colon"))
}

func TestClampRunes(t *testing.T) {
	assert.Equal(t, "abc", clampRunes("abc", 10))
	assert.Equal(t, "abc", clampRunes("abcdef", 3))
	long := strings.Repeat("ä", 600)
	assert.Equal(t, 512, len([]rune(clampRunes(long, 512))))
}
