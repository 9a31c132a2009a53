package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeStripsMarkup(t *testing.T) {
	assert.Equal(t, "hello", Sanitize("<script>alert(1)</script>hello"))
	assert.Equal(t, "plain text", Sanitize("plain text"))
	assert.Equal(t, "bold", Sanitize("<b>bold</b>"))
}
