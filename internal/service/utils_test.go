package service

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 50))
	assert.Equal(t, "abcde", truncate("abcdefgh", 5))
	assert.Equal(t, "", truncate("anything", 0))

	// Never splits a multibyte rune.
	got := truncate("привет", 3)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, "п", got)
}

func TestSanitizeUTF8(t *testing.T) {
	assert.Equal(t, "clean", sanitizeUTF8("clean"))
	assert.Equal(t, "₹ 250", sanitizeUTF8("₹ 250"))
	assert.Equal(t, "ab", sanitizeUTF8("a\xffb"))
}
