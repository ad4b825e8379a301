package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShortUUID(t *testing.T) {
	a := ShortUUID()
	b := ShortUUID()

	assert.Len(t, a, 22)
	assert.NotEqual(t, a, b)
}

func TestRequestID(t *testing.T) {
	assert.Equal(t, "abc", RequestID("abc"))
	assert.Len(t, RequestID(""), 22)
	assert.Len(t, RequestID(strings.Repeat("x", 100)), 22)
}
