package encoding_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/k0kubun/rbparse/encoding"
)

func TestASCIIIsAlnum(t *testing.T) {
	assert.True(t, encoding.ASCII.IsAlnum('a'))
	assert.True(t, encoding.ASCII.IsAlnum('Z'))
	assert.True(t, encoding.ASCII.IsAlnum('5'))
	assert.False(t, encoding.ASCII.IsAlnum('_'))
	assert.False(t, encoding.ASCII.IsAlnum(' '))
	assert.False(t, encoding.ASCII.IsAlnum(0x80))
}

func TestASCIIName(t *testing.T) {
	assert.Equal(t, "ascii", encoding.ASCII.Name())
}
