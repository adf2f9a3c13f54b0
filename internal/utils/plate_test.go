package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePlate(t *testing.T) {
	cases := map[string]string{
		"abc-123":    "ABC-123",
		"  a1b-2c3 ": "A1B-2C3",
		"ab c-123":   "ABC-123",
		"":           "",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizePlate(in), in)
	}
}
