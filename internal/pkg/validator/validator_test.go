package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidPhone(t *testing.T) {
	valid := []string{
		"22345678",
		"36123456",
		"46123456",
		"+22236123456",
		"22236123456",
		"36 12 34 56",
		"36-12-34-56",
	}
	for _, p := range valid {
		assert.True(t, IsValidPhone(p), p)
	}

	invalid := []string{
		"",
		"1234567",    // too short
		"361234567",  // too long
		"56123456",   // bad prefix
		"+3336123456",
		"abcdefgh",
	}
	for _, p := range invalid {
		assert.False(t, IsValidPhone(p), p)
	}
}

func TestIsNonEmpty(t *testing.T) {
	assert.True(t, IsNonEmpty("Chien perdu"))
	assert.False(t, IsNonEmpty(""))
	assert.False(t, IsNonEmpty("   "))
}

func TestIsValidDateTime(t *testing.T) {
	assert.True(t, IsValidDateTime("2024-05-01T18:30:00Z"))
	assert.True(t, IsValidDateTime("2024-05-01T18:30:00+00:00"))
	assert.False(t, IsValidDateTime("2024-05-01"))
	assert.False(t, IsValidDateTime("yesterday"))
}
