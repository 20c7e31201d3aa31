package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidator_IsNonEmptyString(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"plain string", "Buy milk", true},
		{"string with surrounding spaces", "  Buy milk  ", true},
		{"empty string", "", false},
		{"whitespace only", "   ", false},
		{"tabs and newlines", "\t\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, v.IsNonEmptyString(tt.input))
		})
	}
}

func TestValidator_IsValidTitleLength(t *testing.T) {
	t.Run("default limits", func(t *testing.T) {
		v := NewValidator()

		assert.True(t, v.IsValidTitleLength("a"))
		assert.True(t, v.IsValidTitleLength(strings.Repeat("a", 255)))
		assert.False(t, v.IsValidTitleLength(""))
		assert.False(t, v.IsValidTitleLength(strings.Repeat("a", 256)))
	})

	t.Run("explicit limits", func(t *testing.T) {
		v := NewValidatorWithLimits(3, 5)

		assert.False(t, v.IsValidTitleLength("ab"))
		assert.True(t, v.IsValidTitleLength("abc"))
		assert.True(t, v.IsValidTitleLength("abcde"))
		assert.False(t, v.IsValidTitleLength("abcdef"))
	})

	t.Run("length is measured after trimming", func(t *testing.T) {
		v := NewValidatorWithLimits(1, 5)

		assert.True(t, v.IsValidTitleLength("  abc  "))
	})
}

func TestValidator_IsValidTaskID(t *testing.T) {
	v := NewValidator()

	assert.True(t, v.IsValidTaskID(1))
	assert.True(t, v.IsValidTaskID(12345))
	assert.False(t, v.IsValidTaskID(0))
	assert.False(t, v.IsValidTaskID(-1))
}

func TestValidator_TrimString(t *testing.T) {
	v := NewValidator()

	assert.Equal(t, "Buy milk", v.TrimString("  Buy milk  "))
	assert.Equal(t, "", v.TrimString("   "))
}
