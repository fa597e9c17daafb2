package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateLength(t *testing.T) {
	got, err := Generate(16)
	require.NoError(t, err)
	assert.Len(t, got, 16)

	// Non-positive lengths fall back to the default.
	got, err = Generate(0)
	require.NoError(t, err)
	assert.Len(t, got, DefaultLength)
}

func TestGenerateAlphabet(t *testing.T) {
	got, err := Generate(64)
	require.NoError(t, err)
	for _, r := range got {
		assert.Contains(t, alphabet, string(r))
	}
}

func TestGenerateUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		got := MustGenerate(DefaultLength)
		assert.False(t, seen[got], "duplicate id generated: %s", got)
		seen[got] = true
	}
}

func TestNewPlanID(t *testing.T) {
	got, err := NewPlanID()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "plan_"))

	prefix, short, err := ParsePrefixedID(got)
	require.NoError(t, err)
	assert.Equal(t, PrefixPlan, prefix)
	assert.Len(t, short, DefaultLength)
}

func TestParsePrefixedID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "plan_abc123", false},
		{"missing separator", "planabc123", true},
		{"empty prefix", "_abc123", true},
		{"empty short id", "plan_", true},
		{"empty string", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParsePrefixedID(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePrefix(t *testing.T) {
	assert.NoError(t, ValidatePrefix("plan_abc", PrefixPlan))
	assert.Error(t, ValidatePrefix("dl_abc", PrefixPlan))
	assert.Error(t, ValidatePrefix("garbage", PrefixPlan))
}
