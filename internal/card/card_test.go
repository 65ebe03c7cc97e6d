package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLuhnValid(t *testing.T) {
	assert.True(t, LuhnValid("4532015112830366"))
	assert.True(t, LuhnValid("4532 0151 1283 0366")) // separators ignored

	// flipping the last digit breaks the checksum
	assert.False(t, LuhnValid("4532015112830367"))

	// under 12 digits is always invalid
	assert.False(t, LuhnValid("4532015112"))
	assert.False(t, LuhnValid(""))
	assert.False(t, LuhnValid("not a number"))
}

func TestDetectScheme(t *testing.T) {
	tests := []struct {
		number string
		want   string
		ok     bool
	}{
		{"4532015112830366", SchemeVisa, true},
		{"5555555555554444", SchemeMastercard, true},
		{"2221000000000009", SchemeMastercard, true},
		{"340000000000009", SchemeAmex, true},
		{"370000000000002", SchemeAmex, true},
		{"6011000000000004", SchemeDiscover, true},
		{"6500000000000002", SchemeDiscover, true},
		{"9999999999999999", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := DetectScheme(tt.number)
		assert.Equal(t, tt.ok, ok, tt.number)
		assert.Equal(t, tt.want, got, tt.number)
	}
}

func TestMask(t *testing.T) {
	masked, ok := Mask("4532015112830366")
	require.True(t, ok)
	assert.Equal(t, "**** **** **** 0366", masked)
	assert.Contains(t, masked, "0366")
	assert.NotContains(t, masked, "4532")

	// non-16-digit PANs mask as a single block
	masked, ok = Mask("340000000000009") // 15 digits
	require.True(t, ok)
	assert.Equal(t, "***********0009", masked)

	_, ok = Mask("12345678901") // 11 digits
	assert.False(t, ok)
}
