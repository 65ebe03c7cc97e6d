package common

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatorCollectsErrors(t *testing.T) {
	amount := decimal.NewFromInt(-5)
	v := NewValidator()
	v.Field("merchant", "", Required)
	v.Field("total", &amount, PositiveAmount)
	v.Field("date", "21.11.2024", ISODate)

	assert.True(t, v.HasErrors())
	require.Len(t, v.Errors(), 3)
	assert.Len(t, v.Messages(), 3)
	assert.Error(t, v.Error())
}

func TestValidatorClean(t *testing.T) {
	amount := decimal.RequireFromString("89.90")
	v := NewValidator()
	v.Field("merchant", "MİGROS", Required, MaxLength(120))
	v.Field("total", &amount, PositiveAmount)
	v.Field("date", "2024-11-21", ISODate)

	assert.False(t, v.HasErrors())
	assert.NoError(t, v.Error())
}

func TestMaxLength(t *testing.T) {
	rule := MaxLength(3)
	assert.Nil(t, rule("f", "abc"))
	assert.NotNil(t, rule("f", "abcd"))
	// rune count, not byte count
	assert.Nil(t, rule("f", "şok"))
}

func TestRequiredNilDecimal(t *testing.T) {
	var d *decimal.Decimal
	assert.NotNil(t, Required("total", d))
}

func TestConfigDefaultsValidate(t *testing.T) {
	cfg := LoadConfig()
	require.NoError(t, cfg.Validate())
	assert.True(t, cfg.Pipeline.TotalTolerance.Equal(decimal.RequireFromString("0.50")))
	assert.Equal(t, 20000, cfg.Pipeline.MaxTextLen)
}
