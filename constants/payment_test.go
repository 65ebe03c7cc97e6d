package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizePayment(t *testing.T) {
	tests := []struct {
		in   string
		want PaymentMethod
		ok   bool
	}{
		{"KREDİ KARTI", PaymentCreditCard, true},
		{"KREDI KARTI ****1234", PaymentCreditCard, true},
		{"NAKİT", PaymentCash, true},
		{"Nakit Ödeme", PaymentCash, true},
		{"BANKA KARTI", PaymentDebitCard, true},
		{"TEMASSIZ", PaymentContactless, true},
		{"SODEXO", PaymentMealCard, true},
		{"EKMEK", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := CanonicalizePayment(tt.in)
		require.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestIsUnit(t *testing.T) {
	assert.True(t, IsUnit("adet"))
	assert.True(t, IsUnit("ADET"))
	assert.True(t, IsUnit("kg"))
	assert.True(t, IsUnit("ad."))
	assert.False(t, IsUnit("kasa"))
	assert.False(t, IsUnit(""))
}

func TestChainsAsStringSlice(t *testing.T) {
	chains := ChainsAsStringSlice()
	assert.Contains(t, chains, "Migros")
	assert.Contains(t, chains, "CarrefourSA")
	assert.NotContains(t, chains, "Unknown")
}
