package merchant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeToChain(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		matched bool
	}{
		{"migros uppercase dotted i", "MİGROS AVM", "Migros", true},
		{"migros ascii", "MIGROS JET", "Migros", true},
		{"canonical form matches itself", "Migros", "Migros", true},
		{"carrefoursa beats carrefour", "CARREFOUR SA", "CarrefourSA", true},
		{"plain carrefour still resolves", "CARREFOUR EXPRESS", "CarrefourSA", true},
		{"a101", "A101 YENİ MAĞAZACILIK", "A101", true},
		{"şok", "ŞOK MARKET", "ŞOK", true},
		{"bim", "BİM BİRLEŞİK MAĞAZALAR A.Ş.", "BİM", true},
		{"passthrough", "UNKNOWN STORE", "UNKNOWN STORE", false},
		{"passthrough keeps case", "Yıldız Bakkaliyesi", "Yıldız Bakkaliyesi", false},
		{"empty", "", "Unknown", false},
		{"whitespace only", "   ", "Unknown", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, matched := NormalizeToChain(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.matched, matched)
		})
	}
}

func TestExtractBrand(t *testing.T) {
	text := "0001234\nAtatürk Mah. İnönü Cad. No: 12\nMİGROS TİC. A.Ş.\nFİŞ NO: ABC123\nEKMEK 8,50"
	brand, ok := ExtractBrand(text)
	require.True(t, ok)
	assert.Equal(t, "MİGROS TİC. A.Ş.", brand)
}

func TestExtractBrandUnknownButSubstantial(t *testing.T) {
	brand, ok := ExtractBrand("YILDIZ BAKKALİYESİ\n21.11.2024")
	require.True(t, ok)
	assert.Equal(t, "YILDIZ BAKKALİYESİ", brand)
}

func TestExtractBrandNone(t *testing.T) {
	_, ok := ExtractBrand("0001234\n5678\n21.11.2024\n15:34\n89,90")
	assert.False(t, ok)
}

func TestExtractBrandScansOnlyTopLines(t *testing.T) {
	// brand buried below the first five non-empty lines is not picked up
	text := "111\n222\n333\n444\n555\nMİGROS"
	_, ok := ExtractBrand(text)
	assert.False(t, ok)
}

func TestCleanName(t *testing.T) {
	assert.Equal(t, "MİGROS", CleanName("MİGROS TİC. A.Ş."))
	assert.Equal(t, "CARREFOURSA", CleanName("CARREFOURSA   LTD."))
	assert.Equal(t, "Onur Market", CleanName("Onur Market SAN. ve TİC."))
	assert.Equal(t, "ŞOK MARKETLER", CleanName("ŞOK *MARKETLER* A.Ş."))
}
