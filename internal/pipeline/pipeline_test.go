package pipeline

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fisworks/fisparse/internal/common"
	"github.com/fisworks/fisparse/internal/entity"
)

const sampleReceipt = `MİGROS TİC. A.Ş.
Atatürk Mah. İnönü Cad. No: 12 Kadıköy
21.11.2024 15:34
FİŞ NO: AB123456
EKMEK *8,50
SÜT 1 LT *32,40
YUMURTA 10 LU *24,00
BEYAZ PEYNİR *15,00
DOMATES *9,50
KDV %18: 5,40
TOPLAM: 89,90
KREDİ KARTI
`

func newTestParser() *Parser {
	return New(common.PipelineConfig{}, nil)
}

func TestParseEndToEnd(t *testing.T) {
	r := newTestParser().Parse(sampleReceipt, nil)

	assert.True(t, r.Valid, "errors: %v", r.Errors)
	assert.Empty(t, r.Errors)
	assert.Equal(t, "Migros", r.MerchantChain)
	assert.Equal(t, "MİGROS", r.MerchantRaw)

	require.NotNil(t, r.Date)
	assert.Equal(t, "2024-11-21", r.Date.ISO())
	require.NotNil(t, r.Time)
	assert.Equal(t, "15:34", r.Time.String())

	require.NotNil(t, r.Total)
	assert.True(t, r.Total.Equal(decimal.RequireFromString("89.90")))

	require.Len(t, r.VAT, 1)
	assert.Equal(t, 18, r.VAT[0].Rate)

	require.Len(t, r.Items, 5)
	assert.True(t, r.ItemSum().Equal(decimal.RequireFromString("89.40")))

	assert.Equal(t, "AB123456", r.ReceiptNumber)
	assert.Equal(t, "CREDIT_CARD", r.PaymentMethod)

	// |89.40 - 89.90| = 0.50, exactly at the boundary: inclusive, accepted
	// silently
	for _, w := range r.Warnings {
		assert.NotContains(t, w, "differs from declared total")
	}
}

func TestToleranceBoundary(t *testing.T) {
	receipt := func(total string) string {
		return "MİGROS\nEKMEK *50,00\nSÜT *39,40\nTOPLAM: " + total + "\n"
	}
	p := newTestParser()

	// item sum is 89.40
	within := p.Parse(receipt("89,90"), nil) // diff 0.50 inclusive
	for _, w := range within.Warnings {
		assert.NotContains(t, w, "differs from declared total")
	}

	outside := p.Parse(receipt("89,91"), nil) // diff 0.51
	count := 0
	for _, w := range outside.Warnings {
		if strings.Contains(w, "differs from declared total") {
			count++
		}
	}
	assert.Equal(t, 1, count, "exactly one tolerance warning, got %v", outside.Warnings)
}

func TestParseRequiredFields(t *testing.T) {
	p := newTestParser()

	r := p.Parse("   ", nil)
	assert.False(t, r.Valid)
	assert.Zero(t, r.Confidence)
	require.NotEmpty(t, r.Errors)

	// no merchant, no total
	r = p.Parse("21.11.2024\n15:34", nil)
	assert.False(t, r.Valid)
	assert.Zero(t, r.Confidence)
	assert.Len(t, r.Errors, 2)
}

func TestParseHighTotalWarns(t *testing.T) {
	r := newTestParser().Parse("MİGROS\nTOPLAM: 15.000,00\n", nil)
	assert.True(t, r.Valid)
	found := false
	for _, w := range r.Warnings {
		if strings.Contains(w, "plausible ceiling") {
			found = true
		}
	}
	assert.True(t, found, "warnings: %v", r.Warnings)
}

func TestParseCanonicalBrandLine(t *testing.T) {
	// a brand line printed exactly in canonical form still counts as matched
	r := newTestParser().Parse("Migros\nTOPLAM: 10,00\n", nil)
	assert.True(t, r.Valid)
	assert.Equal(t, "Migros", r.MerchantChain)
	assert.NotContains(t, r.Warnings, "merchant did not match a known chain")
}

func TestParseUnknownMerchantWarns(t *testing.T) {
	r := newTestParser().Parse("YILDIZ BAKKALİYESİ\nTOPLAM: 10,00\n", nil)
	assert.True(t, r.Valid)
	assert.Equal(t, "YILDIZ BAKKALİYESİ", r.MerchantChain)
	assert.Contains(t, r.Warnings, "merchant did not match a known chain")
}

func TestParseCardMasking(t *testing.T) {
	r := newTestParser().Parse("MİGROS\nKART: 4532 0151 1283 0366\nTOPLAM: 89,90\n", nil)
	assert.Equal(t, "**** **** **** 0366", r.MaskedPAN)
	assert.Equal(t, "VISA", r.CardScheme)
	assert.NotContains(t, r.MaskedPAN, "4532")
}

func TestParseIgnoresInvalidPAN(t *testing.T) {
	// fails the Luhn checksum: no masked PAN is surfaced
	r := newTestParser().Parse("MİGROS\nKART: 4532 0151 1283 0367\nTOPLAM: 89,90\n", nil)
	assert.Empty(t, r.MaskedPAN)
	assert.Empty(t, r.CardScheme)
}

func TestConfidenceMonotonicallyDecreasing(t *testing.T) {
	p := newTestParser()
	clean := p.Parse(sampleReceipt, nil)
	noisy := p.Parse("YILDIZ BAKKALİYESİ\nTOPLAM: 15.000,00\n", nil)
	require.True(t, clean.Valid)
	require.True(t, noisy.Valid)
	assert.Less(t, len(clean.Warnings), len(noisy.Warnings))
	assert.Greater(t, clean.Confidence, noisy.Confidence)
}

func TestConfidenceUsesOCRMetadata(t *testing.T) {
	p := newTestParser()
	withMeta := p.Parse(sampleReceipt, &entity.OCRMetadata{Confidence: 0.42, Engine: "vision"})
	assert.InDelta(t, 0.42, withMeta.Confidence, p.cfg.WarningPenalty*float64(len(withMeta.Warnings))+1e-9)
	assert.LessOrEqual(t, withMeta.Confidence, 0.42)
}

func TestParseIsRepeatable(t *testing.T) {
	p := newTestParser()
	a := p.Parse(sampleReceipt, nil)
	b := p.Parse(sampleReceipt, nil)
	aj, err := json.Marshal(a)
	require.NoError(t, err)
	bj, err := json.Marshal(b)
	require.NoError(t, err)
	assert.JSONEq(t, string(aj), string(bj))
}

func TestSanitizeText(t *testing.T) {
	got := sanitizeText("MİGROS<script>alert(1)</script>\n<b>TOPLAM</b>: 89,90", 0)
	assert.NotContains(t, got, "script")
	assert.NotContains(t, got, "<b>")
	assert.Contains(t, got, "TOPLAM")

	assert.Len(t, []rune(sanitizeText(strings.Repeat("a", 50), 10)), 10)
}

func TestOutputSchema(t *testing.T) {
	r := newTestParser().Parse(sampleReceipt, nil)
	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.NoError(t, ValidateOutput(data))

	// a record with errors still satisfies the contract
	invalid := newTestParser().Parse("   ", nil)
	data, err = json.Marshal(invalid)
	require.NoError(t, err)
	assert.NoError(t, ValidateOutput(data))

	assert.Error(t, ValidateOutput([]byte(`{"confidence": 2, "warnings": [], "valid": true}`)))
	assert.Error(t, ValidateOutput([]byte(`not json`)))
}
