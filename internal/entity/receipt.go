package entity

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Date is a calendar date extracted from receipt text. Plausibility is
// enforced at extraction time (day 1-31, month 1-12, year 2020-2030).
type Date struct {
	Day   int `json:"day"`
	Month int `json:"month"`
	Year  int `json:"year"`
}

// ISO renders the date as YYYY-MM-DD.
func (d Date) ISO() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// ClockTime is a wall-clock time of purchase.
type ClockTime struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// VATEntry is one "KDV %<rate>" line.
type VATEntry struct {
	Rate   int             `json:"rate"`
	Amount decimal.Decimal `json:"amount"`
}

// QuantityUnit is a parsed quantity with an optional unit from the fixed
// vocabulary. Callers must check the ok result of ParseQuantityUnit to
// distinguish "no quantity present" from an actual zero.
type QuantityUnit struct {
	Qty  decimal.Decimal `json:"qty"`
	Unit string          `json:"unit,omitempty"`
}

// LineItem is one purchased item row.
type LineItem struct {
	Description string           `json:"description"`
	Qty         *decimal.Decimal `json:"qty,omitempty"`
	Unit        string           `json:"unit,omitempty"`
	LineTotal   decimal.Decimal  `json:"line_total"`
}

// OCRMetadata is optional context supplied by the OCR provider alongside the
// raw text. The pipeline works with a nil metadata.
type OCRMetadata struct {
	Confidence float64 `json:"confidence"`
	Engine     string  `json:"engine,omitempty"`
}

// ParsedReceipt is the structured, validated result of one pipeline run.
// Built fresh per input text and never mutated after construction.
type ParsedReceipt struct {
	MerchantRaw   string           `json:"merchant_raw,omitempty"`
	MerchantChain string           `json:"merchant_chain,omitempty"`
	Date          *Date            `json:"date,omitempty"`
	Time          *ClockTime       `json:"time,omitempty"`
	Subtotal      *decimal.Decimal `json:"subtotal,omitempty"`
	DiscountTotal *decimal.Decimal `json:"discount_total,omitempty"`
	VATTotal      *decimal.Decimal `json:"vat_total,omitempty"`
	Total         *decimal.Decimal `json:"total,omitempty"`
	VAT           []VATEntry       `json:"vat,omitempty"`
	Items         []LineItem       `json:"items,omitempty"`
	PaymentMethod string           `json:"payment_method,omitempty"`
	MaskedPAN     string           `json:"masked_pan,omitempty"`
	CardScheme    string           `json:"card_scheme,omitempty"`
	ReceiptNumber string           `json:"receipt_number,omitempty"`
	FiscalNumber  string           `json:"fiscal_number,omitempty"`
	AddressLines  []string         `json:"address_lines,omitempty"`
	Confidence    float64          `json:"confidence"`
	Warnings      []string         `json:"warnings"`
	Errors        []string         `json:"errors,omitempty"`
	Valid         bool             `json:"valid"`
}

// ItemSum is the sum of extracted line totals, used by the tolerance check.
func (r *ParsedReceipt) ItemSum() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range r.Items {
		sum = sum.Add(it.LineTotal)
	}
	return sum
}
