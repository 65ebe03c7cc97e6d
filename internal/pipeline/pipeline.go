// Package pipeline orchestrates the receipt parsing components into one
// pure, synchronous computation: raw OCR text in, validated ParsedReceipt
// out. Parsers hold only read-only configuration, so a single Parser is safe
// for concurrent use across receipts.
package pipeline

import (
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/fisworks/fisparse/internal/card"
	"github.com/fisworks/fisparse/internal/common"
	"github.com/fisworks/fisparse/internal/entity"
	"github.com/fisworks/fisparse/internal/extract"
	"github.com/fisworks/fisparse/internal/merchant"
	"github.com/fisworks/fisparse/internal/numeric"
)

// Parser runs the normalization-and-validation pipeline.
type Parser struct {
	cfg    common.PipelineConfig
	logger *slog.Logger
}

// New builds a Parser, filling unset thresholds with the reference defaults
// (tolerance 0.50, ceiling 10000, text cap 20000, penalty 0.1).
func New(cfg common.PipelineConfig, logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.TotalTolerance.IsZero() {
		cfg.TotalTolerance = decimal.RequireFromString("0.50")
	}
	if cfg.MaxPlausibleTotal.IsZero() {
		cfg.MaxPlausibleTotal = decimal.NewFromInt(10000)
	}
	if cfg.MaxTextLen <= 0 {
		cfg.MaxTextLen = 20000
	}
	if cfg.WarningPenalty <= 0 {
		cfg.WarningPenalty = 0.1
	}
	return &Parser{cfg: cfg, logger: logger}
}

// Parse converts one raw OCR text into a ParsedReceipt. Total over its input
// domain: business-rule violations land in Errors/Warnings, never in a
// panic. meta may be nil.
func (p *Parser) Parse(raw string, meta *entity.OCRMetadata) *entity.ParsedReceipt {
	r := &entity.ParsedReceipt{Warnings: []string{}}

	if strings.TrimSpace(raw) == "" {
		r.Errors = append(r.Errors, "raw text is required")
		p.logger.Warn("pipeline.parse.invalid", "errors", r.Errors)
		return r
	}

	text := sanitizeText(numeric.CleanText(raw), p.cfg.MaxTextLen)

	if brand, ok := merchant.ExtractBrand(text); ok {
		r.MerchantRaw = merchant.CleanName(brand)
		chain, matched := merchant.NormalizeToChain(brand)
		r.MerchantChain = chain
		if !matched {
			r.Warnings = append(r.Warnings, "merchant did not match a known chain")
		}
	}

	for d := range extract.Dates(text) {
		date := d
		r.Date = &date
		break
	}
	for t := range extract.Times(text) {
		clock := t
		r.Time = &clock
		break
	}

	for v := range extract.VATLines(text) {
		r.VAT = append(r.VAT, v)
	}
	if len(r.VAT) > 0 {
		sum := decimal.Zero
		for _, v := range r.VAT {
			sum = sum.Add(v.Amount)
		}
		r.VATTotal = &sum
	}

	if total, ok := extract.Total(text); ok {
		r.Total = &total
	}
	if subtotal, ok := extract.Subtotal(text); ok {
		r.Subtotal = &subtotal
	}
	if discount, ok := extract.DiscountTotal(text); ok {
		r.DiscountTotal = &discount
	}

	r.Items = extract.Items(text)

	if no, ok := extract.ReceiptNumber(text); ok {
		r.ReceiptNumber = no
	}
	if no, ok := extract.FiscalNumber(text); ok {
		r.FiscalNumber = no
	}
	if method, ok := extract.PaymentMethod(text); ok {
		r.PaymentMethod = string(method)
	}
	r.AddressLines = extract.AddressLines(text)

	if pan, ok := extract.CardCandidate(text); ok && card.LuhnValid(pan) {
		if masked, ok := card.Mask(pan); ok {
			r.MaskedPAN = masked
		}
		if scheme, ok := card.DetectScheme(pan); ok {
			r.CardScheme = scheme
		}
	}

	errs, warns := p.check(r)
	r.Errors = append(r.Errors, errs...)
	r.Warnings = append(r.Warnings, warns...)
	r.Valid = len(r.Errors) == 0
	r.Confidence = p.confidence(r, text, meta)

	if r.Valid {
		p.logger.Info("pipeline.parse.ok",
			"merchant", r.MerchantChain,
			"items", len(r.Items),
			"warnings", len(r.Warnings),
			"confidence", r.Confidence,
		)
	} else {
		p.logger.Warn("pipeline.parse.invalid", "errors", r.Errors)
	}
	return r
}
