// Package extract applies a fixed library of Turkish-locale patterns to raw
// receipt text. All patterns are compiled once at init and only read after
// that, so extraction calls are safe to run concurrently.
//
// Multi-match extractors return an iter.Seq: lazy and finite, and every
// range over it rescans the full text from the start, so repeated passes are
// idempotent.
package extract

import (
	"iter"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/fisworks/fisparse/constants"
	"github.com/fisworks/fisparse/internal/entity"
	"github.com/fisworks/fisparse/internal/numeric"
)

// Plausibility window for receipt dates.
const (
	YearMin = 2020
	YearMax = 2030
)

// Dates yields every DD.MM.YYYY-shaped match that passes the plausibility
// window (day 1-31, month 1-12, year 2020-2030).
func Dates(text string) iter.Seq[entity.Date] {
	return func(yield func(entity.Date) bool) {
		for _, m := range reDate.FindAllStringSubmatch(text, -1) {
			day, _ := strconv.Atoi(m[1])
			month, _ := strconv.Atoi(m[2])
			year, _ := strconv.Atoi(m[3])
			if day < 1 || day > 31 || month < 1 || month > 12 || year < YearMin || year > YearMax {
				continue
			}
			if !yield(entity.Date{Day: day, Month: month, Year: year}) {
				return
			}
		}
	}
}

// Times yields every H:MM / HH:MM match with hour 0-23 and minute 0-59.
func Times(text string) iter.Seq[entity.ClockTime] {
	return func(yield func(entity.ClockTime) bool) {
		for _, m := range reTime.FindAllStringSubmatch(text, -1) {
			hour, _ := strconv.Atoi(m[1])
			minute, _ := strconv.Atoi(m[2])
			if hour > 23 || minute > 59 {
				continue
			}
			if !yield(entity.ClockTime{Hour: hour, Minute: minute}) {
				return
			}
		}
	}
}

// Amounts yields every two-decimal money amount in the text, with optional
// currency markers, parsed to canonical decimals.
func Amounts(text string) iter.Seq[decimal.Decimal] {
	return func(yield func(decimal.Decimal) bool) {
		for _, m := range reMoney.FindAllStringSubmatch(text, -1) {
			d, ok := numeric.Normalize(m[1])
			if !ok {
				continue
			}
			if !yield(d) {
				return
			}
		}
	}
}

// VATLines yields every "KDV %<rate>[:=]<amount>" entry.
func VATLines(text string) iter.Seq[entity.VATEntry] {
	return func(yield func(entity.VATEntry) bool) {
		for _, m := range reVAT.FindAllStringSubmatch(text, -1) {
			rate, _ := strconv.Atoi(m[1])
			amount, ok := numeric.Normalize(m[2])
			if !ok {
				continue
			}
			if !yield(entity.VATEntry{Rate: rate, Amount: amount}) {
				return
			}
		}
	}
}

// ReceiptNumber returns the first labeled receipt/serial number token.
func ReceiptNumber(text string) (string, bool) {
	m := reReceiptNo.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// FiscalNumber returns the first labeled 10-11 digit tax number.
func FiscalNumber(text string) (string, bool) {
	m := reFiscalNo.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Total returns the declared grand total, trying label alternatives in
// priority order (Turkish first).
func Total(text string) (decimal.Decimal, bool) {
	return firstLabeledAmount(text, totalPatterns)
}

// Subtotal returns the declared subtotal.
func Subtotal(text string) (decimal.Decimal, bool) {
	return firstLabeledAmount(text, subtotalPatterns)
}

// DiscountTotal returns the declared discount amount.
func DiscountTotal(text string) (decimal.Decimal, bool) {
	return firstLabeledAmount(text, discountPatterns)
}

func firstLabeledAmount(text string, patterns []*regexp.Regexp) (decimal.Decimal, bool) {
	for _, re := range patterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if d, ok := numeric.Normalize(m[1]); ok {
			return d, true
		}
	}
	return decimal.Decimal{}, false
}

// PaymentMethod scans line by line for a recognizable payment wording and
// returns the canonical method.
func PaymentMethod(text string) (constants.PaymentMethod, bool) {
	for _, line := range strings.Split(text, "\n") {
		if method, ok := constants.CanonicalizePayment(line); ok {
			return method, true
		}
	}
	return "", false
}

// CardCandidate returns the first PAN-looking digit run (12-19 digits,
// separators removed). Validity is the card package's concern.
func CardCandidate(text string) (string, bool) {
	for _, run := range reCardRun.FindAllString(text, -1) {
		digits := strings.Map(func(r rune) rune {
			if r >= '0' && r <= '9' {
				return r
			}
			return -1
		}, run)
		if len(digits) >= 12 && len(digits) <= 19 {
			return digits, true
		}
	}
	return "", false
}

// AddressLines returns the lines that look like address fragments, in
// document order.
func AddressLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if reAddressHint.MatchString(line) {
			out = append(out, line)
		}
	}
	return out
}
