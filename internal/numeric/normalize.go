// Package numeric repairs OCR digit artifacts and parses Turkish-locale
// numeric and currency tokens into canonical decimal values.
package numeric

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/fisworks/fisparse/constants"
	"github.com/fisworks/fisparse/internal/entity"
)

var (
	reCurrency     = regexp.MustCompile(`(?i)₺|\bTRY\b|\bTL\b`)
	reThousands    = regexp.MustCompile(`^\d{1,3}(?:\.\d{3})+$`)
	reFlippedMoney = regexp.MustCompile(`^\d+\.\d{2}$`)
	reMoneyShape   = regexp.MustCompile(`^\d{1,3}(?:\.\d{3})*,\d{2}$|^\d+[.,]\d{2}$`)
	reQtyUnit      = regexp.MustCompile(`^\s*(\d+(?:[.,]\d+)?)\s*([\p{L}.]+)?`)
)

// ocrDigitFixes maps characters OCR engines commonly misread inside numbers.
var ocrDigitFixes = map[rune]rune{
	'O': '0', 'o': '0',
	'I': '1', 'l': '1', '|': '1',
	'S': '5', 's': '5',
	'B': '8',
}

// FixOCRDigits substitutes common digit confusions, but only when the token
// is numeric-looking (more digits than letters). Ordinary words come back
// untouched.
func FixOCRDigits(token string) string {
	if !looksNumeric(token) {
		return token
	}
	return strings.Map(func(r rune) rune {
		if fixed, ok := ocrDigitFixes[r]; ok {
			return fixed
		}
		return r
	}, token)
}

func looksNumeric(token string) bool {
	digits, letters := 0, 0
	for _, r := range token {
		switch {
		case unicode.IsDigit(r):
			digits++
		case unicode.IsLetter(r):
			letters++
		}
	}
	return digits > 0 && digits > letters
}

// Normalize parses a Turkish-locale numeric token: "." is a thousands
// separator, "," the decimal separator. Currency markers and whitespace are
// stripped first. A dot followed by exactly two digits is accepted as an
// OCR-flipped decimal separator. Returns false for anything unparseable.
func Normalize(text string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(text)
	if s == "" {
		return decimal.Decimal{}, false
	}
	s = reCurrency.ReplaceAllString(s, "")
	s = strings.Join(strings.Fields(s), "")
	s = FixOCRDigits(s)

	hasComma := strings.Contains(s, ",")
	hasDot := strings.Contains(s, ".")
	switch {
	case hasComma && hasDot:
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case hasComma:
		s = strings.Replace(s, ",", ".", 1)
	case hasDot && reThousands.MatchString(s):
		s = strings.ReplaceAll(s, ".", "")
	case hasDot && !reFlippedMoney.MatchString(s):
		// more than one dot, or a fraction that is neither a thousands
		// group nor a two-digit decimal: not a Turkish number
		if strings.Count(s, ".") > 1 {
			return decimal.Decimal{}, false
		}
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// IsMoney reports whether text has a money-like shape: exactly two fraction
// digits after normalization. Plain integers are not money.
func IsMoney(text string) bool {
	s := strings.TrimSpace(text)
	s = reCurrency.ReplaceAllString(s, "")
	s = strings.Join(strings.Fields(s), "")
	s = FixOCRDigits(s)
	return reMoneyShape.MatchString(s)
}

// ParseQuantityUnit extracts a leading decimal quantity and an optional unit
// from the fixed vocabulary. ok is false when no quantity is present, so
// callers can tell "no quantity" apart from zero.
func ParseQuantityUnit(text string) (entity.QuantityUnit, bool) {
	m := reQtyUnit.FindStringSubmatch(text)
	if m == nil {
		return entity.QuantityUnit{}, false
	}
	qty, ok := Normalize(m[1])
	if !ok {
		return entity.QuantityUnit{}, false
	}
	qu := entity.QuantityUnit{Qty: qty}
	if m[2] != "" && constants.IsUnit(m[2]) {
		qu.Unit = strings.ToLower(strings.TrimSuffix(strings.TrimSpace(m[2]), "."))
	}
	return qu, true
}
