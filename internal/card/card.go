// Package card validates candidate payment-card numbers, infers the card
// scheme and produces masked display forms. Full card numbers never survive
// past masking.
package card

import "strings"

// Card schemes recognized by DetectScheme.
const (
	SchemeVisa       = "VISA"
	SchemeMastercard = "MASTERCARD"
	SchemeAmex       = "AMEX"
	SchemeDiscover   = "DISCOVER"
)

const minPANDigits = 12

// digitsOnly keeps 0-9 and drops everything else.
func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

// LuhnValid reports whether the candidate passes the Luhn checksum. Inputs
// with fewer than 12 digits are always invalid.
func LuhnValid(number string) bool {
	digits := digitsOnly(number)
	if len(digits) < minPANDigits {
		return false
	}
	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// DetectScheme classifies by issuer prefix. Heuristic, not authoritative:
// unknown prefixes return false.
func DetectScheme(number string) (string, bool) {
	digits := digitsOnly(number)
	switch {
	case digits == "":
		return "", false
	case strings.HasPrefix(digits, "4"):
		return SchemeVisa, true
	case strings.HasPrefix(digits, "5"), strings.HasPrefix(digits, "2"):
		return SchemeMastercard, true
	case strings.HasPrefix(digits, "34"), strings.HasPrefix(digits, "37"):
		return SchemeAmex, true
	case strings.HasPrefix(digits, "6011"), strings.HasPrefix(digits, "65"):
		return SchemeDiscover, true
	}
	return "", false
}

// Mask produces the display form keeping only the last four digits. A
// 16-digit PAN masks in four-character blocks, anything else as one masked
// block plus the last four. Candidates under 12 digits are rejected.
func Mask(number string) (string, bool) {
	digits := digitsOnly(number)
	if len(digits) < minPANDigits {
		return "", false
	}
	last4 := digits[len(digits)-4:]
	if len(digits) == 16 {
		return "**** **** **** " + last4, true
	}
	return strings.Repeat("*", len(digits)-4) + last4, true
}
