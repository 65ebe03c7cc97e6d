package constants

import "strings"

// Units receipts commonly print after a quantity. Lowercase, trimmed.
var allUnits = []string{
	"adet",
	"ad",
	"kg",
	"gr",
	"g",
	"lt",
	"l",
	"ml",
	"cl",
	"paket",
	"pk",
	"kutu",
	"şişe",
}

func UnitsAsStringSlice() []string {
	result := make([]string, len(allUnits))
	copy(result, allUnits)
	return result
}

// IsUnit reports whether token is part of the quantity-unit vocabulary.
func IsUnit(token string) bool {
	normalized := strings.ToLower(strings.TrimSpace(token))
	if normalized == "" {
		return false
	}
	// trailing dot as in "ad." or "pk."
	normalized = strings.TrimSuffix(normalized, ".")
	for _, u := range allUnits {
		if normalized == u {
			return true
		}
	}
	return false
}
