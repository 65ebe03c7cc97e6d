package constants

import "strings"

type PaymentMethod string

const (
	PaymentCash        PaymentMethod = "CASH"
	PaymentCreditCard  PaymentMethod = "CREDIT_CARD"
	PaymentDebitCard   PaymentMethod = "DEBIT_CARD"
	PaymentContactless PaymentMethod = "CONTACTLESS"
	PaymentMealCard    PaymentMethod = "MEAL_CARD"
)

// paymentSynonyms maps lowercase receipt wordings to canonical methods.
// Turkish variants first; POS vendors mix in English now and then.
var paymentSynonyms = map[string]PaymentMethod{
	"nakit":       PaymentCash,
	"nakit odeme": PaymentCash,
	"pesin":       PaymentCash,
	"cash":        PaymentCash,
	"kredi karti": PaymentCreditCard,
	"kredi":       PaymentCreditCard,
	"credit card": PaymentCreditCard,
	"banka karti": PaymentDebitCard,
	"debit":       PaymentDebitCard,
	"temassiz":    PaymentContactless,
	"contactless": PaymentContactless,
	"yemek karti": PaymentMealCard,
	"sodexo":      PaymentMealCard,
	"multinet":    PaymentMealCard,
	"ticket":      PaymentMealCard,
	"setcard":     PaymentMealCard,
}

// CanonicalizePayment maps a payment fragment from the receipt to a canonical
// method. Matching is by substring so "KREDİ KARTI ****1234" still resolves.
func CanonicalizePayment(input string) (PaymentMethod, bool) {
	normalized := foldPayment(input)
	if normalized == "" {
		return "", false
	}
	best := ""
	var bestMethod PaymentMethod
	for syn, method := range paymentSynonyms {
		if strings.Contains(normalized, syn) && len(syn) > len(best) {
			best = syn
			bestMethod = method
		}
	}
	if best == "" {
		return "", false
	}
	return bestMethod, true
}

// foldPayment lowercases and strips Turkish diacritics so that receipt
// spellings like "KREDİ KARTI" and "KREDI KARTI" normalize identically.
func foldPayment(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	replacer := strings.NewReplacer(
		"ı", "i", "İ", "i", "̇", "",
		"ş", "s", "ç", "c", "ğ", "g", "ö", "o", "ü", "u",
	)
	return replacer.Replace(s)
}
