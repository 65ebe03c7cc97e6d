package extract

import "regexp"

// amountPat is the shared two-decimal amount shape: Turkish grouping
// ("1.234,56"), plain comma decimals, or an OCR-flipped dot decimal.
const amountPat = `\d{1,3}(?:\.\d{3})*,\d{2}|\d+[.,]\d{2}`

// trI matches the Turkish i family. (?i) does not fold 'İ' and 'ı' onto
// ASCII i, so keyword patterns spell the class out.
const trI = `[İIiı]`

var (
	reDate  = regexp.MustCompile(`\b(\d{1,2})[./\-](\d{1,2})[./\-](\d{4})\b`)
	reTime  = regexp.MustCompile(`\b(\d{1,2}):(\d{2})\b`)
	reMoney = regexp.MustCompile(`(?:₺\s*)?(` + amountPat + `)(?:\s*(?:₺|TL))?`)
	reVAT   = regexp.MustCompile(`(?i)KDV\s*%\s*(\d{1,2})\s*[:=]?\s*(` + amountPat + `)`)

	// receipt/serial number: Turkish keyword variants then an alphanumeric
	// token of at least 6 characters
	reReceiptNo = regexp.MustCompile(`(?i)(?:F` + trI + `[ŞS]\s*NO|F` + trI + `[ŞS]|SER` + trI + `\s*NO|BELGE\s*NO|Z\s*NO)\s*[:#.]?\s*([A-Za-z0-9]{6,})`)

	// fiscal number: tax-registration keywords then a 10-11 digit token
	reFiscalNo = regexp.MustCompile(`(?i)(?:VKN|TCKN|VERG` + trI + `\s*(?:K` + trI + `ML` + trI + `K\s*)?NO|MERS` + trI + `S\s*NO)\s*[:.]?\s*(\d{10,11})\b`)

	// PAN-looking digit run, possibly space/dash separated
	reCardRun = regexp.MustCompile(`(?:\d[ \-]?){11,18}\d`)

	reAddressHint = regexp.MustCompile(`(?i)\b(?:MAH\.?|MAHALLES` + trI + `|CAD\.?|CADDES` + trI + `|SOK\.?|SOKAK|BULV(?:AR[İIiı]?)?|APT\.?|KAT\s*[:.]?\s*\d|NO\s*[:.]\s*\d|` + trI + `L[ÇC]E)`)
)

// Label alternatives per amount field, Turkish first, English fallback.
// Anchored at line start so "TOPLAM" does not fire on "ARA TOPLAM" rows;
// first satisfied pattern in slice order wins.
var (
	totalPatterns = []*regexp.Regexp{
		labeledAmount(`GENEL\s*TOPLAM`),
		labeledAmount(`TOPLAM`),
		labeledAmount(`TUTAR`),
		labeledAmount(`TOTAL`),
	}
	subtotalPatterns = []*regexp.Regexp{
		labeledAmount(`ARA\s*TOPLAM`),
		labeledAmount(`SUB\s*TOTAL`),
	}
	discountPatterns = []*regexp.Regexp{
		labeledAmount(trI + `ND` + trI + `R` + trI + `M(?:LER)?(?:\s*TOPLAMI)?`),
		labeledAmount(`D` + trI + `SCOUNT`),
	}
)

func labeledAmount(label string) *regexp.Regexp {
	return regexp.MustCompile(`(?im)^[\s*]*(?:` + label + `)\s*[:=]?\s*\*?\s*₺?\s*(` + amountPat + `)`)
}
