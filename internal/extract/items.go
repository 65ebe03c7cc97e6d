package extract

import (
	"regexp"
	"strings"

	"github.com/fisworks/fisparse/internal/entity"
	"github.com/fisworks/fisparse/internal/numeric"
)

var (
	// item row: description then a trailing amount, with the optional VAT
	// letter flag some POS printers add after the price
	reItemLine = regexp.MustCompile(`^(.+?)\s+\*?\s*₺?\s*(` + amountPat + `)\s*₺?\s*[%*]?[A-Z]?$`)

	// leading quantity, optionally with a vocabulary unit or an "x" marker:
	// "2 ADET EKMEK", "0,450 KG DOMATES", "3 x SU"
	reQtyLead = regexp.MustCompile(`(?i)^(\d+(?:[.,]\d+)?)\s*(adet|ad|kg|gr|g|lt|l|ml|cl|paket|pk|kutu)?\.?\s*[x×]?\s+(\S.*)$`)

	// rows that carry an amount but are not purchases
	itemExclude = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^[\s*]*(?:GENEL\s*TOPLAM|TOPLAM|ARA\s*TOPLAM|TUTAR|TOTAL|SUB\s*TOTAL|TOPKDV|KDV|NAK` + trI + `T|KRED` + trI + `|BANKA|TEMASSIZ|PARA\s*[ÜU]ST[ÜU]|[ÖO]DENEN|` + trI + `ND` + trI + `R` + trI + `M|D` + trI + `SCOUNT|KASA|KAS` + trI + `YER|TE[ŞS]EKK[ÜU]R)`),
		regexp.MustCompile(`(?i)\b(?:TEL|FAX|TLF)\b`),
		regexp.MustCompile(`^\s*[-=*_.#]+\s*$`),
		regexp.MustCompile(`^\s*\d{1,2}[./\-]\d{1,2}[./\-]\d{4}(?:\s+\d{1,2}:\d{2}(?::\d{2})?)?\s*$`),
		regexp.MustCompile(`^\s*\d{1,2}:\d{2}(?::\d{2})?\s*$`),
	}
)

// Items scans the text line by line and returns purchase rows in document
// order: a description, an optional leading quantity/unit, and the line
// total. Best effort; lossy extraction is expected and the pipeline's
// tolerance check absorbs it.
func Items(text string) []entity.LineItem {
	var items []entity.LineItem
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || excludedItemLine(line) {
			continue
		}
		m := reItemLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		total, ok := numeric.Normalize(m[2])
		if !ok || total.IsNegative() || total.IsZero() {
			continue
		}
		item := entity.LineItem{Description: cleanDescription(m[1]), LineTotal: total}
		if qm := reQtyLead.FindStringSubmatch(item.Description); qm != nil {
			if qu, ok := numeric.ParseQuantityUnit(qm[1] + " " + qm[2]); ok {
				qty := qu.Qty
				item.Qty = &qty
				item.Unit = qu.Unit
				item.Description = cleanDescription(qm[3])
			}
		}
		if item.Description == "" {
			continue
		}
		items = append(items, item)
	}
	return items
}

func excludedItemLine(line string) bool {
	for _, re := range itemExclude {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

func cleanDescription(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, ".,;:*-_")
	return strings.TrimSpace(s)
}
