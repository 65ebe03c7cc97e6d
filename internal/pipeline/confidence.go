package pipeline

import (
	"regexp"

	"github.com/fisworks/fisparse/internal/entity"
)

var (
	reDateHint   = regexp.MustCompile(`\b\d{1,2}[./\-]\d{1,2}[./\-]20\d{2}\b`)
	reCurrHint   = regexp.MustCompile(`(?i)₺|\bTL\b|\bKDV\b`)
	reAmountHint = regexp.MustCompile(`\d+[.,]\d{2}`)
)

// confidence is a monotonically decreasing function of the warning count:
// base minus WarningPenalty per warning, clamped to [0,1]. Any hard error
// zeroes it. The base comes from OCR engine metadata when the provider
// supplied it, otherwise from text-shape heuristics.
func (p *Parser) confidence(r *entity.ParsedReceipt, text string, meta *entity.OCRMetadata) float64 {
	if len(r.Errors) > 0 {
		return 0
	}
	base := heuristicBase(text)
	if meta != nil && meta.Confidence > 0 {
		base = min(meta.Confidence, 1.0)
	}
	score := base - p.cfg.WarningPenalty*float64(len(r.Warnings))
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// heuristicBase scores how receipt-shaped the text looks: date-ish,
// currency-ish and amount-ish artifacts each add a share.
func heuristicBase(text string) float64 {
	score := 0.3
	if reDateHint.MatchString(text) {
		score += 0.2
	}
	if reCurrHint.MatchString(text) {
		score += 0.2
	}
	if reAmountHint.MatchString(text) {
		score += 0.15
	}
	if len(text) > 120 {
		score += 0.15
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}
