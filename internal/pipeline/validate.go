package pipeline

import (
	"fmt"

	"github.com/fisworks/fisparse/internal/common"
	"github.com/fisworks/fisparse/internal/entity"
)

// check runs the cross-field rules. Errors invalidate the record (caller
// must reject); warnings only lower confidence — OCR line-item extraction is
// lossy by nature, so a total mismatch alone is not fatal.
func (p *Parser) check(r *entity.ParsedReceipt) (errs, warns []string) {
	v := common.NewValidator()
	v.Field("merchant", r.MerchantRaw, common.Required, common.MaxLength(120))
	if r.Total == nil {
		v.Field("total", r.Total, common.Required)
	} else {
		v.Field("total", r.Total, common.PositiveAmount)
	}
	if r.Date != nil {
		v.Field("date", r.Date.ISO(), common.ISODate)
	}
	errs = v.Messages()

	if r.Date == nil {
		warns = append(warns, "no purchase date found")
	}
	if r.Total != nil && r.Total.GreaterThan(p.cfg.MaxPlausibleTotal) {
		warns = append(warns, fmt.Sprintf("total %s exceeds plausible ceiling %s",
			r.Total.StringFixed(2), p.cfg.MaxPlausibleTotal.StringFixed(2)))
	}
	if r.Total != nil && len(r.Items) > 0 {
		diff := r.ItemSum().Sub(*r.Total).Abs()
		if diff.GreaterThan(p.cfg.TotalTolerance) {
			warns = append(warns, fmt.Sprintf("item sum %s differs from declared total %s by %s",
				r.ItemSum().StringFixed(2), r.Total.StringFixed(2), diff.StringFixed(2)))
		}
	}
	return errs, warns
}
