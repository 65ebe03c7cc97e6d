// Package export renders batches of parse results as XLSX workbooks.
package export

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/fisworks/fisparse/internal/common"
	"github.com/fisworks/fisparse/internal/entity"
)

// Row is one parsed receipt in a batch run.
type Row struct {
	ID         uuid.UUID
	SourcePath string
	Receipt    *entity.ParsedReceipt
}

// Service produces XLSX bytes for batch exports.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// ReceiptsXLSX returns an XLSX workbook (as bytes) with one row per parse
// result.
func (s *Service) ReceiptsXLSX(rows []Row) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	const sheet = "Receipts"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Source",
		"Merchant",
		"Chain",
		"Date",
		"Time",
		"Total",
		"VAT Total",
		"Items",
		"Payment",
		"Confidence",
		"Valid",
		"Warnings",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	rowNum := 2
	for _, row := range rows {
		r := row.Receipt
		if r == nil {
			continue
		}

		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, rowNum)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, row.SourcePath)
		write(2, r.MerchantRaw)
		write(3, r.MerchantChain)
		if r.Date != nil {
			write(4, r.Date.ISO())
		}
		if r.Time != nil {
			write(5, r.Time.String())
		}
		if r.Total != nil {
			write(6, r.Total.StringFixed(2))
		}
		if r.VATTotal != nil {
			write(7, r.VATTotal.StringFixed(2))
		}
		write(8, len(r.Items))
		write(9, r.PaymentMethod)
		write(10, fmt.Sprintf("%.2f", r.Confidence))
		write(11, r.Valid)
		write(12, truncate(strings.Join(r.Warnings, "; "), 200))

		rowNum++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 40) // source path
	_ = f.SetColWidth(sheet, "B", "C", 24) // merchant
	_ = f.SetColWidth(sheet, "D", "E", 12) // date, time
	_ = f.SetColWidth(sheet, "F", "G", 12) // amounts
	_ = f.SetColWidth(sheet, "L", "L", 60) // warnings

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, common.WrapError(err, "xlsx write")
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(rows),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
