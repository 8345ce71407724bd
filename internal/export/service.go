package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/jmcarrillo/docuflow/gen/ent"
	"github.com/jmcarrillo/docuflow/gen/ent/document"
)

// Service produces XLSX bytes for the document register.
type Service struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewService(entc *ent.Client, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{ent: entc, logger: logger}
}

// ExportDocumentsXLSX returns an XLSX workbook (as bytes) listing documents
// created in the given window, newest first.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> all documents.
func (s *Service) ExportDocumentsXLSX(ctx context.Context, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	q := s.ent.Document.Query().
		WithDocumentType().
		WithSuggestedType().
		WithMetadata().
		Order(ent.Desc(document.FieldCreatedAt))
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		q = q.Where(document.CreatedAtGTE(f))
	}
	if to != nil {
		// inclusive upper bound: strictly before the next day
		t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
		q = q.Where(document.CreatedAtLT(t))
	}

	docs, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Documents"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Created",
		"Title",
		"Type",
		"Status",
		"Suggested Type",
		"Score",
		"OCR",
		"Reference",
		"Amount",
		"Main Date",
		"Parties",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, d := range docs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, d.CreatedAt.UTC().Format("2006-01-02"))
		write(2, d.Title)
		if d.Edges.DocumentType != nil {
			write(3, d.Edges.DocumentType.Code)
		}
		write(4, d.Status)
		if d.Edges.SuggestedType != nil {
			write(5, d.Edges.SuggestedType.Code)
		}
		if d.SuggestedScore != nil {
			write(6, fmt.Sprintf("%.2f", *d.SuggestedScore))
		}
		if d.IsOcr {
			write(7, "yes")
		} else {
			write(7, "no")
		}
		if md := d.Edges.Metadata; md != nil {
			write(8, md.ReferenceNumber)
			if md.Amount != nil {
				write(9, md.Amount.StringFixed(2))
			}
			if md.DateMain != nil {
				write(10, md.DateMain.Format("2006-01-02"))
			}
			write(11, truncate(md.Parties, 140))
		}

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 12) // created
	_ = f.SetColWidth(sheet, "B", "B", 36) // title
	_ = f.SetColWidth(sheet, "C", "E", 16) // type columns
	_ = f.SetColWidth(sheet, "H", "H", 20) // reference
	_ = f.SetColWidth(sheet, "K", "K", 48) // parties

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(docs),
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
