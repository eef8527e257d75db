package schedule

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// HistoryPDF renders an employee's schedule history as a PDF document.
func (s *Service) HistoryPDF(ctx context.Context, employeeNumber string) ([]byte, error) {
	items, err := s.ScheduleHistory(ctx, employeeNumber)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Schedule history")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", employeeNumber))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Generated: %s", time.Now().Format(dateLayout)))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(40, 8, "Start", "1", 0, "", false, 0, "")
	pdf.CellFormat(40, 8, "End", "1", 0, "", false, 0, "")
	pdf.CellFormat(70, 8, "Schedule code", "1", 0, "", false, 0, "")
	pdf.CellFormat(30, 8, "Status", "1", 1, "", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	for _, item := range items {
		end := "-"
		if item.EndDate != nil {
			end = *item.EndDate
		}
		pdf.CellFormat(40, 8, item.StartDate, "1", 0, "", false, 0, "")
		pdf.CellFormat(40, 8, end, "1", 0, "", false, 0, "")
		pdf.CellFormat(70, 8, item.ScheduleCode, "1", 0, "", false, 0, "")
		pdf.CellFormat(30, 8, item.Status, "1", 1, "", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
