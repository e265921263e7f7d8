package pdfexport

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"

	dbmodels "staffhub-backend/models/db"
)

var columnWidths = []float64{24, 18, 18, 18, 16, 30, 30, 16, 20}

var columnTitles = []string{"Date", "In", "Out", "Break", "Hours", "Job", "Program", "Rate", "Amount"}

// GenerateTimesheet renders a payroll PDF for one timesheet.
func GenerateTimesheet(ts dbmodels.Timesheet, entries []dbmodels.TimeEntry) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateTimesheet panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	title := "Timesheet"
	if ts.User != nil {
		title = fmt.Sprintf("Timesheet - %s", ts.User.GetFullName())
	}
	pdf.CellFormat(0, 10, title, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Period: %s - %s",
		ts.PeriodStart.Format("2006-01-02"), ts.PeriodEnd.Format("2006-01-02")), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 9)
	for idx, header := range columnTitles {
		pdf.CellFormat(columnWidths[idx], 7, header, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, entry := range entries {
		clockOut := ""
		if entry.ClockOut != nil {
			clockOut = entry.ClockOut.Format("15:04")
		}
		hours := entry.WorkedHours()
		cells := []string{
			entry.ClockIn.Format("2006-01-02"),
			entry.ClockIn.Format("15:04"),
			clockOut,
			fmt.Sprintf("%d", entry.BreakMinutes),
			fmt.Sprintf("%.2f", hours),
			entry.JobName,
			entry.Program,
			fmt.Sprintf("%.2f", entry.HourlyRate),
			fmt.Sprintf("%.2f", hours*entry.HourlyRate),
		}
		for idx, cell := range cells {
			pdf.CellFormat(columnWidths[idx], 6, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 7, fmt.Sprintf("Total hours: %.2f", ts.TotalHours), "", 1, "L", false, 0, "")

	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
