package xlsexport

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	dbmodels "staffhub-backend/models/db"
)

type Provider interface {
	ExportTimesheet(ts dbmodels.Timesheet, entries []dbmodels.TimeEntry) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var timesheetHeaders = []string{"Date", "Clock in", "Clock out", "Break (min)", "Hours", "Job", "Program", "Rate", "Amount", "Status"}

func (i impl) ExportTimesheet(ts dbmodels.Timesheet, entries []dbmodels.TimeEntry) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("failed to close xlsx file")
		}
	}()
	sheet := "Sheet1"
	row := 0

	title := "Timesheet"
	if ts.User != nil {
		title = fmt.Sprintf("Timesheet - %s", ts.User.GetFullName())
	}
	if err := writeColumn(f, sheet, 1, 1, title); err != nil {
		return nil, errors.Wrap(err, "failed to write xlsx title")
	}
	if err := writeColumn(f, sheet, 1, 2, fmt.Sprintf("Period: %s - %s",
		ts.PeriodStart.Format("2006-01-02"), ts.PeriodEnd.Format("2006-01-02"))); err != nil {
		return nil, errors.Wrap(err, "failed to write xlsx period")
	}
	row = 3

	row, err := writeHeader(f, sheet, row, timesheetHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "failed to write xlsx header")
	}
	if len(entries) != 0 {
		row, err = writeEntryData(f, sheet, entries, row)
		if err != nil {
			return nil, errors.Wrap(err, "failed to write xlsx data table")
		}
	}
	row += 2
	if err = writeColumn(f, sheet, 1, row, "Total hours"); err != nil {
		return nil, err
	}
	if err = writeColumn(f, sheet, 2, row, ts.TotalHours); err != nil {
		return nil, err
	}
	f.SetSheetName(sheet, "Timesheet")
	return f.WriteToBuffer()
}

func writeEntryData(f *excelize.File, sheet string, entries []dbmodels.TimeEntry, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(timesheetHeaders), row+len(entries)); err != nil {
		return row, err
	}
	for _, entry := range entries {
		row++

		// "Date"
		col := 1
		if err := writeColumn(f, sheet, col, row, entry.ClockIn.Format("2006-01-02")); err != nil {
			return row, err
		}

		// "Clock in"
		col++
		if err := writeColumn(f, sheet, col, row, entry.ClockIn.Format("15:04")); err != nil {
			return row, err
		}

		// "Clock out"
		col++
		if entry.ClockOut != nil {
			if err := writeColumn(f, sheet, col, row, entry.ClockOut.Format("15:04")); err != nil {
				return row, err
			}
		}

		// "Break (min)"
		col++
		if err := writeColumn(f, sheet, col, row, entry.BreakMinutes); err != nil {
			return row, err
		}

		// "Hours"
		col++
		hours := entry.WorkedHours()
		if err := writeColumn(f, sheet, col, row, hours); err != nil {
			return row, err
		}

		// "Job"
		col++
		if err := writeColumn(f, sheet, col, row, entry.JobName); err != nil {
			return row, err
		}

		// "Program"
		col++
		if err := writeColumn(f, sheet, col, row, entry.Program); err != nil {
			return row, err
		}

		// "Rate"
		col++
		if err := writeColumn(f, sheet, col, row, entry.HourlyRate); err != nil {
			return row, err
		}

		// "Amount"
		col++
		if err := writeColumn(f, sheet, col, row, hours*entry.HourlyRate); err != nil {
			return row, err
		}

		// "Status"
		col++
		if err := writeColumn(f, sheet, col, row, string(entry.Status)); err != nil {
			return row, err
		}
	}
	return row, nil
}
