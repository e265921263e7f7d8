package dbmodels

import (
	"time"

	"staffhub-backend/models"
	timesheetapimodels "staffhub-backend/models/api/timesheet"
)

type Timesheet struct {
	BaseModel
	UserID      string `gorm:"index"`
	User        *User  `gorm:"foreignKey:UserID"`
	PeriodStart time.Time
	PeriodEnd   time.Time

	TotalHours float64
	BreakHours float64

	Status          models.TimesheetStatus `gorm:"type:varchar(20);index"`
	SubmittedAt     *time.Time
	ReviewedBy      string
	ReviewedAt      *time.Time
	RejectionReason string `gorm:"type:varchar(500)"`

	ExportFileID string
}

func (r Timesheet) ToModel() timesheetapimodels.TimesheetView {
	view := timesheetapimodels.TimesheetView{
		ID:              r.ID,
		UserID:          r.UserID,
		PeriodStart:     r.PeriodStart,
		PeriodEnd:       r.PeriodEnd,
		TotalHours:      r.TotalHours,
		BreakHours:      r.BreakHours,
		Status:          r.Status,
		SubmittedAt:     r.SubmittedAt,
		ReviewedBy:      r.ReviewedBy,
		ReviewedAt:      r.ReviewedAt,
		RejectionReason: r.RejectionReason,
		ExportFileID:    r.ExportFileID,
	}
	if r.User != nil {
		view.UserName = r.User.GetFullName()
	}
	return view
}
