package dbmodels

import (
	"time"

	"staffhub-backend/models"
	timeapimodels "staffhub-backend/models/api/timeentry"
)

type TimeEntry struct {
	BaseModel
	UserID  string `gorm:"index"`
	User    *User  `gorm:"foreignKey:UserID"`
	ShiftID string `gorm:"index"`

	ClockIn  time.Time
	ClockOut *time.Time

	Status         models.TimeEntryStatus `gorm:"type:varchar(20);index"`
	ApprovalStatus models.ApprovalStatus  `gorm:"type:varchar(20);index"`

	// Locked is set by payroll export; a locked entry rejects every
	// mutation except a solo unlock by an admin.
	Locked bool

	// Pre-edit snapshots used to revert a rejected self-edit.
	OriginalClockIn  *time.Time
	OriginalClockOut *time.Time

	BreakMinutes    int
	JobName         string  `gorm:"type:varchar(150)"`
	Program         string  `gorm:"type:varchar(150)"`
	HourlyRate      float64
	RejectionReason string     `gorm:"type:varchar(500)"`
	PhotoFileIDs    StringList `gorm:"type:jsonb"`
}

// WorkedHours is the paid span in hours: clock-out minus clock-in minus
// break, never negative. Zero while the entry is still active.
func (r TimeEntry) WorkedHours() float64 {
	if r.ClockOut == nil {
		return 0
	}
	worked := r.ClockOut.Sub(r.ClockIn) - time.Duration(r.BreakMinutes)*time.Minute
	if worked < 0 {
		return 0
	}
	return worked.Hours()
}

func (r TimeEntry) ToModel() timeapimodels.TimeEntryView {
	view := timeapimodels.TimeEntryView{
		ID:              r.ID,
		UserID:          r.UserID,
		ShiftID:         r.ShiftID,
		ClockIn:         r.ClockIn,
		ClockOut:        r.ClockOut,
		Status:          r.Status,
		ApprovalStatus:  r.ApprovalStatus,
		Locked:          r.Locked,
		BreakMinutes:    r.BreakMinutes,
		JobName:         r.JobName,
		Program:         r.Program,
		HourlyRate:      r.HourlyRate,
		RejectionReason: r.RejectionReason,
		PhotoFileIDs:    r.PhotoFileIDs,
	}
	if r.User != nil {
		view.UserName = r.User.GetFullName()
	}
	return view
}
