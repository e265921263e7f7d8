package dbmodels

import (
	"time"

	shiftapimodels "staffhub-backend/models/api/shift"
)

type Schedule struct {
	BaseModel
	Name        string `gorm:"type:varchar(255)"`
	Description string `gorm:"type:varchar(1000)"`
	StartDate   time.Time
	EndDate     time.Time
	CreatedBy   string
}

type ShiftTemplate struct {
	BaseModel
	Name       string `gorm:"type:varchar(255)"`
	JobName    string `gorm:"type:varchar(150)"`
	Program    string `gorm:"type:varchar(150)"`
	StartTime  string `gorm:"type:varchar(5)"` // HH:MM
	EndTime    string `gorm:"type:varchar(5)"`
	Location   string `gorm:"type:varchar(255)"`
	HourlyRate float64
}

type Shift struct {
	BaseModel
	ScheduleID string `gorm:"index"`
	TemplateID string
	JobName    string `gorm:"type:varchar(150)"`
	Program    string `gorm:"type:varchar(150)"`
	Location   string `gorm:"type:varchar(255)"`
	StartTime  time.Time
	EndTime    time.Time
	HourlyRate float64
	Notes      string `gorm:"type:varchar(1000)"`

	AttachmentFileIDs StringList `gorm:"type:jsonb"`
}

type ShiftAssignment struct {
	BaseModel
	ShiftID   string `gorm:"index"`
	Shift     *Shift `gorm:"foreignKey:ShiftID"`
	UserID    string `gorm:"index"`
	Confirmed bool
}

type UserAvailability struct {
	BaseModel
	UserID    string `gorm:"index"`
	DayOfWeek int    // 0 = Sunday
	StartTime string `gorm:"type:varchar(5)"`
	EndTime   string `gorm:"type:varchar(5)"`
	Available bool
	Note      string `gorm:"type:varchar(500)"`
}

func (r Shift) ToModel() shiftapimodels.ShiftView {
	return shiftapimodels.ShiftView{
		ID:                r.ID,
		ScheduleID:        r.ScheduleID,
		TemplateID:        r.TemplateID,
		JobName:           r.JobName,
		Program:           r.Program,
		Location:          r.Location,
		StartTime:         r.StartTime,
		EndTime:           r.EndTime,
		HourlyRate:        r.HourlyRate,
		Notes:             r.Notes,
		AttachmentFileIDs: r.AttachmentFileIDs,
	}
}

func (r ShiftAssignment) ToModel() shiftapimodels.AssignmentView {
	view := shiftapimodels.AssignmentView{
		ID:        r.ID,
		ShiftID:   r.ShiftID,
		UserID:    r.UserID,
		Confirmed: r.Confirmed,
	}
	if r.Shift != nil {
		shift := r.Shift.ToModel()
		view.Shift = &shift
	}
	return view
}

func (r Schedule) ToModel() shiftapimodels.ScheduleView {
	return shiftapimodels.ScheduleView{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
	}
}

func (r ShiftTemplate) ToModel() shiftapimodels.TemplateView {
	return shiftapimodels.TemplateView{
		ID:         r.ID,
		Name:       r.Name,
		JobName:    r.JobName,
		Program:    r.Program,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
		Location:   r.Location,
		HourlyRate: r.HourlyRate,
	}
}

func (r UserAvailability) ToModel() shiftapimodels.AvailabilityView {
	return shiftapimodels.AvailabilityView{
		ID:        r.ID,
		UserID:    r.UserID,
		DayOfWeek: r.DayOfWeek,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Available: r.Available,
		Note:      r.Note,
	}
}
