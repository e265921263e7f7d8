package shiftapimodels

import (
	"time"

	apimodels "staffhub-backend/models/api"

	"github.com/pkg/errors"
)

type ScheduleData struct {
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
}

func (r ScheduleData) Validate() error {
	if r.Name == "" {
		return errors.New("schedule name is required")
	}
	if r.EndDate.Before(r.StartDate) {
		return errors.New("end date must not be before start date")
	}
	return nil
}

type ScheduleView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
}

type TemplateData struct {
	Name       string  `json:"name"`
	JobName    string  `json:"job_name"`
	Program    string  `json:"program,omitempty"`
	StartTime  string  `json:"start_time"`
	EndTime    string  `json:"end_time"`
	Location   string  `json:"location,omitempty"`
	HourlyRate float64 `json:"hourly_rate,omitempty"`
}

func (r TemplateData) Validate() error {
	if r.Name == "" {
		return errors.New("template name is required")
	}
	if _, err := time.Parse("15:04", r.StartTime); err != nil {
		return errors.New("start time must be HH:MM")
	}
	if _, err := time.Parse("15:04", r.EndTime); err != nil {
		return errors.New("end time must be HH:MM")
	}
	return nil
}

type TemplateView struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	JobName    string  `json:"job_name"`
	Program    string  `json:"program,omitempty"`
	StartTime  string  `json:"start_time"`
	EndTime    string  `json:"end_time"`
	Location   string  `json:"location,omitempty"`
	HourlyRate float64 `json:"hourly_rate,omitempty"`
}

type ShiftData struct {
	ScheduleID string    `json:"schedule_id,omitempty"`
	TemplateID string    `json:"template_id,omitempty"`
	JobName    string    `json:"job_name"`
	Program    string    `json:"program,omitempty"`
	Location   string    `json:"location,omitempty"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	HourlyRate float64   `json:"hourly_rate,omitempty"`
	Notes      string    `json:"notes,omitempty"`
}

func (r ShiftData) Validate() error {
	if r.StartTime.IsZero() || r.EndTime.IsZero() {
		return errors.New("start and end time are required")
	}
	if !r.EndTime.After(r.StartTime) {
		return errors.New("end time must be after start time")
	}
	return nil
}

type ShiftView struct {
	ID                string    `json:"id"`
	ScheduleID        string    `json:"schedule_id,omitempty"`
	TemplateID        string    `json:"template_id,omitempty"`
	JobName           string    `json:"job_name"`
	Program           string    `json:"program,omitempty"`
	Location          string    `json:"location,omitempty"`
	StartTime         time.Time `json:"start_time"`
	EndTime           time.Time `json:"end_time"`
	HourlyRate        float64   `json:"hourly_rate,omitempty"`
	Notes             string    `json:"notes,omitempty"`
	AttachmentFileIDs []string  `json:"attachment_file_ids,omitempty"`
}

type ShiftFilter struct {
	apimodels.Pagination
	ScheduleID *string    `json:"schedule_id,omitempty"`
	UserID     *string    `json:"user_id,omitempty"`
	From       *time.Time `json:"from,omitempty"`
	To         *time.Time `json:"to,omitempty"`
}

func (r ShiftFilter) Validate() error {
	if r.From != nil && r.To != nil && r.To.Before(*r.From) {
		return errors.New("'to' must not be before 'from'")
	}
	return nil
}

type AssignRequest struct {
	UserID string `json:"user_id"`
}

func (r AssignRequest) Validate() error {
	if r.UserID == "" {
		return errors.New("user id is required")
	}
	return nil
}

type AssignmentFilter struct {
	ShiftID string `json:"shift_id,omitempty"`
}

type AssignmentView struct {
	ID        string     `json:"id"`
	ShiftID   string     `json:"shift_id"`
	UserID    string     `json:"user_id"`
	Confirmed bool       `json:"confirmed"`
	Shift     *ShiftView `json:"shift,omitempty"`
}

type AvailabilityData struct {
	DayOfWeek int    `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Available bool   `json:"available"`
	Note      string `json:"note,omitempty"`
}

func (r AvailabilityData) Validate() error {
	if r.DayOfWeek < 0 || r.DayOfWeek > 6 {
		return errors.New("day of week must be 0-6")
	}
	if _, err := time.Parse("15:04", r.StartTime); err != nil {
		return errors.New("start time must be HH:MM")
	}
	if _, err := time.Parse("15:04", r.EndTime); err != nil {
		return errors.New("end time must be HH:MM")
	}
	return nil
}

type AvailabilityFilter struct {
	UserID string `json:"user_id,omitempty"`
}

type AvailabilityView struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	DayOfWeek int    `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Available bool   `json:"available"`
	Note      string `json:"note,omitempty"`
}
