package timesheetapimodels

import (
	"time"

	"staffhub-backend/models"
	apimodels "staffhub-backend/models/api"

	"github.com/pkg/errors"
)

type GenerateRequest struct {
	UserID      string    `json:"user_id,omitempty"`
	PeriodStart time.Time `json:"period_start"`
	PeriodEnd   time.Time `json:"period_end"`
}

func (r GenerateRequest) Validate() error {
	if r.PeriodStart.IsZero() || r.PeriodEnd.IsZero() {
		return errors.New("period start and end are required")
	}
	if !r.PeriodEnd.After(r.PeriodStart) {
		return errors.New("period end must be after period start")
	}
	return nil
}

type TimesheetView struct {
	ID              string                 `json:"id"`
	UserID          string                 `json:"user_id"`
	UserName        string                 `json:"user_name,omitempty"`
	PeriodStart     time.Time              `json:"period_start"`
	PeriodEnd       time.Time              `json:"period_end"`
	TotalHours      float64                `json:"total_hours"`
	BreakHours      float64                `json:"break_hours"`
	Status          models.TimesheetStatus `json:"status"`
	SubmittedAt     *time.Time             `json:"submitted_at,omitempty"`
	ReviewedBy      string                 `json:"reviewed_by,omitempty"`
	ReviewedAt      *time.Time             `json:"reviewed_at,omitempty"`
	RejectionReason string                 `json:"rejection_reason,omitempty"`
	ExportFileID    string                 `json:"export_file_id,omitempty"`
}

type TimesheetFilter struct {
	apimodels.Pagination
	UserID *string                 `json:"user_id,omitempty"`
	Status *models.TimesheetStatus `json:"status,omitempty"`
}

func (r TimesheetFilter) Validate() error {
	return nil
}

type RejectRequest struct {
	Reason string `json:"reason"`
}

func (r RejectRequest) Validate() error {
	if r.Reason == "" {
		return errors.New("rejection reason is required")
	}
	return nil
}

type ExportRequest struct {
	Format string `json:"format"` // xlsx or pdf
}

func (r ExportRequest) Validate() error {
	if r.Format != "xlsx" && r.Format != "pdf" {
		return errors.New("format must be xlsx or pdf")
	}
	return nil
}
