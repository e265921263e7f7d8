package timeapimodels

import (
	"time"

	"staffhub-backend/models"
	apimodels "staffhub-backend/models/api"

	"github.com/pkg/errors"
)

type ClockInRequest struct {
	ShiftID string `json:"shift_id,omitempty"`
	Note    string `json:"note,omitempty"`
}

func (r ClockInRequest) Validate() error {
	return nil
}

type ClockOutRequest struct {
	BreakMinutes int      `json:"break_minutes"`
	PhotoFileIDs []string `json:"photo_file_ids,omitempty"`
}

func (r ClockOutRequest) Validate() error {
	if r.BreakMinutes < 0 {
		return errors.New("break minutes must not be negative")
	}
	return nil
}

type TimeEntryView struct {
	ID              string                 `json:"id"`
	UserID          string                 `json:"user_id"`
	UserName        string                 `json:"user_name,omitempty"`
	ShiftID         string                 `json:"shift_id,omitempty"`
	ClockIn         time.Time              `json:"clock_in"`
	ClockOut        *time.Time             `json:"clock_out,omitempty"`
	Status          models.TimeEntryStatus `json:"status"`
	ApprovalStatus  models.ApprovalStatus  `json:"approval_status"`
	Locked          bool                   `json:"locked"`
	BreakMinutes    int                    `json:"break_minutes"`
	JobName         string                 `json:"job_name,omitempty"`
	Program         string                 `json:"program,omitempty"`
	HourlyRate      float64                `json:"hourly_rate,omitempty"`
	RejectionReason string                 `json:"rejection_reason,omitempty"`
	PhotoFileIDs    []string               `json:"photo_file_ids,omitempty"`
}

type EntryFilter struct {
	apimodels.Pagination
	UserID   *string                 `json:"user_id,omitempty"`
	Status   *models.TimeEntryStatus `json:"status,omitempty"`
	Approval *models.ApprovalStatus  `json:"approval_status,omitempty"`
	From     *time.Time              `json:"from,omitempty"`
	To       *time.Time              `json:"to,omitempty"`
}

func (r EntryFilter) Validate() error {
	if r.From != nil && r.To != nil && r.To.Before(*r.From) {
		return errors.New("'to' must not be before 'from'")
	}
	return nil
}

// EntryPatch carries the fields a PATCH may change. Nil pointers mean
// "leave untouched"; which fields an actor may set depends on the edit
// path (admin vs self).
type EntryPatch struct {
	ClockIn      *time.Time `json:"clock_in,omitempty"`
	ClockOut     *time.Time `json:"clock_out,omitempty"`
	BreakMinutes *int       `json:"break_minutes,omitempty"`
	JobName      *string    `json:"job_name,omitempty"`
	Program      *string    `json:"program,omitempty"`
	HourlyRate   *float64   `json:"hourly_rate,omitempty"`
	Locked       *bool      `json:"locked,omitempty"`
}

func (r EntryPatch) Validate() error {
	if r.BreakMinutes != nil && *r.BreakMinutes < 0 {
		return errors.New("break minutes must not be negative")
	}
	if r.ClockIn != nil && r.ClockOut != nil && r.ClockOut.Before(*r.ClockIn) {
		return errors.New("clock-out must not be before clock-in")
	}
	return nil
}

// IsEmpty reports whether no field is set.
func (r EntryPatch) IsEmpty() bool {
	return r.ClockIn == nil && r.ClockOut == nil && r.BreakMinutes == nil &&
		r.JobName == nil && r.Program == nil && r.HourlyRate == nil && r.Locked == nil
}

// IsSoloUnlock reports whether the patch changes locked to false and
// nothing else: the only operation permitted on a locked entry.
func (r EntryPatch) IsSoloUnlock() bool {
	return r.Locked != nil && !*r.Locked &&
		r.ClockIn == nil && r.ClockOut == nil && r.BreakMinutes == nil &&
		r.JobName == nil && r.Program == nil && r.HourlyRate == nil
}

// TouchesTimes reports whether the patch edits clock-in/out, the fields
// that divert a self-edit into the approval flow.
func (r EntryPatch) TouchesTimes() bool {
	return r.ClockIn != nil || r.ClockOut != nil
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

type AutoClockOutResponse struct {
	Affected int      `json:"affected"`
	EntryIDs []string `json:"entry_ids,omitempty"`
}
