package timeentryhandler

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"staffhub-backend/db"
	audithandler "staffhub-backend/lib/audit"
	"staffhub-backend/lib/metrics"
	notificationhandler "staffhub-backend/lib/notification"
	settingshandler "staffhub-backend/lib/settings"
	shiftstore "staffhub-backend/lib/shift/store"
	timeentrystore "staffhub-backend/lib/timeentry/store"
	usersstore "staffhub-backend/lib/users/store"
	"staffhub-backend/models"
	timeapimodels "staffhub-backend/models/api/timeentry"
	dbmodels "staffhub-backend/models/db"
)

type Provider interface {
	ClockIn(userID string, data timeapimodels.ClockInRequest) (view timeapimodels.TimeEntryView, err error)
	ClockOut(userID string, data timeapimodels.ClockOutRequest) (view timeapimodels.TimeEntryView, err error)
	GetActive(userID string) (view *timeapimodels.TimeEntryView, err error)
	GetByID(actorID string, actorRole models.UserRole, id string) (view timeapimodels.TimeEntryView, err error)
	List(actorID string, actorRole models.UserRole, filter timeapimodels.EntryFilter) (list []timeapimodels.TimeEntryView, rowCount int64, err error)
	Edit(actorID string, actorRole models.UserRole, id string, patch timeapimodels.EntryPatch) (view timeapimodels.TimeEntryView, err error)
	Approve(actorID, id string) error
	Reject(actorID, id string, data timeapimodels.RejectRequest) error
	Delete(actorID, id string) error
	AutoClockOut(actorID string) (result timeapimodels.AutoClockOutResponse, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:      timeentrystore.NewInstance(db.DB),
		usersStore: usersstore.NewInstance(db.DB),
		shiftStore: shiftstore.NewInstance(db.DB),
	}
}

type impl struct {
	store      timeentrystore.Provider
	usersStore usersstore.Provider
	shiftStore shiftstore.Provider
}

var (
	ErrAlreadyClockedIn = errors.New("already clocked in")
	ErrNoActiveEntry    = errors.New("no active time entry")
	ErrNotFound         = errors.New("time entry not found")
	ErrForbidden        = errors.New("operation not permitted on this time entry")
	ErrLocked           = errors.New("time entry is locked by a payroll export")
	ErrPhotoRequired    = errors.New("clock-out photo is required")
)

func (i impl) getLogger(userID string) *log.Entry {
	return log.WithField("user_id", userID)
}

func (i impl) ClockIn(userID string, data timeapimodels.ClockInRequest) (timeapimodels.TimeEntryView, error) {
	// Read-then-write without a row lock: two concurrent clock-ins can
	// both pass this check and create duplicate active entries. Accepted
	// for now; the auto-clock-out sweep and manual correction cover it.
	active, err := i.store.GetActiveByUser(userID)
	if err != nil {
		return timeapimodels.TimeEntryView{}, err
	}
	if active != nil {
		return timeapimodels.TimeEntryView{}, ErrAlreadyClockedIn
	}
	user, err := i.usersStore.GetByID(userID)
	if err != nil {
		return timeapimodels.TimeEntryView{}, err
	}
	if user == nil {
		return timeapimodels.TimeEntryView{}, errors.New("user not found")
	}

	now := time.Now()
	rec := dbmodels.TimeEntry{
		UserID:         userID,
		ClockIn:        now,
		Status:         models.TimeEntryActive,
		ApprovalStatus: models.ApprovalApproved,
		HourlyRate:     user.Profile.DefaultHourlyRate,
	}

	// Job and rate resolution: explicit shift wins, then the shift the
	// user is assigned to right now, then the profile default.
	shift, err := i.resolveShift(userID, data.ShiftID, now)
	if err != nil {
		return timeapimodels.TimeEntryView{}, err
	}
	if shift != nil {
		rec.ShiftID = shift.ID
		rec.JobName = shift.JobName
		rec.Program = shift.Program
		rec.HourlyRate = user.Profile.RateForJob(shift.JobName)
		if shift.HourlyRate > 0 {
			rec.HourlyRate = shift.HourlyRate
		}
	}

	id, err := i.store.Create(rec)
	if err != nil {
		return timeapimodels.TimeEntryView{}, err
	}
	rec.ID = id
	rec.User = user
	metrics.ClockIns.Inc()
	audithandler.Instance.Record(userID, "time_entry.clock_in", "time_entry", id, false, map[string]interface{}{
		"shift_id": rec.ShiftID,
		"job_name": rec.JobName,
	})
	i.getLogger(userID).WithField("entry_id", id).Info("clocked in")
	return rec.ToModel(), nil
}

func (i impl) resolveShift(userID, shiftID string, at time.Time) (*dbmodels.Shift, error) {
	if shiftID != "" {
		shift, err := i.shiftStore.GetByID(shiftID)
		if err != nil {
			return nil, err
		}
		if shift == nil {
			return nil, errors.New("shift not found")
		}
		return shift, nil
	}
	return i.shiftStore.AssignedShiftAt(userID, at)
}

func (i impl) ClockOut(userID string, data timeapimodels.ClockOutRequest) (timeapimodels.TimeEntryView, error) {
	rec, err := i.store.GetActiveByUser(userID)
	if err != nil {
		return timeapimodels.TimeEntryView{}, err
	}
	if rec == nil {
		return timeapimodels.TimeEntryView{}, ErrNoActiveEntry
	}
	if err = checkTransition(models.EventClockOut, rec.Status, rec.ApprovalStatus); err != nil {
		return timeapimodels.TimeEntryView{}, err
	}
	if len(data.PhotoFileIDs) == 0 && i.photoRequired(rec.Program) {
		return timeapimodels.TimeEntryView{}, ErrPhotoRequired
	}

	now := time.Now()
	updMap := map[string]interface{}{
		"clock_out":      now,
		"status":         models.TimeEntryCompleted,
		"break_minutes":  data.BreakMinutes,
		"photo_file_ids": dbmodels.StringList(data.PhotoFileIDs),
	}
	if err = i.store.Update(rec.ID, updMap); err != nil {
		return timeapimodels.TimeEntryView{}, err
	}
	rec.ClockOut = &now
	rec.Status = models.TimeEntryCompleted
	rec.BreakMinutes = data.BreakMinutes
	rec.PhotoFileIDs = dbmodels.StringList(data.PhotoFileIDs)
	metrics.ClockOuts.Inc()
	audithandler.Instance.Record(userID, "time_entry.clock_out", "time_entry", rec.ID, false, nil)
	i.getLogger(userID).WithField("entry_id", rec.ID).Info("clocked out")
	return rec.ToModel(), nil
}

// photoRequired exempts IPU programs at Advent sites, where staff clock
// out at a shared kiosk without a camera.
func (i impl) photoRequired(program string) bool {
	if !settingshandler.Instance.ClockOutPhotoRequired() {
		return false
	}
	name := strings.ToLower(program)
	isAdvent := strings.Contains(name, "advent") || strings.Contains(name, "adventhealth")
	isIPU := strings.Contains(name, "ipu")
	return !(isAdvent && isIPU)
}

func (i impl) GetActive(userID string) (*timeapimodels.TimeEntryView, error) {
	rec, err := i.store.GetActiveByUser(userID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	view := rec.ToModel()
	return &view, nil
}

func (i impl) GetByID(actorID string, actorRole models.UserRole, id string) (timeapimodels.TimeEntryView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return timeapimodels.TimeEntryView{}, err
	}
	if rec == nil {
		return timeapimodels.TimeEntryView{}, ErrNotFound
	}
	if !canViewEntries(actorRole) && rec.UserID != actorID {
		return timeapimodels.TimeEntryView{}, ErrForbidden
	}
	return rec.ToModel(), nil
}

func (i impl) List(actorID string, actorRole models.UserRole, filter timeapimodels.EntryFilter) ([]timeapimodels.TimeEntryView, int64, error) {
	// Staff only ever see their own entries, whatever the filter says.
	if !canViewEntries(actorRole) {
		filter.UserID = &actorID
	}
	rowCount, err := i.store.ListCount(filter)
	if err != nil {
		return nil, 0, err
	}
	recs, err := i.store.List(filter)
	if err != nil {
		return nil, 0, err
	}
	list := make([]timeapimodels.TimeEntryView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, rec.ToModel())
	}
	return list, rowCount, nil
}

func canViewEntries(role models.UserRole) bool {
	return role.IsAdminLevel() ||
		role == models.HRRole ||
		role == models.ManagerRole ||
		role == models.PayrollRole
}

func (i impl) Edit(actorID string, actorRole models.UserRole, id string, patch timeapimodels.EntryPatch) (timeapimodels.TimeEntryView, error) {
	if patch.IsEmpty() {
		return timeapimodels.TimeEntryView{}, errors.New("empty patch")
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return timeapimodels.TimeEntryView{}, err
	}
	if rec == nil {
		return timeapimodels.TimeEntryView{}, ErrNotFound
	}
	if actorRole.IsAdminLevel() {
		return i.adminEdit(actorID, rec, patch)
	}
	return i.selfEdit(actorID, rec, patch)
}

func (i impl) adminEdit(actorID string, rec *dbmodels.TimeEntry, patch timeapimodels.EntryPatch) (timeapimodels.TimeEntryView, error) {
	if rec.Locked && !patch.IsSoloUnlock() {
		return timeapimodels.TimeEntryView{}, ErrLocked
	}
	if err := checkTransition(models.EventAdminEdit, rec.Status, rec.ApprovalStatus); err != nil {
		return timeapimodels.TimeEntryView{}, err
	}
	updMap := map[string]interface{}{}
	if patch.ClockIn != nil {
		updMap["clock_in"] = *patch.ClockIn
		rec.ClockIn = *patch.ClockIn
	}
	if patch.ClockOut != nil {
		updMap["clock_out"] = *patch.ClockOut
		rec.ClockOut = patch.ClockOut
	}
	if patch.BreakMinutes != nil {
		updMap["break_minutes"] = *patch.BreakMinutes
		rec.BreakMinutes = *patch.BreakMinutes
	}
	if patch.JobName != nil {
		updMap["job_name"] = *patch.JobName
		rec.JobName = *patch.JobName
	}
	if patch.Program != nil {
		updMap["program"] = *patch.Program
		rec.Program = *patch.Program
	}
	if patch.HourlyRate != nil {
		updMap["hourly_rate"] = *patch.HourlyRate
		rec.HourlyRate = *patch.HourlyRate
	}
	if patch.Locked != nil {
		updMap["locked"] = *patch.Locked
		rec.Locked = *patch.Locked
	}
	if err := i.store.Update(rec.ID, updMap); err != nil {
		return timeapimodels.TimeEntryView{}, err
	}
	audithandler.Instance.Record(actorID, "time_entry.admin_edit", "time_entry", rec.ID, false, map[string]interface{}{
		"fields": patchFieldNames(patch),
	})
	return rec.ToModel(), nil
}

func (i impl) selfEdit(actorID string, rec *dbmodels.TimeEntry, patch timeapimodels.EntryPatch) (timeapimodels.TimeEntryView, error) {
	if rec.UserID != actorID {
		return timeapimodels.TimeEntryView{}, ErrForbidden
	}
	if rec.Locked {
		return timeapimodels.TimeEntryView{}, ErrLocked
	}
	if patch.Locked != nil || patch.HourlyRate != nil {
		return timeapimodels.TimeEntryView{}, ErrForbidden
	}
	if err := checkTransition(models.EventSelfEdit, rec.Status, rec.ApprovalStatus); err != nil {
		return timeapimodels.TimeEntryView{}, err
	}
	updMap := map[string]interface{}{}
	if patch.TouchesTimes() {
		// Snapshot the pre-edit times once, or again after a rejection:
		// the snapshot must always hold the last approved values.
		if rec.OriginalClockIn == nil || rec.ApprovalStatus == models.ApprovalRejected {
			clockIn := rec.ClockIn
			updMap["original_clock_in"] = clockIn
			updMap["original_clock_out"] = rec.ClockOut
			rec.OriginalClockIn = &clockIn
			rec.OriginalClockOut = rec.ClockOut
		}
		updMap["approval_status"] = models.ApprovalPending
		updMap["rejection_reason"] = ""
		rec.ApprovalStatus = models.ApprovalPending
		rec.RejectionReason = ""
	}
	if patch.ClockIn != nil {
		updMap["clock_in"] = *patch.ClockIn
		rec.ClockIn = *patch.ClockIn
	}
	if patch.ClockOut != nil {
		updMap["clock_out"] = *patch.ClockOut
		rec.ClockOut = patch.ClockOut
	}
	if patch.BreakMinutes != nil {
		updMap["break_minutes"] = *patch.BreakMinutes
		rec.BreakMinutes = *patch.BreakMinutes
	}
	if patch.JobName != nil {
		updMap["job_name"] = *patch.JobName
		rec.JobName = *patch.JobName
	}
	if patch.Program != nil {
		updMap["program"] = *patch.Program
		rec.Program = *patch.Program
	}
	if err := i.store.Update(rec.ID, updMap); err != nil {
		return timeapimodels.TimeEntryView{}, err
	}
	if patch.TouchesTimes() {
		userName := actorID
		if rec.User != nil {
			userName = rec.User.GetFullName()
		}
		notificationhandler.Instance.NotifyAdmins(models.NotificationTimeEditRequest, "time_entry", rec.ID,
			fmt.Sprintf("%s edited a time entry and needs approval", userName))
	}
	audithandler.Instance.Record(actorID, "time_entry.self_edit", "time_entry", rec.ID, false, map[string]interface{}{
		"fields": patchFieldNames(patch),
	})
	return rec.ToModel(), nil
}

func patchFieldNames(patch timeapimodels.EntryPatch) []string {
	fields := []string{}
	if patch.ClockIn != nil {
		fields = append(fields, "clock_in")
	}
	if patch.ClockOut != nil {
		fields = append(fields, "clock_out")
	}
	if patch.BreakMinutes != nil {
		fields = append(fields, "break_minutes")
	}
	if patch.JobName != nil {
		fields = append(fields, "job_name")
	}
	if patch.Program != nil {
		fields = append(fields, "program")
	}
	if patch.HourlyRate != nil {
		fields = append(fields, "hourly_rate")
	}
	if patch.Locked != nil {
		fields = append(fields, "locked")
	}
	return fields
}

func (i impl) Approve(actorID, id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrNotFound
	}
	if err = checkTransition(models.EventApproveEdit, rec.Status, rec.ApprovalStatus); err != nil {
		return err
	}
	err = i.store.Update(id, map[string]interface{}{
		"approval_status": models.ApprovalApproved,
	})
	if err != nil {
		return err
	}
	notificationhandler.Instance.ClearByResource(models.NotificationTimeEditRequest, id)
	notificationhandler.Instance.Notify(rec.UserID, models.NotificationEditApproved, "time_entry", id,
		"Your time entry edit was approved")
	metrics.EditApprovals.WithLabelValues("approved").Inc()
	audithandler.Instance.Record(actorID, "time_entry.approve_edit", "time_entry", id, false, nil)
	return nil
}

func (i impl) Reject(actorID, id string, data timeapimodels.RejectRequest) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrNotFound
	}
	if err = checkTransition(models.EventRejectEdit, rec.Status, rec.ApprovalStatus); err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"approval_status":  models.ApprovalRejected,
		"rejection_reason": data.Reason,
	}
	// Revert the times to the snapshot the self-edit took.
	if rec.OriginalClockIn != nil {
		updMap["clock_in"] = *rec.OriginalClockIn
		updMap["clock_out"] = rec.OriginalClockOut
	}
	if err = i.store.Update(id, updMap); err != nil {
		return err
	}
	notificationhandler.Instance.ClearByResource(models.NotificationTimeEditRequest, id)
	notificationhandler.Instance.Notify(rec.UserID, models.NotificationEditRejected, "time_entry", id,
		fmt.Sprintf("Your time entry edit was rejected: %s", data.Reason))
	metrics.EditApprovals.WithLabelValues("rejected").Inc()
	audithandler.Instance.Record(actorID, "time_entry.reject_edit", "time_entry", id, false, map[string]interface{}{
		"reason": data.Reason,
	})
	return nil
}

func (i impl) Delete(actorID, id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrNotFound
	}
	if rec.Locked {
		return ErrLocked
	}
	// Capture the row into the audit trail before the hard delete.
	audithandler.Instance.Record(actorID, "time_entry.delete", "time_entry", id, false, map[string]interface{}{
		"user_id":   rec.UserID,
		"clock_in":  rec.ClockIn,
		"clock_out": rec.ClockOut,
		"status":    rec.Status,
	})
	return i.store.Delete(id)
}

func (i impl) AutoClockOut(actorID string) (timeapimodels.AutoClockOutResponse, error) {
	maxHours := settingshandler.Instance.AutoClockOutMaxHours()
	cutoff := time.Now().Add(-time.Duration(maxHours) * time.Hour)
	recs, err := i.store.ListActiveBefore(cutoff)
	if err != nil {
		return timeapimodels.AutoClockOutResponse{}, err
	}
	result := timeapimodels.AutoClockOutResponse{EntryIDs: []string{}}
	for _, rec := range recs {
		if err := checkTransition(models.EventAutoClockOut, rec.Status, rec.ApprovalStatus); err != nil {
			i.getLogger(rec.UserID).WithField("entry_id", rec.ID).WithError(err).Warn("skipping entry in auto-clock-out sweep")
			continue
		}
		clockOut := rec.ClockIn.Add(time.Duration(maxHours) * time.Hour)
		err := i.store.Update(rec.ID, map[string]interface{}{
			"clock_out": clockOut,
			"status":    models.TimeEntryAutoClockedOut,
		})
		if err != nil {
			i.getLogger(rec.UserID).WithField("entry_id", rec.ID).WithError(err).Error("auto-clock-out update failed")
			continue
		}
		metrics.AutoClockOuts.Inc()
		result.Affected++
		result.EntryIDs = append(result.EntryIDs, rec.ID)
	}
	if result.Affected > 0 {
		audithandler.Instance.Record(actorID, "time_entry.auto_clock_out", "time_entry", "", false, map[string]interface{}{
			"affected":  result.Affected,
			"entry_ids": result.EntryIDs,
			"max_hours": maxHours,
		})
	}
	log.WithField("affected", result.Affected).Info("auto-clock-out sweep finished")
	return result, nil
}
