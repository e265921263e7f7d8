package timesheethandler

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"staffhub-backend/db"
	audithandler "staffhub-backend/lib/audit"
	pdfexport "staffhub-backend/lib/export/pdf"
	xlsexport "staffhub-backend/lib/export/xls"
	filestorage "staffhub-backend/lib/file-storage"
	notificationhandler "staffhub-backend/lib/notification"
	timeentrystore "staffhub-backend/lib/timeentry/store"
	timesheetstore "staffhub-backend/lib/timesheet/store"
	"staffhub-backend/models"
	timesheetapimodels "staffhub-backend/models/api/timesheet"
	dbmodels "staffhub-backend/models/db"
)

type Provider interface {
	Generate(actorID string, actorRole models.UserRole, data timesheetapimodels.GenerateRequest) (view timesheetapimodels.TimesheetView, err error)
	GetByID(actorID string, actorRole models.UserRole, id string) (view timesheetapimodels.TimesheetView, err error)
	List(actorID string, actorRole models.UserRole, filter timesheetapimodels.TimesheetFilter) (list []timesheetapimodels.TimesheetView, rowCount int64, err error)
	Submit(actorID, id string) error
	Approve(actorID, id string) error
	Reject(actorID, id string, reason string) error
	Export(ctx context.Context, actorID, id, format string) (view timesheetapimodels.TimesheetView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:      timesheetstore.NewInstance(db.DB),
		entryStore: timeentrystore.NewInstance(db.DB),
	}
}

type impl struct {
	store      timesheetstore.Provider
	entryStore timeentrystore.Provider
}

var (
	ErrNotFound      = errors.New("timesheet not found")
	ErrForbidden     = errors.New("operation not permitted on this timesheet")
	ErrWrongStatus   = errors.New("timesheet status does not allow this operation")
	ErrAlreadyExists = errors.New("a timesheet for this user and period already exists")
)

func canManage(role models.UserRole) bool {
	return role.IsAdminLevel() || role == models.PayrollRole
}

// Generate builds a draft timesheet from the user's completed time
// entries in the period. Totals count completed and auto-clocked-out
// entries; entries still pending edit approval are included with their
// current times.
func (i impl) Generate(actorID string, actorRole models.UserRole, data timesheetapimodels.GenerateRequest) (timesheetapimodels.TimesheetView, error) {
	userID := actorID
	if data.UserID != "" && data.UserID != actorID {
		if !canManage(actorRole) {
			return timesheetapimodels.TimesheetView{}, ErrForbidden
		}
		userID = data.UserID
	}
	existing, err := i.store.FindByPeriod(userID, data.PeriodStart, data.PeriodEnd)
	if err != nil {
		return timesheetapimodels.TimesheetView{}, err
	}
	if existing != nil {
		return timesheetapimodels.TimesheetView{}, ErrAlreadyExists
	}
	entries, err := i.entryStore.ListForUserRange(userID, data.PeriodStart, data.PeriodEnd)
	if err != nil {
		return timesheetapimodels.TimesheetView{}, err
	}
	var totalHours, breakHours float64
	for _, entry := range entries {
		if entry.Status == models.TimeEntryActive {
			continue
		}
		totalHours += entry.WorkedHours()
		breakHours += float64(entry.BreakMinutes) / 60
	}
	rec := dbmodels.Timesheet{
		UserID:      userID,
		PeriodStart: data.PeriodStart,
		PeriodEnd:   data.PeriodEnd,
		TotalHours:  totalHours,
		BreakHours:  breakHours,
		Status:      models.TimesheetDraft,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return timesheetapimodels.TimesheetView{}, err
	}
	rec.ID = id
	audithandler.Instance.Record(actorID, "timesheet.generate", "timesheet", id, false, map[string]interface{}{
		"user_id":      userID,
		"period_start": data.PeriodStart,
		"period_end":   data.PeriodEnd,
	})
	return rec.ToModel(), nil
}

func (i impl) GetByID(actorID string, actorRole models.UserRole, id string) (timesheetapimodels.TimesheetView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return timesheetapimodels.TimesheetView{}, err
	}
	if rec == nil {
		return timesheetapimodels.TimesheetView{}, ErrNotFound
	}
	if !canManage(actorRole) && rec.UserID != actorID {
		return timesheetapimodels.TimesheetView{}, ErrForbidden
	}
	return rec.ToModel(), nil
}

func (i impl) List(actorID string, actorRole models.UserRole, filter timesheetapimodels.TimesheetFilter) ([]timesheetapimodels.TimesheetView, int64, error) {
	if !canManage(actorRole) {
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
	list := make([]timesheetapimodels.TimesheetView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, rec.ToModel())
	}
	return list, rowCount, nil
}

func (i impl) Submit(actorID, id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrNotFound
	}
	if rec.UserID != actorID {
		return ErrForbidden
	}
	if rec.Status != models.TimesheetDraft && rec.Status != models.TimesheetRejected {
		return ErrWrongStatus
	}
	now := time.Now()
	err = i.store.Update(id, map[string]interface{}{
		"status":           models.TimesheetSubmitted,
		"submitted_at":     now,
		"rejection_reason": "",
	})
	if err != nil {
		return err
	}
	audithandler.Instance.Record(actorID, "timesheet.submit", "timesheet", id, false, nil)
	return nil
}

func (i impl) Approve(actorID, id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrNotFound
	}
	if rec.Status != models.TimesheetSubmitted {
		return ErrWrongStatus
	}
	now := time.Now()
	err = i.store.Update(id, map[string]interface{}{
		"status":      models.TimesheetApproved,
		"reviewed_by": actorID,
		"reviewed_at": now,
	})
	if err != nil {
		return err
	}
	notificationhandler.Instance.Notify(rec.UserID, models.NotificationTimesheetStatus, "timesheet", id,
		"Your timesheet was approved")
	audithandler.Instance.Record(actorID, "timesheet.approve", "timesheet", id, false, nil)
	return nil
}

func (i impl) Reject(actorID, id string, reason string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrNotFound
	}
	if rec.Status != models.TimesheetSubmitted {
		return ErrWrongStatus
	}
	now := time.Now()
	err = i.store.Update(id, map[string]interface{}{
		"status":           models.TimesheetRejected,
		"reviewed_by":      actorID,
		"reviewed_at":      now,
		"rejection_reason": reason,
	})
	if err != nil {
		return err
	}
	notificationhandler.Instance.Notify(rec.UserID, models.NotificationTimesheetStatus, "timesheet", id,
		fmt.Sprintf("Your timesheet was rejected: %s", reason))
	audithandler.Instance.Record(actorID, "timesheet.reject", "timesheet", id, false, map[string]interface{}{
		"reason": reason,
	})
	return nil
}

// Export renders the payroll file, stores it, marks the timesheet
// exported and locks the underlying time entries against further edits.
func (i impl) Export(ctx context.Context, actorID, id, format string) (timesheetapimodels.TimesheetView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return timesheetapimodels.TimesheetView{}, err
	}
	if rec == nil {
		return timesheetapimodels.TimesheetView{}, ErrNotFound
	}
	if rec.Status != models.TimesheetApproved && rec.Status != models.TimesheetExported {
		return timesheetapimodels.TimesheetView{}, ErrWrongStatus
	}
	entries, err := i.entryStore.ListForUserRange(rec.UserID, rec.PeriodStart, rec.PeriodEnd)
	if err != nil {
		return timesheetapimodels.TimesheetView{}, err
	}

	var payload []byte
	var contentType string
	if format == "pdf" {
		payload, err = pdfexport.GenerateTimesheet(*rec, entries)
		contentType = "application/pdf"
	} else {
		buf, xlsErr := xlsexport.Instance.ExportTimesheet(*rec, entries)
		if xlsErr == nil {
			payload = buf.Bytes()
		}
		err = xlsErr
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	if err != nil {
		return timesheetapimodels.TimesheetView{}, errors.Wrap(err, "payroll file rendering failed")
	}

	fileName := fmt.Sprintf("timesheet_%s_%s.%s", rec.UserID, rec.PeriodStart.Format("20060102"), format)
	fileID, err := filestorage.Instance.Upload(ctx, actorID, fileName, contentType, payload)
	if err != nil {
		return timesheetapimodels.TimesheetView{}, errors.Wrap(err, "payroll file upload failed")
	}

	entryIDs := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Status != models.TimeEntryActive {
			entryIDs = append(entryIDs, entry.ID)
		}
	}
	if err = i.entryStore.LockByIDs(entryIDs); err != nil {
		return timesheetapimodels.TimesheetView{}, errors.Wrap(err, "payroll lock failed")
	}
	err = i.store.Update(id, map[string]interface{}{
		"status":         models.TimesheetExported,
		"export_file_id": fileID,
	})
	if err != nil {
		return timesheetapimodels.TimesheetView{}, err
	}
	rec.Status = models.TimesheetExported
	rec.ExportFileID = fileID
	audithandler.Instance.Record(actorID, "timesheet.export", "timesheet", id, false, map[string]interface{}{
		"format":         format,
		"locked_entries": len(entryIDs),
	})
	log.WithFields(log.Fields{"timesheet_id": id, "format": format, "locked": len(entryIDs)}).Info("timesheet exported")
	return rec.ToModel(), nil
}
