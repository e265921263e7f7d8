package shifthandler

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"staffhub-backend/db"
	audithandler "staffhub-backend/lib/audit"
	filestorage "staffhub-backend/lib/file-storage"
	notificationhandler "staffhub-backend/lib/notification"
	schedulestore "staffhub-backend/lib/schedule/store"
	shiftstore "staffhub-backend/lib/shift/store"
	usersstore "staffhub-backend/lib/users/store"
	"staffhub-backend/models"
	shiftapimodels "staffhub-backend/models/api/shift"
	dbmodels "staffhub-backend/models/db"
)

type Provider interface {
	Create(actorID string, data shiftapimodels.ShiftData) (view shiftapimodels.ShiftView, err error)
	GetByID(id string) (view shiftapimodels.ShiftView, err error)
	List(actorID string, actorRole models.UserRole, filter shiftapimodels.ShiftFilter) (list []shiftapimodels.ShiftView, rowCount int64, err error)
	Update(actorID, id string, data shiftapimodels.ShiftData) error
	Delete(actorID, id string) error
	Duplicate(ctx context.Context, actorID, id string) (view shiftapimodels.ShiftView, err error)
	AddAttachment(actorID, id, fileID string) error

	Assign(actorID, shiftID, userID string) (view shiftapimodels.AssignmentView, err error)
	Unassign(actorID, shiftID, userID string) error
	ConfirmAssignment(actorID, assignmentID string) error
	ListAssignments(actorID string, actorRole models.UserRole, shiftID string) (list []shiftapimodels.AssignmentView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:         shiftstore.NewInstance(db.DB),
		scheduleStore: schedulestore.NewInstance(db.DB),
		usersStore:    usersstore.NewInstance(db.DB),
	}
}

type impl struct {
	store         shiftstore.Provider
	scheduleStore schedulestore.Provider
	usersStore    usersstore.Provider
}

var (
	ErrNotFound  = errors.New("shift not found")
	ErrForbidden = errors.New("operation not permitted on this shift")
)

func (i impl) Create(actorID string, data shiftapimodels.ShiftData) (shiftapimodels.ShiftView, error) {
	rec := dbmodels.Shift{
		ScheduleID: data.ScheduleID,
		TemplateID: data.TemplateID,
		JobName:    data.JobName,
		Program:    data.Program,
		Location:   data.Location,
		StartTime:  data.StartTime,
		EndTime:    data.EndTime,
		HourlyRate: data.HourlyRate,
		Notes:      data.Notes,
	}
	// A template fills every field the request leaves empty.
	if data.TemplateID != "" {
		tpl, err := i.scheduleStore.GetTemplate(data.TemplateID)
		if err != nil {
			return shiftapimodels.ShiftView{}, err
		}
		if tpl == nil {
			return shiftapimodels.ShiftView{}, errors.New("shift template not found")
		}
		if rec.JobName == "" {
			rec.JobName = tpl.JobName
		}
		if rec.Program == "" {
			rec.Program = tpl.Program
		}
		if rec.Location == "" {
			rec.Location = tpl.Location
		}
		if rec.HourlyRate == 0 {
			rec.HourlyRate = tpl.HourlyRate
		}
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return shiftapimodels.ShiftView{}, err
	}
	rec.ID = id
	audithandler.Instance.Record(actorID, "shift.create", "shift", id, false, nil)
	return rec.ToModel(), nil
}

func (i impl) GetByID(id string) (shiftapimodels.ShiftView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return shiftapimodels.ShiftView{}, err
	}
	if rec == nil {
		return shiftapimodels.ShiftView{}, ErrNotFound
	}
	return rec.ToModel(), nil
}

func (i impl) List(actorID string, actorRole models.UserRole, filter shiftapimodels.ShiftFilter) ([]shiftapimodels.ShiftView, int64, error) {
	// Staff see only shifts they are assigned to.
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
	list := make([]shiftapimodels.ShiftView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, rec.ToModel())
	}
	return list, rowCount, nil
}

func canManage(role models.UserRole) bool {
	return role.IsAdminLevel() || role == models.SchedulerRole || role == models.ManagerRole
}

func (i impl) Update(actorID, id string, data shiftapimodels.ShiftData) error {
	err := i.store.Update(id, map[string]interface{}{
		"schedule_id": data.ScheduleID,
		"job_name":    data.JobName,
		"program":     data.Program,
		"location":    data.Location,
		"start_time":  data.StartTime,
		"end_time":    data.EndTime,
		"hourly_rate": data.HourlyRate,
		"notes":       data.Notes,
	})
	if err != nil {
		return err
	}
	audithandler.Instance.Record(actorID, "shift.update", "shift", id, false, nil)
	return nil
}

func (i impl) Delete(actorID, id string) error {
	if err := i.store.Delete(id); err != nil {
		return err
	}
	audithandler.Instance.Record(actorID, "shift.delete", "shift", id, false, nil)
	return nil
}

// Duplicate copies the shift row together with its attachment files.
// Attachment copies are made first; if the row insert then fails they
// are removed again so no orphan files stay behind.
func (i impl) Duplicate(ctx context.Context, actorID, id string) (shiftapimodels.ShiftView, error) {
	src, err := i.store.GetByID(id)
	if err != nil {
		return shiftapimodels.ShiftView{}, err
	}
	if src == nil {
		return shiftapimodels.ShiftView{}, ErrNotFound
	}

	copiedFileIDs := make([]string, 0, len(src.AttachmentFileIDs))
	for _, fileID := range src.AttachmentFileIDs {
		meta, payload, err := filestorage.Instance.Get(ctx, fileID)
		if err != nil {
			i.rollbackFiles(ctx, copiedFileIDs)
			return shiftapimodels.ShiftView{}, errors.Wrap(err, "attachment copy failed")
		}
		newID, err := filestorage.Instance.Upload(ctx, actorID, meta.FileName, meta.ContentType, payload)
		if err != nil {
			i.rollbackFiles(ctx, copiedFileIDs)
			return shiftapimodels.ShiftView{}, errors.Wrap(err, "attachment copy failed")
		}
		copiedFileIDs = append(copiedFileIDs, newID)
	}

	dup := dbmodels.Shift{
		ScheduleID:        src.ScheduleID,
		TemplateID:        src.TemplateID,
		JobName:           src.JobName,
		Program:           src.Program,
		Location:          src.Location,
		StartTime:         src.StartTime,
		EndTime:           src.EndTime,
		HourlyRate:        src.HourlyRate,
		Notes:             src.Notes,
		AttachmentFileIDs: copiedFileIDs,
	}
	newID, err := i.store.Create(dup)
	if err != nil {
		i.rollbackFiles(ctx, copiedFileIDs)
		return shiftapimodels.ShiftView{}, err
	}
	dup.ID = newID
	audithandler.Instance.Record(actorID, "shift.duplicate", "shift", newID, false, map[string]interface{}{
		"source_id": id,
	})
	return dup.ToModel(), nil
}

func (i impl) rollbackFiles(ctx context.Context, fileIDs []string) {
	for _, fileID := range fileIDs {
		if err := filestorage.Instance.Delete(ctx, fileID); err != nil {
			log.WithError(err).WithField("file_id", fileID).Warn("rollback of copied attachment failed")
		}
	}
}

func (i impl) AddAttachment(actorID, id, fileID string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrNotFound
	}
	exists, err := filestorage.Instance.Exists(fileID)
	if err != nil {
		return err
	}
	if !exists {
		return filestorage.ErrNotFound
	}
	attachments := append(rec.AttachmentFileIDs, fileID)
	err = i.store.Update(id, map[string]interface{}{
		"attachment_file_ids": attachments,
	})
	if err != nil {
		return err
	}
	audithandler.Instance.Record(actorID, "shift.add_attachment", "shift", id, false, map[string]interface{}{
		"file_id": fileID,
	})
	return nil
}

func (i impl) Assign(actorID, shiftID, userID string) (shiftapimodels.AssignmentView, error) {
	shift, err := i.store.GetByID(shiftID)
	if err != nil {
		return shiftapimodels.AssignmentView{}, err
	}
	if shift == nil {
		return shiftapimodels.AssignmentView{}, ErrNotFound
	}
	user, err := i.usersStore.GetByID(userID)
	if err != nil {
		return shiftapimodels.AssignmentView{}, err
	}
	if user == nil {
		return shiftapimodels.AssignmentView{}, errors.New("user not found")
	}
	rec := dbmodels.ShiftAssignment{
		ShiftID: shiftID,
		UserID:  userID,
	}
	id, err := i.store.Assign(rec)
	if err != nil {
		return shiftapimodels.AssignmentView{}, err
	}
	rec.ID = id
	rec.Shift = shift
	notificationhandler.Instance.Notify(userID, models.NotificationShiftAssigned, "shift", shiftID,
		fmt.Sprintf("You were assigned a shift on %s", shift.StartTime.Format("2006-01-02 15:04")))
	audithandler.Instance.Record(actorID, "shift.assign", "shift", shiftID, false, map[string]interface{}{
		"user_id": userID,
	})
	return rec.ToModel(), nil
}

func (i impl) Unassign(actorID, shiftID, userID string) error {
	if err := i.store.Unassign(shiftID, userID); err != nil {
		return err
	}
	audithandler.Instance.Record(actorID, "shift.unassign", "shift", shiftID, false, map[string]interface{}{
		"user_id": userID,
	})
	return nil
}

func (i impl) ConfirmAssignment(actorID, assignmentID string) error {
	rec, err := i.store.GetAssignment(assignmentID)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("assignment not found")
	}
	if rec.UserID != actorID {
		return ErrForbidden
	}
	return i.store.ConfirmAssignment(assignmentID)
}

func (i impl) ListAssignments(actorID string, actorRole models.UserRole, shiftID string) ([]shiftapimodels.AssignmentView, error) {
	recs, err := i.store.ListAssignmentsByShift(shiftID)
	if err != nil {
		return nil, err
	}
	list := make([]shiftapimodels.AssignmentView, 0, len(recs))
	for _, rec := range recs {
		if !canManage(actorRole) && rec.UserID != actorID {
			continue
		}
		list = append(list, rec.ToModel())
	}
	return list, nil
}
