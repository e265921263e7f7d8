package shiftstore

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	shiftapimodels "staffhub-backend/models/api/shift"
	dbmodels "staffhub-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Shift) (id string, err error)
	GetByID(id string) (rec *dbmodels.Shift, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	List(filter shiftapimodels.ShiftFilter) (list []dbmodels.Shift, err error)
	ListCount(filter shiftapimodels.ShiftFilter) (count int64, err error)
	ListBySchedule(scheduleID string) (list []dbmodels.Shift, err error)

	Assign(rec dbmodels.ShiftAssignment) (id string, err error)
	Unassign(shiftID, userID string) error
	GetAssignment(id string) (rec *dbmodels.ShiftAssignment, err error)
	ConfirmAssignment(id string) error
	ListAssignmentsByShift(shiftID string) (list []dbmodels.ShiftAssignment, err error)
	ListAssignmentsByUser(userID string, from, to time.Time) (list []dbmodels.ShiftAssignment, err error)

	// AssignedShiftAt returns the shift the user is assigned to that
	// covers the given instant, or nil when none does.
	AssignedShiftAt(userID string, at time.Time) (rec *dbmodels.Shift, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Shift) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Shift, error) {
	rec := dbmodels.Shift{}
	err := i.db.
		Model(&dbmodels.Shift{}).
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	tx := i.db.
		Model(&dbmodels.Shift{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("shift not found")
	}
	return nil
}

func (i impl) Delete(id string) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		err := tx.
			Delete(&dbmodels.ShiftAssignment{}, "shift_id = ?", id).
			Error
		if err != nil {
			return err
		}
		return tx.
			Delete(&dbmodels.Shift{}, "id = ?", id).
			Error
	})
}

func (i impl) addFilter(tx *gorm.DB, filter shiftapimodels.ShiftFilter) {
	if filter.ScheduleID != nil {
		tx.Where("schedule_id = ?", *filter.ScheduleID)
	}
	if filter.UserID != nil {
		tx.Where("id IN (?)", i.db.
			Model(&dbmodels.ShiftAssignment{}).
			Select("shift_id").
			Where("user_id = ?", *filter.UserID))
	}
	if filter.From != nil {
		tx.Where("end_time >= ?", *filter.From)
	}
	if filter.To != nil {
		tx.Where("start_time <= ?", *filter.To)
	}
}

func (i impl) List(filter shiftapimodels.ShiftFilter) (list []dbmodels.Shift, err error) {
	list = []dbmodels.Shift{}
	tx := i.db.
		Model(dbmodels.Shift{}).
		Order("start_time")
	i.addFilter(tx, filter)
	page, limit := filter.GetPage()
	tx.Offset((page - 1) * limit).Limit(limit)
	err = tx.Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(filter shiftapimodels.ShiftFilter) (count int64, err error) {
	tx := i.db.
		Model(dbmodels.Shift{})
	i.addFilter(tx, filter)
	err = tx.Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (i impl) ListBySchedule(scheduleID string) (list []dbmodels.Shift, err error) {
	list = []dbmodels.Shift{}
	err = i.db.
		Model(dbmodels.Shift{}).
		Where("schedule_id = ?", scheduleID).
		Order("start_time").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Assign(rec dbmodels.ShiftAssignment) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Unassign(shiftID, userID string) error {
	return i.db.
		Delete(&dbmodels.ShiftAssignment{}, "shift_id = ? AND user_id = ?", shiftID, userID).
		Error
}

func (i impl) GetAssignment(id string) (*dbmodels.ShiftAssignment, error) {
	rec := dbmodels.ShiftAssignment{}
	err := i.db.
		Model(&dbmodels.ShiftAssignment{}).
		Where("id = ?", id).
		Preload("Shift").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) ConfirmAssignment(id string) error {
	tx := i.db.
		Model(&dbmodels.ShiftAssignment{}).
		Where("id = ?", id).
		Update("confirmed", true)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("assignment not found")
	}
	return nil
}

func (i impl) ListAssignmentsByShift(shiftID string) (list []dbmodels.ShiftAssignment, err error) {
	list = []dbmodels.ShiftAssignment{}
	err = i.db.
		Model(dbmodels.ShiftAssignment{}).
		Where("shift_id = ?", shiftID).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListAssignmentsByUser(userID string, from, to time.Time) (list []dbmodels.ShiftAssignment, err error) {
	list = []dbmodels.ShiftAssignment{}
	err = i.db.
		Model(dbmodels.ShiftAssignment{}).
		Joins("JOIN shifts ON shifts.id = shift_assignments.shift_id").
		Where("shift_assignments.user_id = ?", userID).
		Where("shifts.end_time >= ? AND shifts.start_time <= ?", from, to).
		Preload("Shift").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// AssignedShiftAt resolves the shift a clock-in at the given instant
// belongs to: the user's earliest assigned shift that has not ended yet
// and starts before the end of that calendar day. An early arrival
// therefore still picks up the upcoming shift.
func (i impl) AssignedShiftAt(userID string, at time.Time) (*dbmodels.Shift, error) {
	dayEnd := time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, at.Location()).AddDate(0, 0, 1)
	rec := dbmodels.Shift{}
	err := i.db.
		Model(&dbmodels.Shift{}).
		Joins("JOIN shift_assignments ON shift_assignments.shift_id = shifts.id").
		Where("shift_assignments.user_id = ?", userID).
		Where("shifts.end_time >= ? AND shifts.start_time < ?", at, dayEnd).
		Order("shifts.start_time").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}
