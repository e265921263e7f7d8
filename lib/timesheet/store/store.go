package timesheetstore

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	timesheetapimodels "staffhub-backend/models/api/timesheet"
	dbmodels "staffhub-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Timesheet) (id string, err error)
	GetByID(id string) (rec *dbmodels.Timesheet, err error)
	FindByPeriod(userID string, periodStart, periodEnd time.Time) (rec *dbmodels.Timesheet, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	List(filter timesheetapimodels.TimesheetFilter) (list []dbmodels.Timesheet, err error)
	ListCount(filter timesheetapimodels.TimesheetFilter) (count int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Timesheet) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Timesheet, error) {
	rec := dbmodels.Timesheet{}
	err := i.db.
		Model(&dbmodels.Timesheet{}).
		Where("id = ?", id).
		Preload("User").
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

func (i impl) FindByPeriod(userID string, periodStart, periodEnd time.Time) (*dbmodels.Timesheet, error) {
	rec := dbmodels.Timesheet{}
	err := i.db.
		Model(&dbmodels.Timesheet{}).
		Where("user_id = ?", userID).
		Where("period_start = ? AND period_end = ?", periodStart, periodEnd).
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
		Model(&dbmodels.Timesheet{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("timesheet not found")
	}
	return nil
}

func (i impl) Delete(id string) error {
	return i.db.
		Delete(&dbmodels.Timesheet{}, "id = ?", id).
		Error
}

func (i impl) addFilter(tx *gorm.DB, filter timesheetapimodels.TimesheetFilter) {
	if filter.UserID != nil {
		tx.Where("user_id = ?", *filter.UserID)
	}
	if filter.Status != nil {
		tx.Where("status = ?", *filter.Status)
	}
}

func (i impl) List(filter timesheetapimodels.TimesheetFilter) (list []dbmodels.Timesheet, err error) {
	list = []dbmodels.Timesheet{}
	tx := i.db.
		Model(dbmodels.Timesheet{}).
		Preload("User").
		Order("period_start DESC")
	i.addFilter(tx, filter)
	page, limit := filter.GetPage()
	tx.Offset((page - 1) * limit).Limit(limit)
	err = tx.Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(filter timesheetapimodels.TimesheetFilter) (count int64, err error) {
	tx := i.db.
		Model(dbmodels.Timesheet{})
	i.addFilter(tx, filter)
	err = tx.Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
