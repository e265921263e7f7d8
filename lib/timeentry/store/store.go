package timeentrystore

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"staffhub-backend/models"
	timeapimodels "staffhub-backend/models/api/timeentry"
	dbmodels "staffhub-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.TimeEntry) (id string, err error)
	GetByID(id string) (rec *dbmodels.TimeEntry, err error)
	GetActiveByUser(userID string) (rec *dbmodels.TimeEntry, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	List(filter timeapimodels.EntryFilter) (list []dbmodels.TimeEntry, err error)
	ListCount(filter timeapimodels.EntryFilter) (count int64, err error)
	ListActiveBefore(cutoff time.Time) (list []dbmodels.TimeEntry, err error)
	ListForUserRange(userID string, from, to time.Time) (list []dbmodels.TimeEntry, err error)
	LockByIDs(ids []string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.TimeEntry) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.TimeEntry, error) {
	rec := dbmodels.TimeEntry{}
	err := i.db.
		Model(&dbmodels.TimeEntry{}).
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

func (i impl) GetActiveByUser(userID string) (*dbmodels.TimeEntry, error) {
	rec := dbmodels.TimeEntry{}
	err := i.db.
		Model(&dbmodels.TimeEntry{}).
		Where("user_id = ?", userID).
		Where("status = ?", models.TimeEntryActive).
		Order("clock_in DESC").
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
		Model(&dbmodels.TimeEntry{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("time entry not found")
	}
	return nil
}

func (i impl) Delete(id string) error {
	return i.db.
		Delete(&dbmodels.TimeEntry{}, "id = ?", id).
		Error
}

func (i impl) addFilter(tx *gorm.DB, filter timeapimodels.EntryFilter) {
	if filter.UserID != nil {
		tx.Where("user_id = ?", *filter.UserID)
	}
	if filter.Status != nil {
		tx.Where("status = ?", *filter.Status)
	}
	if filter.Approval != nil {
		tx.Where("approval_status = ?", *filter.Approval)
	}
	if filter.From != nil {
		tx.Where("clock_in >= ?", *filter.From)
	}
	if filter.To != nil {
		tx.Where("clock_in <= ?", *filter.To)
	}
}

func (i impl) List(filter timeapimodels.EntryFilter) (list []dbmodels.TimeEntry, err error) {
	list = []dbmodels.TimeEntry{}
	tx := i.db.
		Model(dbmodels.TimeEntry{}).
		Preload("User").
		Order("clock_in DESC")
	i.addFilter(tx, filter)
	page, limit := filter.GetPage()
	tx.Offset((page - 1) * limit).Limit(limit)
	err = tx.Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(filter timeapimodels.EntryFilter) (count int64, err error) {
	tx := i.db.
		Model(dbmodels.TimeEntry{})
	i.addFilter(tx, filter)
	err = tx.Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (i impl) ListActiveBefore(cutoff time.Time) (list []dbmodels.TimeEntry, err error) {
	list = []dbmodels.TimeEntry{}
	err = i.db.
		Model(dbmodels.TimeEntry{}).
		Where("status = ?", models.TimeEntryActive).
		Where("clock_in < ?", cutoff).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListForUserRange(userID string, from, to time.Time) (list []dbmodels.TimeEntry, err error) {
	list = []dbmodels.TimeEntry{}
	err = i.db.
		Model(dbmodels.TimeEntry{}).
		Where("user_id = ?", userID).
		Where("clock_in >= ? AND clock_in <= ?", from, to).
		Order("clock_in").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) LockByIDs(ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return i.db.
		Model(&dbmodels.TimeEntry{}).
		Where("id IN ?", ids).
		Update("locked", true).
		Error
}
