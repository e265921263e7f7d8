package availabilitystore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbmodels "staffhub-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.UserAvailability) (id string, err error)
	GetByID(id string) (rec *dbmodels.UserAvailability, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	ListByUser(userID string) (list []dbmodels.UserAvailability, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.UserAvailability) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.UserAvailability, error) {
	rec := dbmodels.UserAvailability{}
	err := i.db.
		Model(&dbmodels.UserAvailability{}).
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
		Model(&dbmodels.UserAvailability{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("availability slot not found")
	}
	return nil
}

func (i impl) Delete(id string) error {
	return i.db.
		Delete(&dbmodels.UserAvailability{}, "id = ?", id).
		Error
}

func (i impl) ListByUser(userID string) (list []dbmodels.UserAvailability, err error) {
	list = []dbmodels.UserAvailability{}
	err = i.db.
		Model(dbmodels.UserAvailability{}).
		Where("user_id = ?", userID).
		Order("day_of_week, start_time").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
