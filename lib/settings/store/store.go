package settingsstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbmodels "staffhub-backend/models/db"
)

type Provider interface {
	Get(key string) (value string, found bool, err error)
	Set(key, value string) error
	List() (list []dbmodels.AppSetting, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return impl{db: DB}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Get(key string) (string, bool, error) {
	var rec dbmodels.AppSetting
	err := i.db.
		Where("key = ?", key).
		First(&rec).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrap(err, "setting lookup failed")
	}
	return rec.Value, true, nil
}

func (i impl) Set(key, value string) error {
	err := i.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&dbmodels.AppSetting{Key: key, Value: value}).
		Error
	return errors.Wrap(err, "setting upsert failed")
}

func (i impl) List() (list []dbmodels.AppSetting, err error) {
	err = i.db.
		Order("key").
		Find(&list).
		Error
	return list, errors.Wrap(err, "settings listing failed")
}
