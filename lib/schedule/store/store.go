package schedulestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbmodels "staffhub-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Schedule) (id string, err error)
	GetByID(id string) (rec *dbmodels.Schedule, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	List() (list []dbmodels.Schedule, err error)

	CreateTemplate(rec dbmodels.ShiftTemplate) (id string, err error)
	GetTemplate(id string) (rec *dbmodels.ShiftTemplate, err error)
	UpdateTemplate(id string, updMap map[string]interface{}) error
	DeleteTemplate(id string) error
	ListTemplates() (list []dbmodels.ShiftTemplate, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Schedule) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Schedule, error) {
	rec := dbmodels.Schedule{}
	err := i.db.
		Model(&dbmodels.Schedule{}).
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
		Model(&dbmodels.Schedule{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("schedule not found")
	}
	return nil
}

func (i impl) Delete(id string) error {
	return i.db.
		Delete(&dbmodels.Schedule{}, "id = ?", id).
		Error
}

func (i impl) List() (list []dbmodels.Schedule, err error) {
	list = []dbmodels.Schedule{}
	err = i.db.
		Model(dbmodels.Schedule{}).
		Order("start_date DESC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) CreateTemplate(rec dbmodels.ShiftTemplate) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetTemplate(id string) (*dbmodels.ShiftTemplate, error) {
	rec := dbmodels.ShiftTemplate{}
	err := i.db.
		Model(&dbmodels.ShiftTemplate{}).
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

func (i impl) UpdateTemplate(id string, updMap map[string]interface{}) error {
	tx := i.db.
		Model(&dbmodels.ShiftTemplate{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("shift template not found")
	}
	return nil
}

func (i impl) DeleteTemplate(id string) error {
	return i.db.
		Delete(&dbmodels.ShiftTemplate{}, "id = ?", id).
		Error
}

func (i impl) ListTemplates() (list []dbmodels.ShiftTemplate, err error) {
	list = []dbmodels.ShiftTemplate{}
	err = i.db.
		Model(dbmodels.ShiftTemplate{}).
		Order("name").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
