package updatestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	updateapimodels "staffhub-backend/models/api/update"
	dbmodels "staffhub-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Update) (id string, err error)
	GetByID(id string) (rec *dbmodels.Update, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	List(filter updateapimodels.UpdateFilter) (list []dbmodels.Update, err error)

	AddComment(rec dbmodels.UpdateComment) (id string, err error)
	SetLike(updateID, userID string) error
	RemoveLike(updateID, userID string) error
	SetAck(updateID, userID string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Update) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Update, error) {
	rec := dbmodels.Update{}
	err := i.db.
		Model(&dbmodels.Update{}).
		Where("id = ?", id).
		Preload(clause.Associations).
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
		Model(&dbmodels.Update{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("update not found")
	}
	return nil
}

func (i impl) Delete(id string) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		for _, children := range []interface{}{
			&dbmodels.UpdateComment{}, &dbmodels.UpdateLike{}, &dbmodels.UpdateAck{},
		} {
			if err := tx.Delete(children, "update_id = ?", id).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&dbmodels.Update{}, "id = ?", id).Error
	})
}

func (i impl) List(filter updateapimodels.UpdateFilter) (list []dbmodels.Update, err error) {
	list = []dbmodels.Update{}
	tx := i.db.
		Model(dbmodels.Update{}).
		Preload(clause.Associations).
		Order("created_at DESC")
	err = tx.Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) AddComment(rec dbmodels.UpdateComment) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) SetLike(updateID, userID string) error {
	err := i.db.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&dbmodels.UpdateLike{UpdateID: updateID, UserID: userID}).
		Error
	return errors.Wrap(err, "like upsert failed")
}

func (i impl) RemoveLike(updateID, userID string) error {
	return i.db.
		Delete(&dbmodels.UpdateLike{}, "update_id = ? AND user_id = ?", updateID, userID).
		Error
}

func (i impl) SetAck(updateID, userID string) error {
	err := i.db.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&dbmodels.UpdateAck{UpdateID: updateID, UserID: userID}).
		Error
	return errors.Wrap(err, "ack upsert failed")
}
