package notificationstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"staffhub-backend/models"
	dbmodels "staffhub-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Notification) (id string, err error)
	ListByUser(userID string, unreadOnly bool) (list []dbmodels.Notification, err error)
	MarkRead(userID, id string) error
	DeleteByResource(kind models.NotificationKind, resourceID string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Notification) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ListByUser(userID string, unreadOnly bool) (list []dbmodels.Notification, err error) {
	list = []dbmodels.Notification{}
	tx := i.db.
		Model(dbmodels.Notification{}).
		Where("user_id = ?", userID).
		Order("created_at desc")
	if unreadOnly {
		tx.Where("read = false")
	}
	err = tx.Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) MarkRead(userID, id string) error {
	tx := i.db.
		Model(&dbmodels.Notification{}).
		Where("id = ?", id).
		Where("user_id = ?", userID).
		Update("read", true)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("notification not found")
	}
	return nil
}

func (i impl) DeleteByResource(kind models.NotificationKind, resourceID string) error {
	return i.db.
		Where("kind = ?", kind).
		Where("resource_id = ?", resourceID).
		Delete(&dbmodels.Notification{}).
		Error
}
