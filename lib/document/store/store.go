package documentstore

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"staffhub-backend/models"
	docapimodels "staffhub-backend/models/api/document"
	dbmodels "staffhub-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Document) (id string, err error)
	GetByID(id string) (rec *dbmodels.Document, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	List(filter docapimodels.DocumentFilter) (list []dbmodels.Document, err error)
	ListCount(filter docapimodels.DocumentFilter) (count int64, err error)
	ListApprovedExpiringBy(deadline time.Time) (list []dbmodels.Document, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Document) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Document, error) {
	rec := dbmodels.Document{}
	err := i.db.
		Model(&dbmodels.Document{}).
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

func (i impl) Update(id string, updMap map[string]interface{}) error {
	tx := i.db.
		Model(&dbmodels.Document{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("document not found")
	}
	return nil
}

func (i impl) Delete(id string) error {
	return i.db.
		Delete(&dbmodels.Document{}, "id = ?", id).
		Error
}

func (i impl) addFilter(tx *gorm.DB, filter docapimodels.DocumentFilter) {
	if filter.UserID != nil {
		tx.Where("user_id = ?", *filter.UserID)
	}
	if filter.Status != nil {
		tx.Where("status = ?", *filter.Status)
	}
	if filter.Type != nil {
		tx.Where("document_type = ?", *filter.Type)
	}
}

func (i impl) List(filter docapimodels.DocumentFilter) (list []dbmodels.Document, err error) {
	list = []dbmodels.Document{}
	tx := i.db.
		Model(dbmodels.Document{}).
		Preload("User").
		Order("created_at DESC")
	i.addFilter(tx, filter)
	page, limit := filter.GetPage()
	tx.Offset((page - 1) * limit).Limit(limit)
	err = tx.Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(filter docapimodels.DocumentFilter) (count int64, err error) {
	tx := i.db.
		Model(dbmodels.Document{})
	i.addFilter(tx, filter)
	err = tx.Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// ListApprovedExpiringBy scans only approved rows, so a repeated sweep
// never touches documents it already flipped.
func (i impl) ListApprovedExpiringBy(deadline time.Time) (list []dbmodels.Document, err error) {
	list = []dbmodels.Document{}
	err = i.db.
		Model(dbmodels.Document{}).
		Where("status = ?", models.DocumentApproved).
		Where("expiry_date IS NOT NULL").
		Where("expiry_date >= ?", time.Now()).
		Where("expiry_date <= ?", deadline).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
