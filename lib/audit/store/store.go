package auditstore

import (
	"gorm.io/gorm"
	auditapimodels "staffhub-backend/models/api/audit"
	dbmodels "staffhub-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.AuditLog) error
	List(filter auditapimodels.AuditLogFilter) (list []dbmodels.AuditLog, err error)
	ListCount(filter auditapimodels.AuditLogFilter) (count int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.AuditLog) error {
	return i.db.
		Create(&rec).
		Error
}

func (i impl) addFilter(tx *gorm.DB, filter auditapimodels.AuditLogFilter) {
	if filter.ActorID != nil {
		tx.Where("actor_id = ?", *filter.ActorID)
	}
	if filter.ResourceType != nil {
		tx.Where("resource_type = ?", *filter.ResourceType)
	}
	if filter.From != nil {
		tx.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		tx.Where("created_at <= ?", *filter.To)
	}
}

func (i impl) List(filter auditapimodels.AuditLogFilter) (list []dbmodels.AuditLog, err error) {
	list = []dbmodels.AuditLog{}
	tx := i.db.
		Model(dbmodels.AuditLog{}).
		Order("created_at desc")
	i.addFilter(tx, filter)
	page, limit := filter.GetPage()
	tx.Offset((page - 1) * limit).Limit(limit)
	err = tx.Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(filter auditapimodels.AuditLogFilter) (count int64, err error) {
	tx := i.db.
		Model(dbmodels.AuditLog{})
	i.addFilter(tx, filter)
	err = tx.Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
