package dbmodels

import (
	"staffhub-backend/models"
)

type Notification struct {
	BaseModel
	UserID       string                  `gorm:"index"`
	Kind         models.NotificationKind `gorm:"type:varchar(50);index"`
	ResourceID   string                  `gorm:"index"`
	ResourceType string                  `gorm:"type:varchar(50)"`
	Message      string                  `gorm:"type:varchar(1000)"`
	Read         bool
}
