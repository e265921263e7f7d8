package dbmodels

import (
	"time"

	"staffhub-backend/models"
	docapimodels "staffhub-backend/models/api/document"
)

type Document struct {
	BaseModel
	UserID       string `gorm:"index"`
	User         *User  `gorm:"foreignKey:UserID"`
	Name         string `gorm:"type:varchar(255)"`
	DocumentType string `gorm:"type:varchar(100)"`
	FileID       string

	ExpiryDate *time.Time
	Status     models.DocumentStatus `gorm:"type:varchar(20);index"`

	ReviewedBy      string
	ReviewedAt      *time.Time
	RejectionReason string `gorm:"type:varchar(500)"`
}

func (r Document) ToModel() docapimodels.DocumentView {
	view := docapimodels.DocumentView{
		ID:              r.ID,
		UserID:          r.UserID,
		Name:            r.Name,
		DocumentType:    r.DocumentType,
		FileID:          r.FileID,
		ExpiryDate:      r.ExpiryDate,
		Status:          r.Status,
		ReviewedBy:      r.ReviewedBy,
		ReviewedAt:      r.ReviewedAt,
		RejectionReason: r.RejectionReason,
	}
	if r.User != nil {
		view.UserName = r.User.GetFullName()
	}
	return view
}
