package dbmodels

import (
	"staffhub-backend/models"
	knowledgeapimodels "staffhub-backend/models/api/knowledge"
)

type KnowledgeArticle struct {
	BaseModel
	Title    string `gorm:"type:varchar(255)"`
	Content  string `gorm:"type:text"`
	Category string `gorm:"type:varchar(150)"`
	AuthorID string

	PublishStatus models.PublishStatus `gorm:"type:varchar(20);index"`
	Visibility    models.Visibility    `gorm:"type:varchar(20)"`
	TargetUserIDs StringList           `gorm:"type:jsonb"`
	TargetGroups  StringList           `gorm:"type:jsonb"`

	AttachmentFileIDs StringList `gorm:"type:jsonb"`
}

func (r KnowledgeArticle) ToModel() knowledgeapimodels.ArticleView {
	return knowledgeapimodels.ArticleView{
		ID:                r.ID,
		Title:             r.Title,
		Content:           r.Content,
		Category:          r.Category,
		AuthorID:          r.AuthorID,
		PublishStatus:     r.PublishStatus,
		Visibility:        r.Visibility,
		TargetUserIDs:     r.TargetUserIDs,
		TargetGroups:      r.TargetGroups,
		AttachmentFileIDs: r.AttachmentFileIDs,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}
