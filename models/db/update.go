package dbmodels

import (
	"staffhub-backend/models"
	updateapimodels "staffhub-backend/models/api/update"
)

type Update struct {
	BaseModel
	Title    string `gorm:"type:varchar(255)"`
	Body     string `gorm:"type:text"`
	AuthorID string

	PublishStatus models.PublishStatus `gorm:"type:varchar(20);index"`
	Visibility    models.Visibility    `gorm:"type:varchar(20)"`
	TargetUserIDs StringList           `gorm:"type:jsonb"`
	TargetGroups  StringList           `gorm:"type:jsonb"`

	AttachmentFileIDs StringList `gorm:"type:jsonb"`

	Comments []UpdateComment `gorm:"foreignKey:UpdateID"`
	Likes    []UpdateLike    `gorm:"foreignKey:UpdateID"`
	Acks     []UpdateAck     `gorm:"foreignKey:UpdateID"`
}

type UpdateComment struct {
	BaseModel
	UpdateID string `gorm:"index"`
	UserID   string
	Body     string `gorm:"type:varchar(2000)"`
}

type UpdateLike struct {
	BaseModel
	UpdateID string `gorm:"index:idx_update_like,unique"`
	UserID   string `gorm:"index:idx_update_like,unique"`
}

type UpdateAck struct {
	BaseModel
	UpdateID string `gorm:"index:idx_update_ack,unique"`
	UserID   string `gorm:"index:idx_update_ack,unique"`
}

func (r Update) ToModel(viewerID string) updateapimodels.UpdateView {
	view := updateapimodels.UpdateView{
		ID:                r.ID,
		Title:             r.Title,
		Body:              r.Body,
		AuthorID:          r.AuthorID,
		PublishStatus:     r.PublishStatus,
		Visibility:        r.Visibility,
		AttachmentFileIDs: r.AttachmentFileIDs,
		LikeCount:         len(r.Likes),
		AckCount:          len(r.Acks),
		CreatedAt:         r.CreatedAt,
	}
	for _, like := range r.Likes {
		if like.UserID == viewerID {
			view.LikedByViewer = true
			break
		}
	}
	for _, ack := range r.Acks {
		if ack.UserID == viewerID {
			view.AckedByViewer = true
			break
		}
	}
	for _, comment := range r.Comments {
		view.Comments = append(view.Comments, updateapimodels.CommentView{
			ID:        comment.ID,
			UserID:    comment.UserID,
			Body:      comment.Body,
			CreatedAt: comment.CreatedAt,
		})
	}
	return view
}
