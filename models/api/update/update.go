package updateapimodels

import (
	"time"

	"staffhub-backend/models"
	apimodels "staffhub-backend/models/api"

	"github.com/pkg/errors"
)

type UpdateData struct {
	Title         string               `json:"title"`
	Body          string               `json:"body"`
	PublishStatus models.PublishStatus `json:"publish_status"`
	Visibility    models.Visibility    `json:"visibility"`
	TargetUserIDs []string             `json:"target_user_ids,omitempty"`
	TargetGroups  []string             `json:"target_groups,omitempty"`
}

func (r UpdateData) Validate() error {
	if r.Title == "" {
		return errors.New("title is required")
	}
	switch r.PublishStatus {
	case models.PublishDraft, models.PublishPublished:
	default:
		return errors.Errorf("unknown publish status (%v)", r.PublishStatus)
	}
	switch r.Visibility {
	case models.VisibilityAll:
	case models.VisibilitySpecificUsers:
		if len(r.TargetUserIDs) == 0 && len(r.TargetGroups) == 0 {
			return errors.New("specific_users visibility requires target users or groups")
		}
	default:
		return errors.Errorf("unknown visibility (%v)", r.Visibility)
	}
	return nil
}

type UpdateView struct {
	ID                string               `json:"id"`
	Title             string               `json:"title"`
	Body              string               `json:"body"`
	AuthorID          string               `json:"author_id"`
	PublishStatus     models.PublishStatus `json:"publish_status"`
	Visibility        models.Visibility    `json:"visibility"`
	AttachmentFileIDs []string             `json:"attachment_file_ids,omitempty"`
	LikeCount         int                  `json:"like_count"`
	AckCount          int                  `json:"ack_count"`
	LikedByViewer     bool                 `json:"liked_by_viewer"`
	AckedByViewer     bool                 `json:"acked_by_viewer"`
	Comments          []CommentView        `json:"comments,omitempty"`
	CreatedAt         time.Time            `json:"created_at"`
}

type CommentView struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

type CommentData struct {
	Body string `json:"body"`
}

func (r CommentData) Validate() error {
	if r.Body == "" {
		return errors.New("comment body is required")
	}
	return nil
}

type LikeRequest struct {
	Liked bool `json:"liked"`
}

type UpdateFilter struct {
	apimodels.Pagination
}
