package knowledgeapimodels

import (
	"time"

	"staffhub-backend/models"
	apimodels "staffhub-backend/models/api"

	"github.com/pkg/errors"
)

type ArticleData struct {
	Title         string               `json:"title"`
	Content       string               `json:"content"`
	Category      string               `json:"category,omitempty"`
	PublishStatus models.PublishStatus `json:"publish_status"`
	Visibility    models.Visibility    `json:"visibility"`
	TargetUserIDs []string             `json:"target_user_ids,omitempty"`
	TargetGroups  []string             `json:"target_groups,omitempty"`
}

func (r ArticleData) Validate() error {
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

type ArticleView struct {
	ID                string               `json:"id"`
	Title             string               `json:"title"`
	Content           string               `json:"content"`
	Category          string               `json:"category,omitempty"`
	AuthorID          string               `json:"author_id"`
	PublishStatus     models.PublishStatus `json:"publish_status"`
	Visibility        models.Visibility    `json:"visibility"`
	TargetUserIDs     []string             `json:"target_user_ids,omitempty"`
	TargetGroups      []string             `json:"target_groups,omitempty"`
	AttachmentFileIDs []string             `json:"attachment_file_ids,omitempty"`
	CreatedAt         time.Time            `json:"created_at"`
	UpdatedAt         time.Time            `json:"updated_at"`
}

type ArticleFilter struct {
	apimodels.Pagination
	Search   *string `json:"search,omitempty"`
	Category *string `json:"category,omitempty"`
}

func (r ArticleFilter) Validate() error {
	return nil
}
