package docapimodels

import (
	"time"

	"staffhub-backend/models"
	apimodels "staffhub-backend/models/api"

	"github.com/pkg/errors"
)

type DocumentData struct {
	UserID       string     `json:"user_id,omitempty"`
	Name         string     `json:"name"`
	DocumentType string     `json:"document_type"`
	FileID       string     `json:"file_id,omitempty"`
	ExpiryDate   *time.Time `json:"expiry_date,omitempty"`
}

func (r DocumentData) Validate() error {
	if r.Name == "" {
		return errors.New("document name is required")
	}
	if r.DocumentType == "" {
		return errors.New("document type is required")
	}
	return nil
}

type DocumentView struct {
	ID              string                `json:"id"`
	UserID          string                `json:"user_id"`
	UserName        string                `json:"user_name,omitempty"`
	Name            string                `json:"name"`
	DocumentType    string                `json:"document_type"`
	FileID          string                `json:"file_id,omitempty"`
	ExpiryDate      *time.Time            `json:"expiry_date,omitempty"`
	Status          models.DocumentStatus `json:"status"`
	ReviewedBy      string                `json:"reviewed_by,omitempty"`
	ReviewedAt      *time.Time            `json:"reviewed_at,omitempty"`
	RejectionReason string                `json:"rejection_reason,omitempty"`
}

type DocumentFilter struct {
	apimodels.Pagination
	UserID *string                `json:"user_id,omitempty"`
	Status *models.DocumentStatus `json:"status,omitempty"`
	Type   *string                `json:"document_type,omitempty"`
}

func (r DocumentFilter) Validate() error {
	return nil
}

type RejectRequest struct {
	Reason string `json:"reason"`
}

func (r RejectRequest) Validate() error {
	if r.Reason == "" {
		return errors.New("rejection reason is required")
	}
	return nil
}

type CheckExpiryRequest struct {
	ThresholdDays int `json:"threshold_days,omitempty"`
}

func (r CheckExpiryRequest) Validate() error {
	if r.ThresholdDays < 0 {
		return errors.New("threshold days must not be negative")
	}
	return nil
}

type CheckExpiryResponse struct {
	Affected    int      `json:"affected"`
	DocumentIDs []string `json:"document_ids,omitempty"`
}
