package auditapimodels

import (
	"time"

	apimodels "staffhub-backend/models/api"
)

type AuditLogView struct {
	ID           string                 `json:"id"`
	ActorID      string                 `json:"actor_id"`
	Action       string                 `json:"action"`
	ResourceType string                 `json:"resource_type"`
	ResourceID   string                 `json:"resource_id,omitempty"`
	PHI          bool                   `json:"phi"`
	Details      map[string]interface{} `json:"details,omitempty"`
	CreatedAt    time.Time              `json:"created_at"`
}

type AuditLogFilter struct {
	apimodels.Pagination
	ActorID      *string    `json:"actor_id,omitempty"`
	ResourceType *string    `json:"resource_type,omitempty"`
	From         *time.Time `json:"from,omitempty"`
	To           *time.Time `json:"to,omitempty"`
}

func (r AuditLogFilter) Validate() error {
	return nil
}
