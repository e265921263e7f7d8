package dbmodels

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/pkg/errors"
)

// AuditLog is append-only; rows are never updated or deleted.
type AuditLog struct {
	BaseModel
	ActorID      string `gorm:"index"`
	Action       string `gorm:"type:varchar(100);index"`
	ResourceType string `gorm:"type:varchar(50);index"`
	ResourceID   string
	PHI          bool
	Details      JSONMap `gorm:"type:jsonb"`
}

type JSONMap map[string]interface{}

func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		m = JSONMap{}
	}
	return json.Marshal(m)
}

func (m *JSONMap) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		if s, sok := value.(string); sok {
			b = []byte(s)
		} else {
			return errors.Errorf("unsupported details column type %T", value)
		}
	}
	return json.Unmarshal(b, m)
}
