package dbmodels

import (
	"time"
)

// BaseModel is embedded by every table. IDs come from the uuid-ossp
// extension, which the migration enables before AutoMigrate runs.
type BaseModel struct {
	ID        string    `gorm:"primaryKey;default:uuid_generate_v4()" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
