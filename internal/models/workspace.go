package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Workspace is the top-level container for a process map. Each workspace
// owns one or more tabs; every canvas entity is scoped to a workspace.
type Workspace struct {
	ID        uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string            `gorm:"not null" json:"name" validate:"required"`
	Slug      string            `gorm:"index" json:"slug"`
	IsActive  bool              `gorm:"not null;default:true" json:"is_active"`
	Settings  datatypes.JSONMap `gorm:"type:jsonb" json:"settings"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`

	Tabs []Tab `gorm:"foreignKey:WorkspaceID" json:"tabs,omitempty"`
}
