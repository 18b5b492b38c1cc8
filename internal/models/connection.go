package models

import (
	"time"

	"github.com/google/uuid"
)

// Connection is a directed edge between two distinct steps on the same tab.
// Connections are immutable once created; the unique index rejects a second
// edge for the same (tab, source, target) triple.
type Connection struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	WorkspaceID  uuid.UUID `gorm:"type:uuid;index;not null" json:"workspace_id" validate:"required"`
	TabID        uuid.UUID `gorm:"type:uuid;not null;index:idx_connections_unique_edge,unique" json:"tab_id" validate:"required"`
	SourceStepID uuid.UUID `gorm:"type:uuid;not null;index:idx_connections_unique_edge,unique" json:"source_step_id" validate:"required"`
	TargetStepID uuid.UUID `gorm:"type:uuid;not null;index:idx_connections_unique_edge,unique" json:"target_step_id" validate:"required"`
	CreatedAt    time.Time `json:"created_at"`
}
