package models

import (
	"time"

	"github.com/google/uuid"
)

// Section is a rectangular container on the canvas. Steps reference their
// section through Step.SectionID (a weak back-relation): deleting a section
// orphans its steps, it never deletes them.
type Section struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	WorkspaceID uuid.UUID `gorm:"type:uuid;index;not null" json:"workspace_id" validate:"required"`
	TabID       uuid.UUID `gorm:"type:uuid;index;not null" json:"tab_id" validate:"required"`
	Name        string    `gorm:"not null" json:"name" validate:"required"`
	Summary     *string   `gorm:"type:text" json:"summary"`
	PositionX   float64   `gorm:"not null;default:0" json:"position_x"`
	PositionY   float64   `gorm:"not null;default:0" json:"position_y"`
	Width       float64   `gorm:"not null;default:400" json:"width"`
	Height      float64   `gorm:"not null;default:300" json:"height"`
	Notes       *string   `gorm:"type:text" json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
