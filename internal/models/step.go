package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// StepStatus is the lifecycle state of a step.
type StepStatus string

const (
	StatusDraft      StepStatus = "draft"
	StatusInProgress StepStatus = "in_progress"
	StatusTesting    StepStatus = "testing"
	StatusLive       StepStatus = "live"
	StatusArchived   StepStatus = "archived"
)

// ExecutorType names who (or what) performs a step.
type ExecutorType string

const (
	ExecutorPerson     ExecutorType = "person"
	ExecutorAutomation ExecutorType = "automation"
	ExecutorAIAgent    ExecutorType = "ai_agent"
	ExecutorEmpty      ExecutorType = "empty"
)

// Step is the atomic unit of a process map.
type Step struct {
	ID                uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	WorkspaceID       uuid.UUID         `gorm:"type:uuid;index;not null" json:"workspace_id" validate:"required"`
	TabID             uuid.UUID         `gorm:"type:uuid;index;not null" json:"tab_id" validate:"required"`
	SectionID         *uuid.UUID        `gorm:"type:uuid;index" json:"section_id"`
	Name              string            `gorm:"not null" json:"name" validate:"required"`
	PositionX         float64           `gorm:"not null;default:0" json:"position_x"`
	PositionY         float64           `gorm:"not null;default:0" json:"position_y"`
	Status            StepStatus        `gorm:"type:varchar(32);not null;default:draft" json:"status" validate:"required,oneof=draft in_progress testing live archived"`
	StepType          *string           `gorm:"type:varchar(64)" json:"step_type"`
	Executor          ExecutorType      `gorm:"type:varchar(32);not null;default:empty" json:"executor" validate:"required,oneof=person automation ai_agent empty"`
	Notes             *string           `gorm:"type:text" json:"notes"`
	VideoURL          *string           `gorm:"type:text" json:"video_url"`
	Attributes        datatypes.JSONMap `gorm:"type:jsonb" json:"attributes"`
	TimeMinutes       *int              `json:"time_minutes"`
	FrequencyPerMonth *int              `json:"frequency_per_month"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}
