package types

import "encoding/json"

type WorkspaceCreateRequest struct {
	Name string `json:"name" validate:"required"`
}

type TabCreateRequest struct {
	WorkspaceID string `json:"workspace_id" validate:"required,uuid4"`
	Name        string `json:"name" validate:"required"`
}

type SectionCreateRequest struct {
	WorkspaceID string   `json:"workspace_id" validate:"required,uuid4"`
	TabID       string   `json:"tab_id" validate:"required,uuid4"`
	Name        string   `json:"name"`
	PositionX   *float64 `json:"position_x"`
	PositionY   *float64 `json:"position_y"`
	Width       *float64 `json:"width"`
	Height      *float64 `json:"height"`
}

type StepCreateRequest struct {
	WorkspaceID       string          `json:"workspace_id" validate:"required,uuid4"`
	TabID             string          `json:"tab_id" validate:"required,uuid4"`
	SectionID         *string         `json:"section_id" validate:"omitempty,uuid4"`
	Name              string          `json:"name"`
	PositionX         *float64        `json:"position_x"`
	PositionY         *float64        `json:"position_y"`
	Status            *string         `json:"status" validate:"omitempty,oneof=draft in_progress testing live archived"`
	StepType          *string         `json:"step_type"`
	Executor          *string         `json:"executor" validate:"omitempty,oneof=person automation ai_agent empty"`
	Notes             *string         `json:"notes"`
	VideoURL          *string         `json:"video_url"`
	Attributes        json.RawMessage `json:"attributes"`
	TimeMinutes       *int            `json:"time_minutes" validate:"omitempty,gte=0"`
	FrequencyPerMonth *int            `json:"frequency_per_month" validate:"omitempty,gte=0"`
}

type ConnectionCreateRequest struct {
	WorkspaceID  string `json:"workspace_id" validate:"required,uuid4"`
	TabID        string `json:"tab_id" validate:"required,uuid4"`
	SourceStepID string `json:"source_step_id" validate:"required,uuid4"`
	TargetStepID string `json:"target_step_id" validate:"required,uuid4"`
}

// Patch is a raw field map decoded from a PATCH body. Handlers apply only
// whitelisted keys; an explicit JSON null clears a nullable column, an
// absent key leaves it untouched.
type Patch map[string]json.RawMessage

// Has reports whether the field was present in the body at all.
func (p Patch) Has(field string) bool {
	_, ok := p[field]
	return ok
}
