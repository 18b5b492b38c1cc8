package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Viewport is the persisted camera state of a tab's canvas.
type Viewport struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Zoom float64 `json:"zoom"`
}

// Value implements driver.Valuer so a viewport is stored as JSONB.
func (v Viewport) Value() (driver.Value, error) {
	return json.Marshal(v)
}

// Scan implements sql.Scanner.
func (v *Viewport) Scan(src any) error {
	switch b := src.(type) {
	case []byte:
		return json.Unmarshal(b, v)
	case string:
		return json.Unmarshal([]byte(b), v)
	default:
		return fmt.Errorf("unsupported viewport type %T", src)
	}
}

// Tab is one visual canvas within a workspace. Sections, steps, and
// connections are scoped by tab_id. A workspace always keeps at least
// one tab; deleting the last one is refused.
type Tab struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	WorkspaceID uuid.UUID `gorm:"type:uuid;index;not null" json:"workspace_id" validate:"required"`
	Name        string    `gorm:"not null" json:"name" validate:"required"`
	Position    int       `gorm:"not null;default:0" json:"position"`
	Viewport    *Viewport `gorm:"type:jsonb" json:"viewport"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
