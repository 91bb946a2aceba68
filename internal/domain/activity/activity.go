package activity

import (
	"time"

	"github.com/google/uuid"
)

// ListLimit caps activity feed reads at the most recent entries.
const ListLimit = 50

// Action tags recorded by the mutating operations.
const (
	ActionProjectCreated    = "project_created"
	ActionProjectUpdated    = "project_updated"
	ActionProjectDeleted    = "project_deleted"
	ActionBlueprintUploaded = "blueprint_uploaded"
	ActionBlueprintDeleted  = "blueprint_deleted"
)

type Log struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	ProjectID   *uuid.UUID `json:"project_id"`
	Action      string     `json:"action"`
	Description *string    `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
}

type InsertLogInput struct {
	UserID      uuid.UUID
	ProjectID   *uuid.UUID
	Action      string
	Description *string
}

type ListLogsFilter struct {
	UserID    uuid.UUID
	ProjectID *uuid.UUID
	Limit     int
}
