package project

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	Status      Status     `json:"status"`
	Location    *string    `json:"location"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Budget      *float64   `json:"budget"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type CreateProjectInput struct {
	UserID      uuid.UUID
	Name        string
	Description *string
	Status      Status
	Location    *string
	StartDate   *time.Time
	EndDate     *time.Time
	Budget      *float64
}

type UpdateProjectInput struct {
	Name        *string
	Description *string
	Status      *Status
	Location    *string
	StartDate   *time.Time
	EndDate     *time.Time
	Budget      *float64
}

// IsZero reports whether the update carries no fields at all.
func (u UpdateProjectInput) IsZero() bool {
	return u.Name == nil && u.Description == nil && u.Status == nil &&
		u.Location == nil && u.StartDate == nil && u.EndDate == nil && u.Budget == nil
}

type Status string

const (
	StatusPlanning   Status = "planning"
	StatusInProgress Status = "in_progress"
	StatusOnHold     Status = "on_hold"
	StatusCompleted  Status = "completed"

	errInvalidStatusFmt = "invalid project status: %s"
)

// Validate validates the status against the four allowed values.
func (s Status) Validate() error {
	switch s {
	case StatusPlanning, StatusInProgress, StatusOnHold, StatusCompleted:
		return nil
	default:
		return fmt.Errorf(errInvalidStatusFmt, s)
	}
}

// StatusSummary holds per-status project counts for the dashboard.
type StatusSummary struct {
	Planning   int `json:"planning"`
	InProgress int `json:"in_progress"`
	OnHold     int `json:"on_hold"`
	Completed  int `json:"completed"`
}

func (s StatusSummary) Total() int {
	return s.Planning + s.InProgress + s.OnHold + s.Completed
}
