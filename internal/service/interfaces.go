package service

import (
	"buildunion/internal/cache"
	"buildunion/internal/domain/activity"
	"buildunion/internal/domain/blueprint"
	"buildunion/internal/domain/project"
	"context"
	"io"
	"time"

	"github.com/google/uuid"
)

// Consumer-side interfaces defined by the services
// Each interface contains only the methods needed by the specific service

type ProjectRepository interface {
	Create(ctx context.Context, input project.CreateProjectInput) (*project.Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (*project.Project, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*project.Project, error)
	Update(ctx context.Context, id uuid.UUID, input project.UpdateProjectInput) (*project.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type BlueprintRepository interface {
	Create(ctx context.Context, input blueprint.CreateBlueprintInput) (*blueprint.Blueprint, error)
	GetByID(ctx context.Context, id uuid.UUID) (*blueprint.Blueprint, error)
	List(ctx context.Context, filter blueprint.ListBlueprintsFilter) ([]*blueprint.Blueprint, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ActivityRepository interface {
	List(ctx context.Context, filter activity.ListLogsFilter) ([]*activity.Log, error)
}

type StatusCounter interface {
	CountByStatus(ctx context.Context, userID uuid.UUID) (*project.StatusSummary, error)
}

type BlueprintCounter interface {
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
}

type ActivityCounter interface {
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
}

// BlobStore is the blueprint object storage.
type BlobStore interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) error
	Remove(ctx context.Context, key string) error
	SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)
}

// QueryCache mirrors the last successful list read per resource family.
type QueryCache interface {
	Get(ctx context.Context, resource cache.Resource, filter string, dst interface{}) (bool, error)
	Set(ctx context.Context, resource cache.Resource, filter string, v interface{}) error
	InvalidateFamily(ctx context.Context, resource cache.Resource) error
}

// ActivityRecorder is the best-effort side-channel; it never returns an error.
type ActivityRecorder interface {
	Record(ctx context.Context, userID uuid.UUID, projectID *uuid.UUID, action, description string)
}

// Notifier delivers transient toasts; fire-and-forget.
type Notifier interface {
	Success(ctx context.Context, userID uuid.UUID, message string)
	Error(ctx context.Context, userID uuid.UUID, message string)
}
