package handler

import (
	"context"

	"buildunion/internal/domain/activity"
	"buildunion/internal/domain/blueprint"
	"buildunion/internal/domain/project"
	"buildunion/internal/service"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Consumer-side interfaces defined by handlers
// Each interface contains only the methods needed by the specific handler

// AuthHandler interfaces
type UserAuthenticator interface {
	Signup(ctx context.Context, email, password string) (*service.AuthResult, error)
	Login(ctx context.Context, email, password string) (*service.AuthResult, error)
}

// ProjectHandler interfaces
type ProjectService interface {
	List(ctx context.Context, userID uuid.UUID) ([]*project.Project, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*project.Project, error)
	Create(ctx context.Context, input project.CreateProjectInput) (*project.Project, error)
	Update(ctx context.Context, userID, id uuid.UUID, input project.UpdateProjectInput) (*project.Project, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// BlueprintHandler interfaces
type BlueprintService interface {
	List(ctx context.Context, userID uuid.UUID, projectID *uuid.UUID) ([]*blueprint.Blueprint, error)
	Upload(ctx context.Context, input service.UploadBlueprintInput) (*blueprint.Blueprint, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	SignedURL(ctx context.Context, userID, id uuid.UUID) (string, error)
}

// ActivityHandler interfaces
type ActivityService interface {
	List(ctx context.Context, userID uuid.UUID, projectID *uuid.UUID) ([]*activity.Log, error)
}

// DashboardHandler interfaces
type DashboardService interface {
	Summary(ctx context.Context, userID uuid.UUID) (*service.DashboardSummary, error)
}

// NotificationHandler interfaces
type NotificationSubscriber interface {
	Subscribe(ctx context.Context, userID uuid.UUID) *redis.PubSub
}
