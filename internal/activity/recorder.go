package activity

import (
	"buildunion/internal/cache"
	domain "buildunion/internal/domain/activity"
	"context"
	"log"

	"github.com/google/uuid"
)

type logInserter interface {
	Insert(ctx context.Context, input domain.InsertLogInput) (*domain.Log, error)
}

type familyInvalidator interface {
	InvalidateFamily(ctx context.Context, resource cache.Resource) error
}

// Recorder appends activity rows as a side effect of the primary mutations.
// It is best-effort by contract: a failed append is logged and discarded, and
// must never fail the operation it annotates.
type Recorder struct {
	repo  logInserter
	cache familyInvalidator
}

func NewRecorder(repo logInserter, cache familyInvalidator) *Recorder {
	return &Recorder{repo: repo, cache: cache}
}

// Record appends one activity row under the given identity. A zero user ID
// means no identity is present and the call is a silent no-op.
func (r *Recorder) Record(ctx context.Context, userID uuid.UUID, projectID *uuid.UUID, action, description string) {
	if userID == uuid.Nil {
		return
	}

	input := domain.InsertLogInput{
		UserID:    userID,
		ProjectID: projectID,
		Action:    action,
	}
	if description != "" {
		input.Description = &description
	}

	if _, err := r.repo.Insert(ctx, input); err != nil {
		log.Printf("activity log failed (action=%s): %v", action, err)
		return
	}

	if err := r.cache.InvalidateFamily(ctx, cache.ResourceActivity); err != nil {
		log.Printf("activity cache invalidation failed: %v", err)
	}
}
