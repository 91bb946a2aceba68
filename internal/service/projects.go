package service

import (
	"buildunion/internal/cache"
	"buildunion/internal/domain/activity"
	"buildunion/internal/domain/project"
	apperrors "buildunion/pkg/errors"
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
)

// ProjectService owns the project resource: user-scoped list reads through
// the query cache, and mutations that run the ordered chain
// primary write -> activity append -> cache invalidation -> notification.
type ProjectService struct {
	repo     ProjectRepository
	cache    QueryCache
	recorder ActivityRecorder
	notifier Notifier
}

func NewProjectService(repo ProjectRepository, cache QueryCache, recorder ActivityRecorder, notifier Notifier) *ProjectService {
	return &ProjectService{
		repo:     repo,
		cache:    cache,
		recorder: recorder,
		notifier: notifier,
	}
}

// List returns the caller's projects, newest first. Without an identity there
// is nothing to fetch: the result is empty and no repository or cache call is
// made.
func (s *ProjectService) List(ctx context.Context, userID uuid.UUID) ([]*project.Project, error) {
	if userID == uuid.Nil {
		return []*project.Project{}, nil
	}

	filter := userID.String()

	var cached []*project.Project
	if found, err := s.cache.Get(ctx, cache.ResourceProjects, filter, &cached); err == nil && found {
		return cached, nil
	}

	projects, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if projects == nil {
		projects = []*project.Project{}
	}

	if err := s.cache.Set(ctx, cache.ResourceProjects, filter, projects); err != nil {
		log.Printf("project cache set failed: %v", err)
	}

	return projects, nil
}

func (s *ProjectService) Get(ctx context.Context, userID, id uuid.UUID) (*project.Project, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.UserID != userID {
		return nil, apperrors.NotFound(errProjectNotOwned)
	}
	return p, nil
}

func (s *ProjectService) Create(ctx context.Context, input project.CreateProjectInput) (*project.Project, error) {
	p, err := s.repo.Create(ctx, input)
	if err != nil {
		s.notifier.Error(ctx, input.UserID, fmt.Sprintf(msgCreateProjectFailFmt, err))
		return nil, err
	}

	s.recorder.Record(ctx, p.UserID, &p.ID, activity.ActionProjectCreated, fmt.Sprintf(descCreatedProjectFmt, p.Name))
	s.invalidate(ctx)
	s.notifier.Success(ctx, p.UserID, msgProjectCreated)

	return p, nil
}

// Update applies a partial field set; unset fields are left untouched and
// concurrent updates are last-write-wins at the repository.
func (s *ProjectService) Update(ctx context.Context, userID, id uuid.UUID, input project.UpdateProjectInput) (*project.Project, error) {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return nil, err
	}

	p, err := s.repo.Update(ctx, id, input)
	if err != nil {
		s.notifier.Error(ctx, userID, fmt.Sprintf(msgUpdateProjectFailFmt, err))
		return nil, err
	}

	s.recorder.Record(ctx, userID, &id, activity.ActionProjectUpdated, fmt.Sprintf(descUpdatedProjectFmt, p.Name))
	s.invalidate(ctx)
	s.notifier.Success(ctx, userID, msgProjectUpdated)

	return p, nil
}

// Delete removes the project row. Child blueprints and activity rows are the
// database's business, not the application's.
func (s *ProjectService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	p, err := s.Get(ctx, userID, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.notifier.Error(ctx, userID, fmt.Sprintf(msgDeleteProjectFailFmt, err))
		return err
	}

	// The project row is gone, so the activity entry carries no project
	// reference, only the name in its description.
	s.recorder.Record(ctx, userID, nil, activity.ActionProjectDeleted, fmt.Sprintf(descDeletedProjectFmt, p.Name))
	s.invalidate(ctx)
	s.notifier.Success(ctx, userID, msgProjectDeleted)

	return nil
}

func (s *ProjectService) invalidate(ctx context.Context) {
	if err := s.cache.InvalidateFamily(ctx, cache.ResourceProjects); err != nil {
		log.Printf("project cache invalidation failed: %v", err)
	}
}

const errProjectNotOwned = "project not found"
