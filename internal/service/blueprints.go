package service

import (
	"buildunion/internal/cache"
	"buildunion/internal/domain/activity"
	"buildunion/internal/domain/blueprint"
	"buildunion/internal/storage/s3"
	apperrors "buildunion/pkg/errors"
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/google/uuid"
)

// UploadBlueprintInput carries the multipart payload down from the handler.
type UploadBlueprintInput struct {
	UserID      uuid.UUID
	ProjectID   uuid.UUID
	Name        string
	FileName    string
	ContentType string
	Body        io.Reader
}

// BlueprintService manages blueprint metadata and the backing objects. An
// upload is strictly ordered: the object is stored first, then the metadata
// row, then the activity entry and cache invalidation. A failure aborts every
// later step; an object whose metadata insert failed is left behind rather
// than compensated.
type BlueprintService struct {
	repo     BlueprintRepository
	projects ProjectRepository
	store    BlobStore
	cache    QueryCache
	recorder ActivityRecorder
	notifier Notifier

	signedURLTTL time.Duration
	now          func() time.Time
}

func NewBlueprintService(
	repo BlueprintRepository,
	projects ProjectRepository,
	store BlobStore,
	cache QueryCache,
	recorder ActivityRecorder,
	notifier Notifier,
	signedURLTTL time.Duration,
) *BlueprintService {
	return &BlueprintService{
		repo:         repo,
		projects:     projects,
		store:        store,
		cache:        cache,
		recorder:     recorder,
		notifier:     notifier,
		signedURLTTL: signedURLTTL,
		now:          time.Now,
	}
}

// List returns the caller's blueprints, optionally narrowed to one project.
// Anonymous callers get an empty result without touching the repository or
// the cache.
func (s *BlueprintService) List(ctx context.Context, userID uuid.UUID, projectID *uuid.UUID) ([]*blueprint.Blueprint, error) {
	if userID == uuid.Nil {
		return []*blueprint.Blueprint{}, nil
	}

	filter := userID.String()
	if projectID != nil {
		filter += ":" + projectID.String()
	}

	var cached []*blueprint.Blueprint
	if found, err := s.cache.Get(ctx, cache.ResourceBlueprints, filter, &cached); err == nil && found {
		return cached, nil
	}

	blueprints, err := s.repo.List(ctx, blueprint.ListBlueprintsFilter{UserID: userID, ProjectID: projectID})
	if err != nil {
		return nil, err
	}
	if blueprints == nil {
		blueprints = []*blueprint.Blueprint{}
	}

	if err := s.cache.Set(ctx, cache.ResourceBlueprints, filter, blueprints); err != nil {
		log.Printf("blueprint cache set failed: %v", err)
	}

	return blueprints, nil
}

func (s *BlueprintService) Get(ctx context.Context, userID, id uuid.UUID) (*blueprint.Blueprint, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.UserID != userID {
		return nil, apperrors.NotFound(errBlueprintNotOwned)
	}
	return b, nil
}

// Upload stores the object, then the metadata row, then records activity and
// invalidates the blueprint cache family.
func (s *BlueprintService) Upload(ctx context.Context, input UploadBlueprintInput) (*blueprint.Blueprint, error) {
	p, err := s.projects.GetByID(ctx, input.ProjectID)
	if err != nil {
		s.notifier.Error(ctx, input.UserID, fmt.Sprintf(msgUploadBlueprintFailFmt, err))
		return nil, err
	}
	if p.UserID != input.UserID {
		err := apperrors.NotFound(errProjectNotOwned)
		s.notifier.Error(ctx, input.UserID, fmt.Sprintf(msgUploadBlueprintFailFmt, err))
		return nil, err
	}

	key := s3.BuildObjectKey(input.UserID, input.ProjectID, input.FileName, s.now())

	if err := s.store.Upload(ctx, key, input.Body, input.ContentType); err != nil {
		s.notifier.Error(ctx, input.UserID, fmt.Sprintf(msgUploadBlueprintFailFmt, err))
		return nil, err
	}

	var fileType *string
	if input.ContentType != "" {
		ct := input.ContentType
		fileType = &ct
	}

	b, err := s.repo.Create(ctx, blueprint.CreateBlueprintInput{
		UserID:      input.UserID,
		ProjectID:   input.ProjectID,
		Name:        input.Name,
		StoragePath: key,
		FileType:    fileType,
	})
	if err != nil {
		// The stored object is orphaned here; it is not removed.
		s.notifier.Error(ctx, input.UserID, fmt.Sprintf(msgUploadBlueprintFailFmt, err))
		return nil, err
	}

	s.recorder.Record(ctx, b.UserID, &b.ProjectID, activity.ActionBlueprintUploaded, fmt.Sprintf(descUploadedBlueprintFmt, b.Name))
	s.invalidate(ctx)
	s.notifier.Success(ctx, b.UserID, msgBlueprintUploaded)

	return b, nil
}

// Delete removes the object before the metadata row. If the object removal
// fails the row stays and the error propagates, so a retry sees consistent
// state.
func (s *BlueprintService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	b, err := s.Get(ctx, userID, id)
	if err != nil {
		return err
	}

	if err := s.store.Remove(ctx, b.StoragePath); err != nil {
		s.notifier.Error(ctx, userID, fmt.Sprintf(msgDeleteBlueprintFailFmt, err))
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.notifier.Error(ctx, userID, fmt.Sprintf(msgDeleteBlueprintFailFmt, err))
		return err
	}

	s.recorder.Record(ctx, userID, &b.ProjectID, activity.ActionBlueprintDeleted, fmt.Sprintf(descDeletedBlueprintFmt, b.Name))
	s.invalidate(ctx)
	s.notifier.Success(ctx, userID, msgBlueprintDeleted)

	return nil
}

// SignedURL issues a time-limited download link for a blueprint the caller
// owns.
func (s *BlueprintService) SignedURL(ctx context.Context, userID, id uuid.UUID) (string, error) {
	b, err := s.Get(ctx, userID, id)
	if err != nil {
		return "", err
	}
	return s.store.SignedURL(ctx, b.StoragePath, s.signedURLTTL)
}

func (s *BlueprintService) invalidate(ctx context.Context) {
	if err := s.cache.InvalidateFamily(ctx, cache.ResourceBlueprints); err != nil {
		log.Printf("blueprint cache invalidation failed: %v", err)
	}
}

const errBlueprintNotOwned = "blueprint not found"
