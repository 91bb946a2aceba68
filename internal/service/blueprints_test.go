package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"buildunion/internal/cache"
	"buildunion/internal/domain/activity"
	"buildunion/internal/domain/blueprint"
	"buildunion/internal/domain/project"
	apperrors "buildunion/pkg/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type blueprintHarness struct {
	svc      *BlueprintService
	repo     *fakeBlueprintRepo
	projects *fakeProjectRepo
	store    *fakeBlobStore
	cache    *fakeQueryCache
	recorder *fakeRecorder
	notifier *fakeNotifier
	log      *eventLog
}

func newBlueprintHarness(repo *fakeBlueprintRepo, projects *fakeProjectRepo) *blueprintHarness {
	log := &eventLog{}
	repo.log = log
	projects.log = log
	h := &blueprintHarness{
		repo:     repo,
		projects: projects,
		store:    &fakeBlobStore{log: log},
		cache:    &fakeQueryCache{log: log},
		recorder: &fakeRecorder{log: log},
		notifier: &fakeNotifier{log: log},
		log:      log,
	}
	h.svc = NewBlueprintService(repo, projects, h.store, h.cache, h.recorder, h.notifier, time.Hour)
	h.svc.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return h
}

func TestBlueprintUpload_OrderedSideEffects(t *testing.T) {
	userID := uuid.New()
	projectID := uuid.New()
	b := &blueprint.Blueprint{ID: uuid.New(), UserID: userID, ProjectID: projectID, Name: "floor-plan"}
	repo := &fakeBlueprintRepo{blueprint: b}
	projects := &fakeProjectRepo{project: &project.Project{ID: projectID, UserID: userID}}
	h := newBlueprintHarness(repo, projects)

	got, err := h.svc.Upload(context.Background(), UploadBlueprintInput{
		UserID:      userID,
		ProjectID:   projectID,
		Name:        "floor-plan",
		FileName:    "floor-plan.pdf",
		ContentType: "application/pdf",
		Body:        strings.NewReader("%PDF-1.4"),
	})
	require.NoError(t, err)
	assert.Equal(t, b, got)

	assert.Equal(t, []string{"store.upload", "repo.create", "recorder.record", "cache.invalidate", "notifier.success"}, h.log.events)

	wantKey := userID.String() + "/" + projectID.String() + "/1700000000000.pdf"
	assert.Equal(t, wantKey, h.store.uploadedKey)

	require.NotNil(t, repo.created)
	assert.Equal(t, wantKey, repo.created.StoragePath)
	require.NotNil(t, repo.created.FileType)
	assert.Equal(t, "application/pdf", *repo.created.FileType)

	require.Len(t, h.recorder.records, 1)
	assert.Equal(t, activity.ActionBlueprintUploaded, h.recorder.records[0].action)
	assert.Equal(t, "Uploaded blueprint: floor-plan", h.recorder.records[0].description)

	assert.Equal(t, []cache.Resource{cache.ResourceBlueprints}, h.cache.invalidated)

	require.Len(t, h.notifier.toasts, 1)
	assert.Equal(t, "Blueprint uploaded successfully", h.notifier.toasts[0].message)
}

func TestBlueprintUpload_StoreFailureSkipsInsert(t *testing.T) {
	userID := uuid.New()
	projectID := uuid.New()
	repo := &fakeBlueprintRepo{}
	projects := &fakeProjectRepo{project: &project.Project{ID: projectID, UserID: userID}}
	h := newBlueprintHarness(repo, projects)
	h.store.uploadErr = errors.New("bucket unavailable")

	_, err := h.svc.Upload(context.Background(), UploadBlueprintInput{
		UserID:    userID,
		ProjectID: projectID,
		Name:      "x",
		FileName:  "x.pdf",
		Body:      strings.NewReader("data"),
	})
	require.Error(t, err)

	assert.Nil(t, repo.created)
	assert.Empty(t, h.recorder.records)
	assert.Empty(t, h.cache.invalidated)

	require.Len(t, h.notifier.toasts, 1)
	assert.Equal(t, "error", h.notifier.toasts[0].severity)
	assert.Equal(t, "Failed to upload blueprint: bucket unavailable", h.notifier.toasts[0].message)
}

func TestBlueprintUpload_InsertFailureLeavesObject(t *testing.T) {
	userID := uuid.New()
	projectID := uuid.New()
	repo := &fakeBlueprintRepo{createErr: errors.New("insert failed")}
	projects := &fakeProjectRepo{project: &project.Project{ID: projectID, UserID: userID}}
	h := newBlueprintHarness(repo, projects)

	_, err := h.svc.Upload(context.Background(), UploadBlueprintInput{
		UserID:    userID,
		ProjectID: projectID,
		Name:      "x",
		FileName:  "x.pdf",
		Body:      strings.NewReader("data"),
	})
	require.Error(t, err)

	// The object was stored and stays stored; nothing downstream runs.
	assert.Equal(t, []string{"store.upload", "repo.create", "notifier.error"}, h.log.events)
	assert.Empty(t, h.store.removedKey)
	assert.Empty(t, h.recorder.records)
	assert.Empty(t, h.cache.invalidated)
}

func TestBlueprintUpload_ForeignProjectIsNotFound(t *testing.T) {
	repo := &fakeBlueprintRepo{}
	projects := &fakeProjectRepo{project: &project.Project{ID: uuid.New(), UserID: uuid.New()}}
	h := newBlueprintHarness(repo, projects)

	_, err := h.svc.Upload(context.Background(), UploadBlueprintInput{
		UserID:    uuid.New(),
		ProjectID: projects.project.ID,
		Name:      "x",
		FileName:  "x.pdf",
		Body:      strings.NewReader("data"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Empty(t, h.store.uploadedKey)
}

func TestBlueprintDelete_RemoveFailureKeepsRow(t *testing.T) {
	userID := uuid.New()
	b := &blueprint.Blueprint{ID: uuid.New(), UserID: userID, ProjectID: uuid.New(), Name: "plan", StoragePath: "u/p/1.pdf"}
	repo := &fakeBlueprintRepo{blueprint: b}
	h := newBlueprintHarness(repo, &fakeProjectRepo{})
	h.store.removeErr = errors.New("object locked")

	err := h.svc.Delete(context.Background(), userID, b.ID)
	require.Error(t, err)

	assert.Equal(t, []string{"store.remove", "notifier.error"}, h.log.events)
	assert.Empty(t, h.recorder.records)
}

func TestBlueprintDelete_OrderedSideEffects(t *testing.T) {
	userID := uuid.New()
	projectID := uuid.New()
	b := &blueprint.Blueprint{ID: uuid.New(), UserID: userID, ProjectID: projectID, Name: "plan", StoragePath: "u/p/1.pdf"}
	repo := &fakeBlueprintRepo{blueprint: b}
	h := newBlueprintHarness(repo, &fakeProjectRepo{})

	err := h.svc.Delete(context.Background(), userID, b.ID)
	require.NoError(t, err)

	assert.Equal(t, []string{"store.remove", "repo.delete", "recorder.record", "cache.invalidate", "notifier.success"}, h.log.events)
	assert.Equal(t, "u/p/1.pdf", h.store.removedKey)

	require.Len(t, h.recorder.records, 1)
	require.NotNil(t, h.recorder.records[0].projectID)
	assert.Equal(t, projectID, *h.recorder.records[0].projectID)
	assert.Equal(t, "Deleted blueprint: plan", h.recorder.records[0].description)
}

func TestBlueprintList_AnonymousIsEmptyWithoutCalls(t *testing.T) {
	repo := &fakeBlueprintRepo{}
	h := newBlueprintHarness(repo, &fakeProjectRepo{})

	got, err := h.svc.List(context.Background(), uuid.Nil, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)

	assert.Zero(t, repo.listCalls)
	assert.Zero(t, h.cache.getCalls)
}

func TestBlueprintSignedURL_OwnedBlueprint(t *testing.T) {
	userID := uuid.New()
	b := &blueprint.Blueprint{ID: uuid.New(), UserID: userID, StoragePath: "u/p/1.pdf"}
	repo := &fakeBlueprintRepo{blueprint: b}
	h := newBlueprintHarness(repo, &fakeProjectRepo{})
	h.store.signedURL = "https://signed.example/u/p/1.pdf"

	url, err := h.svc.SignedURL(context.Background(), userID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://signed.example/u/p/1.pdf", url)
	assert.Equal(t, "u/p/1.pdf", h.store.signedKey)
	assert.Equal(t, time.Hour, h.store.signedTTL)
}

func TestBlueprintSignedURL_ForeignBlueprintIsNotFound(t *testing.T) {
	b := &blueprint.Blueprint{ID: uuid.New(), UserID: uuid.New(), StoragePath: "u/p/1.pdf"}
	repo := &fakeBlueprintRepo{blueprint: b}
	h := newBlueprintHarness(repo, &fakeProjectRepo{})

	_, err := h.svc.SignedURL(context.Background(), uuid.New(), b.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Empty(t, h.store.signedKey)
}
