package service

import (
	"context"
	"io"
	"time"

	"buildunion/internal/cache"
	"buildunion/internal/domain/activity"
	"buildunion/internal/domain/blueprint"
	"buildunion/internal/domain/project"

	"github.com/google/uuid"
)

// eventLog records the order side effects fire in, shared across fakes so a
// test can assert the full mutation sequence.
type eventLog struct {
	events []string
}

func (l *eventLog) add(event string) {
	l.events = append(l.events, event)
}

type fakeProjectRepo struct {
	log *eventLog

	createErr error
	updateErr error
	deleteErr error
	getErr    error

	project  *project.Project
	projects []*project.Project

	listCalls int
}

func (f *fakeProjectRepo) Create(ctx context.Context, input project.CreateProjectInput) (*project.Project, error) {
	f.log.add("repo.create")
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.project, nil
}

func (f *fakeProjectRepo) GetByID(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.project, nil
}

func (f *fakeProjectRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*project.Project, error) {
	f.listCalls++
	return f.projects, nil
}

func (f *fakeProjectRepo) Update(ctx context.Context, id uuid.UUID, input project.UpdateProjectInput) (*project.Project, error) {
	f.log.add("repo.update")
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.project, nil
}

func (f *fakeProjectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.log.add("repo.delete")
	return f.deleteErr
}

type fakeBlueprintRepo struct {
	log *eventLog

	createErr error
	deleteErr error
	getErr    error

	blueprint  *blueprint.Blueprint
	blueprints []*blueprint.Blueprint

	created   *blueprint.CreateBlueprintInput
	listCalls int
}

func (f *fakeBlueprintRepo) Create(ctx context.Context, input blueprint.CreateBlueprintInput) (*blueprint.Blueprint, error) {
	f.log.add("repo.create")
	f.created = &input
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.blueprint, nil
}

func (f *fakeBlueprintRepo) GetByID(ctx context.Context, id uuid.UUID) (*blueprint.Blueprint, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.blueprint, nil
}

func (f *fakeBlueprintRepo) List(ctx context.Context, filter blueprint.ListBlueprintsFilter) ([]*blueprint.Blueprint, error) {
	f.listCalls++
	return f.blueprints, nil
}

func (f *fakeBlueprintRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.log.add("repo.delete")
	return f.deleteErr
}

type fakeBlobStore struct {
	log *eventLog

	uploadErr error
	removeErr error
	signedURL string

	uploadedKey string
	removedKey  string
	signedKey   string
	signedTTL   time.Duration
}

func (f *fakeBlobStore) Upload(ctx context.Context, key string, body io.Reader, contentType string) error {
	f.log.add("store.upload")
	f.uploadedKey = key
	return f.uploadErr
}

func (f *fakeBlobStore) Remove(ctx context.Context, key string) error {
	f.log.add("store.remove")
	f.removedKey = key
	return f.removeErr
}

func (f *fakeBlobStore) SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	f.signedKey = key
	f.signedTTL = ttl
	return f.signedURL, nil
}

type fakeQueryCache struct {
	log *eventLog

	hit     bool
	entries map[string]interface{}

	getCalls    int
	setCalls    int
	invalidated []cache.Resource
}

func (f *fakeQueryCache) Get(ctx context.Context, resource cache.Resource, filter string, dst interface{}) (bool, error) {
	f.getCalls++
	return f.hit, nil
}

func (f *fakeQueryCache) Set(ctx context.Context, resource cache.Resource, filter string, v interface{}) error {
	f.setCalls++
	if f.entries == nil {
		f.entries = map[string]interface{}{}
	}
	f.entries[string(resource)+":"+filter] = v
	return nil
}

func (f *fakeQueryCache) InvalidateFamily(ctx context.Context, resource cache.Resource) error {
	f.log.add("cache.invalidate")
	f.invalidated = append(f.invalidated, resource)
	return nil
}

type recordedActivity struct {
	userID      uuid.UUID
	projectID   *uuid.UUID
	action      string
	description string
}

type fakeRecorder struct {
	log     *eventLog
	records []recordedActivity
}

func (f *fakeRecorder) Record(ctx context.Context, userID uuid.UUID, projectID *uuid.UUID, action, description string) {
	f.log.add("recorder.record")
	f.records = append(f.records, recordedActivity{
		userID:      userID,
		projectID:   projectID,
		action:      action,
		description: description,
	})
}

type toast struct {
	severity string
	message  string
}

type fakeNotifier struct {
	log    *eventLog
	toasts []toast
}

func (f *fakeNotifier) Success(ctx context.Context, userID uuid.UUID, message string) {
	f.log.add("notifier.success")
	f.toasts = append(f.toasts, toast{severity: "success", message: message})
}

func (f *fakeNotifier) Error(ctx context.Context, userID uuid.UUID, message string) {
	f.log.add("notifier.error")
	f.toasts = append(f.toasts, toast{severity: "error", message: message})
}

type fakeActivityRepo struct {
	logs      []*activity.Log
	lastLimit int
	listCalls int
}

func (f *fakeActivityRepo) List(ctx context.Context, filter activity.ListLogsFilter) ([]*activity.Log, error) {
	f.listCalls++
	f.lastLimit = filter.Limit
	return f.logs, nil
}
