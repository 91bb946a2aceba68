package service

import (
	"context"
	"errors"
	"testing"

	"buildunion/internal/cache"
	"buildunion/internal/domain/activity"
	"buildunion/internal/domain/project"
	apperrors "buildunion/pkg/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProjectHarness(repo *fakeProjectRepo) (*ProjectService, *fakeQueryCache, *fakeRecorder, *fakeNotifier, *eventLog) {
	log := &eventLog{}
	repo.log = log
	qc := &fakeQueryCache{log: log}
	rec := &fakeRecorder{log: log}
	not := &fakeNotifier{log: log}
	return NewProjectService(repo, qc, rec, not), qc, rec, not, log
}

func TestProjectCreate_OrderedSideEffects(t *testing.T) {
	userID := uuid.New()
	p := &project.Project{ID: uuid.New(), UserID: userID, Name: "Harbor Tower"}
	repo := &fakeProjectRepo{project: p}
	svc, qc, rec, not, log := newProjectHarness(repo)

	got, err := svc.Create(context.Background(), project.CreateProjectInput{UserID: userID, Name: "Harbor Tower"})
	require.NoError(t, err)
	assert.Equal(t, p, got)

	assert.Equal(t, []string{"repo.create", "recorder.record", "cache.invalidate", "notifier.success"}, log.events)

	require.Len(t, rec.records, 1)
	assert.Equal(t, activity.ActionProjectCreated, rec.records[0].action)
	assert.Equal(t, "Created project: Harbor Tower", rec.records[0].description)
	require.NotNil(t, rec.records[0].projectID)
	assert.Equal(t, p.ID, *rec.records[0].projectID)

	assert.Equal(t, []cache.Resource{cache.ResourceProjects}, qc.invalidated)

	require.Len(t, not.toasts, 1)
	assert.Equal(t, "success", not.toasts[0].severity)
	assert.Equal(t, "Project created successfully", not.toasts[0].message)
}

func TestProjectCreate_RepoFailureAbortsChain(t *testing.T) {
	repo := &fakeProjectRepo{createErr: errors.New("insert failed")}
	svc, qc, rec, not, _ := newProjectHarness(repo)

	_, err := svc.Create(context.Background(), project.CreateProjectInput{UserID: uuid.New(), Name: "x"})
	require.Error(t, err)

	assert.Empty(t, rec.records)
	assert.Empty(t, qc.invalidated)

	require.Len(t, not.toasts, 1)
	assert.Equal(t, "error", not.toasts[0].severity)
	assert.Equal(t, "Failed to create project: insert failed", not.toasts[0].message)
}

func TestProjectList_AnonymousIsEmptyWithoutCalls(t *testing.T) {
	repo := &fakeProjectRepo{}
	svc, qc, _, _, _ := newProjectHarness(repo)

	got, err := svc.List(context.Background(), uuid.Nil)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)

	assert.Zero(t, repo.listCalls)
	assert.Zero(t, qc.getCalls)
}

func TestProjectList_CacheHitSkipsRepo(t *testing.T) {
	repo := &fakeProjectRepo{}
	svc, qc, _, _, _ := newProjectHarness(repo)
	qc.hit = true

	_, err := svc.List(context.Background(), uuid.New())
	require.NoError(t, err)

	assert.Zero(t, repo.listCalls)
	assert.Equal(t, 1, qc.getCalls)
}

func TestProjectList_MissReadsRepoAndPopulates(t *testing.T) {
	userID := uuid.New()
	repo := &fakeProjectRepo{projects: []*project.Project{{ID: uuid.New(), UserID: userID}}}
	svc, qc, _, _, _ := newProjectHarness(repo)

	got, err := svc.List(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	assert.Equal(t, 1, repo.listCalls)
	assert.Equal(t, 1, qc.setCalls)
}

func TestProjectGet_OtherOwnerIsNotFound(t *testing.T) {
	repo := &fakeProjectRepo{project: &project.Project{ID: uuid.New(), UserID: uuid.New()}}
	svc, _, _, _, _ := newProjectHarness(repo)

	_, err := svc.Get(context.Background(), uuid.New(), repo.project.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestProjectDelete_RecordsWithoutProjectReference(t *testing.T) {
	userID := uuid.New()
	p := &project.Project{ID: uuid.New(), UserID: userID, Name: "Old Depot"}
	repo := &fakeProjectRepo{project: p}
	svc, _, rec, not, log := newProjectHarness(repo)

	err := svc.Delete(context.Background(), userID, p.ID)
	require.NoError(t, err)

	assert.Equal(t, []string{"repo.delete", "recorder.record", "cache.invalidate", "notifier.success"}, log.events)

	require.Len(t, rec.records, 1)
	assert.Nil(t, rec.records[0].projectID)
	assert.Equal(t, activity.ActionProjectDeleted, rec.records[0].action)
	assert.Equal(t, "Deleted project: Old Depot", rec.records[0].description)

	require.Len(t, not.toasts, 1)
	assert.Equal(t, "Project deleted successfully", not.toasts[0].message)
}

func TestProjectUpdate_OwnershipCheckedBeforeWrite(t *testing.T) {
	repo := &fakeProjectRepo{project: &project.Project{ID: uuid.New(), UserID: uuid.New()}}
	svc, _, rec, _, log := newProjectHarness(repo)

	name := "renamed"
	_, err := svc.Update(context.Background(), uuid.New(), repo.project.ID, project.UpdateProjectInput{Name: &name})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	assert.Empty(t, log.events)
	assert.Empty(t, rec.records)
}
