package service

import (
	"buildunion/internal/cache"
	"buildunion/internal/domain/activity"
	"context"
	"log"

	"github.com/google/uuid"
)

// ActivityService serves the read side of the activity feed. Writes go
// through the recorder, never through here.
type ActivityService struct {
	repo  ActivityRepository
	cache QueryCache
}

func NewActivityService(repo ActivityRepository, cache QueryCache) *ActivityService {
	return &ActivityService{repo: repo, cache: cache}
}

// List returns the caller's most recent activity, optionally narrowed to one
// project. Anonymous callers get an empty feed without a repository or cache
// call.
func (s *ActivityService) List(ctx context.Context, userID uuid.UUID, projectID *uuid.UUID) ([]*activity.Log, error) {
	if userID == uuid.Nil {
		return []*activity.Log{}, nil
	}

	filter := userID.String()
	if projectID != nil {
		filter += ":" + projectID.String()
	}

	var cached []*activity.Log
	if found, err := s.cache.Get(ctx, cache.ResourceActivity, filter, &cached); err == nil && found {
		return cached, nil
	}

	logs, err := s.repo.List(ctx, activity.ListLogsFilter{UserID: userID, ProjectID: projectID, Limit: activity.ListLimit})
	if err != nil {
		return nil, err
	}
	if logs == nil {
		logs = []*activity.Log{}
	}

	if err := s.cache.Set(ctx, cache.ResourceActivity, filter, logs); err != nil {
		log.Printf("activity cache set failed: %v", err)
	}

	return logs, nil
}
