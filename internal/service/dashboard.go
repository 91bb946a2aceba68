package service

import (
	"context"

	"buildunion/internal/domain/project"

	"github.com/google/uuid"
)

// DashboardSummary is the aggregate view shown on the landing screen.
type DashboardSummary struct {
	TotalProjects   int                   `json:"total_projects"`
	ActiveProjects  int                   `json:"active_projects"`
	TotalBlueprints int                   `json:"total_blueprints"`
	RecentActivity  int                   `json:"recent_activity"`
	ByStatus        project.StatusSummary `json:"by_status"`
}

// DashboardService computes summary counts fresh on every request; the
// numbers are cheap aggregates and stale counts on a dashboard are worse
// than the query cost.
type DashboardService struct {
	projects   StatusCounter
	blueprints BlueprintCounter
	activity   ActivityCounter
}

func NewDashboardService(projects StatusCounter, blueprints BlueprintCounter, activity ActivityCounter) *DashboardService {
	return &DashboardService{projects: projects, blueprints: blueprints, activity: activity}
}

func (s *DashboardService) Summary(ctx context.Context, userID uuid.UUID) (*DashboardSummary, error) {
	if userID == uuid.Nil {
		return &DashboardSummary{}, nil
	}

	byStatus, err := s.projects.CountByStatus(ctx, userID)
	if err != nil {
		return nil, err
	}

	blueprintCount, err := s.blueprints.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	activityCount, err := s.activity.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &DashboardSummary{
		TotalProjects:   byStatus.Total(),
		ActiveProjects:  byStatus.InProgress,
		TotalBlueprints: blueprintCount,
		RecentActivity:  activityCount,
		ByStatus:        *byStatus,
	}, nil
}
