package postgres

import (
	"buildunion/internal/domain/activity"
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ActivityRepository struct {
	db *DB
}

func NewActivityRepository(db *DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

const activityColumns = "id, user_id, project_id, action, description, created_at"

func scanActivity(row pgx.Row) (*activity.Log, error) {
	l := &activity.Log{}
	err := row.Scan(&l.ID, &l.UserID, &l.ProjectID, &l.Action, &l.Description, &l.CreatedAt)
	if err != nil {
		return nil, err
	}
	return l, nil
}

// Insert appends one activity row. Rows are never updated or deleted here;
// the table is append-only from the application's point of view.
func (r *ActivityRepository) Insert(ctx context.Context, input activity.InsertLogInput) (*activity.Log, error) {
	query := `
		INSERT INTO activity_logs (id, user_id, project_id, action, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + activityColumns

	l, err := scanActivity(r.db.Pool.QueryRow(ctx, query,
		uuid.New(), input.UserID, input.ProjectID, input.Action, input.Description,
	))
	if err != nil {
		return nil, errFailedInsertActivity(err)
	}

	return l, nil
}

func (r *ActivityRepository) List(ctx context.Context, filter activity.ListLogsFilter) ([]*activity.Log, error) {
	limit := filter.Limit
	if limit <= 0 || limit > activity.ListLimit {
		limit = activity.ListLimit
	}

	query := `SELECT ` + activityColumns + ` FROM activity_logs WHERE user_id = $1`
	args := []interface{}{filter.UserID}

	if filter.ProjectID != nil {
		query += " AND project_id = $2"
		args = append(args, *filter.ProjectID)
	}

	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", len(args))

	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, errFailedListActivity(err)
	}
	defer rows.Close()

	var logs []*activity.Log
	for rows.Next() {
		l, err := scanActivity(rows)
		if err != nil {
			return nil, errFailedScanActivity(err)
		}
		logs = append(logs, l)
	}

	return logs, rows.Err()
}

func (r *ActivityRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	err := r.db.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM activity_logs WHERE user_id = $1", userID).Scan(&count)
	if err != nil {
		return 0, errFailedCountActivity(err)
	}

	return count, nil
}
