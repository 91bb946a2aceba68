package postgres

import (
	"buildunion/internal/domain/project"
	apperrors "buildunion/pkg/errors"
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ProjectRepository struct {
	db *DB
}

func NewProjectRepository(db *DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

const projectColumns = "id, user_id, name, description, status, location, start_date, end_date, budget, created_at, updated_at"

func scanProject(row pgx.Row) (*project.Project, error) {
	p := &project.Project{}
	err := row.Scan(
		&p.ID, &p.UserID, &p.Name, &p.Description, &p.Status, &p.Location,
		&p.StartDate, &p.EndDate, &p.Budget, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ProjectRepository) Create(ctx context.Context, input project.CreateProjectInput) (*project.Project, error) {
	status := input.Status
	if status == "" {
		status = project.StatusPlanning
	}

	query := `
		INSERT INTO projects (id, user_id, name, description, status, location, start_date, end_date, budget)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + projectColumns

	p, err := scanProject(r.db.Pool.QueryRow(ctx, query,
		uuid.New(), input.UserID, input.Name, input.Description, status,
		input.Location, input.StartDate, input.EndDate, input.Budget,
	))
	if err != nil {
		return nil, errFailedCreateProject(err)
	}

	return p, nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`

	p, err := scanProject(r.db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NotFound(errProjectNotFound)
		}
		return nil, errFailedGetProject(err)
	}

	return p, nil
}

func (r *ProjectRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*project.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, errFailedListProjects(err)
	}
	defer rows.Close()

	var projects []*project.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, errFailedScanProject(err)
		}
		projects = append(projects, p)
	}

	return projects, rows.Err()
}

// buildProjectUpdate assembles the UPDATE statement for a partial field set.
// $1 is always the project id; set fields take positions in input order.
func buildProjectUpdate(id uuid.UUID, input project.UpdateProjectInput) (string, []interface{}) {
	query := "UPDATE projects SET updated_at = NOW()"
	args := []interface{}{id}

	appendSet := func(column string, value interface{}) {
		args = append(args, value)
		query += fmt.Sprintf(", %s = $%d", column, len(args))
	}

	if input.Name != nil {
		appendSet("name", *input.Name)
	}
	if input.Description != nil {
		appendSet("description", *input.Description)
	}
	if input.Status != nil {
		appendSet("status", *input.Status)
	}
	if input.Location != nil {
		appendSet("location", *input.Location)
	}
	if input.StartDate != nil {
		appendSet("start_date", *input.StartDate)
	}
	if input.EndDate != nil {
		appendSet("end_date", *input.EndDate)
	}
	if input.Budget != nil {
		appendSet("budget", *input.Budget)
	}

	query += " WHERE id = $1 RETURNING " + projectColumns
	return query, args
}

// Update applies a partial field set. The owner column is never touched;
// concurrent partial updates are last-write-wins at the row level.
func (r *ProjectRepository) Update(ctx context.Context, id uuid.UUID, input project.UpdateProjectInput) (*project.Project, error) {
	query, args := buildProjectUpdate(id, input)

	p, err := scanProject(r.db.Pool.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NotFound(errProjectNotFound)
		}
		return nil, errFailedUpdateProject(err)
	}

	return p, nil
}

// Delete removes the project row only. Child blueprint and activity rows are
// handled by the schema's referential rules, not here.
func (r *ProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Pool.Exec(ctx, "DELETE FROM projects WHERE id = $1", id)
	if err != nil {
		return errFailedDeleteProject(err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.NotFound(errProjectNotFound)
	}

	return nil
}

func (r *ProjectRepository) CountByStatus(ctx context.Context, userID uuid.UUID) (*project.StatusSummary, error) {
	query := `
		SELECT status, COUNT(*) FROM projects
		WHERE user_id = $1 GROUP BY status
	`

	rows, err := r.db.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, errFailedCountProjectStatus(err)
	}
	defer rows.Close()

	summary := &project.StatusSummary{}
	for rows.Next() {
		var status project.Status
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, errFailedCountProjectStatus(err)
		}

		switch status {
		case project.StatusPlanning:
			summary.Planning = count
		case project.StatusInProgress:
			summary.InProgress = count
		case project.StatusOnHold:
			summary.OnHold = count
		case project.StatusCompleted:
			summary.Completed = count
		}
	}

	return summary, rows.Err()
}
