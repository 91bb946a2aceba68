package postgres

import (
	"buildunion/internal/domain/blueprint"
	apperrors "buildunion/pkg/errors"
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BlueprintRepository struct {
	db *DB
}

func NewBlueprintRepository(db *DB) *BlueprintRepository {
	return &BlueprintRepository{db: db}
}

const blueprintColumns = "id, user_id, project_id, name, storage_path, file_type, version, uploaded_at"

func scanBlueprint(row pgx.Row) (*blueprint.Blueprint, error) {
	b := &blueprint.Blueprint{}
	err := row.Scan(
		&b.ID, &b.UserID, &b.ProjectID, &b.Name, &b.StoragePath,
		&b.FileType, &b.Version, &b.UploadedAt,
	)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *BlueprintRepository) Create(ctx context.Context, input blueprint.CreateBlueprintInput) (*blueprint.Blueprint, error) {
	query := `
		INSERT INTO blueprints (id, user_id, project_id, name, storage_path, file_type, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + blueprintColumns

	b, err := scanBlueprint(r.db.Pool.QueryRow(ctx, query,
		uuid.New(), input.UserID, input.ProjectID, input.Name,
		input.StoragePath, input.FileType, blueprint.DefaultVersion,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.Conflict("blueprint already exists at this storage path")
		}
		if isForeignKeyViolation(err) {
			return nil, apperrors.NotFound(errProjectNotFound)
		}
		return nil, errFailedCreateBlueprint(err)
	}

	return b, nil
}

func (r *BlueprintRepository) GetByID(ctx context.Context, id uuid.UUID) (*blueprint.Blueprint, error) {
	query := `SELECT ` + blueprintColumns + ` FROM blueprints WHERE id = $1`

	b, err := scanBlueprint(r.db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NotFound(errBlueprintNotFound)
		}
		return nil, errFailedGetBlueprint(err)
	}

	return b, nil
}

func (r *BlueprintRepository) List(ctx context.Context, filter blueprint.ListBlueprintsFilter) ([]*blueprint.Blueprint, error) {
	query := `SELECT ` + blueprintColumns + ` FROM blueprints WHERE user_id = $1`
	args := []interface{}{filter.UserID}

	if filter.ProjectID != nil {
		query += " AND project_id = $2"
		args = append(args, *filter.ProjectID)
	}

	query += " ORDER BY uploaded_at DESC"

	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, errFailedListBlueprints(err)
	}
	defer rows.Close()

	var blueprints []*blueprint.Blueprint
	for rows.Next() {
		b, err := scanBlueprint(rows)
		if err != nil {
			return nil, errFailedScanBlueprint(err)
		}
		blueprints = append(blueprints, b)
	}

	return blueprints, rows.Err()
}

func (r *BlueprintRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Pool.Exec(ctx, "DELETE FROM blueprints WHERE id = $1", id)
	if err != nil {
		return errFailedDeleteBlueprint(err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.NotFound(errBlueprintNotFound)
	}

	return nil
}

func (r *BlueprintRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	err := r.db.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM blueprints WHERE user_id = $1", userID).Scan(&count)
	if err != nil {
		return 0, errFailedCountBlueprints(err)
	}

	return count, nil
}
