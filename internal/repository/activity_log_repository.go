package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/docstream/docstream-api/internal/models"
)

const activityLogColumns = "id, activity, created_by, created_at, updated_at"

// ActivityLogRepository persists activity logs.
type ActivityLogRepository struct {
	db sqlx.ExtContext
}

// NewActivityLogRepository constructs the repository.
func NewActivityLogRepository(db sqlx.ExtContext) *ActivityLogRepository {
	return &ActivityLogRepository{db: db}
}

// List returns a page of activity logs.
func (r *ActivityLogRepository) List(ctx context.Context, filter models.RecordFilter) ([]models.ActivityLog, int, error) {
	var logs []models.ActivityLog
	total, err := listOwned(ctx, r.db, &logs, "activity_logs", activityLogColumns, filter)
	if err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}

// FindByID returns an activity log by id.
func (r *ActivityLogRepository) FindByID(ctx context.Context, id string) (*models.ActivityLog, error) {
	query := fmt.Sprintf("SELECT %s FROM activity_logs WHERE id = $1", activityLogColumns)
	var log models.ActivityLog
	if err := sqlx.GetContext(ctx, r.db, &log, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("find activity log: %w", err)
	}
	return &log, nil
}

// Create inserts an activity log.
func (r *ActivityLogRepository) Create(ctx context.Context, log *models.ActivityLog) error {
	if log.ID == "" {
		log.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	log.CreatedAt = now
	log.UpdatedAt = now

	const query = `INSERT INTO activity_logs (id, activity, created_by, created_at, updated_at) VALUES (:id, :activity, :created_by, :created_at, :updated_at)`
	if _, err := sqlx.NamedExecContext(ctx, r.db, query, log); err != nil {
		return fmt.Errorf("create activity log: %w", err)
	}
	return nil
}

// Update replaces an activity log.
func (r *ActivityLogRepository) Update(ctx context.Context, log *models.ActivityLog) error {
	log.UpdatedAt = time.Now().UTC()
	const query = `UPDATE activity_logs SET activity = :activity, created_by = :created_by, updated_at = :updated_at WHERE id = :id`
	res, err := sqlx.NamedExecContext(ctx, r.db, query, log)
	if err != nil {
		return fmt.Errorf("update activity log: %w", err)
	}
	return expectAffected(res)
}

// Delete removes an activity log.
func (r *ActivityLogRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM activity_logs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete activity log: %w", err)
	}
	return expectAffected(res)
}
