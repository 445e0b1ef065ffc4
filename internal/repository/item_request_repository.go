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

const itemRequestColumns = "id, items, created_by, created_at, updated_at"

// ItemRequestRepository persists item requests.
type ItemRequestRepository struct {
	db sqlx.ExtContext
}

// NewItemRequestRepository constructs the repository.
func NewItemRequestRepository(db sqlx.ExtContext) *ItemRequestRepository {
	return &ItemRequestRepository{db: db}
}

// List returns a page of item requests.
func (r *ItemRequestRepository) List(ctx context.Context, filter models.RecordFilter) ([]models.ItemRequest, int, error) {
	var items []models.ItemRequest
	total, err := listOwned(ctx, r.db, &items, "item_requests", itemRequestColumns, filter)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// FindByID returns an item request by id.
func (r *ItemRequestRepository) FindByID(ctx context.Context, id string) (*models.ItemRequest, error) {
	query := fmt.Sprintf("SELECT %s FROM item_requests WHERE id = $1", itemRequestColumns)
	var item models.ItemRequest
	if err := sqlx.GetContext(ctx, r.db, &item, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("find item request: %w", err)
	}
	return &item, nil
}

// Create inserts an item request.
func (r *ItemRequestRepository) Create(ctx context.Context, item *models.ItemRequest) error {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now

	const query = `INSERT INTO item_requests (id, items, created_by, created_at, updated_at) VALUES (:id, :items, :created_by, :created_at, :updated_at)`
	if _, err := sqlx.NamedExecContext(ctx, r.db, query, item); err != nil {
		return fmt.Errorf("create item request: %w", err)
	}
	return nil
}

// Update replaces an item request.
func (r *ItemRequestRepository) Update(ctx context.Context, item *models.ItemRequest) error {
	item.UpdatedAt = time.Now().UTC()
	const query = `UPDATE item_requests SET items = :items, created_by = :created_by, updated_at = :updated_at WHERE id = :id`
	res, err := sqlx.NamedExecContext(ctx, r.db, query, item)
	if err != nil {
		return fmt.Errorf("update item request: %w", err)
	}
	return expectAffected(res)
}

// Delete removes an item request.
func (r *ItemRequestRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM item_requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item request: %w", err)
	}
	return expectAffected(res)
}
