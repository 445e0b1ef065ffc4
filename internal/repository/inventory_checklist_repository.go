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

const inventoryChecklistColumns = "id, retail_outlet, retail_outlet_address, pms_opening, product_received, price_range, pump_dispensing_level, created_by, created_at, updated_at"

// InventoryChecklistRepository persists inventory checklists.
type InventoryChecklistRepository struct {
	db sqlx.ExtContext
}

// NewInventoryChecklistRepository constructs the repository.
func NewInventoryChecklistRepository(db sqlx.ExtContext) *InventoryChecklistRepository {
	return &InventoryChecklistRepository{db: db}
}

// List returns a page of checklists.
func (r *InventoryChecklistRepository) List(ctx context.Context, filter models.RecordFilter) ([]models.InventoryChecklist, int, error) {
	var checklists []models.InventoryChecklist
	total, err := listOwned(ctx, r.db, &checklists, "inventory_checklists", inventoryChecklistColumns, filter)
	if err != nil {
		return nil, 0, err
	}
	return checklists, total, nil
}

// FindByID returns a checklist by id.
func (r *InventoryChecklistRepository) FindByID(ctx context.Context, id string) (*models.InventoryChecklist, error) {
	query := fmt.Sprintf("SELECT %s FROM inventory_checklists WHERE id = $1", inventoryChecklistColumns)
	var checklist models.InventoryChecklist
	if err := sqlx.GetContext(ctx, r.db, &checklist, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("find inventory checklist: %w", err)
	}
	return &checklist, nil
}

// Create inserts a checklist.
func (r *InventoryChecklistRepository) Create(ctx context.Context, checklist *models.InventoryChecklist) error {
	if checklist.ID == "" {
		checklist.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	checklist.CreatedAt = now
	checklist.UpdatedAt = now

	const query = `INSERT INTO inventory_checklists (id, retail_outlet, retail_outlet_address, pms_opening, product_received, price_range, pump_dispensing_level, created_by, created_at, updated_at)
VALUES (:id, :retail_outlet, :retail_outlet_address, :pms_opening, :product_received, :price_range, :pump_dispensing_level, :created_by, :created_at, :updated_at)`
	if _, err := sqlx.NamedExecContext(ctx, r.db, query, checklist); err != nil {
		return fmt.Errorf("create inventory checklist: %w", err)
	}
	return nil
}

// Update replaces a checklist.
func (r *InventoryChecklistRepository) Update(ctx context.Context, checklist *models.InventoryChecklist) error {
	checklist.UpdatedAt = time.Now().UTC()
	const query = `UPDATE inventory_checklists SET retail_outlet = :retail_outlet, retail_outlet_address = :retail_outlet_address, pms_opening = :pms_opening,
product_received = :product_received, price_range = :price_range, pump_dispensing_level = :pump_dispensing_level, created_by = :created_by, updated_at = :updated_at WHERE id = :id`
	res, err := sqlx.NamedExecContext(ctx, r.db, query, checklist)
	if err != nil {
		return fmt.Errorf("update inventory checklist: %w", err)
	}
	return expectAffected(res)
}

// Delete removes a checklist.
func (r *InventoryChecklistRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM inventory_checklists WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inventory checklist: %w", err)
	}
	return expectAffected(res)
}
