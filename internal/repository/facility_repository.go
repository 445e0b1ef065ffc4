package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/docstream/docstream-api/internal/models"
)

const facilityColumns = "id, name, address, serial_no, take_over"

// FacilityRepository persists facilities.
type FacilityRepository struct {
	db sqlx.ExtContext
}

// NewFacilityRepository constructs the repository.
func NewFacilityRepository(db sqlx.ExtContext) *FacilityRepository {
	return &FacilityRepository{db: db}
}

// List returns a page of facilities ordered by name.
func (r *FacilityRepository) List(ctx context.Context, filter models.FacilityFilter) ([]models.Facility, int, error) {
	baseQuery := "FROM facilities"
	var args []interface{}
	if filter.Search != "" {
		baseQuery += " WHERE (LOWER(name) LIKE $1 OR LOWER(serial_no) LIKE $1)"
		args = append(args, "%"+strings.ToLower(filter.Search)+"%")
	}

	page, size := models.NormalizePage(filter.Page, filter.PageSize)
	listQuery := fmt.Sprintf("SELECT %s %s ORDER BY name ASC LIMIT %d OFFSET %d", facilityColumns, baseQuery, size, (page-1)*size)

	var facilities []models.Facility
	if err := sqlx.SelectContext(ctx, r.db, &facilities, listQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("list facilities: %w", err)
	}
	var total int
	if err := sqlx.GetContext(ctx, r.db, &total, "SELECT COUNT(*) "+baseQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count facilities: %w", err)
	}
	return facilities, total, nil
}

// FindByID returns a facility by id.
func (r *FacilityRepository) FindByID(ctx context.Context, id string) (*models.Facility, error) {
	query := fmt.Sprintf("SELECT %s FROM facilities WHERE id = $1", facilityColumns)
	var facility models.Facility
	if err := sqlx.GetContext(ctx, r.db, &facility, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("find facility: %w", err)
	}
	return &facility, nil
}

// Create inserts a facility.
func (r *FacilityRepository) Create(ctx context.Context, facility *models.Facility) error {
	if facility.ID == "" {
		facility.ID = uuid.NewString()
	}
	const query = `INSERT INTO facilities (id, name, address, serial_no, take_over) VALUES (:id, :name, :address, :serial_no, :take_over)`
	if _, err := sqlx.NamedExecContext(ctx, r.db, query, facility); err != nil {
		return fmt.Errorf("create facility: %w", err)
	}
	return nil
}

// Update replaces a facility.
func (r *FacilityRepository) Update(ctx context.Context, facility *models.Facility) error {
	const query = `UPDATE facilities SET name = :name, address = :address, serial_no = :serial_no, take_over = :take_over WHERE id = :id`
	res, err := sqlx.NamedExecContext(ctx, r.db, query, facility)
	if err != nil {
		return fmt.Errorf("update facility: %w", err)
	}
	return expectAffected(res)
}

// Delete removes a facility.
func (r *FacilityRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM facilities WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete facility: %w", err)
	}
	return expectAffected(res)
}
