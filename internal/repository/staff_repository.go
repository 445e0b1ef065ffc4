package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/docstream/docstream-api/internal/models"
)

const staffColumns = "id, staff_id, name, department, role, email, status, created_at, updated_at"

// StaffRepository provides database access for the staff directory.
type StaffRepository struct {
	db sqlx.ExtContext
}

// NewStaffRepository creates a new instance of StaffRepository.
func NewStaffRepository(db sqlx.ExtContext) *StaffRepository {
	return &StaffRepository{db: db}
}

// List returns staff based on filters with total count.
func (r *StaffRepository) List(ctx context.Context, filter models.StaffFilter) ([]models.Staff, int, error) {
	baseQuery := "FROM staff WHERE 1=1"
	var conditions []string
	var args []interface{}

	if filter.Department != "" {
		args = append(args, filter.Department)
		conditions = append(conditions, fmt.Sprintf("department = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+strings.ToLower(filter.Search)+"%")
		conditions = append(conditions, fmt.Sprintf("(LOWER(name) LIKE $%d OR LOWER(email) LIKE $%d OR LOWER(staff_id) LIKE $%d)", len(args), len(args), len(args)))
	}
	if len(conditions) > 0 {
		baseQuery += " AND " + strings.Join(conditions, " AND ")
	}

	page, size := models.NormalizePage(filter.Page, filter.PageSize)
	listQuery := fmt.Sprintf("SELECT %s %s ORDER BY created_at DESC LIMIT %d OFFSET %d", staffColumns, baseQuery, size, (page-1)*size)

	var staff []models.Staff
	if err := sqlx.SelectContext(ctx, r.db, &staff, listQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("list staff: %w", err)
	}

	var total int
	if err := sqlx.GetContext(ctx, r.db, &total, "SELECT COUNT(*) "+baseQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count staff: %w", err)
	}
	return staff, total, nil
}

// ListAll returns the whole directory ordered by staff_id, for exports.
func (r *StaffRepository) ListAll(ctx context.Context) ([]models.Staff, error) {
	query := fmt.Sprintf("SELECT %s FROM staff ORDER BY staff_id", staffColumns)
	var staff []models.Staff
	if err := sqlx.SelectContext(ctx, r.db, &staff, query); err != nil {
		return nil, fmt.Errorf("list all staff: %w", err)
	}
	return staff, nil
}

// FindByID returns a staff member by primary key.
func (r *StaffRepository) FindByID(ctx context.Context, id string) (*models.Staff, error) {
	query := fmt.Sprintf("SELECT %s FROM staff WHERE id = $1 LIMIT 1", staffColumns)
	var staff models.Staff
	if err := sqlx.GetContext(ctx, r.db, &staff, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("find staff by id: %w", err)
	}
	return &staff, nil
}

// FindByLogin returns the single staff row matching all three login identifiers exactly.
func (r *StaffRepository) FindByLogin(ctx context.Context, staffID, department, email string) (*models.Staff, error) {
	query := fmt.Sprintf("SELECT %s FROM staff WHERE staff_id = $1 AND department = $2 AND email = $3 LIMIT 1", staffColumns)
	var staff models.Staff
	if err := sqlx.GetContext(ctx, r.db, &staff, query, staffID, department, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("find staff by login: %w", err)
	}
	return &staff, nil
}

// ExistsByStaffID checks whether another row already uses staffID.
func (r *StaffRepository) ExistsByStaffID(ctx context.Context, staffID, excludeID string) (bool, error) {
	return r.exists(ctx, "staff_id", staffID, excludeID)
}

// ExistsByEmail checks whether another row already uses email.
func (r *StaffRepository) ExistsByEmail(ctx context.Context, email, excludeID string) (bool, error) {
	return r.exists(ctx, "email", email, excludeID)
}

func (r *StaffRepository) exists(ctx context.Context, column, value, excludeID string) (bool, error) {
	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM staff WHERE %s = $1", column)
	args := []interface{}{value}
	if excludeID != "" {
		query += " AND id <> $2"
		args = append(args, excludeID)
	}
	query += ")"

	var exists bool
	if err := sqlx.GetContext(ctx, r.db, &exists, query, args...); err != nil {
		return false, fmt.Errorf("check staff %s: %w", column, err)
	}
	return exists, nil
}

// Create inserts a new staff row.
func (r *StaffRepository) Create(ctx context.Context, staff *models.Staff) error {
	return insertStaff(ctx, r.db, staff)
}

// Update replaces the mutable columns of a staff row.
func (r *StaffRepository) Update(ctx context.Context, staff *models.Staff) error {
	staff.UpdatedAt = time.Now().UTC()
	const query = `UPDATE staff SET staff_id = :staff_id, name = :name, department = :department, role = :role, email = :email, status = :status, updated_at = :updated_at WHERE id = :id`
	res, err := sqlx.NamedExecContext(ctx, r.db, query, staff)
	if err != nil {
		return fmt.Errorf("update staff: %w", err)
	}
	return expectAffected(res)
}

// Delete removes a staff row. Linked users and operational records cascade; activity logs remain.
func (r *StaffRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM staff WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete staff: %w", err)
	}
	return expectAffected(res)
}

func insertStaff(ctx context.Context, db sqlx.ExtContext, staff *models.Staff) error {
	if staff.ID == "" {
		staff.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if staff.CreatedAt.IsZero() {
		staff.CreatedAt = now
	}
	staff.UpdatedAt = now
	if staff.Status == "" {
		staff.Status = models.StaffStatusActive
	}

	const query = `INSERT INTO staff (id, staff_id, name, department, role, email, status, created_at, updated_at) VALUES (:id, :staff_id, :name, :department, :role, :email, :status, :created_at, :updated_at)`
	if _, err := sqlx.NamedExecContext(ctx, db, query, staff); err != nil {
		return fmt.Errorf("create staff: %w", err)
	}
	return nil
}

// expectAffected turns a zero-row write into sql.ErrNoRows.
func expectAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
