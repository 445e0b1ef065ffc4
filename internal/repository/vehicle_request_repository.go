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

const vehicleRequestColumns = "id, name, division, vehicle_type, purpose, destination, departure_date, return_date, duration_of_trip, division_head_approval, corporate_service_approval, logistics_officer_approval, created_by, created_at, updated_at"

// VehicleRequestRepository persists vehicle requests.
type VehicleRequestRepository struct {
	db sqlx.ExtContext
}

// NewVehicleRequestRepository constructs the repository.
func NewVehicleRequestRepository(db sqlx.ExtContext) *VehicleRequestRepository {
	return &VehicleRequestRepository{db: db}
}

// List returns a page of vehicle requests.
func (r *VehicleRequestRepository) List(ctx context.Context, filter models.RecordFilter) ([]models.VehicleRequest, int, error) {
	var requests []models.VehicleRequest
	total, err := listOwned(ctx, r.db, &requests, "vehicle_requests", vehicleRequestColumns, filter)
	if err != nil {
		return nil, 0, err
	}
	return requests, total, nil
}

// FindByID returns a vehicle request by id.
func (r *VehicleRequestRepository) FindByID(ctx context.Context, id string) (*models.VehicleRequest, error) {
	query := fmt.Sprintf("SELECT %s FROM vehicle_requests WHERE id = $1", vehicleRequestColumns)
	var request models.VehicleRequest
	if err := sqlx.GetContext(ctx, r.db, &request, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("find vehicle request: %w", err)
	}
	return &request, nil
}

// Create inserts a vehicle request.
func (r *VehicleRequestRepository) Create(ctx context.Context, request *models.VehicleRequest) error {
	if request.ID == "" {
		request.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	request.CreatedAt = now
	request.UpdatedAt = now

	const query = `INSERT INTO vehicle_requests (id, name, division, vehicle_type, purpose, destination, departure_date, return_date, duration_of_trip, division_head_approval, corporate_service_approval, logistics_officer_approval, created_by, created_at, updated_at)
VALUES (:id, :name, :division, :vehicle_type, :purpose, :destination, :departure_date, :return_date, :duration_of_trip, :division_head_approval, :corporate_service_approval, :logistics_officer_approval, :created_by, :created_at, :updated_at)`
	if _, err := sqlx.NamedExecContext(ctx, r.db, query, request); err != nil {
		return fmt.Errorf("create vehicle request: %w", err)
	}
	return nil
}

// Update replaces a vehicle request.
func (r *VehicleRequestRepository) Update(ctx context.Context, request *models.VehicleRequest) error {
	request.UpdatedAt = time.Now().UTC()
	const query = `UPDATE vehicle_requests SET name = :name, division = :division, vehicle_type = :vehicle_type, purpose = :purpose, destination = :destination,
departure_date = :departure_date, return_date = :return_date, duration_of_trip = :duration_of_trip,
division_head_approval = :division_head_approval, corporate_service_approval = :corporate_service_approval, logistics_officer_approval = :logistics_officer_approval,
created_by = :created_by, updated_at = :updated_at WHERE id = :id`
	res, err := sqlx.NamedExecContext(ctx, r.db, query, request)
	if err != nil {
		return fmt.Errorf("update vehicle request: %w", err)
	}
	return expectAffected(res)
}

// SetApproval flips a single approval column and returns the updated row.
func (r *VehicleRequestRepository) SetApproval(ctx context.Context, id string, stage models.ApprovalStage, approved bool) (*models.VehicleRequest, error) {
	column, ok := stage.Column()
	if !ok {
		return nil, fmt.Errorf("unknown approval stage %q", stage)
	}
	query := fmt.Sprintf("UPDATE vehicle_requests SET %s = $2, updated_at = $3 WHERE id = $1 RETURNING %s", column, vehicleRequestColumns)
	var request models.VehicleRequest
	if err := sqlx.GetContext(ctx, r.db, &request, query, id, approved, time.Now().UTC()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("set %s: %w", column, err)
	}
	return &request, nil
}

// Delete removes a vehicle request.
func (r *VehicleRequestRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM vehicle_requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete vehicle request: %w", err)
	}
	return expectAffected(res)
}
