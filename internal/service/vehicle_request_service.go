package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/docstream/docstream-api/internal/dto"
	"github.com/docstream/docstream-api/internal/models"
	appErrors "github.com/docstream/docstream-api/pkg/errors"
	"github.com/docstream/docstream-api/pkg/validation"
)

type vehicleRequestRepository interface {
	List(ctx context.Context, filter models.RecordFilter) ([]models.VehicleRequest, int, error)
	FindByID(ctx context.Context, id string) (*models.VehicleRequest, error)
	Create(ctx context.Context, request *models.VehicleRequest) error
	Update(ctx context.Context, request *models.VehicleRequest) error
	SetApproval(ctx context.Context, id string, stage models.ApprovalStage, approved bool) (*models.VehicleRequest, error)
	Delete(ctx context.Context, id string) error
}

// VehicleRequestService handles trip bookings and their three-stage approval.
type VehicleRequestService struct {
	repo      vehicleRequestRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewVehicleRequestService constructs a VehicleRequestService.
func NewVehicleRequestService(repo vehicleRequestRepository, validate *validator.Validate, logger *zap.Logger) *VehicleRequestService {
	if validate == nil {
		validate = validation.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VehicleRequestService{repo: repo, validator: validate, logger: logger}
}

// List returns a page of vehicle requests.
func (s *VehicleRequestService) List(ctx context.Context, filter models.RecordFilter) ([]models.VehicleRequest, *models.Pagination, error) {
	if err := checkRecordFilter(filter); err != nil {
		return nil, nil, err
	}
	requests, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, storeError(err, "vehicle request", "list")
	}
	return requests, paginationFor(filter.Page, filter.PageSize, total), nil
}

// Get returns a vehicle request by id.
func (s *VehicleRequestService) Get(ctx context.Context, id string) (*models.VehicleRequest, error) {
	request, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "vehicle request", "load")
	}
	return request, nil
}

// Create books a new trip. Approval flags start false unless supplied.
func (s *VehicleRequestService) Create(ctx context.Context, actor *models.JWTClaims, payload dto.VehicleRequestPayload) (*models.VehicleRequest, error) {
	if err := validateInput(s.validator, payload, "invalid vehicle request payload"); err != nil {
		return nil, err
	}
	owner, err := creatorFor(actor, payload.CreatedBy)
	if err != nil {
		return nil, err
	}
	request := &models.VehicleRequest{CreatedBy: owner}
	payload.Apply(request)
	if err := checkTripDates(request); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, request); err != nil {
		return nil, storeError(err, "vehicle request", "create")
	}
	return request, nil
}

// Update replaces a vehicle request.
func (s *VehicleRequestService) Update(ctx context.Context, actor *models.JWTClaims, id string, payload dto.VehicleRequestPayload) (*models.VehicleRequest, error) {
	if err := validateInput(s.validator, payload, "invalid vehicle request payload"); err != nil {
		return nil, err
	}
	request, err := s.owned(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	var requested *string
	if payload.CreatedBy != "" {
		requested = &payload.CreatedBy
	}
	if request.CreatedBy, err = reassignOwner(actor, request.CreatedBy, requested); err != nil {
		return nil, err
	}
	payload.Apply(request)
	return s.save(ctx, request)
}

// Patch updates the fields present in patch.
func (s *VehicleRequestService) Patch(ctx context.Context, actor *models.JWTClaims, id string, patch dto.VehicleRequestPatch) (*models.VehicleRequest, error) {
	if err := validateInput(s.validator, patch, "invalid vehicle request payload"); err != nil {
		return nil, err
	}
	request, err := s.owned(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if request.CreatedBy, err = reassignOwner(actor, request.CreatedBy, patch.CreatedBy); err != nil {
		return nil, err
	}
	patch.Apply(request)
	return s.save(ctx, request)
}

// Approve records one stage's decision. Any authenticated caller may sign off.
func (s *VehicleRequestService) Approve(ctx context.Context, actor *models.JWTClaims, id string, req dto.ApprovalRequest) (*models.VehicleRequest, error) {
	if actor == nil {
		return nil, appErrors.ErrUnauthorized
	}
	if err := validateInput(s.validator, req, "invalid approval payload"); err != nil {
		return nil, err
	}
	request, err := s.repo.SetApproval(ctx, id, req.Stage, *req.Approved)
	if err != nil {
		return nil, storeError(err, "vehicle request", "approve")
	}
	s.logger.Info("vehicle request approval recorded",
		zap.String("id", id),
		zap.String("stage", string(req.Stage)),
		zap.Bool("approved", *req.Approved),
		zap.String("actor", actor.UserID),
		zap.Bool("fully_approved", request.FullyApproved()),
	)
	return request, nil
}

// Delete removes a vehicle request.
func (s *VehicleRequestService) Delete(ctx context.Context, actor *models.JWTClaims, id string) error {
	if _, err := s.owned(ctx, actor, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeError(err, "vehicle request", "delete")
	}
	return nil
}

func (s *VehicleRequestService) owned(ctx context.Context, actor *models.JWTClaims, id string) (*models.VehicleRequest, error) {
	request, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(actor, request.Owner()); err != nil {
		return nil, err
	}
	return request, nil
}

func (s *VehicleRequestService) save(ctx context.Context, request *models.VehicleRequest) (*models.VehicleRequest, error) {
	if err := checkTripDates(request); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, request); err != nil {
		return nil, storeError(err, "vehicle request", "update")
	}
	return request, nil
}

func checkTripDates(request *models.VehicleRequest) error {
	if request.DepartureDate.After(request.ReturnDate.Time) {
		return appErrors.WithDetails(appErrors.Clone(appErrors.ErrValidation, "invalid vehicle request payload"),
			appErrors.FieldError{Field: "return_date", Message: "Return date must be on or after the departure date."})
	}
	return nil
}
