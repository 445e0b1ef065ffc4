package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/docstream/docstream-api/internal/dto"
	"github.com/docstream/docstream-api/internal/models"
	"github.com/docstream/docstream-api/pkg/validation"
)

type facilityRepository interface {
	List(ctx context.Context, filter models.FacilityFilter) ([]models.Facility, int, error)
	FindByID(ctx context.Context, id string) (*models.Facility, error)
	Create(ctx context.Context, facility *models.Facility) error
	Update(ctx context.Context, facility *models.Facility) error
	Delete(ctx context.Context, id string) error
}

// FacilityService manages company sites. Writes are restricted to administrators.
type FacilityService struct {
	repo      facilityRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewFacilityService constructs a FacilityService.
func NewFacilityService(repo facilityRepository, validate *validator.Validate, logger *zap.Logger) *FacilityService {
	if validate == nil {
		validate = validation.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FacilityService{repo: repo, validator: validate, logger: logger}
}

// List returns a page of facilities.
func (s *FacilityService) List(ctx context.Context, filter models.FacilityFilter) ([]models.Facility, *models.Pagination, error) {
	facilities, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, storeError(err, "facility", "list")
	}
	return facilities, paginationFor(filter.Page, filter.PageSize, total), nil
}

// Get returns a facility by id.
func (s *FacilityService) Get(ctx context.Context, id string) (*models.Facility, error) {
	facility, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "facility", "load")
	}
	return facility, nil
}

// Create registers a facility.
func (s *FacilityService) Create(ctx context.Context, actor *models.JWTClaims, payload dto.FacilityPayload) (*models.Facility, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if err := validateInput(s.validator, payload, "invalid facility payload"); err != nil {
		return nil, err
	}
	takeOver := models.DefaultTakeOver
	facility := &models.Facility{TakeOver: &takeOver}
	payload.Apply(facility)
	if err := s.repo.Create(ctx, facility); err != nil {
		return nil, storeError(err, "facility", "create")
	}
	return facility, nil
}

// Update replaces a facility.
func (s *FacilityService) Update(ctx context.Context, actor *models.JWTClaims, id string, payload dto.FacilityPayload) (*models.Facility, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if err := validateInput(s.validator, payload, "invalid facility payload"); err != nil {
		return nil, err
	}
	facility, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	payload.Apply(facility)
	return s.save(ctx, facility)
}

// Patch updates the fields present in patch.
func (s *FacilityService) Patch(ctx context.Context, actor *models.JWTClaims, id string, patch dto.FacilityPatch) (*models.Facility, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if err := validateInput(s.validator, patch, "invalid facility payload"); err != nil {
		return nil, err
	}
	facility, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(facility)
	return s.save(ctx, facility)
}

// Delete removes a facility.
func (s *FacilityService) Delete(ctx context.Context, actor *models.JWTClaims, id string) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeError(err, "facility", "delete")
	}
	return nil
}

func (s *FacilityService) save(ctx context.Context, facility *models.Facility) (*models.Facility, error) {
	if err := s.repo.Update(ctx, facility); err != nil {
		return nil, storeError(err, "facility", "update")
	}
	return facility, nil
}
