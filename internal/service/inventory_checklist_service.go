package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/docstream/docstream-api/internal/dto"
	"github.com/docstream/docstream-api/internal/models"
	"github.com/docstream/docstream-api/pkg/validation"
)

type inventoryChecklistRepository interface {
	List(ctx context.Context, filter models.RecordFilter) ([]models.InventoryChecklist, int, error)
	FindByID(ctx context.Context, id string) (*models.InventoryChecklist, error)
	Create(ctx context.Context, checklist *models.InventoryChecklist) error
	Update(ctx context.Context, checklist *models.InventoryChecklist) error
	Delete(ctx context.Context, id string) error
}

// InventoryChecklistService handles retail outlet stock readings.
type InventoryChecklistService struct {
	repo      inventoryChecklistRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewInventoryChecklistService constructs an InventoryChecklistService.
func NewInventoryChecklistService(repo inventoryChecklistRepository, validate *validator.Validate, logger *zap.Logger) *InventoryChecklistService {
	if validate == nil {
		validate = validation.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InventoryChecklistService{repo: repo, validator: validate, logger: logger}
}

// List returns a page of checklists.
func (s *InventoryChecklistService) List(ctx context.Context, filter models.RecordFilter) ([]models.InventoryChecklist, *models.Pagination, error) {
	if err := checkRecordFilter(filter); err != nil {
		return nil, nil, err
	}
	checklists, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, storeError(err, "inventory checklist", "list")
	}
	return checklists, paginationFor(filter.Page, filter.PageSize, total), nil
}

// Get returns a checklist by id.
func (s *InventoryChecklistService) Get(ctx context.Context, id string) (*models.InventoryChecklist, error) {
	checklist, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "inventory checklist", "load")
	}
	return checklist, nil
}

// Create records a new checklist.
func (s *InventoryChecklistService) Create(ctx context.Context, actor *models.JWTClaims, payload dto.InventoryChecklistPayload) (*models.InventoryChecklist, error) {
	if err := validateInput(s.validator, payload, "invalid inventory checklist payload"); err != nil {
		return nil, err
	}
	owner, err := creatorFor(actor, payload.CreatedBy)
	if err != nil {
		return nil, err
	}
	checklist := &models.InventoryChecklist{CreatedBy: owner}
	payload.Apply(checklist)
	if err := s.repo.Create(ctx, checklist); err != nil {
		return nil, storeError(err, "inventory checklist", "create")
	}
	return checklist, nil
}

// Update replaces a checklist.
func (s *InventoryChecklistService) Update(ctx context.Context, actor *models.JWTClaims, id string, payload dto.InventoryChecklistPayload) (*models.InventoryChecklist, error) {
	if err := validateInput(s.validator, payload, "invalid inventory checklist payload"); err != nil {
		return nil, err
	}
	checklist, err := s.owned(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	var requested *string
	if payload.CreatedBy != "" {
		requested = &payload.CreatedBy
	}
	if checklist.CreatedBy, err = reassignOwner(actor, checklist.CreatedBy, requested); err != nil {
		return nil, err
	}
	payload.Apply(checklist)
	return s.save(ctx, checklist)
}

// Patch updates the fields present in patch.
func (s *InventoryChecklistService) Patch(ctx context.Context, actor *models.JWTClaims, id string, patch dto.InventoryChecklistPatch) (*models.InventoryChecklist, error) {
	if err := validateInput(s.validator, patch, "invalid inventory checklist payload"); err != nil {
		return nil, err
	}
	checklist, err := s.owned(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if checklist.CreatedBy, err = reassignOwner(actor, checklist.CreatedBy, patch.CreatedBy); err != nil {
		return nil, err
	}
	patch.Apply(checklist)
	return s.save(ctx, checklist)
}

// Delete removes a checklist.
func (s *InventoryChecklistService) Delete(ctx context.Context, actor *models.JWTClaims, id string) error {
	if _, err := s.owned(ctx, actor, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeError(err, "inventory checklist", "delete")
	}
	return nil
}

func (s *InventoryChecklistService) owned(ctx context.Context, actor *models.JWTClaims, id string) (*models.InventoryChecklist, error) {
	checklist, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(actor, checklist.Owner()); err != nil {
		return nil, err
	}
	return checklist, nil
}

func (s *InventoryChecklistService) save(ctx context.Context, checklist *models.InventoryChecklist) (*models.InventoryChecklist, error) {
	if err := s.repo.Update(ctx, checklist); err != nil {
		return nil, storeError(err, "inventory checklist", "update")
	}
	return checklist, nil
}
