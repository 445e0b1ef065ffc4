package service

import (
	"bytes"
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx/types"
	"go.uber.org/zap"

	"github.com/docstream/docstream-api/internal/dto"
	"github.com/docstream/docstream-api/internal/models"
	appErrors "github.com/docstream/docstream-api/pkg/errors"
	"github.com/docstream/docstream-api/pkg/validation"
)

type itemRequestRepository interface {
	List(ctx context.Context, filter models.RecordFilter) ([]models.ItemRequest, int, error)
	FindByID(ctx context.Context, id string) (*models.ItemRequest, error)
	Create(ctx context.Context, item *models.ItemRequest) error
	Update(ctx context.Context, item *models.ItemRequest) error
	Delete(ctx context.Context, id string) error
}

// ItemRequestService handles supply requests.
type ItemRequestService struct {
	repo      itemRequestRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewItemRequestService constructs an ItemRequestService.
func NewItemRequestService(repo itemRequestRepository, validate *validator.Validate, logger *zap.Logger) *ItemRequestService {
	if validate == nil {
		validate = validation.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ItemRequestService{repo: repo, validator: validate, logger: logger}
}

// List returns a page of item requests.
func (s *ItemRequestService) List(ctx context.Context, filter models.RecordFilter) ([]models.ItemRequest, *models.Pagination, error) {
	if err := checkRecordFilter(filter); err != nil {
		return nil, nil, err
	}
	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, storeError(err, "item request", "list")
	}
	return items, paginationFor(filter.Page, filter.PageSize, total), nil
}

// Get returns an item request by id.
func (s *ItemRequestService) Get(ctx context.Context, id string) (*models.ItemRequest, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "item request", "load")
	}
	return item, nil
}

// Create files a new item request.
func (s *ItemRequestService) Create(ctx context.Context, actor *models.JWTClaims, payload dto.ItemRequestPayload) (*models.ItemRequest, error) {
	if err := s.validatePayload(payload, &payload.Items); err != nil {
		return nil, err
	}
	owner, err := creatorFor(actor, payload.CreatedBy)
	if err != nil {
		return nil, err
	}
	item := &models.ItemRequest{CreatedBy: owner}
	payload.Apply(item)
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, storeError(err, "item request", "create")
	}
	return item, nil
}

// Update replaces an item request.
func (s *ItemRequestService) Update(ctx context.Context, actor *models.JWTClaims, id string, payload dto.ItemRequestPayload) (*models.ItemRequest, error) {
	if err := s.validatePayload(payload, &payload.Items); err != nil {
		return nil, err
	}
	item, err := s.owned(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	var requested *string
	if payload.CreatedBy != "" {
		requested = &payload.CreatedBy
	}
	if item.CreatedBy, err = reassignOwner(actor, item.CreatedBy, requested); err != nil {
		return nil, err
	}
	payload.Apply(item)
	return s.save(ctx, item)
}

// Patch updates the fields present in patch.
func (s *ItemRequestService) Patch(ctx context.Context, actor *models.JWTClaims, id string, patch dto.ItemRequestPatch) (*models.ItemRequest, error) {
	if err := s.validatePayload(patch, patch.Items); err != nil {
		return nil, err
	}
	item, err := s.owned(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if item.CreatedBy, err = reassignOwner(actor, item.CreatedBy, patch.CreatedBy); err != nil {
		return nil, err
	}
	patch.Apply(item)
	return s.save(ctx, item)
}

// Delete removes an item request.
func (s *ItemRequestService) Delete(ctx context.Context, actor *models.JWTClaims, id string) error {
	if _, err := s.owned(ctx, actor, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeError(err, "item request", "delete")
	}
	return nil
}

func (s *ItemRequestService) owned(ctx context.Context, actor *models.JWTClaims, id string) (*models.ItemRequest, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(actor, item.Owner()); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *ItemRequestService) save(ctx context.Context, item *models.ItemRequest) (*models.ItemRequest, error) {
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, storeError(err, "item request", "update")
	}
	return item, nil
}

// validatePayload also rejects a JSON null items document, which the required tag lets through.
func (s *ItemRequestService) validatePayload(input interface{}, items *types.JSONText) error {
	if err := validateInput(s.validator, input, "invalid item request payload"); err != nil {
		return err
	}
	if items != nil && bytes.Equal(bytes.TrimSpace(*items), []byte("null")) {
		return appErrors.WithDetails(appErrors.Clone(appErrors.ErrValidation, "invalid item request payload"),
			appErrors.FieldError{Field: "items", Message: "This field may not be null."})
	}
	return nil
}
