package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/docstream/docstream-api/internal/dto"
	"github.com/docstream/docstream-api/internal/models"
	"github.com/docstream/docstream-api/pkg/validation"
)

type activityLogRepository interface {
	List(ctx context.Context, filter models.RecordFilter) ([]models.ActivityLog, int, error)
	FindByID(ctx context.Context, id string) (*models.ActivityLog, error)
	Create(ctx context.Context, log *models.ActivityLog) error
	Update(ctx context.Context, log *models.ActivityLog) error
	Delete(ctx context.Context, id string) error
}

// ActivityLogService keeps the free-text activity journal.
type ActivityLogService struct {
	repo      activityLogRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewActivityLogService constructs an ActivityLogService.
func NewActivityLogService(repo activityLogRepository, validate *validator.Validate, logger *zap.Logger) *ActivityLogService {
	if validate == nil {
		validate = validation.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ActivityLogService{repo: repo, validator: validate, logger: logger}
}

// List returns a page of activity log entries.
func (s *ActivityLogService) List(ctx context.Context, filter models.RecordFilter) ([]models.ActivityLog, *models.Pagination, error) {
	if err := checkRecordFilter(filter); err != nil {
		return nil, nil, err
	}
	logs, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, storeError(err, "activity log", "list")
	}
	return logs, paginationFor(filter.Page, filter.PageSize, total), nil
}

// Get returns an activity log entry by id.
func (s *ActivityLogService) Get(ctx context.Context, id string) (*models.ActivityLog, error) {
	entry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "activity log", "load")
	}
	return entry, nil
}

// Create appends an entry to the journal.
func (s *ActivityLogService) Create(ctx context.Context, actor *models.JWTClaims, payload dto.ActivityLogPayload) (*models.ActivityLog, error) {
	if err := validateInput(s.validator, payload, "invalid activity log payload"); err != nil {
		return nil, err
	}
	owner, err := creatorFor(actor, payload.CreatedBy)
	if err != nil {
		return nil, err
	}
	entry := &models.ActivityLog{CreatedBy: owner}
	payload.Apply(entry)
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, storeError(err, "activity log", "create")
	}
	return entry, nil
}

// Update replaces an entry.
func (s *ActivityLogService) Update(ctx context.Context, actor *models.JWTClaims, id string, payload dto.ActivityLogPayload) (*models.ActivityLog, error) {
	if err := validateInput(s.validator, payload, "invalid activity log payload"); err != nil {
		return nil, err
	}
	entry, err := s.owned(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	var requested *string
	if payload.CreatedBy != "" {
		requested = &payload.CreatedBy
	}
	if entry.CreatedBy, err = reassignOwner(actor, entry.CreatedBy, requested); err != nil {
		return nil, err
	}
	payload.Apply(entry)
	return s.save(ctx, entry)
}

// Patch updates the fields present in patch.
func (s *ActivityLogService) Patch(ctx context.Context, actor *models.JWTClaims, id string, patch dto.ActivityLogPatch) (*models.ActivityLog, error) {
	if err := validateInput(s.validator, patch, "invalid activity log payload"); err != nil {
		return nil, err
	}
	entry, err := s.owned(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if entry.CreatedBy, err = reassignOwner(actor, entry.CreatedBy, patch.CreatedBy); err != nil {
		return nil, err
	}
	patch.Apply(entry)
	return s.save(ctx, entry)
}

// Delete removes an entry.
func (s *ActivityLogService) Delete(ctx context.Context, actor *models.JWTClaims, id string) error {
	if _, err := s.owned(ctx, actor, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeError(err, "activity log", "delete")
	}
	return nil
}

func (s *ActivityLogService) owned(ctx context.Context, actor *models.JWTClaims, id string) (*models.ActivityLog, error) {
	entry, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(actor, entry.Owner()); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *ActivityLogService) save(ctx context.Context, entry *models.ActivityLog) (*models.ActivityLog, error) {
	if err := s.repo.Update(ctx, entry); err != nil {
		return nil, storeError(err, "activity log", "update")
	}
	return entry, nil
}
