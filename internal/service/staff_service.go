package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/docstream/docstream-api/internal/dto"
	"github.com/docstream/docstream-api/internal/models"
	"github.com/docstream/docstream-api/pkg/database"
	appErrors "github.com/docstream/docstream-api/pkg/errors"
	"github.com/docstream/docstream-api/pkg/validation"
)

type staffRepository interface {
	List(ctx context.Context, filter models.StaffFilter) ([]models.Staff, int, error)
	FindByID(ctx context.Context, id string) (*models.Staff, error)
	ExistsByStaffID(ctx context.Context, staffID, excludeID string) (bool, error)
	ExistsByEmail(ctx context.Context, email, excludeID string) (bool, error)
	Create(ctx context.Context, staff *models.Staff) error
	Update(ctx context.Context, staff *models.Staff) error
	Delete(ctx context.Context, id string) error
}

type staffSessionEnder interface {
	EndStaffSessions(ctx context.Context, staffRef string) error
}

// StaffService manages the staff directory.
type StaffService struct {
	repo      staffRepository
	sessions  staffSessionEnder
	validator *validator.Validate
	logger    *zap.Logger
}

// StaffServiceOption customises a StaffService.
type StaffServiceOption func(*StaffService)

// WithSessionEnder ends the login sessions of a staff member before the row is deleted.
func WithSessionEnder(sessions staffSessionEnder) StaffServiceOption {
	return func(s *StaffService) {
		s.sessions = sessions
	}
}

// NewStaffService constructs a StaffService.
func NewStaffService(repo staffRepository, validate *validator.Validate, logger *zap.Logger, opts ...StaffServiceOption) *StaffService {
	if validate == nil {
		validate = validation.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	svc := &StaffService{repo: repo, validator: validate, logger: logger}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// List returns staff matching filter.
func (s *StaffService) List(ctx context.Context, filter models.StaffFilter) ([]models.Staff, *models.Pagination, error) {
	if filter.Status != "" && filter.Status != models.StaffStatusActive && filter.Status != models.StaffStatusInactive {
		return nil, nil, appErrors.WithDetails(appErrors.Clone(appErrors.ErrValidation, "invalid staff filter"),
			appErrors.FieldError{Field: "status", Message: "Must be one of: active, inactive."})
	}
	staff, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, storeError(err, "staff", "list")
	}
	return staff, paginationFor(filter.Page, filter.PageSize, total), nil
}

// Get returns a staff member by id.
func (s *StaffService) Get(ctx context.Context, id string) (*models.Staff, error) {
	staff, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "staff", "load")
	}
	return staff, nil
}

// Create adds a staff member to the directory.
func (s *StaffService) Create(ctx context.Context, actor *models.JWTClaims, payload dto.StaffPayload) (*models.Staff, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if err := validateInput(s.validator, payload, "invalid staff payload"); err != nil {
		return nil, err
	}
	staff := &models.Staff{}
	payload.Apply(staff)
	if err := s.ensureUnique(ctx, staff); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, staff); err != nil {
		return nil, s.writeError(err, "create")
	}
	s.logger.Info("staff created", zap.String("staff_id", staff.StaffID), zap.String("actor", actor.UserID))
	return staff, nil
}

// Update replaces every editable field of a staff member.
func (s *StaffService) Update(ctx context.Context, actor *models.JWTClaims, id string, payload dto.StaffPayload) (*models.Staff, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if err := validateInput(s.validator, payload, "invalid staff payload"); err != nil {
		return nil, err
	}
	staff, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	payload.Apply(staff)
	return s.save(ctx, staff)
}

// Patch updates only the fields present in patch.
func (s *StaffService) Patch(ctx context.Context, actor *models.JWTClaims, id string, patch dto.StaffPatch) (*models.Staff, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if err := validateInput(s.validator, patch, "invalid staff payload"); err != nil {
		return nil, err
	}
	staff, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(staff)
	return s.save(ctx, staff)
}

// Delete removes a staff member. Linked accounts and owned records cascade; activity logs remain.
func (s *StaffService) Delete(ctx context.Context, actor *models.JWTClaims, id string) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if s.sessions != nil {
		if err := s.sessions.EndStaffSessions(ctx, id); err != nil {
			s.logger.Warn("failed to end staff sessions", zap.String("id", id), zap.Error(err))
		}
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeError(err, "staff", "delete")
	}
	s.logger.Info("staff deleted", zap.String("id", id), zap.String("actor", actor.UserID))
	return nil
}

func (s *StaffService) save(ctx context.Context, staff *models.Staff) (*models.Staff, error) {
	if err := s.ensureUnique(ctx, staff); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, staff); err != nil {
		return nil, s.writeError(err, "update")
	}
	return staff, nil
}

func (s *StaffService) ensureUnique(ctx context.Context, staff *models.Staff) error {
	var conflicts []appErrors.FieldError
	taken, err := s.repo.ExistsByStaffID(ctx, staff.StaffID, staff.ID)
	if err != nil {
		return storeError(err, "staff", "check")
	}
	if taken {
		conflicts = append(conflicts, appErrors.FieldError{Field: "staff_id", Message: msgStaffIDExists})
	}
	taken, err = s.repo.ExistsByEmail(ctx, strings.TrimSpace(staff.Email), staff.ID)
	if err != nil {
		return storeError(err, "staff", "check")
	}
	if taken {
		conflicts = append(conflicts, appErrors.FieldError{Field: "email", Message: msgEmailExists})
	}
	if len(conflicts) > 0 {
		return appErrors.WithDetails(appErrors.Clone(appErrors.ErrConflict, "staff already exists"), conflicts...)
	}
	return nil
}

func (s *StaffService) writeError(err error, action string) error {
	if constraint, ok := database.UniqueViolation(err); ok {
		return conflictForConstraint(constraint)
	}
	return storeError(err, "staff", action)
}
