package service

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/docstream/docstream-api/internal/models"
	"github.com/docstream/docstream-api/pkg/database"
	appErrors "github.com/docstream/docstream-api/pkg/errors"
)

const msgUnknownStaff = "Invalid pk - object does not exist."

// validateInput runs struct validation and converts failures into a VALIDATION_ERROR.
func validateInput(v *validator.Validate, input interface{}, message string) error {
	if err := v.Struct(input); err != nil {
		return appErrors.Validation(err, message)
	}
	return nil
}

// storeError maps repository failures for a named resource onto API errors.
func storeError(err error, resource, action string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) || database.InvalidText(err) {
		return appErrors.Clone(appErrors.ErrNotFound, resource+" not found")
	}
	if _, ok := database.ForeignKeyViolation(err); ok {
		return appErrors.WithDetails(appErrors.Clone(appErrors.ErrValidation, "invalid "+resource+" payload"),
			appErrors.FieldError{Field: "created_by", Message: msgUnknownStaff})
	}
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to "+action+" "+resource)
}

// checkRecordFilter rejects a created_by filter that cannot name a staff row.
func checkRecordFilter(filter models.RecordFilter) error {
	if filter.CreatedBy == "" {
		return nil
	}
	if _, err := uuid.Parse(filter.CreatedBy); err != nil {
		return appErrors.WithDetails(appErrors.Clone(appErrors.ErrValidation, "invalid filter"),
			appErrors.FieldError{Field: "created_by", Message: "Must be a valid UUID."})
	}
	return nil
}

// creatorFor decides which staff member a new record belongs to. Non-admin callers always own what they
// create; admins may file on behalf of anyone and must do so when they have no staff profile.
func creatorFor(actor *models.JWTClaims, requested string) (string, error) {
	if actor == nil {
		return "", appErrors.ErrUnauthorized
	}
	requested = strings.TrimSpace(requested)
	if actor.IsAdmin && requested != "" {
		return requested, nil
	}
	if actor.StaffRef != "" {
		return actor.StaffRef, nil
	}
	if actor.IsAdmin {
		return "", appErrors.WithDetails(appErrors.Clone(appErrors.ErrValidation, "created_by is required"),
			appErrors.FieldError{Field: "created_by", Message: "This field is required."})
	}
	return "", appErrors.ErrForbidden
}

// authorizeOwner allows the record's owner or an administrator.
func authorizeOwner(actor *models.JWTClaims, owner string) error {
	if actor == nil {
		return appErrors.ErrUnauthorized
	}
	if actor.IsAdmin || (actor.StaffRef != "" && actor.StaffRef == owner) {
		return nil
	}
	return appErrors.ErrForbidden
}

// reassignOwner applies a requested created_by change. Only administrators may move a record.
func reassignOwner(actor *models.JWTClaims, current string, requested *string) (string, error) {
	if requested == nil {
		return current, nil
	}
	next := strings.TrimSpace(*requested)
	if next == "" || next == current {
		return current, nil
	}
	if actor == nil || !actor.IsAdmin {
		return "", appErrors.ErrForbidden
	}
	return next, nil
}

func requireAdmin(actor *models.JWTClaims) error {
	if actor == nil {
		return appErrors.ErrUnauthorized
	}
	if !actor.IsAdmin {
		return appErrors.ErrForbidden
	}
	return nil
}

func paginationFor(page, size, total int) *models.Pagination {
	page, size = models.NormalizePage(page, size)
	return &models.Pagination{Page: page, PageSize: size, TotalCount: total}
}
