package handler

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/docstream/docstream-api/internal/middleware"
	"github.com/docstream/docstream-api/internal/models"
	appErrors "github.com/docstream/docstream-api/pkg/errors"
)

func claimsFromContext(c *gin.Context) *models.JWTClaims {
	claims, ok := middleware.Claims(c)
	if !ok {
		return nil
	}
	return claims
}

// pageParams reads page and page_size, leaving zero values for the service to default.
func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.Query("page"))
	size, _ := strconv.Atoi(c.Query("page_size"))
	return page, size
}

func recordFilter(c *gin.Context) models.RecordFilter {
	page, size := pageParams(c)
	return models.RecordFilter{
		CreatedBy: strings.TrimSpace(c.Query("created_by")),
		Page:      page,
		PageSize:  size,
	}
}

// bindError converts a request decoding failure into a VALIDATION_ERROR, naming the field when the
// decoder reports one.
func bindError(err error, message string) error {
	out := appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, message)
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return appErrors.WithDetails(out, appErrors.FieldError{
			Field:   typeErr.Field,
			Message: "Expected a " + typeErr.Type.String() + " value.",
		})
	}
	return out
}
