package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/docstream/docstream-api/internal/models"
	appErrors "github.com/docstream/docstream-api/pkg/errors"
)

// Envelope represents the common response contract.
type Envelope struct {
	Data       interface{}            `json:"data,omitempty"`
	Error      *appErrors.Error       `json:"error,omitempty"`
	Pagination *models.Pagination     `json:"pagination,omitempty"`
	Meta       map[string]interface{} `json:"meta,omitempty"`
}

// JSON sends a success response with optional pagination metadata.
func JSON(c *gin.Context, status int, data interface{}, pagination *models.Pagination, meta ...map[string]interface{}) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	envelope := Envelope{Data: data, Pagination: pagination}
	if len(meta) > 0 && meta[0] != nil {
		envelope.Meta = meta[0]
	}
	c.JSON(status, envelope)
}

// ResourceIDKey is the context key holding the id of a row created by the request.
const ResourceIDKey = "resource_id"

type identified interface {
	ResourceID() string
}

// Created responds with HTTP 201 Created and exposes the new row's id to audit middleware.
func Created(c *gin.Context, data interface{}) {
	if row, ok := data.(identified); ok && row.ResourceID() != "" {
		c.Set(ResourceIDKey, row.ResourceID())
	}
	JSON(c, http.StatusCreated, data, nil)
}

// Error sends an error response converting the error to the common structure.
// Forbidden responses carry no message detail.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	if appErr.Status == http.StatusForbidden && appErr.Code == appErrors.ErrForbidden.Code {
		appErr = appErrors.ErrForbidden
	}
	if appErr.Status >= http.StatusInternalServerError {
		_ = c.Error(appErr)
	}
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(appErr.Status, Envelope{Error: appErr})
}

// NoContent sends a 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Attachment streams a generated file as a download.
func Attachment(c *gin.Context, filename, contentType string, body []byte) {
	c.Header("Cache-Control", "no-store")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, body)
}
