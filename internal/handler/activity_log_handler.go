package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/docstream/docstream-api/internal/dto"
	"github.com/docstream/docstream-api/internal/models"
	"github.com/docstream/docstream-api/pkg/response"
)

type activityLogService interface {
	List(ctx context.Context, filter models.RecordFilter) ([]models.ActivityLog, *models.Pagination, error)
	Get(ctx context.Context, id string) (*models.ActivityLog, error)
	Create(ctx context.Context, actor *models.JWTClaims, payload dto.ActivityLogPayload) (*models.ActivityLog, error)
	Update(ctx context.Context, actor *models.JWTClaims, id string, payload dto.ActivityLogPayload) (*models.ActivityLog, error)
	Patch(ctx context.Context, actor *models.JWTClaims, id string, patch dto.ActivityLogPatch) (*models.ActivityLog, error)
	Delete(ctx context.Context, actor *models.JWTClaims, id string) error
}

// ActivityLogHandler exposes the activity journal.
type ActivityLogHandler struct {
	logs activityLogService
}

// NewActivityLogHandler constructs ActivityLogHandler.
func NewActivityLogHandler(logs activityLogService) *ActivityLogHandler {
	return &ActivityLogHandler{logs: logs}
}

// List godoc
// @Summary List activity logs
// @Tags Activity Logs
// @Produce json
// @Security BearerAuth
// @Param created_by query string false "Filter by creating staff id"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} response.Envelope{data=[]models.ActivityLog}
// @Router /activity-log [get]
func (h *ActivityLogHandler) List(c *gin.Context) {
	logs, pagination, err := h.logs.List(c.Request.Context(), recordFilter(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, logs, pagination)
}

// Get godoc
// @Summary Get activity log
// @Tags Activity Logs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Activity log ID"
// @Success 200 {object} response.Envelope{data=models.ActivityLog}
// @Router /activity-log/{id} [get]
func (h *ActivityLogHandler) Get(c *gin.Context) {
	entry, err := h.logs.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entry, nil)
}

// Create godoc
// @Summary Create activity log
// @Tags Activity Logs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.ActivityLogPayload true "Activity log"
// @Success 201 {object} response.Envelope{data=models.ActivityLog}
// @Router /activity-log [post]
func (h *ActivityLogHandler) Create(c *gin.Context) {
	var payload dto.ActivityLogPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, bindError(err, "invalid activity log payload"))
		return
	}
	entry, err := h.logs.Create(c.Request.Context(), claimsFromContext(c), payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, entry)
}

// Update godoc
// @Summary Replace activity log
// @Tags Activity Logs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Activity log ID"
// @Param payload body dto.ActivityLogPayload true "Activity log"
// @Success 200 {object} response.Envelope{data=models.ActivityLog}
// @Router /activity-log/{id} [put]
func (h *ActivityLogHandler) Update(c *gin.Context) {
	var payload dto.ActivityLogPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, bindError(err, "invalid activity log payload"))
		return
	}
	entry, err := h.logs.Update(c.Request.Context(), claimsFromContext(c), c.Param("id"), payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entry, nil)
}

// Patch godoc
// @Summary Update activity log fields
// @Tags Activity Logs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Activity log ID"
// @Param payload body dto.ActivityLogPatch true "Fields to change"
// @Success 200 {object} response.Envelope{data=models.ActivityLog}
// @Router /activity-log/{id} [patch]
func (h *ActivityLogHandler) Patch(c *gin.Context) {
	var patch dto.ActivityLogPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, bindError(err, "invalid activity log payload"))
		return
	}
	entry, err := h.logs.Patch(c.Request.Context(), claimsFromContext(c), c.Param("id"), patch)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entry, nil)
}

// Delete godoc
// @Summary Delete activity log
// @Tags Activity Logs
// @Security BearerAuth
// @Param id path string true "Activity log ID"
// @Success 204
// @Router /activity-log/{id} [delete]
func (h *ActivityLogHandler) Delete(c *gin.Context) {
	if err := h.logs.Delete(c.Request.Context(), claimsFromContext(c), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
