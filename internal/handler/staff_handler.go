package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/docstream/docstream-api/internal/dto"
	"github.com/docstream/docstream-api/internal/models"
	"github.com/docstream/docstream-api/internal/service"
	"github.com/docstream/docstream-api/pkg/response"
)

type staffService interface {
	List(ctx context.Context, filter models.StaffFilter) ([]models.Staff, *models.Pagination, error)
	Get(ctx context.Context, id string) (*models.Staff, error)
	Create(ctx context.Context, actor *models.JWTClaims, payload dto.StaffPayload) (*models.Staff, error)
	Update(ctx context.Context, actor *models.JWTClaims, id string, payload dto.StaffPayload) (*models.Staff, error)
	Patch(ctx context.Context, actor *models.JWTClaims, id string, patch dto.StaffPatch) (*models.Staff, error)
	Delete(ctx context.Context, actor *models.JWTClaims, id string) error
}

type staffExporter interface {
	ExportStaff(ctx context.Context, actor *models.JWTClaims, format string) (*service.ExportResult, error)
}

// StaffHandler exposes the staff directory.
type StaffHandler struct {
	staff    staffService
	exporter staffExporter
}

// NewStaffHandler constructs StaffHandler.
func NewStaffHandler(staff staffService, exporter staffExporter) *StaffHandler {
	return &StaffHandler{staff: staff, exporter: exporter}
}

// List godoc
// @Summary List staff
// @Tags Staff
// @Produce json
// @Security BearerAuth
// @Param department query string false "Filter by department"
// @Param status query string false "active or inactive"
// @Param search query string false "Search name, email or staff id"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} response.Envelope{data=[]models.Staff}
// @Router /staff [get]
func (h *StaffHandler) List(c *gin.Context) {
	page, size := pageParams(c)
	filter := models.StaffFilter{
		Department: strings.TrimSpace(c.Query("department")),
		Status:     models.StaffStatus(strings.TrimSpace(c.Query("status"))),
		Search:     strings.TrimSpace(c.Query("search")),
		Page:       page,
		PageSize:   size,
	}
	staff, pagination, err := h.staff.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, staff, pagination)
}

// Get godoc
// @Summary Get staff member
// @Tags Staff
// @Produce json
// @Security BearerAuth
// @Param id path string true "Staff ID"
// @Success 200 {object} response.Envelope{data=models.Staff}
// @Failure 404 {object} response.Envelope
// @Router /staff/{id} [get]
func (h *StaffHandler) Get(c *gin.Context) {
	staff, err := h.staff.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, staff, nil)
}

// Create godoc
// @Summary Create staff member
// @Tags Staff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.StaffPayload true "Staff payload"
// @Success 201 {object} response.Envelope{data=models.Staff}
// @Failure 409 {object} response.Envelope
// @Router /staff [post]
func (h *StaffHandler) Create(c *gin.Context) {
	var payload dto.StaffPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, bindError(err, "invalid staff payload"))
		return
	}
	staff, err := h.staff.Create(c.Request.Context(), claimsFromContext(c), payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, staff)
}

// Update godoc
// @Summary Replace staff member
// @Tags Staff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Staff ID"
// @Param payload body dto.StaffPayload true "Staff payload"
// @Success 200 {object} response.Envelope{data=models.Staff}
// @Router /staff/{id} [put]
func (h *StaffHandler) Update(c *gin.Context) {
	var payload dto.StaffPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, bindError(err, "invalid staff payload"))
		return
	}
	staff, err := h.staff.Update(c.Request.Context(), claimsFromContext(c), c.Param("id"), payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, staff, nil)
}

// Patch godoc
// @Summary Update staff fields
// @Tags Staff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Staff ID"
// @Param payload body dto.StaffPatch true "Fields to change"
// @Success 200 {object} response.Envelope{data=models.Staff}
// @Router /staff/{id} [patch]
func (h *StaffHandler) Patch(c *gin.Context) {
	var patch dto.StaffPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, bindError(err, "invalid staff payload"))
		return
	}
	staff, err := h.staff.Patch(c.Request.Context(), claimsFromContext(c), c.Param("id"), patch)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, staff, nil)
}

// Delete godoc
// @Summary Delete staff member
// @Description Removes the staff member, its login account and owned records. Activity logs are kept.
// @Tags Staff
// @Security BearerAuth
// @Param id path string true "Staff ID"
// @Success 204
// @Router /staff/{id} [delete]
func (h *StaffHandler) Delete(c *gin.Context) {
	if err := h.staff.Delete(c.Request.Context(), claimsFromContext(c), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Export godoc
// @Summary Export staff directory
// @Tags Staff
// @Produce text/csv
// @Produce application/pdf
// @Security BearerAuth
// @Param format query string false "csv (default) or pdf"
// @Success 200 {file} file
// @Router /staff/export [get]
func (h *StaffHandler) Export(c *gin.Context) {
	var query dto.StaffExportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, bindError(err, "invalid export query"))
		return
	}
	result, err := h.exporter.ExportStaff(c.Request.Context(), claimsFromContext(c), query.Format)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, result.Filename, result.ContentType, result.Body)
}
