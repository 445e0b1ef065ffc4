package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/docstream/docstream-api/internal/dto"
	"github.com/docstream/docstream-api/internal/models"
	"github.com/docstream/docstream-api/pkg/response"
)

type vehicleRequestService interface {
	List(ctx context.Context, filter models.RecordFilter) ([]models.VehicleRequest, *models.Pagination, error)
	Get(ctx context.Context, id string) (*models.VehicleRequest, error)
	Create(ctx context.Context, actor *models.JWTClaims, payload dto.VehicleRequestPayload) (*models.VehicleRequest, error)
	Update(ctx context.Context, actor *models.JWTClaims, id string, payload dto.VehicleRequestPayload) (*models.VehicleRequest, error)
	Patch(ctx context.Context, actor *models.JWTClaims, id string, patch dto.VehicleRequestPatch) (*models.VehicleRequest, error)
	Approve(ctx context.Context, actor *models.JWTClaims, id string, req dto.ApprovalRequest) (*models.VehicleRequest, error)
	Delete(ctx context.Context, actor *models.JWTClaims, id string) error
}

// VehicleRequestHandler exposes trip bookings.
type VehicleRequestHandler struct {
	requests vehicleRequestService
}

// NewVehicleRequestHandler constructs VehicleRequestHandler.
func NewVehicleRequestHandler(requests vehicleRequestService) *VehicleRequestHandler {
	return &VehicleRequestHandler{requests: requests}
}

// List godoc
// @Summary List vehicle requests
// @Tags Vehicle Requests
// @Produce json
// @Security BearerAuth
// @Param created_by query string false "Filter by creating staff id"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} response.Envelope{data=[]models.VehicleRequest}
// @Router /vehicle-request [get]
func (h *VehicleRequestHandler) List(c *gin.Context) {
	requests, pagination, err := h.requests.List(c.Request.Context(), recordFilter(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, requests, pagination)
}

// Get godoc
// @Summary Get vehicle request
// @Tags Vehicle Requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Vehicle request ID"
// @Success 200 {object} response.Envelope{data=models.VehicleRequest}
// @Router /vehicle-request/{id} [get]
func (h *VehicleRequestHandler) Get(c *gin.Context) {
	request, err := h.requests.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, request, nil)
}

// Create godoc
// @Summary Create vehicle request
// @Tags Vehicle Requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.VehicleRequestPayload true "Vehicle request"
// @Success 201 {object} response.Envelope{data=models.VehicleRequest}
// @Router /vehicle-request [post]
func (h *VehicleRequestHandler) Create(c *gin.Context) {
	var payload dto.VehicleRequestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, bindError(err, "invalid vehicle request payload"))
		return
	}
	request, err := h.requests.Create(c.Request.Context(), claimsFromContext(c), payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, request)
}

// Update godoc
// @Summary Replace vehicle request
// @Tags Vehicle Requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Vehicle request ID"
// @Param payload body dto.VehicleRequestPayload true "Vehicle request"
// @Success 200 {object} response.Envelope{data=models.VehicleRequest}
// @Router /vehicle-request/{id} [put]
func (h *VehicleRequestHandler) Update(c *gin.Context) {
	var payload dto.VehicleRequestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, bindError(err, "invalid vehicle request payload"))
		return
	}
	request, err := h.requests.Update(c.Request.Context(), claimsFromContext(c), c.Param("id"), payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, request, nil)
}

// Patch godoc
// @Summary Update vehicle request fields
// @Tags Vehicle Requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Vehicle request ID"
// @Param payload body dto.VehicleRequestPatch true "Fields to change"
// @Success 200 {object} response.Envelope{data=models.VehicleRequest}
// @Router /vehicle-request/{id} [patch]
func (h *VehicleRequestHandler) Patch(c *gin.Context) {
	var patch dto.VehicleRequestPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, bindError(err, "invalid vehicle request payload"))
		return
	}
	request, err := h.requests.Patch(c.Request.Context(), claimsFromContext(c), c.Param("id"), patch)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, request, nil)
}

// Delete godoc
// @Summary Delete vehicle request
// @Tags Vehicle Requests
// @Security BearerAuth
// @Param id path string true "Vehicle request ID"
// @Success 204
// @Router /vehicle-request/{id} [delete]
func (h *VehicleRequestHandler) Delete(c *gin.Context) {
	if err := h.requests.Delete(c.Request.Context(), claimsFromContext(c), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Approve godoc
// @Summary Record a vehicle request approval
// @Description Sets the division head, corporate service or logistics officer sign-off.
// @Tags Vehicle Requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Vehicle request ID"
// @Param payload body dto.ApprovalRequest true "Stage decision"
// @Success 200 {object} response.Envelope{data=models.VehicleRequest}
// @Router /vehicle-request/{id}/approval [post]
func (h *VehicleRequestHandler) Approve(c *gin.Context) {
	var req dto.ApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err, "invalid approval payload"))
		return
	}
	request, err := h.requests.Approve(c.Request.Context(), claimsFromContext(c), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, request, nil)
}
