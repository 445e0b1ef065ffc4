package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/docstream/docstream-api/internal/dto"
	"github.com/docstream/docstream-api/internal/models"
	"github.com/docstream/docstream-api/pkg/response"
)

type facilityService interface {
	List(ctx context.Context, filter models.FacilityFilter) ([]models.Facility, *models.Pagination, error)
	Get(ctx context.Context, id string) (*models.Facility, error)
	Create(ctx context.Context, actor *models.JWTClaims, payload dto.FacilityPayload) (*models.Facility, error)
	Update(ctx context.Context, actor *models.JWTClaims, id string, payload dto.FacilityPayload) (*models.Facility, error)
	Patch(ctx context.Context, actor *models.JWTClaims, id string, patch dto.FacilityPatch) (*models.Facility, error)
	Delete(ctx context.Context, actor *models.JWTClaims, id string) error
}

// FacilityHandler exposes company sites.
type FacilityHandler struct {
	facilities facilityService
}

// NewFacilityHandler constructs FacilityHandler.
func NewFacilityHandler(facilities facilityService) *FacilityHandler {
	return &FacilityHandler{facilities: facilities}
}

// List godoc
// @Summary List facilities
// @Tags Facilities
// @Produce json
// @Security BearerAuth
// @Param search query string false "Search name or serial number"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} response.Envelope{data=[]models.Facility}
// @Router /facility [get]
func (h *FacilityHandler) List(c *gin.Context) {
	page, size := pageParams(c)
	filter := models.FacilityFilter{Search: strings.TrimSpace(c.Query("search")), Page: page, PageSize: size}
	facilities, pagination, err := h.facilities.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, facilities, pagination)
}

// Get godoc
// @Summary Get facility
// @Tags Facilities
// @Produce json
// @Security BearerAuth
// @Param id path string true "Facility ID"
// @Success 200 {object} response.Envelope{data=models.Facility}
// @Router /facility/{id} [get]
func (h *FacilityHandler) Get(c *gin.Context) {
	facility, err := h.facilities.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, facility, nil)
}

// Create godoc
// @Summary Create facility
// @Tags Facilities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.FacilityPayload true "Facility"
// @Success 201 {object} response.Envelope{data=models.Facility}
// @Router /facility [post]
func (h *FacilityHandler) Create(c *gin.Context) {
	var payload dto.FacilityPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, bindError(err, "invalid facility payload"))
		return
	}
	facility, err := h.facilities.Create(c.Request.Context(), claimsFromContext(c), payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, facility)
}

// Update godoc
// @Summary Replace facility
// @Tags Facilities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Facility ID"
// @Param payload body dto.FacilityPayload true "Facility"
// @Success 200 {object} response.Envelope{data=models.Facility}
// @Router /facility/{id} [put]
func (h *FacilityHandler) Update(c *gin.Context) {
	var payload dto.FacilityPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, bindError(err, "invalid facility payload"))
		return
	}
	facility, err := h.facilities.Update(c.Request.Context(), claimsFromContext(c), c.Param("id"), payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, facility, nil)
}

// Patch godoc
// @Summary Update facility fields
// @Tags Facilities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Facility ID"
// @Param payload body dto.FacilityPatch true "Fields to change"
// @Success 200 {object} response.Envelope{data=models.Facility}
// @Router /facility/{id} [patch]
func (h *FacilityHandler) Patch(c *gin.Context) {
	var patch dto.FacilityPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, bindError(err, "invalid facility payload"))
		return
	}
	facility, err := h.facilities.Patch(c.Request.Context(), claimsFromContext(c), c.Param("id"), patch)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, facility, nil)
}

// Delete godoc
// @Summary Delete facility
// @Tags Facilities
// @Security BearerAuth
// @Param id path string true "Facility ID"
// @Success 204
// @Router /facility/{id} [delete]
func (h *FacilityHandler) Delete(c *gin.Context) {
	if err := h.facilities.Delete(c.Request.Context(), claimsFromContext(c), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
