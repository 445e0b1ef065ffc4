package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/docstream/docstream-api/internal/dto"
	"github.com/docstream/docstream-api/internal/models"
	"github.com/docstream/docstream-api/pkg/response"
)

type inventoryChecklistService interface {
	List(ctx context.Context, filter models.RecordFilter) ([]models.InventoryChecklist, *models.Pagination, error)
	Get(ctx context.Context, id string) (*models.InventoryChecklist, error)
	Create(ctx context.Context, actor *models.JWTClaims, payload dto.InventoryChecklistPayload) (*models.InventoryChecklist, error)
	Update(ctx context.Context, actor *models.JWTClaims, id string, payload dto.InventoryChecklistPayload) (*models.InventoryChecklist, error)
	Patch(ctx context.Context, actor *models.JWTClaims, id string, patch dto.InventoryChecklistPatch) (*models.InventoryChecklist, error)
	Delete(ctx context.Context, actor *models.JWTClaims, id string) error
}

// InventoryChecklistHandler exposes retail outlet stock readings.
type InventoryChecklistHandler struct {
	checklists inventoryChecklistService
}

// NewInventoryChecklistHandler constructs InventoryChecklistHandler.
func NewInventoryChecklistHandler(checklists inventoryChecklistService) *InventoryChecklistHandler {
	return &InventoryChecklistHandler{checklists: checklists}
}

// List godoc
// @Summary List inventory checklists
// @Tags Inventory Checklists
// @Produce json
// @Security BearerAuth
// @Param created_by query string false "Filter by creating staff id"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} response.Envelope{data=[]models.InventoryChecklist}
// @Router /inventory-checklist [get]
func (h *InventoryChecklistHandler) List(c *gin.Context) {
	checklists, pagination, err := h.checklists.List(c.Request.Context(), recordFilter(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, checklists, pagination)
}

// Get godoc
// @Summary Get inventory checklist
// @Tags Inventory Checklists
// @Produce json
// @Security BearerAuth
// @Param id path string true "Inventory checklist ID"
// @Success 200 {object} response.Envelope{data=models.InventoryChecklist}
// @Router /inventory-checklist/{id} [get]
func (h *InventoryChecklistHandler) Get(c *gin.Context) {
	checklist, err := h.checklists.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, checklist, nil)
}

// Create godoc
// @Summary Create inventory checklist
// @Tags Inventory Checklists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.InventoryChecklistPayload true "Inventory checklist"
// @Success 201 {object} response.Envelope{data=models.InventoryChecklist}
// @Router /inventory-checklist [post]
func (h *InventoryChecklistHandler) Create(c *gin.Context) {
	var payload dto.InventoryChecklistPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, bindError(err, "invalid inventory checklist payload"))
		return
	}
	checklist, err := h.checklists.Create(c.Request.Context(), claimsFromContext(c), payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, checklist)
}

// Update godoc
// @Summary Replace inventory checklist
// @Tags Inventory Checklists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Inventory checklist ID"
// @Param payload body dto.InventoryChecklistPayload true "Inventory checklist"
// @Success 200 {object} response.Envelope{data=models.InventoryChecklist}
// @Router /inventory-checklist/{id} [put]
func (h *InventoryChecklistHandler) Update(c *gin.Context) {
	var payload dto.InventoryChecklistPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, bindError(err, "invalid inventory checklist payload"))
		return
	}
	checklist, err := h.checklists.Update(c.Request.Context(), claimsFromContext(c), c.Param("id"), payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, checklist, nil)
}

// Patch godoc
// @Summary Update inventory checklist fields
// @Tags Inventory Checklists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Inventory checklist ID"
// @Param payload body dto.InventoryChecklistPatch true "Fields to change"
// @Success 200 {object} response.Envelope{data=models.InventoryChecklist}
// @Router /inventory-checklist/{id} [patch]
func (h *InventoryChecklistHandler) Patch(c *gin.Context) {
	var patch dto.InventoryChecklistPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, bindError(err, "invalid inventory checklist payload"))
		return
	}
	checklist, err := h.checklists.Patch(c.Request.Context(), claimsFromContext(c), c.Param("id"), patch)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, checklist, nil)
}

// Delete godoc
// @Summary Delete inventory checklist
// @Tags Inventory Checklists
// @Security BearerAuth
// @Param id path string true "Inventory checklist ID"
// @Success 204
// @Router /inventory-checklist/{id} [delete]
func (h *InventoryChecklistHandler) Delete(c *gin.Context) {
	if err := h.checklists.Delete(c.Request.Context(), claimsFromContext(c), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
