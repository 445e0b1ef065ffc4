package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/docstream/docstream-api/internal/dto"
	"github.com/docstream/docstream-api/internal/models"
	"github.com/docstream/docstream-api/pkg/response"
)

type itemRequestService interface {
	List(ctx context.Context, filter models.RecordFilter) ([]models.ItemRequest, *models.Pagination, error)
	Get(ctx context.Context, id string) (*models.ItemRequest, error)
	Create(ctx context.Context, actor *models.JWTClaims, payload dto.ItemRequestPayload) (*models.ItemRequest, error)
	Update(ctx context.Context, actor *models.JWTClaims, id string, payload dto.ItemRequestPayload) (*models.ItemRequest, error)
	Patch(ctx context.Context, actor *models.JWTClaims, id string, patch dto.ItemRequestPatch) (*models.ItemRequest, error)
	Delete(ctx context.Context, actor *models.JWTClaims, id string) error
}

// ItemRequestHandler exposes supply requests.
type ItemRequestHandler struct {
	items itemRequestService
}

// NewItemRequestHandler constructs ItemRequestHandler.
func NewItemRequestHandler(items itemRequestService) *ItemRequestHandler {
	return &ItemRequestHandler{items: items}
}

// List godoc
// @Summary List item requests
// @Tags Item Requests
// @Produce json
// @Security BearerAuth
// @Param created_by query string false "Filter by creating staff id"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} response.Envelope{data=[]models.ItemRequest}
// @Router /item-request [get]
func (h *ItemRequestHandler) List(c *gin.Context) {
	items, pagination, err := h.items.List(c.Request.Context(), recordFilter(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items, pagination)
}

// Get godoc
// @Summary Get item request
// @Tags Item Requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item request ID"
// @Success 200 {object} response.Envelope{data=models.ItemRequest}
// @Router /item-request/{id} [get]
func (h *ItemRequestHandler) Get(c *gin.Context) {
	item, err := h.items.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, item, nil)
}

// Create godoc
// @Summary Create item request
// @Tags Item Requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.ItemRequestPayload true "Item request"
// @Success 201 {object} response.Envelope{data=models.ItemRequest}
// @Router /item-request [post]
func (h *ItemRequestHandler) Create(c *gin.Context) {
	var payload dto.ItemRequestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, bindError(err, "invalid item request payload"))
		return
	}
	item, err := h.items.Create(c.Request.Context(), claimsFromContext(c), payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, item)
}

// Update godoc
// @Summary Replace item request
// @Tags Item Requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item request ID"
// @Param payload body dto.ItemRequestPayload true "Item request"
// @Success 200 {object} response.Envelope{data=models.ItemRequest}
// @Router /item-request/{id} [put]
func (h *ItemRequestHandler) Update(c *gin.Context) {
	var payload dto.ItemRequestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, bindError(err, "invalid item request payload"))
		return
	}
	item, err := h.items.Update(c.Request.Context(), claimsFromContext(c), c.Param("id"), payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, item, nil)
}

// Patch godoc
// @Summary Update item request fields
// @Tags Item Requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item request ID"
// @Param payload body dto.ItemRequestPatch true "Fields to change"
// @Success 200 {object} response.Envelope{data=models.ItemRequest}
// @Router /item-request/{id} [patch]
func (h *ItemRequestHandler) Patch(c *gin.Context) {
	var patch dto.ItemRequestPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, bindError(err, "invalid item request payload"))
		return
	}
	item, err := h.items.Patch(c.Request.Context(), claimsFromContext(c), c.Param("id"), patch)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, item, nil)
}

// Delete godoc
// @Summary Delete item request
// @Tags Item Requests
// @Security BearerAuth
// @Param id path string true "Item request ID"
// @Success 204
// @Router /item-request/{id} [delete]
func (h *ItemRequestHandler) Delete(c *gin.Context) {
	if err := h.items.Delete(c.Request.Context(), claimsFromContext(c), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
