package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docstream/docstream-api/internal/dto"
	"github.com/docstream/docstream-api/internal/middleware"
	"github.com/docstream/docstream-api/internal/models"
	appErrors "github.com/docstream/docstream-api/pkg/errors"
)

type itemServiceMock struct {
	filter  models.RecordFilter
	payload dto.ItemRequestPayload
	err     error
}

func (m *itemServiceMock) List(ctx context.Context, filter models.RecordFilter) ([]models.ItemRequest, *models.Pagination, error) {
	m.filter = filter
	return []models.ItemRequest{}, &models.Pagination{Page: 1, PageSize: 20}, nil
}

func (m *itemServiceMock) Get(ctx context.Context, id string) (*models.ItemRequest, error) {
	return &models.ItemRequest{ID: id}, nil
}

func (m *itemServiceMock) Create(ctx context.Context, actor *models.JWTClaims, payload dto.ItemRequestPayload) (*models.ItemRequest, error) {
	m.payload = payload
	if m.err != nil {
		return nil, m.err
	}
	return &models.ItemRequest{ID: "ir-1", Items: payload.Items, CreatedBy: actor.StaffRef}, nil
}

func (m *itemServiceMock) Update(ctx context.Context, actor *models.JWTClaims, id string, payload dto.ItemRequestPayload) (*models.ItemRequest, error) {
	return nil, m.err
}

func (m *itemServiceMock) Patch(ctx context.Context, actor *models.JWTClaims, id string, patch dto.ItemRequestPatch) (*models.ItemRequest, error) {
	return nil, m.err
}

func (m *itemServiceMock) Delete(ctx context.Context, actor *models.JWTClaims, id string) error {
	return m.err
}

func memberContext(w *httptest.ResponseRecorder, req *http.Request) *gin.Context {
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set(middleware.ContextUserKey, &models.JWTClaims{UserID: "member", StaffRef: "staff-1"})
	return c
}

func TestItemRequestHandlerListByCreator(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &itemServiceMock{}
	handler := NewItemRequestHandler(svc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/item-request?created_by=%20staff-9%20&page=3", nil)
	handler.List(memberContext(w, req))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.RecordFilter{CreatedBy: "staff-9", Page: 3}, svc.filter)
}

func TestItemRequestHandlerCreate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &itemServiceMock{}
	handler := NewItemRequestHandler(svc)

	w := httptest.NewRecorder()
	handler.Create(memberContext(w, jsonRequest(http.MethodPost, "/item-request", `{"items":[{"name":"toner","qty":2}]}`)))

	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `[{"name":"toner","qty":2}]`, string(svc.payload.Items))
	assert.Contains(t, string(decodeEnvelope(t, w)["data"]), `"created_by":"staff-1"`)
}

func TestItemRequestHandlerErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &itemServiceMock{err: appErrors.Clone(appErrors.ErrForbidden, "only the creator can change this record")}
	handler := NewItemRequestHandler(svc)

	w := httptest.NewRecorder()
	c := memberContext(w, jsonRequest(http.MethodDelete, "/item-request/ir-1", ""))
	c.Params = gin.Params{{Key: "id", Value: "ir-1"}}
	handler.Delete(c)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	handler.Create(memberContext(w, jsonRequest(http.MethodPost, "/item-request", `{"created_by":42}`)))
	require.Equal(t, http.StatusBadRequest, w.Code)

	var apiErr appErrors.Error
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w)["error"], &apiErr))
	require.Len(t, apiErr.Details, 1)
	assert.Equal(t, "created_by", apiErr.Details[0].Field)
}
