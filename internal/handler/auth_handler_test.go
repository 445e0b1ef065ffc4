package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docstream/docstream-api/internal/middleware"
	"github.com/docstream/docstream-api/internal/models"
	appErrors "github.com/docstream/docstream-api/pkg/errors"
)

type authServiceMock struct {
	loginReq    models.LoginRequest
	loginErr    error
	logoutReq   models.LogoutRequest
	logoutCalls int
	registerErr error
	actor       *models.JWTClaims
}

func (m *authServiceMock) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	m.loginReq = req
	if m.loginErr != nil {
		return nil, m.loginErr
	}
	return &models.LoginResponse{
		Message: "Login successful",
		Tokens:  models.TokenPair{Access: "access", Refresh: "refresh"},
		User:    models.Profile{ID: "user-a", Name: "Ama"},
	}, nil
}

func (m *authServiceMock) Refresh(ctx context.Context, req models.RefreshTokenRequest) (*models.RefreshTokenResponse, error) {
	return &models.RefreshTokenResponse{Tokens: models.TokenPair{Access: "a2", Refresh: "r2"}}, nil
}

func (m *authServiceMock) Logout(ctx context.Context, claims *models.JWTClaims, req models.LogoutRequest) (*models.MessageResponse, error) {
	m.logoutCalls++
	m.logoutReq = req
	return &models.MessageResponse{Message: "Logout successful"}, nil
}

func (m *authServiceMock) Register(ctx context.Context, actor *models.JWTClaims, req models.RegisterRequest) (*models.RegisterResponse, error) {
	m.actor = actor
	if m.registerErr != nil {
		return nil, m.registerErr
	}
	return &models.RegisterResponse{Message: "Staff registered successfully", User: models.Profile{Name: req.Name}}, nil
}

func (m *authServiceMock) Profile(ctx context.Context, claims *models.JWTClaims) (*models.Profile, error) {
	return &models.Profile{ID: claims.UserID}, nil
}

func jsonRequest(method, path, body string) *http.Request {
	var reader *bytes.Buffer
	if body == "" {
		reader = &bytes.Buffer{}
	} else {
		reader = bytes.NewBufferString(body)
	}
	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]json.RawMessage {
	t.Helper()
	var envelope map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope
}

func TestAuthHandlerLogin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &authServiceMock{}
	handler := NewAuthHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodPost, "/auth/login", `{"staff_id":"S1","department":"Ops","email":"a@x.com","password":"pw"}`)
	c.Request.Header.Set("User-Agent", "tests")

	handler.Login(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "S1", svc.loginReq.StaffID)
	assert.Equal(t, "tests", svc.loginReq.UserAgent)

	var data models.LoginResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w)["data"], &data))
	assert.Equal(t, "Login successful", data.Message)
	assert.Equal(t, "access", data.Tokens.Access)
}

func TestAuthHandlerLoginErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewAuthHandler(&authServiceMock{loginErr: appErrors.ErrStaffInactive})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodPost, "/auth/login", `{"staff_id":"S1","department":"Ops","email":"a@x.com","password":"pw"}`)
	handler.Login(c)
	require.Equal(t, http.StatusForbidden, w.Code)

	var apiErr appErrors.Error
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w)["error"], &apiErr))
	assert.Equal(t, "STAFF_INACTIVE", apiErr.Code)
	assert.Equal(t, "Staff account is inactive", apiErr.Message)

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodPost, "/auth/login", `{"staff_id":`)
	handler.Login(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandlerLogoutWithoutBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &authServiceMock{}
	handler := NewAuthHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodPost, "/auth/logout", "")
	c.Set(middleware.ContextUserKey, &models.JWTClaims{UserID: "user-a"})

	handler.Logout(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, svc.logoutCalls)
	assert.Empty(t, svc.logoutReq.RefreshToken)
}

func TestAuthHandlerLogoutRequiresClaims(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &authServiceMock{}
	handler := NewAuthHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodPost, "/auth/logout", `{"refresh_token":"r"}`)

	handler.Logout(c)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Zero(t, svc.logoutCalls)
}

func TestAuthHandlerRegisterConflict(t *testing.T) {
	gin.SetMode(gin.TestMode)
	conflict := appErrors.WithDetails(appErrors.ErrConflict, appErrors.FieldError{Field: "email", Message: "Email already exists"})
	svc := &authServiceMock{registerErr: conflict}
	handler := NewAuthHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodPost, "/auth/register", `{"name":"Kofi","email":"a@x.com"}`)
	admin := &models.JWTClaims{UserID: "admin", IsAdmin: true}
	c.Set(middleware.ContextUserKey, admin)

	handler.Register(c)
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Same(t, admin, svc.actor)

	var apiErr appErrors.Error
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w)["error"], &apiErr))
	assert.Equal(t, []appErrors.FieldError{{Field: "email", Message: "Email already exists"}}, apiErr.Details)
}

func TestAuthHandlerRegisterCreated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewAuthHandler(&authServiceMock{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodPost, "/auth/register", `{"name":"Kofi"}`)
	c.Set(middleware.ContextUserKey, &models.JWTClaims{UserID: "admin", IsAdmin: true})

	handler.Register(c)
	assert.Equal(t, http.StatusCreated, w.Code)
}
