package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docstream/docstream-api/internal/models"
	"github.com/docstream/docstream-api/internal/service"
	appErrors "github.com/docstream/docstream-api/pkg/errors"
	"github.com/docstream/docstream-api/pkg/response"
)

type stubValidator struct {
	claims *models.JWTClaims
	err    error
	seen   string
}

func (s *stubValidator) ValidateToken(ctx context.Context, token string) (*models.JWTClaims, error) {
	s.seen = token
	return s.claims, s.err
}

type recordingAudit struct {
	logs []*models.AuditLog
}

func (r *recordingAudit) CreateAuditLog(ctx context.Context, log *models.AuditLog) error {
	r.logs = append(r.logs, log)
	return nil
}

func init() {
	gin.SetMode(gin.TestMode)
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error *appErrors.Error `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	return body.Error.Code
}

func TestJWTRequiresBearer(t *testing.T) {
	validator := &stubValidator{claims: &models.JWTClaims{UserID: "u1"}}
	router := gin.New()
	router.GET("/me", JWT(validator), func(c *gin.Context) {
		claims, ok := Claims(c)
		require.True(t, ok)
		c.String(http.StatusOK, claims.UserID)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/me", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", errorCode(t, rec))

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Token abc")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer abc")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u1", rec.Body.String())
	assert.Equal(t, "abc", validator.seen)
}

func TestJWTRejectsRevokedSession(t *testing.T) {
	validator := &stubValidator{err: appErrors.Clone(appErrors.ErrUnauthorized, "session has been revoked")}
	router := gin.New()
	router.GET("/me", JWT(validator), func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer abc")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAdmin(t *testing.T) {
	for _, tc := range []struct {
		name   string
		claims *models.JWTClaims
		status int
	}{
		{name: "admin", claims: &models.JWTClaims{UserID: "a", IsAdmin: true}, status: http.StatusOK},
		{name: "member", claims: &models.JWTClaims{UserID: "m"}, status: http.StatusForbidden},
	} {
		t.Run(tc.name, func(t *testing.T) {
			router := gin.New()
			router.POST("/register", JWT(&stubValidator{claims: tc.claims}), RequireAdmin(), func(c *gin.Context) { c.Status(http.StatusOK) })
			req := httptest.NewRequest(http.MethodPost, "/register", nil)
			req.Header.Set("Authorization", "Bearer t")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, tc.status, rec.Code)
		})
	}
}

func TestAuditRecordsSuccessfulMutations(t *testing.T) {
	writer := &recordingAudit{}
	router := gin.New()
	group := router.Group("/staff", JWT(&stubValidator{claims: &models.JWTClaims{UserID: "admin"}}), Audit(writer, "staff", nil))
	group.GET("/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	group.DELETE("/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	group.PATCH("/:id", func(c *gin.Context) { c.Status(http.StatusBadRequest) })

	for _, method := range []string{http.MethodGet, http.MethodDelete, http.MethodPatch} {
		req := httptest.NewRequest(method, "/staff/s-1", nil)
		req.Header.Set("Authorization", "Bearer t")
		router.ServeHTTP(httptest.NewRecorder(), req)
	}

	require.Len(t, writer.logs, 1)
	entry := writer.logs[0]
	assert.Equal(t, models.AuditActionDelete, entry.Action)
	assert.Equal(t, "staff", entry.Resource)
	require.NotNil(t, entry.ResourceID)
	assert.Equal(t, "s-1", *entry.ResourceID)
	require.NotNil(t, entry.UserID)
	assert.Equal(t, "admin", *entry.UserID)
}

func TestAuditRecordsCreatedRowID(t *testing.T) {
	writer := &recordingAudit{}
	router := gin.New()
	group := router.Group("/facility", JWT(&stubValidator{claims: &models.JWTClaims{UserID: "admin"}}), Audit(writer, "facility", nil))
	group.POST("", func(c *gin.Context) {
		response.Created(c, &models.Facility{ID: "f-42", Name: "Depot"})
	})
	group.POST("/bulk", func(c *gin.Context) {
		response.Created(c, []models.Facility{{ID: "f-1"}})
	})

	for _, path := range []string{"/facility", "/facility/bulk"} {
		req := httptest.NewRequest(http.MethodPost, path, nil)
		req.Header.Set("Authorization", "Bearer t")
		router.ServeHTTP(httptest.NewRecorder(), req)
	}

	require.Len(t, writer.logs, 2)
	assert.Equal(t, models.AuditActionCreate, writer.logs[0].Action)
	require.NotNil(t, writer.logs[0].ResourceID)
	assert.Equal(t, "f-42", *writer.logs[0].ResourceID)
	assert.Nil(t, writer.logs[1].ResourceID)
}

func TestMetricsUsesRouteTemplate(t *testing.T) {
	metrics := service.NewMetricsService()
	router := gin.New()
	router.Use(Metrics(metrics))
	router.GET("/staff/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/staff/1", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, uint64(2), metrics.Snapshot().RequestsTotal)
}
