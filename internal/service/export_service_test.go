package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/docstream/docstream-api/internal/models"
	appErrors "github.com/docstream/docstream-api/pkg/errors"
)

type staffDirectoryStub struct {
	staff []models.Staff
	err   error
}

func (s staffDirectoryStub) ListAll(ctx context.Context) ([]models.Staff, error) {
	return s.staff, s.err
}

func newExportServiceForTest(dir staffDirectoryStub) *ExportService {
	svc := NewExportService(dir, zap.NewNop(), nil, nil)
	svc.now = func() time.Time { return time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC) }
	return svc
}

var exportAdmin = &models.JWTClaims{UserID: "admin", IsAdmin: true}

func TestExportServiceStaffCSV(t *testing.T) {
	svc := newExportServiceForTest(staffDirectoryStub{staff: []models.Staff{
		{StaffID: "S1", Name: "Ama Mensah", Department: "Ops", Role: "Clerk", Email: "a@x.com", Status: models.StaffStatusActive},
	}})

	result, err := svc.ExportStaff(context.Background(), exportAdmin, "")
	require.NoError(t, err)
	assert.Equal(t, "staff_directory_20240501.csv", result.Filename)
	assert.Equal(t, "text/csv; charset=utf-8", result.ContentType)
	lines := strings.Split(strings.TrimSpace(string(result.Body)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Staff ID,Name,Department,Role,Email,Status", lines[0])
	assert.Equal(t, "S1,Ama Mensah,Ops,Clerk,a@x.com,active", lines[1])
}

func TestExportServiceStaffPDF(t *testing.T) {
	svc := newExportServiceForTest(staffDirectoryStub{staff: []models.Staff{{StaffID: "S1", Name: "Ama"}}})

	result, err := svc.ExportStaff(context.Background(), exportAdmin, "PDF")
	require.NoError(t, err)
	assert.Equal(t, "staff_directory_20240501.pdf", result.Filename)
	assert.Equal(t, "application/pdf", result.ContentType)
	assert.True(t, strings.HasPrefix(string(result.Body), "%PDF-"))
}

func TestExportServiceRejects(t *testing.T) {
	svc := newExportServiceForTest(staffDirectoryStub{})

	_, err := svc.ExportStaff(context.Background(), &models.JWTClaims{UserID: "u"}, "csv")
	assert.Equal(t, appErrors.ErrForbidden.Code, appErrors.FromError(err).Code)

	_, err = svc.ExportStaff(context.Background(), exportAdmin, "xlsx")
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	require.Len(t, appErr.Details, 1)
	assert.Equal(t, "format", appErr.Details[0].Field)

	svc = newExportServiceForTest(staffDirectoryStub{err: errors.New("db down")})
	_, err = svc.ExportStaff(context.Background(), exportAdmin, "csv")
	assert.Equal(t, appErrors.ErrInternal.Code, appErrors.FromError(err).Code)
}
