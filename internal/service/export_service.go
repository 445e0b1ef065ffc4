package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/docstream/docstream-api/internal/models"
	appErrors "github.com/docstream/docstream-api/pkg/errors"
	"github.com/docstream/docstream-api/pkg/export"
)

// Export formats supported by the staff directory download.
const (
	ExportFormatCSV = "csv"
	ExportFormatPDF = "pdf"
)

type staffDirectory interface {
	ListAll(ctx context.Context) ([]models.Staff, error)
}

type tableRenderer interface {
	Render(table export.Table) ([]byte, error)
	ContentType() string
	Extension() string
}

// ExportResult is a rendered file ready to stream.
type ExportResult struct {
	Filename    string
	ContentType string
	Body        []byte
}

// ExportService renders the staff directory into downloadable files.
type ExportService struct {
	staff     staffDirectory
	renderers map[string]tableRenderer
	logger    *zap.Logger
	now       func() time.Time
}

// NewExportService constructs an ExportService. Nil renderers fall back to the package defaults.
func NewExportService(staff staffDirectory, logger *zap.Logger, csv, pdf tableRenderer) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &ExportService{
		staff:     staff,
		renderers: map[string]tableRenderer{ExportFormatCSV: csv, ExportFormatPDF: pdf},
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// ExportStaff renders every staff member in the requested format. An empty format means CSV.
func (s *ExportService) ExportStaff(ctx context.Context, actor *models.JWTClaims, format string) (*ExportResult, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = ExportFormatCSV
	}
	renderer, ok := s.renderers[format]
	if !ok {
		return nil, appErrors.WithDetails(appErrors.Clone(appErrors.ErrValidation, "unsupported export format"),
			appErrors.FieldError{Field: "format", Message: "Must be one of: csv, pdf."})
	}

	staff, err := s.staff.ListAll(ctx)
	if err != nil {
		return nil, storeError(err, "staff", "export")
	}

	body, err := renderer.Render(staffTable(staff))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}
	s.logger.Info("staff directory exported", zap.String("format", format), zap.Int("rows", len(staff)))

	return &ExportResult{
		Filename:    s.buildFilename("staff directory", renderer.Extension()),
		ContentType: renderer.ContentType(),
		Body:        body,
	}, nil
}

func staffTable(staff []models.Staff) export.Table {
	table := export.Table{
		Title: "Staff Directory",
		Columns: []export.Column{
			{Key: "staff_id", Header: "Staff ID"},
			{Key: "name", Header: "Name"},
			{Key: "department", Header: "Department"},
			{Key: "role", Header: "Role"},
			{Key: "email", Header: "Email"},
			{Key: "status", Header: "Status"},
		},
		Rows: make([]map[string]string, 0, len(staff)),
	}
	for _, member := range staff {
		table.Rows = append(table.Rows, map[string]string{
			"staff_id":   member.StaffID,
			"name":       member.Name,
			"department": member.Department,
			"role":       member.Role,
			"email":      member.Email,
			"status":     string(member.Status),
		})
	}
	return table
}

func (s *ExportService) buildFilename(subject, ext string) string {
	return fmt.Sprintf("%s_%s.%s", sanitizeFilename(strings.ToLower(subject)), s.now().Format("20060102"), ext)
}

func sanitizeFilename(raw string) string {
	if raw == "" {
		return "na"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "-", "\\", "-", ":", "-", "..", ".", "__", "_")
	result := replacer.Replace(raw)
	if len(result) > 100 {
		return result[:100]
	}
	return result
}
