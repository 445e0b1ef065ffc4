package dto

import (
	"strings"

	"github.com/docstream/docstream-api/internal/models"
)

// StaffPayload is the full staff representation accepted by POST and PUT.
type StaffPayload struct {
	StaffID    string             `json:"staff_id" validate:"required,notblank,max=255"`
	Name       string             `json:"name" validate:"required,notblank,max=255"`
	Department string             `json:"department" validate:"required,notblank,max=255"`
	Role       string             `json:"role" validate:"required,notblank,max=30"`
	Email      string             `json:"email" validate:"required,notblank,email,max=255"`
	Status     models.StaffStatus `json:"status" validate:"omitempty,oneof=active inactive"`
}

// Apply copies the payload onto s. An empty status keeps the current one, or active for new rows.
func (p StaffPayload) Apply(s *models.Staff) {
	s.StaffID = strings.TrimSpace(p.StaffID)
	s.Name = strings.TrimSpace(p.Name)
	s.Department = strings.TrimSpace(p.Department)
	s.Role = strings.TrimSpace(p.Role)
	s.Email = strings.TrimSpace(p.Email)
	switch {
	case p.Status != "":
		s.Status = p.Status
	case s.Status == "":
		s.Status = models.StaffStatusActive
	}
}

// StaffPatch carries the fields present in a PATCH body.
type StaffPatch struct {
	StaffID    *string             `json:"staff_id" validate:"omitnil,notblank,max=255"`
	Name       *string             `json:"name" validate:"omitnil,notblank,max=255"`
	Department *string             `json:"department" validate:"omitnil,notblank,max=255"`
	Role       *string             `json:"role" validate:"omitnil,notblank,max=30"`
	Email      *string             `json:"email" validate:"omitnil,email,max=255"`
	Status     *models.StaffStatus `json:"status" validate:"omitnil,oneof=active inactive"`
}

// Apply copies the present fields onto s.
func (p StaffPatch) Apply(s *models.Staff) {
	setTrimmed(&s.StaffID, p.StaffID)
	setTrimmed(&s.Name, p.Name)
	setTrimmed(&s.Department, p.Department)
	setTrimmed(&s.Role, p.Role)
	setTrimmed(&s.Email, p.Email)
	if p.Status != nil {
		s.Status = *p.Status
	}
}

// StaffExportQuery selects the export format.
type StaffExportQuery struct {
	Format string `form:"format" validate:"omitempty,oneof=csv pdf"`
}

func setTrimmed(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}
