package models

import "time"

// ApprovalStage names one of the three sign-offs a vehicle request needs.
type ApprovalStage string

const (
	ApprovalDivisionHead     ApprovalStage = "division_head"
	ApprovalCorporateService ApprovalStage = "corporate_service"
	ApprovalLogisticsOfficer ApprovalStage = "logistics_officer"
)

// Column returns the vehicle_requests column backing the stage.
func (s ApprovalStage) Column() (string, bool) {
	switch s {
	case ApprovalDivisionHead:
		return "division_head_approval", true
	case ApprovalCorporateService:
		return "corporate_service_approval", true
	case ApprovalLogisticsOfficer:
		return "logistics_officer_approval", true
	default:
		return "", false
	}
}

// VehicleRequest books a vehicle for a trip.
type VehicleRequest struct {
	ID                       string    `db:"id" json:"id"`
	Name                     string    `db:"name" json:"name"`
	Division                 string    `db:"division" json:"division"`
	VehicleType              string    `db:"vehicle_type" json:"vehicle_type"`
	Purpose                  string    `db:"purpose" json:"purpose"`
	Destination              string    `db:"destination" json:"destination"`
	DepartureDate            Date      `db:"departure_date" json:"departure_date"`
	ReturnDate               Date      `db:"return_date" json:"return_date"`
	DurationOfTrip           int       `db:"duration_of_trip" json:"duration_of_trip"`
	DivisionHeadApproval     bool      `db:"division_head_approval" json:"division_head_approval"`
	CorporateServiceApproval bool      `db:"corporate_service_approval" json:"corporate_service_approval"`
	LogisticsOfficerApproval bool      `db:"logistics_officer_approval" json:"logistics_officer_approval"`
	CreatedBy                string    `db:"created_by" json:"created_by"`
	CreatedAt                time.Time `db:"created_at" json:"created_at"`
	UpdatedAt                time.Time `db:"updated_at" json:"updated_at"`
}

// ResourceID identifies the row in audit entries.
func (r *VehicleRequest) ResourceID() string { return r.ID }

func (r *VehicleRequest) Owner() string { return r.CreatedBy }

// FullyApproved reports whether every stage has signed off.
func (r *VehicleRequest) FullyApproved() bool {
	return r.DivisionHeadApproval && r.CorporateServiceApproval && r.LogisticsOfficerApproval
}

// SetApproval flips the flag for stage.
func (r *VehicleRequest) SetApproval(stage ApprovalStage, approved bool) bool {
	switch stage {
	case ApprovalDivisionHead:
		r.DivisionHeadApproval = approved
	case ApprovalCorporateService:
		r.CorporateServiceApproval = approved
	case ApprovalLogisticsOfficer:
		r.LogisticsOfficerApproval = approved
	default:
		return false
	}
	return true
}
