package dto

import (
	"strings"

	"github.com/jmoiron/sqlx/types"

	"github.com/docstream/docstream-api/internal/models"
	"github.com/docstream/docstream-api/pkg/nullable"
)

// ItemRequestPayload creates or replaces an item request.
type ItemRequestPayload struct {
	Items     types.JSONText `json:"items" validate:"required" swaggertype:"object"`
	CreatedBy string         `json:"created_by" validate:"omitempty,uuid"`
}

// Apply copies the payload onto r. Ownership is resolved by the caller.
func (p ItemRequestPayload) Apply(r *models.ItemRequest) {
	r.Items = p.Items
}

// ItemRequestPatch carries the fields present in a PATCH body.
type ItemRequestPatch struct {
	Items     *types.JSONText `json:"items" swaggertype:"object"`
	CreatedBy *string         `json:"created_by" validate:"omitnil,uuid"`
}

// Apply copies the present fields onto r.
func (p ItemRequestPatch) Apply(r *models.ItemRequest) {
	if p.Items != nil {
		r.Items = *p.Items
	}
}

// VehicleRequestPayload creates or replaces a vehicle request.
type VehicleRequestPayload struct {
	Name                     string       `json:"name" validate:"required,notblank,max=255"`
	Division                 string       `json:"division" validate:"required,notblank,max=255"`
	VehicleType              string       `json:"vehicle_type" validate:"required,notblank,max=255"`
	Purpose                  string       `json:"purpose" validate:"required,notblank,max=255"`
	Destination              string       `json:"destination" validate:"required,notblank,max=255"`
	DepartureDate            *models.Date `json:"departure_date" validate:"required" swaggertype:"string" example:"2024-05-01"`
	ReturnDate               *models.Date `json:"return_date" validate:"required" swaggertype:"string" example:"2024-05-03"`
	DurationOfTrip           *int         `json:"duration_of_trip" validate:"required,gte=0"`
	DivisionHeadApproval     *bool        `json:"division_head_approval"`
	CorporateServiceApproval *bool        `json:"corporate_service_approval"`
	LogisticsOfficerApproval *bool        `json:"logistics_officer_approval"`
	CreatedBy                string       `json:"created_by" validate:"omitempty,uuid"`
}

// Apply copies the payload onto r. Absent approval flags keep their current value.
func (p VehicleRequestPayload) Apply(r *models.VehicleRequest) {
	r.Name = strings.TrimSpace(p.Name)
	r.Division = strings.TrimSpace(p.Division)
	r.VehicleType = strings.TrimSpace(p.VehicleType)
	r.Purpose = strings.TrimSpace(p.Purpose)
	r.Destination = strings.TrimSpace(p.Destination)
	if p.DepartureDate != nil {
		r.DepartureDate = *p.DepartureDate
	}
	if p.ReturnDate != nil {
		r.ReturnDate = *p.ReturnDate
	}
	if p.DurationOfTrip != nil {
		r.DurationOfTrip = *p.DurationOfTrip
	}
	setBool(&r.DivisionHeadApproval, p.DivisionHeadApproval)
	setBool(&r.CorporateServiceApproval, p.CorporateServiceApproval)
	setBool(&r.LogisticsOfficerApproval, p.LogisticsOfficerApproval)
}

// VehicleRequestPatch carries the fields present in a PATCH body.
type VehicleRequestPatch struct {
	Name                     *string      `json:"name" validate:"omitnil,notblank,max=255"`
	Division                 *string      `json:"division" validate:"omitnil,notblank,max=255"`
	VehicleType              *string      `json:"vehicle_type" validate:"omitnil,notblank,max=255"`
	Purpose                  *string      `json:"purpose" validate:"omitnil,notblank,max=255"`
	Destination              *string      `json:"destination" validate:"omitnil,notblank,max=255"`
	DepartureDate            *models.Date `json:"departure_date" swaggertype:"string"`
	ReturnDate               *models.Date `json:"return_date" swaggertype:"string"`
	DurationOfTrip           *int         `json:"duration_of_trip" validate:"omitnil,gte=0"`
	DivisionHeadApproval     *bool        `json:"division_head_approval"`
	CorporateServiceApproval *bool        `json:"corporate_service_approval"`
	LogisticsOfficerApproval *bool        `json:"logistics_officer_approval"`
	CreatedBy                *string      `json:"created_by" validate:"omitnil,uuid"`
}

// Apply copies the present fields onto r.
func (p VehicleRequestPatch) Apply(r *models.VehicleRequest) {
	setTrimmed(&r.Name, p.Name)
	setTrimmed(&r.Division, p.Division)
	setTrimmed(&r.VehicleType, p.VehicleType)
	setTrimmed(&r.Purpose, p.Purpose)
	setTrimmed(&r.Destination, p.Destination)
	if p.DepartureDate != nil {
		r.DepartureDate = *p.DepartureDate
	}
	if p.ReturnDate != nil {
		r.ReturnDate = *p.ReturnDate
	}
	if p.DurationOfTrip != nil {
		r.DurationOfTrip = *p.DurationOfTrip
	}
	setBool(&r.DivisionHeadApproval, p.DivisionHeadApproval)
	setBool(&r.CorporateServiceApproval, p.CorporateServiceApproval)
	setBool(&r.LogisticsOfficerApproval, p.LogisticsOfficerApproval)
}

// ApprovalRequest records one stage sign-off on a vehicle request.
type ApprovalRequest struct {
	Stage    models.ApprovalStage `json:"stage" validate:"required,oneof=division_head corporate_service logistics_officer"`
	Approved *bool                `json:"approved" validate:"required"`
}

// InventoryChecklistPayload creates or replaces a checklist.
type InventoryChecklistPayload struct {
	RetailOutlet        string   `json:"retail_outlet" validate:"required,notblank,max=255"`
	RetailOutletAddress string   `json:"retail_outlet_address" validate:"required,notblank"`
	PMSOpening          *int     `json:"pms_opening" validate:"required,gte=0"`
	ProductReceived     *int     `json:"product_received" validate:"required,gte=0"`
	PriceRange          *float64 `json:"price_range" validate:"required,gte=0"`
	PumpDispensingLevel *int     `json:"pump_dispensing_level" validate:"required,gte=0"`
	CreatedBy           string   `json:"created_by" validate:"omitempty,uuid"`
}

// Apply copies the payload onto r.
func (p InventoryChecklistPayload) Apply(r *models.InventoryChecklist) {
	r.RetailOutlet = strings.TrimSpace(p.RetailOutlet)
	r.RetailOutletAddress = strings.TrimSpace(p.RetailOutletAddress)
	setInt(&r.PMSOpening, p.PMSOpening)
	setInt(&r.ProductReceived, p.ProductReceived)
	if p.PriceRange != nil {
		r.PriceRange = *p.PriceRange
	}
	setInt(&r.PumpDispensingLevel, p.PumpDispensingLevel)
}

// InventoryChecklistPatch carries the fields present in a PATCH body.
type InventoryChecklistPatch struct {
	RetailOutlet        *string  `json:"retail_outlet" validate:"omitnil,notblank,max=255"`
	RetailOutletAddress *string  `json:"retail_outlet_address" validate:"omitnil,notblank"`
	PMSOpening          *int     `json:"pms_opening" validate:"omitnil,gte=0"`
	ProductReceived     *int     `json:"product_received" validate:"omitnil,gte=0"`
	PriceRange          *float64 `json:"price_range" validate:"omitnil,gte=0"`
	PumpDispensingLevel *int     `json:"pump_dispensing_level" validate:"omitnil,gte=0"`
	CreatedBy           *string  `json:"created_by" validate:"omitnil,uuid"`
}

// Apply copies the present fields onto r.
func (p InventoryChecklistPatch) Apply(r *models.InventoryChecklist) {
	setTrimmed(&r.RetailOutlet, p.RetailOutlet)
	setTrimmed(&r.RetailOutletAddress, p.RetailOutletAddress)
	setInt(&r.PMSOpening, p.PMSOpening)
	setInt(&r.ProductReceived, p.ProductReceived)
	if p.PriceRange != nil {
		r.PriceRange = *p.PriceRange
	}
	setInt(&r.PumpDispensingLevel, p.PumpDispensingLevel)
}

// ActivityLogPayload creates or replaces an activity log entry.
type ActivityLogPayload struct {
	Activity  string `json:"activity" validate:"required,notblank"`
	CreatedBy string `json:"created_by" validate:"omitempty,uuid"`
}

// Apply copies the payload onto r.
func (p ActivityLogPayload) Apply(r *models.ActivityLog) {
	r.Activity = strings.TrimSpace(p.Activity)
}

// ActivityLogPatch carries the fields present in a PATCH body.
type ActivityLogPatch struct {
	Activity  *string `json:"activity" validate:"omitnil,notblank"`
	CreatedBy *string `json:"created_by" validate:"omitnil,uuid"`
}

// Apply copies the present fields onto r.
func (p ActivityLogPatch) Apply(r *models.ActivityLog) {
	setTrimmed(&r.Activity, p.Activity)
}

// FacilityPayload creates or replaces a facility.
type FacilityPayload struct {
	Name     string          `json:"name" validate:"required,notblank,max=255"`
	Address  string          `json:"address" validate:"required,notblank"`
	SerialNo string          `json:"serial_no" validate:"required,notblank,max=255"`
	TakeOver nullable.String `json:"take_over" swaggertype:"string" validate:"omitempty,max=255"`
}

// Apply copies the payload onto f. An absent take_over keeps the current value; null clears it.
func (p FacilityPayload) Apply(f *models.Facility) {
	f.Name = strings.TrimSpace(p.Name)
	f.Address = strings.TrimSpace(p.Address)
	f.SerialNo = strings.TrimSpace(p.SerialNo)
	p.TakeOver.ApplyTo(&f.TakeOver)
}

// FacilityPatch carries the fields present in a PATCH body.
type FacilityPatch struct {
	Name     *string         `json:"name" validate:"omitnil,notblank,max=255"`
	Address  *string         `json:"address" validate:"omitnil,notblank"`
	SerialNo *string         `json:"serial_no" validate:"omitnil,notblank,max=255"`
	TakeOver nullable.String `json:"take_over" swaggertype:"string" validate:"omitempty,max=255"`
}

// Apply copies the present fields onto f.
func (p FacilityPatch) Apply(f *models.Facility) {
	setTrimmed(&f.Name, p.Name)
	setTrimmed(&f.Address, p.Address)
	setTrimmed(&f.SerialNo, p.SerialNo)
	p.TakeOver.ApplyTo(&f.TakeOver)
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}
