package models

import "time"

// InventoryChecklist is a fuel-station stock reading.
type InventoryChecklist struct {
	ID                  string    `db:"id" json:"id"`
	RetailOutlet        string    `db:"retail_outlet" json:"retail_outlet"`
	RetailOutletAddress string    `db:"retail_outlet_address" json:"retail_outlet_address"`
	PMSOpening          int       `db:"pms_opening" json:"pms_opening"`
	ProductReceived     int       `db:"product_received" json:"product_received"`
	PriceRange          float64   `db:"price_range" json:"price_range"`
	PumpDispensingLevel int       `db:"pump_dispensing_level" json:"pump_dispensing_level"`
	CreatedBy           string    `db:"created_by" json:"created_by"`
	CreatedAt           time.Time `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time `db:"updated_at" json:"updated_at"`
}

// ResourceID identifies the row in audit entries.
func (r *InventoryChecklist) ResourceID() string { return r.ID }

func (r *InventoryChecklist) Owner() string { return r.CreatedBy }
