package models

// DefaultTakeOver is stored when a facility is created without a take-over note.
const DefaultTakeOver = "Nill"

// Facility is a company site.
type Facility struct {
	ID       string  `db:"id" json:"id"`
	Name     string  `db:"name" json:"name"`
	Address  string  `db:"address" json:"address"`
	SerialNo string  `db:"serial_no" json:"serial_no"`
	TakeOver *string `db:"take_over" json:"take_over"`
}

// ResourceID identifies the row in audit entries.
func (f *Facility) ResourceID() string { return f.ID }

// FacilityFilter narrows facility listings.
type FacilityFilter struct {
	Search   string
	Page     int
	PageSize int
}
