package models

import "time"

// StaffStatus enumerates employment states.
type StaffStatus string

const (
	StaffStatusActive   StaffStatus = "active"
	StaffStatusInactive StaffStatus = "inactive"
)

// Staff is an employee record. Login credentials live on the linked User.
type Staff struct {
	ID         string      `db:"id" json:"id"`
	StaffID    string      `db:"staff_id" json:"staff_id"`
	Name       string      `db:"name" json:"name"`
	Department string      `db:"department" json:"department"`
	Role       string      `db:"role" json:"role"`
	Email      string      `db:"email" json:"email"`
	Status     StaffStatus `db:"status" json:"status"`
	CreatedAt  time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time   `db:"updated_at" json:"updated_at"`
}

// ResourceID identifies the row in audit entries.
func (s *Staff) ResourceID() string { return s.ID }

// IsActive reports whether the staff member may sign in.
func (s *Staff) IsActive() bool {
	return s != nil && s.Status == StaffStatusActive
}

// StaffFilter captures list criteria for the staff directory.
type StaffFilter struct {
	Department string
	Status     StaffStatus
	Search     string
	Page       int
	PageSize   int
}
