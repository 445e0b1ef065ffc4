package models

import (
	"strings"
	"time"
)

// AdministratorRole is reported for users that have no staff profile.
const AdministratorRole = "Administrator"

// User represents a login account stored in the users table. StaffRef links it 1:1 to a staff row.
type User struct {
	ID           string     `db:"id" json:"id"`
	Email        string     `db:"email" json:"email"`
	PasswordHash string     `db:"password_hash" json:"-"`
	StaffRef     *string    `db:"staff_ref" json:"staff_ref,omitempty"`
	IsActive     bool       `db:"is_active" json:"is_active"`
	IsStaff      bool       `db:"is_staff" json:"is_staff"`
	IsAdmin      bool       `db:"is_admin" json:"is_admin"`
	IsSuperuser  bool       `db:"is_superuser" json:"is_superuser"`
	LastLogin    *time.Time `db:"last_login" json:"last_login,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

// CanAdminister reports whether the user may perform administrative operations.
func (u *User) CanAdminister() bool {
	return u != nil && (u.IsAdmin || u.IsStaff || u.IsSuperuser)
}

// Profile merges a user with its staff record into the public projection.
func (u *User) Profile(staff *Staff) Profile {
	p := Profile{
		ID:        u.ID,
		Email:     u.Email,
		IsActive:  u.IsActive,
		IsAdmin:   u.CanAdminister(),
		CreatedAt: u.CreatedAt,
	}
	if staff == nil {
		p.Name = u.Email
		if at := strings.Index(u.Email, "@"); at >= 0 {
			p.Name = u.Email[:at]
		}
		p.Role = AdministratorRole
		return p
	}

	staffID := staff.StaffID
	department := staff.Department
	status := string(staff.Status)
	p.StaffID = &staffID
	p.Name = staff.Name
	p.Email = staff.Email
	p.Department = &department
	p.Role = staff.Role
	p.Status = &status
	return p
}

// Profile is the merged staff and account view returned by the identity endpoints.
type Profile struct {
	ID         string    `json:"id"`
	StaffID    *string   `json:"staff_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Department *string   `json:"department"`
	Role       string    `json:"role"`
	Status     *string   `json:"status"`
	IsActive   bool      `json:"is_active"`
	IsAdmin    bool      `json:"is_admin"`
	CreatedAt  time.Time `json:"created_at"`
}
