package models

import "time"

// ActivityLog is a free-text journal entry. CreatedBy may point at a staff row that no longer exists.
type ActivityLog struct {
	ID        string    `db:"id" json:"id"`
	Activity  string    `db:"activity" json:"activity"`
	CreatedBy string    `db:"created_by" json:"created_by"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// ResourceID identifies the row in audit entries.
func (r *ActivityLog) ResourceID() string { return r.ID }

func (r *ActivityLog) Owner() string { return r.CreatedBy }
