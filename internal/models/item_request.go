package models

import (
	"time"

	"github.com/jmoiron/sqlx/types"
)

// ItemRequest is a staff request for supplies. Items holds an arbitrary JSON document.
type ItemRequest struct {
	ID        string         `db:"id" json:"id"`
	Items     types.JSONText `db:"items" json:"items"`
	CreatedBy string         `db:"created_by" json:"created_by"`
	CreatedAt time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt time.Time      `db:"updated_at" json:"updated_at"`
}

// ResourceID identifies the row in audit entries.
func (r *ItemRequest) ResourceID() string { return r.ID }

func (r *ItemRequest) Owner() string { return r.CreatedBy }
