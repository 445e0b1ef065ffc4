package models

import "time"

const (
	AuditActionLogin    = "LOGIN"
	AuditActionLogout   = "LOGOUT"
	AuditActionRefresh  = "REFRESH"
	AuditActionRegister = "REGISTER"
)

// AuditLog represents an audit trail record.
type AuditLog struct {
	ID         string    `db:"id" json:"id"`
	UserID     *string   `db:"user_id" json:"user_id,omitempty"`
	Action     string    `db:"action" json:"action"`
	Resource   string    `db:"resource" json:"resource"`
	ResourceID *string   `db:"resource_id" json:"resource_id,omitempty"`
	NewValues  []byte    `db:"new_values" json:"new_values,omitempty"`
	IPAddress  string    `db:"ip_address" json:"ip_address"`
	UserAgent  string    `db:"user_agent" json:"user_agent"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

const (
	AuditActionCreate = "CREATE"
	AuditActionUpdate = "UPDATE"
	AuditActionDelete = "DELETE"
)

// AuditActionForMethod maps a mutating HTTP method onto an audit action.
func AuditActionForMethod(method string) (string, bool) {
	switch method {
	case "POST":
		return AuditActionCreate, true
	case "PUT", "PATCH":
		return AuditActionUpdate, true
	case "DELETE":
		return AuditActionDelete, true
	default:
		return "", false
	}
}
