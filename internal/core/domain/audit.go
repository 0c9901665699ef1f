package domain

import "time"

// AuditLog records one field change on a project. Entries are immutable
// once appended to a project's trail and the trail only grows.
type AuditLog struct {
	AuditID   string    `json:"auditID"` // Primary Key (UUID)
	Timestamp time.Time `json:"timestamp"`
	User      string    `json:"user"` // acting user's display name
	Field     string    `json:"field"`
	OldValue  string    `json:"oldValue"`
	NewValue  string    `json:"newValue"`
	Stage     Status    `json:"stage"` // workflow status at the moment of the change
}
