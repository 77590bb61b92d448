package models

import (
	"time"

	"github.com/google/uuid"
)

// JSONB represents PostgreSQL JSONB type
type JSONB map[string]interface{}

// AuditLog represents an audit log entry for tracking state transitions and
// approval decisions. Writes are best effort; a logging failure never fails
// the triggering operation.
type AuditLog struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	HotelID   uuid.UUID  `json:"hotel_id" db:"hotel_id"`
	TableName string     `json:"table_name" db:"table_name"`
	RecordID  string     `json:"record_id" db:"record_id"`
	Action    string     `json:"action" db:"action"`
	NewValues JSONB      `json:"new_values" db:"new_values"`
	OldValues JSONB      `json:"old_values" db:"old_values"`
	ChangedBy *uuid.UUID `json:"changed_by" db:"changed_by"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}

// Action constants for audit logs
const (
	ActionInsert  = "INSERT"
	ActionUpdate  = "UPDATE"
	ActionApprove = "APPROVE"
	ActionReject  = "REJECT"
	ActionDeliver = "DELIVER"
)
