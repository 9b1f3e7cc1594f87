package model

import (
	"time"

	"github.com/google/uuid"
)

// AuditEntry records one mutation in the "auditoria" collection.
type AuditEntry struct {
	ID         uuid.UUID `json:"id"`
	Action     string    `json:"action"`
	EntityType string    `json:"entity_type"`
	EntityID   string    `json:"entity_id"`
	Actor      string    `json:"actor,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
