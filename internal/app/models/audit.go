package models

import "time"

// AuthEvent is the audit record published for every session-mutating
// operation and for restore self-repairs.
type AuthEvent struct {
	ID         string    `json:"id"`
	Event      string    `json:"event"`
	Email      string    `json:"email,omitempty"`
	IdentityID string    `json:"identity_id,omitempty"`
	Role       Role      `json:"role,omitempty"`
	Reason     string    `json:"reason,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
