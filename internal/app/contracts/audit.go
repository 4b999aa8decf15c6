package contracts

import (
	"context"

	"telecheck-service/internal/app/models"
)

// AuditPublisher delivers auth audit events to the compliance queue.
// Publishing is best-effort; a failed publish never fails the operation
// that produced the event.
type AuditPublisher interface {
	Publish(ctx context.Context, event *models.AuthEvent) error
}
