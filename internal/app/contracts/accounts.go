package contracts

import (
	"context"

	"telecheck-service/internal/app/models"
)

// AccountRepository looks up credentialed accounts for the directory
// authenticator. FindByEmail returns nil without error when no account
// matches.
type AccountRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.Account, error)
}
