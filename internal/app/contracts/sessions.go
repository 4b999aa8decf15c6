package contracts

import (
	"context"

	"telecheck-service/internal/app/models"
)

// SessionUsecase is the single source of truth for who is logged in within
// one session scope. Authentication failures resolve to a false outcome,
// never an error; the loading flag is reset before every operation returns.
type SessionUsecase interface {
	Restore(ctx context.Context) models.Session
	Login(ctx context.Context, email, secret string, claimedRole models.Role) bool
	Logout(ctx context.Context)
	SwitchRole(ctx context.Context, target models.Role) bool
	HasPermission(token string) bool
	HasRole(role models.Role) bool
	Snapshot() models.Session
}

// SessionFactory builds a session store bound to one scope. Each browser
// session gets its own store; the delivery layer resolves the scope from
// the request's bearer token.
type SessionFactory interface {
	ForScope(scope string) SessionUsecase
}
