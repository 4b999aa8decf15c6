package contracts

import "context"

// Principal is the validated account material an authenticator returns.
// Role travels as a free-form string here because it may come straight off
// the wire; the session store validates it against the closed enumeration
// and fails closed on anything unrecognized. Permissions may be nil when
// the collaborator does not supply them, in which case the session store
// expands the role's default permission set.
type Principal struct {
	ID             string
	Email          string
	Name           string
	Role           string
	Permissions    []string
	Organization   string
	LicenseNumber  string
	Specialization string
}

// AuthOutcome pairs a validated principal with its bearer token. Token may
// be empty when the collaborator does not issue one; the session store
// synthesizes a local token in that case.
type AuthOutcome struct {
	Principal Principal
	Token     string
}

// Authenticator is the swappable credential-check step behind login. Every
// failure mode -- bad credentials, unknown email, inactive account, network
// or service error -- is returned as an error and treated uniformly as an
// authentication failure by the session store.
type Authenticator interface {
	Authenticate(ctx context.Context, email, secret string) (*AuthOutcome, error)
}
