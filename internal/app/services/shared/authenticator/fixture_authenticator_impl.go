package authenticator

import (
	"context"

	"telecheck-service/internal/app/contracts"
	"telecheck-service/internal/pkg/exceptions"
	"telecheck-service/internal/pkg/fixtures"

	"go.uber.org/zap"
)

// fixtureAuthenticator validates credentials against the fixed directory of
// sample identities. It is the self-contained stand-in for the network
// authenticator: same contract, no I/O.
type fixtureAuthenticator struct {
	log *zap.Logger
}

func NewFixtureAuthenticator(logger *zap.Logger) contracts.Authenticator {
	return &fixtureAuthenticator{log: logger}
}

func (a *fixtureAuthenticator) Authenticate(ctx context.Context, email, secret string) (*contracts.AuthOutcome, error) {
	cred, ok := fixtures.SampleCredentialByEmail(email)
	if !ok || cred.Password != secret {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}
	if !cred.Active {
		a.log.Info("fixtureAuthenticator.Authenticate rejected inactive account",
			zap.String("email", email),
		)
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	identity, ok := fixtures.IdentityByEmail(email)
	if !ok {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	return &contracts.AuthOutcome{
		Principal: contracts.Principal{
			ID:             identity.ID,
			Email:          identity.Email,
			Name:           identity.Name,
			Role:           identity.Role.String(),
			Permissions:    identity.Permissions,
			Organization:   identity.Organization,
			LicenseNumber:  identity.LicenseNumber,
			Specialization: identity.Specialization,
		},
	}, nil
}
