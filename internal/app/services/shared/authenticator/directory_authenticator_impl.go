package authenticator

import (
	"context"

	"telecheck-service/internal/app/contracts"
	"telecheck-service/internal/pkg/exceptions"
	"telecheck-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// directoryAuthenticator checks credentials against the account directory.
// Password hashes are bcrypt. Inactive accounts fail the same way bad
// credentials do.
type directoryAuthenticator struct {
	accounts contracts.AccountRepository
	log      *zap.Logger
}

func NewDirectoryAuthenticator(accounts contracts.AccountRepository, logger *zap.Logger) contracts.Authenticator {
	return &directoryAuthenticator{accounts: accounts, log: logger}
}

func (a *directoryAuthenticator) Authenticate(ctx context.Context, email, secret string) (*contracts.AuthOutcome, error) {
	account, err := a.accounts.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}
	if !account.Active {
		a.log.Info("directoryAuthenticator.Authenticate inactive account rejected",
			zap.String("email", email),
		)
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}
	if !utils.CheckPasswordHash(secret, account.Password) {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	return &contracts.AuthOutcome{
		Principal: contracts.Principal{
			ID:             account.ID,
			Email:          account.Email,
			Name:           account.Name,
			Role:           account.Role,
			Organization:   account.Organization,
			LicenseNumber:  account.LicenseNumber,
			Specialization: account.Specialization,
		},
	}, nil
}
