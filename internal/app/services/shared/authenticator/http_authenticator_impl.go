package authenticator

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"telecheck-service/internal/app/contracts"
	"telecheck-service/internal/pkg/constvars"
	"telecheck-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type httpLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type httpLoginResponse struct {
	Token string `json:"token"`
	User  *struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Role  string `json:"role"`
	} `json:"user"`
}

// httpAuthenticator delegates the credential check to the external
// authentication service over HTTP. A non-2xx status, a transport error, or
// a payload missing token or user are all the same authentication failure.
type httpAuthenticator struct {
	baseURL string
	client  *http.Client
	log     *zap.Logger
}

func NewHTTPAuthenticator(baseURL string, timeout time.Duration, logger *zap.Logger) contracts.Authenticator {
	return &httpAuthenticator{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		log:     logger,
	}
}

func (a *httpAuthenticator) Authenticate(ctx context.Context, email, secret string) (*contracts.AuthOutcome, error) {
	payload, err := json.Marshal(httpLoginRequest{Email: email, Password: secret})
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, exceptions.ErrAuthServiceUnreachable(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := a.client.Do(req)
	if err != nil {
		a.log.Error("httpAuthenticator.Authenticate request failed",
			zap.String("url", a.baseURL),
			zap.Error(err),
		)
		return nil, exceptions.ErrAuthServiceUnreachable(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	body := new(httpLoginResponse)
	if err := json.NewDecoder(resp.Body).Decode(body); err != nil {
		return nil, exceptions.ErrAuthServiceBadResponse(err)
	}
	if body.Token == "" || body.User == nil {
		return nil, exceptions.ErrAuthServiceBadResponse(nil)
	}

	return &contracts.AuthOutcome{
		Principal: contracts.Principal{
			ID:    body.User.ID,
			Email: body.User.Email,
			Role:  body.User.Role,
		},
		Token: body.Token,
	}, nil
}
