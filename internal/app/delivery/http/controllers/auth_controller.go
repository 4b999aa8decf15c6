package controllers

import (
	"context"
	"net/http"
	"time"

	"telecheck-service/internal/app/config"
	"telecheck-service/internal/app/contracts"
	"telecheck-service/internal/app/models"
	"telecheck-service/internal/app/services/shared/ratelimiter"
	"telecheck-service/internal/pkg/constvars"
	"telecheck-service/internal/pkg/dto/requests"
	"telecheck-service/internal/pkg/dto/responses"
	"telecheck-service/internal/pkg/exceptions"
	"telecheck-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AuthController struct {
	Log            *zap.Logger
	SessionFactory contracts.SessionFactory
	LoginLimiter   *ratelimiter.LoginLimiter
	InternalConfig *config.InternalConfig
}

func NewAuthController(
	logger *zap.Logger,
	sessionFactory contracts.SessionFactory,
	loginLimiter *ratelimiter.LoginLimiter,
	internalConfig *config.InternalConfig,
) *AuthController {
	return &AuthController{
		Log:            logger,
		SessionFactory: sessionFactory,
		LoginLimiter:   loginLimiter,
		InternalConfig: internalConfig,
	}
}

// Login authenticates the credentials under a fresh session scope and
// returns the signed scope token. A failed login is a 401 with a uniform
// message regardless of the underlying cause.
func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	request := new(requests.Login)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if !ctrl.LoginLimiter.Allow(ctx, request.Email) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrLoginRateLimited(nil))
		return
	}

	claimedRole, ok := models.ParseRole(request.Role)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidRoleType(nil))
		return
	}

	scope := utils.GenerateSessionScope()
	sessionUsecase := ctrl.SessionFactory.ForScope(scope)

	if !sessionUsecase.Login(ctx, request.Email, request.Password, claimedRole) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidEmailOrPassword(nil))
		return
	}

	token, err := utils.GenerateSessionJWT(scope, ctrl.InternalConfig.JWT.Secret, ctrl.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	snapshot := sessionUsecase.Snapshot()
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccess, responses.Login{
		Token:    token,
		Identity: snapshot.Identity,
	})
}

// Logout clears the session for the request's scope. Logging out without a
// session is still a success.
func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	scope, ok := r.Context().Value(constvars.CONTEXT_SESSION_SCOPE_KEY).(string)
	if ok {
		sessionUsecase := ctrl.SessionFactory.ForScope(scope)
		sessionUsecase.Restore(ctx)
		sessionUsecase.Logout(ctx)
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LogoutSuccess, nil)
}

// Session returns the restored session snapshot for the request's scope. An
// unauthenticated caller gets an empty snapshot, not an error.
func (ctrl *AuthController) Session(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response := responses.SessionSnapshot{}
	if scope, ok := r.Context().Value(constvars.CONTEXT_SESSION_SCOPE_KEY).(string); ok {
		session := ctrl.SessionFactory.ForScope(scope).Restore(ctx)
		response.Authenticated = session.IsAuthenticated()
		response.Identity = session.Identity
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SessionFetched, response)
}

// SwitchRole swaps the current identity for the target role's sample
// identity. Non-admin callers and unknown roles are refused.
func (ctrl *AuthController) SwitchRole(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SwitchRole)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	scope, ok := r.Context().Value(constvars.CONTEXT_SESSION_SCOPE_KEY).(string)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	target, ok := models.ParseRole(request.TargetRole)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidRoleType(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	sessionUsecase := ctrl.SessionFactory.ForScope(scope)
	sessionUsecase.Restore(ctx)

	if !sessionUsecase.SwitchRole(ctx, target) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrNotAuthorized(nil))
		return
	}

	snapshot := sessionUsecase.Snapshot()
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RoleSwitchSuccess, responses.SwitchRole{
		Identity: snapshot.Identity,
	})
}
