package routers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"telecheck-service/internal/app/config"
	"telecheck-service/internal/app/delivery/http/controllers"
	"telecheck-service/internal/app/delivery/http/middlewares"
	"telecheck-service/internal/app/models"
	"telecheck-service/internal/app/services/core/sessions"
	"telecheck-service/internal/app/services/shared/authenticator"
	"telecheck-service/internal/app/services/shared/ratelimiter"
	"telecheck-service/internal/app/services/shared/storage"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()

	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		App: config.App{
			EndpointPrefix: "/api/v1",
			MaxRequests:    1000,
		},
		Auth: config.Auth{
			LoginMaxAttempts:  100,
			LoginRedirectPath: "/login",
		},
		JWT: config.JWT{
			Secret:        "test-secret",
			ExpTimeInHour: 24,
		},
	}

	store := storage.NewMemorySessionStorage()
	factory := sessions.NewSessionFactory(
		authenticator.NewFixtureAuthenticator(logger),
		store,
		nil,
		logger,
	)
	limiter := ratelimiter.NewLoginLimiter(store, internalConfig.Auth.LoginMaxAttempts, time.Minute, logger)

	middlewareInstance := &middlewares.Middlewares{
		Log:            logger,
		SessionFactory: factory,
		InternalConfig: internalConfig,
	}

	authController := controllers.NewAuthController(logger, factory, limiter, internalConfig)
	portalController := controllers.NewPortalController(logger)

	router := chi.NewRouter()
	SetupRoutes(router, internalConfig, middlewareInstance, authController, portalController)
	return router
}

func doLogin(t *testing.T, router *chi.Mux, email, password, role string) string {
	t.Helper()

	body, err := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
		"role":     role,
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var response struct {
		Success bool `json:"success"`
		Data    struct {
			Token    string           `json:"token"`
			Identity *models.Identity `json:"identity"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.True(t, response.Success)
	require.NotEmpty(t, response.Data.Token)
	return response.Data.Token
}

func TestLoginEndpoint_SuccessReturnsTokenAndIdentity(t *testing.T) {
	router := newTestRouter(t)

	body, _ := json.Marshal(map[string]string{
		"email":    "sarah.chen@telecheck.health",
		"password": "Doctor#2024",
		"role":     "doctor",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response struct {
		Data struct {
			Token    string           `json:"token"`
			Identity *models.Identity `json:"identity"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.NotEmpty(t, response.Data.Token)
	require.NotNil(t, response.Data.Identity)
	assert.Equal(t, models.RoleDoctor, response.Data.Identity.Role)
}

func TestLoginEndpoint_BadCredentialsIs401(t *testing.T) {
	router := newTestRouter(t)

	body, _ := json.Marshal(map[string]string{
		"email":    "sarah.chen@telecheck.health",
		"password": "wrong-password",
		"role":     "doctor",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginEndpoint_RoleMismatchIs401(t *testing.T) {
	router := newTestRouter(t)

	body, _ := json.Marshal(map[string]string{
		"email":    "sarah.chen@telecheck.health",
		"password": "Doctor#2024",
		"role":     "admin",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginEndpoint_ValidationFailureIs400(t *testing.T) {
	router := newTestRouter(t)

	body, _ := json.Marshal(map[string]string{
		"email":    "not-an-email",
		"password": "short",
		"role":     "doctor",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGuardedRoute_NoTokenRedirectsToLogin(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/portal/dashboard", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var verdict models.Verdict
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &verdict))
	assert.Equal(t, models.DecisionRedirectToLogin, verdict.Decision)
	assert.Equal(t, "/login", verdict.RedirectTo)
	assert.Equal(t, "/api/v1/portal/dashboard", verdict.From)
}

func TestGuardedRoute_AuthenticatedDashboard(t *testing.T) {
	router := newTestRouter(t)
	token := doLogin(t, router, "maria.santos@telecheck.health", "Patient#2024", "patient")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/portal/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGuardedRoute_RoleOutsideAllowedSetIsDenied(t *testing.T) {
	router := newTestRouter(t)
	token := doLogin(t, router, "maria.santos@telecheck.health", "Patient#2024", "patient")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/portal/patients", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)

	var verdict models.Verdict
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &verdict))
	assert.Equal(t, models.DecisionAccessDenied, verdict.Decision)
	assert.Equal(t, models.RolePatient, verdict.ActualRole)
	assert.Contains(t, verdict.AllowedRoles, models.RoleDoctor)
}

func TestGuardedRoute_MissingPermissionIsInsufficient(t *testing.T) {
	router := newTestRouter(t)
	// Nurses are in the allowed set for /patients but lack view_all_patients.
	token := doLogin(t, router, "james.okafor@telecheck.health", "Nurse#2024", "nurse")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/portal/patients", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)

	var verdict models.Verdict
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &verdict))
	assert.Equal(t, models.DecisionInsufficientPermissions, verdict.Decision)
	assert.Equal(t, "view_all_patients", verdict.MissingPermission)
}

func TestGuardedRoute_AdminFullAccessPassesEveryGuard(t *testing.T) {
	router := newTestRouter(t)
	token := doLogin(t, router, "admin@telecheck.health", "Admin#2024", "admin")

	for _, path := range []string{
		"/api/v1/portal/dashboard",
		"/api/v1/portal/patients",
		"/api/v1/portal/prescriptions",
		"/api/v1/portal/admin/settings",
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, "expected admin to reach %s", path)
	}
}

func TestSessionEndpoint_RoundTrip(t *testing.T) {
	router := newTestRouter(t)
	token := doLogin(t, router, "daniel.kim@telecheck.health", "Pharmacist#2024", "pharmacist")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/session", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response struct {
		Data struct {
			Authenticated bool             `json:"authenticated"`
			Identity      *models.Identity `json:"identity"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.True(t, response.Data.Authenticated)
	require.NotNil(t, response.Data.Identity)
	assert.Equal(t, models.RolePharmacist, response.Data.Identity.Role)
}

func TestLogoutEndpoint_ClearsSession(t *testing.T) {
	router := newTestRouter(t)
	token := doLogin(t, router, "admin@telecheck.health", "Admin#2024", "admin")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/auth/session", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var response struct {
		Data struct {
			Authenticated bool `json:"authenticated"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.False(t, response.Data.Authenticated)
}

func TestSwitchRoleEndpoint_AdminOnly(t *testing.T) {
	router := newTestRouter(t)
	adminToken := doLogin(t, router, "admin@telecheck.health", "Admin#2024", "admin")

	body, _ := json.Marshal(map[string]string{"target_role": "doctor"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/switch-role", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+adminToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response struct {
		Data struct {
			Identity *models.Identity `json:"identity"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.NotNil(t, response.Data.Identity)
	assert.Equal(t, models.RoleDoctor, response.Data.Identity.Role)

	// A non-admin caller is refused.
	doctorToken := doLogin(t, router, "sarah.chen@telecheck.health", "Doctor#2024", "doctor")
	body, _ = json.Marshal(map[string]string{"target_role": "admin"})
	req = httptest.NewRequest(http.MethodPost, "/api/v1/auth/switch-role", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+doctorToken)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestSwitchRoleEndpoint_UnknownRoleIs400(t *testing.T) {
	router := newTestRouter(t)
	adminToken := doLogin(t, router, "admin@telecheck.health", "Admin#2024", "admin")

	body, _ := json.Marshal(map[string]string{"target_role": "wizard"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/switch-role", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+adminToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
