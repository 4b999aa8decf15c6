package sessions

import (
	"context"
	"sync"
	"time"

	"telecheck-service/internal/app/contracts"
	"telecheck-service/internal/app/models"
	"telecheck-service/internal/pkg/constvars"
	"telecheck-service/internal/pkg/fixtures"
	"telecheck-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// sessionUsecase holds the authenticated identity for one session scope and
// keeps it in step with the persisted pair of records. The identity record
// and the bearer token record are written together and cleared together.
type sessionUsecase struct {
	authenticator contracts.Authenticator
	storage       contracts.SessionStorage
	audit         contracts.AuditPublisher
	log           *zap.Logger
	scope         string

	mu       sync.RWMutex
	identity *models.Identity
	loading  bool
}

type sessionFactory struct {
	authenticator contracts.Authenticator
	storage       contracts.SessionStorage
	audit         contracts.AuditPublisher
	log           *zap.Logger
}

func NewSessionFactory(
	authenticator contracts.Authenticator,
	storage contracts.SessionStorage,
	audit contracts.AuditPublisher,
	logger *zap.Logger,
) contracts.SessionFactory {
	return &sessionFactory{
		authenticator: authenticator,
		storage:       storage,
		audit:         audit,
		log:           logger,
	}
}

func (f *sessionFactory) ForScope(scope string) contracts.SessionUsecase {
	return &sessionUsecase{
		authenticator: f.authenticator,
		storage:       f.storage,
		audit:         f.audit,
		log:           f.log,
		scope:         scope,
	}
}

// NewSessionUsecase builds a store bound to one scope directly, without the
// factory. Used by tests and by callers that manage a single scope.
func NewSessionUsecase(
	authenticator contracts.Authenticator,
	storage contracts.SessionStorage,
	audit contracts.AuditPublisher,
	logger *zap.Logger,
	scope string,
) contracts.SessionUsecase {
	return &sessionUsecase{
		authenticator: authenticator,
		storage:       storage,
		audit:         audit,
		log:           logger,
		scope:         scope,
	}
}

// scopedKey namespaces a storage key by session scope. An empty scope keeps
// the raw key so single-session deployments read and write the plain pair.
func (uc *sessionUsecase) scopedKey(key string) string {
	if uc.scope == "" {
		return key
	}
	return uc.scope + ":" + key
}

// Restore rehydrates the in-memory identity from the persisted records. A
// missing identity record yields an empty session. A record that fails to
// parse, or one that names a role outside the closed enumeration, clears
// both records so the next restore starts clean. A valid identity with a
// missing token record gets a fresh synthesized token persisted alongside.
func (uc *sessionUsecase) Restore(ctx context.Context) models.Session {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.log.Info("sessionUsecase.Restore called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingScopeKey, uc.scope),
	)

	uc.mu.Lock()
	uc.loading = true
	uc.mu.Unlock()

	settle := func(identity *models.Identity) models.Session {
		uc.mu.Lock()
		uc.identity = identity
		uc.loading = false
		snapshot := models.Session{Identity: identity, Loading: false}
		uc.mu.Unlock()
		return snapshot
	}

	raw, err := uc.storage.Get(ctx, uc.scopedKey(constvars.StorageKeyUser))
	if err != nil {
		uc.log.Error("sessionUsecase.Restore storage read failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return settle(nil)
	}
	if raw == "" {
		return settle(nil)
	}

	identity := new(models.Identity)
	if err := json.Unmarshal([]byte(raw), identity); err != nil {
		uc.repairCorruptState(ctx, requestID, constvars.ErrDevCorruptPersistedIdentity)
		return settle(nil)
	}
	if _, ok := models.ParseRole(string(identity.Role)); !ok {
		uc.repairCorruptState(ctx, requestID, constvars.ErrDevInvalidRoleType)
		return settle(nil)
	}

	token, err := uc.storage.Get(ctx, uc.scopedKey(constvars.StorageKeyToken))
	if err == nil && token == "" {
		synthesized, synthErr := utils.SynthesizeBearerToken(identity)
		if synthErr == nil {
			if setErr := uc.storage.Set(ctx, uc.scopedKey(constvars.StorageKeyToken), synthesized, 0); setErr != nil {
				uc.log.Error("sessionUsecase.Restore token repair failed",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.Error(setErr),
				)
			}
		}
	}

	uc.log.Info("sessionUsecase.Restore succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingIdentityIDKey, identity.ID),
		zap.String(constvars.LoggingRoleKey, identity.Role.String()),
	)
	return settle(identity)
}

// repairCorruptState clears both persisted records and reports the repair.
func (uc *sessionUsecase) repairCorruptState(ctx context.Context, requestID, reason string) {
	uc.log.Warn("sessionUsecase.Restore clearing corrupt persisted state",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingScopeKey, uc.scope),
		zap.String("reason", reason),
	)
	if err := uc.storage.Delete(ctx, uc.scopedKey(constvars.StorageKeyUser), uc.scopedKey(constvars.StorageKeyToken)); err != nil {
		uc.log.Error("sessionUsecase.Restore repair delete failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	uc.publishEvent(ctx, &models.AuthEvent{
		Event:  constvars.AuthEventRestoreRepair,
		Reason: reason,
	})
}

// Login authenticates the credentials and requires the claimed role to match
// the account's actual role. Every failure path returns false and leaves a
// previously established identity and its persisted records untouched.
func (uc *sessionUsecase) Login(ctx context.Context, email, secret string, claimedRole models.Role) bool {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.log.Info("sessionUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, email),
		zap.String(constvars.LoggingRoleKey, claimedRole.String()),
	)

	uc.mu.Lock()
	uc.loading = true
	uc.mu.Unlock()

	fail := func(reason string) bool {
		uc.mu.Lock()
		uc.loading = false
		uc.mu.Unlock()
		uc.log.Info("sessionUsecase.Login failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEmailKey, email),
			zap.String("reason", reason),
		)
		uc.publishEvent(ctx, &models.AuthEvent{
			Event:  constvars.AuthEventLoginFailure,
			Email:  email,
			Reason: reason,
		})
		return false
	}

	outcome, err := uc.authenticator.Authenticate(ctx, email, secret)
	if err != nil || outcome == nil {
		return fail(constvars.ErrDevInvalidCredentials)
	}

	actualRole, ok := models.ParseRole(outcome.Principal.Role)
	if !ok {
		return fail(constvars.ErrDevInvalidRoleType)
	}
	if actualRole != claimedRole {
		return fail(constvars.ErrDevRoleClaimMismatch)
	}

	permissions := outcome.Principal.Permissions
	if permissions == nil {
		permissions = models.DefaultPermissions(actualRole)
	}

	identity := &models.Identity{
		ID:             outcome.Principal.ID,
		Email:          outcome.Principal.Email,
		Name:           outcome.Principal.Name,
		Role:           actualRole,
		Permissions:    permissions,
		Organization:   outcome.Principal.Organization,
		LicenseNumber:  outcome.Principal.LicenseNumber,
		Specialization: outcome.Principal.Specialization,
		Active:         true,
		LastLogin:      time.Now().UTC(),
	}

	token := outcome.Token
	if token == "" {
		token, err = utils.SynthesizeBearerToken(identity)
		if err != nil {
			return fail(constvars.ErrDevAuthGenerateToken)
		}
	}

	if !uc.persistPair(ctx, requestID, identity, token) {
		return fail(constvars.ErrDevStorageSet)
	}

	uc.mu.Lock()
	uc.identity = identity
	uc.loading = false
	uc.mu.Unlock()

	uc.log.Info("sessionUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingIdentityIDKey, identity.ID),
		zap.String(constvars.LoggingRoleKey, identity.Role.String()),
	)
	uc.publishEvent(ctx, &models.AuthEvent{
		Event:      constvars.AuthEventLoginSuccess,
		Email:      identity.Email,
		IdentityID: identity.ID,
		Role:       identity.Role,
	})
	return true
}

// persistPair writes the identity record and the token record together.
func (uc *sessionUsecase) persistPair(ctx context.Context, requestID string, identity *models.Identity, token string) bool {
	payload, err := json.Marshal(identity)
	if err != nil {
		uc.log.Error("sessionUsecase marshal identity failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return false
	}
	if err := uc.storage.Set(ctx, uc.scopedKey(constvars.StorageKeyUser), string(payload), 0); err != nil {
		uc.log.Error("sessionUsecase persist identity failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return false
	}
	if err := uc.storage.Set(ctx, uc.scopedKey(constvars.StorageKeyToken), token, 0); err != nil {
		uc.log.Error("sessionUsecase persist token failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		// The pair must not be left split.
		_ = uc.storage.Delete(ctx, uc.scopedKey(constvars.StorageKeyUser))
		return false
	}
	return true
}

// Logout clears the identity and both persisted records unconditionally.
// Calling it on an already empty session is a no-op that still clears.
func (uc *sessionUsecase) Logout(ctx context.Context) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.log.Info("sessionUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingScopeKey, uc.scope),
	)

	uc.mu.Lock()
	previous := uc.identity
	uc.identity = nil
	uc.loading = false
	uc.mu.Unlock()

	if err := uc.storage.Delete(ctx, uc.scopedKey(constvars.StorageKeyUser), uc.scopedKey(constvars.StorageKeyToken)); err != nil {
		uc.log.Error("sessionUsecase.Logout storage delete failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	event := &models.AuthEvent{Event: constvars.AuthEventLogout}
	if previous != nil {
		event.Email = previous.Email
		event.IdentityID = previous.ID
		event.Role = previous.Role
	}
	uc.publishEvent(ctx, event)
}

// SwitchRole replaces the current identity with the sample identity for the
// target role. Only an authenticated admin may switch, and an unknown target
// role leaves the session unchanged.
func (uc *sessionUsecase) SwitchRole(ctx context.Context, target models.Role) bool {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.log.Info("sessionUsecase.SwitchRole called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, target.String()),
	)

	uc.mu.RLock()
	current := uc.identity
	uc.mu.RUnlock()

	if current == nil || current.Role != models.RoleAdmin {
		uc.log.Info("sessionUsecase.SwitchRole denied",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return false
	}

	replacement, ok := fixtures.SampleIdentity(target)
	if !ok {
		return false
	}

	token, err := utils.SynthesizeBearerToken(replacement)
	if err != nil {
		return false
	}
	if !uc.persistPair(ctx, requestID, replacement, token) {
		return false
	}

	uc.mu.Lock()
	uc.identity = replacement
	uc.mu.Unlock()

	uc.log.Info("sessionUsecase.SwitchRole succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingIdentityIDKey, replacement.ID),
		zap.String(constvars.LoggingRoleKey, replacement.Role.String()),
	)
	uc.publishEvent(ctx, &models.AuthEvent{
		Event:      constvars.AuthEventRoleSwitch,
		Email:      replacement.Email,
		IdentityID: replacement.ID,
		Role:       replacement.Role,
	})
	return true
}

func (uc *sessionUsecase) HasPermission(token string) bool {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.identity.HasPermission(token)
}

func (uc *sessionUsecase) HasRole(role models.Role) bool {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.identity != nil && uc.identity.Role == role
}

func (uc *sessionUsecase) Snapshot() models.Session {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return models.Session{Identity: uc.identity, Loading: uc.loading}
}

// publishEvent delivers the audit event best-effort.
func (uc *sessionUsecase) publishEvent(ctx context.Context, event *models.AuthEvent) {
	if uc.audit == nil {
		return
	}
	event.ID = uuid.New().String()
	event.OccurredAt = time.Now().UTC()
	if err := uc.audit.Publish(ctx, event); err != nil {
		uc.log.Warn("sessionUsecase audit publish failed",
			zap.String("event", event.Event),
			zap.Error(err),
		)
	}
}
