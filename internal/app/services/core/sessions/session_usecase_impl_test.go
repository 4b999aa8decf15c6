package sessions

import (
	"context"
	"sync"
	"testing"
	"time"

	"telecheck-service/internal/app/contracts"
	"telecheck-service/internal/app/models"
	"telecheck-service/internal/app/services/shared/authenticator"
	"telecheck-service/internal/app/services/shared/storage"
	"telecheck-service/internal/pkg/constvars"
	"telecheck-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []*models.AuthEvent
}

func (p *recordingPublisher) Publish(ctx context.Context, event *models.AuthEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) eventNames() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	names := make([]string, 0, len(p.events))
	for _, event := range p.events {
		names = append(names, event.Event)
	}
	return names
}

func newTestUsecase(scope string) (contracts.SessionUsecase, contracts.SessionStorage, *recordingPublisher) {
	store := storage.NewMemorySessionStorage()
	publisher := &recordingPublisher{}
	auth := authenticator.NewFixtureAuthenticator(zap.NewNop())
	uc := NewSessionUsecase(auth, store, publisher, zap.NewNop(), scope)
	return uc, store, publisher
}

func TestLogin_SucceedsForEverySampleRole(t *testing.T) {
	cases := []struct {
		email string
		pass  string
		role  models.Role
	}{
		{"maria.santos@telecheck.health", "Patient#2024", models.RolePatient},
		{"sarah.chen@telecheck.health", "Doctor#2024", models.RoleDoctor},
		{"james.okafor@telecheck.health", "Nurse#2024", models.RoleNurse},
		{"rosa.alvarez@telecheck.health", "Caregiver#2024", models.RoleCaregiver},
		{"daniel.kim@telecheck.health", "Pharmacist#2024", models.RolePharmacist},
		{"admin@telecheck.health", "Admin#2024", models.RoleAdmin},
	}

	for _, tc := range cases {
		uc, _, _ := newTestUsecase("")
		ok := uc.Login(context.Background(), tc.email, tc.pass, tc.role)
		require.True(t, ok, "login should succeed for %s", tc.email)

		snapshot := uc.Snapshot()
		require.NotNil(t, snapshot.Identity)
		assert.Equal(t, tc.role, snapshot.Identity.Role)
		assert.False(t, snapshot.Loading)
		assert.NotNil(t, snapshot.Identity.Permissions)
	}
}

func TestLogin_FailsWithWrongPassword(t *testing.T) {
	uc, _, publisher := newTestUsecase("")
	ok := uc.Login(context.Background(), "admin@telecheck.health", "wrong-password", models.RoleAdmin)

	assert.False(t, ok)
	assert.Nil(t, uc.Snapshot().Identity)
	assert.False(t, uc.Snapshot().Loading)
	assert.Contains(t, publisher.eventNames(), constvars.AuthEventLoginFailure)
}

func TestLogin_FailsForUnknownEmail(t *testing.T) {
	uc, _, _ := newTestUsecase("")
	ok := uc.Login(context.Background(), "nobody@telecheck.health", "Whatever#2024", models.RolePatient)
	assert.False(t, ok)
}

func TestLogin_FailsForInactiveAccount(t *testing.T) {
	uc, _, _ := newTestUsecase("")
	ok := uc.Login(context.Background(), "former.staff@telecheck.health", "Former#2024", models.RoleNurse)
	assert.False(t, ok)
	assert.Nil(t, uc.Snapshot().Identity)
}

func TestLogin_FailsOnClaimedRoleMismatch(t *testing.T) {
	uc, store, _ := newTestUsecase("")
	ok := uc.Login(context.Background(), "sarah.chen@telecheck.health", "Doctor#2024", models.RoleAdmin)

	assert.False(t, ok)
	assert.Nil(t, uc.Snapshot().Identity)

	raw, err := store.Get(context.Background(), constvars.StorageKeyUser)
	require.NoError(t, err)
	assert.Empty(t, raw)
}

func TestLogin_PersistsIdentityAndTokenTogether(t *testing.T) {
	uc, store, _ := newTestUsecase("")
	require.True(t, uc.Login(context.Background(), "sarah.chen@telecheck.health", "Doctor#2024", models.RoleDoctor))

	rawIdentity, err := store.Get(context.Background(), constvars.StorageKeyUser)
	require.NoError(t, err)
	assert.NotEmpty(t, rawIdentity)

	rawToken, err := store.Get(context.Background(), constvars.StorageKeyToken)
	require.NoError(t, err)
	require.NotEmpty(t, rawToken)

	claims, err := utils.DecodeBearerToken(rawToken)
	require.NoError(t, err)
	assert.Equal(t, "usr-doctor-001", claims.UserID)
	assert.Equal(t, "sarah.chen@telecheck.health", claims.Email)
	assert.Equal(t, models.RoleDoctor, claims.Role)
	assert.Contains(t, claims.Permissions, "prescribe_medications")

	lifetime := time.Until(time.UnixMilli(claims.Exp))
	assert.Greater(t, lifetime, 23*time.Hour)
	assert.LessOrEqual(t, lifetime, 24*time.Hour)
}

func TestLogin_FailureDoesNotClobberExistingSession(t *testing.T) {
	uc, store, _ := newTestUsecase("")
	require.True(t, uc.Login(context.Background(), "admin@telecheck.health", "Admin#2024", models.RoleAdmin))

	ok := uc.Login(context.Background(), "admin@telecheck.health", "wrong-password", models.RoleAdmin)
	assert.False(t, ok)

	snapshot := uc.Snapshot()
	require.NotNil(t, snapshot.Identity)
	assert.Equal(t, models.RoleAdmin, snapshot.Identity.Role)

	rawIdentity, err := store.Get(context.Background(), constvars.StorageKeyUser)
	require.NoError(t, err)
	assert.NotEmpty(t, rawIdentity)
}

func TestLogout_ClearsSessionAndBothRecords(t *testing.T) {
	uc, store, publisher := newTestUsecase("")
	require.True(t, uc.Login(context.Background(), "admin@telecheck.health", "Admin#2024", models.RoleAdmin))

	uc.Logout(context.Background())

	assert.Nil(t, uc.Snapshot().Identity)
	for _, key := range []string{constvars.StorageKeyUser, constvars.StorageKeyToken} {
		value, err := store.Get(context.Background(), key)
		require.NoError(t, err)
		assert.Empty(t, value)
	}
	assert.Contains(t, publisher.eventNames(), constvars.AuthEventLogout)
}

func TestLogout_IsIdempotent(t *testing.T) {
	uc, _, _ := newTestUsecase("")
	uc.Logout(context.Background())
	uc.Logout(context.Background())
	assert.Nil(t, uc.Snapshot().Identity)
}

func TestRestore_EmptyStorageYieldsEmptySession(t *testing.T) {
	uc, _, _ := newTestUsecase("")
	session := uc.Restore(context.Background())

	assert.Nil(t, session.Identity)
	assert.False(t, session.Loading)
}

func TestRestore_RoundTripsAPersistedLogin(t *testing.T) {
	first, store, _ := newTestUsecase("")
	require.True(t, first.Login(context.Background(), "daniel.kim@telecheck.health", "Pharmacist#2024", models.RolePharmacist))

	second := NewSessionUsecase(
		authenticator.NewFixtureAuthenticator(zap.NewNop()),
		store,
		&recordingPublisher{},
		zap.NewNop(),
		"",
	)
	session := second.Restore(context.Background())

	require.NotNil(t, session.Identity)
	assert.Equal(t, "usr-pharmacist-001", session.Identity.ID)
	assert.Equal(t, models.RolePharmacist, session.Identity.Role)
	assert.Contains(t, session.Identity.Permissions, "dispense_medications")
}

func TestRestore_SynthesizesMissingToken(t *testing.T) {
	uc, store, _ := newTestUsecase("")
	require.True(t, uc.Login(context.Background(), "maria.santos@telecheck.health", "Patient#2024", models.RolePatient))
	require.NoError(t, store.Delete(context.Background(), constvars.StorageKeyToken))

	session := uc.Restore(context.Background())
	require.NotNil(t, session.Identity)

	rawToken, err := store.Get(context.Background(), constvars.StorageKeyToken)
	require.NoError(t, err)
	require.NotEmpty(t, rawToken)

	claims, err := utils.DecodeBearerToken(rawToken)
	require.NoError(t, err)
	assert.Equal(t, "usr-patient-001", claims.UserID)
}

func TestRestore_ClearsCorruptIdentityRecord(t *testing.T) {
	uc, store, publisher := newTestUsecase("")
	require.NoError(t, store.Set(context.Background(), constvars.StorageKeyUser, "{not json", 0))
	require.NoError(t, store.Set(context.Background(), constvars.StorageKeyToken, "stale-token", 0))

	session := uc.Restore(context.Background())
	assert.Nil(t, session.Identity)
	assert.False(t, session.Loading)

	for _, key := range []string{constvars.StorageKeyUser, constvars.StorageKeyToken} {
		value, err := store.Get(context.Background(), key)
		require.NoError(t, err)
		assert.Empty(t, value)
	}
	assert.Contains(t, publisher.eventNames(), constvars.AuthEventRestoreRepair)
}

func TestRestore_ClearsRecordWithUnknownRole(t *testing.T) {
	uc, store, _ := newTestUsecase("")
	require.NoError(t, store.Set(context.Background(), constvars.StorageKeyUser, `{"id":"usr-x","role":"superuser","permissions":[]}`, 0))

	session := uc.Restore(context.Background())
	assert.Nil(t, session.Identity)

	value, err := store.Get(context.Background(), constvars.StorageKeyUser)
	require.NoError(t, err)
	assert.Empty(t, value)
}

func TestSwitchRole_AdminCanAssumeAnySampleRole(t *testing.T) {
	uc, store, publisher := newTestUsecase("")
	require.True(t, uc.Login(context.Background(), "admin@telecheck.health", "Admin#2024", models.RoleAdmin))

	ok := uc.SwitchRole(context.Background(), models.RoleDoctor)
	require.True(t, ok)

	snapshot := uc.Snapshot()
	require.NotNil(t, snapshot.Identity)
	assert.Equal(t, "usr-doctor-001", snapshot.Identity.ID)
	assert.Equal(t, models.RoleDoctor, snapshot.Identity.Role)
	assert.Contains(t, snapshot.Identity.Permissions, "prescribe_medications")

	rawToken, err := store.Get(context.Background(), constvars.StorageKeyToken)
	require.NoError(t, err)
	claims, err := utils.DecodeBearerToken(rawToken)
	require.NoError(t, err)
	assert.Equal(t, "usr-doctor-001", claims.UserID)

	assert.Contains(t, publisher.eventNames(), constvars.AuthEventRoleSwitch)
}

func TestSwitchRole_RefusedForNonAdmin(t *testing.T) {
	uc, _, _ := newTestUsecase("")
	require.True(t, uc.Login(context.Background(), "sarah.chen@telecheck.health", "Doctor#2024", models.RoleDoctor))

	ok := uc.SwitchRole(context.Background(), models.RoleAdmin)
	assert.False(t, ok)
	assert.Equal(t, models.RoleDoctor, uc.Snapshot().Identity.Role)
}

func TestSwitchRole_RefusedWithoutSession(t *testing.T) {
	uc, _, _ := newTestUsecase("")
	assert.False(t, uc.SwitchRole(context.Background(), models.RoleDoctor))
}

func TestSwitchRole_RefusedForUnknownRole(t *testing.T) {
	uc, _, _ := newTestUsecase("")
	require.True(t, uc.Login(context.Background(), "admin@telecheck.health", "Admin#2024", models.RoleAdmin))

	ok := uc.SwitchRole(context.Background(), models.Role("wizard"))
	assert.False(t, ok)
	assert.Equal(t, models.RoleAdmin, uc.Snapshot().Identity.Role)
}

func TestHasPermissionAndHasRole(t *testing.T) {
	uc, _, _ := newTestUsecase("")
	assert.False(t, uc.HasPermission("view_all_patients"))
	assert.False(t, uc.HasRole(models.RoleAdmin))

	require.True(t, uc.Login(context.Background(), "admin@telecheck.health", "Admin#2024", models.RoleAdmin))

	assert.True(t, uc.HasRole(models.RoleAdmin))
	assert.True(t, uc.HasPermission("manage_users"))
	// full_access grants permissions outside the admin's literal set
	assert.True(t, uc.HasPermission("prescribe_medications"))
}

func TestScopedSessionsDoNotLeakAcrossScopes(t *testing.T) {
	store := storage.NewMemorySessionStorage()
	factory := NewSessionFactory(
		authenticator.NewFixtureAuthenticator(zap.NewNop()),
		store,
		&recordingPublisher{},
		zap.NewNop(),
	)

	first := factory.ForScope("scope-a")
	require.True(t, first.Login(context.Background(), "admin@telecheck.health", "Admin#2024", models.RoleAdmin))

	second := factory.ForScope("scope-b")
	session := second.Restore(context.Background())
	assert.Nil(t, session.Identity)

	sameScope := factory.ForScope("scope-a")
	session = sameScope.Restore(context.Background())
	require.NotNil(t, session.Identity)
	assert.Equal(t, models.RoleAdmin, session.Identity.Role)
}
