package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SESSION_SCOPE_KEY        ContextKey = "session_scope"
	CONTEXT_SESSION_SNAPSHOT_KEY     ContextKey = "session_snapshot"
)

const (
	REQUEST_ID_PREFIX = "TLCHK_SVC_"
)

// Persisted record keys. The identity record and the bearer token record are
// always written together and cleared together; a session restore that finds
// one without the other must repair the pair, never leave it split.
const (
	StorageKeyUser  = "telecheck_user"
	StorageKeyToken = "auth_token"
)

const (
	PermissionFullAccess = "full_access"
)

const (
	AuthEventLoginSuccess  = "login_success"
	AuthEventLoginFailure  = "login_failure"
	AuthEventLogout        = "logout"
	AuthEventRoleSwitch    = "role_switch"
	AuthEventRestoreRepair = "restore_repair"
)

const (
	LoginLimiterGroup = "AUTH_LOGIN"
)
