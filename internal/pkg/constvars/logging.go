package constvars

const (
	LoggingRequestIDKey  = "request_id"
	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"
	LoggingEmailKey      = "email"
	LoggingRoleKey       = "role"
	LoggingIdentityIDKey = "identity_id"
	LoggingDecisionKey   = "decision"
	LoggingScopeKey      = "session_scope"
)
