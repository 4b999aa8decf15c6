package constvars

// Client messages are safe to return to callers; dev messages are logged only.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process your request"
	ErrClientInvalidEmailOrPassword        = "Invalid email or password"
	ErrClientNotLoggedIn                   = "You are not logged in"
	ErrClientNotAuthorized                 = "You are not authorized to perform this action"
	ErrClientTooManyLoginAttempts          = "Too many login attempts, please try again later"
	ErrClientServerLongRespond             = "Server takes too long to respond"
)

const (
	ErrDevValidationFailed         = "Request validation failed"
	ErrDevCannotParseJSON          = "Failed to parse JSON payload"
	ErrDevCannotMarshalJSON        = "Failed to marshal value to JSON"
	ErrDevInvalidCredentials       = "Invalid credentials supplied"
	ErrDevInactiveAccount          = "Account is inactive"
	ErrDevRoleClaimMismatch        = "Claimed role does not match the account role"
	ErrDevInvalidRoleType          = "Role is not part of the closed role enumeration"
	ErrDevAuthServiceUnreachable   = "External authentication service unreachable"
	ErrDevAuthServiceBadResponse   = "External authentication service returned an unusable response"
	ErrDevAuthTokenMissing         = "Authorization token is missing"
	ErrDevAuthTokenInvalid         = "Authorization token is invalid"
	ErrDevAuthTokenExpired         = "Authorization token has expired"
	ErrDevAuthGenerateToken        = "Failed to generate session token"
	ErrDevAuthSigningMethod        = "Unexpected JWT signing method"
	ErrDevSessionScopeMissing      = "Session scope missing from request context"
	ErrDevStorageSet               = "Failed to write key to session storage"
	ErrDevStorageGet               = "Failed to read key from session storage"
	ErrDevStorageDelete            = "Failed to delete keys from session storage"
	ErrDevStorageIncrement         = "Failed to increment counter in session storage"
	ErrDevCorruptPersistedIdentity = "Persisted identity record failed to parse"
	ErrDevLoginRateLimited         = "Login attempt rate limit exceeded"
	ErrDevServerDeadlineExceeded   = "Server deadline exceeded"
	ErrDevAccountNotFound          = "Account does not exist"
	ErrDevDBFailedToFindDocument   = "Database failed to find document"
	ErrDevAuditPublishFailed       = "Failed to publish auth audit event"
)
