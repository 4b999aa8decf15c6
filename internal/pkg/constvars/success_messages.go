package constvars

const (
	LoginSuccess      = "Successfully logged in"
	LogoutSuccess     = "Successfully logged out"
	RoleSwitchSuccess = "Successfully switched role"
	SessionFetched    = "Successfully fetched session"
)
