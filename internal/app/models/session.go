package models

// Session is a point-in-time snapshot of the session store: at most one
// Identity plus the transient loading flag. Loading is true only while a
// login or restore is in flight and is always reset before the operation
// settles.
type Session struct {
	Identity *Identity `json:"identity,omitempty"`
	Loading  bool      `json:"loading"`
}

func (s Session) IsAuthenticated() bool {
	return s.Identity != nil
}

func (s Session) HasPermission(token string) bool {
	return s.Identity.HasPermission(token)
}

func (s Session) HasRole(role Role) bool {
	return s.Identity != nil && s.Identity.Role == role
}
