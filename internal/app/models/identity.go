package models

import "time"

// Identity is an authenticated principal. Permissions is never nil on a
// constructed Identity; an unauthenticated session has no Identity at all
// rather than an Identity with an empty permission set.
type Identity struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	Role           Role      `json:"role"`
	Permissions    []string  `json:"permissions"`
	Organization   string    `json:"organization,omitempty"`
	LicenseNumber  string    `json:"licenseNumber,omitempty"`
	Specialization string    `json:"specialization,omitempty"`
	Active         bool      `json:"active"`
	LastLogin      time.Time `json:"lastLogin"`
}

// HasPermission reports whether the identity holds the permission token.
// The full_access sentinel is a wildcard satisfying every check.
func (i *Identity) HasPermission(token string) bool {
	if i == nil {
		return false
	}
	for _, perm := range i.Permissions {
		if perm == token || perm == "full_access" {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers can hand out identities without
// sharing the permission slice.
func (i *Identity) Clone() *Identity {
	if i == nil {
		return nil
	}
	cloned := *i
	cloned.Permissions = make([]string, len(i.Permissions))
	copy(cloned.Permissions, i.Permissions)
	return &cloned
}
