package models

// AccessRequirement declares what a protected view needs. An empty
// AllowedRoles set means every authenticated role passes; an empty
// RequiredPermissions set means no permission is checked. The guard is
// opt-in restrictive, never deny-by-default.
type AccessRequirement struct {
	AllowedRoles        []Role
	RequiredPermissions []string
	RedirectTo          string
}

// Decision is the outcome of evaluating a session snapshot against an
// access requirement.
type Decision string

const (
	DecisionRender                  Decision = "render"
	DecisionVerifyingAccess         Decision = "verifying_access"
	DecisionRedirectToLogin         Decision = "redirect_to_login"
	DecisionAccessDenied            Decision = "access_denied"
	DecisionInsufficientPermissions Decision = "insufficient_permissions"
)

// Verdict carries the decision plus the context a caller needs to render it:
// where to redirect and from where, which roles would have been accepted,
// the actual role, and the first missing permission.
type Verdict struct {
	Decision          Decision `json:"decision"`
	RedirectTo        string   `json:"redirect_to,omitempty"`
	From              string   `json:"from,omitempty"`
	AllowedRoles      []Role   `json:"allowed_roles,omitempty"`
	ActualRole        Role     `json:"actual_role,omitempty"`
	MissingPermission string   `json:"missing_permission,omitempty"`
}
