package accessguard

import (
	"telecheck-service/internal/app/models"
)

const defaultLoginPath = "/login"

// Evaluate runs the session snapshot through the guard rules in order and
// returns the first verdict that applies:
//
//  1. session still loading: verifying access
//  2. no authenticated identity: redirect to login, carrying the origin
//  3. role not in a non-empty allowed set: access denied, naming the set
//  4. any required permission missing: insufficient permissions (all
//     required permissions must be held)
//  5. otherwise: render
//
// A later rule is never reached once an earlier one has fired, so an
// unauthenticated visitor is redirected rather than denied even when the
// allowed-roles check would also have failed.
func Evaluate(session models.Session, requirement models.AccessRequirement, from string) models.Verdict {
	if session.Loading {
		return models.Verdict{Decision: models.DecisionVerifyingAccess}
	}

	if !session.IsAuthenticated() {
		redirect := requirement.RedirectTo
		if redirect == "" {
			redirect = defaultLoginPath
		}
		return models.Verdict{
			Decision:   models.DecisionRedirectToLogin,
			RedirectTo: redirect,
			From:       from,
		}
	}

	if len(requirement.AllowedRoles) > 0 && !roleAllowed(session.Identity.Role, requirement.AllowedRoles) {
		return models.Verdict{
			Decision:     models.DecisionAccessDenied,
			AllowedRoles: requirement.AllowedRoles,
			ActualRole:   session.Identity.Role,
		}
	}

	for _, permission := range requirement.RequiredPermissions {
		if !session.HasPermission(permission) {
			return models.Verdict{
				Decision:          models.DecisionInsufficientPermissions,
				ActualRole:        session.Identity.Role,
				MissingPermission: permission,
			}
		}
	}

	return models.Verdict{Decision: models.DecisionRender}
}

func roleAllowed(role models.Role, allowed []models.Role) bool {
	for _, candidate := range allowed {
		if candidate == role {
			return true
		}
	}
	return false
}
