package models

import "strings"

// Role is the closed enumeration of portal roles. Any value outside this set
// is rejected at the boundary it arrives on; there is no open-ended role.
type Role string

const (
	RolePatient    Role = "patient"
	RoleDoctor     Role = "doctor"
	RoleNurse      Role = "nurse"
	RoleCaregiver  Role = "caregiver"
	RolePharmacist Role = "pharmacist"
	RoleAdmin      Role = "admin"
)

var allRoles = []Role{
	RolePatient,
	RoleDoctor,
	RoleNurse,
	RoleCaregiver,
	RolePharmacist,
	RoleAdmin,
}

// ParseRole validates a free-form role string against the closed enumeration.
// Unrecognized values fail closed.
func ParseRole(raw string) (Role, bool) {
	candidate := Role(strings.ToLower(strings.TrimSpace(raw)))
	for _, role := range allRoles {
		if candidate == role {
			return role, true
		}
	}
	return "", false
}

func (r Role) String() string {
	return string(r)
}

func AllRoles() []Role {
	roles := make([]Role, len(allRoles))
	copy(roles, allRoles)
	return roles
}

// DefaultPermissions returns the permission set granted to a role when the
// authentication collaborator supplies a bare principal without permissions.
// Roles without an entry get an empty set, never nil.
func DefaultPermissions(role Role) []string {
	if perms, ok := defaultRolePermissions[role]; ok {
		out := make([]string, len(perms))
		copy(out, perms)
		return out
	}
	return []string{}
}

var defaultRolePermissions = map[Role][]string{
	RoleAdmin: {
		"view_all_patients",
		"manage_users",
		"full_access",
		"user_management",
		"system_settings",
		"audit_logs",
		"platform_analytics",
		"security_controls",
	},
	RoleDoctor: {
		"view_all_patients",
		"prescribe_medications",
		"review_labs",
		"telehealth_consults",
		"approve_treatments",
	},
	RoleNurse: {
		"view_assigned_patients",
		"update_vital_signs",
		"care_coordination",
		"medication_administration",
	},
	RolePharmacist: {
		"dispense_medications",
		"review_prescriptions",
		"drug_interactions",
		"inventory_management",
		"patient_counseling",
	},
	RolePatient: {
		"view_own_records",
		"book_appointments",
		"order_medications",
		"view_lab_results",
	},
}
