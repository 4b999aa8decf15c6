// Package fixtures holds the fixed directory of per-role sample identities
// used by the self-contained authenticator and the admin role-switch
// affordance. Exactly one canonical identity exists per role.
package fixtures

import (
	"telecheck-service/internal/app/models"
)

// Credential pairs a sample identity with its demo secret. Secrets are
// plaintext because this directory only ever backs demo and test logins.
type Credential struct {
	Email    string
	Password string
	Active   bool
}

var sampleIdentities = map[models.Role]models.Identity{
	models.RolePatient: {
		ID:           "usr-patient-001",
		Email:        "maria.santos@telecheck.health",
		Name:         "Maria Santos",
		Role:         models.RolePatient,
		Organization: "TeleCheck Health",
		Active:       true,
	},
	models.RoleDoctor: {
		ID:             "usr-doctor-001",
		Email:          "sarah.chen@telecheck.health",
		Name:           "Dr. Sarah Chen",
		Role:           models.RoleDoctor,
		Organization:   "TeleCheck Health",
		LicenseNumber:  "MD-48211",
		Specialization: "Internal Medicine",
		Active:         true,
	},
	models.RoleNurse: {
		ID:            "usr-nurse-001",
		Email:         "james.okafor@telecheck.health",
		Name:          "James Okafor, RN",
		Role:          models.RoleNurse,
		Organization:  "TeleCheck Health",
		LicenseNumber: "RN-77314",
		Active:        true,
	},
	models.RoleCaregiver: {
		ID:           "usr-caregiver-001",
		Email:        "rosa.alvarez@telecheck.health",
		Name:         "Rosa Alvarez",
		Role:         models.RoleCaregiver,
		Organization: "TeleCheck Health",
		Active:       true,
	},
	models.RolePharmacist: {
		ID:            "usr-pharmacist-001",
		Email:         "daniel.kim@telecheck.health",
		Name:          "Daniel Kim, PharmD",
		Role:          models.RolePharmacist,
		Organization:  "TeleCheck Health",
		LicenseNumber: "RPH-10592",
		Active:        true,
	},
	models.RoleAdmin: {
		ID:           "usr-admin-001",
		Email:        "admin@telecheck.health",
		Name:         "Alex Morgan",
		Role:         models.RoleAdmin,
		Organization: "TeleCheck Health",
		Active:       true,
	},
}

var sampleCredentials = map[string]Credential{
	"maria.santos@telecheck.health": {Email: "maria.santos@telecheck.health", Password: "Patient#2024", Active: true},
	"sarah.chen@telecheck.health":   {Email: "sarah.chen@telecheck.health", Password: "Doctor#2024", Active: true},
	"james.okafor@telecheck.health": {Email: "james.okafor@telecheck.health", Password: "Nurse#2024", Active: true},
	"rosa.alvarez@telecheck.health": {Email: "rosa.alvarez@telecheck.health", Password: "Caregiver#2024", Active: true},
	"daniel.kim@telecheck.health":   {Email: "daniel.kim@telecheck.health", Password: "Pharmacist#2024", Active: true},
	"admin@telecheck.health":        {Email: "admin@telecheck.health", Password: "Admin#2024", Active: true},
	// Retained to exercise the inactive-account failure path.
	"former.staff@telecheck.health": {Email: "former.staff@telecheck.health", Password: "Former#2024", Active: false},
}

// SampleIdentity returns a copy of the canonical identity for a role with
// the role's default permission set expanded.
func SampleIdentity(role models.Role) (*models.Identity, bool) {
	identity, ok := sampleIdentities[role]
	if !ok {
		return nil, false
	}
	cloned := identity
	cloned.Permissions = models.DefaultPermissions(role)
	return &cloned, true
}

// SampleCredentialByEmail looks up the demo credential for an email.
func SampleCredentialByEmail(email string) (Credential, bool) {
	cred, ok := sampleCredentials[email]
	return cred, ok
}

// IdentityByEmail finds the sample identity owning an email.
func IdentityByEmail(email string) (*models.Identity, bool) {
	for role, identity := range sampleIdentities {
		if identity.Email == email {
			return mustSample(role), true
		}
	}
	return nil, false
}

func mustSample(role models.Role) *models.Identity {
	identity, _ := SampleIdentity(role)
	return identity
}
