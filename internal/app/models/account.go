package models

import "time"

// Account is a credentialed record in the account directory, the backing
// store for the directory authenticator. Role is stored as a plain string
// and validated against the closed enumeration when the account is turned
// into a principal.
type Account struct {
	ID             string     `bson:"_id,omitempty"`
	Email          string     `bson:"email"`
	Name           string     `bson:"name"`
	Password       string     `bson:"password"`
	Role           string     `bson:"role"`
	Organization   string     `bson:"organization,omitempty"`
	LicenseNumber  string     `bson:"licenseNumber,omitempty"`
	Specialization string     `bson:"specialization,omitempty"`
	Active         bool       `bson:"active"`
	CreatedAt      time.Time  `bson:"createdAt"`
	UpdatedAt      time.Time  `bson:"updatedAt"`
	DeletedAt      *time.Time `bson:"deletedAt,omitempty"`
}
