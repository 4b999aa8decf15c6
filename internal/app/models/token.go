package models

// BearerClaims is the payload of a locally synthesized bearer token: base64
// of this struct as JSON. It is an opaque internal handle, not a signed
// credential; expiry is recorded in epoch milliseconds but deliberately not
// enforced here. The signed JWT at the HTTP boundary carries real expiry.
type BearerClaims struct {
	UserID      string   `json:"userId"`
	Email       string   `json:"email"`
	Role        Role     `json:"role"`
	Permissions []string `json:"permissions"`
	Exp         int64    `json:"exp"`
}
