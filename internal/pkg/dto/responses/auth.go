package responses

import "telecheck-service/internal/app/models"

type Login struct {
	Token    string           `json:"token"`
	Identity *models.Identity `json:"identity"`
}

type SessionSnapshot struct {
	Authenticated bool             `json:"authenticated"`
	Identity      *models.Identity `json:"identity,omitempty"`
}

type SwitchRole struct {
	Identity *models.Identity `json:"identity"`
}
