package requests

type Login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,role"`
}

type SwitchRole struct {
	TargetRole string `json:"target_role" validate:"required"`
}
