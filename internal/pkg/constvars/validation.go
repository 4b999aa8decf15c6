package constvars

const ErrDevInvalidInput = "Invalid input"

var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email address",
	"min":      "must be at least %s characters",
	"max":      "must be at most %s characters",
	"oneof":    "must be one of: %s",
	"role":     "must be a recognized role",
}

var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}
