package validation

import (
	"strings"

	"go-resume-backend/internal/domain"

	"github.com/go-playground/validator/v10"
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("resume_status", ResumeStatus)
	_ = v.RegisterValidation("not_blank", NotBlank)
}

// New returns a validator with the custom tags already registered
func New() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// ResumeStatus validates that a string is one of the workflow statuses.
// Empty passes; combine with required.
func ResumeStatus(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return domain.IsValidResumeStatus(val)
}

// NotBlank rejects strings made only of whitespace
func NotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
