package utils

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func InitValidator() {
	Validate = validator.New()
	Validate.RegisterValidation("daykey", ValidateDayKeyRule)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("daykey", ValidateDayKeyRule)
	}
}

// ValidateDayKeyRule enforces the canonical YYYY-MM-DD day key format on
// bound request fields.
func ValidateDayKeyRule(fl validator.FieldLevel) bool {
	return IsValidDayKey(fl.Field().String())
}
