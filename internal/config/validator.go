package config

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/opsdiff/opsdiff/internal/common/errorwrapper"
)

// ValidateConfig performs validation on the GlobalConfig structure.
func ValidateConfig(cfg *GlobalConfig) error {
	validate := validator.New()

	// Register custom validation for log levels
	_ = validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(fl.Field().String()) {
		case "", "debug", "info", "warn", "error", "fatal", "panic":
			return true
		default:
			return false
		}
	})

	// Register custom validation for log formats
	_ = validate.RegisterValidation("logformat", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(fl.Field().String()) {
		case "", "json", "console", "text":
			return true
		default:
			return false
		}
	})

	// Register custom validation for regular expression syntax
	_ = validate.RegisterValidation("regexpsyntax", func(fl validator.FieldLevel) bool {
		_, err := regexp.Compile(fl.Field().String())
		return err == nil
	})

	if err := validate.Struct(cfg); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			first := validationErrors[0]
			return errorwrapper.NewValidationError(first.Namespace(), first.Value(), "failed rule '"+first.Tag()+"'")
		}
		return errorwrapper.WrapError(err, "config validation failed")
	}
	return nil
}
