package catalog

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var configValidator = newConfigValidator()

func newConfigValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Use JSON tag names for field names in errors
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateConfig checks a merged config. Only translations are validated;
// the code may be nil or duplicated.
func validateConfig(cfg OptionGroupConfig) error {
	err := configValidator.Struct(cfg)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		fe := validationErrors[0]
		return NewConfigurationError(fe.Field(), configErrorMessage(fe))
	}
	return err
}

func configErrorMessage(fe validator.FieldError) string {
	switch {
	case fe.Field() == "translations" && fe.Tag() == "min":
		return "There has to be at least one translation"
	case fe.Tag() == "min":
		return "Must contain at least " + fe.Param() + " entries"
	default:
		return "Invalid value"
	}
}
