package catalog

import (
	"github.com/erp/customeroptions/internal/domain/shared"
)

// ErrCodeInvalidConfiguration is the domain error code of a ConfigurationError
const ErrCodeInvalidConfiguration = "INVALID_CONFIGURATION"

// ConfigurationError reports input that cannot be turned into option groups
type ConfigurationError struct {
	*shared.DomainError
	Field string `json:"field"`
}

// NewConfigurationError creates a new ConfigurationError for a field
func NewConfigurationError(field, message string) *ConfigurationError {
	return &ConfigurationError{
		DomainError: shared.NewDomainError(ErrCodeInvalidConfiguration, message),
		Field:       field,
	}
}

// Unwrap exposes the underlying domain error to errors.As
func (e *ConfigurationError) Unwrap() error {
	return e.DomainError
}
