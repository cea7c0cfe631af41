package domain

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

var domainValidator *validator.Validate

func init() {
	domainValidator = validator.New()
}

// ValidateStruct runs tag-based validation on any request or domain struct.
func ValidateStruct(v interface{}) error {
	return formatValidationErrors(domainValidator.Struct(v))
}

func formatValidationErrors(err error) error {
	if err == nil {
		return nil
	}
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		return fmt.Errorf("validation failed: %w", validationErrs)
	}
	return err
}

// SecuritySanitizer provides HTML sanitization helpers.
type SecuritySanitizer struct {
	policy *bluemonday.Policy
}

func NewSecuritySanitizer() *SecuritySanitizer {
	return &SecuritySanitizer{policy: bluemonday.StrictPolicy()}
}

func (s *SecuritySanitizer) SanitizeString(input string) string {
	return s.policy.Sanitize(input)
}

func (s *SecuritySanitizer) SanitizeStrings(inputs []string) []string {
	result := make([]string, len(inputs))
	for i, input := range inputs {
		result[i] = s.policy.Sanitize(input)
	}
	return result
}
