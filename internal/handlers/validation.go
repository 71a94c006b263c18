package handlers

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	pkghttp "github.com/mahin-rahman/greenbasket/pkg/http"
)

// Global validator instance, reused across all handlers. Field names in
// validation errors follow the json tags.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// ValidateRequest validates a request DTO and collects every failed
// constraint, not just the first one.
func ValidateRequest(req interface{}) []pkghttp.FieldError {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return []pkghttp.FieldError{{Field: "request", Message: "invalid request"}}
	}

	fields := make([]pkghttp.FieldError, 0, len(ve))
	for _, fe := range ve {
		fields = append(fields, pkghttp.FieldError{
			Field:   fe.Field(),
			Message: formatValidationError(fe),
		})
	}

	return fields
}

// formatValidationError converts a validator FieldError to a user-friendly message
func formatValidationError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must have a minimum of %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must have a maximum of %s characters", fe.Param())
	case "len":
		return fmt.Sprintf("must be exactly %s characters", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "datetime":
		return "must match format YYYY-MM-DD HH:MM:SS"
	case "url":
		return "must be a valid URL"
	default:
		return fmt.Sprintf("failed validation: %s", fe.Tag())
	}
}
