package service

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"go-blog-api/pkg/apierror"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func validationError(message string, field string) error {
	return apierror.New("VALIDATION_ERROR", message, field, http.StatusBadRequest)
}

// checkStruct runs validator tags over a request DTO and converts the first
// failure into a client-facing validation error.
func checkStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return validationError("invalid request body", "")
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return validationError(fmt.Sprintf("%s is required", fe.Field()), fe.Field())
	case "email":
		return validationError("email must be a valid email address", fe.Field())
	case "min":
		return validationError(fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param()), fe.Field())
	case "max":
		return validationError(fmt.Sprintf("%s must not exceed %s characters", fe.Field(), fe.Param()), fe.Field())
	case "url":
		return validationError(fmt.Sprintf("%s must be a valid URL", fe.Field()), fe.Field())
	default:
		return validationError(fmt.Sprintf("%s is invalid", fe.Field()), fe.Field())
	}
}
