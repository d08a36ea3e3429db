package service

import (
	"errors"
	"fmt"

	apperrors "hackathon-portal-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

// validateStruct runs the request through the validator and converts
// failures into the shared validation error type, so the route boundary
// maps them to HTTP 400 like every other input error.
func validateStruct(v *validator.Validate, req interface{}) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
		fe := fieldErrors[0]
		return apperrors.NewValidationError(fe.Field(), fmt.Sprintf("failed on the %s rule", fe.Tag()))
	}
	return apperrors.NewValidationError("", err.Error())
}
