package smartlead

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// paramValidate checks operation parameters before any network call is
// made. Field names in messages follow the json tags so they match the
// wire names the upstream documents.
var paramValidate = newParamValidator()

func newParamValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		const maxSplits = 2
		name := strings.SplitN(fld.Tag.Get("json"), ",", maxSplits)[0]

		if name == "-" {
			return ""
		}

		return name
	})

	// enum covers the string enums declared in enums.go.
	_ = v.RegisterValidation("enum", func(fl validator.FieldLevel) bool {
		val, ok := fl.Field().Interface().(interface{ Valid() bool })

		return ok && val.Valid()
	})

	return v
}

type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, err := range v {
		msgs = append(msgs, err.Message)
	}

	return strings.Join(msgs, "; ")
}

func validateParams(params any) error {
	err := paramValidate.Struct(params)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return formatValidationErrors(validationErrs)
	}

	return err
}

func formatValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	validationErrs := make(ValidationErrors, 0, len(errs))

	for _, err := range errs {
		field := err.Field()
		if field == "" {
			field = err.StructField()
		}

		validationErrs = append(validationErrs, ValidationError{
			Field:   field,
			Tag:     err.Tag(),
			Value:   fmt.Sprintf("%v", err.Value()),
			Message: validationMessage(field, err),
		})
	}

	return validationErrs
}

func validationMessage(field string, err validator.FieldError) string {
	param := err.Param()

	switch err.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "url":
		return field + " must be a valid URL"
	case "enum":
		return field + " has a value the service does not accept"
	case "min":
		return fmt.Sprintf("%s must have at least %s elements", field, param)
	case "max":
		return fmt.Sprintf("%s must have at most %s elements", field, param)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, param)
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, param)
	default:
		return fmt.Sprintf("%s failed validation on '%s'", field, err.Tag())
	}
}

// invalidParam reports a failed check on a scalar argument that has no
// struct to hang a validate tag on.
func invalidParam(field, tag, value, message string) ValidationErrors {
	return ValidationErrors{{
		Field:   field,
		Tag:     tag,
		Value:   value,
		Message: message,
	}}
}
