// Package validation is the schema layer every admin write passes
// through before persistence: field presence, format constraints, and
// form-value coercion. Expected failures come back as a structured
// ValidationError, never as a raised fault.
package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/robokitlab/catalog-api/pkg/apperror"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their json name so admin forms can match them.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return len(s) >= 2 && slugPattern.MatchString(s)
	})

	return v
}

// Struct validates an input against its validate tags.
func Struct(input interface{}) *apperror.ValidationError {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	fields := map[string]string{}
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range validationErrors {
			fields[fe.Field()] = fieldErrorMessage(fe)
		}
	} else {
		fields["input"] = err.Error()
	}

	return apperror.NewValidation(fields)
}

func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "slug":
		return "use lowercase letters, numbers, and hyphens only (min 2 characters)"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "uuid":
		return "must be a valid id"
	default:
		return "is invalid"
	}
}

// BoolFromForm coerces a form value into a boolean. Only the literal
// string "true" is true; anything else, including absence, is false.
func BoolFromForm(value string) bool {
	return value == "true"
}

// IntFromForm coerces a numeric form value. Empty input yields nil.
func IntFromForm(value string) (*int, error) {
	if value == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return nil, fmt.Errorf("not a number: %q", value)
	}
	return &n, nil
}

// IsSlug reports whether s satisfies the slug invariant.
func IsSlug(s string) bool {
	return len(s) >= 2 && slugPattern.MatchString(s)
}
