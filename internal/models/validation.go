package models

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var noteIDRegex = regexp.MustCompile(`^n_[0-9a-f]{16}$`)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared struct validator with the note tags registered
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
		_ = validate.RegisterValidation("noteid", func(fl validator.FieldLevel) bool {
			return IsValidNoteID(fl.Field().String())
		})
		_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
	})
	return validate
}

// IsValidNoteID reports whether id has the n_<16 lowercase hex> shape
func IsValidNoteID(id string) bool {
	return noteIDRegex.MatchString(id)
}

// formatValidationErrors converts validator output into a ValidationError
// for the first failing field.
func formatValidationErrors(err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return err
	}

	fe := validationErrors[0]
	field := fe.Field()
	var message string
	switch fe.Tag() {
	case "required", "notblank":
		message = field + " is required"
	case "noteid":
		message = "invalid note ID format"
	case "gt":
		message = field + " must be greater than " + fe.Param()
	default:
		message = field + " failed " + fe.Tag() + " validation"
	}

	return &ValidationError{
		Field:   field,
		Message: message,
		Value:   fe.Value(),
	}
}
