// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"reflect"
	"regexp"
	"sort"
	"strings"

	domainerrors "campus/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/pkg/errors"
)

// phonePattern accepts digits, spaces, '+', '-', '(' and ')'.
var phonePattern = regexp.MustCompile(`^[+0-9 ()\-]{5,32}$`)

// FieldErrors maps a JSON field name to a readable validation message.
// It is a domainerrors.AppError reporting VALIDATION_FAILED.
type FieldErrors map[string]string

var _ domainerrors.AppError = FieldErrors(nil)

// Error implements the error interface with a stable, sorted rendering.
func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for field := range fe {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+fe[field])
	}

	return strings.Join(parts, "; ")
}

func (fe FieldErrors) HTTPCode() int     { return domainerrors.ErrValidationFailed.HTTPCode() }
func (fe FieldErrors) ErrorCode() string { return domainerrors.ErrValidationFailed.ErrorCode() }
func (fe FieldErrors) Message() string   { return domainerrors.ErrValidationFailed.Message() }
func (fe FieldErrors) Details() string   { return fe.Error() }

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New returns a validator that reports fields by their JSON names and knows the
// "notblank" and "phone" tags.
func New() *CustomValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}

		return name
	})
	// Registration only fails for an empty tag or nil func.
	_ = validate.RegisterValidation("notblank", validators.NotBlank)
	_ = validate.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})

	return &CustomValidator{validate: validate}
}

// Validate checks i against its struct tags. Failures are returned as FieldErrors.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return errors.WithStack(err)
	}

	fieldErrs := make(FieldErrors, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fieldErrs[fieldErr.Field()] = describe(fieldErr)
	}

	return fieldErrs
}

func describe(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required", "notblank":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "max":
		return "must be at most " + fieldErr.Param() + " characters"
	case "min":
		return "must be at least " + fieldErr.Param() + " characters"
	case "phone":
		return "must be 5 to 32 characters of digits, spaces, '+', '-', '(' or ')'"
	case "uuid":
		return "must be a UUID"
	case "datetime":
		return "must be an RFC 3339 timestamp"
	default:
		return "failed " + fieldErr.Tag() + " validation"
	}
}
