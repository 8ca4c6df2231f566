package core

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"arkadasai/internal/types"
)

// Validator wraps go-playground/validator for request DTO validation at the
// boundary, before any handler logic runs. Failures map to structural
// validation errors (422).
type Validator struct {
	validate *validator.Validate
	logger   *slog.Logger
}

// NewValidator creates a new Validator. The json tag name is reported in
// error details instead of the Go field name so clients see the wire name.
func NewValidator(logger *slog.Logger) *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{
		validate: v,
		logger:   logger,
	}
}

// ValidateStruct validates a request DTO against its validate tags.
// On failure it returns a *types.AppError whose detail names the first
// offending field.
func (v *Validator) ValidateStruct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return types.NewAppError(
			types.ErrCodeValidationFailedField,
			fmt.Sprintf("field '%s' failed validation on '%s'", fe.Field(), fe.Tag()),
			err,
		)
	}

	// InvalidValidationError or similar misuse: a programming error, not
	// client input.
	if v.logger != nil {
		v.logger.Error("validator misuse", "error", err)
	}
	return types.NewAppError(types.ErrCodeInternalUnexpected, "an unexpected error occurred", err)
}
