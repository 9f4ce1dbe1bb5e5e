package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var ErrInvalidMutation = errors.New("invalid mutation")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report wire names instead of Go field names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return strings.ToLower(f.Name)
		}
		return name
	})

	// A Ref validates as its string form so "required" rejects the zero Ref.
	v.RegisterCustomTypeFunc(func(fv reflect.Value) any {
		if r, ok := fv.Interface().(Ref); ok {
			return r.String()
		}
		return nil
	}, Ref{})

	return v
}

// Validate checks a mutation's struct tags before it is turned into a command.
func Validate(m Mutation) error {
	if d, ok := m.(Delete); ok && !d.Kind.Valid() {
		return fmt.Errorf("%w: delete: %w: %q", ErrInvalidMutation, ErrUnknownKind, string(d.Kind))
	}

	if err := validate.Struct(m); err != nil {
		return fmt.Errorf("%w: %s: %s", ErrInvalidMutation, CommandVerb(m), formatValidationError(err))
	}
	return nil
}

func formatValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, formatFieldError(e))
	}
	return strings.Join(msgs, "; ")
}

func formatFieldError(e validator.FieldError) string {
	field := e.Field()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
