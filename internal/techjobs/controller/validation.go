package controller

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	e "github.com/gartstein/techjobs/internal/techjobs/errors"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateEntity checks the declarative constraints on a record and returns
// them as e.FieldErrors keyed by form field.
func validateEntity(entity interface{}) error {
	err := validate.Struct(entity)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", e.ErrInvalidInput, err)
	}

	fields := e.FieldErrors{}
	for _, fe := range verrs {
		field := fe.Field()
		if _, seen := fields[field]; seen {
			continue
		}
		fields[field] = constraintMessage(fe)
	}
	return fields
}

func constraintMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "notblank":
		return fmt.Sprintf("%s can not be blank", fe.Field())
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// merge copies src into dst without overwriting messages already present.
func merge(dst e.FieldErrors, err error) error {
	if err == nil {
		return nil
	}
	var src e.FieldErrors
	if !errors.As(err, &src) {
		return err
	}
	for field, msg := range src {
		if _, ok := dst[field]; !ok {
			dst[field] = msg
		}
	}
	return nil
}
