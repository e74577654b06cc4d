// Package validation wires request validation rules into gin's go-playground validator.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/SscSPs/beers_api/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// CurrencyTag is the struct tag that checks a currency code against the supported set.
const CurrencyTag = "validcurrency"

// RegisterCurrencyValidation registers CurrencyTag on v. The rule follows
// SupportedCurrencySet.IsValid: empty values pass, so pair it with "required" when needed.
func RegisterCurrencyValidation(v *validator.Validate, set domain.SupportedCurrencySet) error {
	return v.RegisterValidation(CurrencyTag, func(fl validator.FieldLevel) bool {
		field := fl.Field()
		if field.Kind() != reflect.String {
			return false
		}
		return set.IsValid(field.String())
	})
}

// RegisterWithGin registers the application's validation rules on gin's default
// binding engine. It must run before the router serves any request.
func RegisterWithGin(set domain.SupportedCurrencySet) error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding engine is not a go-playground validator")
	}
	v.RegisterTagNameFunc(fieldName)
	if err := RegisterCurrencyValidation(v, set); err != nil {
		return fmt.Errorf("registering %s validation: %w", CurrencyTag, err)
	}
	return nil
}

// fieldName reports fields by their json name, or form name for query parameters.
func fieldName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

// FieldErrors converts validator errors into a field -> message map.
// It returns nil when err is not a validation error.
func FieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		name := fe.Field()
		if _, seen := out[name]; seen {
			continue
		}
		out[name] = message(fe)
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be blank"
	case CurrencyTag:
		return fmt.Sprintf("Currency '%v' is not available", fe.Value())
	case "min":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	default:
		return fmt.Sprintf("failed on '%s' validation", fe.Tag())
	}
}
