package validator

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/locales/es"
	ut "github.com/go-playground/universal-translator"
	govalidator "github.com/go-playground/validator/v10"
	es_translations "github.com/go-playground/validator/v10/translations/es"

	"github.com/edusga/sga-admin/internal/api"
)

var (
	validate *govalidator.Validate
	trans    ut.Translator
)

// Setup registers the validator with Spanish translations.
// Call once during application startup.
func Setup() {
	validate = govalidator.New(govalidator.WithRequiredStructEnabled())

	// Use JSON tag name for field names in error messages, so they match
	// what the backend would report for the same field.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	esLocale := es.New()
	uni := ut.New(esLocale, esLocale)
	trans, _ = uni.GetTranslator("es")
	_ = es_translations.RegisterDefaultTranslations(validate, trans)
}

// Struct validates v and returns a map of field name → message, or nil
// when v is valid.
func Struct(v any) map[string]string {
	if validate == nil {
		Setup()
	}
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	fields := make(map[string]string)
	var ve govalidator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			fields[fe.Field()] = fe.Translate(trans)
		}
		return fields
	}
	fields["detail"] = err.Error()
	return fields
}

// Check validates v and wraps any field failures into the normalized
// error shape. These errors never reach the backend.
func Check(v any) error {
	if fields := Struct(v); fields != nil {
		return api.NewValidationError(fields)
	}
	return nil
}
