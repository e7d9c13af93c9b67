// Package validators holds the custom go-playground validation tags used by
// request payloads and turns validation failures into field messages.
package validators

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// NotBlank validates that a string field holds at least one non whitespace character.
func NotBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	return strings.TrimSpace(field.String()) != ""
}

// New returns a validator reporting fields by their JSON names, with the
// custom tags of this package registered.
func New() (*validator.Validate, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})

	if err := validate.RegisterValidation("notblank", NotBlank); err != nil {
		return nil, fmt.Errorf("failed to register custom validator: %w", err)
	}
	return validate, nil
}

// FieldMessages maps "<field>.<tag>" to the message reported for that violation.
type FieldMessages map[string]string

// Violations is the result of validating a payload: one message per field
// plus the message that sorts first, which is used as the summary.
type Violations struct {
	Message string
	Details map[string]string
}

func (v *Violations) Error() string {
	return v.Message
}

// Collect converts validator errors into Violations. Errors that are not
// validation errors are returned unchanged.
func Collect(err error, messages FieldMessages) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	details := make(map[string]string, len(validationErrors))
	all := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		msg, ok := messages[fieldErr.Field()+"."+fieldErr.Tag()]
		if !ok {
			msg = fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag())
		}
		if _, seen := details[fieldErr.Field()]; !seen {
			details[fieldErr.Field()] = msg
		}
		all = append(all, msg)
	}

	sort.Strings(all)
	return &Violations{Message: all[0], Details: details}
}
