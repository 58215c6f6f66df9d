// Package validate wraps go-playground/validator so handlers can turn a
// failed struct validation into a per-field error map.  Field errors are
// attached to the JSON field name, not the Go field name, so the response
// maps directly onto form inputs.
package validate

import (
    "reflect"
    "strings"

    "github.com/go-playground/validator/v10"
)

var v = newValidator()

func newValidator() *validator.Validate {
    val := validator.New()
    // Report errors under the json tag name so clients can attach them to
    // the right form field.
    val.RegisterTagNameFunc(func(fld reflect.StructField) string {
        name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
        if name == "-" {
            return ""
        }
        return name
    })
    return val
}

// Struct validates s and returns a map of field name to human-readable
// message.  A nil map means the value passed validation.
func Struct(s any) map[string]string {
    err := v.Struct(s)
    if err == nil {
        return nil
    }
    ve, ok := err.(validator.ValidationErrors)
    if !ok {
        return map[string]string{"_": "invalid input"}
    }
    fields := make(map[string]string, len(ve))
    for _, fe := range ve {
        fields[fe.Field()] = message(fe)
    }
    return fields
}

// message renders a short message for the common tags used by the portal's
// forms.  Unknown tags fall back to the tag name itself.
func message(fe validator.FieldError) string {
    switch fe.Tag() {
    case "required":
        return fe.Field() + " is required"
    case "email":
        return "must be a valid email address"
    case "min":
        return "must be at least " + fe.Param() + " characters"
    case "max":
        return "must be at most " + fe.Param() + " characters"
    case "oneof":
        return "must be one of: " + fe.Param()
    case "gte":
        return "must be at least " + fe.Param()
    }
    return fe.Tag()
}
