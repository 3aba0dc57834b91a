package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"sitegen_server/internal/types"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report JSON names rather than Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// buildRequestTypes only checks JSON types. Presence and allowed values are
// left to the struct tags so both kinds of violation come back together.
// null is accepted wherever the decoder would leave the zero value.
const buildRequestTypes = `{
  "type": "object",
  "properties": {
    "intent": {"type": ["string", "null"]},
    "framework": {"type": ["string", "null"]},
    "theme": {
      "type": ["object", "null"],
      "properties": {
        "primary": {"type": ["string", "null"]},
        "secondary": {"type": ["string", "null"]},
        "font": {"type": ["string", "null"]},
        "darkMode": {"type": ["boolean", "null"]}
      }
    },
    "sections": {"type": ["array", "null"], "items": {"type": "string"}},
    "language": {"type": ["string", "null"]},
    "brand": {
      "type": ["object", "null"],
      "properties": {
        "name": {"type": ["string", "null"]},
        "tone": {"type": ["string", "null"]}
      }
    }
  }
}`

var requestTypeSchema = mustSchema(buildRequestTypes)

// ValidateBuildRequest decodes and validates a raw build request body.
// The returned request is exactly what was sent; nothing is coerced.
func ValidateBuildRequest(raw []byte) (*types.BuildRequest, error) {
	verr := &ValidationError{}
	if err := validateDocument(requestTypeSchema, raw); err != nil {
		var typed *ValidationError
		if !errors.As(err, &typed) || typed.Has("body") {
			return nil, err
		}
		verr.Fields = append(verr.Fields, typed.Fields...)
	}

	var req types.BuildRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		// The decoder keeps going past type mismatches and fills every other
		// field. The type schema has normally recorded them already.
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return nil, &ValidationError{Fields: []FieldError{{Field: "body", Message: "malformed JSON: " + err.Error()}}}
		}
		if len(verr.Fields) == 0 && typeErr.Field != "" {
			verr.add(typeErr.Field, fmt.Sprintf("must be of type %s", jsonKind(typeErr.Type)))
		}
	}

	if err := validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return nil, fmt.Errorf("validate build request: %w", err)
		}
		for _, fe := range fieldErrs {
			path := fieldPath(fe.Namespace())
			// A field with the wrong type decodes to its zero value; report
			// the type, not the knock-on "is required".
			if verr.covers(path) {
				continue
			}
			verr.add(path, fieldMessage(fe))
		}
	}
	if err := verr.orNil(); err != nil {
		return nil, err
	}
	return &req, nil
}

// fieldPath strips the root struct name from a validator namespace:
// "BuildRequest.theme.primary" -> "theme.primary".
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at least %s item(s)", fe.Param())
		}
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}

func jsonKind(t reflect.Type) string {
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Struct, reflect.Map:
		return "object"
	case reflect.Ptr:
		return jsonKind(t.Elem())
	default:
		return "number"
	}
}
