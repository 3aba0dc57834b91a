package schema

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"sitegen_server/internal/types"
)

// sitePlanSchema fixes the structure of a plan. props and colors stay open.
const sitePlanSchema = `{
  "type": "object",
  "required": ["meta", "assets", "sections", "style"],
  "properties": {
    "meta": {
      "type": "object",
      "required": ["title", "description", "lang"],
      "properties": {
        "title": {"type": "string"},
        "description": {"type": "string"},
        "lang": {"type": "string"}
      }
    },
    "assets": {
      "type": "object",
      "required": ["images"],
      "properties": {
        "images": {
          "type": "array",
          "items": {
            "type": "object",
            "required": ["id"],
            "properties": {
              "id": {"type": "string"},
              "prompt": {"type": ["string", "null"]},
              "url": {"type": ["string", "null"]}
            }
          }
        }
      }
    },
    "sections": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "type"],
        "properties": {
          "id": {"type": "string"},
          "type": {"type": "string"},
          "props": {"type": ["object", "null"]}
        }
      }
    },
    "style": {
      "type": "object",
      "required": ["colors"],
      "properties": {
        "colors": {"type": "object", "additionalProperties": {"type": "string"}},
        "font": {"type": ["string", "null"]}
      }
    }
  }
}`

var planSchema = mustSchema(sitePlanSchema)

func mustSchema(src string) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(fmt.Sprintf("schema: invalid embedded JSON schema: %v", err))
	}
	return s
}

// ValidateSitePlan checks the raw plan document structurally and decodes it.
// Section types are not checked against any enumeration.
func ValidateSitePlan(raw []byte) (*types.SitePlan, error) {
	if err := validateDocument(planSchema, raw); err != nil {
		return nil, err
	}
	var plan types.SitePlan
	if err := json.Unmarshal(raw, &plan); err != nil {
		return nil, &ValidationError{Fields: []FieldError{{Field: "body", Message: err.Error()}}}
	}
	return &plan, nil
}

func validateDocument(s *gojsonschema.Schema, raw []byte) error {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return &ValidationError{Fields: []FieldError{{Field: "body", Message: "document is empty"}}}
	}
	result, err := s.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		// gojsonschema fails before validating when the document is not JSON.
		return &ValidationError{Fields: []FieldError{{Field: "body", Message: "malformed JSON: " + err.Error()}}}
	}
	if result.Valid() {
		return nil
	}
	verr := &ValidationError{}
	for _, desc := range result.Errors() {
		verr.add(resultField(desc), desc.Description())
	}
	return verr
}

// resultField converts gojsonschema contexts ("sections.0.id") to JSON paths
// ("sections[0].id"). Required-property errors point at the missing child.
func resultField(desc gojsonschema.ResultError) string {
	field := desc.Field()
	if desc.Type() == "required" {
		if prop, ok := desc.Details()["property"].(string); ok {
			if field == "(root)" {
				field = prop
			} else {
				field = field + "." + prop
			}
		}
	}
	if field == "(root)" {
		return "body"
	}

	var b strings.Builder
	for i, seg := range strings.Split(field, ".") {
		if _, err := strconv.Atoi(seg); err == nil {
			b.WriteString("[" + seg + "]")
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(seg)
	}
	return b.String()
}
