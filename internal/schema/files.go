package schema

import (
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"sitegen_server/internal/types"
)

const generatedFilesSchema = `{
  "type": "object",
  "required": ["files"],
  "properties": {
    "files": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["path", "content"],
        "properties": {
          "path": {"type": "string", "minLength": 1},
          "content": {"type": "string"}
        }
      }
    }
  }
}`

var filesSchema = mustSchema(generatedFilesSchema)

// ValidateGeneratedFiles checks an export request body. Every entry needs a
// non-empty relative path and string content.
func ValidateGeneratedFiles(raw []byte) (*types.GeneratedFiles, error) {
	if err := validateDocument(filesSchema, raw); err != nil {
		return nil, err
	}
	var files types.GeneratedFiles
	if err := json.Unmarshal(raw, &files); err != nil {
		return nil, &ValidationError{Fields: []FieldError{{Field: "body", Message: err.Error()}}}
	}

	verr := &ValidationError{}
	for i, f := range files.Files {
		if msg := checkRelativePath(f.Path); msg != "" {
			verr.add(fmt.Sprintf("files[%d].path", i), msg)
		}
	}
	if err := verr.orNil(); err != nil {
		return nil, err
	}
	return &files, nil
}

func checkRelativePath(p string) string {
	if strings.TrimSpace(p) == "" {
		return "must not be blank"
	}
	slashed := strings.ReplaceAll(p, `\`, "/")
	if path.IsAbs(slashed) || (len(slashed) > 1 && slashed[1] == ':') {
		return "must be a relative path"
	}
	for _, seg := range strings.Split(slashed, "/") {
		if seg == ".." {
			return "must not contain '..' segments"
		}
	}
	return ""
}
