package services

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const submissionSchema = `{
  "type": "object",
  "required": ["name", "email", "phone"],
  "properties": {
    "name":  {"type": "string", "minLength": 1},
    "email": {"type": "string", "format": "email"},
    "phone": {"type": "string", "minLength": 1},
    "linkedIn": {"type": ["string", "null"]},
    "webTechnologies":   {"type": ["array", "null"], "items": {"type": "string"}},
    "backendFrameworks": {"type": ["array", "null"], "items": {"type": "string"}},
    "canBuildCRUD":     {"type": ["string", "null"]},
    "canImplementAuth": {"type": ["string", "null"]},
    "knowsGolang":      {"type": ["string", "null"]},
    "hasDeployed":      {"type": ["string", "null"]},
    "canBuildAuthAPI":  {"type": ["string", "null"]}
  }
}`

var submissionSchemaLoader = gojsonschema.NewStringLoader(submissionSchema)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError reports every payload field that failed validation.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return "invalid submission: " + strings.Join(parts, "; ")
}

// ValidateSubmission checks the raw JSON body against the submission schema.
func ValidateSubmission(raw []byte) error {
	result, err := gojsonschema.Validate(submissionSchemaLoader, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return &ValidationError{Fields: []FieldError{{Field: "body", Message: "must be a valid JSON object"}}}
	}

	if result.Valid() {
		return nil
	}

	fields := make([]FieldError, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		fields = append(fields, FieldError{
			Field:   schemaErrorField(desc),
			Message: desc.Description(),
		})
	}
	return &ValidationError{Fields: fields}
}

func schemaErrorField(desc gojsonschema.ResultError) string {
	if desc.Type() == "required" {
		if property, ok := desc.Details()["property"]; ok {
			return fmt.Sprint(property)
		}
	}
	if desc.Field() == gojsonschema.STRING_CONTEXT_ROOT {
		return "body"
	}
	return desc.Field()
}

// isBareAddress reports whether email is a plain addr-spec. The schema's
// email format also accepts "Name <addr>" forms, which cannot be used as an
// SMTP recipient.
func isBareAddress(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Name == "" && addr.Address == email
}
