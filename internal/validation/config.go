package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// ErrConfigInvalid flags a configuration document that failed schema
// validation before any field mapping happened.
var ErrConfigInvalid = errors.New("i18n config: document failed validation")

// configSchema is the JSON schema every project configuration document must
// satisfy. It is compiled once per validation call; documents are small.
var configSchema = map[string]any{
	"$schema":              "https://json-schema.org/draft/2020-12/schema",
	"type":                 "object",
	"additionalProperties": false,
	"required":             []any{"locales"},
	"properties": map[string]any{
		"locales": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items":    map[string]any{"type": "string", "minLength": 1},
		},
		"namespaces": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string", "minLength": 1},
		},
		"locales_dir": map[string]any{"type": "string", "minLength": 1},
		"format":      map[string]any{"enum": []any{"json", "yaml"}},
		"generator": map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties": map[string]any{
				"enabled":      map[string]any{"type": "boolean"},
				"output_path":  map[string]any{"type": "string", "minLength": 1},
				"package_name": map[string]any{"type": "string", "minLength": 1},
				"manifest":     map[string]any{"type": "boolean"},
			},
		},
		"logging": map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties": map[string]any{
				"enabled":    map[string]any{"type": "boolean"},
				"level":      map[string]any{"type": "string"},
				"format":     map[string]any{"type": "string"},
				"add_source": map[string]any{"type": "boolean"},
			},
		},
	},
}

// ValidationIssue captures a single validation failure.
type ValidationIssue struct {
	Location string
	Message  string
}

// ConfigValidationError surfaces validation issues with document-aware
// context.
type ConfigValidationError struct {
	Issues []ValidationIssue
	Cause  error
}

func (e *ConfigValidationError) Error() string {
	if len(e.Issues) == 0 {
		if e.Cause != nil {
			return e.Cause.Error()
		}
		return ErrConfigInvalid.Error()
	}
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		location := strings.TrimSpace(issue.Location)
		if location == "" {
			location = "#"
		} else if !strings.HasPrefix(location, "#") {
			location = "#" + location
		}
		if issue.Message == "" {
			parts = append(parts, location)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", location, issue.Message))
	}
	return fmt.Sprintf("%s: %s", ErrConfigInvalid.Error(), strings.Join(parts, "; "))
}

func (e *ConfigValidationError) Unwrap() error {
	return ErrConfigInvalid
}

// Issues extracts validation issues from an error.
func Issues(err error) []ValidationIssue {
	if err == nil {
		return nil
	}
	var configErr *ConfigValidationError
	if errors.As(err, &configErr) && configErr != nil {
		return configErr.Issues
	}
	var validationErr *jsonschema.ValidationError
	if errors.As(err, &validationErr) && validationErr != nil {
		return collectValidationIssues(validationErr)
	}
	return []ValidationIssue{{Message: err.Error()}}
}

// ValidateConfigDocument validates a decoded configuration document against
// the embedded schema. The document is normalized through a JSON round trip
// so YAML-decoded values share the JSON type system the validator expects.
func ValidateConfigDocument(doc map[string]any) error {
	if doc == nil {
		doc = map[string]any{}
	}

	normalized, err := normalizeDocument(doc)
	if err != nil {
		return &ConfigValidationError{Cause: err}
	}

	compiled, err := compileSchema(configSchema)
	if err != nil {
		return &ConfigValidationError{Cause: err}
	}

	if err := compiled.Validate(normalized); err != nil {
		return &ConfigValidationError{
			Issues: Issues(err),
			Cause:  err,
		}
	}
	return nil
}

func normalizeDocument(doc map[string]any) (any, error) {
	encoded, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var normalized any
	if err := json.Unmarshal(encoded, &normalized); err != nil {
		return nil, err
	}
	return normalized, nil
}

func compileSchema(schema map[string]any) (*jsonschema.Schema, error) {
	encoded, err := json.Marshal(schema)
	if err != nil {
		return nil, err
	}
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("config.json", bytes.NewReader(encoded)); err != nil {
		return nil, err
	}
	return compiler.Compile("config.json")
}

func collectValidationIssues(err *jsonschema.ValidationError) []ValidationIssue {
	if err == nil {
		return nil
	}
	issues := []ValidationIssue{}
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if node == nil {
			return
		}
		if len(node.Causes) == 0 {
			issues = append(issues, ValidationIssue{
				Location: strings.TrimSpace(node.InstanceLocation),
				Message:  strings.TrimSpace(node.Message),
			})
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(err)
	return issues
}
