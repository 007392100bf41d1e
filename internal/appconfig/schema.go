package appconfig

import (
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Schema is the JSON schema a configuration file must satisfy.
func Schema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"debug":     map[string]any{"type": "boolean"},
			"logFile":   map[string]any{"type": "string"},
			"outputDir": map[string]any{"type": "string"},
			"format": map[string]any{
				"type": "string",
				"enum": []string{"eps", "svg", "pdf", "png"},
			},
			"width":         map[string]any{"type": "number", "minimum": 0},
			"height":        map[string]any{"type": "number", "minimum": 0},
			"priority":      map[string]any{"type": "string"},
			"minSeparation": map[string]any{"type": "number", "minimum": 0},
			"maxIterations": map[string]any{"type": "integer", "minimum": 0},
			"labels": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
	}
}

// Validate checks a raw JSON configuration document against Schema.
func Validate(document []byte) error {
	result, err := gojsonschema.Validate(gojsonschema.NewGoLoader(Schema()), gojsonschema.NewBytesLoader(document))
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var errs []string
	for _, desc := range result.Errors() {
		errs = append(errs, desc.String())
	}
	return fmt.Errorf("config validation failed: %s", strings.Join(errs, ", "))
}

// ValidateFile reads path and validates it.
func ValidateFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read config file %q: %w", path, err)
	}
	if err := Validate(data); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
