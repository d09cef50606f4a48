package preferences

import (
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

const fileSchema = `{
	"type": "object",
	"properties": {
		"reminder_times": {
			"type": "object",
			"additionalProperties": {"type": "integer", "minimum": 0}
		}
	},
	"required": ["reminder_times"]
}`

var (
	compileOnce sync.Once
	compiled    *gojsonschema.Schema
	compileErr  error
)

func schema() (*gojsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiled, compileErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(fileSchema))
	})
	return compiled, compileErr
}

// validate checks raw file contents against fileSchema.
func validate(data []byte) error {
	s, err := schema()
	if err != nil {
		return fmt.Errorf("invalid schema definition: %w", err)
	}

	result, err := s.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("validation execution failed: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var errs []string
	for _, desc := range result.Errors() {
		errs = append(errs, desc.String())
	}
	return fmt.Errorf("schema validation failed:\n- %s", dumpErrors(errs))
}

// dumpErrors keeps the first three messages.
func dumpErrors(errs []string) string {
	if len(errs) > 3 {
		extra := len(errs) - 3
		return strings.Join(errs[:3], "\n- ") + fmt.Sprintf("\n... and %d more", extra)
	}
	return strings.Join(errs, "\n- ")
}
