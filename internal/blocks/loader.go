package blocks

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/rs/zerolog/log"
)

var (
	// ErrRead marks failures to read the input file.
	ErrRead = errors.New("read input")
	// ErrParse marks input that is not a valid time block document.
	ErrParse = errors.New("parse input")
)

// Schema returns the JSON Schema every input document must satisfy.
// Unknown properties are tolerated so newer producers can add fields.
func Schema() *jsonschema.Schema {
	zero, week := 0.0, float64(MaxDuration)
	// A schema may appear only once in the tree, so each use gets its own.
	optionalString := func() *jsonschema.Schema {
		return &jsonschema.Schema{Types: []string{"null", "string"}}
	}

	return &jsonschema.Schema{
		Type: "array",
		Items: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"id":         {Type: "integer"},
				"title":      {Type: "string"},
				"duration":   {Type: "integer", Minimum: &zero, Maximum: &week},
				"created_at": {Type: "string"},
				"status":     {Type: "string"},
				"priority":   optionalString(),
				"category":   optionalString(),
				"tags": {
					Types: []string{"null", "array"},
					Items: &jsonschema.Schema{Type: "string"},
				},
			},
			Required: []string{"id", "title", "duration", "created_at", "status"},
		},
	}
}

// Load reads and parses the time block document at path.
func Load(path string) ([]TimeBlock, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrRead, path, err)
	}

	log.Debug().Str("path", path).Int("bytes", len(data)).Msg("Input file read")

	return Parse(data)
}

// Parse validates raw JSON against Schema and decodes it into time blocks,
// preserving input order.
func Parse(data []byte) ([]TimeBlock, error) {
	var instance any
	if err := json.Unmarshal(data, &instance); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	resolved, err := Schema().Resolve(nil)
	if err != nil {
		return nil, fmt.Errorf("resolve input schema: %w", err)
	}
	if err := resolved.Validate(instance); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	var blocks []TimeBlock
	if err := json.Unmarshal(data, &blocks); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if blocks == nil {
		blocks = []TimeBlock{}
	}

	return blocks, nil
}
