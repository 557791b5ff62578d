package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema describes the expected shape of a persisted JSON value.
type Schema struct {
	Name       string
	Definition map[string]any
}

// schemaCache caches compiled JSON schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// ErrCorrupt wraps every failure of DecodeJSON: the stored text is not JSON,
// or it does not match the schema.
type ErrCorrupt struct {
	Key string
	Err error
}

func (e *ErrCorrupt) Error() string {
	return fmt.Sprintf("corrupt value for %q: %v", e.Key, e.Err)
}

func (e *ErrCorrupt) Unwrap() error {
	return e.Err
}

// DecodeJSON validates raw against schema and unmarshals it into v.
func DecodeJSON(key, raw string, schema *Schema, v any) error {
	var parsed any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return &ErrCorrupt{Key: key, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	if schema != nil {
		compiled, err := compiledSchema(schema)
		if err != nil {
			return fmt.Errorf("compile schema %q: %w", schema.Name, err)
		}
		if err := compiled.Validate(parsed); err != nil {
			return &ErrCorrupt{Key: key, Err: fmt.Errorf("schema validation failed: %w", err)}
		}
	}

	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return &ErrCorrupt{Key: key, Err: err}
	}
	return nil
}

// EncodeJSON marshals v for storage.
func EncodeJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// compiledSchema returns a cached compiled schema or compiles and caches it.
func compiledSchema(schema *Schema) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(schema.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The jsonschema library expects a parsed JSON value (any), not Go maps
	// with typed slices, so round-trip the definition through JSON.
	defBytes, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", schema.Name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(schema.Name, compiled)
	return compiled, nil
}
