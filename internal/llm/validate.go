package llm

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// compiled caches compiled schemas by name. Schemas are process-wide
// constants, so the cache never invalidates.
var compiled sync.Map // map[string]*jsonschema.Schema

// checkSchema validates raw JSON against the schema. A nil schema passes.
// Failures come back as *ErrBadOutput carrying the offending content.
func checkSchema(schema *Schema, raw json.RawMessage) error {
	if schema == nil {
		return nil
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return &ErrBadOutput{Content: raw, Err: fmt.Errorf("not JSON: %w", err)}
	}

	s, err := compileSchema(schema)
	if err != nil {
		return &ErrBadOutput{Content: raw, Err: fmt.Errorf("compile schema %q: %w", schema.Name, err)}
	}

	if err := s.Validate(doc); err != nil {
		return &ErrBadOutput{Content: raw, Err: fmt.Errorf("schema %q: %w", schema.Name, err)}
	}
	return nil
}

func compileSchema(schema *Schema) (*jsonschema.Schema, error) {
	if s, ok := compiled.Load(schema.Name); ok {
		return s.(*jsonschema.Schema), nil
	}

	// The compiler wants a parsed JSON value, not a Go map with arbitrary
	// types. Round-trip through encoding/json to normalize.
	b, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, err
	}
	var def any
	if err := json.Unmarshal(b, &def); err != nil {
		return nil, err
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", schema.Name)
	if err := c.AddResource(url, def); err != nil {
		return nil, err
	}
	s, err := c.Compile(url)
	if err != nil {
		return nil, err
	}

	compiled.Store(schema.Name, s)
	return s, nil
}
