package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

var testSchema = &Schema{
	Name:        "test-shape",
	Description: "test schema",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"sentence": map[string]any{"type": "string"},
			"level":    map[string]any{"type": "integer", "minimum": 1, "maximum": 3},
		},
		"required":             []any{"sentence", "level"},
		"additionalProperties": false,
	},
}

func TestCheckSchema_Valid(t *testing.T) {
	raw := json.RawMessage(`{"sentence": "문장", "level": 2}`)
	if err := checkSchema(testSchema, raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCheckSchema_NilSchemaPasses(t *testing.T) {
	if err := checkSchema(nil, json.RawMessage(`not even json`)); err != nil {
		t.Fatalf("nil schema should pass: %v", err)
	}
}

func TestCheckSchema_NotJSON(t *testing.T) {
	err := checkSchema(testSchema, json.RawMessage(`죄송하지만 JSON이 아닙니다`))
	var bad *ErrBadOutput
	if !errors.As(err, &bad) {
		t.Fatalf("expected *ErrBadOutput, got %v", err)
	}
}

func TestCheckSchema_ViolatesSchema(t *testing.T) {
	cases := []string{
		`{"sentence": "문장"}`,
		`{"sentence": "문장", "level": 9}`,
		`{"sentence": "문장", "level": 2, "extra": true}`,
	}
	for _, c := range cases {
		err := checkSchema(testSchema, json.RawMessage(c))
		var bad *ErrBadOutput
		if !errors.As(err, &bad) {
			t.Errorf("case %s: expected *ErrBadOutput, got %v", c, err)
		}
	}
}

func TestCheckSchema_CacheReuse(t *testing.T) {
	raw := json.RawMessage(`{"sentence": "문장", "level": 1}`)
	for range 3 {
		if err := checkSchema(testSchema, raw); err != nil {
			t.Fatalf("unexpected error on cached validation: %v", err)
		}
	}
}
