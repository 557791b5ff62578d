package store

import (
	"errors"
	"testing"
)

var namesSchema = &Schema{
	Name: "test-names",
	Definition: map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "string"},
	},
}

func TestDecodeJSON_Valid(t *testing.T) {
	var got []string
	if err := DecodeJSON("k", `["a","b"]`, namesSchema, &got); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("got %v, want [a b]", got)
	}
}

func TestDecodeJSON_InvalidJSON(t *testing.T) {
	var got []string
	err := DecodeJSON("k", `not json`, namesSchema, &got)
	var corrupt *ErrCorrupt
	if !errors.As(err, &corrupt) {
		t.Fatalf("expected ErrCorrupt, got: %T %v", err, err)
	}
	if corrupt.Key != "k" {
		t.Errorf("Key = %q, want %q", corrupt.Key, "k")
	}
}

func TestDecodeJSON_WrongShape(t *testing.T) {
	cases := []string{`{"a":1}`, `"str"`, `[1,2]`, `null`}
	for _, raw := range cases {
		var got []string
		err := DecodeJSON("k", raw, namesSchema, &got)
		var corrupt *ErrCorrupt
		if !errors.As(err, &corrupt) {
			t.Errorf("DecodeJSON(%s): expected ErrCorrupt, got %v", raw, err)
		}
	}
}

func TestDecodeJSON_NoSchema(t *testing.T) {
	var got map[string]int
	if err := DecodeJSON("k", `{"a":1}`, nil, &got); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if got["a"] != 1 {
		t.Errorf("got %v", got)
	}
}

func TestEncodeJSON(t *testing.T) {
	s, err := EncodeJSON([]string{"x"})
	if err != nil {
		t.Fatal(err)
	}
	if s != `["x"]` {
		t.Errorf("EncodeJSON = %s", s)
	}
}
