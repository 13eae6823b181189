// Package testsupport holds helpers shared by package tests: golden file
// handling and schema fixtures.
package testsupport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formforge/pkg/codegen"
	"github.com/goliatone/go-formforge/pkg/schema"
)

// MustParseSchema parses raw and fails the test on any parse error.
func MustParseSchema(t *testing.T, raw string) schema.Schema {
	t.Helper()

	parsed, err := schema.Parse(raw)
	if err != nil {
		t.Fatalf("parse schema: %v", err)
	}
	return parsed
}

// MustLoadSchema reads a JSON form description fixture and parses it.
func MustLoadSchema(t *testing.T, path string) schema.Schema {
	t.Helper()

	parsed, err := LoadSchema(path)
	if err != nil {
		t.Fatalf("load schema: %v", err)
	}
	return parsed
}

// LoadSchema reads and parses a fixture without requiring testing.T.
func LoadSchema(path string) (schema.Schema, error) {
	if path == "" {
		return schema.Schema{}, errors.New("testsupport: schema path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return schema.Schema{}, fmt.Errorf("testsupport: read schema: %w", err)
	}
	parsed, err := schema.Parse(string(data))
	if err != nil {
		return schema.Schema{}, fmt.Errorf("testsupport: parse schema: %w", err)
	}
	return parsed, nil
}

// PersonScenario returns the single required numeric field schema and the
// Person/personForm options used by end-to-end tests.
func PersonScenario(t *testing.T) (schema.Schema, codegen.Options) {
	t.Helper()

	s := MustParseSchema(t, `{"fields":[{"name":"age","type":"number","required":true,"label":"Age"}]}`)
	return s, codegen.Options{ModelName: "Person", FormName: "personForm"}
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// AssertGoldenString compares got with the golden file at path, rewriting the
// golden instead when UPDATE_GOLDENS is set.
func AssertGoldenString(t *testing.T, path, got string) {
	t.Helper()
	if WriteMaybeGolden(t, path, []byte(got)) {
		return
	}
	want := MustReadGoldenString(t, path)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("golden %s mismatch (-want +got):\n%s", path, diff)
	}
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents.
func CaptureOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	return out, buf.String()
}
