package orchestrator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/goliatone/go-formforge/pkg/schema"
)

// Transformer mutates a parsed schema before code generation. Implementations
// receive a private copy and may relabel fields or adjust required flags.
type Transformer interface {
	Transform(ctx context.Context, s *schema.Schema) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, s *schema.Schema) error

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, s *schema.Schema) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, s)
}

// JSONPresetTransformer applies declarative per-field overrides loaded from a
// JSON document:
//
//	{
//	  "fields": {
//	    "age": {"label": "Age in years", "placeholder": "e.g. 42", "required": false}
//	  }
//	}
type JSONPresetTransformer struct {
	document presetDocument
}

type presetDocument struct {
	Fields map[string]fieldPatch `json:"fields"`
}

type fieldPatch struct {
	Label       string `json:"label"`
	Placeholder string `json:"placeholder"`
	Required    *bool  `json:"required"`
}

// NewJSONPresetTransformer constructs a transformer from raw JSON bytes.
func NewJSONPresetTransformer(data []byte) (*JSONPresetTransformer, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("json preset transformer: document is empty")
	}
	var document presetDocument
	if err := json.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("json preset transformer: parse document: %w", err)
	}
	return &JSONPresetTransformer{document: document}, nil
}

// NewJSONPresetTransformerFromFS loads a JSON preset document from the
// provided filesystem path.
func NewJSONPresetTransformerFromFS(fsys fs.FS, path string) (*JSONPresetTransformer, error) {
	if fsys == nil {
		return nil, errors.New("json preset transformer: filesystem is nil")
	}
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("json preset transformer: path is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("json preset transformer: read %s: %w", path, err)
	}
	return NewJSONPresetTransformer(data)
}

// Transform applies the declarative patches onto the supplied schema. Patches
// naming unknown fields are an error.
func (t *JSONPresetTransformer) Transform(ctx context.Context, s *schema.Schema) error {
	if s == nil {
		return errors.New("json preset transformer: schema is nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	for name, patch := range t.document.Fields {
		field := findField(s.Fields, name)
		if field == nil {
			return fmt.Errorf("json preset transformer: field %q not found", name)
		}
		applyFieldPatch(field, patch)
	}
	return nil
}

func applyFieldPatch(field *schema.Field, patch fieldPatch) {
	if label := strings.TrimSpace(patch.Label); label != "" {
		field.Label = label
	}
	if placeholder := strings.TrimSpace(patch.Placeholder); placeholder != "" {
		field.Placeholder = placeholder
	}
	if patch.Required != nil {
		field.Required = *patch.Required
	}
}

func findField(fields []schema.Field, name string) *schema.Field {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	for idx := range fields {
		if fields[idx].Name == name {
			return &fields[idx]
		}
	}
	return nil
}
