package source

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formforge/pkg/schema"
)

// Document wraps a raw payload and its origin.
type Document struct {
	source Source
	format Format
	raw    []byte
}

// NewDocument constructs a Document. Empty payloads are allowed so that blank
// input reaches schema.Parse and is reported as EMPTY_INPUT.
func NewDocument(src Source, format Format, raw []byte) (Document, error) {
	if src == nil {
		return Document{}, errors.New("source: source is required")
	}
	if format == "" {
		format = FormatJSON
	}
	return Document{source: src, format: format, raw: append([]byte(nil), raw...)}, nil
}

// Source returns the origin metadata for the document.
func (d Document) Source() Source { return d.source }

// Format returns the document notation.
func (d Document) Format() Format { return d.format }

// Raw returns a copy of the payload.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}

// Text returns the document as JSON text ready for schema.Parse. YAML
// syntax errors are reported as INVALID_JSON parse errors.
func (d Document) Text() (string, error) {
	if d.format != FormatYAML || len(bytes.TrimSpace(d.raw)) == 0 {
		return string(d.raw), nil
	}
	text, err := yamlToJSON(d.raw)
	if err != nil {
		return "", &schema.ParseError{
			Code:    schema.CodeInvalidJSON,
			Message: "invalid YAML: " + err.Error(),
			Cause:   err,
		}
	}
	return text, nil
}

// Parse converts the document into a validated schema.
func (d Document) Parse() (schema.Schema, error) {
	text, err := d.Text()
	if err != nil {
		return schema.Schema{}, err
	}
	return schema.Parse(text)
}

func yamlToJSON(raw []byte) (string, error) {
	var value any
	if err := yaml.Unmarshal(raw, &value); err != nil {
		return "", err
	}
	normalized, err := jsonCompatible(value)
	if err != nil {
		return "", err
	}
	out, err := json.Marshal(normalized)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// jsonCompatible rewrites the map[any]any values yaml.v3 produces for
// non-string keys into map[string]any.
func jsonCompatible(value any) (any, error) {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			converted, err := jsonCompatible(item)
			if err != nil {
				return nil, err
			}
			out[key] = converted
		}
		return out, nil
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			converted, err := jsonCompatible(item)
			if err != nil {
				return nil, err
			}
			out[fmt.Sprint(key)] = converted
		}
		return out, nil
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			converted, err := jsonCompatible(item)
			if err != nil {
				return nil, err
			}
			out[i] = converted
		}
		return out, nil
	default:
		return v, nil
	}
}
