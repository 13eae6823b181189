// Package jsonout renders a generation bundle as a JSON document for display
// and persistence layers.
package jsonout

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-formforge/pkg/codegen"
	"github.com/goliatone/go-formforge/pkg/render"
	"github.com/goliatone/go-formforge/pkg/schema"
)

// Option configures the renderer.
type Option func(*Renderer)

// WithIndent pretty prints the document using the given indent string.
func WithIndent(indent string) Option {
	return func(r *Renderer) {
		r.indent = indent
	}
}

// Document is the JSON payload emitted by the renderer.
type Document struct {
	Schema   schema.Schema    `json:"schema"`
	Options  codegen.Options  `json:"options"`
	Artifact codegen.Artifact `json:"artifact"`
	Tabs     []codegen.Tab    `json:"tabs"`
}

// Renderer emits the schema, artifact and tabs as one JSON object.
type Renderer struct {
	indent string
}

// New constructs a JSON renderer.
func New(options ...Option) *Renderer {
	r := &Renderer{indent: "  "}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

func (r *Renderer) Name() string {
	return "json"
}

func (r *Renderer) ContentType() string {
	return "application/json"
}

func (r *Renderer) Render(ctx context.Context, bundle render.Bundle) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc := Document{
		Schema:   bundle.Schema,
		Options:  bundle.Options,
		Artifact: bundle.Artifact,
		Tabs:     bundle.Tabs(),
	}

	var (
		out []byte
		err error
	)
	if r.indent == "" {
		out, err = json.Marshal(doc)
	} else {
		out, err = json.MarshalIndent(doc, "", r.indent)
	}
	if err != nil {
		return nil, fmt.Errorf("json renderer: encode: %w", err)
	}
	return append(out, '\n'), nil
}
