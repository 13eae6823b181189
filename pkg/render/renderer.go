package render

import (
	"context"

	"github.com/goliatone/go-formforge/pkg/codegen"
	"github.com/goliatone/go-formforge/pkg/schema"
)

// Bundle is what a renderer presents: the parsed schema and options plus the
// generated artifact.
type Bundle struct {
	Schema   schema.Schema    `json:"schema"`
	Options  codegen.Options  `json:"options"`
	Artifact codegen.Artifact `json:"artifact"`
}

// Tabs lays the artifact out as labelled, named panes.
func (b Bundle) Tabs() []codegen.Tab {
	return codegen.Tabs(b.Artifact, b.Options)
}

// Renderer converts a Bundle into a byte representation (JSON, text, HTML).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, bundle Bundle) ([]byte, error)
}
