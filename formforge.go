// Package formforge turns a JSON form description into the source files of an
// Angular reactive form: a TypeScript model, a FormGroup class and an HTML
// template. The subpackages hold the parser (schema), the emitters (codegen)
// and the naming rules (naming); this package offers the short entry points.
package formforge

import (
	"context"

	"github.com/goliatone/go-formforge/pkg/codegen"
	"github.com/goliatone/go-formforge/pkg/orchestrator"
	"github.com/goliatone/go-formforge/pkg/schema"
	"github.com/goliatone/go-formforge/pkg/source"
)

// Options aliases codegen.Options for callers that only import the root
// package.
type Options = codegen.Options

// Artifact aliases codegen.Artifact.
type Artifact = codegen.Artifact

// ParseError aliases schema.ParseError.
type ParseError = schema.ParseError

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// NewLoader constructs a form description loader.
func NewLoader(options ...source.LoaderOption) *source.Loader {
	return source.NewLoader(options...)
}

// Parse validates a form description. See schema.Parse.
func Parse(raw string) (schema.Schema, error) {
	return schema.Parse(raw)
}

// GenerateFromText parses raw and generates the three files. Parse failures
// are returned as *ParseError and nothing is generated.
func GenerateFromText(raw string, opts Options) (Artifact, error) {
	if err := opts.Validate(); err != nil {
		return Artifact{}, err
	}
	parsed, err := schema.Parse(raw)
	if err != nil {
		return Artifact{}, err
	}
	return codegen.Generate(parsed, opts), nil
}

// Render loads the description from src and renders it using the named
// renderer ("json", "text" or "preview").
func Render(ctx context.Context, src source.Source, opts Options, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	resp, err := orchestrator.New(options...).Generate(ctx, orchestrator.Request{
		Source:   src,
		Options:  opts,
		Renderer: rendererName,
	})
	if err != nil {
		return nil, err
	}
	return resp.Output, nil
}
