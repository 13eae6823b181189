package codegen

import (
	"github.com/goliatone/go-formforge/pkg/naming"
	"github.com/goliatone/go-formforge/pkg/schema"
)

// Option configures a Generator.
type Option func(*Generator)

// WithIndentWidth overrides the number of spaces per indentation level.
func WithIndentWidth(width int) Option {
	return func(g *Generator) {
		if width > 0 {
			g.indentWidth = width
		}
	}
}

// Generator emits artifacts. The zero value is not usable; call New.
// A Generator holds no mutable state and is safe for concurrent use.
type Generator struct {
	indentWidth int
}

// New constructs a Generator applying any provided options.
func New(options ...Option) *Generator {
	g := &Generator{indentWidth: naming.DefaultIndentWidth}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(g)
	}
	return g
}

var defaultGenerator = New()

// Generate emits all three artifacts with the default Generator.
func Generate(s schema.Schema, opts Options) Artifact {
	return defaultGenerator.Generate(s, opts)
}

// Generate emits all three artifacts for s.
func (g *Generator) Generate(s schema.Schema, opts Options) Artifact {
	return Artifact{
		ModelFile:    g.GenerateModel(s, opts),
		FormFile:     g.GenerateForm(s, opts),
		TemplateFile: g.GenerateTemplate(s, opts),
	}
}

func (g *Generator) indent(level int) string {
	return naming.IndentWidth(level, g.indentWidth)
}

// names are the identifiers shared by every emitter for one generation run.
type names struct {
	modelType string
	modelFile string
	formClass string
	formVar   string
}

func resolveNames(opts Options) names {
	return names{
		modelType: naming.TypeName(opts.ModelName),
		modelFile: naming.FileStem(opts.ModelName),
		formClass: naming.TypeName(opts.FormName),
		formVar:   naming.Identifier(opts.FormName),
	}
}
