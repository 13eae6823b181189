package codegen

import (
	"strings"

	"github.com/goliatone/go-formforge/pkg/naming"
	"github.com/goliatone/go-formforge/pkg/schema"
)

// GenerateModel emits the TypeScript interface for s.
func (g *Generator) GenerateModel(s schema.Schema, opts Options) string {
	n := resolveNames(opts)

	lines := make([]string, 0, len(s.Fields))
	for i, field := range s.Fields {
		lines = append(lines, g.modelField(i, field))
	}

	var b strings.Builder
	b.WriteString("/**\n")
	b.WriteString(" * Auto-generated model\n")
	b.WriteString(" * Interface: " + n.modelType + "\n")
	b.WriteString(" */\n")
	b.WriteString("export interface " + n.modelType + " {\n")
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n}\n")
	return b.String()
}

func (g *Generator) modelField(index int, field schema.Field) string {
	optional := "?"
	if field.Required {
		optional = ""
	}

	var b strings.Builder
	if field.Label != "" {
		b.WriteString(g.indent(1) + "/** " + commentSafe(field.Label) + " */\n")
	}
	b.WriteString(g.indent(1) + naming.IdentifierAt(field.Name, index) + optional + ": " + tsType(field.Kind) + ";")
	return b.String()
}

// commentSafe keeps label text from terminating the surrounding doc comment.
func commentSafe(text string) string {
	text = strings.ReplaceAll(text, "*/", "*\\/")
	return strings.Join(strings.Fields(text), " ")
}
