package codegen

import (
	"strings"

	"github.com/goliatone/go-formforge/pkg/naming"
	"github.com/goliatone/go-formforge/pkg/schema"
)

// GenerateForm emits the FormGroup wrapper class for s. Controls are
// non-nullable so reset() restores each control to its kind default.
func (g *Generator) GenerateForm(s schema.Schema, opts Options) string {
	n := resolveNames(opts)

	controls := make([]string, 0, len(s.Fields))
	for i, field := range s.Fields {
		controls = append(controls, g.formControl(i, field))
	}

	i1, i2 := g.indent(1), g.indent(2)

	var b strings.Builder
	b.WriteString("import { FormGroup, FormControl, Validators } from '@angular/forms';\n")
	b.WriteString("import { " + n.modelType + " } from './" + n.modelFile + ".model';\n")
	b.WriteString("\n")
	b.WriteString("/**\n")
	b.WriteString(" * Auto-generated FormGroup\n")
	b.WriteString(" * Form: " + n.formVar + "\n")
	b.WriteString(" */\n")
	b.WriteString("export class " + n.formClass + " {\n")
	b.WriteString(i1 + n.formVar + ": FormGroup;\n")
	b.WriteString("\n")
	b.WriteString(i1 + "constructor() {\n")
	b.WriteString(i2 + "this." + n.formVar + " = new FormGroup({\n")
	b.WriteString(strings.Join(controls, ",\n") + "\n")
	b.WriteString(i2 + "});\n")
	b.WriteString(i1 + "}\n")
	b.WriteString("\n")
	b.WriteString(i1 + "/**\n")
	b.WriteString(i1 + " * Returns the typed form value\n")
	b.WriteString(i1 + " */\n")
	b.WriteString(i1 + "get value(): Partial<" + n.modelType + "> {\n")
	b.WriteString(i2 + "return this." + n.formVar + ".value;\n")
	b.WriteString(i1 + "}\n")
	b.WriteString("\n")
	b.WriteString(i1 + "/**\n")
	b.WriteString(i1 + " * Reports whether the form is valid\n")
	b.WriteString(i1 + " */\n")
	b.WriteString(i1 + "get isValid(): boolean {\n")
	b.WriteString(i2 + "return this." + n.formVar + ".valid;\n")
	b.WriteString(i1 + "}\n")
	b.WriteString("\n")
	b.WriteString(i1 + "/**\n")
	b.WriteString(i1 + " * Resets every control to its initial value\n")
	b.WriteString(i1 + " */\n")
	b.WriteString(i1 + "reset(): void {\n")
	b.WriteString(i2 + "this." + n.formVar + ".reset();\n")
	b.WriteString(i1 + "}\n")
	b.WriteString("}\n")

	return b.String()
}

func (g *Generator) formControl(index int, field schema.Field) string {
	config := "{ nonNullable: true }"
	if field.Required {
		config = "{ nonNullable: true, validators: [Validators.required] }"
	}
	return g.indent(3) + naming.IdentifierAt(field.Name, index) + ": new FormControl(" + defaultValue(field.Kind) + ", " + config + ")"
}
