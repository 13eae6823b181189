package codegen

import (
	"strings"

	"github.com/goliatone/go-formforge/pkg/naming"
	"github.com/goliatone/go-formforge/pkg/schema"
)

const (
	requiredMessage = "This field is required"
	submitLabel     = "Submit"
	resetLabel      = "Reset"
)

// GenerateTemplate emits the HTML template for s.
func (g *Generator) GenerateTemplate(s schema.Schema, opts Options) string {
	n := resolveNames(opts)

	blocks := make([]string, 0, len(s.Fields))
	for i, field := range s.Fields {
		blocks = append(blocks, g.templateField(i, field, n.formVar))
	}

	i1, i2 := g.indent(1), g.indent(2)

	var b strings.Builder
	b.WriteString("<!-- Auto-generated template -->\n")
	b.WriteString(`<form [formGroup]="` + n.formVar + `">` + "\n")
	b.WriteString(strings.Join(blocks, "\n\n"))
	b.WriteString("\n\n")
	b.WriteString(i1 + `<div class="form-actions">` + "\n")
	b.WriteString(i2 + `<button type="submit" [disabled]="!` + n.formVar + `.valid">` + "\n")
	b.WriteString(g.indent(3) + submitLabel + "\n")
	b.WriteString(i2 + "</button>\n")
	b.WriteString(i2 + `<button type="button" (click)="reset()">` + "\n")
	b.WriteString(g.indent(3) + resetLabel + "\n")
	b.WriteString(i2 + "</button>\n")
	b.WriteString(i1 + "</div>\n")
	b.WriteString("</form>\n")
	b.WriteString("\n")
	b.WriteString("<!-- Form value (debug) -->\n")
	b.WriteString("<pre>{{ " + n.formVar + ".value | json }}</pre>\n")
	return b.String()
}

func (g *Generator) templateField(index int, field schema.Field, formVar string) string {
	ident := naming.IdentifierAt(field.Name, index)
	label := displayLabel(field)
	placeholder := field.Placeholder
	if placeholder == "" {
		placeholder = "Enter " + strings.ToLower(label)
	}

	marker := ""
	if field.Required {
		marker = " *"
	}

	i1, i2, i3 := g.indent(1), g.indent(2), g.indent(3)
	widget, withPlaceholder := inputType(field.Kind)

	var b strings.Builder
	b.WriteString(i1 + `<div class="form-field">` + "\n")
	b.WriteString(i2 + `<label for="` + ident + `">` + markupText(label) + marker + "</label>\n")
	b.WriteString(i2 + "<input\n")
	b.WriteString(i3 + `type="` + widget + `"` + "\n")
	b.WriteString(i3 + `formControlName="` + ident + `"` + "\n")
	if withPlaceholder {
		b.WriteString(i3 + `placeholder="` + markupText(placeholder) + `"` + "\n")
	}
	b.WriteString(i2 + "/>")
	if field.Required {
		control := formVar + ".get('" + ident + "')"
		b.WriteString("\n")
		b.WriteString(i2 + `<span class="error" *ngIf="` + control + `?.invalid && ` + control + `?.touched">` + "\n")
		b.WriteString(i3 + requiredMessage + "\n")
		b.WriteString(i2 + "</span>")
	}
	b.WriteString("\n" + i1 + "</div>")
	return b.String()
}

// displayLabel returns the explicit label or the field name with its first
// letter upper-cased.
func displayLabel(field schema.Field) string {
	if field.Label != "" {
		return field.Label
	}
	return naming.Capitalize(field.Name)
}
