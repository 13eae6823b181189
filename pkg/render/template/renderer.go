package template

import (
	"io"
)

// TemplateRenderer renders a named template with per-call data.
type TemplateRenderer interface {
	RenderTemplate(name string, data map[string]any, out ...io.Writer) (string, error)
}
