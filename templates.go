package formforge

import (
	"io/fs"

	"github.com/goliatone/go-formforge/pkg/renderers/preview"
)

// EmbeddedTemplates exposes the built-in preview page templates so callers
// can copy or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return preview.TemplatesFS()
}
