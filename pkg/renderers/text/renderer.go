// Package text renders the generated files as one plain-text stream with a
// banner line ahead of each file.
package text

import (
	"context"
	"strings"

	"github.com/goliatone/go-formforge/pkg/render"
)

// BannerPrefix starts the line that names each file in the stream.
const BannerPrefix = "// ==> "

// Renderer concatenates the model, form and template files.
type Renderer struct{}

// New constructs a text renderer.
func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Name() string {
	return "text"
}

func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

func (r *Renderer) Render(ctx context.Context, bundle render.Bundle) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var b strings.Builder
	for i, tab := range bundle.Tabs() {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(BannerPrefix)
		b.WriteString(tab.FileName)
		b.WriteString("\n")
		b.WriteString(tab.Content)
		if !strings.HasSuffix(tab.Content, "\n") {
			b.WriteString("\n")
		}
	}
	return []byte(b.String()), nil
}
