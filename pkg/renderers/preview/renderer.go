package preview

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/goliatone/go-formforge/pkg/render"
	rendertemplate "github.com/goliatone/go-formforge/pkg/render/template"
	"github.com/goliatone/go-formforge/pkg/render/template/pongo"
)

const defaultTitle = "Generated form code"

type Option func(*config)

type config struct {
	templateFS fs.FS
	title      string
	filters    []pongo.Option
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS. The bundle
// must contain templates/preview.tpl.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithFilter makes a template filter available to the preview templates.
func WithFilter(name string, fn pongo.Filter) Option {
	return func(cfg *config) {
		cfg.filters = append(cfg.filters, pongo.WithFilter(name, fn))
	}
}

// WithTitle overrides the page heading.
func WithTitle(title string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(title); trimmed != "" {
			cfg.title = trimmed
		}
	}
}

// Renderer presents the generated files as a standalone HTML page with one
// copyable pane per file.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
}

// New constructs the preview renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS(), title: defaultTitle}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	engineOptions := append([]pongo.Option{
		pongo.WithFS(cfg.templateFS),
		pongo.WithExtension(".tpl"),
		pongo.WithGlobals(map[string]any{"title": cfg.title}),
	}, cfg.filters...)
	engine, err := pongo.New(engineOptions...)
	if err != nil {
		return nil, fmt.Errorf("preview renderer: configure template engine: %w", err)
	}

	return &Renderer{templates: engine}, nil
}

func (r *Renderer) Name() string {
	return "preview"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *Renderer) Render(ctx context.Context, bundle render.Bundle) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("preview renderer: template renderer is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result, err := r.templates.RenderTemplate("templates/preview.tpl", map[string]any{
		"options":    bundle.Options,
		"fieldCount": len(bundle.Schema.Fields),
		"tabs":       bundle.Tabs(),
	})
	if err != nil {
		return nil, fmt.Errorf("preview renderer: render template: %w", err)
	}
	return []byte(result), nil
}
