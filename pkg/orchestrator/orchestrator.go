package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/goliatone/go-formforge/pkg/codegen"
	"github.com/goliatone/go-formforge/pkg/render"
	"github.com/goliatone/go-formforge/pkg/renderers/jsonout"
	"github.com/goliatone/go-formforge/pkg/renderers/preview"
	"github.com/goliatone/go-formforge/pkg/renderers/text"
	"github.com/goliatone/go-formforge/pkg/schema"
	"github.com/goliatone/go-formforge/pkg/source"
)

const defaultRendererName = "text"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom source loader.
func WithLoader(loader *source.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithGenerator injects a configured code generator.
func WithGenerator(generator *codegen.Generator) Option {
	return func(o *Orchestrator) {
		o.generator = generator
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = strings.TrimSpace(name)
	}
}

// WithSchemaTransformer registers a Transformer that runs after parsing and
// before generation.
func WithSchemaTransformer(t Transformer) Option {
	return func(o *Orchestrator) {
		o.transformer = t
	}
}

// WithCacheSize bounds the artifact cache. Zero or negative disables it.
func WithCacheSize(size int) Option {
	return func(o *Orchestrator) {
		o.cacheSize = size
	}
}

// WithLogger sets the logger used for debug events. Nil keeps the discard
// logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Orchestrator coordinates the pipeline from form description to rendered
// output. Missing dependencies are filled with the built-in implementations.
type Orchestrator struct {
	loader          *source.Loader
	generator       *codegen.Generator
	registry        *render.Registry
	defaultRenderer string
	transformer     Transformer
	cacheSize       int
	cache           *artifactCache
	logger          *slog.Logger
	initialiseErr   error
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
		cacheSize:       DefaultCacheSize,
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes one generation run.
type Request struct {
	// Raw is the form description text. Ignored when Source is set.
	Raw string

	// Source identifies where the form description lives.
	Source source.Source

	// Options carries the model and form names.
	Options codegen.Options

	// Renderer names the renderer to use. If empty, the orchestrator falls back
	// to the configured default renderer.
	Renderer string
}

// Response carries the generated bundle together with its rendering.
type Response struct {
	Bundle      render.Bundle
	Renderer    string
	ContentType string
	Output      []byte
	Cached      bool
}

// Generate validates options, parses the description, generates the artifact
// and renders it. Parse failures are returned as *schema.ParseError and
// nothing is generated.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (Response, error) {
	if err := o.ready(ctx); err != nil {
		return Response{}, err
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return Response{}, err
	}

	bundle, cached, err := o.build(ctx, req)
	if err != nil {
		return Response{}, err
	}

	output, err := renderer.Render(ctx, bundle)
	if err != nil {
		return Response{}, fmt.Errorf("orchestrator: render output: %w", err)
	}

	return Response{
		Bundle:      bundle,
		Renderer:    renderer.Name(),
		ContentType: renderer.ContentType(),
		Output:      output,
		Cached:      cached,
	}, nil
}

// Artifact runs the pipeline without rendering.
func (o *Orchestrator) Artifact(ctx context.Context, raw string, opts codegen.Options) (codegen.Artifact, error) {
	if err := o.ready(ctx); err != nil {
		return codegen.Artifact{}, err
	}
	bundle, _, err := o.build(ctx, Request{Raw: raw, Options: opts})
	if err != nil {
		return codegen.Artifact{}, err
	}
	return bundle.Artifact, nil
}

// Renderers lists the registered renderer names.
func (o *Orchestrator) Renderers() []string {
	if o.registry == nil {
		return nil
	}
	return o.registry.Names()
}

// CacheLen reports how many artifacts are cached.
func (o *Orchestrator) CacheLen() int {
	return o.cache.len()
}

func (o *Orchestrator) ready(ctx context.Context) error {
	if ctx == nil {
		return errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return o.initialiseErr
}

func (o *Orchestrator) build(ctx context.Context, req Request) (render.Bundle, bool, error) {
	opts := codegen.Options{
		ModelName: strings.TrimSpace(req.Options.ModelName),
		FormName:  strings.TrimSpace(req.Options.FormName),
	}
	if err := opts.Validate(); err != nil {
		return render.Bundle{}, false, fmt.Errorf("orchestrator: %w", err)
	}

	parsed, err := o.parse(ctx, req)
	if err != nil {
		var perr *schema.ParseError
		if errors.As(err, &perr) {
			o.logger.Debug("form description rejected", "code", perr.Code, "message", perr.Message)
			return render.Bundle{}, false, perr
		}
		return render.Bundle{}, false, err
	}

	if o.transformer != nil {
		if err := o.transformer.Transform(ctx, &parsed); err != nil {
			return render.Bundle{}, false, fmt.Errorf("orchestrator: transform schema: %w", err)
		}
	}

	key := cacheKey(parsed, opts)
	if artifact, ok := o.cache.get(key); ok {
		o.logger.Debug("artifact cache hit", "model", opts.ModelName, "form", opts.FormName)
		return render.Bundle{Schema: parsed, Options: opts, Artifact: artifact}, true, nil
	}

	artifact := o.generator.Generate(parsed, opts)
	o.cache.add(key, artifact)
	o.logger.Debug("artifact generated",
		"model", opts.ModelName,
		"form", opts.FormName,
		"fields", len(parsed.Fields),
	)

	return render.Bundle{Schema: parsed, Options: opts, Artifact: artifact}, false, nil
}

func (o *Orchestrator) parse(ctx context.Context, req Request) (schema.Schema, error) {
	if req.Source == nil {
		return schema.Parse(req.Raw)
	}
	doc, err := o.loader.Load(ctx, req.Source)
	if err != nil {
		return schema.Schema{}, fmt.Errorf("orchestrator: load source: %w", err)
	}
	return doc.Parse()
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	name = strings.TrimSpace(name)
	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if name != "" {
		renderer, err := o.registry.Get(name)
		if err != nil {
			return nil, fmt.Errorf("orchestrator: %w", err)
		}
		return renderer, nil
	}
	if renderer, ok := o.registry.Lookup(target); ok {
		return renderer, nil
	}

	names := o.registry.Names()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}
	return o.registry.Get(names[0])
}

func (o *Orchestrator) applyDefaults() {
	if o.loader == nil {
		o.loader = source.NewLoader()
	}
	if o.generator == nil {
		o.generator = codegen.New()
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		o.registry.MustRegister(jsonout.New(), text.New())
		renderer, err := preview.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
		} else {
			o.registry.MustRegister(renderer)
		}
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}

	cache, err := newArtifactCache(o.cacheSize)
	if err != nil && o.initialiseErr == nil {
		o.initialiseErr = fmt.Errorf("orchestrator: artifact cache: %w", err)
	}
	o.cache = cache
}
