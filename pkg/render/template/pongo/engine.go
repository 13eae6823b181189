package pongo

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-formforge/pkg/render/template"
)

// Filter transforms a template value. param is nil when the filter is used
// without an argument.
type Filter func(input any, param any) (any, error)

// Option configures the engine before construction.
type Option func(*config)

type config struct {
	templates fs.FS
	extension string
	globals   map[string]any
	filters   map[string]Filter
}

// WithFS loads templates from an fs.FS.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templates = files
	}
}

// WithExtension sets the suffix appended to template names that lack it.
func WithExtension(ext string) Option {
	return func(cfg *config) {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			return
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		cfg.extension = ext
	}
}

// WithGlobals exposes values to every template rendered by the engine.
// Render data wins over a global with the same key.
func WithGlobals(data map[string]any) Option {
	return func(cfg *config) {
		for key, value := range data {
			if key = strings.TrimSpace(key); key != "" {
				cfg.globals[key] = value
			}
		}
	}
}

// WithFilter registers a template filter. pongo2 keeps filters in a
// process-wide table, so an existing filter with the same name is replaced.
func WithFilter(name string, fn Filter) Option {
	return func(cfg *config) {
		if name = strings.TrimSpace(name); name != "" && fn != nil {
			cfg.filters[name] = fn
		}
	}
}

// Engine renders named templates from a pongo2 template set. Parsed
// templates are cached by path.
type Engine struct {
	set       *pongo2.TemplateSet
	extension string

	mu    sync.Mutex
	cache map[string]*pongo2.Template
}

var _ template.TemplateRenderer = (*Engine)(nil)

// New builds an engine. WithFS is required.
func New(options ...Option) (*Engine, error) {
	cfg := &config{
		extension: ".tpl",
		globals:   map[string]any{},
		filters:   map[string]Filter{},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}
	if cfg.templates == nil {
		return nil, errors.New("pongo: template fs required")
	}

	registerBuiltinFilters()
	for name, fn := range cfg.filters {
		if err := installFilter(name, fn); err != nil {
			return nil, fmt.Errorf("pongo: register filter %q: %w", name, err)
		}
	}

	globals, err := toContext(cfg.globals)
	if err != nil {
		return nil, fmt.Errorf("pongo: convert globals: %w", err)
	}
	set := pongo2.NewSet("formforge", pongo2.NewFSLoader(cfg.templates))
	set.Globals.Update(globals)

	return &Engine{
		set:       set,
		extension: cfg.extension,
		cache:     make(map[string]*pongo2.Template),
	}, nil
}

// RenderTemplate renders the named template with data and copies the result
// to every writer in out.
func (e *Engine) RenderTemplate(name string, data map[string]any, out ...io.Writer) (string, error) {
	if !strings.HasSuffix(name, e.extension) {
		name += e.extension
	}
	tmpl, err := e.load(name)
	if err != nil {
		return "", err
	}

	ctx, err := toContext(data)
	if err != nil {
		return "", fmt.Errorf("pongo: convert data for %q: %w", name, err)
	}
	rendered, err := tmpl.Execute(ctx)
	if err != nil {
		return "", fmt.Errorf("pongo: execute %q: %w", name, err)
	}

	for _, w := range out {
		if _, err := io.WriteString(w, rendered); err != nil {
			return "", fmt.Errorf("pongo: write %q: %w", name, err)
		}
	}
	return rendered, nil
}

func (e *Engine) load(path string) (*pongo2.Template, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if tmpl, ok := e.cache[path]; ok {
		return tmpl, nil
	}
	tmpl, err := e.set.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("pongo: load template %q: %w", path, err)
	}
	e.cache[path] = tmpl
	return tmpl, nil
}

// toContext passes scalars through and decodes everything else via JSON, so
// templates address struct fields by their json names.
func toContext(data map[string]any) (pongo2.Context, error) {
	ctx := make(pongo2.Context, len(data))
	for key, value := range data {
		switch value.(type) {
		case nil, string, bool, int, int64, float64:
			ctx[key] = value
			continue
		}
		raw, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		var decoded any
		if err := json.Unmarshal(raw, &decoded); err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		ctx[key] = decoded
	}
	return ctx, nil
}

func installFilter(name string, fn Filter) error {
	filter := func(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		var arg any
		if param != nil && !param.IsNil() {
			arg = param.Interface()
		}
		result, err := fn(in.Interface(), arg)
		if err != nil {
			return nil, &pongo2.Error{Sender: "filter:" + name, OrigError: err}
		}
		return pongo2.AsValue(result), nil
	}
	if pongo2.FilterExists(name) {
		return pongo2.ReplaceFilter(name, filter)
	}
	return pongo2.RegisterFilter(name, filter)
}

var builtinFilters sync.Once

func registerBuiltinFilters() {
	builtinFilters.Do(func() {
		if !pongo2.FilterExists("linecount") {
			_ = pongo2.RegisterFilter("linecount", filterLineCount)
		}
	})
}

// filterLineCount counts lines in a string, ignoring one trailing newline.
func filterLineCount(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	text := strings.TrimSuffix(in.String(), "\n")
	if text == "" {
		return pongo2.AsValue(0), nil
	}
	return pongo2.AsValue(strings.Count(text, "\n") + 1), nil
}
