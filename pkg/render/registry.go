package render

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
)

var (
	// ErrRendererExists reports a second renderer registered under a taken name.
	ErrRendererExists = errors.New("render: renderer already registered")
	// ErrRendererNotFound reports a lookup for a name nobody registered.
	ErrRendererNotFound = errors.New("render: renderer not found")
)

// Registry maps output format names to renderers. It is safe for concurrent
// use.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]Renderer
}

func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Renderer)}
}

// Register adds renderers under their Name(). Registration stops at the
// first invalid or duplicate renderer; earlier ones stay registered.
func (r *Registry) Register(renderers ...Renderer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, renderer := range renderers {
		if renderer == nil {
			return errors.New("render: nil renderer")
		}
		name := strings.TrimSpace(renderer.Name())
		if name == "" {
			return fmt.Errorf("render: %T has an empty name", renderer)
		}
		if _, taken := r.byName[name]; taken {
			return fmt.Errorf("%w: %q", ErrRendererExists, name)
		}
		r.byName[name] = renderer
	}
	return nil
}

// MustRegister is Register for wiring code that cannot recover.
func (r *Registry) MustRegister(renderers ...Renderer) {
	if err := r.Register(renderers...); err != nil {
		panic(err)
	}
}

// Lookup returns the renderer registered as name.
func (r *Registry) Lookup(name string) (Renderer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	renderer, ok := r.byName[name]
	return renderer, ok
}

// Get is Lookup with an ErrRendererNotFound error for unknown names.
func (r *Registry) Get(name string) (Renderer, error) {
	renderer, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrRendererNotFound, name)
	}
	return renderer, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
