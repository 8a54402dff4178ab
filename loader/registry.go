package loader

import (
	"fmt"
	"sort"
	"sync"

	"github.com/aaimio/logicful-templates-example-ts/markup"
)

// Registry maps template names to renderers compiled into
// the binary. A name is the module file's base name without
// its extension, so "templates/index.tsx" resolves "index".
// The zero value is an empty registry ready for use.
type Registry struct {
	mu      sync.RWMutex
	modules map[string]markup.RenderFunc
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{modules: make(map[string]markup.RenderFunc)}
}

// Register adds a renderer under name. It panics if name is
// empty, fn is nil, or name is already registered.
func (r *Registry) Register(name string, fn markup.RenderFunc) {
	if name == "" {
		panic("loader: Register with empty name")
	}

	if fn == nil {
		panic("loader: Register renderer is nil for " + name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, dup := r.modules[name]; dup {
		panic(fmt.Sprintf("loader: Register called twice for %s", name))
	}

	if r.modules == nil {
		r.modules = make(map[string]markup.RenderFunc)
	}

	r.modules[name] = fn
}

// Lookup returns the renderer registered under name.
func (r *Registry) Lookup(name string) (markup.RenderFunc, bool) {
	if r == nil {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	fn, ok := r.modules[name]

	return fn, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.modules))
	for name := range r.modules {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
