package module

import (
	"slices"
	"sync"

	perr "stubdemo/internal/platform/errors"
)

// Registry holds the modules mounted on one router. The stub composer builds one per Mount
type Registry struct {
	mu   sync.RWMutex
	mods map[string]Module
}

// NewRegistry returns an empty registry
func NewRegistry() *Registry {
	return &Registry{mods: map[string]Module{}}
}

// Register adds m under its name. A second module with the same name is a conflict
func (r *Registry) Register(m Module) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.mods[m.Name()]; dup {
		return perr.Newf(perr.ErrorCodeConflict, "module %q already registered", m.Name())
	}
	r.mods[m.Name()] = m
	return nil
}

// Names lists registered module names, sorted
func (r *Registry) Names() []string {
	r.mu.RLock()
	out := make([]string, 0, len(r.mods))
	for k := range r.mods {
		out = append(out, k)
	}
	r.mu.RUnlock()
	slices.Sort(out)
	return out
}
