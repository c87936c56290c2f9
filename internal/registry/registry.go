package registry

import (
	"fmt"
	"sort"

	"github.com/XavierBriggs/fortuna/services/nflstats/pkg/contracts"
)

// Registry manages the available game sources by name
type Registry struct {
	sources map[string]contracts.GameSource
}

// New creates an empty source registry
func New() *Registry {
	return &Registry{
		sources: make(map[string]contracts.GameSource),
	}
}

// Register adds a source under a name ("espn", "postgres").
// A later registration replaces an earlier one.
func (r *Registry) Register(name string, source contracts.GameSource) {
	r.sources[name] = source
}

// GetSource retrieves a source by name
func (r *Registry) GetSource(name string) (contracts.GameSource, error) {
	source, ok := r.sources[name]
	if !ok {
		return nil, fmt.Errorf("game source not found: %s (available: %v)", name, r.Names())
	}
	return source, nil
}

// Names returns all registered source names, sorted
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.sources))
	for name := range r.sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
