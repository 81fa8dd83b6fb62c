package processor

import (
	"sort"
	"sync"
)

// Registry maps processing type names to processors. Registrations may race
// with lookups from concurrent requests, last writer wins per name. The
// registry never inspects processor behavior, it only stores them by name.
type Registry struct {
	mu         sync.RWMutex
	processors map[string]Processor
}

func NewRegistry() *Registry {
	return &Registry{processors: make(map[string]Processor)}
}

// Register stores or replaces the processor under the given name.
func (r *Registry) Register(name string, p Processor) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.processors[name] = p
}

// RegisterAll stores every processor of the given mapping and returns the
// sorted set of names present afterwards, pre-existing ones included.
func (r *Registry) RegisterAll(processors map[string]Processor) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	for name, p := range processors {
		r.processors[name] = p
	}

	names := make([]string, 0, len(r.processors))
	for name := range r.processors {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// Lookup returns the processor registered under name. A missing entry is a
// normal outcome the caller branches on, not an error.
func (r *Registry) Lookup(name string) (Processor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, found := r.processors[name]
	return p, found
}

// All returns a snapshot copy of the current mapping.
func (r *Registry) All() map[string]Processor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make(map[string]Processor, len(r.processors))
	for name, p := range r.processors {
		snapshot[name] = p
	}

	return snapshot
}
