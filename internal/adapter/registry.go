package adapter

import "sort"

// Constructor builds a ready-to-use adapter.
type Constructor func() Adapter

// Registry is a fixed lookup table from identifier to constructor.
type Registry struct {
	constructors map[string]Constructor
}

func NewRegistry(constructors map[string]Constructor) *Registry {
	m := make(map[string]Constructor, len(constructors))
	for id, c := range constructors {
		m[id] = c
	}
	return &Registry{constructors: m}
}

// Resolve returns a new adapter for id, or an *UnknownAdapterError.
func (r *Registry) Resolve(id string) (Adapter, error) {
	c, ok := r.constructors[id]
	if !ok {
		return nil, &UnknownAdapterError{ID: id, Known: r.Known()}
	}
	return c(), nil
}

// Known returns the registered identifiers, sorted.
func (r *Registry) Known() []string {
	ids := make([]string, 0, len(r.constructors))
	for id := range r.constructors {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
