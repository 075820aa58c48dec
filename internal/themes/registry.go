// SPDX-License-Identifier: MIT
package themes

import "fmt"

// Info is the listing view of a registered entry
type Info struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Description string `json:"description"`
}

// Registry is an immutable name -> value table with a fallback default.
// It is built once and only read afterwards, so it is safe for concurrent use.
type Registry[T any] struct {
	names       []string
	items       map[string]T
	defaultName string
	info        func(T) Info
}

// NewRegistry builds a registry from entries in listing order. defaultName
// must name one of the entries, or be empty for registries without a default.
func NewRegistry[T any](entries []T, info func(T) Info, defaultName string) (*Registry[T], error) {
	r := &Registry[T]{
		names:       make([]string, 0, len(entries)),
		items:       make(map[string]T, len(entries)),
		defaultName: defaultName,
		info:        info,
	}
	for _, e := range entries {
		name := info(e).Name
		if name == "" {
			return nil, fmt.Errorf("registry entry without a name")
		}
		if _, dup := r.items[name]; dup {
			return nil, fmt.Errorf("duplicate registry entry: %s", name)
		}
		r.names = append(r.names, name)
		r.items[name] = e
	}
	if defaultName != "" {
		if _, ok := r.items[defaultName]; !ok {
			return nil, fmt.Errorf("default entry %q is not registered", defaultName)
		}
	}
	return r, nil
}

// Get returns the named entry, or the default entry when the name is unknown.
func (r *Registry[T]) Get(name string) T {
	if v, ok := r.items[name]; ok {
		return v
	}
	return r.items[r.defaultName]
}

// Lookup returns the named entry and whether it exists
func (r *Registry[T]) Lookup(name string) (T, bool) {
	v, ok := r.items[name]
	return v, ok
}

func (r *Registry[T]) Has(name string) bool {
	_, ok := r.items[name]
	return ok
}

// DefaultName returns the fallback entry name ("" if there is none)
func (r *Registry[T]) DefaultName() string {
	return r.defaultName
}

// Names returns entry names in registration order
func (r *Registry[T]) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// All returns entries in registration order
func (r *Registry[T]) All() []T {
	out := make([]T, 0, len(r.names))
	for _, n := range r.names {
		out = append(out, r.items[n])
	}
	return out
}

// List returns name, display name and description for every entry
func (r *Registry[T]) List() []Info {
	out := make([]Info, 0, len(r.names))
	for _, n := range r.names {
		out = append(out, r.info(r.items[n]))
	}
	return out
}

func (r *Registry[T]) Len() int {
	return len(r.names)
}
