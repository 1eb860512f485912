// Package res caches lazily-loaded assets, keyed by asset path and
// concrete resource type. Frontends pass around opaque paths from the
// board config and let the manager construct whatever each path backs.
package res

import (
	"fmt"
	"reflect"
)

// Resource is an asset the manager can load and cache.
type Resource interface {
	Load(path string) error
}

type cacheKey struct {
	path string
	typ  reflect.Type
}

// Manager caches one resource instance per (path, type) pair for its own
// lifetime. It is not safe for concurrent use.
type Manager struct {
	cache map[cacheKey]Resource
}

// NewManager returns an empty resource cache.
func NewManager() *Manager {
	return &Manager{cache: make(map[cacheKey]Resource)}
}

// From returns the manager's instance of resource type T for path,
// loading it on the first request. Repeated requests for the same path
// and type return the identical instance; a failed load is not cached.
func From[T any, PT interface {
	*T
	Resource
}](m *Manager, path string) (PT, error) {
	key := cacheKey{path: path, typ: reflect.TypeOf((*T)(nil))}
	if r, ok := m.cache[key]; ok {
		return r.(PT), nil
	}
	r := PT(new(T))
	if err := r.Load(path); err != nil {
		return nil, fmt.Errorf("res: load %s: %w", path, err)
	}
	m.cache[key] = r
	return r, nil
}
