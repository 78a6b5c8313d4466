// Package registry implements the keyed operation registry: a read-mostly
// mapping from a normalized discriminator key to a bound value.
package registry

import (
	"fmt"
	"sort"
	"strings"
)

// NormalizeKey trims surrounding whitespace and lowercases a discriminator
// key. All registry lookups and stores go through this, so key comparison is
// case-insensitive.
func NormalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// NotFoundError reports a resolve against a key with no bound value.
type NotFoundError struct {
	// Key is the normalized key that failed to resolve.
	Key string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no operation registered for key %q", e.Key)
}

// Registry maps normalized keys to values of type T. Entries are registered
// during construction; after that the registry is treated as read-only and is
// safe for unsynchronized concurrent reads.
type Registry[T any] struct {
	entries map[string]T
}

// New creates an empty Registry.
func New[T any]() *Registry[T] {
	return &Registry[T]{entries: make(map[string]T)}
}

// Register binds key to value. The key is normalized before storage.
// Re-registering a key replaces the previous binding; last write wins.
func (r *Registry[T]) Register(key string, value T) {
	r.entries[NormalizeKey(key)] = value
}

// Resolve returns the value bound to the normalized key, or a *NotFoundError
// when nothing is registered for it.
func (r *Registry[T]) Resolve(key string) (T, error) {
	norm := NormalizeKey(key)
	value, ok := r.entries[norm]
	if !ok {
		var zero T
		return zero, &NotFoundError{Key: norm}
	}
	return value, nil
}

// Keys returns the registered keys in sorted order.
func (r *Registry[T]) Keys() []string {
	keys := make([]string, 0, len(r.entries))
	for k := range r.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of registered entries.
func (r *Registry[T]) Len() int {
	return len(r.entries)
}
