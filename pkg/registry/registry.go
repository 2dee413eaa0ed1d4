package registry

import (
	"sync"

	"github.com/arthur-debert/jenkins-job-linter/pkg/errors"
)

// Registry holds named items in registration order. It is safe for concurrent
// use.
type Registry[T any] interface {
	// Register adds an item. Names must be non-empty and unique.
	Register(name string, item T) error

	// Get returns the item registered under name, or ErrNotFound.
	Get(name string) (T, error)

	// List returns all registered names in registration order
	List() []string

	// Each calls fn for every item in registration order. Iteration stops at
	// the first error, which is returned.
	Each(fn func(name string, item T) error) error

	// Has checks if an item is registered
	Has(name string) bool

	// Count returns the number of registered items
	Count() int
}

type registry[T any] struct {
	mu    sync.RWMutex
	items map[string]T
	order []string
}

// New returns an empty registry.
func New[T any]() Registry[T] {
	return &registry[T]{
		items: make(map[string]T),
	}
}

func (r *registry[T]) Register(name string, item T) error {
	if name == "" {
		return errors.New(errors.ErrInvalidInput, "registry name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[name]; exists {
		return errors.Newf(errors.ErrAlreadyExists, "%q is already registered", name).
			WithDetail("name", name)
	}

	r.items[name] = item
	r.order = append(r.order, name)
	return nil
}

func (r *registry[T]) Get(name string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, exists := r.items[name]
	if !exists {
		var zero T
		return zero, errors.Newf(errors.ErrNotFound, "%q is not registered", name).
			WithDetail("name", name)
	}

	return item, nil
}

func (r *registry[T]) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Each iterates over a snapshot of the registry so fn may call back into it.
func (r *registry[T]) Each(fn func(name string, item T) error) error {
	r.mu.RLock()
	names := make([]string, len(r.order))
	copy(names, r.order)
	items := make([]T, len(names))
	for i, name := range names {
		items[i] = r.items[name]
	}
	r.mu.RUnlock()

	for i, name := range names {
		if err := fn(name, items[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *registry[T]) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.items[name]
	return exists
}

func (r *registry[T]) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items)
}
