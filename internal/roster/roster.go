// Package roster keeps named handles to Arrakeener entities in memory
package roster

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/tradeverifyd/arrakis/pkg/arrakeener"
)

var (
	ErrHandleExists   = errors.New("handle already exists")
	ErrHandleNotFound = errors.New("handle not found")
	ErrEmptyHandle    = errors.New("handle must not be empty")
)

// Roster maps handle names to entities. Several handles may point at the
// same entity (aliases).
type Roster struct {
	mu      sync.RWMutex
	handles map[string]*arrakeener.Arrakeener
}

// New creates an empty roster
func New() *Roster {
	return &Roster{
		handles: make(map[string]*arrakeener.Arrakeener),
	}
}

// Add registers a new handle for a
func (r *Roster) Add(handle string, a *arrakeener.Arrakeener) error {
	if handle == "" {
		return ErrEmptyHandle
	}
	if a == nil {
		return fmt.Errorf("nil arrakeener for handle %q", handle)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.handles[handle]; exists {
		return fmt.Errorf("%w: %s", ErrHandleExists, handle)
	}
	r.handles[handle] = a
	return nil
}

// Get returns the entity behind handle
func (r *Roster) Get(handle string) (*arrakeener.Arrakeener, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, exists := r.handles[handle]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrHandleNotFound, handle)
	}
	return a, nil
}

// Alias registers handle as another reference to the entity behind source
func (r *Roster) Alias(handle, source string) (*arrakeener.Arrakeener, error) {
	a, err := r.Get(source)
	if err != nil {
		return nil, err
	}
	if err := r.Add(handle, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Clone registers handle as an independent copy of the entity behind source
func (r *Roster) Clone(handle, source string) (*arrakeener.Arrakeener, error) {
	a, err := r.Get(source)
	if err != nil {
		return nil, err
	}
	c := a.Clone()
	if err := r.Add(handle, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Handles returns all handle names in sorted order
func (r *Roster) Handles() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.handles))
	for name := range r.handles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Size returns the number of handles
func (r *Roster) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handles)
}

// Clear removes all handles
func (r *Roster) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handles = make(map[string]*arrakeener.Arrakeener)
}

// String returns a debug string representation
func (r *Roster) String() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return fmt.Sprintf("Roster{handles: %d}", len(r.handles))
}
