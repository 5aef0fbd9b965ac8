// Package faction keeps the factions of the world and the augmentations each
// of them offers.
package faction

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

// Errors.
var (
	ErrDuplicateFaction = errors.New("duplicate faction")
	ErrEmptyName        = errors.New("faction name is empty")
)

// Faction is a single faction and its offered augmentation list.
// Special factions are hidden from generic augmentation propagation.
type Faction struct {
	name    string
	special bool

	mu     sync.RWMutex
	offers []string
}

// Name returns the faction name.
func (f *Faction) Name() string { return f.name }

// Special reports whether the faction is hidden/special.
func (f *Faction) Special() bool { return f.special }

// Offer adds an augmentation name to the offer list.
// Returns false if the faction already offers it.
func (f *Faction) Offer(augmentation string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if slices.Contains(f.offers, augmentation) {
		return false
	}
	f.offers = append(f.offers, augmentation)
	return true
}

// Offers reports whether the faction offers augmentation.
func (f *Faction) Offers(augmentation string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return slices.Contains(f.offers, augmentation)
}

// Augmentations returns a copy of the offer list in insertion order.
func (f *Faction) Augmentations() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return slices.Clone(f.offers)
}

// Registry holds all factions by name.
// Thread-safe: uses RWMutex, registration order is preserved.
type Registry struct {
	mu       sync.RWMutex
	byName   map[string]*Faction
	factions []*Faction
}

// NewRegistry creates an empty faction registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]*Faction),
	}
}

// Register adds a new faction.
func (r *Registry) Register(name string, special bool) (*Faction, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[name]; ok {
		return nil, fmt.Errorf("registering %q: %w", name, ErrDuplicateFaction)
	}

	f := &Faction{name: name, special: special}
	r.byName[name] = f
	r.factions = append(r.factions, f)
	return f, nil
}

// Lookup returns the faction by name.
func (r *Registry) Lookup(name string) (*Faction, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.byName[name]
	return f, ok
}

// All returns every faction in registration order.
func (r *Registry) All() []*Faction {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.factions)
}

// Len returns the number of registered factions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.factions)
}
