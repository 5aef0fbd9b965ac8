package model

import (
	"slices"
	"sync"
)

// OwnedAugmentation is an installed augmentation record.
// Level is meaningful only for the repeatable augmentation; for every other
// augmentation it is 1.
type OwnedAugmentation struct {
	Name  string `json:"name" yaml:"name"`
	Level int    `json:"level" yaml:"level"`
}

// QueuedAugmentation is a purchased augmentation that is not installed yet.
type QueuedAugmentation struct {
	Name string `json:"name" yaml:"name"`
}

// CostModifiers are world difficulty scalars applied to augmentation prices.
type CostModifiers struct {
	Money float64 `json:"money" yaml:"money"`
	Rep   float64 `json:"rep" yaml:"rep"`
}

// DefaultCostModifiers returns neutral (x1) modifiers.
func DefaultCostModifiers() CostModifiers {
	return CostModifiers{Money: 1, Rep: 1}
}

// AugmentationSnapshot is a consistent, read-only view of a player's
// augmentations used for pricing.
type AugmentationSnapshot struct {
	Owned     []OwnedAugmentation
	Queued    []QueuedAugmentation
	Modifiers CostModifiers
}

// Owns reports whether name is installed.
func (s AugmentationSnapshot) Owns(name string) bool {
	return slices.ContainsFunc(s.Owned, func(o OwnedAugmentation) bool { return o.Name == name })
}

// IsQueued reports whether name is purchased and waiting for install.
func (s AugmentationSnapshot) IsQueued(name string) bool {
	return s.QueuedCount(name) > 0
}

// OwnedLevel returns the highest installed level recorded for name, 0 if none.
func (s AugmentationSnapshot) OwnedLevel(name string) int {
	level := 0
	for _, o := range s.Owned {
		if o.Name == name && o.Level > level {
			level = o.Level
		}
	}
	return level
}

// QueuedCount returns how many queued entries match name.
func (s AugmentationSnapshot) QueuedCount(name string) int {
	n := 0
	for _, q := range s.Queued {
		if q.Name == name {
			n++
		}
	}
	return n
}

// Purchases returns the number of augmentations bought since the last install.
// Every purchase inflates the price of the next generic augmentation.
func (s AugmentationSnapshot) Purchases() int {
	return len(s.Queued)
}

// AugmentationState is the mutable set of a player's augmentations.
// Thread-safe: readers get copies through Snapshot.
type AugmentationState struct {
	mu     sync.RWMutex
	owned  []OwnedAugmentation
	queued []QueuedAugmentation
}

// NewAugmentationState creates state from persisted records.
// Input slices are copied.
func NewAugmentationState(owned []OwnedAugmentation, queued []QueuedAugmentation) *AugmentationState {
	return &AugmentationState{
		owned:  slices.Clone(owned),
		queued: slices.Clone(queued),
	}
}

// Queue records a purchase of name.
func (s *AugmentationState) Queue(name string) {
	s.mu.Lock()
	s.queued = append(s.queued, QueuedAugmentation{Name: name})
	s.mu.Unlock()
}

// Has reports whether name is owned or queued.
func (s *AugmentationState) Has(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, q := range s.queued {
		if q.Name == name {
			return true
		}
	}
	for _, o := range s.owned {
		if o.Name == name {
			return true
		}
	}
	return false
}

// Install moves every queued augmentation into the owned list.
// Each queued copy of the repeatable augmentation raises its owned level by one;
// other augmentations already owned are not duplicated.
// Returns the number of queued entries consumed.
func (s *AugmentationState) Install(repeatable string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.queued)
	for _, q := range s.queued {
		idx := slices.IndexFunc(s.owned, func(o OwnedAugmentation) bool { return o.Name == q.Name })
		switch {
		case idx < 0:
			s.owned = append(s.owned, OwnedAugmentation{Name: q.Name, Level: 1})
		case q.Name == repeatable:
			s.owned[idx].Level++
		}
	}
	s.queued = s.queued[:0]
	return n
}

// Owned returns a copy of installed records.
func (s *AugmentationState) Owned() []OwnedAugmentation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.owned)
}

// Queued returns a copy of queued records.
func (s *AugmentationState) Queued() []QueuedAugmentation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.queued)
}

// Records returns copies of owned and queued records taken under one lock.
func (s *AugmentationState) Records() ([]OwnedAugmentation, []QueuedAugmentation) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.owned), slices.Clone(s.queued)
}

// Snapshot returns a consistent copy of the state for pricing.
func (s *AugmentationState) Snapshot(mods CostModifiers) AugmentationSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return AugmentationSnapshot{
		Owned:     slices.Clone(s.owned),
		Queued:    slices.Clone(s.queued),
		Modifiers: mods,
	}
}
