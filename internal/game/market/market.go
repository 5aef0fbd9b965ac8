// Package market implements the augmentation purchase flow on top of the
// pricing engine: prerequisite and ownership checks, affordability and
// queueing.
package market

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/udisondev/augmarket/internal/game/augment"
	"github.com/udisondev/augmarket/internal/model"
)

// Errors.
var (
	ErrAlreadyOwned           = errors.New("augmentation already owned or queued")
	ErrMissingPrerequisite    = errors.New("missing prerequisite augmentation")
	ErrInsufficientMoney      = errors.New("not enough money")
	ErrInsufficientReputation = errors.New("not enough faction reputation")
	ErrUnknownFaction         = errors.New("unknown faction")
	ErrNotOffered             = errors.New("augmentation not offered by faction")
)

// Funds is what the player can spend on a purchase: money and reputation
// with the selling faction.
type Funds struct {
	Money float64
	Rep   float64
}

// Receipt describes a completed purchase. Costs is the amount the caller
// must deduct from the player's money; reputation is not consumed.
type Receipt struct {
	Name  string
	Costs augment.Costs
	// Level is the level bought; 0 for non-repeatable augmentations.
	Level int
}

// Service sells augmentations. Buy is serialized so the ownership check and
// queueing of one purchase cannot interleave with another.
type Service struct {
	mu        sync.Mutex
	catalog   *augment.Registry
	pricer    *augment.Pricer
	modifiers model.CostModifiers
}

// NewService creates a purchase service. mods are the world cost modifiers
// applied to every price.
func NewService(catalog *augment.Registry, pricer *augment.Pricer, mods model.CostModifiers) *Service {
	return &Service{
		catalog:   catalog,
		pricer:    pricer,
		modifiers: mods,
	}
}

// Modifiers returns the cost modifiers used for pricing.
func (s *Service) Modifiers() model.CostModifiers { return s.modifiers }

// Buy prices name against the current state and queues it if funds allow.
// Prerequisites count when owned or already queued.
func (s *Service) Buy(state *model.AugmentationState, funds Funds, name string) (Receipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.catalog.Lookup(name)
	if err != nil {
		return Receipt{}, err
	}

	snap := state.Snapshot(s.modifiers)
	if err := s.checkEligible(t, snap); err != nil {
		return Receipt{}, err
	}

	costs, err := s.pricer.Cost(name, snap)
	if err != nil {
		return Receipt{}, err
	}
	if funds.Rep < costs.Rep {
		return Receipt{}, fmt.Errorf("%w: %q needs %.0f, have %.0f", ErrInsufficientReputation, name, costs.Rep, funds.Rep)
	}
	if funds.Money < costs.Money {
		return Receipt{}, fmt.Errorf("%w: %q costs %.0f, have %.0f", ErrInsufficientMoney, name, costs.Money, funds.Money)
	}

	level, err := s.pricer.NextLevel(name, snap)
	if err != nil {
		return Receipt{}, err
	}

	state.Queue(name)

	slog.Debug("augmentation purchased",
		"augmentation", name,
		"money", costs.Money,
		"rep", costs.Rep,
		"level", level)

	return Receipt{Name: name, Costs: costs, Level: level}, nil
}

func (s *Service) checkEligible(t *augment.Template, snap model.AugmentationSnapshot) error {
	repeatable := t.Pricing().Mode == augment.PricingRepeatable
	if !repeatable && (snap.Owns(t.Name()) || snap.IsQueued(t.Name())) {
		return fmt.Errorf("%w: %q", ErrAlreadyOwned, t.Name())
	}
	if missing := missingPrereqs(t, snap); len(missing) > 0 {
		return fmt.Errorf("%w: %q requires %q", ErrMissingPrerequisite, t.Name(), missing)
	}
	return nil
}

func missingPrereqs(t *augment.Template, snap model.AugmentationSnapshot) []string {
	var missing []string
	for _, p := range t.Prereqs() {
		if !snap.Owns(p) && !snap.IsQueued(p) {
			missing = append(missing, p)
		}
	}
	return missing
}

// Install moves every queued augmentation into the owned list.
// Returns the number of augmentations installed.
func (s *Service) Install(state *model.AugmentationState) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := state.Install(s.catalog.Rules().RepeatableName)
	slog.Info("augmentations installed", "count", n)
	return n
}
