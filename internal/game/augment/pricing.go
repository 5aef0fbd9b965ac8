package augment

import (
	"fmt"
	"math"

	"github.com/udisondev/augmarket/internal/model"
)

// Default pricing constants.
const (
	DefaultLevelGrowth       = 1.14 // repeatable augmentation, per level
	DefaultCohortGrowth      = 7.0  // per owned cohort member
	DefaultPurchaseInflation = 1.9  // per augmentation bought since last install
)

// Constants are the fixed game constants of the pricing algorithm.
type Constants struct {
	LevelGrowth       float64
	CohortGrowth      float64
	PurchaseInflation float64
}

// DefaultConstants returns the stock game constants.
func DefaultConstants() Constants {
	return Constants{
		LevelGrowth:       DefaultLevelGrowth,
		CohortGrowth:      DefaultCohortGrowth,
		PurchaseInflation: DefaultPurchaseInflation,
	}
}

// Validate checks every growth factor is finite and greater than 1.
func (c Constants) Validate() error {
	for _, v := range []struct {
		name  string
		value float64
	}{
		{"level growth", c.LevelGrowth},
		{"cohort growth", c.CohortGrowth},
		{"purchase inflation", c.PurchaseInflation},
	} {
		if !(v.value > 1) || math.IsInf(v.value, 0) {
			return fmt.Errorf("%w: %s must be > 1, got %v", ErrInvalidConstants, v.name, v.value)
		}
	}
	return nil
}

// Costs is the current price of an augmentation.
type Costs struct {
	Money float64 `json:"money"`
	Rep   float64 `json:"rep"`
}

// Quote is the price of one augmentation for a purchase screen.
type Quote struct {
	Name  string
	Costs Costs
	// Level is the level that would be bought next; 0 for non-repeatable augmentations.
	Level int
}

// Pricer computes augmentation prices from the catalog and a player snapshot.
// All methods are pure: they never mutate the registry or the snapshot.
type Pricer struct {
	catalog   *Registry
	constants Constants
}

// NewPricer creates a pricer over catalog.
func NewPricer(catalog *Registry, c Constants) *Pricer {
	return &Pricer{catalog: catalog, constants: c}
}

// Constants returns the pricing constants in use.
func (p *Pricer) Constants() Constants { return p.constants }

// Cost returns the current money and reputation cost of name.
// The template is always resolved through the registry.
// Modifiers must be positive for every template, including cohort members
// whose price ignores them; a zero-valued snapshot fails with ErrInvalidModifiers.
func (p *Pricer) Cost(name string, snap model.AugmentationSnapshot) (Costs, error) {
	t, err := p.catalog.Lookup(name)
	if err != nil {
		return Costs{}, err
	}
	if !(snap.Modifiers.Money > 0) || !(snap.Modifiers.Rep > 0) {
		return Costs{}, fmt.Errorf("pricing %q: %w (money=%v rep=%v)",
			name, ErrInvalidModifiers, snap.Modifiers.Money, snap.Modifiers.Rep)
	}

	switch pr := t.pricing; pr.Mode {
	case PricingRepeatable:
		return p.repeatableCost(t, snap), nil
	case PricingCohort:
		return p.cohortCost(t, pr.Cohort, snap), nil
	default:
		return p.genericCost(t, snap), nil
	}
}

// repeatableCost scales by level; every queued copy of the same augmentation
// additionally inflates the money cost.
func (p *Pricer) repeatableCost(t *Template, snap model.AugmentationSnapshot) Costs {
	level := nextLevel(t, snap)
	mult := math.Pow(p.constants.LevelGrowth, float64(level-1))

	money := t.baseMoneyCost * mult * snap.Modifiers.Money
	money *= math.Pow(p.constants.PurchaseInflation, float64(snap.QueuedCount(t.name)))

	return Costs{
		Money: money,
		Rep:   t.baseRepCost * mult * snap.Modifiers.Rep,
	}
}

// cohortCost scales money with every owned cohort member. Reputation scales
// only for templates on the cohort roster.
func (p *Pricer) cohortCost(t *Template, cohort string, snap model.AugmentationSnapshot) Costs {
	owned := 0
	for _, name := range p.catalog.Cohort(cohort) {
		if snap.Owns(name) {
			owned++
		}
	}
	mult := math.Pow(p.constants.CohortGrowth, float64(owned))

	c := Costs{
		Money: t.baseMoneyCost * mult,
		Rep:   t.baseRepCost,
	}
	if t.CohortMember() {
		c.Rep = t.baseRepCost * mult
	}
	return c
}

func (p *Pricer) genericCost(t *Template, snap model.AugmentationSnapshot) Costs {
	inflation := math.Pow(p.constants.PurchaseInflation, float64(snap.Purchases()))
	return Costs{
		Money: t.baseMoneyCost * inflation * snap.Modifiers.Money,
		Rep:   t.baseRepCost,
	}
}

// NextLevel returns the level the next purchase of name would reach:
// highest owned level + queued copies + 1. Returns 0 for every augmentation
// other than the repeatable one. This is not the installed level.
func (p *Pricer) NextLevel(name string, snap model.AugmentationSnapshot) (int, error) {
	t, err := p.catalog.Lookup(name)
	if err != nil {
		return 0, err
	}
	return nextLevel(t, snap), nil
}

func nextLevel(t *Template, snap model.AugmentationSnapshot) int {
	if t.pricing.Mode != PricingRepeatable {
		return 0
	}
	return snap.OwnedLevel(t.name) + snap.QueuedCount(t.name) + 1
}

// Quote prices several augmentations against the same snapshot.
// Fails on the first unknown name.
func (p *Pricer) Quote(names []string, snap model.AugmentationSnapshot) ([]Quote, error) {
	quotes := make([]Quote, 0, len(names))
	for _, name := range names {
		c, err := p.Cost(name, snap)
		if err != nil {
			return nil, fmt.Errorf("quoting: %w", err)
		}
		level, err := p.NextLevel(name, snap)
		if err != nil {
			return nil, fmt.Errorf("quoting: %w", err)
		}
		quotes = append(quotes, Quote{Name: name, Costs: c, Level: level})
	}
	return quotes, nil
}
