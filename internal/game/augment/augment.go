// Package augment implements the augmentation catalog and pricing engine.
//
// A Template is the immutable catalog entry of a purchasable augmentation.
// Templates are registered once in a Registry at startup; a Pricer resolves
// every price through the Registry so base costs always come from the
// canonical template.
package augment

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/udisondev/augmarket/internal/model"
)

// Errors.
var (
	ErrUnknownTemplate   = errors.New("unknown augmentation")
	ErrDuplicateTemplate = errors.New("duplicate augmentation")
	ErrInvalidTemplate   = errors.New("invalid augmentation")
	ErrRegistryFrozen    = errors.New("augmentation registry is frozen")
	ErrPrerequisiteCycle = errors.New("augmentation prerequisite cycle")
	ErrInvalidModifiers  = errors.New("cost modifiers must be positive")
	ErrInvalidConstants  = errors.New("invalid pricing constants")
)

// PricingMode selects how the price of a template scales with player state.
type PricingMode int

const (
	// PricingGeneric scales money with purchase inflation; reputation is fixed.
	PricingGeneric PricingMode = iota
	// PricingRepeatable is the infinitely repeatable augmentation priced by level.
	PricingRepeatable
	// PricingCohort scales with how many members of a special cohort are owned.
	PricingCohort
)

func (m PricingMode) String() string {
	switch m {
	case PricingGeneric:
		return "generic"
	case PricingRepeatable:
		return "repeatable"
	case PricingCohort:
		return "cohort"
	default:
		return fmt.Sprintf("PricingMode(%d)", int(m))
	}
}

// Pricing is the pricing tag of a template. Cohort is set only for PricingCohort.
type Pricing struct {
	Mode   PricingMode
	Cohort string
}

// PricingRules decide the pricing tag of templates at construction.
type PricingRules struct {
	// RepeatableName is the name of the single infinitely repeatable augmentation.
	RepeatableName string
	// CohortFactions are special factions whose augmentations are priced as a cohort.
	CohortFactions []string
}

func (r PricingRules) classify(name string, factions []string) Pricing {
	if r.RepeatableName != "" && name == r.RepeatableName {
		return Pricing{Mode: PricingRepeatable}
	}
	for _, f := range factions {
		if slices.Contains(r.CohortFactions, f) {
			return Pricing{Mode: PricingCohort, Cohort: f}
		}
	}
	return Pricing{Mode: PricingGeneric}
}

// Params is the plain-data form of a template.
type Params struct {
	Name        string            `json:"name" yaml:"name"`
	Info        string            `json:"info,omitempty" yaml:"info,omitempty"`
	MoneyCost   float64           `json:"money_cost" yaml:"money_cost"`
	RepCost     float64           `json:"rep_cost" yaml:"rep_cost"`
	Prereqs     []string          `json:"prereqs,omitempty" yaml:"prereqs,omitempty"`
	Factions    []string          `json:"factions,omitempty" yaml:"factions,omitempty"`
	IsSpecial   bool              `json:"special,omitempty" yaml:"special,omitempty"`
	Cohort      string            `json:"cohort,omitempty" yaml:"cohort,omitempty"`
	Programs    []string          `json:"programs,omitempty" yaml:"programs,omitempty"`
	Multipliers model.Multipliers `json:"multipliers,omitempty" yaml:"multipliers,omitempty"`
}

// Template is an immutable catalog entry. Base costs are set by NewTemplate
// and have no mutator.
type Template struct {
	name          string
	info          string
	baseMoneyCost float64
	baseRepCost   float64
	prereqs       []string
	factions      []string
	isSpecial     bool
	cohort        string
	programs      []string
	mults         model.Multipliers
	pricing       Pricing
}

// NewTemplate validates p and builds a template. Only non-zero multipliers
// are copied into the multiplier table.
func NewTemplate(p Params, rules PricingRules) (*Template, error) {
	if p.Name == "" {
		return nil, fmt.Errorf("%w: empty name", ErrInvalidTemplate)
	}
	if !validCost(p.MoneyCost) || !validCost(p.RepCost) {
		return nil, fmt.Errorf("%w: %q: costs must be finite and non-negative (money=%v rep=%v)",
			ErrInvalidTemplate, p.Name, p.MoneyCost, p.RepCost)
	}
	if slices.Contains(p.Prereqs, p.Name) {
		return nil, fmt.Errorf("%w: %q requires itself", ErrInvalidTemplate, p.Name)
	}

	mults := make(model.Multipliers, len(p.Multipliers))
	for e, v := range p.Multipliers {
		if !model.IsKnownEffect(e) {
			return nil, fmt.Errorf("%w: %q: unknown effect %q", ErrInvalidTemplate, p.Name, e)
		}
		if v == 0 {
			continue
		}
		mults[e] = v
	}

	pricing := rules.classify(p.Name, p.Factions)
	if p.Cohort != "" {
		if pricing.Mode != PricingCohort || pricing.Cohort != p.Cohort {
			return nil, fmt.Errorf("%w: %q: cohort %q member must be offered by that cohort faction",
				ErrInvalidTemplate, p.Name, p.Cohort)
		}
	}

	return &Template{
		name:          p.Name,
		info:          p.Info,
		baseMoneyCost: p.MoneyCost,
		baseRepCost:   p.RepCost,
		prereqs:       slices.Clone(p.Prereqs),
		factions:      slices.Clone(p.Factions),
		isSpecial:     p.IsSpecial,
		cohort:        p.Cohort,
		programs:      slices.Clone(p.Programs),
		mults:         mults,
		pricing:       pricing,
	}, nil
}

func validCost(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// Template accessors.

func (t *Template) Name() string                { return t.name }
func (t *Template) Info() string                { return t.info }
func (t *Template) BaseMoneyCost() float64      { return t.baseMoneyCost }
func (t *Template) BaseRepRequirement() float64 { return t.baseRepCost }
func (t *Template) IsSpecial() bool             { return t.isSpecial }
func (t *Template) Pricing() Pricing            { return t.pricing }

// Prereqs returns a copy of the prerequisite names in declaration order.
func (t *Template) Prereqs() []string { return slices.Clone(t.prereqs) }

// Factions returns a copy of the factions that offer the template.
func (t *Template) Factions() []string { return slices.Clone(t.factions) }

// Programs returns programs granted after install.
func (t *Template) Programs() []string { return slices.Clone(t.programs) }

// Multipliers returns a copy of the multiplier table.
func (t *Template) Multipliers() model.Multipliers { return t.mults.Clone() }

// OfferedBy reports whether the template lists faction among its offerers.
func (t *Template) OfferedBy(faction string) bool {
	return slices.Contains(t.factions, faction)
}

// CohortMember reports whether the template is on the roster of its cohort.
func (t *Template) CohortMember() bool {
	return t.cohort != "" && t.cohort == t.pricing.Cohort
}

// Params returns the template as plain data.
func (t *Template) Params() Params {
	return Params{
		Name:        t.name,
		Info:        t.info,
		MoneyCost:   t.baseMoneyCost,
		RepCost:     t.baseRepCost,
		Prereqs:     slices.Clone(t.prereqs),
		Factions:    slices.Clone(t.factions),
		IsSpecial:   t.isSpecial,
		Cohort:      t.cohort,
		Programs:    slices.Clone(t.programs),
		Multipliers: t.mults.Clone(),
	}
}
