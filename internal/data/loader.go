package data

import (
	"fmt"
	"log/slog"

	"github.com/udisondev/augmarket/internal/faction"
	"github.com/udisondev/augmarket/internal/game/augment"
)

// DefaultRules returns the pricing rules of the stock catalog: NeuroFlux
// Governor is the repeatable augmentation and Shadows of Anarchy sells a cohort.
func DefaultRules() augment.PricingRules {
	return augment.PricingRules{
		RepeatableName: NeuroFluxGovernor,
		CohortFactions: []string{FactionShadowsOfAnarchy},
	}
}

// LoadCatalog registers every static augmentation, validates prerequisites
// and freezes the registry.
func LoadCatalog(rules augment.PricingRules) (*augment.Registry, error) {
	reg := augment.NewRegistry(rules)
	for i := range augmentationDefs {
		if _, err := reg.Add(augmentationDefs[i]); err != nil {
			return nil, fmt.Errorf("registering augmentation %q: %w", augmentationDefs[i].Name, err)
		}
	}
	if err := reg.Validate(); err != nil {
		return nil, fmt.Errorf("validating catalog: %w", err)
	}
	reg.Freeze()

	slog.Info("loaded augmentations", "count", reg.Len())
	return reg, nil
}

// LoadFactions builds the faction registry with empty offer lists.
func LoadFactions() (*faction.Registry, error) {
	fr := faction.NewRegistry()
	for _, def := range factionDefs {
		if _, err := fr.Register(def.name, def.special); err != nil {
			return nil, fmt.Errorf("registering faction %q: %w", def.name, err)
		}
	}
	slog.Info("loaded factions", "count", fr.Len())
	return fr, nil
}

// LoadWorld loads the catalog and factions with the default rules, attaches
// every augmentation to the factions that sell it and offers NeuroFlux
// Governor in every non-special faction.
func LoadWorld() (*augment.Registry, *faction.Registry, error) {
	cat, err := LoadCatalog(DefaultRules())
	if err != nil {
		return nil, nil, err
	}
	fr, err := LoadFactions()
	if err != nil {
		return nil, nil, err
	}

	warnings, err := augment.AttachCatalog(cat, fr)
	if err != nil {
		return nil, nil, fmt.Errorf("attaching catalog: %w", err)
	}
	added, err := augment.AttachToAllFactions(cat, fr, NeuroFluxGovernor)
	if err != nil {
		return nil, nil, fmt.Errorf("offering %s: %w", NeuroFluxGovernor, err)
	}

	slog.Info("attached augmentations to factions",
		"missing_factions", len(warnings),
		"repeatable_offers", added)
	return cat, fr, nil
}
