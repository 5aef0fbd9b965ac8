package augment

import (
	"log/slog"

	"github.com/udisondev/augmarket/internal/faction"
)

// FactionDirectory is the faction lookup used for propagation.
// *faction.Registry implements it.
type FactionDirectory interface {
	Lookup(name string) (*faction.Faction, bool)
	All() []*faction.Faction
}

// AttachToFactions adds augmentation name to the offer list of every faction
// in targets. Missing factions are logged and returned as warnings; the rest
// are still processed.
func AttachToFactions(catalog *Registry, dir FactionDirectory, name string, targets []string) ([]MissingFactionWarning, error) {
	t, err := catalog.Lookup(name)
	if err != nil {
		return nil, err
	}

	var warnings []MissingFactionWarning
	for _, target := range targets {
		f, ok := dir.Lookup(target)
		if !ok {
			slog.Warn("faction not found, skipping augmentation offer",
				"augmentation", t.Name(),
				"faction", target)
			warnings = append(warnings, MissingFactionWarning{Augmentation: t.Name(), Faction: target})
			continue
		}
		f.Offer(t.Name())
	}
	return warnings, nil
}

// AttachToAllFactions offers augmentation name in every non-special faction.
// Returns the number of factions whose offer list changed.
func AttachToAllFactions(catalog *Registry, dir FactionDirectory, name string) (int, error) {
	t, err := catalog.Lookup(name)
	if err != nil {
		return 0, err
	}

	added := 0
	for _, f := range dir.All() {
		if f == nil || f.Special() {
			continue
		}
		if f.Offer(t.Name()) {
			added++
		}
	}
	return added, nil
}

// AttachCatalog offers every template in the factions it declares.
func AttachCatalog(catalog *Registry, dir FactionDirectory) ([]MissingFactionWarning, error) {
	var warnings []MissingFactionWarning
	for _, t := range catalog.All() {
		w, err := AttachToFactions(catalog, dir, t.Name(), t.factions)
		if err != nil {
			return warnings, err
		}
		warnings = append(warnings, w...)
	}
	return warnings, nil
}
