package market

import (
	"fmt"

	"github.com/udisondev/augmarket/internal/game/augment"
	"github.com/udisondev/augmarket/internal/model"
)

// Offer is one augmentation a faction sells, priced for the player.
type Offer struct {
	augment.Quote
	// Missing lists prerequisites the player neither owns nor has queued.
	Missing []string
}

// Purchasable reports whether every prerequisite is satisfied.
func (o Offer) Purchasable() bool { return len(o.Missing) == 0 }

// Available prices every augmentation offered by factionName that the player
// can still buy. Owned or queued non-repeatable augmentations are omitted.
func (s *Service) Available(state *model.AugmentationState, factionName string, dir augment.FactionDirectory) ([]Offer, error) {
	f, ok := dir.Lookup(factionName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFaction, factionName)
	}

	snap := state.Snapshot(s.modifiers)
	names := f.Augmentations()
	offers := make([]Offer, 0, len(names))
	for _, name := range names {
		t, err := s.catalog.Lookup(name)
		if err != nil {
			return nil, fmt.Errorf("faction %q: %w", factionName, err)
		}
		if t.Pricing().Mode != augment.PricingRepeatable && (snap.Owns(name) || snap.IsQueued(name)) {
			continue
		}

		quotes, err := s.pricer.Quote([]string{name}, snap)
		if err != nil {
			return nil, err
		}
		offers = append(offers, Offer{Quote: quotes[0], Missing: missingPrereqs(t, snap)})
	}
	return offers, nil
}

// BuyFrom is Buy restricted to augmentations factionName sells.
func (s *Service) BuyFrom(state *model.AugmentationState, funds Funds, factionName, name string, dir augment.FactionDirectory) (Receipt, error) {
	f, ok := dir.Lookup(factionName)
	if !ok {
		return Receipt{}, fmt.Errorf("%w: %q", ErrUnknownFaction, factionName)
	}
	if !f.Offers(name) {
		return Receipt{}, fmt.Errorf("%w: %q does not sell %q", ErrNotOffered, factionName, name)
	}
	return s.Buy(state, funds, name)
}
