package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/udisondev/augmarket/internal/game/augment"
	"github.com/udisondev/augmarket/internal/model"
)

// AugmentationStore loads and saves the augmentation state of characters and
// checks loaded records against the catalog.
type AugmentationStore struct {
	repo    *AugmentationRepository
	catalog *augment.Registry
}

// NewAugmentationStore creates a new store.
func NewAugmentationStore(repo *AugmentationRepository, catalog *augment.Registry) *AugmentationStore {
	return &AugmentationStore{repo: repo, catalog: catalog}
}

// Load restores the state of a character. A record naming an augmentation
// missing from the catalog fails the load.
func (s *AugmentationStore) Load(ctx context.Context, charID int64) (*model.AugmentationState, error) {
	owned, queued, err := s.repo.LoadByCharacterID(ctx, charID)
	if err != nil {
		return nil, err
	}
	if err := augment.CheckState(s.catalog, owned, queued); err != nil {
		return nil, fmt.Errorf("character %d: %w", charID, err)
	}

	slog.Debug("augmentations loaded",
		"characterID", charID,
		"owned", len(owned),
		"queued", len(queued))
	return model.NewAugmentationState(owned, queued), nil
}

// Save persists the current state of a character.
func (s *AugmentationStore) Save(ctx context.Context, charID int64, state *model.AugmentationState) error {
	owned, queued := state.Records()
	if err := s.repo.Save(ctx, charID, owned, queued); err != nil {
		return fmt.Errorf("saving augmentations for character %d: %w", charID, err)
	}
	return nil
}
