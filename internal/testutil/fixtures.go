package testutil

import (
	"github.com/udisondev/augmarket/internal/model"
)

// Fixtures holds player states shared by tests of several packages.
var Fixtures = struct {
	// Mid-game player: some hacking augmentations, NeuroFlux level 3,
	// two purchases waiting for install.
	MidOwned  []model.OwnedAugmentation
	MidQueued []model.QueuedAugmentation
}{
	MidOwned: []model.OwnedAugmentation{
		{Name: "BitWire", Level: 1},
		{Name: "Cranial Signal Processors - Gen I", Level: 1},
		{Name: "NeuroFlux Governor", Level: 3},
	},
	MidQueued: []model.QueuedAugmentation{
		{Name: "Neurotrainer I"},
		{Name: "NeuroFlux Governor"},
	},
}

// MidGameState returns a fresh copy of the mid-game player state.
func MidGameState() *model.AugmentationState {
	return model.NewAugmentationState(Fixtures.MidOwned, Fixtures.MidQueued)
}
