package db

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/augmarket/internal/data"
	"github.com/udisondev/augmarket/internal/game/augment"
	"github.com/udisondev/augmarket/internal/model"
)

func TestAugmentationRepository_SaveLoad(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewAugmentationRepository(pool)
	ctx := context.Background()

	owned := []model.OwnedAugmentation{
		{Name: "BitWire", Level: 1},
		{Name: data.NeuroFluxGovernor, Level: 5},
		{Name: "Augmented Targeting I", Level: 1},
	}
	queued := []model.QueuedAugmentation{
		{Name: data.NeuroFluxGovernor},
		{Name: "Augmented Targeting II"},
		{Name: data.NeuroFluxGovernor},
	}

	require.NoError(t, repo.Save(ctx, 1, owned, queued))

	gotOwned, gotQueued, err := repo.LoadByCharacterID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, owned, gotOwned)
	assert.Equal(t, queued, gotQueued)

	// Other characters are untouched.
	otherOwned, otherQueued, err := repo.LoadByCharacterID(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, otherOwned)
	assert.Empty(t, otherQueued)
}

func TestAugmentationRepository_SaveReplaces(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewAugmentationRepository(pool)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, 7,
		[]model.OwnedAugmentation{{Name: "BitWire", Level: 1}},
		[]model.QueuedAugmentation{{Name: "Neurotrainer I"}},
	))
	require.NoError(t, repo.Save(ctx, 7,
		[]model.OwnedAugmentation{{Name: "BitWire", Level: 1}, {Name: "Neurotrainer I", Level: 1}},
		nil,
	))

	owned, queued, err := repo.LoadByCharacterID(ctx, 7)
	require.NoError(t, err)
	assert.Len(t, owned, 2)
	assert.Empty(t, queued)
}

func TestAugmentationRepository_RejectsBadLevel(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewAugmentationRepository(pool)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, 3, []model.OwnedAugmentation{{Name: "BitWire", Level: 1}}, nil))

	err := repo.Save(ctx, 3, []model.OwnedAugmentation{{Name: "BitWire", Level: 0}}, nil)
	require.Error(t, err)

	// The failed transaction leaves the previous records in place.
	owned, _, err := repo.LoadByCharacterID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, []model.OwnedAugmentation{{Name: "BitWire", Level: 1}}, owned)
}

func TestAugmentationStore_RoundTrip(t *testing.T) {
	pool := setupTestDB(t)
	cat, err := data.LoadCatalog(data.DefaultRules())
	require.NoError(t, err)

	store := NewAugmentationStore(NewAugmentationRepository(pool), cat)
	ctx := context.Background()

	state := model.NewAugmentationState(
		[]model.OwnedAugmentation{{Name: data.NeuroFluxGovernor, Level: 2}},
		[]model.QueuedAugmentation{{Name: "BitWire"}},
	)
	require.NoError(t, store.Save(ctx, 11, state))

	loaded, err := store.Load(ctx, 11)
	require.NoError(t, err)
	assert.Equal(t, state.Owned(), loaded.Owned())
	assert.Equal(t, state.Queued(), loaded.Queued())
}

func TestAugmentationStore_SaveDuringInstall(t *testing.T) {
	pool := setupTestDB(t)
	cat, err := data.LoadCatalog(data.DefaultRules())
	require.NoError(t, err)

	store := NewAugmentationStore(NewAugmentationRepository(pool), cat)
	ctx := context.Background()

	state := model.NewAugmentationState(
		[]model.OwnedAugmentation{{Name: "BitWire", Level: 1}},
		[]model.QueuedAugmentation{{Name: "Neurotrainer I"}, {Name: "Augmented Targeting I"}},
	)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		state.Install(data.NeuroFluxGovernor)
	}()
	go func() {
		defer wg.Done()
		assert.NoError(t, store.Save(ctx, 13, state))
	}()
	wg.Wait()

	loaded, err := store.Load(ctx, 13)
	require.NoError(t, err)
	for _, name := range []string{"BitWire", "Neurotrainer I", "Augmented Targeting I"} {
		assert.True(t, loaded.Has(name), name)
	}
}

func TestAugmentationStore_UnknownName(t *testing.T) {
	pool := setupTestDB(t)
	cat, err := data.LoadCatalog(data.DefaultRules())
	require.NoError(t, err)

	repo := NewAugmentationRepository(pool)
	store := NewAugmentationStore(repo, cat)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, 12, nil, []model.QueuedAugmentation{{Name: "Retired Implant"}}))

	_, err = store.Load(ctx, 12)
	assert.ErrorIs(t, err, augment.ErrUnknownTemplate)
}

func TestMigrationStatus(t *testing.T) {
	version, err := MigrationStatus(context.Background(), testDSN)
	require.NoError(t, err)
	assert.EqualValues(t, 1, version)
}
