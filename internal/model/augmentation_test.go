package model

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRepeatable = "NeuroFlux Governor"

func TestAugmentationSnapshot_OwnedLevel(t *testing.T) {
	t.Parallel()

	snap := AugmentationSnapshot{
		Owned: []OwnedAugmentation{
			{Name: "BitWire", Level: 1},
			{Name: testRepeatable, Level: 2},
			{Name: testRepeatable, Level: 5},
		},
	}

	assert.Equal(t, 5, snap.OwnedLevel(testRepeatable))
	assert.Equal(t, 1, snap.OwnedLevel("BitWire"))
	assert.Equal(t, 0, snap.OwnedLevel("Neurotrainer I"))
}

func TestAugmentationSnapshot_Queued(t *testing.T) {
	t.Parallel()

	snap := AugmentationSnapshot{
		Queued: []QueuedAugmentation{{Name: testRepeatable}, {Name: "BitWire"}, {Name: testRepeatable}},
	}

	assert.Equal(t, 2, snap.QueuedCount(testRepeatable))
	assert.True(t, snap.IsQueued("BitWire"))
	assert.False(t, snap.IsQueued("Neurotrainer I"))
	assert.Equal(t, 3, snap.Purchases())
	assert.False(t, snap.Owns("BitWire"))
}

func TestAugmentationState_InstallMergesRepeatable(t *testing.T) {
	t.Parallel()

	st := NewAugmentationState([]OwnedAugmentation{{Name: testRepeatable, Level: 2}}, nil)
	st.Queue(testRepeatable)
	st.Queue(testRepeatable)
	st.Queue("BitWire")

	n := st.Install(testRepeatable)
	assert.Equal(t, 3, n)
	assert.Empty(t, st.Queued())

	owned := st.Owned()
	require.Len(t, owned, 2)
	assert.Equal(t, OwnedAugmentation{Name: testRepeatable, Level: 4}, owned[0])
	assert.Equal(t, OwnedAugmentation{Name: "BitWire", Level: 1}, owned[1])
}

func TestAugmentationState_InstallFirstRepeatable(t *testing.T) {
	t.Parallel()

	st := NewAugmentationState(nil, nil)
	st.Queue(testRepeatable)
	st.Queue(testRepeatable)
	st.Install(testRepeatable)

	assert.Equal(t, []OwnedAugmentation{{Name: testRepeatable, Level: 2}}, st.Owned())
}

func TestAugmentationState_InstallSkipsOwnedDuplicate(t *testing.T) {
	t.Parallel()

	st := NewAugmentationState([]OwnedAugmentation{{Name: "BitWire", Level: 1}}, nil)
	st.Queue("BitWire")
	st.Install(testRepeatable)

	assert.Equal(t, []OwnedAugmentation{{Name: "BitWire", Level: 1}}, st.Owned())
}

func TestAugmentationState_Has(t *testing.T) {
	t.Parallel()

	st := NewAugmentationState([]OwnedAugmentation{{Name: "BitWire", Level: 1}}, nil)
	st.Queue("Neurotrainer I")

	assert.True(t, st.Has("BitWire"))
	assert.True(t, st.Has("Neurotrainer I"))
	assert.False(t, st.Has("Neurotrainer II"))
}

func TestAugmentationState_SnapshotIsCopy(t *testing.T) {
	t.Parallel()

	owned := []OwnedAugmentation{{Name: "BitWire", Level: 1}}
	st := NewAugmentationState(owned, nil)
	owned[0].Name = "mutated"

	snap := st.Snapshot(DefaultCostModifiers())
	snap.Owned[0].Level = 99
	st.Queue("Neurotrainer I")

	assert.Equal(t, []OwnedAugmentation{{Name: "BitWire", Level: 1}}, st.Owned())
	assert.Empty(t, snap.Queued)
	assert.Equal(t, CostModifiers{Money: 1, Rep: 1}, snap.Modifiers)
}

func TestAugmentationState_ConcurrentQueue(t *testing.T) {
	t.Parallel()

	st := NewAugmentationState(nil, nil)

	const goroutines = 50
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for range goroutines {
		go func() {
			defer wg.Done()
			st.Queue(testRepeatable)
			_ = st.Snapshot(DefaultCostModifiers())
		}()
	}
	wg.Wait()

	assert.Len(t, st.Queued(), goroutines)
}

func TestAugmentationState_RecordsDuringInstall(t *testing.T) {
	t.Parallel()

	st := NewAugmentationState([]OwnedAugmentation{{Name: "BitWire", Level: 1}}, []QueuedAugmentation{{Name: "Neurotrainer I"}, {Name: "Synaptic Enhancement Implant"}})

	const readers = 20
	var wg sync.WaitGroup
	wg.Add(readers + 1)
	go func() {
		defer wg.Done()
		st.Install(testRepeatable)
	}()
	for range readers {
		go func() {
			defer wg.Done()
			owned, queued := st.Records()
			// Either the whole queue is pending or all of it is installed.
			assert.Equal(t, 3, len(owned)+len(queued))
		}()
	}
	wg.Wait()

	owned, queued := st.Records()
	assert.Len(t, owned, 3)
	assert.Empty(t, queued)
}

func TestMultipliers(t *testing.T) {
	t.Parallel()

	m := Multipliers{HackingMult: 1.05, StartingMoney: 1e6, HackingSpeedMult: 1.02}

	v, ok := m.Get(HackingMult)
	assert.True(t, ok)
	assert.InDelta(t, 1.05, v, 1e-12)

	_, ok = m.Get(CharismaMult)
	assert.False(t, ok)

	clone := m.Clone()
	clone[HackingMult] = 2
	assert.InDelta(t, 1.05, m[HackingMult], 1e-12)

	assert.Equal(t, []Effect{HackingMult, HackingSpeedMult, StartingMoney}, m.Ordered())
	assert.NotNil(t, Multipliers(nil).Clone())
}

func TestIsKnownEffect(t *testing.T) {
	t.Parallel()

	for _, e := range Effects() {
		assert.True(t, IsKnownEffect(e), "effect %q", e)
	}
	assert.True(t, IsKnownEffect(HacknetNodeRAMCostMult))
	assert.False(t, IsKnownEffect("luck_mult"))
}
