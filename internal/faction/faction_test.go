package faction

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Register(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	f, err := r.Register("CyberSec", false)
	require.NoError(t, err)
	assert.Equal(t, "CyberSec", f.Name())
	assert.False(t, f.Special())

	_, err = r.Register("CyberSec", true)
	assert.ErrorIs(t, err, ErrDuplicateFaction)

	_, err = r.Register("", false)
	assert.ErrorIs(t, err, ErrEmptyName)

	assert.Equal(t, 1, r.Len())
}

func TestRegistry_LookupAndOrder(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	names := []string{"CyberSec", "Bladeburners", "NiteSec"}
	for i, n := range names {
		_, err := r.Register(n, i == 1)
		require.NoError(t, err)
	}

	f, ok := r.Lookup("Bladeburners")
	require.True(t, ok)
	assert.True(t, f.Special())

	_, ok = r.Lookup("Illuminati")
	assert.False(t, ok)

	all := r.All()
	require.Len(t, all, 3)
	for i, f := range all {
		assert.Equal(t, names[i], f.Name())
	}
}

func TestFaction_OfferIdempotent(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	f, err := r.Register("CyberSec", false)
	require.NoError(t, err)

	assert.True(t, f.Offer("BitWire"))
	assert.True(t, f.Offer("Neurotrainer I"))
	assert.False(t, f.Offer("BitWire"))

	assert.Equal(t, []string{"BitWire", "Neurotrainer I"}, f.Augmentations())
	assert.True(t, f.Offers("BitWire"))
	assert.False(t, f.Offers("The Red Pill"))

	// Returned list is a copy.
	list := f.Augmentations()
	list[0] = "mutated"
	assert.Equal(t, "BitWire", f.Augmentations()[0])
}

func TestFaction_ConcurrentOffer(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	f, err := r.Register("Sector-12", false)
	require.NoError(t, err)

	const goroutines = 32
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for range goroutines {
		go func() {
			defer wg.Done()
			f.Offer("CashRoot Starter Kit")
		}()
	}
	wg.Wait()

	assert.Equal(t, []string{"CashRoot Starter Kit"}, f.Augmentations())
}
