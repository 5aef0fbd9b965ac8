package augment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/augmarket/internal/faction"
)

func newTestFactions(t *testing.T) *faction.Registry {
	t.Helper()

	fr := faction.NewRegistry()
	for _, f := range []struct {
		name    string
		special bool
	}{
		{"CyberSec", false},
		{"NiteSec", false},
		{"Sector-12", false},
		{"Bladeburners", true},
		{testSoA, true},
	} {
		_, err := fr.Register(f.name, f.special)
		require.NoError(t, err)
	}
	return fr
}

func TestAttachToFactions(t *testing.T) {
	t.Parallel()

	cat := newTestCatalog(t)
	fr := newTestFactions(t)

	warnings, err := AttachToFactions(cat, fr, "BitWire", []string{"CyberSec", "Volhaven", "NiteSec"})
	require.NoError(t, err)

	require.Len(t, warnings, 1)
	assert.Equal(t, MissingFactionWarning{Augmentation: "BitWire", Faction: "Volhaven"}, warnings[0])
	assert.Contains(t, warnings[0].Error(), "Volhaven")

	for _, name := range []string{"CyberSec", "NiteSec"} {
		f, ok := fr.Lookup(name)
		require.True(t, ok)
		assert.Equal(t, []string{"BitWire"}, f.Augmentations(), name)
	}
}

func TestAttachToFactions_UnknownTemplate(t *testing.T) {
	t.Parallel()

	cat := newTestCatalog(t)
	fr := newTestFactions(t)

	_, err := AttachToFactions(cat, fr, "Missing", []string{"CyberSec"})
	assert.ErrorIs(t, err, ErrUnknownTemplate)

	f, _ := fr.Lookup("CyberSec")
	assert.Empty(t, f.Augmentations())
}

func TestAttachToAllFactions(t *testing.T) {
	t.Parallel()

	cat := newTestCatalog(t)
	fr := newTestFactions(t)

	added, err := AttachToAllFactions(cat, fr, testNeuroFlux)
	require.NoError(t, err)
	assert.Equal(t, 3, added)

	// Second pass changes nothing.
	added, err = AttachToAllFactions(cat, fr, testNeuroFlux)
	require.NoError(t, err)
	assert.Zero(t, added)

	for _, f := range fr.All() {
		count := 0
		for _, aug := range f.Augmentations() {
			if aug == testNeuroFlux {
				count++
			}
		}
		if f.Special() {
			assert.Zero(t, count, f.Name())
		} else {
			assert.Equal(t, 1, count, f.Name())
		}
	}
}

func TestAttachCatalog(t *testing.T) {
	t.Parallel()

	cat := newTestCatalog(t)
	fr := newTestFactions(t)

	warnings, err := AttachCatalog(cat, fr)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	soa, ok := fr.Lookup(testSoA)
	require.True(t, ok)
	assert.Equal(t, []string{
		"SoA - Might of Ares",
		"SoA - Wisdom of Athena",
		"SoA - Trickery of Hermes",
		"Anarchist Sidearm",
	}, soa.Augmentations())

	cyber, _ := fr.Lookup("CyberSec")
	assert.True(t, cyber.Offers("BitWire"))
	assert.False(t, cyber.Offers(testNeuroFlux))
}
