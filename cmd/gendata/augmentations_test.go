package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/augmarket/internal/game/augment"
	"github.com/udisondev/augmarket/internal/model"
)

func TestGoFloat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{750000, "750000"},
		{4375000000, "4375000000"},
		{1.01, "1.01"},
		{0.85, "0.85"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, goFloat(tt.in))
	}
}

func TestCheckCatalog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cat     yamlCatalog
		wantErr string
	}{
		{
			name: "valid",
			cat: yamlCatalog{
				Augmentations: []augment.Params{{Name: "BitWire", Factions: []string{"CyberSec"}}},
				Factions:      []yamlFaction{{Name: "CyberSec"}},
			},
		},
		{
			name: "unknown faction",
			cat: yamlCatalog{
				Augmentations: []augment.Params{{Name: "BitWire", Factions: []string{"CyberSec"}}},
			},
			wantErr: `unknown faction "CyberSec"`,
		},
		{
			name: "unknown effect",
			cat: yamlCatalog{
				Augmentations: []augment.Params{{Name: "BitWire", Multipliers: model.Multipliers{"luck_mult": 2}}},
			},
			wantErr: `unknown effect "luck_mult"`,
		},
		{
			name: "duplicate augmentation",
			cat: yamlCatalog{
				Augmentations: []augment.Params{{Name: "BitWire"}, {Name: "BitWire"}},
			},
			wantErr: `duplicate augmentation "BitWire"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := checkCatalog(&tt.cat)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGenerateAugmentations(t *testing.T) {
	t.Parallel()

	src := t.TempDir()
	out := t.TempDir()
	yamlSrc := `
augmentations:
  - name: BitWire
    money_cost: 10000000
    rep_cost: 3750
    factions: [CyberSec]
    multipliers:
      hacking_mult: 1.05
factions:
  - {name: CyberSec}
  - {name: Bladeburners, special: true}
`
	require.NoError(t, os.WriteFile(filepath.Join(src, "augmentations.yaml"), []byte(yamlSrc), 0o600))

	require.NoError(t, generateAugmentations(src, out))

	got, err := os.ReadFile(filepath.Join(out, "augmentation_data_generated.go"))
	require.NoError(t, err)
	code := string(got)

	assert.True(t, strings.HasPrefix(code, "// Code generated by cmd/gendata"))
	assert.Contains(t, code, `Name:      "BitWire",`)
	assert.Contains(t, code, `MoneyCost: 10000000,`)
	assert.Contains(t, code, `"hacking_mult": 1.05,`)
	assert.Contains(t, code, `{name: "Bladeburners", special: true},`)
}

func TestGeneratedCatalogInSync(t *testing.T) {
	t.Parallel()

	out := t.TempDir()
	require.NoError(t, generateAugmentations(filepath.Join("..", "..", "data"), out))

	want, err := os.ReadFile(filepath.Join("..", "..", "internal", "data", "augmentation_data_generated.go"))
	require.NoError(t, err)
	got, err := os.ReadFile(filepath.Join(out, "augmentation_data_generated.go"))
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got), "run: go run ./cmd/gendata augmentations")
}
