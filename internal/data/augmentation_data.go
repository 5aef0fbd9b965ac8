package data

// Well-known augmentation and faction names used by the pricing rules.
const (
	NeuroFluxGovernor = "NeuroFlux Governor"
	TheRedPill        = "The Red Pill"

	FactionShadowsOfAnarchy = "Shadows of Anarchy"
	FactionBladeburners     = "Bladeburners"
	FactionChurchOfMGod     = "Church of the Machine God"
)

// --- Factions ---

type factionDef struct {
	name    string
	special bool // hidden; never receives the repeatable augmentation automatically
}

// AugmentationCount returns the number of augmentations in the static catalog.
func AugmentationCount() int { return len(augmentationDefs) }

// FactionCount returns the number of factions in the static faction list.
func FactionCount() int { return len(factionDefs) }
