package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/augmarket/internal/game/augment"
	"github.com/udisondev/augmarket/internal/model"
)

// --- YAML structures ---

type yamlCatalog struct {
	Augmentations []augment.Params `yaml:"augmentations"`
	Factions      []yamlFaction    `yaml:"factions"`
}

type yamlFaction struct {
	Name    string `yaml:"name"`
	Special bool   `yaml:"special"`
}

func generateAugmentations(srcDir, outDir string) error {
	srcPath := filepath.Join(srcDir, "augmentations.yaml")

	cat, err := parseCatalog(srcPath)
	if err != nil {
		return fmt.Errorf("parse catalog: %w", err)
	}

	outPath := filepath.Join(outDir, "augmentation_data_generated.go")
	if err := generateAugmentationGoFile(cat, "data/augmentations.yaml", outPath); err != nil {
		return fmt.Errorf("generate augmentations: %w", err)
	}

	fmt.Printf("  Generated %s: %d augmentations, %d factions\n",
		outPath, len(cat.Augmentations), len(cat.Factions))
	return nil
}

func parseCatalog(path string) (*yamlCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}

	var cat yamlCatalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", filepath.Base(path), err)
	}
	if err := checkCatalog(&cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

// checkCatalog catches mistakes that would otherwise only surface when the
// generated tables are loaded.
func checkCatalog(cat *yamlCatalog) error {
	var errs []error

	factions := make(map[string]bool, len(cat.Factions))
	for _, f := range cat.Factions {
		if f.Name == "" {
			errs = append(errs, errors.New("faction with empty name"))
			continue
		}
		if factions[f.Name] {
			errs = append(errs, fmt.Errorf("duplicate faction %q", f.Name))
		}
		factions[f.Name] = true
	}

	seen := make(map[string]bool, len(cat.Augmentations))
	for _, a := range cat.Augmentations {
		if a.Name == "" {
			errs = append(errs, errors.New("augmentation with empty name"))
			continue
		}
		if seen[a.Name] {
			errs = append(errs, fmt.Errorf("duplicate augmentation %q", a.Name))
		}
		seen[a.Name] = true

		for e := range a.Multipliers {
			if !model.IsKnownEffect(e) {
				errs = append(errs, fmt.Errorf("augmentation %q: unknown effect %q", a.Name, e))
			}
		}
		for _, f := range a.Factions {
			if !factions[f] {
				errs = append(errs, fmt.Errorf("augmentation %q: unknown faction %q", a.Name, f))
			}
		}
	}
	return errors.Join(errs...)
}

func generateAugmentationGoFile(cat *yamlCatalog, source, outPath string) error {
	var buf bytes.Buffer

	writeHeader(&buf, source)

	fmt.Fprintf(&buf, "import (\n")
	fmt.Fprintf(&buf, "\t%q\n", "github.com/udisondev/augmarket/internal/game/augment")
	fmt.Fprintf(&buf, "\t%q\n", "github.com/udisondev/augmarket/internal/model")
	fmt.Fprintf(&buf, ")\n\n")

	fmt.Fprintf(&buf, "var augmentationDefs = []augment.Params{\n")
	for _, a := range cat.Augmentations {
		writeAugmentation(&buf, a)
	}
	fmt.Fprintf(&buf, "}\n\n")

	fmt.Fprintf(&buf, "var factionDefs = []factionDef{\n")
	for _, f := range cat.Factions {
		if f.Special {
			fmt.Fprintf(&buf, "\t{name: %q, special: true},\n", f.Name)
		} else {
			fmt.Fprintf(&buf, "\t{name: %q},\n", f.Name)
		}
	}
	fmt.Fprintf(&buf, "}\n")

	return writeGoFile(outPath, buf.Bytes())
}

func writeAugmentation(buf *bytes.Buffer, a augment.Params) {
	fmt.Fprintf(buf, "\t{\n")
	fmt.Fprintf(buf, "\t\tName: %q,\n", a.Name)
	if a.Info != "" {
		fmt.Fprintf(buf, "\t\tInfo: %q,\n", a.Info)
	}
	fmt.Fprintf(buf, "\t\tMoneyCost: %s,\n", goFloat(a.MoneyCost))
	fmt.Fprintf(buf, "\t\tRepCost: %s,\n", goFloat(a.RepCost))
	if len(a.Prereqs) > 0 {
		fmt.Fprintf(buf, "\t\tPrereqs: %s,\n", goStrings(a.Prereqs))
	}
	if len(a.Factions) > 0 {
		fmt.Fprintf(buf, "\t\tFactions: %s,\n", goStrings(a.Factions))
	}
	if a.IsSpecial {
		fmt.Fprintf(buf, "\t\tIsSpecial: true,\n")
	}
	if a.Cohort != "" {
		fmt.Fprintf(buf, "\t\tCohort: %q,\n", a.Cohort)
	}
	if len(a.Programs) > 0 {
		fmt.Fprintf(buf, "\t\tPrograms: %s,\n", goStrings(a.Programs))
	}
	if len(a.Multipliers) > 0 {
		fmt.Fprintf(buf, "\t\tMultipliers: model.Multipliers{\n")
		for _, e := range a.Multipliers.Ordered() {
			fmt.Fprintf(buf, "\t\t\t%q: %s,\n", string(e), goFloat(a.Multipliers[e]))
		}
		fmt.Fprintf(buf, "\t\t},\n")
	}
	fmt.Fprintf(buf, "\t},\n")
}
