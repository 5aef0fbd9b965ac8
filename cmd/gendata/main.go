// Code generator: parses the YAML catalog under data/ and generates Go literals.
//
// Usage:
//
//	go run ./cmd/gendata all                # generate everything
//	go run ./cmd/gendata augmentations      # generate only specified categories
//	go run ./cmd/gendata --list             # list available generators
package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"
)

const (
	sourceDir = "data"
	outputDir = "internal/data"
)

type generator struct {
	name     string
	desc     string
	generate func(srcDir, outDir string) error
}

var generators []generator

func registerGenerator(name, desc string, fn func(srcDir, outDir string) error) {
	generators = append(generators, generator{name: name, desc: desc, generate: fn})
}

func init() {
	registerGenerator("augmentations", "Augmentation catalog and factions (augmentations.yaml)", generateAugmentations)
}

func main() {
	args := os.Args[1:]

	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	if args[0] == "--list" {
		printList()
		return
	}

	toRun, err := selectGenerators(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		printList()
		os.Exit(1)
	}

	totalStart := time.Now()
	for _, g := range toRun {
		start := time.Now()
		fmt.Printf("[gendata] running %s...\n", g.name)
		if err := g.generate(sourceDir, outputDir); err != nil {
			fmt.Fprintf(os.Stderr, "[gendata] FAILED %s: %v\n", g.name, err)
			os.Exit(1)
		}
		fmt.Printf("[gendata] %s done (%s)\n", g.name, time.Since(start).Round(time.Millisecond))
	}
	fmt.Printf("[gendata] all done (%s)\n", time.Since(totalStart).Round(time.Millisecond))
}

func selectGenerators(args []string) ([]generator, error) {
	if args[0] == "all" {
		return generators, nil
	}

	genMap := make(map[string]generator, len(generators))
	for _, g := range generators {
		genMap[g.name] = g
	}
	var out []generator
	for _, name := range args {
		g, ok := genMap[name]
		if !ok {
			return nil, fmt.Errorf("unknown generator: %s", name)
		}
		out = append(out, g)
	}
	return out, nil
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: go run ./cmd/gendata <all | name1 name2 ...>")
	fmt.Fprintln(os.Stderr, "       go run ./cmd/gendata --list")
}

func printList() {
	sorted := make([]generator, len(generators))
	copy(sorted, generators)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].name < sorted[j].name })

	maxLen := 0
	for _, g := range sorted {
		maxLen = max(maxLen, len(g.name))
	}

	fmt.Println("Available generators:")
	for _, g := range sorted {
		padding := strings.Repeat(" ", maxLen-len(g.name)+2)
		fmt.Printf("  %s%s%s\n", g.name, padding, g.desc)
	}
}
