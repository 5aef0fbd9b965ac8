package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/udisondev/augmarket/internal/game/augment"
)

func newCatalogCmd(st *cliState) *cobra.Command {
	var factionName string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List catalog augmentations with base costs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			templates := st.app.catalog.All()
			if factionName != "" {
				if _, ok := st.app.factions.Lookup(factionName); !ok {
					return fmt.Errorf("unknown faction %q", factionName)
				}
				filtered := templates[:0]
				for _, t := range templates {
					if t.OfferedBy(factionName) {
						filtered = append(filtered, t)
					}
				}
				templates = filtered
			}
			return printCatalog(cmd.OutOrStdout(), templates)
		},
	}
	cmd.Flags().StringVarP(&factionName, "faction", "f", "", "Only augmentations declared by this faction")
	return cmd
}

func printCatalog(w io.Writer, templates []*augment.Template) error {
	color.New(color.FgCyan, color.Bold).Fprintf(w, "Augmentations (%d)\n", len(templates))

	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Name", "Pricing", "Money", "Rep", "Prereqs", "Factions"}),
	)
	for _, t := range templates {
		mode := t.Pricing().Mode.String()
		if t.IsSpecial() {
			mode += " (special)"
		}
		row := []string{
			t.Name(),
			mode,
			formatAmount(t.BaseMoneyCost()),
			formatAmount(t.BaseRepRequirement()),
			strings.Join(t.Prereqs(), ", "),
			strings.Join(t.Factions(), ", "),
		}
		if err := table.Append(row); err != nil {
			return fmt.Errorf("appending row: %w", err)
		}
	}
	return table.Render()
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 0, 64)
}
