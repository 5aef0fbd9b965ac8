package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/udisondev/augmarket/internal/faction"
	"github.com/udisondev/augmarket/internal/game/market"
)

func newFactionsCmd(st *cliState) *cobra.Command {
	var flags stateFlags

	cmd := &cobra.Command{
		Use:   "factions [faction]",
		Short: "List factions, or the priced offers of one faction",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return printFactions(cmd.OutOrStdout(), st.app.factions.All())
			}

			state, err := flags.load(cmd.Context(), st.app)
			if err != nil {
				return err
			}
			offers, err := st.app.market.Available(state, args[0], st.app.factions)
			if err != nil {
				return err
			}
			return printOffers(cmd.OutOrStdout(), args[0], offers)
		},
	}
	flags.register(cmd)
	return cmd
}

func printFactions(w io.Writer, factions []*faction.Faction) error {
	color.New(color.FgCyan, color.Bold).Fprintf(w, "Factions (%d)\n", len(factions))

	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Faction", "Special", "Offers"}),
	)
	for _, f := range factions {
		special := ""
		if f.Special() {
			special = "yes"
		}
		if err := table.Append([]string{
			f.Name(),
			special,
			strconv.Itoa(len(f.Augmentations())),
		}); err != nil {
			return fmt.Errorf("appending row: %w", err)
		}
	}
	return table.Render()
}

func printOffers(w io.Writer, factionName string, offers []market.Offer) error {
	color.New(color.FgCyan, color.Bold).Fprintf(w, "%s offers (%d)\n", factionName, len(offers))

	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Name", "Level", "Money", "Rep", "Status"}),
	)
	for _, o := range offers {
		status := "available"
		if !o.Purchasable() {
			status = "requires " + strings.Join(o.Missing, ", ")
		}
		if err := table.Append([]string{
			o.Name,
			formatLevel(o.Level),
			formatAmount(o.Costs.Money),
			formatAmount(o.Costs.Rep),
			status,
		}); err != nil {
			return fmt.Errorf("appending row: %w", err)
		}
	}
	return table.Render()
}
