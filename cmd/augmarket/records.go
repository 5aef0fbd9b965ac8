package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/udisondev/augmarket/internal/db"
	"github.com/udisondev/augmarket/internal/game/market"
)

func newBuyCmd(st *cliState) *cobra.Command {
	var (
		character   int64
		factionName string
		funds       market.Funds
	)

	cmd := &cobra.Command{
		Use:   "buy <augmentation>",
		Short: "Buy an augmentation for a character and queue it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return st.app.withStore(ctx, func(store *db.AugmentationStore) error {
				state, err := store.Load(ctx, character)
				if err != nil {
					return err
				}
				receipt, err := st.app.market.BuyFrom(state, funds, factionName, args[0], st.app.factions)
				if err != nil {
					return err
				}
				if err := store.Save(ctx, character, state); err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				color.New(color.FgGreen, color.Bold).Fprintf(out, "Queued %s\n", receipt.Name)
				fmt.Fprintf(out, "   Money: %s\n", formatAmount(receipt.Costs.Money))
				fmt.Fprintf(out, "   Rep:   %s\n", formatAmount(receipt.Costs.Rep))
				if receipt.Level > 0 {
					fmt.Fprintf(out, "   Level: %d\n", receipt.Level)
				}
				return nil
			})
		},
	}
	cmd.Flags().Int64Var(&character, "character", 0, "Character ID")
	cmd.Flags().StringVarP(&factionName, "faction", "f", "", "Faction selling the augmentation")
	cmd.Flags().Float64Var(&funds.Money, "money", 0, "Money available")
	cmd.Flags().Float64Var(&funds.Rep, "rep", 0, "Reputation with the faction")
	_ = cmd.MarkFlagRequired("character")
	_ = cmd.MarkFlagRequired("faction")
	return cmd
}

func newInstallCmd(st *cliState) *cobra.Command {
	var character int64

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install every queued augmentation of a character",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return st.app.withStore(ctx, func(store *db.AugmentationStore) error {
				state, err := store.Load(ctx, character)
				if err != nil {
					return err
				}
				n := st.app.market.Install(state)
				if err := store.Save(ctx, character, state); err != nil {
					return err
				}
				color.New(color.FgGreen, color.Bold).Fprintf(cmd.OutOrStdout(), "Installed %d augmentations\n", n)
				return nil
			})
		},
	}
	cmd.Flags().Int64Var(&character, "character", 0, "Character ID")
	_ = cmd.MarkFlagRequired("character")
	return cmd
}

func newMigrateCmd(st *cliState) *cobra.Command {
	var status bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dsn := st.cfg.Database.DSN()
			out := cmd.OutOrStdout()
			if status {
				version, err := db.MigrationStatus(cmd.Context(), dsn)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "schema version %d\n", version)
				return nil
			}
			if err := db.RunMigrations(cmd.Context(), dsn); err != nil {
				return err
			}
			color.New(color.FgGreen).Fprintln(out, "migrations applied")
			return nil
		},
	}
	cmd.Flags().BoolVar(&status, "status", false, "Print the current schema version only")
	return cmd
}
