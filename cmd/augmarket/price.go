package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/udisondev/augmarket/internal/db"
	"github.com/udisondev/augmarket/internal/game/augment"
	"github.com/udisondev/augmarket/internal/model"
)

// stateFlags describe a player state on the command line or by character ID.
type stateFlags struct {
	owned     []string
	queued    []string
	character int64
}

func (f *stateFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&f.owned, "owned", nil, `Owned augmentation as "name" or "name:level" (repeatable)`)
	cmd.Flags().StringArrayVar(&f.queued, "queued", nil, "Queued augmentation name (repeatable)")
	cmd.Flags().Int64Var(&f.character, "character", 0, "Load state of this character from the database")
}

// load builds the state from the database when --character is set,
// otherwise from --owned and --queued.
func (f *stateFlags) load(ctx context.Context, a *app) (*model.AugmentationState, error) {
	if f.character != 0 {
		if len(f.owned) > 0 || len(f.queued) > 0 {
			return nil, fmt.Errorf("--character cannot be combined with --owned or --queued")
		}
		var state *model.AugmentationState
		err := a.withStore(ctx, func(store *db.AugmentationStore) error {
			var err error
			state, err = store.Load(ctx, f.character)
			return err
		})
		return state, err
	}

	owned := make([]model.OwnedAugmentation, 0, len(f.owned))
	for _, raw := range f.owned {
		o, err := parseOwned(raw)
		if err != nil {
			return nil, err
		}
		owned = append(owned, o)
	}
	queued := make([]model.QueuedAugmentation, 0, len(f.queued))
	for _, name := range f.queued {
		queued = append(queued, model.QueuedAugmentation{Name: name})
	}
	if err := augment.CheckState(a.catalog, owned, queued); err != nil {
		return nil, err
	}
	return model.NewAugmentationState(owned, queued), nil
}

// parseOwned parses "name" or "name:level". Names may contain colons; only
// a numeric suffix is taken as the level.
func parseOwned(raw string) (model.OwnedAugmentation, error) {
	if i := strings.LastIndex(raw, ":"); i > 0 {
		if level, err := strconv.Atoi(raw[i+1:]); err == nil {
			return model.OwnedAugmentation{Name: raw[:i], Level: level}, nil
		}
	}
	if raw == "" {
		return model.OwnedAugmentation{}, fmt.Errorf("empty --owned value")
	}
	return model.OwnedAugmentation{Name: raw, Level: 1}, nil
}

func newPriceCmd(st *cliState) *cobra.Command {
	var flags stateFlags

	cmd := &cobra.Command{
		Use:   "price [augmentation...]",
		Short: "Quote current prices for a player state",
		Long: `Quotes the money and reputation cost of the named augmentations
(every augmentation when none is named) for the given player state.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := flags.load(cmd.Context(), st.app)
			if err != nil {
				return err
			}

			names := args
			if len(names) == 0 {
				for _, t := range st.app.catalog.All() {
					names = append(names, t.Name())
				}
			}

			quotes, err := st.app.pricer.Quote(names, state.Snapshot(st.app.market.Modifiers()))
			if err != nil {
				return err
			}
			return printQuotes(cmd.OutOrStdout(), quotes)
		},
	}
	flags.register(cmd)
	return cmd
}

func printQuotes(w io.Writer, quotes []augment.Quote) error {
	color.New(color.FgCyan, color.Bold).Fprintf(w, "Quotes (%d)\n", len(quotes))

	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Name", "Level", "Money", "Rep"}),
	)
	for _, q := range quotes {
		if err := table.Append([]string{
			q.Name,
			formatLevel(q.Level),
			formatAmount(q.Costs.Money),
			formatAmount(q.Costs.Rep),
		}); err != nil {
			return fmt.Errorf("appending row: %w", err)
		}
	}
	return table.Render()
}

func formatLevel(level int) string {
	if level == 0 {
		return "-"
	}
	return strconv.Itoa(level)
}
