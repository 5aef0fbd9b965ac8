package main

import (
	"context"
	"fmt"

	"github.com/udisondev/augmarket/internal/config"
	"github.com/udisondev/augmarket/internal/data"
	"github.com/udisondev/augmarket/internal/db"
	"github.com/udisondev/augmarket/internal/faction"
	"github.com/udisondev/augmarket/internal/game/augment"
	"github.com/udisondev/augmarket/internal/game/market"
	"github.com/udisondev/augmarket/internal/model"
)

// app holds the loaded world and the services built on it.
type app struct {
	cfg      config.Engine
	catalog  *augment.Registry
	factions *faction.Registry
	pricer   *augment.Pricer
	market   *market.Service
}

func newApp(cfg config.Engine) (*app, error) {
	catalog, factions, err := data.LoadWorld()
	if err != nil {
		return nil, fmt.Errorf("loading world: %w", err)
	}

	constants := pricingConstants(cfg.Pricing)
	if err := constants.Validate(); err != nil {
		return nil, err
	}
	pricer := augment.NewPricer(catalog, constants)

	return &app{
		cfg:      cfg,
		catalog:  catalog,
		factions: factions,
		pricer:   pricer,
		market:   market.NewService(catalog, pricer, costModifiers(cfg.Difficulty)),
	}, nil
}

func pricingConstants(p config.Pricing) augment.Constants {
	return augment.Constants{
		LevelGrowth:       p.LevelGrowth,
		CohortGrowth:      p.CohortGrowth,
		PurchaseInflation: p.EffectiveInflation(),
	}
}

func costModifiers(d config.Difficulty) model.CostModifiers {
	return model.CostModifiers{
		Money: d.AugmentationMoneyCost,
		Rep:   d.AugmentationRepCost,
	}
}

// withStore connects to the database and runs fn with a character store.
func (a *app) withStore(ctx context.Context, fn func(*db.AugmentationStore) error) error {
	database, err := db.New(ctx, a.cfg.Database.DSN())
	if err != nil {
		return err
	}
	defer database.Close()

	store := db.NewAugmentationStore(db.NewAugmentationRepository(database.Pool()), a.catalog)
	return fn(store)
}
