package config

import (
	"errors"
	"fmt"
	"math"
)

// Pricing holds the fixed constants of the augmentation pricing algorithm.
type Pricing struct {
	// Per level of the repeatable augmentation.
	LevelGrowth float64 `yaml:"level_growth" env:"AUGMARKET_LEVEL_GROWTH"`
	// Per owned member of a special cohort.
	CohortGrowth float64 `yaml:"cohort_growth" env:"AUGMARKET_COHORT_GROWTH"`
	// Per augmentation purchased since the last install.
	PurchaseInflation float64 `yaml:"purchase_inflation" env:"AUGMARKET_PURCHASE_INFLATION"`
	// Discount on PurchaseInflation: 1, 0.96, 0.94 or 0.93.
	InflationDiscount float64 `yaml:"inflation_discount" env:"AUGMARKET_INFLATION_DISCOUNT"`
}

// DefaultPricing returns the stock game constants.
func DefaultPricing() Pricing {
	return Pricing{
		LevelGrowth:       1.14,
		CohortGrowth:      7,
		PurchaseInflation: 1.9,
		InflationDiscount: 1,
	}
}

// EffectiveInflation is the per-purchase factor after the discount.
func (p Pricing) EffectiveInflation() float64 {
	return p.PurchaseInflation * p.InflationDiscount
}

// Validate checks the constants.
func (p Pricing) Validate() error {
	var errs []error
	if !above1(p.LevelGrowth) {
		errs = append(errs, fmt.Errorf("pricing.level_growth must be > 1, got %v", p.LevelGrowth))
	}
	if !above1(p.CohortGrowth) {
		errs = append(errs, fmt.Errorf("pricing.cohort_growth must be > 1, got %v", p.CohortGrowth))
	}
	if !(p.InflationDiscount > 0 && p.InflationDiscount <= 1) {
		errs = append(errs, fmt.Errorf("pricing.inflation_discount must be in (0, 1], got %v", p.InflationDiscount))
	}
	if !above1(p.EffectiveInflation()) {
		errs = append(errs, fmt.Errorf("pricing.purchase_inflation after discount must be > 1, got %v", p.EffectiveInflation()))
	}
	return errors.Join(errs...)
}

func above1(v float64) bool {
	return v > 1 && !math.IsInf(v, 0)
}

// Difficulty holds world difficulty scalars for augmentation prices.
type Difficulty struct {
	AugmentationMoneyCost float64 `yaml:"augmentation_money_cost" env:"AUGMARKET_AUG_MONEY_COST"`
	AugmentationRepCost   float64 `yaml:"augmentation_rep_cost" env:"AUGMARKET_AUG_REP_COST"`
}

// DefaultDifficulty returns x1 scalars.
func DefaultDifficulty() Difficulty {
	return Difficulty{
		AugmentationMoneyCost: 1,
		AugmentationRepCost:   1,
	}
}

// Validate checks both scalars are positive.
func (d Difficulty) Validate() error {
	if !(d.AugmentationMoneyCost > 0) || !(d.AugmentationRepCost > 0) {
		return fmt.Errorf("difficulty scalars must be > 0, got money=%v rep=%v",
			d.AugmentationMoneyCost, d.AugmentationRepCost)
	}
	return nil
}
