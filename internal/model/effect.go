package model

import "maps"

// Effect identifies a single multiplier an augmentation can grant.
// Names match the player stat fields they are applied to.
type Effect string

// Attribute multipliers.
const (
	HackingMult   Effect = "hacking_mult"
	StrengthMult  Effect = "strength_mult"
	DefenseMult   Effect = "defense_mult"
	DexterityMult Effect = "dexterity_mult"
	AgilityMult   Effect = "agility_mult"
	CharismaMult  Effect = "charisma_mult"
)

// Experience rate multipliers.
const (
	HackingExpMult   Effect = "hacking_exp_mult"
	StrengthExpMult  Effect = "strength_exp_mult"
	DefenseExpMult   Effect = "defense_exp_mult"
	DexterityExpMult Effect = "dexterity_exp_mult"
	AgilityExpMult   Effect = "agility_exp_mult"
	CharismaExpMult  Effect = "charisma_exp_mult"
)

// Hacking, reputation, crime and work multipliers.
const (
	HackingChanceMult Effect = "hacking_chance_mult"
	HackingSpeedMult  Effect = "hacking_speed_mult"
	HackingMoneyMult  Effect = "hacking_money_mult"
	HackingGrowMult   Effect = "hacking_grow_mult"
	CompanyRepMult    Effect = "company_rep_mult"
	FactionRepMult    Effect = "faction_rep_mult"
	CrimeMoneyMult    Effect = "crime_money_mult"
	CrimeSuccessMult  Effect = "crime_success_mult"
	WorkMoneyMult     Effect = "work_money_mult"
)

// Hacknet production and cost multipliers. Values below 1 are discounts.
const (
	HacknetNodeMoneyMult        Effect = "hacknet_node_money_mult"
	HacknetNodePurchaseCostMult Effect = "hacknet_node_purchase_cost_mult"
	HacknetNodeRAMCostMult      Effect = "hacknet_node_ram_cost_mult"
	HacknetNodeCoreCostMult     Effect = "hacknet_node_core_cost_mult"
	HacknetNodeLevelCostMult    Effect = "hacknet_node_level_cost_mult"
)

// Bladeburner multipliers.
const (
	BladeburnerMaxStaminaMult    Effect = "bladeburner_max_stamina_mult"
	BladeburnerStaminaGainMult   Effect = "bladeburner_stamina_gain_mult"
	BladeburnerAnalysisMult      Effect = "bladeburner_analysis_mult"
	BladeburnerSuccessChanceMult Effect = "bladeburner_success_chance_mult"
)

// Infiltration multipliers.
const (
	InfiltrationBaseRepIncrease     Effect = "infiltration_base_rep_increase"
	InfiltrationRepMult             Effect = "infiltration_rep_mult"
	InfiltrationTradeMult           Effect = "infiltration_trade_mult"
	InfiltrationSellMult            Effect = "infiltration_sell_mult"
	InfiltrationTimerMult           Effect = "infiltration_timer_mult"
	InfiltrationDamageReductionMult Effect = "infiltration_damage_reduction_mult"
)

// StartingMoney is a one-time bonus granted after installing augmentations.
// Its value is an amount of money, not a multiplier.
const StartingMoney Effect = "starting_money"

// effectOrder is the display order of the vocabulary.
var effectOrder = []Effect{
	HackingMult, StrengthMult, DefenseMult, DexterityMult, AgilityMult, CharismaMult,
	HackingExpMult, StrengthExpMult, DefenseExpMult, DexterityExpMult, AgilityExpMult, CharismaExpMult,
	HackingChanceMult, HackingSpeedMult, HackingMoneyMult, HackingGrowMult,
	CompanyRepMult, FactionRepMult,
	CrimeMoneyMult, CrimeSuccessMult, WorkMoneyMult,
	HacknetNodeMoneyMult, HacknetNodePurchaseCostMult, HacknetNodeRAMCostMult,
	HacknetNodeCoreCostMult, HacknetNodeLevelCostMult,
	BladeburnerMaxStaminaMult, BladeburnerStaminaGainMult, BladeburnerAnalysisMult, BladeburnerSuccessChanceMult,
	InfiltrationBaseRepIncrease, InfiltrationRepMult, InfiltrationTradeMult,
	InfiltrationSellMult, InfiltrationTimerMult, InfiltrationDamageReductionMult,
	StartingMoney,
}

var knownEffects = func() map[Effect]struct{} {
	m := make(map[Effect]struct{}, len(effectOrder))
	for _, e := range effectOrder {
		m[e] = struct{}{}
	}
	return m
}()

// Effects returns the full effect vocabulary in display order.
func Effects() []Effect {
	out := make([]Effect, len(effectOrder))
	copy(out, effectOrder)
	return out
}

// IsKnownEffect reports whether e belongs to the effect vocabulary.
func IsKnownEffect(e Effect) bool {
	_, ok := knownEffects[e]
	return ok
}

// Multipliers maps effects to their values. A missing key means the
// augmentation has no such effect.
type Multipliers map[Effect]float64

// Get returns the value for e and whether it is present.
func (m Multipliers) Get(e Effect) (float64, bool) {
	v, ok := m[e]
	return v, ok
}

// Clone returns an independent copy. Clone of nil is an empty table.
func (m Multipliers) Clone() Multipliers {
	out := make(Multipliers, len(m))
	maps.Copy(out, m)
	return out
}

// Ordered returns present effects in vocabulary order.
func (m Multipliers) Ordered() []Effect {
	out := make([]Effect, 0, len(m))
	for _, e := range effectOrder {
		if _, ok := m[e]; ok {
			out = append(out, e)
		}
	}
	return out
}
