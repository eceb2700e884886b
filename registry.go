package main

// Strategy registry: static metadata for every strategy the engine can run.
// Loaded once, never mutated at runtime. Strategy identifiers are resolved
// here exactly once per request; nothing else in the engine switches on
// strategy strings.

// StrategyCategory classifies a strategy's asset and tax semantics.
type StrategyCategory int

const (
	CategoryGold StrategyCategory = iota
	CategoryTracker
	CategoryCombined
)

func (c StrategyCategory) String() string {
	switch c {
	case CategoryGold:
		return "gold"
	case CategoryTracker:
		return "tracker"
	case CategoryCombined:
		return "combined"
	default:
		return "unknown"
	}
}

// Fee kinds a strategy is subject to.
const (
	FeeKindStorage  = "storage"
	FeeKindSaleCost = "saleCost"
	FeeKindPurchase = "purchaseCost"
	FeeKindMgmt     = "management"
)

// CombinedSplitRatio is the capital share each component of a combined
// strategy receives. Combinations are always an even split.
const CombinedSplitRatio = 0.5

// StrategyDefinition is one registry entry.
type StrategyDefinition struct {
	ID           string
	Name         string
	Category     StrategyCategory
	EarliestYear int
	FeeKinds     []string

	// Components names the two base strategies of a combined entry,
	// each taking CombinedSplitRatio of the capital.
	Components [2]string
}

// IsCombined reports whether the entry blends two base strategies.
func (d *StrategyDefinition) IsCombined() bool {
	return d.Category == CategoryCombined
}

// Earliest years follow the underlying data series; each combined entry's
// earliest year is the later of its two components'. The invariants test
// checks the table against the series coverage so the two cannot drift.
var strategyRegistry = []StrategyDefinition{
	{ID: "gold", Name: "Physical Gold", Category: CategoryGold, EarliestYear: 1975,
		FeeKinds: []string{FeeKindStorage, FeeKindSaleCost, FeeKindPurchase}},
	{ID: "ftse100", Name: "FTSE 100 Tracker (SIPP)", Category: CategoryTracker, EarliestYear: 1984,
		FeeKinds: []string{FeeKindMgmt}},
	{ID: "sp500", Name: "S&P 500 Tracker (SIPP)", Category: CategoryTracker, EarliestYear: 1975,
		FeeKinds: []string{FeeKindMgmt}},
	{ID: "nasdaq100", Name: "Nasdaq-100 Tracker (SIPP)", Category: CategoryTracker, EarliestYear: 1985,
		FeeKinds: []string{FeeKindMgmt}},
	{ID: "gold-ftse100", Name: "50/50 Gold + FTSE 100", Category: CategoryCombined, EarliestYear: 1984,
		Components: [2]string{"gold", "ftse100"}},
	{ID: "gold-sp500", Name: "50/50 Gold + S&P 500", Category: CategoryCombined, EarliestYear: 1975,
		Components: [2]string{"gold", "sp500"}},
	{ID: "gold-nasdaq100", Name: "50/50 Gold + Nasdaq-100", Category: CategoryCombined, EarliestYear: 1985,
		Components: [2]string{"gold", "nasdaq100"}},
}

// GetStrategyDefinition returns a registry entry by ID, or nil if unknown.
func GetStrategyDefinition(id string) *StrategyDefinition {
	for i := range strategyRegistry {
		if strategyRegistry[i].ID == id {
			return &strategyRegistry[i]
		}
	}
	return nil
}

// AllStrategies returns every registry entry.
func AllStrategies() []StrategyDefinition {
	return strategyRegistry
}

// ResolveStrategy looks up a strategy ID, failing with a ValidationError
// for identifiers the registry does not know.
func ResolveStrategy(id string) (*StrategyDefinition, error) {
	def := GetStrategyDefinition(id)
	if def == nil {
		return nil, NewValidationError("strategy", "unknown strategy %q", id)
	}
	return def, nil
}
