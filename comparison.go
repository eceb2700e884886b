package main

import "math"

// Comparison engine: runs two strategies over identical inputs, normalizes
// their yearly records into a common shape, and ranks them by total value
// realized. A comparison either fully succeeds or fails as a whole; it never
// aggregates partial results.

// TieThresholdGBP is the margin below which two strategies are a tie.
const TieThresholdGBP = 100.0

// Winner labels for ComparisonSummary.
const (
	WinnerStrategy1 = "strategy1"
	WinnerStrategy2 = "strategy2"
	WinnerTie       = "tie"
)

// NormalizedYear is the common per-year shape both strategies reduce to.
type NormalizedYear struct {
	Year            int
	AssetValue      float64 // closing value
	GrossWithdrawal float64
	NetWithdrawal   float64
	TaxPaid         float64
	Fees            float64
	Status          YearStatus
}

// FinalHolding is the value left in one asset class at the horizon's end.
// Combined strategies end with one holding per component.
type FinalHolding struct {
	Category StrategyCategory
	Value    float64
}

// StrategyOutput is one side of a comparison: the normalized records plus
// the end-of-horizon tax treatment.
//
// Tracker holdings still carry unrealized pension-withdrawal tax, simulated
// here as one full liquidation in the final year; gold holdings are already
// after-tax because the capital was taxed on the way in and sales are exempt.
type StrategyOutput struct {
	Definition *StrategyDefinition
	Years      []NormalizedYear
	Summary    StrategySummary

	InitialTax          float64 // gold's up-front pension withdrawal tax
	FinalLiquidationTax float64
	AfterTaxFinalValue  float64

	// componentFinalValues carries the final value of each half of a
	// combined strategy, so the liquidation tax applies per component.
	componentFinalValues [2]float64

	// TotalValueRealized = total net withdrawn + after-tax final value.
	TotalValueRealized float64
}

// YearDifference is strategy1 minus strategy2 for one year.
type YearDifference struct {
	Year                    int
	ValueDifference         float64
	NetWithdrawalDifference float64
	CumulativeNetDifference float64
}

// ComparisonSummary ranks the two strategies.
type ComparisonSummary struct {
	Winner             string // strategy1 | strategy2 | tie
	Strategy1Total     float64
	Strategy2Total     float64
	AbsoluteDifference float64
	// PercentDifference is the winner's lead relative to the trailing
	// strategy's total value realized.
	PercentDifference float64
	// LeadsBy is signed: positive when strategy1 leads.
	LeadsBy float64
}

// ComparisonResult holds both strategy outputs, the year-aligned
// differences and the ranking summary. Constructed wholly by
// CompareStrategies and never mutated afterwards.
type ComparisonResult struct {
	Inputs    SimulationInputs
	Strategy1 *StrategyOutput
	Strategy2 *StrategyOutput

	Differences []YearDifference
	Summary     ComparisonSummary
}

// CompareStrategies runs two strategies (base or combined) over the same
// inputs and ranks them. Validation failures on either side fail the whole
// comparison before any result is built.
func CompareStrategies(id1, id2 string, inputs SimulationInputs, fees FeeConfig) (*ComparisonResult, error) {
	def1, err := ResolveStrategy(id1)
	if err != nil {
		return nil, err
	}
	def2, err := ResolveStrategy(id2)
	if err != nil {
		return nil, err
	}
	if def1.ID == def2.ID {
		return nil, NewValidationError("strategy", "cannot compare %q against itself", def1.ID)
	}

	out1, err := runNormalized(def1, inputs, fees)
	if err != nil {
		return nil, err
	}
	out2, err := runNormalized(def2, inputs, fees)
	if err != nil {
		return nil, err
	}

	result := &ComparisonResult{
		Inputs:      inputs,
		Strategy1:   out1,
		Strategy2:   out2,
		Differences: yearDifferences(out1.Years, out2.Years),
		Summary:     rankOutputs(out1, out2),
	}
	return result, nil
}

// runNormalized runs one strategy and reduces it to the common shape.
func runNormalized(def *StrategyDefinition, inputs SimulationInputs, fees FeeConfig) (*StrategyOutput, error) {
	var out *StrategyOutput
	if def.IsCombined() {
		combined, err := SimulateCombined(def.ID, inputs, fees)
		if err != nil {
			return nil, err
		}
		out = normalizeCombined(combined)
	} else {
		result, err := SimulateBase(def, inputs, fees)
		if err != nil {
			return nil, err
		}
		out = normalizeBase(result)
	}
	return finalizeOutput(out, inputs.EndYear())
}

func normalizeBase(r *StrategyResult) *StrategyOutput {
	years := make([]NormalizedYear, len(r.Years))
	for i, rec := range r.Years {
		years[i] = NormalizedYear{
			Year:            rec.Year,
			AssetValue:      rec.ClosingValue,
			GrossWithdrawal: rec.GrossWithdrawal,
			NetWithdrawal:   rec.NetWithdrawal,
			TaxPaid:         rec.TaxPaid,
			Fees:            rec.Fee,
			Status:          rec.Status,
		}
	}
	return &StrategyOutput{
		Definition: r.Definition,
		Years:      years,
		Summary:    r.Summary,
		InitialTax: r.InitialTax,
	}
}

func normalizeCombined(r *CombinedResult) *StrategyOutput {
	years := make([]NormalizedYear, len(r.Years))
	for i, rec := range r.Years {
		years[i] = NormalizedYear{
			Year:            rec.Year,
			AssetValue:      rec.ClosingValue,
			GrossWithdrawal: rec.GrossWithdrawal,
			NetWithdrawal:   rec.NetWithdrawal,
			TaxPaid:         rec.TaxPaid,
			Fees:            rec.Fees,
			Status:          rec.Status,
		}
	}
	return &StrategyOutput{
		Definition: r.Definition,
		Years:      years,
		Summary:    r.Summary,
		InitialTax: r.Components[0].InitialTax + r.Components[1].InitialTax,
		componentFinalValues: [2]float64{
			r.Components[0].Summary.FinalValue,
			r.Components[1].Summary.FinalValue,
		},
	}
}

// finalizeOutput applies the end-of-horizon tax treatment: each tracker
// holding is liquidated in full in the final year under pension withdrawal
// rules, gold holdings pass through untaxed.
func finalizeOutput(out *StrategyOutput, finalYear int) (*StrategyOutput, error) {
	afterTax := 0.0
	for _, holding := range finalHoldings(out) {
		if holding.Category == CategoryTracker && holding.Value > 0 {
			breakdown, err := ComputeTax(holding.Value, finalYear, true)
			if err != nil {
				return nil, err
			}
			out.FinalLiquidationTax += breakdown.TaxPaid
			afterTax += breakdown.NetIncome
		} else {
			afterTax += holding.Value
		}
	}
	out.AfterTaxFinalValue = afterTax
	out.TotalValueRealized = out.Summary.TotalNetWithdrawn + afterTax
	return out, nil
}

// finalHoldings splits a strategy's final value by asset category so the
// liquidation tax can be applied component-wise.
func finalHoldings(out *StrategyOutput) []FinalHolding {
	if !out.Definition.IsCombined() {
		return []FinalHolding{{Category: out.Definition.Category, Value: out.Summary.FinalValue}}
	}
	holdings := make([]FinalHolding, 2)
	for i, componentID := range out.Definition.Components {
		component := GetStrategyDefinition(componentID)
		holdings[i] = FinalHolding{
			Category: component.Category,
			Value:    out.componentFinalValues[i],
		}
	}
	return holdings
}

// yearDifferences aligns the two record series (same start year and horizon
// by construction) and diffs them year by year.
func yearDifferences(a, b []NormalizedYear) []YearDifference {
	diffs := make([]YearDifference, len(a))
	cumulative := 0.0
	for i := range a {
		netDiff := a[i].NetWithdrawal - b[i].NetWithdrawal
		cumulative += netDiff
		diffs[i] = YearDifference{
			Year:                    a[i].Year,
			ValueDifference:         a[i].AssetValue - b[i].AssetValue,
			NetWithdrawalDifference: netDiff,
			CumulativeNetDifference: cumulative,
		}
	}
	return diffs
}

// rankOutputs decides the winner by total value realized, with ties inside
// the threshold.
func rankOutputs(out1, out2 *StrategyOutput) ComparisonSummary {
	leadsBy := out1.TotalValueRealized - out2.TotalValueRealized
	summary := ComparisonSummary{
		Strategy1Total:     out1.TotalValueRealized,
		Strategy2Total:     out2.TotalValueRealized,
		AbsoluteDifference: math.Abs(leadsBy),
		LeadsBy:            leadsBy,
	}

	trailing := math.Min(out1.TotalValueRealized, out2.TotalValueRealized)
	if trailing > 0 {
		summary.PercentDifference = summary.AbsoluteDifference / trailing * 100
	}

	switch {
	case summary.AbsoluteDifference < TieThresholdGBP:
		summary.Winner = WinnerTie
	case leadsBy > 0:
		summary.Winner = WinnerStrategy1
	default:
		summary.Winner = WinnerStrategy2
	}
	return summary
}
