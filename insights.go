package main

import "fmt"

// Derived read-only views over comparison results, consumed by the
// presentation layer: cumulative withdrawal series, crossover detection and
// narrative key insights. Pure projections, no new simulation state.

// CumulativeNetSeries returns the running total of net withdrawals.
func CumulativeNetSeries(years []NormalizedYear) []float64 {
	series := make([]float64, len(years))
	total := 0.0
	for i, y := range years {
		total += y.NetWithdrawal
		series[i] = total
	}
	return series
}

// FirstCrossoverYear returns the first year in which the lead in asset value
// changes hands, or 0 when one strategy stays ahead for the whole horizon.
// The lead is seeded from the first year with a nonzero difference, so a
// dead-even start doesn't mask a later change of leader.
func FirstCrossoverYear(result *ComparisonResult) int {
	lead := 0.0
	for _, d := range result.Differences {
		if lead > 0 && d.ValueDifference < 0 {
			return d.Year
		}
		if lead < 0 && d.ValueDifference > 0 {
			return d.Year
		}
		if lead == 0 {
			lead = d.ValueDifference
		}
	}
	return 0
}

// KeyInsights builds the narrative summary lines for a comparison.
func KeyInsights(result *ComparisonResult) []string {
	s1, s2 := result.Strategy1, result.Strategy2
	insights := []string{}

	switch result.Summary.Winner {
	case WinnerTie:
		insights = append(insights, fmt.Sprintf(
			"%s and %s end within £%.0f of each other - effectively a tie.",
			s1.Definition.Name, s2.Definition.Name, TieThresholdGBP))
	case WinnerStrategy1:
		insights = append(insights, fmt.Sprintf(
			"%s comes out ahead by %s (%.1f%%), realizing %s against %s.",
			s1.Definition.Name, FormatMoney(result.Summary.AbsoluteDifference),
			result.Summary.PercentDifference,
			FormatMoney(s1.TotalValueRealized), FormatMoney(s2.TotalValueRealized)))
	case WinnerStrategy2:
		insights = append(insights, fmt.Sprintf(
			"%s comes out ahead by %s (%.1f%%), realizing %s against %s.",
			s2.Definition.Name, FormatMoney(result.Summary.AbsoluteDifference),
			result.Summary.PercentDifference,
			FormatMoney(s2.TotalValueRealized), FormatMoney(s1.TotalValueRealized)))
	}

	for _, out := range []*StrategyOutput{s1, s2} {
		if out.Summary.DepletedYear > 0 {
			insights = append(insights, fmt.Sprintf(
				"%s ran out of funds in %d.", out.Definition.Name, out.Summary.DepletedYear))
		}
		if out.FinalLiquidationTax > 0 {
			insights = append(insights, fmt.Sprintf(
				"%s would owe %s in tax on a final full liquidation.",
				out.Definition.Name, FormatMoney(out.FinalLiquidationTax)))
		}
		if out.InitialTax > 0 {
			insights = append(insights, fmt.Sprintf(
				"%s paid %s in tax withdrawing the pension up front.",
				out.Definition.Name, FormatMoney(out.InitialTax)))
		}
	}

	if crossover := FirstCrossoverYear(result); crossover > 0 {
		insights = append(insights, fmt.Sprintf(
			"The lead in asset value changed hands in %d.", crossover))
	}

	return insights
}
