package main

import (
	"fmt"
	"strings"
)

// FormatMoney formats a float as a currency string.
func FormatMoney(amount float64) string {
	if amount >= 1000000 {
		return fmt.Sprintf("£%.2fM", amount/1000000)
	}
	if amount >= 1000 {
		return fmt.Sprintf("£%.0fk", amount/1000)
	}
	return fmt.Sprintf("£%.0f", amount)
}

// FormatMoneyFull formats a float as full currency (no abbreviation).
func FormatMoneyFull(amount float64) string {
	return fmt.Sprintf("£%.0f", amount)
}

// PrintHeader prints the comparison header.
func PrintHeader(id1, id2 string, inputs SimulationInputs, fees FeeConfig) {
	fmt.Println("╔══════════════════════════════════════════════════════════════════════════════╗")
	fmt.Println("║               RETIREMENT DRAWDOWN STRATEGY COMPARISON                         ║")
	fmt.Println("╚══════════════════════════════════════════════════════════════════════════════╝")
	fmt.Println()
	fmt.Println("Configuration:")
	fmt.Println("──────────────")
	fmt.Printf("  Strategies: %s vs %s\n", id1, id2)
	fmt.Printf("  Capital: %s | Start: %d | Withdrawal: %.1f%%/year (%s) | Horizon: %d years\n",
		FormatMoney(inputs.Capital), inputs.StartYear,
		inputs.WithdrawalRatePercent, FormatMoney(inputs.TargetWithdrawal()), inputs.HorizonYears)
	fmt.Printf("  Gold: purchase %.1f%%, sale %.1f%%, storage %.2f%%/yr | SIPP fee: %.2f%%/yr\n",
		fees.GetGoldPurchaseCostPercent(), fees.GetGoldSaleCostPercent(),
		fees.GetGoldStorageFeePercent(), fees.GetSippManagementFeePercent())
	fmt.Println()
}

// PrintComparisonSummary prints the ranked result of a comparison.
func PrintComparisonSummary(result *ComparisonResult) {
	fmt.Println("Result:")
	fmt.Println("───────")
	printStrategyLine(result.Strategy1, result.Summary.Winner == WinnerStrategy1)
	printStrategyLine(result.Strategy2, result.Summary.Winner == WinnerStrategy2)
	fmt.Println()

	switch result.Summary.Winner {
	case WinnerTie:
		fmt.Printf("  Verdict: tie (difference %s is under the £%.0f threshold)\n",
			FormatMoneyFull(result.Summary.AbsoluteDifference), TieThresholdGBP)
	default:
		winner := result.Strategy1
		if result.Summary.Winner == WinnerStrategy2 {
			winner = result.Strategy2
		}
		fmt.Printf("  Verdict: %s leads by %s (%.1f%%)\n",
			winner.Definition.Name,
			FormatMoney(result.Summary.AbsoluteDifference),
			result.Summary.PercentDifference)
	}
	fmt.Println()

	fmt.Println("Key insights:")
	for _, insight := range KeyInsights(result) {
		fmt.Printf("  • %s\n", insight)
	}
	fmt.Println()
}

func printStrategyLine(out *StrategyOutput, winner bool) {
	marker := "  "
	if winner {
		marker = "▶ "
	}
	status := "lasted the full horizon"
	if out.Summary.DepletedYear > 0 {
		status = fmt.Sprintf("depleted in %d", out.Summary.DepletedYear)
	}
	fmt.Printf("  %s%-28s total realized %-10s (withdrawn %s, final %s after tax, %s)\n",
		marker, out.Definition.Name,
		FormatMoney(out.TotalValueRealized),
		FormatMoney(out.Summary.TotalNetWithdrawn),
		FormatMoney(out.AfterTaxFinalValue),
		status)
}

// PrintYearTable prints the year-by-year records of both strategies.
func PrintYearTable(result *ComparisonResult) {
	name1 := result.Strategy1.Definition.ID
	name2 := result.Strategy2.Definition.ID
	fmt.Printf("Year-by-year (%s | %s):\n", name1, name2)
	fmt.Println(strings.Repeat("─", 100))
	fmt.Printf("%-6s │ %12s %10s %10s %-10s │ %12s %10s %10s %-10s\n",
		"Year", "Value", "Net W/D", "Tax", "Status", "Value", "Net W/D", "Tax", "Status")
	fmt.Println(strings.Repeat("─", 100))
	for i := range result.Strategy1.Years {
		a := result.Strategy1.Years[i]
		b := result.Strategy2.Years[i]
		fmt.Printf("%-6d │ %12s %10s %10s %-10s │ %12s %10s %10s %-10s\n",
			a.Year,
			FormatMoney(a.AssetValue), FormatMoney(a.NetWithdrawal), FormatMoney(a.TaxPaid), a.Status,
			FormatMoney(b.AssetValue), FormatMoney(b.NetWithdrawal), FormatMoney(b.TaxPaid), b.Status)
	}
	fmt.Println(strings.Repeat("─", 100))
	fmt.Println()
}

// PrintStrategyList prints the registry for the -list flag.
func PrintStrategyList() {
	fmt.Println("Available strategies:")
	fmt.Println("─────────────────────")
	for _, def := range AllStrategies() {
		extra := ""
		if def.IsCombined() {
			extra = fmt.Sprintf(" = 50/50 %s + %s", def.Components[0], def.Components[1])
		}
		fmt.Printf("  %-16s %-9s from %d  %s%s\n",
			def.ID, def.Category, def.EarliestYear, def.Name, extra)
	}
	fmt.Println()
}
