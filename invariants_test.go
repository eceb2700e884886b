package main

import (
	"math"
	"testing"
)

// Cross-cutting property checks, run against every registered strategy with
// an aggressive withdrawal rate so most runs hit depletion.

func TestEveryStrategy_ForwardOnlyLifecycle(t *testing.T) {
	fees := FeeConfig{}
	for _, def := range AllStrategies() {
		def := def
		t.Run(def.ID, func(t *testing.T) {
			inputs := SimulationInputs{
				Capital:               500000,
				StartYear:             def.EarliestYear,
				WithdrawalRatePercent: 15,
				HorizonYears:          30,
			}
			years, err := normalizedYears(&def, inputs, fees)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(years) != inputs.HorizonYears {
				t.Fatalf("expected %d records, got %d", inputs.HorizonYears, len(years))
			}

			ended := false
			for _, rec := range years {
				if ended {
					if rec.Status == StatusActive || rec.Status == StatusDepleted {
						t.Errorf("year %d: holdings came back to life (%s)", rec.Year, rec.Status)
					}
					if rec.Status == StatusExhausted && (rec.GrossWithdrawal != 0 || rec.AssetValue != 0) {
						t.Errorf("year %d: exhausted year is not a zero record", rec.Year)
					}
				}
				if rec.Status == StatusExhausted {
					ended = true
				}
				if rec.AssetValue < 0 {
					t.Errorf("year %d: negative asset value %f", rec.Year, rec.AssetValue)
				}
				if rec.NetWithdrawal > rec.GrossWithdrawal+1e-9 {
					t.Errorf("year %d: net withdrawal exceeds gross", rec.Year)
				}
			}
		})
	}
}

func TestEveryStrategy_SummaryIdentities(t *testing.T) {
	fees := FeeConfig{}
	for _, def := range AllStrategies() {
		def := def
		t.Run(def.ID, func(t *testing.T) {
			inputs := SimulationInputs{
				Capital:               500000,
				StartYear:             def.EarliestYear,
				WithdrawalRatePercent: 4,
				HorizonYears:          20,
			}
			years, summary, err := runForInvariants(&def, inputs, fees)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			var gross, net, tax, fee float64
			for _, rec := range years {
				gross += rec.GrossWithdrawal
				net += rec.NetWithdrawal
				tax += rec.TaxPaid
				fee += rec.Fees
			}
			assertClose(t, gross, summary.TotalGrossWithdrawn, 1e-6, "total gross")
			assertClose(t, net, summary.TotalNetWithdrawn, 1e-6, "total net")
			assertClose(t, tax, summary.TotalTaxPaid, 1e-6, "total tax")
			assertClose(t, fee, summary.TotalFees, 1e-6, "total fees")
			assertClose(t, net+summary.FinalValue, summary.TotalValueRealized, 1e-6, "value realized identity")
		})
	}
}

func TestTax_MonotonicInGrossIncome(t *testing.T) {
	// More gross income never means less tax, and never less net income,
	// under any supported regime.
	for _, year := range []int{1975, 1990, 2000, 2010, 2013, 2023, 2024} {
		prevTax, prevNet := 0.0, 0.0
		for gross := 0.0; gross <= 300000; gross += 2500 {
			breakdown, err := ComputeTax(gross, year, false)
			if err != nil {
				t.Fatalf("year %d gross %.0f: %v", year, gross, err)
			}
			if breakdown.TaxPaid < prevTax-1e-9 {
				t.Fatalf("year %d: tax fell from %.2f to %.2f at gross %.0f",
					year, prevTax, breakdown.TaxPaid, gross)
			}
			if breakdown.NetIncome < prevNet-1e-9 {
				t.Fatalf("year %d: net income fell from %.2f to %.2f at gross %.0f",
					year, prevNet, breakdown.NetIncome, gross)
			}
			prevTax, prevNet = breakdown.TaxPaid, breakdown.NetIncome
		}
	}
}

func TestTax_BandsSumToTotal(t *testing.T) {
	for _, year := range []int{2000, 2010, 2024} {
		for _, gross := range []float64{10000, 50000, 120000, 250000} {
			breakdown, err := ComputeTax(gross, year, true)
			if err != nil {
				t.Fatalf("year %d gross %.0f: %v", year, gross, err)
			}
			b := breakdown.Breakdown
			sum := b.BasicRateTax + b.HigherRateTax + b.AdditionalRateTax
			if math.Abs(sum-breakdown.TaxPaid) > 1e-9 {
				t.Errorf("year %d gross %.0f: band taxes sum to %.2f, total is %.2f",
					year, gross, sum, breakdown.TaxPaid)
			}
			if math.Abs(breakdown.GrossIncome-breakdown.TaxPaid-breakdown.NetIncome) > 1e-9 {
				t.Errorf("year %d gross %.0f: net != gross - tax", year, gross)
			}
		}
	}
}

// normalizedYears runs one strategy and returns its normalized records.
func normalizedYears(def *StrategyDefinition, inputs SimulationInputs, fees FeeConfig) ([]NormalizedYear, error) {
	out, err := runNormalized(def, inputs, fees)
	if err != nil {
		return nil, err
	}
	return out.Years, nil
}

// runForInvariants returns both the normalized years and the raw summary.
func runForInvariants(def *StrategyDefinition, inputs SimulationInputs, fees FeeConfig) ([]NormalizedYear, StrategySummary, error) {
	out, err := runNormalized(def, inputs, fees)
	if err != nil {
		return nil, StrategySummary{}, err
	}
	return out.Years, out.Summary, nil
}
