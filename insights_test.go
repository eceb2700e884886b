package main

import (
	"strings"
	"testing"
)

func TestCumulativeNetSeries(t *testing.T) {
	years := []NormalizedYear{
		{NetWithdrawal: 100},
		{NetWithdrawal: 250},
		{NetWithdrawal: 0},
		{NetWithdrawal: 50},
	}
	series := CumulativeNetSeries(years)
	want := []float64{100, 350, 350, 400}
	for i := range want {
		assertClose(t, want[i], series[i], 1e-9, "cumulative net")
	}
}

func TestFirstCrossoverYear(t *testing.T) {
	result := &ComparisonResult{Differences: []YearDifference{
		{Year: 2000, ValueDifference: 500},
		{Year: 2001, ValueDifference: 200},
		{Year: 2002, ValueDifference: -50},
		{Year: 2003, ValueDifference: 300},
	}}
	if got := FirstCrossoverYear(result); got != 2002 {
		t.Errorf("expected crossover in 2002, got %d", got)
	}

	noCross := &ComparisonResult{Differences: []YearDifference{
		{Year: 2000, ValueDifference: 500},
		{Year: 2001, ValueDifference: 100},
	}}
	if got := FirstCrossoverYear(noCross); got != 0 {
		t.Errorf("expected no crossover, got %d", got)
	}
}

func TestFirstCrossoverYear_DeadEvenStart(t *testing.T) {
	// The strategies open level; the lead is taken from the first year a
	// difference appears, and the later reversal still counts as a crossover.
	result := &ComparisonResult{Differences: []YearDifference{
		{Year: 2000, ValueDifference: 0},
		{Year: 2001, ValueDifference: 0},
		{Year: 2002, ValueDifference: 150},
		{Year: 2003, ValueDifference: -40},
	}}
	if got := FirstCrossoverYear(result); got != 2003 {
		t.Errorf("expected crossover in 2003, got %d", got)
	}

	// An all-zero series never has a leader, so no crossover.
	flat := &ComparisonResult{Differences: []YearDifference{
		{Year: 2000, ValueDifference: 0},
		{Year: 2001, ValueDifference: 0},
	}}
	if got := FirstCrossoverYear(flat); got != 0 {
		t.Errorf("expected no crossover, got %d", got)
	}
}

func TestKeyInsights_FullComparison(t *testing.T) {
	inputs := SimulationInputs{Capital: 500000, StartYear: 2000, WithdrawalRatePercent: 4, HorizonYears: 25}
	result, err := CompareStrategies("gold", "ftse100", inputs, FeeConfig{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	insights := KeyInsights(result)
	if len(insights) == 0 {
		t.Fatal("expected at least a winner line")
	}

	joined := strings.Join(insights, "\n")
	if !strings.Contains(joined, "up front") {
		t.Errorf("expected the gold up-front tax insight, got:\n%s", joined)
	}
}
