package main

import (
	"math"
	"testing"
)

// flatPrice is a constant price function for exercising the state machine
// without real market data.
func flatPrice(price float64) func(int) (float64, error) {
	return func(int) (float64, error) { return price, nil }
}

func TestRunDrawdown_ActiveUntilDepletion(t *testing.T) {
	// 25 units at a flat £100: a £1,000 target sells 10 units/year.
	// Year 1 and 2 active, year 3 sells the remaining 5 (short), then exhausted.
	terms := AssetTerms{Price: flatPrice(100)}
	records, summary, err := RunDrawdown(terms, 25, 1000, 2000, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 5 {
		t.Fatalf("expected 5 records, got %d", len(records))
	}

	expectStatus := []YearStatus{StatusActive, StatusActive, StatusDepleted, StatusExhausted, StatusExhausted}
	for i, want := range expectStatus {
		if records[i].Status != want {
			t.Errorf("year %d: expected status %s, got %s", records[i].Year, want, records[i].Status)
		}
	}

	assertClose(t, 1000, records[0].GrossWithdrawal, 1e-9, "year 1 gross")
	assertClose(t, 500, records[2].GrossWithdrawal, 1e-9, "depletion year partial withdrawal")
	assertClose(t, 0, records[2].ClosingUnits, 1e-9, "depletion leaves exactly zero units")

	if summary.DepletedYear != 2002 {
		t.Errorf("expected depletion in 2002, got %d", summary.DepletedYear)
	}
	if summary.ExhaustedYear != 2003 {
		t.Errorf("expected first exhausted year 2003, got %d", summary.ExhaustedYear)
	}
	if summary.Successful {
		t.Error("a depleted strategy is not successful")
	}
	assertClose(t, 2500, summary.TotalGrossWithdrawn, 1e-9, "total gross withdrawn")
}

func TestRunDrawdown_NoResurrection(t *testing.T) {
	// Price shoots up after depletion; the strategy must stay exhausted.
	prices := map[int]float64{2000: 100, 2001: 100, 2002: 100, 2003: 10000, 2004: 10000}
	terms := AssetTerms{Price: func(year int) (float64, error) { return prices[year], nil }}

	records, _, err := RunDrawdown(terms, 15, 1000, 2000, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seenEnd := false
	for _, rec := range records {
		if seenEnd {
			if rec.Status != StatusExhausted {
				t.Errorf("year %d: expected exhausted after depletion, got %s", rec.Year, rec.Status)
			}
			if rec.GrossWithdrawal != 0 || rec.Fee != 0 || rec.ClosingUnits != 0 {
				t.Errorf("year %d: exhausted year must be a zero record", rec.Year)
			}
		}
		if rec.Status == StatusDepleted {
			seenEnd = true
		}
	}
	if !seenEnd {
		t.Fatal("expected the holding to deplete within the horizon")
	}
}

func TestRunDrawdown_FeeBeforeWithdrawal(t *testing.T) {
	// 1% fee on a £10,000 opening value is £100 = 1 unit at the raw price.
	// The withdrawal then sells from the post-fee holding.
	terms := AssetTerms{AnnualFeePercent: 1, Price: flatPrice(100)}
	records, _, err := RunDrawdown(terms, 100, 2000, 2010, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rec := records[0]
	assertClose(t, 100, rec.Fee, 1e-9, "fee on opening value")
	assertClose(t, 20, rec.UnitsSold, 1e-9, "units sold for withdrawal")
	assertClose(t, 79, rec.ClosingUnits, 1e-9, "closing units after fee and sale")
}

func TestRunDrawdown_FeeLiquidationPaysSaleCost(t *testing.T) {
	// With a 1.5% sale cost the fee liquidation sells at £98.50, so the same
	// £100 fee consumes more units than a cost-free deduction would.
	withCost := AssetTerms{AnnualFeePercent: 1, SaleCostPercent: 1.5, FeeIncursSaleCost: true, Price: flatPrice(100)}
	records, _, err := RunDrawdown(withCost, 100, 0, 2010, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	feeUnits := 100.0 - records[0].ClosingUnits
	assertClose(t, 100/98.5, feeUnits, 1e-9, "fee units sold at the net-of-cost price")
}

func TestRunDrawdown_SaleCostRaisesUnitsSold(t *testing.T) {
	// A 1.5% sale cost means £1,000 gross requires selling at £98.50/unit.
	terms := AssetTerms{SaleCostPercent: 1.5, Price: flatPrice(100)}
	records, _, err := RunDrawdown(terms, 100, 1000, 2010, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertClose(t, 1000/98.5, records[0].UnitsSold, 1e-9, "units sold at net sale price")
	assertClose(t, 1000, records[0].GrossWithdrawal, 1e-9, "gross proceeds unchanged")
}

func TestRunDrawdown_WithdrawalTaxApplied(t *testing.T) {
	terms := AssetTerms{
		Price: flatPrice(100),
		WithdrawalTax: func(gross float64, year int) (TaxBreakdown, error) {
			return TaxBreakdown{GrossIncome: gross, TaxPaid: gross * 0.25, NetIncome: gross * 0.75}, nil
		},
	}
	records, summary, err := RunDrawdown(terms, 1000, 10000, 2010, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertClose(t, 2500, records[0].TaxPaid, 1e-9, "year tax")
	assertClose(t, 7500, records[0].NetWithdrawal, 1e-9, "year net")
	assertClose(t, 5000, summary.TotalTaxPaid, 1e-9, "summary tax")
	assertClose(t, 15000, summary.TotalNetWithdrawn, 1e-9, "summary net")
}

func TestRunDrawdown_ClosingUnitsNeverNegative(t *testing.T) {
	// Fee larger than the holding: clamp to the full holding, never negative.
	terms := AssetTerms{AnnualFeePercent: 200, Price: flatPrice(100)}
	records, _, err := RunDrawdown(terms, 10, 500, 2010, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, rec := range records {
		if rec.ClosingUnits < 0 {
			t.Errorf("year %d: negative closing units %f", rec.Year, rec.ClosingUnits)
		}
	}
}

func TestSummarizeRecords_ValueRealizedIdentity(t *testing.T) {
	terms := AssetTerms{Price: flatPrice(50)}
	_, summary, err := RunDrawdown(terms, 1000, 2000, 2010, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(summary.TotalValueRealized-(summary.TotalNetWithdrawn+summary.FinalValue)) > 1e-9 {
		t.Error("TotalValueRealized must equal net withdrawn plus final value")
	}
	if !summary.Successful {
		t.Error("a strategy active in its final year is successful")
	}
}
