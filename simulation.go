package main

// Shared withdrawal/fee/depletion state machine. Both asset classes run the
// same transition logic; only the fee, transaction-cost and tax semantics
// differ, and those arrive through AssetTerms. Years move forward-only
// through active -> depleted -> exhausted, never backward.

// YearStatus is the state of a strategy in one simulated year.
type YearStatus int

const (
	StatusActive YearStatus = iota
	StatusDepleted
	StatusExhausted
	// StatusPartial only appears in combined strategies, when one component
	// has run out while the other is still funding withdrawals.
	StatusPartial
)

func (s YearStatus) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusDepleted:
		return "depleted"
	case StatusExhausted:
		return "exhausted"
	case StatusPartial:
		return "partial"
	default:
		return "unknown"
	}
}

// AssetTerms parameterizes the state machine for one asset class.
type AssetTerms struct {
	// AnnualFeePercent is the proportional holding fee (storage fee for
	// gold, management fee for tracker funds), charged on the opening value
	// each year before any withdrawal.
	AnnualFeePercent float64

	// SaleCostPercent is the transaction cost applied to every sale.
	// Zero for tracker funds.
	SaleCostPercent float64

	// FeeIncursSaleCost marks assets whose fee liquidation itself pays the
	// sale cost (physical gold). Tracker fees are deducted at the raw price.
	FeeIncursSaleCost bool

	// Price returns the asset's GBP unit price for a year.
	Price func(year int) (float64, error)

	// WithdrawalTax taxes a gross withdrawal; nil for tax-exempt assets.
	WithdrawalTax func(gross float64, year int) (TaxBreakdown, error)
}

// YearRecord is one simulated year of a single-asset strategy.
type YearRecord struct {
	Year   int
	Status YearStatus

	OpeningUnits float64 // ounces for gold, fund units for trackers
	UnitPrice    float64
	OpeningValue float64

	Fee float64 // fee paid before the withdrawal was attempted

	TargetWithdrawal float64
	GrossWithdrawal  float64 // actual gross; below target in the depletion year
	TaxPaid          float64
	NetWithdrawal    float64

	UnitsSold    float64
	ClosingUnits float64
	ClosingValue float64
}

// StrategySummary aggregates a strategy's year records.
type StrategySummary struct {
	TotalGrossWithdrawn float64
	TotalNetWithdrawn   float64
	TotalFees           float64
	TotalTaxPaid        float64

	FinalUnits float64
	FinalValue float64

	// TotalValueRealized is total net withdrawn plus the final value.
	TotalValueRealized float64

	DepletedYear  int // 0 when the strategy never depleted
	ExhaustedYear int // 0 when never exhausted

	// Successful means the final simulated year was still active.
	Successful bool
}

// RunDrawdown runs the state machine over the horizon: each active year pays
// the proportional fee first, then sells units to fund the fixed gross
// target. When the units needed reach or exceed the remaining holding, all
// remaining units are sold, the smaller actual withdrawal is recorded and the
// year is marked depleted; every following year is exhausted with a zero
// record. Closing holdings never go negative.
func RunDrawdown(terms AssetTerms, startUnits, targetGross float64, startYear, horizon int) ([]YearRecord, StrategySummary, error) {
	records := make([]YearRecord, 0, horizon)
	units := startUnits
	depleted := false

	for year := startYear; year < startYear+horizon; year++ {
		price, err := terms.Price(year)
		if err != nil {
			return nil, StrategySummary{}, err
		}

		rec := YearRecord{Year: year, UnitPrice: price}
		if depleted {
			rec.Status = StatusExhausted
			records = append(records, rec)
			continue
		}

		rec.OpeningUnits = units
		rec.OpeningValue = units * price
		rec.TargetWithdrawal = targetGross

		// Fees come out before the withdrawal is attempted.
		salePrice := price * (1 - terms.SaleCostPercent/100)
		if terms.AnnualFeePercent > 0 {
			fee := rec.OpeningValue * terms.AnnualFeePercent / 100
			feePrice := price
			if terms.FeeIncursSaleCost {
				feePrice = salePrice
			}
			feeUnits := fee / feePrice
			if feeUnits > units {
				feeUnits = units
				fee = units * feePrice
			}
			units -= feeUnits
			rec.Fee = fee
		}

		unitsNeeded := targetGross / salePrice
		if unitsNeeded < units {
			units -= unitsNeeded
			rec.UnitsSold = unitsNeeded
			rec.GrossWithdrawal = targetGross
			rec.Status = StatusActive
		} else {
			rec.UnitsSold = units
			rec.GrossWithdrawal = units * salePrice
			units = 0
			rec.Status = StatusDepleted
			depleted = true
		}

		if terms.WithdrawalTax != nil && rec.GrossWithdrawal > 0 {
			breakdown, err := terms.WithdrawalTax(rec.GrossWithdrawal, year)
			if err != nil {
				return nil, StrategySummary{}, err
			}
			rec.TaxPaid = breakdown.TaxPaid
			rec.NetWithdrawal = breakdown.NetIncome
		} else {
			rec.NetWithdrawal = rec.GrossWithdrawal
		}

		rec.ClosingUnits = units
		rec.ClosingValue = units * price
		records = append(records, rec)
	}

	return records, SummarizeRecords(records), nil
}

// SummarizeRecords builds the summary aggregates for a record series.
func SummarizeRecords(records []YearRecord) StrategySummary {
	var s StrategySummary
	for _, rec := range records {
		s.TotalGrossWithdrawn += rec.GrossWithdrawal
		s.TotalNetWithdrawn += rec.NetWithdrawal
		s.TotalFees += rec.Fee
		s.TotalTaxPaid += rec.TaxPaid
		if rec.Status == StatusDepleted && s.DepletedYear == 0 {
			s.DepletedYear = rec.Year
		}
		if rec.Status == StatusExhausted && s.ExhaustedYear == 0 {
			s.ExhaustedYear = rec.Year
		}
	}
	if len(records) > 0 {
		last := records[len(records)-1]
		s.FinalUnits = last.ClosingUnits
		s.FinalValue = last.ClosingValue
		s.Successful = last.Status == StatusActive
	}
	s.TotalValueRealized = s.TotalNetWithdrawn + s.FinalValue
	return s
}
