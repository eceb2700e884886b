package main

// Strategy simulators. Gold and tracker share the drawdown state machine in
// simulation.go; this file supplies each asset's terms, the initial capital
// conversion, and the 50/50 combined composer.

// SimulationInputs are the caller-supplied parameters shared by every
// strategy. The annual withdrawal target is fixed for the life of the
// simulation: capital times the withdrawal rate, never re-based on the
// holding's later value.
type SimulationInputs struct {
	Capital               float64
	StartYear             int
	WithdrawalRatePercent float64
	HorizonYears          int
}

// TargetWithdrawal is the fixed gross annual withdrawal.
func (in SimulationInputs) TargetWithdrawal() float64 {
	return in.Capital * in.WithdrawalRatePercent / 100
}

// EndYear is the last simulated year.
func (in SimulationInputs) EndYear() int {
	return in.StartYear + in.HorizonYears - 1
}

// Validate fails fast on bad inputs, before any computation. seriesName and
// the coverage bounds identify the price series the strategy draws on, so
// range errors can name the series and its earliest year.
func (in SimulationInputs) Validate(seriesName string, earliest, latest int) error {
	if in.Capital <= 0 {
		return NewValidationError("startingCapital", "must be positive, got %.2f", in.Capital)
	}
	if in.WithdrawalRatePercent <= 0 || in.WithdrawalRatePercent > 100 {
		return NewValidationError("withdrawalRate", "must be in (0, 100], got %.2f", in.WithdrawalRatePercent)
	}
	if in.HorizonYears < 1 {
		return NewValidationError("horizon", "must be a positive number of years, got %d", in.HorizonYears)
	}
	if in.StartYear < earliest {
		return NewValidationError("startYear",
			"%s data begins in %d, requested start year %d", seriesName, earliest, in.StartYear)
	}
	if in.EndYear() > latest {
		return NewValidationError("horizon",
			"simulation would end in %d but %s data ends in %d", in.EndYear(), seriesName, latest)
	}
	taxEarliest, taxLatest := TaxYearCoverage()
	if in.StartYear < taxEarliest || in.EndYear() > taxLatest {
		return NewValidationError("startYear",
			"tax regime data covers %d-%d, requested %d-%d", taxEarliest, taxLatest, in.StartYear, in.EndYear())
	}
	return nil
}

// StrategyResult is the full output of one single-asset simulation.
type StrategyResult struct {
	Definition *StrategyDefinition
	Inputs     SimulationInputs

	// Gold only: converting the pension capital to metal pays withdrawal
	// tax and a one-time dealing cost before the first ounce is bought.
	// Both are zero for trackers, which invest inside the wrapper untaxed.
	InitialTax          float64
	InitialPurchaseCost float64
	NetInvested         float64

	StartUnits float64
	Years      []YearRecord
	Summary    StrategySummary
}

// SimulateGold runs the gold strategy: the capital is withdrawn from the
// source pension (taxed as a pension withdrawal), the net proceeds pay the
// purchase dealing cost, and the remainder converts to ounces at the
// start-year price. Gold sales are tax-exempt, so year records carry no tax.
func SimulateGold(inputs SimulationInputs, fees FeeConfig) (*StrategyResult, error) {
	def := GetStrategyDefinition("gold")
	series := GetDataSeries(SeriesGoldGBP)
	if err := inputs.Validate(series.Name, series.Earliest, series.Latest); err != nil {
		return nil, err
	}

	initialTax, err := ComputeTax(inputs.Capital, inputs.StartYear, true)
	if err != nil {
		return nil, err
	}
	purchaseCost := initialTax.NetIncome * fees.GetGoldPurchaseCostPercent() / 100
	invested := initialTax.NetIncome - purchaseCost

	startPrice, err := series.Lookup(inputs.StartYear)
	if err != nil {
		return nil, err
	}
	ounces := invested / startPrice

	terms := AssetTerms{
		AnnualFeePercent:  fees.GetGoldStorageFeePercent(),
		SaleCostPercent:   fees.GetGoldSaleCostPercent(),
		FeeIncursSaleCost: true,
		Price:             series.Lookup,
	}
	records, summary, err := RunDrawdown(terms, ounces, inputs.TargetWithdrawal(), inputs.StartYear, inputs.HorizonYears)
	if err != nil {
		return nil, err
	}

	return &StrategyResult{
		Definition:          def,
		Inputs:              inputs,
		InitialTax:          initialTax.TaxPaid,
		InitialPurchaseCost: purchaseCost,
		NetInvested:         invested,
		StartUnits:          ounces,
		Years:               records,
		Summary:             summary,
	}, nil
}

// SimulateTracker runs a SIPP tracker strategy on one synthetic index: the
// capital is invested untaxed at the start-year synthetic price, an annual
// management fee comes off the value, sales carry no dealing cost, and every
// withdrawal is taxed as a pension withdrawal.
func SimulateTracker(indexID string, inputs SimulationInputs, fees FeeConfig) (*StrategyResult, error) {
	def, err := ResolveStrategy(indexID)
	if err != nil {
		return nil, err
	}
	if def.Category != CategoryTracker {
		return nil, NewValidationError("strategy", "%q is not a tracker strategy", indexID)
	}
	index := GetSyntheticIndex(indexID)
	if index == nil {
		return nil, NewValidationError("strategy", "no synthetic price series for %q", indexID)
	}
	_, latest, err := SeriesCoverage(index.IndexSeries)
	if err != nil {
		return nil, err
	}
	if err := inputs.Validate(index.Name, index.LaunchYear, latest); err != nil {
		return nil, err
	}

	startPrice, err := index.Price(inputs.StartYear)
	if err != nil {
		return nil, err
	}
	units := inputs.Capital / startPrice

	terms := AssetTerms{
		AnnualFeePercent: fees.GetSippManagementFeePercent(),
		Price:            index.Price,
		WithdrawalTax: func(gross float64, year int) (TaxBreakdown, error) {
			return ComputeTax(gross, year, true)
		},
	}
	records, summary, err := RunDrawdown(terms, units, inputs.TargetWithdrawal(), inputs.StartYear, inputs.HorizonYears)
	if err != nil {
		return nil, err
	}

	return &StrategyResult{
		Definition:  def,
		Inputs:      inputs,
		NetInvested: inputs.Capital,
		StartUnits:  units,
		Years:       records,
		Summary:     summary,
	}, nil
}

// SimulateBase dispatches a non-combined strategy to its simulator.
func SimulateBase(def *StrategyDefinition, inputs SimulationInputs, fees FeeConfig) (*StrategyResult, error) {
	switch def.Category {
	case CategoryGold:
		return SimulateGold(inputs, fees)
	case CategoryTracker:
		return SimulateTracker(def.ID, inputs, fees)
	default:
		return nil, NewValidationError("strategy", "%q is not a base strategy", def.ID)
	}
}

// CombinedYearRecord is one merged year of a combined strategy.
type CombinedYearRecord struct {
	Year   int
	Status YearStatus

	OpeningValue float64
	ClosingValue float64

	Component1Value float64 // closing values of each half
	Component2Value float64

	Fees            float64
	GrossWithdrawal float64
	NetWithdrawal   float64
	TaxPaid         float64
}

// CombinedResult is the merged output of a 50/50 blended strategy.
type CombinedResult struct {
	Definition *StrategyDefinition
	Inputs     SimulationInputs
	Components [2]*StrategyResult
	Years      []CombinedYearRecord
	Summary    StrategySummary
}

// SimulateCombined splits the capital evenly between the combination's two
// component strategies, runs each over identical inputs, and merges the
// yearly outputs. A merged year is active while neither side has run out,
// exhausted only when both sides are exhausted, depleted only when both
// deplete in the same year, and partial otherwise.
func SimulateCombined(id string, inputs SimulationInputs, fees FeeConfig) (*CombinedResult, error) {
	def, err := ResolveStrategy(id)
	if err != nil {
		return nil, err
	}
	if !def.IsCombined() {
		return nil, NewValidationError("strategy", "%q is not a combined strategy", id)
	}

	half := inputs
	half.Capital = inputs.Capital * CombinedSplitRatio

	var components [2]*StrategyResult
	for i, componentID := range def.Components {
		componentDef, err := ResolveStrategy(componentID)
		if err != nil {
			return nil, err
		}
		result, err := SimulateBase(componentDef, half, fees)
		if err != nil {
			return nil, err
		}
		components[i] = result
	}

	years := make([]CombinedYearRecord, inputs.HorizonYears)
	for i := range years {
		a, b := components[0].Years[i], components[1].Years[i]
		years[i] = CombinedYearRecord{
			Year:            a.Year,
			Status:          combineStatus(a.Status, b.Status),
			OpeningValue:    a.OpeningValue + b.OpeningValue,
			ClosingValue:    a.ClosingValue + b.ClosingValue,
			Component1Value: a.ClosingValue,
			Component2Value: b.ClosingValue,
			Fees:            a.Fee + b.Fee,
			GrossWithdrawal: a.GrossWithdrawal + b.GrossWithdrawal,
			NetWithdrawal:   a.NetWithdrawal + b.NetWithdrawal,
			TaxPaid:         a.TaxPaid + b.TaxPaid,
		}
	}

	return &CombinedResult{
		Definition: def,
		Inputs:     inputs,
		Components: components,
		Years:      years,
		Summary:    summarizeCombined(years),
	}, nil
}

// combineStatus merges the two components' year statuses.
func combineStatus(a, b YearStatus) YearStatus {
	switch {
	case a == StatusActive && b == StatusActive:
		return StatusActive
	case a == StatusExhausted && b == StatusExhausted:
		return StatusExhausted
	case a == StatusDepleted && b == StatusDepleted:
		return StatusDepleted
	default:
		return StatusPartial
	}
}

func summarizeCombined(years []CombinedYearRecord) StrategySummary {
	var s StrategySummary
	for _, rec := range years {
		s.TotalGrossWithdrawn += rec.GrossWithdrawal
		s.TotalNetWithdrawn += rec.NetWithdrawal
		s.TotalFees += rec.Fees
		s.TotalTaxPaid += rec.TaxPaid
		if rec.Status == StatusDepleted && s.DepletedYear == 0 {
			s.DepletedYear = rec.Year
		}
		if rec.Status == StatusExhausted && s.ExhaustedYear == 0 {
			s.ExhaustedYear = rec.Year
		}
	}
	if len(years) > 0 {
		last := years[len(years)-1]
		s.FinalValue = last.ClosingValue
		s.Successful = last.Status == StatusActive
	}
	s.TotalValueRealized = s.TotalNetWithdrawn + s.FinalValue
	return s
}
