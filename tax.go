package main

import "math"

// PCLSFraction is the tax-free share of a pension withdrawal
// (Pension Commencement Lump Sum).
const PCLSFraction = 0.25

// TaperRate is the personal allowance withdrawal rate: £1 of allowance
// lost per £2 of income above the taper threshold.
const TaperRate = 0.5

// TaxBandBreakdown itemises tax by band for one computation.
type TaxBandBreakdown struct {
	PersonalAllowance    float64 // effective allowance after any tapering
	BasicRateTax         float64
	HigherRateTax        float64
	AdditionalRateTax    float64
	BasicRateAmount      float64 // income taxed in each band
	HigherRateAmount     float64
	AdditionalRateAmount float64
}

// TaxBreakdown is the full result of one tax computation. Created fresh per
// call and never mutated afterwards.
//
// Invariants: TaxPaid equals the sum of the band taxes, and NetIncome equals
// GrossIncome - TaxPaid.
type TaxBreakdown struct {
	GrossIncome   float64
	TaxFreeAmount float64 // PCLS portion for pension withdrawals, else 0
	TaxableAmount float64 // income for tax above the effective allowance
	TaxPaid       float64
	NetIncome     float64
	Breakdown     TaxBandBreakdown
}

// ComputeTax calculates UK income tax on a gross amount under the given
// year's regime. When isPensionWithdrawal is true, 25% of the amount is
// tax-free (PCLS) and only the remaining 75% is income for tax.
//
// The personal allowance is tapered by £1 for every £2 of income for tax
// above the year's taper threshold (2010 onwards), floored at zero, before
// the taxable amount is computed. Bands are then applied in order: basic,
// higher, additional (where the year defines one).
func ComputeTax(gross float64, year int, isPensionWithdrawal bool) (TaxBreakdown, error) {
	regime, err := TaxRegimeFor(year)
	if err != nil {
		return TaxBreakdown{}, err
	}
	if math.IsNaN(gross) || math.IsInf(gross, 0) {
		return TaxBreakdown{}, NewValidationError("grossAmount", "must be a finite number")
	}
	if gross < 0 {
		return TaxBreakdown{}, NewValidationError("grossAmount", "must not be negative, got %.2f", gross)
	}

	var taxFree float64
	if isPensionWithdrawal {
		taxFree = gross * PCLSFraction
	}
	incomeForTax := gross - taxFree

	allowance := effectiveAllowance(regime, incomeForTax)

	result := TaxBreakdown{
		GrossIncome:   gross,
		TaxFreeAmount: taxFree,
		NetIncome:     gross,
		Breakdown:     TaxBandBreakdown{PersonalAllowance: allowance},
	}
	if incomeForTax <= 0 {
		return result, nil
	}

	taxable := incomeForTax - allowance
	if taxable <= 0 {
		return result, nil
	}
	result.TaxableAmount = taxable

	b := &result.Breakdown
	b.BasicRateAmount = math.Min(taxable, regime.BasicRateLimit)
	b.BasicRateTax = b.BasicRateAmount * regime.BasicRate

	remaining := taxable - b.BasicRateAmount
	if regime.HasAdditionalRate() {
		higherBand := regime.AdditionalRateThreshold - allowance - regime.BasicRateLimit
		if higherBand < 0 {
			higherBand = 0
		}
		b.HigherRateAmount = math.Min(remaining, higherBand)
	} else {
		b.HigherRateAmount = remaining
	}
	b.HigherRateTax = b.HigherRateAmount * regime.HigherRate

	b.AdditionalRateAmount = remaining - b.HigherRateAmount
	b.AdditionalRateTax = b.AdditionalRateAmount * regime.AdditionalRate

	result.TaxPaid = b.BasicRateTax + b.HigherRateTax + b.AdditionalRateTax
	result.NetIncome = gross - result.TaxPaid
	return result, nil
}

// effectiveAllowance applies the personal allowance taper for the year,
// reducing the allowance by £1 for every £2 of income above the threshold
// and flooring at zero.
func effectiveAllowance(regime TaxRegime, incomeForTax float64) float64 {
	if !regime.HasTaper() || incomeForTax <= regime.TaperThreshold {
		return regime.PersonalAllowance
	}
	reduction := (incomeForTax - regime.TaperThreshold) * TaperRate
	return math.Max(0, regime.PersonalAllowance-reduction)
}
