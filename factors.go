package main

// Inflation adjustment helpers over the CPI series. These feed presentation
// views ("in today's money" columns); nothing in the simulators depends on
// them.

// InflationFactor returns the CPI ratio between two years.
func InflationFactor(fromYear, toYear int) (float64, error) {
	from, err := LookupSeries(SeriesCPI, fromYear)
	if err != nil {
		return 0, err
	}
	to, err := LookupSeries(SeriesCPI, toYear)
	if err != nil {
		return 0, err
	}
	return to / from, nil
}

// RealValue re-expresses a nominal amount from one year in another year's
// money.
func RealValue(nominal float64, fromYear, toYear int) (float64, error) {
	factor, err := InflationFactor(fromYear, toYear)
	if err != nil {
		return 0, err
	}
	return nominal * factor, nil
}

// RealTotalReturn deflates a nominal total return by CPI over the same span.
func RealTotalReturn(nominalReturn float64, fromYear, toYear int) (float64, error) {
	factor, err := InflationFactor(fromYear, toYear)
	if err != nil {
		return 0, err
	}
	return nominalReturn / factor, nil
}
