package main

import "math"

// Synthetic price normalizer: derives a GBP-denominated unit price series
// for each supported index, anchored to a base year and base price. This
// simulates the price history of a tracker unit for years before any real
// tracker fund existed.
//
// For a USD index the home-currency price is
//
//	price = indexLevel[y]/indexLevel[base] * basePrice * fx[base]/fx[y]
//
// where fx is US dollars per £1. GBP indices omit the exchange-rate factor.

// SyntheticIndex anchors one index to a GBP unit price series.
type SyntheticIndex struct {
	ID          string
	Name        string
	IndexSeries string // market data series holding the index levels
	FXSeries    string // exchange-rate series, empty for GBP indices
	BaseYear    int
	BasePrice   float64 // GBP unit price in BaseYear
	LaunchYear  int     // first year with index data
}

// SyntheticIndices lists every index the tracker strategies can hold.
var SyntheticIndices = []SyntheticIndex{
	{ID: SeriesFTSE100, Name: "FTSE 100", IndexSeries: SeriesFTSE100, BaseYear: 1984, BasePrice: 100, LaunchYear: 1984},
	{ID: SeriesSP500, Name: "S&P 500", IndexSeries: SeriesSP500, FXSeries: SeriesGBPUSD, BaseYear: 1975, BasePrice: 100, LaunchYear: 1975},
	{ID: SeriesNasdaq100, Name: "Nasdaq-100", IndexSeries: SeriesNasdaq100, FXSeries: SeriesGBPUSD, BaseYear: 1985, BasePrice: 100, LaunchYear: 1985},
}

// GetSyntheticIndex returns an index by ID, or nil if not found.
func GetSyntheticIndex(id string) *SyntheticIndex {
	for i := range SyntheticIndices {
		if SyntheticIndices[i].ID == id {
			return &SyntheticIndices[i]
		}
	}
	return nil
}

// Price returns the synthetic GBP unit price for a year.
func (si *SyntheticIndex) Price(year int) (float64, error) {
	if year < si.LaunchYear {
		_, latest, _ := SeriesCoverage(si.IndexSeries)
		return 0, &DataUnavailableError{
			Series:       si.ID,
			Year:         year,
			EarliestYear: si.LaunchYear,
			LatestYear:   latest,
		}
	}
	level, err := LookupSeries(si.IndexSeries, year)
	if err != nil {
		return 0, err
	}
	baseLevel, err := LookupSeries(si.IndexSeries, si.BaseYear)
	if err != nil {
		return 0, err
	}

	price := level / baseLevel * si.BasePrice
	if si.FXSeries != "" {
		fx, err := LookupSeries(si.FXSeries, year)
		if err != nil {
			return 0, err
		}
		baseFX, err := LookupSeries(si.FXSeries, si.BaseYear)
		if err != nil {
			return 0, err
		}
		price *= baseFX / fx
	}
	return price, nil
}

// Units returns how many units a GBP amount buys at the year's price.
func (si *SyntheticIndex) Units(amount float64, year int) (float64, error) {
	price, err := si.Price(year)
	if err != nil {
		return 0, err
	}
	return amount / price, nil
}

// Value returns the GBP value of a unit holding at the year's price.
func (si *SyntheticIndex) Value(units float64, year int) (float64, error) {
	price, err := si.Price(year)
	if err != nil {
		return 0, err
	}
	return units * price, nil
}

// TotalReturn is the price ratio between two years. The same-year ratio
// is 1 by construction.
func (si *SyntheticIndex) TotalReturn(fromYear, toYear int) (float64, error) {
	from, err := si.Price(fromYear)
	if err != nil {
		return 0, err
	}
	to, err := si.Price(toYear)
	if err != nil {
		return 0, err
	}
	return to / from, nil
}

// AnnualizedReturn is the compound annual growth rate between two years.
// The span must be at least one year; a zero or inverted span has no rate.
func (si *SyntheticIndex) AnnualizedReturn(fromYear, toYear int) (float64, error) {
	if toYear <= fromYear {
		return 0, NewValidationError("toYear", "must be after fromYear (%d <= %d)", toYear, fromYear)
	}
	total, err := si.TotalReturn(fromYear, toYear)
	if err != nil {
		return 0, err
	}
	years := float64(toYear - fromYear)
	return math.Pow(total, 1/years) - 1, nil
}
