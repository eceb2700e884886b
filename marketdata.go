package main

// Market data provider: year-indexed lookup tables for asset prices, index
// levels, the GBP/USD exchange rate and the UK consumer price index.
// All series are annual values, loaded once and read-only thereafter.
//
// Sources: LBMA gold fixes, Bank of England exchange rates, FTSE Russell,
// S&P Dow Jones Indices, Nasdaq, ONS. Values before ~1990 are annual
// averages reconstructed from published year-end figures.

// Series identifiers understood by LookupSeries.
const (
	SeriesGoldGBP   = "goldGbp"   // gold spot price, £ per troy ounce
	SeriesGBPUSD    = "gbpUsd"    // US dollars per £1, annual average
	SeriesFTSE100   = "ftse100"   // FTSE 100 index level (GBP)
	SeriesSP500     = "sp500"     // S&P 500 index level (USD)
	SeriesNasdaq100 = "nasdaq100" // Nasdaq-100 index level (USD)
	SeriesCPI       = "cpi"       // UK consumer price index, 1975 = 100
)

// DataSeries is one year-indexed table with its coverage bounds.
type DataSeries struct {
	ID       string
	Name     string
	Earliest int
	Latest   int
	values   map[int]float64
}

// Lookup returns the series value for a year, or DataUnavailableError
// when the year falls outside the series' coverage.
func (s *DataSeries) Lookup(year int) (float64, error) {
	v, ok := s.values[year]
	if !ok {
		return 0, &DataUnavailableError{
			Series:       s.ID,
			Year:         year,
			EarliestYear: s.Earliest,
			LatestYear:   s.Latest,
		}
	}
	return v, nil
}

// Gold spot price in GBP per troy ounce (annual average).
var goldGBPSeries = map[int]float64{
	1975: 72.52, 1976: 69.44, 1977: 84.57, 1978: 100.52, 1979: 144.34,
	1980: 263.95, 1981: 226.60, 1982: 214.86, 1983: 278.95, 1984: 269.40,
	1985: 243.85, 1986: 250.34, 1987: 272.56, 1988: 245.51, 1989: 232.32,
	1990: 214.53, 1991: 204.52, 1992: 194.35, 1993: 240.00, 1994: 250.98,
	1995: 243.04, 1996: 248.72, 1997: 201.83, 1998: 177.11, 1999: 172.22,
	2000: 183.55, 2001: 188.19, 2002: 206.67, 2003: 222.70, 2004: 224.04,
	2005: 244.51, 2006: 327.72, 2007: 347.50, 2008: 471.35, 2009: 619.11,
	2010: 790.32, 2011: 982.50, 2012: 1049.69, 2013: 904.49, 2014: 767.27,
	2015: 758.17, 2016: 919.85, 2017: 974.42, 2018: 946.27, 2019: 1088.28,
	2020: 1382.81, 2021: 1303.62, 2022: 1451.61, 2023: 1566.94, 2024: 1866.41,
	2025: 2519.69,
}

// US dollars per £1, annual average.
var gbpUSDSeries = map[int]float64{
	1975: 2.22, 1976: 1.80, 1977: 1.75, 1978: 1.92, 1979: 2.12,
	1980: 2.33, 1981: 2.03, 1982: 1.75, 1983: 1.52, 1984: 1.34,
	1985: 1.30, 1986: 1.47, 1987: 1.64, 1988: 1.78, 1989: 1.64,
	1990: 1.79, 1991: 1.77, 1992: 1.77, 1993: 1.50, 1994: 1.53,
	1995: 1.58, 1996: 1.56, 1997: 1.64, 1998: 1.66, 1999: 1.62,
	2000: 1.52, 2001: 1.44, 2002: 1.50, 2003: 1.63, 2004: 1.83,
	2005: 1.82, 2006: 1.84, 2007: 2.00, 2008: 1.85, 2009: 1.57,
	2010: 1.55, 2011: 1.60, 2012: 1.59, 2013: 1.56, 2014: 1.65,
	2015: 1.53, 2016: 1.36, 2017: 1.29, 2018: 1.34, 2019: 1.28,
	2020: 1.28, 2021: 1.38, 2022: 1.24, 2023: 1.24, 2024: 1.28,
	2025: 1.27,
}

// FTSE 100 index level, year end. The index launched in January 1984.
var ftse100Series = map[int]float64{
	1984: 1232, 1985: 1413, 1986: 1679, 1987: 1713, 1988: 1793,
	1989: 2423, 1990: 2144, 1991: 2493, 1992: 2847, 1993: 3418,
	1994: 3066, 1995: 3689, 1996: 4119, 1997: 5136, 1998: 5883,
	1999: 6930, 2000: 6222, 2001: 5217, 2002: 3940, 2003: 4477,
	2004: 4814, 2005: 5619, 2006: 6221, 2007: 6457, 2008: 4434,
	2009: 5413, 2010: 5900, 2011: 5572, 2012: 5898, 2013: 6749,
	2014: 6566, 2015: 6242, 2016: 7143, 2017: 7688, 2018: 6728,
	2019: 7542, 2020: 6461, 2021: 7385, 2022: 7452, 2023: 7733,
	2024: 8173, 2025: 8800,
}

// S&P 500 index level, year end.
var sp500Series = map[int]float64{
	1975: 90, 1976: 107, 1977: 95, 1978: 96, 1979: 108,
	1980: 136, 1981: 123, 1982: 141, 1983: 165, 1984: 167,
	1985: 211, 1986: 242, 1987: 247, 1988: 278, 1989: 353,
	1990: 330, 1991: 417, 1992: 436, 1993: 466, 1994: 459,
	1995: 616, 1996: 741, 1997: 970, 1998: 1229, 1999: 1469,
	2000: 1320, 2001: 1148, 2002: 880, 2003: 1112, 2004: 1212,
	2005: 1248, 2006: 1418, 2007: 1468, 2008: 903, 2009: 1115,
	2010: 1258, 2011: 1258, 2012: 1426, 2013: 1848, 2014: 2059,
	2015: 2044, 2016: 2239, 2017: 2674, 2018: 2507, 2019: 3231,
	2020: 3756, 2021: 4766, 2022: 3840, 2023: 4770, 2024: 5882,
	2025: 6300,
}

// Nasdaq-100 index level, year end. The index launched in January 1985.
var nasdaq100Series = map[int]float64{
	1985: 250, 1986: 263, 1987: 262, 1988: 279, 1989: 349,
	1990: 328, 1991: 544, 1992: 631, 1993: 693, 1994: 726,
	1995: 1052, 1996: 1291, 1997: 990, 1998: 1836, 1999: 3708,
	2000: 2341, 2001: 1577, 2002: 984, 2003: 1468, 2004: 1621,
	2005: 1645, 2006: 1757, 2007: 2085, 2008: 1212, 2009: 1860,
	2010: 2218, 2011: 2278, 2012: 2660, 2013: 3592, 2014: 4236,
	2015: 4593, 2016: 4863, 2017: 6396, 2018: 6330, 2019: 8733,
	2020: 12888, 2021: 16320, 2022: 10940, 2023: 16826, 2024: 21012,
	2025: 22500,
}

// UK consumer price index, rebased to 1975 = 100.
var cpiSeries = map[int]float64{
	1975: 100.0, 1976: 115.0, 1977: 132.2, 1978: 152.1, 1979: 174.9,
	1980: 195.9, 1981: 219.4, 1982: 245.7, 1983: 259.2, 1984: 273.5,
	1985: 288.5, 1986: 304.4, 1987: 321.1, 1988: 338.8, 1989: 357.4,
	1990: 384.3, 1991: 413.1, 1992: 426.3, 1993: 439.9, 1994: 454.0,
	1995: 468.5, 1996: 483.5, 1997: 499.0, 1998: 515.0, 1999: 531.5,
	2000: 546.3, 2001: 561.6, 2002: 577.4, 2003: 593.5, 2004: 610.1,
	2005: 627.2, 2006: 644.8, 2007: 662.8, 2008: 681.4, 2009: 703.2,
	2010: 725.7, 2011: 748.9, 2012: 772.9, 2013: 797.6, 2014: 813.6,
	2015: 829.9, 2016: 846.5, 2017: 863.4, 2018: 880.7, 2019: 898.3,
	2020: 916.2, 2021: 978.5, 2022: 1045.1, 2023: 1116.1, 2024: 1151.9,
	2025: 1188.7,
}

// MarketSeries holds every registered data series, keyed by series ID.
var MarketSeries = map[string]*DataSeries{
	SeriesGoldGBP:   {ID: SeriesGoldGBP, Name: "Gold (GBP/oz)", Earliest: 1975, Latest: 2025, values: goldGBPSeries},
	SeriesGBPUSD:    {ID: SeriesGBPUSD, Name: "GBP/USD", Earliest: 1975, Latest: 2025, values: gbpUSDSeries},
	SeriesFTSE100:   {ID: SeriesFTSE100, Name: "FTSE 100", Earliest: 1984, Latest: 2025, values: ftse100Series},
	SeriesSP500:     {ID: SeriesSP500, Name: "S&P 500", Earliest: 1975, Latest: 2025, values: sp500Series},
	SeriesNasdaq100: {ID: SeriesNasdaq100, Name: "Nasdaq-100", Earliest: 1985, Latest: 2025, values: nasdaq100Series},
	SeriesCPI:       {ID: SeriesCPI, Name: "UK CPI", Earliest: 1975, Latest: 2025, values: cpiSeries},
}

// GetDataSeries returns a series by ID, or nil if not registered.
func GetDataSeries(id string) *DataSeries {
	return MarketSeries[id]
}

// LookupSeries looks up one series value for a year.
func LookupSeries(id string, year int) (float64, error) {
	s := GetDataSeries(id)
	if s == nil {
		return 0, NewValidationError("series", "unknown data series %q", id)
	}
	return s.Lookup(year)
}

// SeriesCoverage returns the earliest and latest year a series spans.
func SeriesCoverage(id string) (earliest, latest int, err error) {
	s := GetDataSeries(id)
	if s == nil {
		return 0, 0, NewValidationError("series", "unknown data series %q", id)
	}
	return s.Earliest, s.Latest, nil
}
