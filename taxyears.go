package main

// Tax regime provider: UK income tax parameters by tax year, 1975-2025.
// Each entry is keyed by the calendar year in which the tax year starts
// (2024 means the 2024/25 tax year).
//
// Years before 1988 had more bands than the three modelled here; those
// regimes are collapsed to allowance + basic + top rate, which is the
// granularity the drawdown simulations need. Figures from HMRC rates and
// allowances tables.

// TaxRegime holds one tax year's bands and thresholds.
type TaxRegime struct {
	Year              int
	PersonalAllowance float64
	BasicRate         float64
	BasicRateLimit    float64 // width of the basic-rate band above the allowance
	HigherRate        float64

	// AdditionalRate is zero for years without an additional rate.
	// AdditionalRateThreshold is the gross income level at which it starts.
	AdditionalRate          float64
	AdditionalRateThreshold float64

	// TaperThreshold is the income level above which the personal allowance
	// is withdrawn at £1 per £2. Zero before tapering existed (pre-2010).
	TaperThreshold float64
}

// HasAdditionalRate reports whether the year defines an additional rate band.
func (r TaxRegime) HasAdditionalRate() bool {
	return r.AdditionalRate > 0
}

// HasTaper reports whether the year tapers the personal allowance.
func (r TaxRegime) HasTaper() bool {
	return r.TaperThreshold > 0
}

const (
	earliestTaxYear = 1975
	latestTaxYear   = 2025
)

var taxRegimes = map[int]TaxRegime{
	1975: {Year: 1975, PersonalAllowance: 675, BasicRate: 0.35, BasicRateLimit: 4500, HigherRate: 0.83},
	1976: {Year: 1976, PersonalAllowance: 735, BasicRate: 0.35, BasicRateLimit: 5000, HigherRate: 0.83},
	1977: {Year: 1977, PersonalAllowance: 805, BasicRate: 0.34, BasicRateLimit: 6000, HigherRate: 0.83},
	1978: {Year: 1978, PersonalAllowance: 985, BasicRate: 0.33, BasicRateLimit: 7000, HigherRate: 0.83},
	1979: {Year: 1979, PersonalAllowance: 1165, BasicRate: 0.30, BasicRateLimit: 10000, HigherRate: 0.60},
	1980: {Year: 1980, PersonalAllowance: 1375, BasicRate: 0.30, BasicRateLimit: 11250, HigherRate: 0.60},
	1981: {Year: 1981, PersonalAllowance: 1375, BasicRate: 0.30, BasicRateLimit: 11250, HigherRate: 0.60},
	1982: {Year: 1982, PersonalAllowance: 1565, BasicRate: 0.30, BasicRateLimit: 12800, HigherRate: 0.60},
	1983: {Year: 1983, PersonalAllowance: 1785, BasicRate: 0.30, BasicRateLimit: 14600, HigherRate: 0.60},
	1984: {Year: 1984, PersonalAllowance: 2005, BasicRate: 0.30, BasicRateLimit: 15400, HigherRate: 0.60},
	1985: {Year: 1985, PersonalAllowance: 2205, BasicRate: 0.30, BasicRateLimit: 16200, HigherRate: 0.60},
	1986: {Year: 1986, PersonalAllowance: 2335, BasicRate: 0.29, BasicRateLimit: 17200, HigherRate: 0.60},
	1987: {Year: 1987, PersonalAllowance: 2425, BasicRate: 0.27, BasicRateLimit: 17900, HigherRate: 0.60},
	1988: {Year: 1988, PersonalAllowance: 2605, BasicRate: 0.25, BasicRateLimit: 19300, HigherRate: 0.40},
	1989: {Year: 1989, PersonalAllowance: 2785, BasicRate: 0.25, BasicRateLimit: 20700, HigherRate: 0.40},
	1990: {Year: 1990, PersonalAllowance: 3005, BasicRate: 0.25, BasicRateLimit: 20700, HigherRate: 0.40},
	1991: {Year: 1991, PersonalAllowance: 3295, BasicRate: 0.25, BasicRateLimit: 23700, HigherRate: 0.40},
	1992: {Year: 1992, PersonalAllowance: 3445, BasicRate: 0.25, BasicRateLimit: 23700, HigherRate: 0.40},
	1993: {Year: 1993, PersonalAllowance: 3445, BasicRate: 0.25, BasicRateLimit: 23700, HigherRate: 0.40},
	1994: {Year: 1994, PersonalAllowance: 3445, BasicRate: 0.25, BasicRateLimit: 23700, HigherRate: 0.40},
	1995: {Year: 1995, PersonalAllowance: 3525, BasicRate: 0.25, BasicRateLimit: 24300, HigherRate: 0.40},
	1996: {Year: 1996, PersonalAllowance: 3765, BasicRate: 0.24, BasicRateLimit: 25500, HigherRate: 0.40},
	1997: {Year: 1997, PersonalAllowance: 4045, BasicRate: 0.23, BasicRateLimit: 26100, HigherRate: 0.40},
	1998: {Year: 1998, PersonalAllowance: 4195, BasicRate: 0.23, BasicRateLimit: 27100, HigherRate: 0.40},
	1999: {Year: 1999, PersonalAllowance: 4335, BasicRate: 0.23, BasicRateLimit: 28000, HigherRate: 0.40},
	2000: {Year: 2000, PersonalAllowance: 4385, BasicRate: 0.22, BasicRateLimit: 28400, HigherRate: 0.40},
	2001: {Year: 2001, PersonalAllowance: 4535, BasicRate: 0.22, BasicRateLimit: 29400, HigherRate: 0.40},
	2002: {Year: 2002, PersonalAllowance: 4615, BasicRate: 0.22, BasicRateLimit: 29900, HigherRate: 0.40},
	2003: {Year: 2003, PersonalAllowance: 4615, BasicRate: 0.22, BasicRateLimit: 30500, HigherRate: 0.40},
	2004: {Year: 2004, PersonalAllowance: 4745, BasicRate: 0.22, BasicRateLimit: 31400, HigherRate: 0.40},
	2005: {Year: 2005, PersonalAllowance: 4895, BasicRate: 0.22, BasicRateLimit: 32400, HigherRate: 0.40},
	2006: {Year: 2006, PersonalAllowance: 5035, BasicRate: 0.22, BasicRateLimit: 33300, HigherRate: 0.40},
	2007: {Year: 2007, PersonalAllowance: 5225, BasicRate: 0.22, BasicRateLimit: 34600, HigherRate: 0.40},
	2008: {Year: 2008, PersonalAllowance: 6035, BasicRate: 0.20, BasicRateLimit: 34800, HigherRate: 0.40},
	2009: {Year: 2009, PersonalAllowance: 6475, BasicRate: 0.20, BasicRateLimit: 37400, HigherRate: 0.40},
	2010: {Year: 2010, PersonalAllowance: 6475, BasicRate: 0.20, BasicRateLimit: 37400, HigherRate: 0.40, AdditionalRate: 0.50, AdditionalRateThreshold: 150000, TaperThreshold: 100000},
	2011: {Year: 2011, PersonalAllowance: 7475, BasicRate: 0.20, BasicRateLimit: 35000, HigherRate: 0.40, AdditionalRate: 0.50, AdditionalRateThreshold: 150000, TaperThreshold: 100000},
	2012: {Year: 2012, PersonalAllowance: 8105, BasicRate: 0.20, BasicRateLimit: 34370, HigherRate: 0.40, AdditionalRate: 0.50, AdditionalRateThreshold: 150000, TaperThreshold: 100000},
	2013: {Year: 2013, PersonalAllowance: 9440, BasicRate: 0.20, BasicRateLimit: 32010, HigherRate: 0.40, AdditionalRate: 0.45, AdditionalRateThreshold: 150000, TaperThreshold: 100000},
	2014: {Year: 2014, PersonalAllowance: 10000, BasicRate: 0.20, BasicRateLimit: 31865, HigherRate: 0.40, AdditionalRate: 0.45, AdditionalRateThreshold: 150000, TaperThreshold: 100000},
	2015: {Year: 2015, PersonalAllowance: 10600, BasicRate: 0.20, BasicRateLimit: 31785, HigherRate: 0.40, AdditionalRate: 0.45, AdditionalRateThreshold: 150000, TaperThreshold: 100000},
	2016: {Year: 2016, PersonalAllowance: 11000, BasicRate: 0.20, BasicRateLimit: 32000, HigherRate: 0.40, AdditionalRate: 0.45, AdditionalRateThreshold: 150000, TaperThreshold: 100000},
	2017: {Year: 2017, PersonalAllowance: 11500, BasicRate: 0.20, BasicRateLimit: 33500, HigherRate: 0.40, AdditionalRate: 0.45, AdditionalRateThreshold: 150000, TaperThreshold: 100000},
	2018: {Year: 2018, PersonalAllowance: 11850, BasicRate: 0.20, BasicRateLimit: 34500, HigherRate: 0.40, AdditionalRate: 0.45, AdditionalRateThreshold: 150000, TaperThreshold: 100000},
	2019: {Year: 2019, PersonalAllowance: 12500, BasicRate: 0.20, BasicRateLimit: 37500, HigherRate: 0.40, AdditionalRate: 0.45, AdditionalRateThreshold: 150000, TaperThreshold: 100000},
	2020: {Year: 2020, PersonalAllowance: 12500, BasicRate: 0.20, BasicRateLimit: 37500, HigherRate: 0.40, AdditionalRate: 0.45, AdditionalRateThreshold: 150000, TaperThreshold: 100000},
	2021: {Year: 2021, PersonalAllowance: 12570, BasicRate: 0.20, BasicRateLimit: 37700, HigherRate: 0.40, AdditionalRate: 0.45, AdditionalRateThreshold: 150000, TaperThreshold: 100000},
	2022: {Year: 2022, PersonalAllowance: 12570, BasicRate: 0.20, BasicRateLimit: 37700, HigherRate: 0.40, AdditionalRate: 0.45, AdditionalRateThreshold: 150000, TaperThreshold: 100000},
	2023: {Year: 2023, PersonalAllowance: 12570, BasicRate: 0.20, BasicRateLimit: 37700, HigherRate: 0.40, AdditionalRate: 0.45, AdditionalRateThreshold: 125140, TaperThreshold: 100000},
	2024: {Year: 2024, PersonalAllowance: 12570, BasicRate: 0.20, BasicRateLimit: 37700, HigherRate: 0.40, AdditionalRate: 0.45, AdditionalRateThreshold: 125140, TaperThreshold: 100000},
	2025: {Year: 2025, PersonalAllowance: 12570, BasicRate: 0.20, BasicRateLimit: 37700, HigherRate: 0.40, AdditionalRate: 0.45, AdditionalRateThreshold: 125140, TaperThreshold: 100000},
}

// TaxRegimeFor returns the tax regime for a year, or DataUnavailableError
// when the year is outside the supported span.
func TaxRegimeFor(year int) (TaxRegime, error) {
	r, ok := taxRegimes[year]
	if !ok {
		return TaxRegime{}, &DataUnavailableError{
			Series:       "taxRegime",
			Year:         year,
			EarliestYear: earliestTaxYear,
			LatestYear:   latestTaxYear,
		}
	}
	return r, nil
}

// TaxYearCoverage returns the first and last supported tax years.
func TaxYearCoverage() (earliest, latest int) {
	return earliestTaxYear, latestTaxYear
}
