package main

import (
	"errors"
	"testing"
)

func TestResolveStrategy(t *testing.T) {
	for _, id := range []string{"gold", "ftse100", "sp500", "nasdaq100", "gold-ftse100", "gold-sp500", "gold-nasdaq100"} {
		def, err := ResolveStrategy(id)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", id, err)
			continue
		}
		if def.ID != id {
			t.Errorf("resolved %q, asked for %q", def.ID, id)
		}
	}

	_, err := ResolveStrategy("crypto")
	if err == nil {
		t.Fatal("unknown strategy should fail")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("expected ValidationError, got %T", err)
	}
}

func TestRegistry_CombinedEntriesReferenceKnownComponents(t *testing.T) {
	for _, def := range AllStrategies() {
		if !def.IsCombined() {
			continue
		}
		maxEarliest := 0
		for _, componentID := range def.Components {
			component := GetStrategyDefinition(componentID)
			if component == nil {
				t.Errorf("%s: unknown component %q", def.ID, componentID)
				continue
			}
			if component.IsCombined() {
				t.Errorf("%s: combinations cannot nest (%q)", def.ID, componentID)
			}
			if component.EarliestYear > maxEarliest {
				maxEarliest = component.EarliestYear
			}
		}
		if def.EarliestYear != maxEarliest {
			t.Errorf("%s: earliest year %d should be the later of its components' (%d)",
				def.ID, def.EarliestYear, maxEarliest)
		}
	}
}

func TestRegistry_EarliestYearsMatchSeriesCoverage(t *testing.T) {
	seriesFor := map[string]string{
		"gold":      SeriesGoldGBP,
		"ftse100":   SeriesFTSE100,
		"sp500":     SeriesSP500,
		"nasdaq100": SeriesNasdaq100,
	}
	for id, seriesID := range seriesFor {
		def := GetStrategyDefinition(id)
		earliest, _, err := SeriesCoverage(seriesID)
		if err != nil {
			t.Fatalf("%s: %v", id, err)
		}
		if def.EarliestYear != earliest {
			t.Errorf("%s: registry says %d but %s data begins in %d",
				id, def.EarliestYear, seriesID, earliest)
		}
	}
}

func TestRegistry_TrackersHaveSyntheticPrices(t *testing.T) {
	for _, def := range AllStrategies() {
		if def.Category != CategoryTracker {
			continue
		}
		si := GetSyntheticIndex(def.ID)
		if si == nil {
			t.Errorf("%s: no synthetic price series", def.ID)
			continue
		}
		if si.LaunchYear != def.EarliestYear {
			t.Errorf("%s: launch year %d does not match registry earliest %d",
				def.ID, si.LaunchYear, def.EarliestYear)
		}
	}
}
