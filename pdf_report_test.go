package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPDFText(t *testing.T) {
	if got := pdfText("£1,000"); got != "\xa31,000" {
		t.Errorf("pdfText = %q", got)
	}
}

func TestComparisonPDFReport_Generate(t *testing.T) {
	inputs := SimulationInputs{Capital: 500000, StartYear: 2000, WithdrawalRatePercent: 4, HorizonYears: 10}
	result, err := CompareStrategies("gold", "ftse100", inputs, FeeConfig{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "comparison.pdf")
	if err := NewComparisonPDFReport(result).Generate(path); err != nil {
		t.Fatalf("generate: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Error("generated PDF is empty")
	}
}
