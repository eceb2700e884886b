package main

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default-config.yaml
var defaultConfigYAML string

// FeeConfig holds the fee and transaction-cost percentages for the
// simulators. It is an immutable value: defaults are merged through the
// Get* accessors at the call boundary, never written back, so two
// simulations can never observe each other's configuration.
//
// Fields are pointers because zero is a meaningful setting (a free SIPP or
// fee-free gold storage), distinct from "not configured".
type FeeConfig struct {
	// GoldPurchaseCostPercent is the one-time dealing cost when the initial
	// capital is converted to gold (default 2%).
	GoldPurchaseCostPercent *float64 `yaml:"gold_purchase_cost_percent" json:"gold_purchase_cost_percent"`
	// GoldSaleCostPercent is the dealing cost on every ounce sold (default 1.5%).
	GoldSaleCostPercent *float64 `yaml:"gold_sale_cost_percent" json:"gold_sale_cost_percent"`
	// GoldStorageFeePercent is the annual storage fee on the holding's value
	// (default 0 - home storage).
	GoldStorageFeePercent *float64 `yaml:"gold_storage_fee_percent" json:"gold_storage_fee_percent"`
	// SippManagementFeePercent is the tracker fund's annual management fee
	// (default 0.45%).
	SippManagementFeePercent *float64 `yaml:"sipp_management_fee_percent" json:"sipp_management_fee_percent"`
}

const (
	defaultGoldPurchaseCostPercent  = 2.0
	defaultGoldSaleCostPercent      = 1.5
	defaultGoldStorageFeePercent    = 0.0
	defaultSippManagementFeePercent = 0.45
)

// GetGoldPurchaseCostPercent returns the gold purchase cost, using the default if unset.
func (fc FeeConfig) GetGoldPurchaseCostPercent() float64 {
	if fc.GoldPurchaseCostPercent == nil {
		return defaultGoldPurchaseCostPercent
	}
	return *fc.GoldPurchaseCostPercent
}

// GetGoldSaleCostPercent returns the gold sale cost, using the default if unset.
func (fc FeeConfig) GetGoldSaleCostPercent() float64 {
	if fc.GoldSaleCostPercent == nil {
		return defaultGoldSaleCostPercent
	}
	return *fc.GoldSaleCostPercent
}

// GetGoldStorageFeePercent returns the annual storage fee, using the default if unset.
func (fc FeeConfig) GetGoldStorageFeePercent() float64 {
	if fc.GoldStorageFeePercent == nil {
		return defaultGoldStorageFeePercent
	}
	return *fc.GoldStorageFeePercent
}

// GetSippManagementFeePercent returns the annual management fee, using the default if unset.
func (fc FeeConfig) GetSippManagementFeePercent() float64 {
	if fc.SippManagementFeePercent == nil {
		return defaultSippManagementFeePercent
	}
	return *fc.SippManagementFeePercent
}

// SimulationDefaults holds the default simulation inputs for the CLI.
type SimulationDefaults struct {
	Capital               float64 `yaml:"capital" json:"capital"`
	StartYear             int     `yaml:"start_year" json:"start_year"`
	WithdrawalRatePercent float64 `yaml:"withdrawal_rate_percent" json:"withdrawal_rate_percent"`
	HorizonYears          int     `yaml:"horizon_years" json:"horizon_years"`
}

// ComparisonDefaults names the two strategies the CLI compares by default.
type ComparisonDefaults struct {
	Strategy1 string `yaml:"strategy1" json:"strategy1"`
	Strategy2 string `yaml:"strategy2" json:"strategy2"`
}

// ReportConfig holds report output settings.
type ReportConfig struct {
	OutputDir string `yaml:"output_dir" json:"output_dir"`
}

// GetOutputDir returns the report directory, defaulting to "reports".
func (rc ReportConfig) GetOutputDir() string {
	if rc.OutputDir == "" {
		return "reports"
	}
	return rc.OutputDir
}

// Config is the full YAML configuration.
type Config struct {
	Fees       FeeConfig          `yaml:"fees" json:"fees"`
	Simulation SimulationDefaults `yaml:"simulation" json:"simulation"`
	Comparison ComparisonDefaults `yaml:"comparison" json:"comparison"`
	Report     ReportConfig       `yaml:"report" json:"report"`
}

// LoadConfig loads configuration from a YAML file. A missing file falls back
// to the embedded defaults; a malformed file is an error.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return loadDefaultConfig()
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &config, nil
}

func loadDefaultConfig() (*Config, error) {
	var config Config
	if err := yaml.Unmarshal([]byte(defaultConfigYAML), &config); err != nil {
		return nil, fmt.Errorf("parsing embedded default config: %w", err)
	}
	return &config, nil
}
