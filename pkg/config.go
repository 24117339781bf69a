package arrivalTool

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Config type
type Config struct {
	Mode      string       // pipeline stage to run: build, simulate or all
	InputDir  string       // directory holding a1-a6.csv and a_cov.csv
	OutputDir string       // directory for derived and simulated csv files
	ImageDir  string       // directory for charts, empty disables charts
	Days      int          // number of days to simulate
	Seed      uint64       // random seed for the simulation
	Method    AcuityMethod // acuity assignment method
	Style     ChartStyle   // chart appearance
}

// DefaultConfig generator
func DefaultConfig(
	base string) *Config {

	// return output
	return &Config{
		Mode:      "all",
		InputDir:  filepath.Join(base, "in"),
		OutputDir: filepath.Join(base, "out"),
		ImageDir:  filepath.Join(base, "images"),
		Days:      5,
		Seed:      42,
		Method:    Categorical,
		Style:     DefaultChartStyle(),
	}
}

// Validate checks the configuration before any file is touched
func (c *Config) Validate() error {

	switch c.Mode {
	case "build", "simulate", "all":
	default:
		return fmt.Errorf("config: unknown mode %q, want build, simulate or all", c.Mode)
	}
	if c.InputDir == "" && c.Mode != "simulate" {
		return fmt.Errorf("config: input directory is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("config: output directory is required")
	}
	if c.Days < 1 {
		return fmt.Errorf("config: day count must be positive, got %d", c.Days)
	}
	if c.Method != Categorical && c.Method != Multinomial {
		return fmt.Errorf("config: unknown acuity method %d", int(c.Method))
	}

	return nil
}

// AcuitySeriesPaths returns the cumulative arrival files, a1-a6
func (c *Config) AcuitySeriesPaths() []string {

	paths := make([]string, lvls)
	for k := range paths {
		paths[k] = filepath.Join(c.InputDir, levelName("a", k)+".csv")
	}

	return paths
}

// CoefficientPath returns the coefficient of variation file
func (c *Config) CoefficientPath() string {
	return filepath.Join(c.InputDir, "a_cov.csv")
}

// MeanStdPath returns the hourly arrival mean/std file
func (c *Config) MeanStdPath() string {
	return filepath.Join(c.OutputDir, "patient_arrival_distribution.csv")
}

// ProportionPath returns the hourly acuity proportion file
func (c *Config) ProportionPath() string {
	return filepath.Join(c.OutputDir, "acuity_distribution.csv")
}

// CumulativePath returns the cumulative acuity proportion file
func (c *Config) CumulativePath() string {
	return filepath.Join(c.OutputDir, "cumulative_acuity_distribution.csv")
}

// SimulationPath returns the simulated arrivals file
func (c *Config) SimulationPath() string {
	return filepath.Join(c.OutputDir, "simulated_arrivals.csv")
}

// SummaryPath returns the simulation summary file
func (c *Config) SummaryPath() string {
	return filepath.Join(c.OutputDir, "simulation_summary.csv")
}

// ImageLabel names the image folder for display, or "disabled" when charts
// are turned off
func (c *Config) ImageLabel() string {
	if c.ImageDir == "" {
		return "disabled"
	}
	return filepath.Base(c.ImageDir)
}

// ImagePath returns the path of a chart, or "" when charts are disabled
func (c *Config) ImagePath(
	name string) string {

	if c.ImageDir == "" {
		return ""
	}

	return filepath.Join(c.ImageDir, name)
}

// ParseAcuityMethod maps a method name to its AcuityMethod
func ParseAcuityMethod(
	name string) (AcuityMethod, error) {

	switch strings.ToLower(strings.TrimSpace(name)) {
	case "categorical":
		return Categorical, nil
	case "multinomial":
		return Multinomial, nil
	}

	return Categorical, fmt.Errorf("unknown acuity method %q, want categorical or multinomial", name)
}

func (m AcuityMethod) String() string {
	switch m {
	case Categorical:
		return "categorical"
	case Multinomial:
		return "multinomial"
	}

	return "AcuityMethod(" + fmt.Sprint(int(m)) + ")"
}
