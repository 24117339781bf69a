package arrivalTool

import (
	"fmt"
	"log"
	"os"
)

// BuildDistributions derives the hourly arrival and acuity distributions from
// the raw input files and writes them, plus charts when enabled
func BuildDistributions(
	cfg *Config) error {

	// print status
	log.Println("Loading Data...")

	// parse input data
	series, err := LoadAcuitySeriesData(cfg.AcuitySeriesPaths())
	if err != nil {
		return err
	}
	cov, err := LoadCoefficientData(cfg.CoefficientPath())
	if err != nil {
		return err
	}

	// print status
	log.Println("Computing Distributions...")

	// compute every table before anything is written
	ms, err := ComputeMeanStd(series.Total(), cov)
	if err != nil {
		return err
	}
	ap, err := ComputeAcuityProportions(series)
	if err != nil {
		return err
	}
	cp := CumulativeProportions(ap)

	// render charts ahead of the tables so a chart failure writes no tables
	if cfg.ImageDir != "" {
		if err := os.MkdirAll(cfg.ImageDir, 0o755); err != nil {
			return err
		}
		if err := PlotArrivalDistribution(ms, cfg.Style, cfg.ImagePath("hourly_arrival_distribution.png")); err != nil {
			return fmt.Errorf("arrival chart: %w", err)
		}
		if err := PlotAcuityDistribution(ap, cfg.Style, cfg.ImagePath("hourly_acuity_distribution.png")); err != nil {
			return fmt.Errorf("acuity chart: %w", err)
		}
	}

	// print status
	log.Println("Writing Results...")

	if err := WriteMeanStdData(ms, cfg.MeanStdPath()); err != nil {
		return err
	}
	if err := WriteAcuityProportionData(ap, cfg.ProportionPath()); err != nil {
		return err
	}

	return WriteCumulativeProportionData(cp, cfg.CumulativePath())
}

// SimulateArrivals reads the derived distributions, simulates cfg.Days days
// of arrivals and writes them with a per-hour summary, plus charts when enabled
func SimulateArrivals(
	cfg *Config) error {

	// print status
	log.Println("Loading Distributions...")

	ms, err := LoadMeanStdData(cfg.MeanStdPath())
	if err != nil {
		return err
	}
	ap, err := LoadAcuityProportionData(cfg.ProportionPath())
	if err != nil {
		return err
	}

	// print status
	log.Printf("Simulating %d Days (%s acuity, seed %d)...", cfg.Days, cfg.Method, cfg.Seed)

	days, err := SimulateDays(cfg.Days, ms, ap, cfg.Method, NewSource(cfg.Seed))
	if err != nil {
		return err
	}
	summary, err := SummarizeDays(days, ms)
	if err != nil {
		return err
	}

	// render charts
	if cfg.ImageDir != "" {
		if err := os.MkdirAll(cfg.ImageDir, 0o755); err != nil {
			return err
		}
		if err := PlotSimulatedDay(days[0], cfg.Style, cfg.ImagePath("single-day_arrival_simulation.png")); err != nil {
			return fmt.Errorf("single day chart: %w", err)
		}
		if err := PlotSimulatedDays(days, cfg.Style, cfg.ImagePath("multi-day_arrival_simulation.png")); err != nil {
			return fmt.Errorf("multi-day chart: %w", err)
		}
	}

	// print status
	log.Println("Writing Results...")

	if err := WriteSimulatedDayData(days, cfg.SimulationPath()); err != nil {
		return err
	}

	return WriteSummaryData(summary, cfg.SummaryPath())
}
