package arrivalTool

import (
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// set global constants
const hrs int = 24 // hours per day
const lvls int = 6 // acuity levels, a1-a6
const prec int = 4 // decimal places written to derived csv files

// AcuityMethod selects how patients in an hour are spread over acuity levels
type AcuityMethod int

const (
	// Categorical draws one acuity level per patient
	Categorical AcuityMethod = iota

	// Multinomial draws all acuity counts for an hour at once
	Multinomial
)

// HourlySeries type
type HourlySeries struct {
	Name   string    // series name, a1-a6 or cov
	Hours  []int     // hour of the day
	Values []float64 // value at each hour
}

// HourlyAcuitySeries type
type HourlyAcuitySeries struct {
	Hours  []int      // hour of the day
	Counts *mat.Dense // cumulative arrival counts, hours x a1-a6
}

// ArrivalMeanStd type
type ArrivalMeanStd struct {
	Hours  []int      // hour of the day
	Values *mat.Dense // hours x (mean, std) patient arrivals
}

// AcuityProportion type
type AcuityProportion struct {
	Hours       []int      // hour of the day
	Proportions *mat.Dense // hours x pa1-pa6, unitless
}

// SimulatedDay type
type SimulatedDay struct {
	Hours    []int       // hour of the day
	Total    []int       // total simulated arrivals per hour
	Arrivals [][lvls]int // simulated arrivals per hour per acuity level
}

// HourSummary type
type HourSummary struct {
	Hour       int           // hour of the day
	TargetMean float64       // mean arrivals used to drive the simulation
	TargetStd  float64       // std of arrivals used to drive the simulation
	TargetCov  float64       // target coefficient of variation
	SimMean    float64       // sample mean of simulated arrivals
	SimStd     float64       // sample std of simulated arrivals
	SimCov     float64       // sample coefficient of variation
	LevelMeans [lvls]float64 // sample mean of simulated arrivals per acuity level
}

// Mean returns the mean arrivals for row i
func (ms *ArrivalMeanStd) Mean(i int) float64 {
	return ms.Values.At(i, 0)
}

// Std returns the arrival standard deviation for row i
func (ms *ArrivalMeanStd) Std(i int) float64 {
	return ms.Values.At(i, 1)
}

// Row returns a copy of the acuity proportions for row i
func (ap *AcuityProportion) Row(i int) []float64 {
	return mat.Row(nil, i, ap.Proportions)
}

// Level returns the cumulative counts of acuity level k (0-based) by hour
func (s *HourlyAcuitySeries) Level(k int) []float64 {
	return mat.Col(nil, k, s.Counts)
}

// Total returns the a6 series, the hourly arrivals across all acuity levels
func (s *HourlyAcuitySeries) Total() *HourlySeries {
	return &HourlySeries{
		Name:   levelName("a", lvls-1),
		Hours:  copyHours(s.Hours),
		Values: s.Level(lvls - 1),
	}
}

// levelName returns the column name of acuity level k (0-based)
func levelName(prefix string, k int) string {
	return prefix + strconv.Itoa(k+1)
}
