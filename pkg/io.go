package arrivalTool

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats/scalar"
	"gopkg.in/cheggaaa/pb.v1"
)

// LoadHourlySeriesData function
//
// The file has no header and two numeric columns, hour and value. Hours are
// truncated to whole numbers.
func LoadHourlySeriesData(
	seriesPath string) (*HourlySeries, error) {

	// use reader to read raw csv data
	rawSeriesData, err := readTable(seriesPath)
	if err != nil {
		return nil, err
	}

	// get series name from file stem
	file := filepath.Base(seriesPath)
	name := strings.TrimSuffix(file, filepath.Ext(file))

	// preallocate series
	series := &HourlySeries{
		Name:   name,
		Hours:  make([]int, 0, hrs),
		Values: make([]float64, 0, hrs),
	}

	// write values from raw csv data to series
	for i, record := range rawSeriesData {

		// skip blank lines
		if len(record) == 1 && strings.TrimSpace(record[0]) == "" {
			continue
		}
		if len(record) < 2 {
			return nil, fmt.Errorf("%s: line %d: expected 2 columns, got %d", seriesPath, i+1, len(record))
		}

		// get string values and convert to float
		hour, err := parseField(record[0])
		if err != nil {
			return nil, fmt.Errorf("%s: line %d: hour: %w", seriesPath, i+1, err)
		}
		val, err := parseField(record[1])
		if err != nil {
			return nil, fmt.Errorf("%s: line %d: value: %w", seriesPath, i+1, err)
		}

		// write value to series
		series.Hours = append(series.Hours, int(hour))
		series.Values = append(series.Values, val)
	}

	if len(series.Hours) == 0 {
		return nil, fmt.Errorf("%s: no rows", seriesPath)
	}

	return series, nil
}

// LoadAcuitySeriesData function
func LoadAcuitySeriesData(
	seriesPaths []string) (*HourlyAcuitySeries, error) {

	// allocate status bar
	bar := pb.StartNew(len(seriesPaths))
	bar.ShowTimeLeft = false

	// load one cumulative series per acuity level
	levels := make([]*HourlySeries, 0, len(seriesPaths))
	for _, seriesPath := range seriesPaths {
		series, err := LoadHourlySeriesData(seriesPath)
		if err != nil {
			return nil, err
		}
		levels = append(levels, series)

		// increment status bar
		bar.Increment()
	}

	// close status bar
	bar.FinishPrint("\tAcuity Series Data Loaded")

	return CombineArrivalSeries(levels)
}

// LoadCoefficientData function
func LoadCoefficientData(
	covPath string) (*HourlySeries, error) {

	cov, err := LoadHourlySeriesData(covPath)
	if err != nil {
		return nil, err
	}
	cov.Name = "cov"

	// print status
	fmt.Println("\tCoefficient of Variation Data Loaded")

	return cov, nil
}

// LoadMeanStdData function
func LoadMeanStdData(
	meanStdPath string) (*ArrivalMeanStd, error) {

	// use reader to read raw csv data
	rawMeanStdData, err := readTable(meanStdPath)
	if err != nil {
		return nil, err
	}
	if len(rawMeanStdData) < 2 {
		return nil, fmt.Errorf("%s: no rows", meanStdPath)
	}

	// locate columns by header
	header := rawMeanStdData[0]
	meanCol := columnIndex(header, "mean")
	stdCol := columnIndex(header, "std")
	if meanCol < 1 || stdCol < 1 {
		return nil, fmt.Errorf("%s: header must name mean and std columns, got %v", meanStdPath, header)
	}

	// parse hour index and values
	hours, values, err := parseIndexedRows(meanStdPath, rawMeanStdData[1:], []int{meanCol, stdCol})
	if err != nil {
		return nil, err
	}

	// write values to table
	ms := NewArrivalMeanStd(hours)
	for i, row := range values {
		ms.Values.SetRow(i, row)
	}

	// print status
	fmt.Println("\tArrival Distribution Data Loaded")

	return ms, nil
}

// LoadAcuityProportionData function
func LoadAcuityProportionData(
	proportionPath string) (*AcuityProportion, error) {

	// use reader to read raw csv data
	rawProportionData, err := readTable(proportionPath)
	if err != nil {
		return nil, err
	}
	if len(rawProportionData) < 2 {
		return nil, fmt.Errorf("%s: no rows", proportionPath)
	}

	// locate columns by header
	header := rawProportionData[0]
	cols := make([]int, lvls)
	for k := range cols {
		cols[k] = columnIndex(header, levelName("pa", k))
		if cols[k] < 1 {
			return nil, fmt.Errorf("%s: header is missing column %s", proportionPath, levelName("pa", k))
		}
	}

	// parse hour index and values
	hours, values, err := parseIndexedRows(proportionPath, rawProportionData[1:], cols)
	if err != nil {
		return nil, err
	}

	// write values to table
	ap := NewAcuityProportion(hours)
	for i, row := range values {
		ap.Proportions.SetRow(i, row)
	}

	// print status
	fmt.Println("\tAcuity Distribution Data Loaded")

	return ap, nil
}

// WriteMeanStdData function
func WriteMeanStdData(
	ms *ArrivalMeanStd,
	meanStdPath string) error {

	records := make([][]string, 0, len(ms.Hours)+1)
	records = append(records, []string{"", "mean", "std"})
	for i, hour := range ms.Hours {
		records = append(records, []string{
			strconv.Itoa(hour),
			formatValue(ms.Mean(i)),
			formatValue(ms.Std(i))})
	}

	return writeTable(meanStdPath, records)
}

// WriteAcuityProportionData function
func WriteAcuityProportionData(
	ap *AcuityProportion,
	proportionPath string) error {

	return writeProportionTable(ap, proportionPath, "pa")
}

// WriteCumulativeProportionData function
func WriteCumulativeProportionData(
	cp *AcuityProportion,
	cumulativePath string) error {

	return writeProportionTable(cp, cumulativePath, "cpa")
}

// WriteSimulatedDayData function
func WriteSimulatedDayData(
	days []*SimulatedDay,
	simulationPath string) error {

	// write header strings
	header := []string{"day", "hour", "total_arrivals"}
	for k := 0; k < lvls; k++ {
		header = append(header, levelName("arrivals_a", k))
	}
	records := [][]string{header}

	// allocate status bar
	bar := pb.StartNew(len(days))
	bar.ShowTimeLeft = false

	// loop through and convert results
	for d, day := range days {
		for i, hour := range day.Hours {
			record := make([]string, 0, lvls+3)
			record = append(record,
				strconv.Itoa(d),
				strconv.Itoa(hour),
				strconv.Itoa(day.Total[i]))
			for _, n := range day.Arrivals[i] {
				record = append(record, strconv.Itoa(n))
			}
			records = append(records, record)
		}

		// increment bar
		bar.Increment()
	}

	if err := writeTable(simulationPath, records); err != nil {
		return err
	}

	// print status
	bar.FinishPrint("\tSimulated Arrival Data Written")

	return nil
}

// WriteSummaryData function
func WriteSummaryData(
	summary []HourSummary,
	summaryPath string) error {

	// write header strings
	header := []string{"hour", "target_mean", "sim_mean", "target_std", "sim_std", "target_cov", "sim_cov"}
	for k := 0; k < lvls; k++ {
		header = append(header, levelName("mean_a", k))
	}
	records := [][]string{header}

	for _, hs := range summary {
		record := []string{
			strconv.Itoa(hs.Hour),
			formatValue(hs.TargetMean),
			formatValue(hs.SimMean),
			formatValue(hs.TargetStd),
			formatValue(hs.SimStd),
			formatValue(hs.TargetCov),
			formatValue(hs.SimCov)}
		for _, m := range hs.LevelMeans {
			record = append(record, formatValue(m))
		}
		records = append(records, record)
	}

	return writeTable(summaryPath, records)
}

func writeProportionTable(
	ap *AcuityProportion,
	proportionPath string,
	prefix string) error {

	// write header strings
	header := []string{""}
	for k := 0; k < lvls; k++ {
		header = append(header, levelName(prefix, k))
	}
	records := [][]string{header}

	// convert proportions to strings
	for i, hour := range ap.Hours {
		record := []string{strconv.Itoa(hour)}
		for _, p := range ap.Row(i) {
			record = append(record, formatValue(p))
		}
		records = append(records, record)
	}

	return writeTable(proportionPath, records)
}

// readTable reads every record of a csv file
func readTable(
	tablePath string) ([][]string, error) {

	// open table file
	tableFile, err := os.Open(tablePath)
	if err != nil {
		return nil, err
	}

	// close files on completion
	defer tableFile.Close()

	// generate new reader from open table file
	tableReader := csv.NewReader(tableFile)
	tableReader.FieldsPerRecord = -1
	tableReader.TrimLeadingSpace = true

	// use reader to read raw csv data
	records, err := tableReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tablePath, err)
	}

	return records, nil
}

// writeTable writes records to a new csv file, creating its directory
func writeTable(
	tablePath string,
	records [][]string) error {

	if err := os.MkdirAll(filepath.Dir(tablePath), 0o755); err != nil {
		return err
	}

	// open table file
	tableFile, err := os.Create(tablePath)
	if err != nil {
		return err
	}

	// create new writer
	tableWriter := csv.NewWriter(tableFile)
	if err := tableWriter.WriteAll(records); err != nil {
		tableFile.Close()
		return fmt.Errorf("%s: %w", tablePath, err)
	}

	return tableFile.Close()
}

// parseIndexedRows reads an integer hour index from column 0 and the
// requested value columns from each record
func parseIndexedRows(
	tablePath string,
	records [][]string,
	cols []int) ([]int, [][]float64, error) {

	hours := make([]int, 0, len(records))
	values := make([][]float64, 0, len(records))

	for i, record := range records {
		line := i + 2
		if len(record) == 1 && strings.TrimSpace(record[0]) == "" {
			continue
		}

		// get hour index
		hour, err := parseField(record[0])
		if err != nil {
			return nil, nil, fmt.Errorf("%s: line %d: hour: %w", tablePath, line, err)
		}

		// get string values and convert to float
		row := make([]float64, len(cols))
		for j, c := range cols {
			if c >= len(record) {
				return nil, nil, fmt.Errorf("%s: line %d: missing column %d", tablePath, line, c)
			}
			val, err := parseField(record[c])
			if err != nil {
				return nil, nil, fmt.Errorf("%s: line %d: column %d: %w", tablePath, line, c, err)
			}
			row[j] = val
		}

		hours = append(hours, int(hour))
		values = append(values, row)
	}

	if len(hours) == 0 {
		return nil, nil, fmt.Errorf("%s: no rows", tablePath)
	}

	return hours, values, nil
}

func parseField(
	field string) (float64, error) {

	return strconv.ParseFloat(strings.TrimSpace(field), 64)
}

func columnIndex(
	header []string,
	name string) int {

	for i, h := range header {
		if strings.TrimSpace(h) == name {
			return i
		}
	}

	return -1
}

// formatValue rounds half to even at prec decimal places; NaN is left blank
func formatValue(
	val float64) string {

	if math.IsNaN(val) {
		return ""
	}

	// avoid writing negative zero
	r := scalar.RoundEven(val, prec)
	if r == 0 {
		r = 0
	}

	return strconv.FormatFloat(r, 'f', -1, 64)
}
