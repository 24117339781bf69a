package arrivalTool

import (
	"fmt"
	"image/color"
	"os"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// ChartStyle holds everything a chart needs to know about its appearance
type ChartStyle struct {
	Colors      [lvls]color.Color // bar color per acuity level, a1-a6
	ErrorColor  color.Color       // error bar color
	Alpha       uint8             // bar opacity
	BarWidth    vg.Length         // bar width
	Width       vg.Length         // image width
	Height      vg.Length         // image height of single panel charts
	PanelHeight vg.Length         // height of each panel in a multi-day chart
}

// DefaultChartStyle returns the acuity palette used in the published figures
func DefaultChartStyle() ChartStyle {
	return ChartStyle{
		Colors: [lvls]color.Color{
			color.RGBA{R: 0, G: 107, B: 164, A: 255},
			color.RGBA{R: 161, G: 199, B: 237, A: 255},
			color.RGBA{R: 171, G: 171, B: 171, A: 255},
			color.RGBA{R: 255, G: 189, B: 120, A: 255},
			color.RGBA{R: 255, G: 128, B: 13, A: 255},
			color.RGBA{R: 199, G: 31, B: 0, A: 255},
		},
		ErrorColor:  color.Black,
		Alpha:       128,
		BarWidth:    vg.Points(14),
		Width:       11 * vg.Inch,
		Height:      5 * vg.Inch,
		PanelHeight: 2 * vg.Inch,
	}
}

// errorPoints pairs bar tops with symmetric error bars
type errorPoints struct {
	plotter.XYs
	plotter.YErrors
}

// PlotArrivalDistribution renders hourly mean arrivals with std error bars
func PlotArrivalDistribution(
	ms *ArrivalMeanStd,
	style ChartStyle,
	imagePath string) error {

	if len(ms.Hours) == 0 {
		return fmt.Errorf("plot arrival distribution: no hours")
	}

	// set plot labels
	p := plot.New()
	p.Title.Text = "Average Emergency Department Hourly Patient Arrivals"
	p.X.Label.Text = "Hour of the Day"
	p.Y.Label.Text = "Average # of Patient Arrivals"

	// allocate bar heights and error bars
	means := make(plotter.Values, len(ms.Hours))
	errs := errorPoints{
		XYs:     make(plotter.XYs, len(ms.Hours)),
		YErrors: make(plotter.YErrors, len(ms.Hours)),
	}
	for i := range ms.Hours {
		means[i] = ms.Mean(i)
		errs.XYs[i].X = float64(i)
		errs.XYs[i].Y = ms.Mean(i)
		errs.YErrors[i].Low = ms.Std(i)
		errs.YErrors[i].High = ms.Std(i)
	}

	bars, err := plotter.NewBarChart(means, style.BarWidth)
	if err != nil {
		return err
	}
	bars.Color = shade(style.Colors[0], style.Alpha)
	bars.LineStyle.Width = 0

	yerrs, err := plotter.NewYErrorBars(errs)
	if err != nil {
		return err
	}
	yerrs.LineStyle.Color = style.ErrorColor

	p.Add(bars, yerrs)
	p.NominalX(hourLabels(ms.Hours)...)
	p.Y.Min = 0

	return p.Save(style.Width, style.Height, imagePath)
}

// PlotAcuityDistribution renders hourly acuity proportions as stacked bars
func PlotAcuityDistribution(
	ap *AcuityProportion,
	style ChartStyle,
	imagePath string) error {

	if len(ap.Hours) == 0 {
		return fmt.Errorf("plot acuity distribution: no hours")
	}

	// set plot labels
	p := plot.New()
	p.Title.Text = "Hourly Acuity Level Distribution"
	p.X.Label.Text = "Hour of the Day"
	p.Y.Label.Text = "Acuity level proportion"

	// split proportions by acuity level
	var series [lvls]plotter.Values
	for k := range series {
		series[k] = make(plotter.Values, len(ap.Hours))
		for i := range ap.Hours {
			series[k][i] = ap.Proportions.At(i, k)
		}
	}

	if err := stackBars(p, series, style, true); err != nil {
		return err
	}
	p.NominalX(hourLabels(ap.Hours)...)
	p.Y.Min = 0
	p.Y.Max = 1.05

	return p.Save(style.Width, style.Height, imagePath)
}

// PlotSimulatedDay renders one simulated day as stacked bars per acuity level
func PlotSimulatedDay(
	day *SimulatedDay,
	style ChartStyle,
	imagePath string) error {

	if len(day.Hours) == 0 {
		return fmt.Errorf("plot simulated day: no hours")
	}

	p, err := simulatedDayPlot(day, style, true)
	if err != nil {
		return err
	}
	p.Title.Text = "Number and Acuity Level of Patients Arriving Each Hour in the Day"
	p.X.Label.Text = "Hour of the Day"
	p.Y.Label.Text = "Number of Arriving Patients"

	return p.Save(style.Width, style.Height, imagePath)
}

// PlotSimulatedDays renders one panel per simulated day on a shared y axis
func PlotSimulatedDays(
	days []*SimulatedDay,
	style ChartStyle,
	imagePath string) error {

	if len(days) == 0 || len(days[0].Hours) == 0 {
		return fmt.Errorf("plot simulated days: no days")
	}

	// shared axis ceiling across panels
	top := 1
	for _, day := range days {
		for _, n := range day.Total {
			if n > top {
				top = n
			}
		}
	}

	// build one plot per day
	plots := make([][]*plot.Plot, len(days))
	for i, day := range days {
		p, err := simulatedDayPlot(day, style, i == len(days)/2)
		if err != nil {
			return err
		}
		p.Y.Max = float64(top) * 1.1
		if i == 0 {
			p.Title.Text = fmt.Sprintf("Simulating %d days of patient arrivals", len(days))
		}
		if i == len(days)-1 {
			p.X.Label.Text = "Hour of the day"
		}
		if i == len(days)/2 {
			p.Y.Label.Text = "# Arrivals"
		}
		plots[i] = []*plot.Plot{p}
	}

	// draw panels onto a single canvas
	img := vgimg.New(style.Width, style.PanelHeight*vg.Length(len(days)))
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: len(days),
		Cols: 1,
		PadY: vg.Millimeter,
	}
	canvases := plot.Align(plots, tiles, dc)
	for i := range plots {
		plots[i][0].Draw(canvases[i][0])
	}

	// open image file
	imageFile, err := os.Create(imagePath)
	if err != nil {
		return err
	}

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(imageFile); err != nil {
		imageFile.Close()
		return err
	}

	return imageFile.Close()
}

func simulatedDayPlot(
	day *SimulatedDay,
	style ChartStyle,
	legend bool) (*plot.Plot, error) {

	// split arrivals by acuity level
	var series [lvls]plotter.Values
	for k := range series {
		series[k] = make(plotter.Values, len(day.Hours))
		for i := range day.Hours {
			series[k][i] = float64(day.Arrivals[i][k])
		}
	}

	p := plot.New()
	if err := stackBars(p, series, style, legend); err != nil {
		return nil, err
	}
	p.NominalX(hourLabels(day.Hours)...)
	p.Y.Min = 0

	return p, nil
}

// stackBars adds one bar chart per acuity level, each resting on the last
func stackBars(
	p *plot.Plot,
	series [lvls]plotter.Values,
	style ChartStyle,
	legend bool) error {

	var below *plotter.BarChart
	for k, values := range series {
		bars, err := plotter.NewBarChart(values, style.BarWidth)
		if err != nil {
			return err
		}
		bars.Color = shade(style.Colors[k], style.Alpha)
		bars.LineStyle.Width = 0
		if below != nil {
			bars.StackOn(below)
		}
		p.Add(bars)
		if legend {
			p.Legend.Add("Acuity "+strconv.Itoa(k+1), bars)
		}
		below = bars
	}
	p.Legend.Top = true

	return nil
}

// shade applies the style opacity to an opaque color
func shade(
	c color.Color,
	alpha uint8) color.Color {

	r, g, b, _ := c.RGBA()

	return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: alpha}
}

func hourLabels(
	hours []int) []string {

	labels := make([]string, len(hours))
	for i, h := range hours {
		labels[i] = strconv.Itoa(h)
	}

	return labels
}
