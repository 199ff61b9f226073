package charts

import (
	"math"
	"time"

	"github.com/NimbleMarkets/ntcharts/canvas"
	tslc "github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"

	"github.com/alanw/fintrack/internal/report"
)

// CumulativeLine renders the cumulative spending series as a braille line
// with a marker on each month's data point and currency tick labels.
func CumulativeLine(st Style, cumulative []report.MonthTotal) string {
	if len(cumulative) == 0 {
		return st.Label.Render(noData)
	}

	points := make([]time.Time, len(cumulative))
	maxVal := 0.0
	minVal := 0.0
	for i, mt := range cumulative {
		points[i] = time.Date(mt.Month.Year, mt.Month.Month, 1, 0, 0, 0, 0, time.Local)
		if mt.Total > maxVal {
			maxVal = mt.Total
		}
		if mt.Total < minVal {
			minVal = mt.Total
		}
	}
	start, end := points[0], points[len(points)-1]
	if !end.After(start) {
		end = start.AddDate(0, 1, 0)
	}

	chart := tslc.New(st.Width, st.Height)
	chart.SetXStep(1)
	chart.SetYStep(1)
	chart.SetStyle(st.Line)
	chart.AxisStyle = st.Axis
	chart.LabelStyle = st.Label
	chart.SetTimeRange(start, end)
	chart.SetViewTimeRange(start, end)

	step, yMax := yScale(maxVal, chart.GraphHeight())
	yMin := math.Min(minVal, 0)
	chart.SetYRange(yMin, yMax)
	chart.SetViewYRange(yMin, yMax)
	chart.Model.XLabelFormatter = monthLabelFormatter(monthLabels(points, st.Width))
	chart.Model.YLabelFormatter = currencyTickFormatter(step, yMax)

	for i, mt := range cumulative {
		chart.Push(tslc.TimePoint{Time: points[i], Value: mt.Total})
	}
	chart.DrawBraille()
	drawMarkers(&chart, st, points, cumulative)

	return st.Title.Render("Cumulative Spending Over Time") + "\n" + chart.View()
}

// monthLabels spaces period labels so neighbours never collide; the first
// and last month are always labeled.
func monthLabels(points []time.Time, width int) map[string]string {
	labels := make(map[string]string, len(points))
	every := 1
	if len(points) > 1 {
		perMonth := width / len(points)
		if perMonth < 9 {
			every = int(math.Ceil(9.0 / math.Max(1, float64(perMonth))))
		}
	}
	for i, p := range points {
		if i%every != 0 && i != len(points)-1 {
			continue
		}
		labels[p.Format("2006-01-02")] = p.Format("2006-01")
	}
	return labels
}

func monthLabelFormatter(labels map[string]string) func(int, float64) string {
	return func(_ int, v float64) string {
		t := time.Unix(int64(v), 0).In(time.Local)
		return labels[t.Format("2006-01-02")]
	}
}

// currencyTickFormatter labels y ticks that land on the scale step with
// axis-format currency (no decimals).
func currencyTickFormatter(step, yMax float64) func(int, float64) string {
	tolerance := step * 0.2
	return func(_ int, v float64) string {
		if v < 0 {
			return ""
		}
		nearest := math.Round(v/step) * step
		if nearest > yMax+step*0.01 || math.Abs(v-nearest) > tolerance {
			return ""
		}
		return report.FormatAxis(nearest)
	}
}

// yScale picks a tick step with a 1/2/5 mantissa and a ceiling that
// covers maxVal.
func yScale(maxVal float64, graphHeight int) (float64, float64) {
	if maxVal <= 0 {
		maxVal = 1
	}
	ticks := graphHeight / 3
	if ticks < 3 {
		ticks = 3
	}
	step := niceCeil(maxVal / float64(ticks-1))
	if step < 1 {
		step = 1
	}
	yMax := math.Ceil(maxVal/step) * step
	if yMax < step {
		yMax = step
	}
	return step, yMax
}

func niceCeil(v float64) float64 {
	if v <= 0 {
		return 1
	}
	pow := math.Pow(10, math.Floor(math.Log10(v)))
	switch f := v / pow; {
	case f <= 1:
		return pow
	case f <= 2:
		return 2 * pow
	case f <= 5:
		return 5 * pow
	default:
		return 10 * pow
	}
}

// drawMarkers overlays a point marker on each data point after the
// braille pass.
func drawMarkers(chart *tslc.Model, st Style, points []time.Time, cumulative []report.MonthTotal) {
	for i, mt := range cumulative {
		p := dataPointCell(chart, points[i], mt.Total)
		if p.X <= chart.Origin().X || p.X >= chart.Width() {
			continue
		}
		if p.Y < 0 || p.Y >= chart.Canvas.Height() {
			continue
		}
		chart.Canvas.SetRuneWithStyle(p, '●', st.Marker)
	}
}

func dataPointCell(chart *tslc.Model, ts time.Time, v float64) canvas.Point {
	point := canvas.Float64Point{X: float64(ts.Unix()), Y: v}
	scaled := chart.ScaleFloat64Point(point)
	p := canvas.CanvasPointFromFloat64Point(chart.Origin(), scaled)
	if chart.YStep() > 0 {
		p.X++
	}
	if chart.XStep() > 0 {
		p.Y--
	}
	return p
}
