package charts

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"

	"github.com/alanw/fintrack/internal/report"
)

const noData = "No data to chart."

// MonthlyBars renders monthly spending totals as a bar chart with a
// currency value line per bar.
func MonthlyBars(st Style, monthly []report.MonthTotal) string {
	labels := make([]string, len(monthly))
	values := make([]float64, len(monthly))
	for i, mt := range monthly {
		labels[i] = mt.Month.String()
		values[i] = mt.Total
	}
	return renderBars(st, "Monthly Spending", labels, values)
}

// QuarterlyBars renders quarterly spending totals as a bar chart. Period
// labels stay horizontal under their bars.
func QuarterlyBars(st Style, quarterly []report.QuarterTotal) string {
	labels := make([]string, len(quarterly))
	values := make([]float64, len(quarterly))
	for i, qt := range quarterly {
		labels[i] = qt.Quarter.String()
		values[i] = qt.Total
	}
	return renderBars(st, "Quarterly Spending", labels, values)
}

func renderBars(st Style, title string, labels []string, values []float64) string {
	if len(values) == 0 {
		return st.Label.Render(noData)
	}

	bc := barchart.New(st.Width, st.Height)
	bc.AxisStyle = st.Axis
	bc.LabelStyle = st.Label
	for i := range values {
		bc.Push(barchart.BarData{
			Label:  labels[i],
			Values: []barchart.BarValue{{Name: labels[i], Value: values[i], Style: st.Bar}},
		})
	}
	bc.Draw()

	lines := []string{st.Title.Render(title), bc.View(), valueLegend(st, labels, values)}
	return strings.Join(lines, "\n")
}

// valueLegend lists each bar's exact total, axis-style currency with the
// scale ceiling first. Terminal bars have no room for on-bar labels.
func valueLegend(st Style, labels []string, values []float64) string {
	maxVal := values[0]
	for _, v := range values[1:] {
		if v > maxVal {
			maxVal = v
		}
	}
	lines := []string{st.Label.Render(fmt.Sprintf("scale: 0 to %s", report.FormatAxis(maxVal)))}
	for i := range labels {
		lines = append(lines, fmt.Sprintf("  %s %s",
			st.Label.Render(labels[i]),
			st.Bar.Render(report.FormatMoney(values[i]))))
	}
	return strings.Join(lines, "\n")
}
