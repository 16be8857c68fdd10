package charts

import (
	"bytes"
	"fmt"

	chart "github.com/wcharczuk/go-chart/v2"

	"rankboard.worldstats.org/internal/utils"
)

// renderStacked stacks the secondary measure on top of each country's main
// bar. Countries absent from the secondary series get a single-segment bar.
func renderStacked(main, secondary Series, selectedCountry string) ([]byte, error) {
	palette := PaletteFor(main.Meta.Group)
	maxValue := tableMax(main.Rows)

	bars := make([]chart.StackedBar, 0, len(main.Rows))
	for _, row := range main.Rows {
		color := palette.Base
		if row.Country == selectedCountry {
			color = palette.Selected
		}

		values := []chart.Value{{
			Value: row.Value,
			Label: utils.FormatChartValue(row.Value, maxValue),
			Style: chart.Style{
				FillColor:   color,
				StrokeColor: color,
				StrokeWidth: 0,
			},
		}}

		if sv, ok := secondaryValue(secondary, row.Country); ok {
			values = append(values, chart.Value{
				Value: sv,
				Label: utils.FormatChartValue(sv, tableMax(secondary.Rows)),
				Style: chart.Style{
					FillColor:   colorDimGray,
					StrokeColor: colorDimGray,
					StrokeWidth: 0,
				},
			})
		}

		bars = append(bars, chart.StackedBar{
			Name:   row.CountryWithRank,
			Width:  12,
			Values: values,
		})
	}

	ch := chart.StackedBarChart{
		Width:  chartWidth,
		Height: chartHeight,
		Background: chart.Style{
			FillColor: colorWhite,
			Padding:   chart.Box{Top: 8, Left: 4, Right: 4, Bottom: 4},
		},
		Canvas:     chart.Style{FillColor: colorWhite},
		XAxis:      chart.Style{FontSize: 8, FontColor: colorDimGray},
		YAxis:      chart.Hidden(),
		BarSpacing: 4,
		Bars:       bars,
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.SVG, &buf); err != nil {
		return nil, fmt.Errorf("error rendering stacked chart for %s: %w", main.Meta.Indicator, err)
	}
	return buf.Bytes(), nil
}
