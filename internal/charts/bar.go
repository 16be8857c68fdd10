package charts

import (
	"bytes"
	"fmt"

	chart "github.com/wcharczuk/go-chart/v2"

	"rankboard.worldstats.org/internal/utils"
)

// renderBar draws the default single-measure bar chart. Bars carry their
// formatted value as the axis label; country names live in the side list
// next to the chart, not on the chart itself.
func renderBar(main Series, selectedCountry string) ([]byte, error) {
	palette := PaletteFor(main.Meta.Group)
	maxValue := tableMax(main.Rows)

	bars := make([]chart.Value, 0, len(main.Rows))
	for _, row := range main.Rows {
		color := palette.Base
		if row.Country == selectedCountry {
			color = palette.Selected
		}
		bars = append(bars, chart.Value{
			Value: row.Value,
			Label: utils.FormatChartValue(row.Value, maxValue),
			Style: chart.Style{
				FillColor:   color,
				StrokeColor: color,
				StrokeWidth: 0,
			},
		})
	}

	ch := chart.BarChart{
		Width:      chartWidth,
		Height:     chartHeight,
		BarWidth:   10,
		BarSpacing: 4,
		Background: chart.Style{
			FillColor: colorWhite,
			Padding:   chart.Box{Top: 8, Left: 4, Right: 4, Bottom: 4},
		},
		Canvas: chart.Style{FillColor: colorWhite},
		XAxis: chart.Style{
			FontSize:            8,
			FontColor:           colorDimGray,
			TextRotationDegrees: 90,
		},
		YAxis: chart.YAxis{
			Style: chart.Hidden(),
			Range: &chart.ContinuousRange{Min: main.Meta.MinValue, Max: main.Meta.MaxValue},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.SVG, &buf); err != nil {
		return nil, fmt.Errorf("error rendering bar chart for %s: %w", main.Meta.Indicator, err)
	}
	return buf.Bytes(), nil
}
