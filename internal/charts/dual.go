package charts

import (
	"bytes"
	"fmt"

	chart "github.com/wcharczuk/go-chart/v2"

	"rankboard.worldstats.org/internal/utils"
)

// renderDual pairs each country's main bar with its secondary measure. The
// secondary series has its own scale, so its values are normalized onto the
// main axis by the ratio of the two metadata axis bounds, the same effect as
// overlaying a second value axis.
func renderDual(main, secondary Series, selectedCountry string) ([]byte, error) {
	palette := PaletteFor(main.Meta.Group)
	maxValue := tableMax(main.Rows)

	scale := 1.0
	if secondary.Meta.MaxValue > 0 {
		scale = main.Meta.MaxValue / secondary.Meta.MaxValue
	}

	bars := make([]chart.Value, 0, 2*len(main.Rows))
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

		sv, ok := secondaryValue(secondary, row.Country)
		if !ok {
			continue
		}
		bars = append(bars, chart.Value{
			Value: sv * scale,
			Label: utils.FormatChartValue(sv, tableMax(secondary.Rows)),
			Style: chart.Style{
				FillColor:   colorDimGray,
				StrokeColor: colorDimGray,
				StrokeWidth: 0,
			},
		})
	}

	ch := chart.BarChart{
		Width:      chartWidth,
		Height:     chartHeight,
		BarWidth:   6,
		BarSpacing: 3,
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
		return nil, fmt.Errorf("error rendering dual chart for %s: %w", main.Meta.Indicator, err)
	}
	return buf.Bytes(), nil
}
