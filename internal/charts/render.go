package charts

import (
	"fmt"

	"rankboard.worldstats.org/internal/models"
)

// Rendered chart dimensions, sized for the dashboard's indicator boxes.
const (
	chartWidth  = 190
	chartHeight = 160
)

// Series is one indicator's contribution to a chart: its metadata (axis
// bounds, group palette) and the rows to draw, ordered descending by rank so
// the largest value lands on the right.
type Series struct {
	Meta models.IndicatorMeta
	Rows []models.IndicatorRow
}

// Render draws an indicator chart as SVG. An empty main selection renders
// the empty placeholder box (the "no data" signal). The dual and stacked
// kinds fall back to the plain bar chart when no secondary series is
// available.
func Render(spec Spec, main Series, secondary *Series, selectedCountry string) ([]byte, error) {
	if len(main.Rows) == 0 {
		return renderPlaceholder(), nil
	}

	switch spec.Kind {
	case KindDual:
		if secondary == nil || len(secondary.Rows) == 0 {
			return renderBar(main, selectedCountry)
		}
		return renderDual(main, *secondary, selectedCountry)
	case KindStacked:
		if secondary == nil || len(secondary.Rows) == 0 {
			return renderBar(main, selectedCountry)
		}
		return renderStacked(main, *secondary, selectedCountry)
	default:
		return renderBar(main, selectedCountry)
	}
}

// renderPlaceholder draws the empty whitesmoke box shown when the selected
// country has no data for an indicator.
func renderPlaceholder() []byte {
	svg := fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d"><rect width="100%%" height="100%%" fill="whitesmoke"/></svg>`,
		chartWidth, chartHeight)
	return []byte(svg)
}

// tableMax returns the largest value in the selection, which decides the
// label decimal format.
func tableMax(rows []models.IndicatorRow) float64 {
	m := 0.0
	for _, row := range rows {
		if row.Value > m {
			m = row.Value
		}
	}
	return m
}

// secondaryValue looks up a country's value in the secondary series.
func secondaryValue(secondary Series, country string) (float64, bool) {
	for _, row := range secondary.Rows {
		if row.Country == country {
			return row.Value, true
		}
	}
	return 0, false
}
