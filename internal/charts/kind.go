// Package charts renders the per-indicator bar charts as SVG, styled after
// the dashboard's group palette.
package charts

// Kind selects the chart variant used for an indicator.
type Kind int

const (
	// KindBar is the default single-measure bar chart.
	KindBar Kind = iota
	// KindDual pairs each country's main bar with a secondary measure.
	KindDual
	// KindStacked stacks the secondary measure on top of the main one.
	KindStacked
)

// Spec describes how one indicator's chart is drawn. Secondary names the
// indicator supplying the second measure for the dual and stacked kinds.
type Spec struct {
	Kind      Kind
	Secondary string
}

// registry holds the per-indicator chart customizations. Indicators not
// listed here get the default bar chart.
var registry = map[string]Spec{
	"Patents": {Kind: KindStacked, Secondary: "Budget (% of GDP)"},
	"Budget":  {Kind: KindDual, Secondary: "Budget (% of GDP)"},
}

// SpecFor returns the chart spec for an indicator, defaulting to a plain bar
// chart.
func SpecFor(indicator string) Spec {
	if spec, ok := registry[indicator]; ok {
		return spec
	}
	return Spec{Kind: KindBar}
}
