package models

// IndicatorPanel is the display state of a single indicator box: the side
// list rows (rank-ascending), the chart image path, and the metadata captions
// around the chart.
type IndicatorPanel struct {
	Indicator    string         `json:"indicator"`
	UoM          string         `json:"uom"`
	Source       string         `json:"source"`
	Year         string         `json:"year"`
	CountryCount int            `json:"countryCount"`
	Rows         []IndicatorRow `json:"rows"`
	ChartPath    string         `json:"chartPath"`
	// Highlight is the country to render in bold in the side list, empty
	// when no country is selected or it is absent from this indicator.
	Highlight string `json:"highlight,omitempty"`
}

// GroupPanel is one dashboard row: a thematic group header plus its
// indicator boxes in display order.
type GroupPanel struct {
	Name       Group            `json:"name"`
	Indicators []IndicatorPanel `json:"indicators"`
}

// DashboardSnapshot is the full display state returned after every user
// interaction: every displayed indicator recomputed for the current mode.
type DashboardSnapshot struct {
	Mode    string       `json:"mode"`
	Country string       `json:"country,omitempty"`
	Groups  []GroupPanel `json:"groups"`
}
