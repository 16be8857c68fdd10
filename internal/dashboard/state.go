// Package dashboard turns user interactions into a new display state. Every
// event triggers a full recomputation of the rank selection for every
// displayed indicator; nothing is cached between interactions.
package dashboard

import (
	"fmt"
	"net/url"

	"rankboard.worldstats.org/internal/charts"
	"rankboard.worldstats.org/internal/dataset"
	"rankboard.worldstats.org/internal/models"
	"rankboard.worldstats.org/internal/ranking"
)

// EventKind enumerates the user interactions the dashboard reacts to.
type EventKind int

const (
	// ModeChanged fires when the radio toggle switches between the
	// top-ten and select-a-country views.
	ModeChanged EventKind = iota
	// CountrySelected fires when the dropdown value changes, including
	// when it is cleared.
	CountrySelected
)

// Event is one user interaction.
type Event struct {
	Kind EventKind
	// Mode carries the new mode wire value for ModeChanged events.
	Mode string
	// Country carries the dropdown value for CountrySelected events,
	// empty when cleared.
	Country string
}

// State is the dashboard's complete interaction state.
type State struct {
	Mode models.DisplayMode
}

// DefaultState is the view shown before any interaction.
func DefaultState() State {
	return State{Mode: models.TopTenMode()}
}

// Apply returns the state after an event. The existing state is not
// modified; unknown events leave the state unchanged.
func Apply(state State, event Event) State {
	switch event.Kind {
	case ModeChanged:
		mode, ok := models.ParseDisplayMode(event.Mode, state.Mode.Country)
		if !ok {
			return state
		}
		return State{Mode: mode}
	case CountrySelected:
		if state.Mode.Kind != models.ShowAroundCountry {
			return state
		}
		return State{Mode: models.AroundCountryMode(event.Country)}
	default:
		return state
	}
}

// Snapshot recomputes the display state of every indicator for the current
// mode: the reactive callback, minus the hidden event loop.
func Snapshot(manager *dataset.Manager, state State) models.DashboardSnapshot {
	snapshot := models.DashboardSnapshot{
		Mode:    state.Mode.ModeParam(),
		Country: state.Mode.Country,
	}

	for _, group := range manager.GroupedIndicators() {
		panel := models.GroupPanel{Name: group.Group}
		for _, indicator := range group.Indicators {
			panel.Indicators = append(panel.Indicators, indicatorPanel(manager, indicator, state.Mode))
		}
		snapshot.Groups = append(snapshot.Groups, panel)
	}

	return snapshot
}

func indicatorPanel(manager *dataset.Manager, indicator string, mode models.DisplayMode) models.IndicatorPanel {
	table, _ := manager.Table(indicator)
	meta, _ := manager.Meta(indicator)

	selection := ranking.Select(table, mode)
	// The side list reads top to bottom in rank order.
	rows := ranking.SortByRankAscending(selection)

	highlight := ""
	if !mode.IsTopTen() {
		for _, row := range rows {
			if row.Country == mode.Country {
				highlight = mode.Country
				break
			}
		}
	}

	return models.IndicatorPanel{
		Indicator:    indicator,
		UoM:          meta.UoM,
		Source:       meta.Source,
		Year:         meta.Year,
		CountryCount: len(table),
		Rows:         rows,
		ChartPath:    chartPath(indicator, mode),
		Highlight:    highlight,
	}
}

// chartPath builds the SVG endpoint path for an indicator under the current
// mode, so the page can swap chart images without rebuilding URLs itself.
func chartPath(indicator string, mode models.DisplayMode) string {
	path := fmt.Sprintf("/api/rankboard/chart/%s.svg?mode=%s", url.PathEscape(indicator), mode.ModeParam())
	if mode.Country != "" {
		path += "&country=" + url.QueryEscape(mode.Country)
	}
	return path
}

// ChartSeries assembles the chart inputs for one indicator under a mode: the
// selection ordered for drawing, plus the secondary series when the
// indicator's chart spec needs one.
func ChartSeries(manager *dataset.Manager, indicator string, mode models.DisplayMode) (charts.Spec, charts.Series, *charts.Series) {
	table, _ := manager.Table(indicator)
	meta, _ := manager.Meta(indicator)

	selection := ranking.Select(table, mode)
	main := charts.Series{
		Meta: meta,
		// The chart draws bottom-up: lowest rank first.
		Rows: ranking.SortByRankDescending(selection),
	}

	spec := charts.SpecFor(indicator)
	if spec.Secondary == "" {
		return spec, main, nil
	}

	secondaryTable, ok := manager.Table(spec.Secondary)
	if !ok {
		return spec, main, nil
	}
	secondaryMeta, _ := manager.Meta(spec.Secondary)
	secondary := &charts.Series{Meta: secondaryMeta, Rows: secondaryTable}
	return spec, main, secondary
}
