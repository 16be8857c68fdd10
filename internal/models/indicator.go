package models

import "fmt"

// Group is the thematic category used for visual grouping of indicators.
type Group string

const (
	GroupPeople    Group = "People"
	GroupEconomy   Group = "Economy"
	GroupGeography Group = "Geography"
	GroupScience   Group = "Science"
)

// GroupDisplayOrder is the fixed top-to-bottom order of group rows on the
// dashboard.
var GroupDisplayOrder = []Group{GroupPeople, GroupEconomy, GroupGeography, GroupScience}

// IndicatorRow is one country's entry in an indicator table. Rank is a dense
// 1-based ordinal, 1 = highest Value, unique within the table.
type IndicatorRow struct {
	Country         string  `json:"country"`
	Value           float64 `json:"value"`
	Rank            int     `json:"rank"`
	CountryWithRank string  `json:"countryWithRank"`
}

// IndicatorMeta holds the per-indicator attributes from the metadata table.
// MinValue and MaxValue are the fixed value-axis bounds for the indicator's
// chart.
type IndicatorMeta struct {
	Indicator string  `json:"indicator"`
	Group     Group   `json:"group"`
	Source    string  `json:"source"`
	Year      string  `json:"year"`
	UoM       string  `json:"uom"`
	MinValue  float64 `json:"minValue"`
	MaxValue  float64 `json:"maxValue"`
}

// NewIndicatorRow creates an IndicatorRow, deriving the display string when
// the source data does not carry one.
func NewIndicatorRow(country string, value float64, rank int, countryWithRank string) IndicatorRow {
	if countryWithRank == "" {
		countryWithRank = FormCountryWithRank(country, rank)
	}
	return IndicatorRow{
		Country:         country,
		Value:           value,
		Rank:            rank,
		CountryWithRank: countryWithRank,
	}
}

// FormCountryWithRank forms the side-list display string for a country, e.g.
// "12. Germany".
func FormCountryWithRank(country string, rank int) string {
	return fmt.Sprintf("%d. %s", rank, country)
}
