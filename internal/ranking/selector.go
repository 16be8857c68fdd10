// Package ranking implements the neighbor-ranked subset selection that decides
// which countries appear in each indicator's chart and side list.
package ranking

import (
	"sort"

	"rankboard.worldstats.org/internal/models"
)

// displayLimit is the number of rows a chart shows.
const displayLimit = 10

// Select returns the ordered subset of an indicator's table to display for
// the given mode. rows must be the full table for one indicator, sorted
// ascending by dense Rank (1..N). Select never fails: a selected country with
// no data for this indicator yields an empty result.
//
// Ordering of the result:
//   - top-ten and bottom-ten branches: ascending by Value, so the largest
//     value ends up last,
//   - neighbor branch: ascending by Rank.
//
// Callers that need a different order for rendering re-sort the result.
func Select(rows []models.IndicatorRow, mode models.DisplayMode) []models.IndicatorRow {
	// The dropdown being visible but empty behaves like the default view.
	if mode.IsTopTen() {
		return topByValueAscending(rows)
	}

	selected := findByCountry(rows, mode.Country)
	if selected == nil {
		// No data for this indicator: an empty box, not an error.
		return []models.IndicatorRow{}
	}

	r := selected.Rank
	n := maxRank(rows)

	switch {
	case r <= displayLimit:
		return topByValueAscending(rows)
	case r >= n-displayLimit:
		// todo: for tables of 15 rows or fewer this threshold overlaps
		// the top-ten one, which wins above.
		return bottomByValueAscending(rows)
	default:
		return neighborsByRank(rows, r)
	}
}

// topByValueAscending returns the displayLimit largest-value rows ordered
// ascending by Value. Rank is dense with 1 = largest value, so the first rows
// of the rank-sorted table are exactly the largest values.
func topByValueAscending(rows []models.IndicatorRow) []models.IndicatorRow {
	n := min(displayLimit, len(rows))
	return reversed(rows[:n])
}

// bottomByValueAscending returns the displayLimit smallest-value rows ordered
// ascending by Value.
func bottomByValueAscending(rows []models.IndicatorRow) []models.IndicatorRow {
	n := min(displayLimit, len(rows))
	return reversed(rows[len(rows)-n:])
}

// neighborsByRank returns the rows with Rank in [r-5, r+4], ascending by
// Rank. The caller guarantees displayLimit < r < N-displayLimit, so the
// window is fully inside the table.
func neighborsByRank(rows []models.IndicatorRow, r int) []models.IndicatorRow {
	lo, hi := r-5, r+4
	window := make([]models.IndicatorRow, 0, displayLimit)
	for _, row := range rows {
		if row.Rank >= lo && row.Rank <= hi {
			window = append(window, row)
		}
	}
	return window
}

func findByCountry(rows []models.IndicatorRow, country string) *models.IndicatorRow {
	for i := range rows {
		if rows[i].Country == country {
			return &rows[i]
		}
	}
	return nil
}

func maxRank(rows []models.IndicatorRow) int {
	n := 0
	for _, row := range rows {
		if row.Rank > n {
			n = row.Rank
		}
	}
	return n
}

// reversed copies the slice in reverse order, leaving the table untouched.
func reversed(rows []models.IndicatorRow) []models.IndicatorRow {
	out := make([]models.IndicatorRow, len(rows))
	for i, row := range rows {
		out[len(rows)-1-i] = row
	}
	return out
}

// SortByRankAscending returns a copy of the rows ordered ascending by Rank,
// the order the side-list widget displays.
func SortByRankAscending(rows []models.IndicatorRow) []models.IndicatorRow {
	out := make([]models.IndicatorRow, len(rows))
	copy(out, rows)
	sort.Slice(out, func(i, j int) bool { return out[i].Rank < out[j].Rank })
	return out
}

// SortByRankDescending returns a copy of the rows ordered descending by Rank,
// the order the chart renderer draws bars in.
func SortByRankDescending(rows []models.IndicatorRow) []models.IndicatorRow {
	asc := SortByRankAscending(rows)
	return reversed(asc)
}
