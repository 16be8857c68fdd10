package rankdb

import (
	"context"
	"database/sql"

	"rankboard.worldstats.org/internal/models"
)

// QueryIndicators retrieves the distinct indicator names, alphabetically.
func (c *Client) QueryIndicators(ctx context.Context) ([]string, error) {
	rows, err := c.DB.QueryContext(
		ctx,
		`SELECT DISTINCT indicator FROM indicator_rows ORDER BY indicator`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	var indicators []string
	for rows.Next() {
		var indicator string
		if err := rows.Scan(&indicator); err != nil {
			return nil, err
		}
		indicators = append(indicators, indicator)
	}

	return indicators, rows.Err()
}

// QueryRowsForIndicator retrieves one indicator's table, ascending by rank.
func (c *Client) QueryRowsForIndicator(ctx context.Context, indicator string) ([]models.IndicatorRow, error) {
	rows, err := c.DB.QueryContext(
		ctx,
		`SELECT country, value, rank, country_with_rank
		 FROM indicator_rows WHERE indicator = ? ORDER BY rank`,
		indicator,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	var result []models.IndicatorRow
	for rows.Next() {
		var row models.IndicatorRow
		if err := rows.Scan(&row.Country, &row.Value, &row.Rank, &row.CountryWithRank); err != nil {
			return nil, err
		}
		result = append(result, row)
	}

	return result, rows.Err()
}

// QueryMetadata retrieves one indicator's metadata row.
func (c *Client) QueryMetadata(ctx context.Context, indicator string) (models.IndicatorMeta, bool, error) {
	var meta models.IndicatorMeta
	var group string
	err := c.DB.QueryRowContext(
		ctx,
		`SELECT indicator, grp, source, year, uom, min_value, max_value
		 FROM indicator_metadata WHERE indicator = ?`,
		indicator,
	).Scan(&meta.Indicator, &group, &meta.Source, &meta.Year, &meta.UoM, &meta.MinValue, &meta.MaxValue)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.IndicatorMeta{}, false, nil
		}
		return models.IndicatorMeta{}, false, err
	}
	meta.Group = models.Group(group)
	return meta, true, nil
}

// CountRows returns the total number of (country, indicator) rows.
func (c *Client) CountRows(ctx context.Context) (int, error) {
	var count int
	err := c.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM indicator_rows`).Scan(&count)
	return count, err
}

// CountCountries returns the number of distinct countries across all
// indicator tables.
func (c *Client) CountCountries(ctx context.Context) (int, error) {
	var count int
	err := c.DB.QueryRowContext(ctx, `SELECT COUNT(DISTINCT country) FROM indicator_rows`).Scan(&count)
	return count, err
}

// CountCountriesForIndicator returns the row count of one indicator's table,
// which equals its maximum rank when ranks are dense.
func (c *Client) CountCountriesForIndicator(ctx context.Context, indicator string) (int, error) {
	var count int
	err := c.DB.QueryRowContext(
		ctx,
		`SELECT COUNT(*) FROM indicator_rows WHERE indicator = ?`,
		indicator,
	).Scan(&count)
	return count, err
}

// QueryGroupCounts returns the number of indicators per metadata group.
func (c *Client) QueryGroupCounts(ctx context.Context) (map[string]int, error) {
	rows, err := c.DB.QueryContext(
		ctx,
		`SELECT grp, COUNT(*) FROM indicator_metadata GROUP BY grp`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	counts := make(map[string]int)
	for rows.Next() {
		var group string
		var count int
		if err := rows.Scan(&group, &count); err != nil {
			return nil, err
		}
		counts[group] = count
	}

	return counts, rows.Err()
}
