// Package rankdb stores the startup-loaded reference dataset in SQLite so the
// statistics and debug surfaces can query it with SQL. The database mirrors
// the immutable in-memory tables; nothing writes to it after import.
package rankdb

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"rankboard.worldstats.org/internal/logging"
	"rankboard.worldstats.org/internal/models"
)

// Client is the main entry point for the library
type Client struct {
	config        Config
	DB            *sql.DB
	importRuntime time.Duration
}

// NewClient creates a new Client with the provided configuration
func NewClient(config Config) (*Client, error) {
	db, err := createDB(config)
	if err != nil {
		return nil, fmt.Errorf("unable to create database: %w", err)
	}

	client := &Client{
		config: config,
		DB:     db,
	}
	return client, nil
}

func (c *Client) Close() error {
	return c.DB.Close()
}

// ImportRuntime reports how long the last ImportDataset call took.
func (c *Client) ImportRuntime() time.Duration {
	return c.importRuntime
}

// ImportDataset stores the indicator tables and their metadata in a single
// transaction, replacing any previous contents.
func (c *Client) ImportDataset(ctx context.Context, tables map[string][]models.IndicatorRow, meta map[string]models.IndicatorMeta) error {
	startTime := time.Now()
	defer func() {
		c.importRuntime = time.Since(startTime)
		if c.config.verbose {
			slog.Info("dataset import finished", "runtime", c.importRuntime.String())
		}
	}()

	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting import transaction: %w", err)
	}
	defer logging.SafeRollbackWithLogging(tx, slog.Default(), "import_dataset")

	for indicator, rows := range tables {
		for _, row := range rows {
			if err := insertIndicatorRow(tx, indicator, row); err != nil {
				return err
			}
		}
	}

	for _, m := range meta {
		if err := insertMetadata(tx, m); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing import transaction: %w", err)
	}

	return nil
}

func insertIndicatorRow(tx *sql.Tx, indicator string, row models.IndicatorRow) error {
	_, err := tx.Exec(`
		INSERT OR REPLACE INTO indicator_rows (
			indicator, country, value, rank, country_with_rank
		) VALUES (?, ?, ?, ?, ?);
	`,
		indicator, row.Country, row.Value, row.Rank, row.CountryWithRank,
	)
	if err != nil {
		return fmt.Errorf("error inserting indicator row: %w", err)
	}
	return nil
}

func insertMetadata(tx *sql.Tx, meta models.IndicatorMeta) error {
	_, err := tx.Exec(`
		INSERT OR REPLACE INTO indicator_metadata (
			indicator, grp, source, year, uom, min_value, max_value
		) VALUES (?, ?, ?, ?, ?, ?, ?);
	`,
		meta.Indicator, string(meta.Group), meta.Source, meta.Year, meta.UoM, meta.MinValue, meta.MaxValue,
	)
	if err != nil {
		return fmt.Errorf("error inserting indicator metadata: %w", err)
	}
	return nil
}
