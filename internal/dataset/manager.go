// Package dataset loads the two denormalized reference tables and the
// country catalog at process start and serves them immutably for the process
// lifetime. No writes happen after InitDatasetManager returns.
package dataset

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"rankboard.worldstats.org/internal/models"
	"rankboard.worldstats.org/rankdb"
)

// Manager owns the loaded dataset and provides read-only access to it.
type Manager struct {
	dataSource    string
	isLocalSource bool
	config        Config

	tables    map[string][]models.IndicatorRow
	meta      map[string]models.IndicatorMeta
	metaOrder []string
	countries []string

	RankDB       *rankdb.Client
	shutdownOnce sync.Once
}

// GroupIndicators is one dashboard row: a group name plus its indicators in
// metadata file order.
type GroupIndicators struct {
	Group      models.Group
	Indicators []string
}

// InitDatasetManager loads the dataset from the configured source, validates
// the per-indicator rank invariants, and mirrors everything into SQLite.
func InitDatasetManager(config Config) (*Manager, error) {
	isLocalSource := !strings.HasPrefix(config.DataSource, "http://") && !strings.HasPrefix(config.DataSource, "https://")

	manager := &Manager{
		dataSource:    config.DataSource,
		isLocalSource: isLocalSource,
		config:        config,
	}

	if err := manager.loadStaticData(); err != nil {
		return nil, err
	}
	manager.validateTables()

	db, err := buildRankDB(config, manager)
	if err != nil {
		return nil, fmt.Errorf("error building rank database: %w", err)
	}
	manager.RankDB = db

	return manager, nil
}

func (manager *Manager) loadStaticData() error {
	dataBytes, err := rawCSVData(manager.dataSource, DataFileName, manager.isLocalSource)
	if err != nil {
		return err
	}
	tables, err := parseDataCSV(dataBytes)
	if err != nil {
		return err
	}

	metaBytes, err := rawCSVData(manager.dataSource, MetadataFileName, manager.isLocalSource)
	if err != nil {
		return err
	}
	meta, metaOrder, err := parseMetadataCSV(metaBytes)
	if err != nil {
		return err
	}

	countriesBytes, err := rawCSVData(manager.dataSource, CountriesFileName, manager.isLocalSource)
	if err != nil {
		return err
	}
	countries, err := parseCountriesCSV(countriesBytes)
	if err != nil {
		return err
	}

	// Tables are kept sorted ascending by rank; the selector depends on it.
	for indicator := range tables {
		rows := tables[indicator]
		sort.Slice(rows, func(i, j int) bool { return rows[i].Rank < rows[j].Rank })
	}

	manager.tables = tables
	manager.meta = meta
	manager.metaOrder = metaOrder
	manager.countries = countries
	return nil
}

// validateTables logs data-quality warnings for tables whose ranks are not a
// dense 1..N sequence. Malformed reference data is still served; producing
// dense ranks is the data source's responsibility.
func (manager *Manager) validateTables() {
	for indicator, rows := range manager.tables {
		for i, row := range rows {
			if row.Rank != i+1 {
				slog.Warn("indicator table has non-dense ranks",
					"indicator", indicator,
					"expected_rank", i+1,
					"actual_rank", row.Rank)
				break
			}
		}
		if _, ok := manager.meta[indicator]; !ok {
			slog.Warn("indicator has no metadata row", "indicator", indicator)
		}
	}
}

func buildRankDB(config Config, manager *Manager) (*rankdb.Client, error) {
	dbConfig := rankdb.NewConfig(config.DBPath, config.Env, config.Verbose)
	client, err := rankdb.NewClient(dbConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create rank database client: %w", err)
	}

	if err := client.ImportDataset(context.Background(), manager.tables, manager.meta); err != nil {
		return nil, err
	}

	return client, nil
}

// Shutdown releases the SQLite mirror. Safe to call more than once.
func (manager *Manager) Shutdown() {
	manager.shutdownOnce.Do(func() {
		if manager.RankDB != nil {
			_ = manager.RankDB.Close()
		}
	})
}

// IndicatorNames returns every indicator with data, in metadata file order;
// indicators without a metadata row follow alphabetically.
func (manager *Manager) IndicatorNames() []string {
	names := make([]string, 0, len(manager.tables))
	seen := make(map[string]bool, len(manager.tables))

	for _, indicator := range manager.metaOrder {
		if _, ok := manager.tables[indicator]; ok {
			names = append(names, indicator)
			seen[indicator] = true
		}
	}

	var unlisted []string
	for indicator := range manager.tables {
		if !seen[indicator] {
			unlisted = append(unlisted, indicator)
		}
	}
	sort.Strings(unlisted)

	return append(names, unlisted...)
}

// Table returns one indicator's full table, sorted ascending by rank.
func (manager *Manager) Table(indicator string) ([]models.IndicatorRow, bool) {
	rows, ok := manager.tables[indicator]
	return rows, ok
}

// Meta returns one indicator's metadata row.
func (manager *Manager) Meta(indicator string) (models.IndicatorMeta, bool) {
	meta, ok := manager.meta[indicator]
	return meta, ok
}

// HasIndicator reports whether the indicator has a data table.
func (manager *Manager) HasIndicator(indicator string) bool {
	_, ok := manager.tables[indicator]
	return ok
}

// Countries returns the dropdown catalog in source order.
func (manager *Manager) Countries() []string {
	return manager.countries
}

// GroupedIndicators returns the dashboard rows: groups in display order, each
// with its indicators in metadata file order. Groups without indicators are
// omitted.
func (manager *Manager) GroupedIndicators() []GroupIndicators {
	byGroup := make(map[models.Group][]string)
	for _, indicator := range manager.IndicatorNames() {
		meta, ok := manager.meta[indicator]
		if !ok {
			continue
		}
		byGroup[meta.Group] = append(byGroup[meta.Group], indicator)
	}

	var groups []GroupIndicators
	for _, group := range models.GroupDisplayOrder {
		if indicators, ok := byGroup[group]; ok {
			groups = append(groups, GroupIndicators{Group: group, Indicators: indicators})
		}
	}
	return groups
}

// Statistics summarizes the loaded dataset for startup logging and the stats
// endpoint.
type Statistics struct {
	IndicatorCount int            `json:"indicatorCount"`
	CountryCount   int            `json:"countryCount"`
	RowCount       int            `json:"rowCount"`
	GroupCounts    map[string]int `json:"groupCounts"`
	ImportRuntime  string         `json:"importRuntime"`
}

// Statistics queries the SQLite mirror for dataset-wide counts.
func (manager *Manager) Statistics(ctx context.Context) (Statistics, error) {
	rowCount, err := manager.RankDB.CountRows(ctx)
	if err != nil {
		return Statistics{}, err
	}
	countryCount, err := manager.RankDB.CountCountries(ctx)
	if err != nil {
		return Statistics{}, err
	}
	groupCounts, err := manager.RankDB.QueryGroupCounts(ctx)
	if err != nil {
		return Statistics{}, err
	}

	return Statistics{
		IndicatorCount: len(manager.tables),
		CountryCount:   countryCount,
		RowCount:       rowCount,
		GroupCounts:    groupCounts,
		ImportRuntime:  manager.RankDB.ImportRuntime().String(),
	}, nil
}

// LogStatistics logs the dataset summary the way the server does at startup.
func (manager *Manager) LogStatistics(logger *slog.Logger) {
	stats, err := manager.Statistics(context.Background())
	if err != nil {
		logger.Error("failed to compute dataset statistics", "error", err)
		return
	}
	logger.Info("dataset loaded",
		"indicators", stats.IndicatorCount,
		"countries", stats.CountryCount,
		"rows", stats.RowCount,
		"import_runtime", stats.ImportRuntime)
}
