package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"rankboard.worldstats.org/internal/logging"
	"rankboard.worldstats.org/internal/models"
)

// rawCSVData reads one named CSV file from the data source, which is either a
// local directory or an HTTP(S) URL prefix.
func rawCSVData(source, name string, isLocalSource bool) ([]byte, error) {
	var b []byte
	var err error

	if isLocalSource {
		b, err = os.ReadFile(filepath.Join(source, name))
		if err != nil {
			return nil, fmt.Errorf("error reading local data file: %w", err)
		}
	} else {
		url := strings.TrimSuffix(source, "/") + path.Join("/", name)
		resp, err := http.Get(url)
		if err != nil {
			return nil, fmt.Errorf("error downloading data file: %w", err)
		}
		defer logging.SafeCloseWithLogging(resp.Body, slog.Default(), "download_"+name)

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("error downloading data file %s: status %d", name, resp.StatusCode)
		}

		b, err = io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("error reading data file: %w", err)
		}
	}
	return b, nil
}

// columnIndex maps header names to positions, so column order in the CSVs
// does not matter.
func columnIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	return idx
}

func readAllRecords(b []byte) ([][]string, error) {
	reader := csv.NewReader(strings.NewReader(string(b)))
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	return reader.ReadAll()
}

// parseDataCSV parses the row-per-(country, indicator) table and groups the
// rows per indicator. The Country_with_rank column is optional; missing
// display strings are derived.
func parseDataCSV(b []byte) (map[string][]models.IndicatorRow, error) {
	records, err := readAllRecords(b)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", DataFileName, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s is empty", DataFileName)
	}

	idx := columnIndex(records[0])
	for _, required := range []string{"Indicator", "Country", "Value", "Rank"} {
		if _, ok := idx[required]; !ok {
			return nil, fmt.Errorf("%s is missing the %q column", DataFileName, required)
		}
	}
	withRankIdx, hasWithRank := idx["Country_with_rank"]

	tables := make(map[string][]models.IndicatorRow)
	for line, record := range records[1:] {
		indicator := record[idx["Indicator"]]
		country := record[idx["Country"]]

		value, err := strconv.ParseFloat(record[idx["Value"]], 64)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: invalid value: %w", DataFileName, line+2, err)
		}

		rank, err := strconv.Atoi(record[idx["Rank"]])
		if err != nil {
			return nil, fmt.Errorf("%s line %d: invalid rank: %w", DataFileName, line+2, err)
		}

		withRank := ""
		if hasWithRank {
			withRank = record[withRankIdx]
		}

		tables[indicator] = append(tables[indicator], models.NewIndicatorRow(country, value, rank, withRank))
	}

	return tables, nil
}

// parseMetadataCSV parses the row-per-indicator metadata table, preserving
// file order so groups keep their authored indicator ordering.
func parseMetadataCSV(b []byte) (map[string]models.IndicatorMeta, []string, error) {
	records, err := readAllRecords(b)
	if err != nil {
		return nil, nil, fmt.Errorf("error parsing %s: %w", MetadataFileName, err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("%s is empty", MetadataFileName)
	}

	idx := columnIndex(records[0])
	for _, required := range []string{"Indicator", "Group", "Source", "Year", "UoM", "Min_value", "Max_value"} {
		if _, ok := idx[required]; !ok {
			return nil, nil, fmt.Errorf("%s is missing the %q column", MetadataFileName, required)
		}
	}

	meta := make(map[string]models.IndicatorMeta)
	var order []string
	for line, record := range records[1:] {
		minValue, err := strconv.ParseFloat(record[idx["Min_value"]], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("%s line %d: invalid min value: %w", MetadataFileName, line+2, err)
		}
		maxValue, err := strconv.ParseFloat(record[idx["Max_value"]], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("%s line %d: invalid max value: %w", MetadataFileName, line+2, err)
		}

		indicator := record[idx["Indicator"]]
		meta[indicator] = models.IndicatorMeta{
			Indicator: indicator,
			Group:     models.Group(record[idx["Group"]]),
			Source:    record[idx["Source"]],
			Year:      record[idx["Year"]],
			UoM:       record[idx["UoM"]],
			MinValue:  minValue,
			MaxValue:  maxValue,
		}
		order = append(order, indicator)
	}

	return meta, order, nil
}

// parseCountriesCSV parses the dropdown catalog, a single Country column.
func parseCountriesCSV(b []byte) ([]string, error) {
	records, err := readAllRecords(b)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", CountriesFileName, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s is empty", CountriesFileName)
	}

	idx := columnIndex(records[0])
	col, ok := idx["Country"]
	if !ok {
		return nil, fmt.Errorf("%s is missing the %q column", CountriesFileName, "Country")
	}

	countries := make([]string, 0, len(records)-1)
	for _, record := range records[1:] {
		countries = append(countries, record[col])
	}

	return countries, nil
}
