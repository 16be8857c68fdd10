package dataset

import "rankboard.worldstats.org/internal/appconf"

// Names of the three CSV files every data source must provide.
const (
	DataFileName      = "data.csv"
	MetadataFileName  = "metadata.csv"
	CountriesFileName = "countries.csv"
)

// Config holds the settings for loading the reference dataset.
type Config struct {
	// DataSource is either a local directory or an HTTP(S) URL prefix
	// containing data.csv, metadata.csv and countries.csv.
	DataSource string
	// DBPath is the SQLite mirror location, ":memory:" in tests.
	DBPath  string
	Env     appconf.Environment
	Verbose bool
}
