package app

import (
	"log/slog"

	"rankboard.worldstats.org/internal/appconf"
	"rankboard.worldstats.org/internal/dataset"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware: the configuration, a logger, and the dataset manager that
// owns the immutable reference tables.
type Application struct {
	Config        appconf.Config
	DatasetConfig dataset.Config
	Logger        *slog.Logger
	DataManager   *dataset.Manager
}
