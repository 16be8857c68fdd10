package restapi

import (
	"net/http"

	"rankboard.worldstats.org/internal/models"
	"rankboard.worldstats.org/internal/ranking"
	"rankboard.worldstats.org/internal/utils"
)

// rankingsHandler returns the rank selection for one indicator: the top ten
// by default, or the selected country's ranking neighborhood. An absent
// country yields an empty row list, not an error.
func (api *RestAPI) rankingsHandler(w http.ResponseWriter, r *http.Request) {
	indicator := utils.ExtractNameFromParams(r, "indicator", ".json")

	if err := utils.ValidateName(indicator); err != nil {
		fieldErrors := map[string][]string{
			"indicator": {err.Error()},
		}
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	mode, fieldErrors := parseDisplayModeParams(r)
	if fieldErrors != nil {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	table, ok := api.DataManager.Table(indicator)
	if !ok {
		api.sendNotFound(w, r)
		return
	}

	selection := ranking.Select(table, mode)

	entry := struct {
		Indicator    string                `json:"indicator"`
		Mode         string                `json:"mode"`
		Country      string                `json:"country,omitempty"`
		CountryCount int                   `json:"countryCount"`
		Rows         []models.IndicatorRow `json:"rows"`
	}{
		Indicator:    indicator,
		Mode:         mode.ModeParam(),
		Country:      mode.Country,
		CountryCount: len(table),
		Rows:         ranking.SortByRankAscending(selection),
	}

	references := models.NewEmptyReferences()
	if meta, ok := api.DataManager.Meta(indicator); ok {
		references.Indicators = append(references.Indicators, meta)
	}

	response := models.NewEntryResponse(entry, references)
	api.sendResponse(w, r, response)
}
