package restapi

import (
	"net/http"

	"rankboard.worldstats.org/internal/charts"
	"rankboard.worldstats.org/internal/dashboard"
	"rankboard.worldstats.org/internal/utils"
)

// chartHandler renders one indicator's chart as SVG for the requested mode.
func (api *RestAPI) chartHandler(w http.ResponseWriter, r *http.Request) {
	indicator := utils.ExtractNameFromParams(r, "indicator", ".svg")

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

	if !api.DataManager.HasIndicator(indicator) {
		api.sendNotFound(w, r)
		return
	}

	spec, main, secondary := dashboard.ChartSeries(api.DataManager, indicator, mode)

	svg, err := charts.Render(spec, main, secondary, mode.Country)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	if _, err := w.Write(svg); err != nil {
		api.Logger.Error("failed to write chart response", "indicator", indicator, "error", err)
	}
}
