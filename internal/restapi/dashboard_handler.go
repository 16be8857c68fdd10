package restapi

import (
	"net/http"

	"rankboard.worldstats.org/internal/dashboard"
	"rankboard.worldstats.org/internal/models"
)

// dashboardHandler recomputes the full display state for the requested mode:
// every indicator's selection, grouped into dashboard rows. This is the
// endpoint the page hits after every interaction.
func (api *RestAPI) dashboardHandler(w http.ResponseWriter, r *http.Request) {
	mode, fieldErrors := parseDisplayModeParams(r)
	if fieldErrors != nil {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	snapshot := dashboard.Snapshot(api.DataManager, dashboard.State{Mode: mode})

	response := models.NewEntryResponse(snapshot, models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}
