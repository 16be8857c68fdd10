package restapi

import (
	"net/http"

	"rankboard.worldstats.org/internal/models"
)

// statsHandler summarizes the loaded dataset via the SQLite mirror.
func (api *RestAPI) statsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := api.DataManager.Statistics(r.Context())
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	response := models.NewEntryResponse(stats, models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}
