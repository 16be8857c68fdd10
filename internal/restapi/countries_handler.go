package restapi

import (
	"net/http"

	"rankboard.worldstats.org/internal/models"
)

// countriesHandler returns the dropdown catalog.
func (api *RestAPI) countriesHandler(w http.ResponseWriter, r *http.Request) {
	response := models.NewListResponse(api.DataManager.Countries(), models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}
