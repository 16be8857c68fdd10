package restapi

import (
	"net/http"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request)

func validateAPIKey(api *RestAPI, finalHandler handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		finalHandler(w, r)
	})
}

func (api *RestAPI) SetRoutes(mux *http.ServeMux) {
	mux.Handle("GET /api/rankboard/indicators.json", validateAPIKey(api, api.indicatorsHandler))
	mux.Handle("GET /api/rankboard/countries.json", validateAPIKey(api, api.countriesHandler))
	mux.Handle("GET /api/rankboard/rankings/{indicator}", validateAPIKey(api, api.rankingsHandler))
	mux.Handle("GET /api/rankboard/dashboard.json", validateAPIKey(api, api.dashboardHandler))
	mux.Handle("GET /api/rankboard/chart/{indicator}", validateAPIKey(api, api.chartHandler))
	mux.Handle("GET /api/rankboard/stats.json", validateAPIKey(api, api.statsHandler))
}
