// Package webui serves the dashboard page and a plain-text debug view over
// the loaded dataset. The page itself is static; all display state comes
// from the JSON API.
package webui

import (
	"embed"
	"html/template"
	"net/http"

	"rankboard.worldstats.org/internal/app"
)

//go:embed dashboard.html debug_index.html
var templateFS embed.FS

type WebUI struct {
	*app.Application
}

func NewWebUI(app *app.Application) *WebUI {
	return &WebUI{Application: app}
}

func (webUI *WebUI) SetWebUIRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", webUI.dashboardPageHandler)
	mux.HandleFunc("GET /debug/", webUI.debugIndexHandler)
}

type dashboardPageData struct {
	Title  string
	ApiKey string
}

// dashboardPageHandler serves the dashboard shell. The embedded script loads
// the display state from the JSON API using the first configured API key.
func (webUI *WebUI) dashboardPageHandler(w http.ResponseWriter, r *http.Request) {
	tmpl, err := template.ParseFS(templateFS, "dashboard.html")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	apiKey := ""
	if len(webUI.Config.ApiKeys) > 0 {
		apiKey = webUI.Config.ApiKeys[0]
	}

	w.Header().Set("Content-Type", "text/html")
	data := dashboardPageData{
		Title:  "World Statistics Rankboard",
		ApiKey: apiKey,
	}
	if err := tmpl.Execute(w, data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
