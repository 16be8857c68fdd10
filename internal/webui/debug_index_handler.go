package webui

import (
	"context"
	"html/template"
	"net/http"

	"github.com/davecgh/go-spew/spew"
)

type debugData struct {
	Title string
	Pre   string
}

func writeDebugData(w http.ResponseWriter, title string, data interface{}) {
	content := spew.Sdump(data)
	w.Header().Set("Content-Type", "text/html")
	tmpl, err := template.ParseFS(templateFS, "debug_index.html")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dataStruct := debugData{
		Title: title,
		Pre:   content,
	}

	err = tmpl.Execute(w, dataStruct)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	dataType := r.URL.Query().Get("dataType")

	var data interface{}
	var title string

	manager := webUI.DataManager

	switch dataType {
	case "indicators":
		data = manager.IndicatorNames()
		title = "Dataset - Indicators"
	case "countries":
		data = manager.Countries()
		title = "Dataset - Countries"
	case "groups":
		data = manager.GroupedIndicators()
		title = "Dataset - Indicator Groups"
	case "stats":
		stats, err := manager.Statistics(context.Background())
		if err != nil {
			data = map[string]string{"error": err.Error()}
		} else {
			data = stats
		}
		title = "Dataset - Statistics"
	case "table":
		indicator := r.URL.Query().Get("indicator")
		rows, ok := manager.Table(indicator)
		if !ok {
			data = map[string]string{"error": "unknown indicator: " + indicator}
		} else {
			data = rows
		}
		title = "Dataset - Indicator Table"
	default:
		data = map[string]string{
			"error": "Please use one of the following: indicators, countries, groups, stats, table.",
		}
		title = "Choose a data type"
	}

	writeDebugData(w, title, data)
}
