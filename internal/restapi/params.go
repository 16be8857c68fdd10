package restapi

import (
	"net/http"

	"rankboard.worldstats.org/internal/models"
	"rankboard.worldstats.org/internal/utils"
)

// parseDisplayModeParams extracts the mode and country query parameters. The
// returned map is nil when both are valid.
func parseDisplayModeParams(r *http.Request) (models.DisplayMode, map[string][]string) {
	params := r.URL.Query()
	fieldErrors := make(map[string][]string)

	country := params.Get("country")
	if err := utils.ValidateOptionalName(country); err != nil {
		fieldErrors["country"] = append(fieldErrors["country"], err.Error())
	}

	mode, ok := models.ParseDisplayMode(params.Get("mode"), country)
	if !ok {
		fieldErrors["mode"] = append(fieldErrors["mode"], `Invalid field value for field "mode".`)
	}

	if len(fieldErrors) > 0 {
		return models.DisplayMode{}, fieldErrors
	}
	return mode, nil
}
