package restapi

import (
	"net/http"

	"rankboard.worldstats.org/internal/models"
)

// indicatorsHandler lists every indicator in its dashboard position: groups
// in display order, indicators in metadata order. Full metadata rides along
// in the references.
func (api *RestAPI) indicatorsHandler(w http.ResponseWriter, r *http.Request) {
	type groupEntry struct {
		Group      models.Group `json:"group"`
		Indicators []string     `json:"indicators"`
	}

	var list []groupEntry
	references := models.NewEmptyReferences()

	for _, group := range api.DataManager.GroupedIndicators() {
		list = append(list, groupEntry{Group: group.Group, Indicators: group.Indicators})
		for _, indicator := range group.Indicators {
			if meta, ok := api.DataManager.Meta(indicator); ok {
				references.Indicators = append(references.Indicators, meta)
			}
		}
	}

	response := models.NewListResponse(list, references)
	api.sendResponse(w, r, response)
}
