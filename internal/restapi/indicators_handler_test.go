package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndicatorsHandlerRequiresValidApiKey(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/rankboard/indicators.json?key=invalid")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, model.Code)
	assert.Equal(t, "permission denied", model.Text)
}

func TestIndicatorsHandlerEndToEnd(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/rankboard/indicators.json?key=TEST")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, http.StatusOK, model.Code)
	assert.Equal(t, "OK", model.Text)

	list := listFromResponse(t, model)
	require.Len(t, list, 4)

	// Groups arrive in fixed display order.
	wantGroups := []string{"People", "Economy", "Geography", "Science"}
	for i, want := range wantGroups {
		group, ok := list[i].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, want, group["group"])
	}

	people := list[0].(map[string]interface{})
	indicators, ok := people["indicators"].([]interface{})
	require.True(t, ok)
	require.Len(t, indicators, 1)
	assert.Equal(t, "Population", indicators[0])

	data := model.Data.(map[string]interface{})
	refs, ok := data["references"].(map[string]interface{})
	require.True(t, ok)
	metas, ok := refs["indicators"].([]interface{})
	require.True(t, ok)
	assert.Len(t, metas, 4)

	first := metas[0].(map[string]interface{})
	assert.Equal(t, "Population", first["indicator"])
	assert.Equal(t, "UN World Population Prospects", first["source"])
	assert.Equal(t, "2023", first["year"])
}
