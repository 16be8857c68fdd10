package utils

import (
	"net/http"
	"strings"
)

// ExtractNameFromParams retrieves a path parameter value and removes a file
// extension like ".json" or ".svg". Indicator names contain spaces, commas
// and parentheses, so they travel URL-escaped; the mux unescapes them.
func ExtractNameFromParams(r *http.Request, paramName, extension string) string {
	raw := r.PathValue(paramName)
	return strings.TrimSuffix(raw, extension)
}
