package web

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/JonMunkholm/pharmacatalog/internal/core"
	"github.com/JonMunkholm/pharmacatalog/internal/logging"
)

// maxAPIPageSize caps the pageSize query parameter.
const maxAPIPageSize = 100

// parseIntParam parses a positive integer query parameter with a default value.
func parseIntParam(r *http.Request, name string, defaultVal int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil || i < 1 {
		return defaultVal
	}
	return i
}

// criteriaFrom reads the filter parameters named with prefix.
func criteriaFrom(q url.Values, prefix string) core.Criteria {
	return core.Criteria{
		Search:   q.Get(prefix + "q"),
		Category: q.Get(prefix + "category"),
		Company:  q.Get(prefix + "company"),
	}
}

// browseParams resolves the criteria and page for a catalog request.
// prev_* parameters carry the criteria the client's current page was
// computed with; when the filters differ from them the page resets to 1.
func browseParams(r *http.Request) (core.Criteria, int) {
	q := r.URL.Query()
	c := criteriaFrom(q, "")
	page := parseIntParam(r, "page", 1)
	if c.Changed(criteriaFrom(q, "prev_")) {
		page = 1
	}
	return c, page
}

// writeJSON encodes v as JSON with the given status.
// Logs encoding errors since headers are already sent.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).Error("json encode error", "error", err)
	}
}
