package api

import (
	"net/http"
	"strconv"

	"github.com/joestump/worklog/internal/store"
)

// parsePagination extracts offset and limit from query parameters.
// Unparsable or negative offsets fall back to 0; unparsable or non-positive
// limits fall back to store.DefaultLimit.
func parsePagination(r *http.Request) (offset, limit int) {
	limit = store.DefaultLimit

	if o := r.URL.Query().Get("offset"); o != "" {
		if parsed, err := strconv.Atoi(o); err == nil && parsed >= 0 {
			offset = parsed
		}
	}

	if l := r.URL.Query().Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	return offset, limit
}
