package helpers

import (
	"net/http"
	"strconv"
)

// PathID parses the named path value as a positive int64 id. On failure it writes a 400
// and returns false.
func PathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := r.PathValue(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		WriteJSONError(w, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return id, true
}

// QueryID parses an optional positive int64 query parameter. It returns nil when the
// parameter is absent; on a malformed value it writes a 400 and returns false.
func QueryID(w http.ResponseWriter, r *http.Request, name string) (*int64, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		WriteJSONError(w, http.StatusBadRequest, "invalid "+name)
		return nil, false
	}
	return &id, true
}
