package web

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

// timeNow is a variable for testability.
var timeNow = time.Now

// emptyObject is what singleton GETs return before anything is stored.
var emptyObject = map[string]any{}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response_encode_failed", "error", err)
	}
}

// storeError surfaces a storage failure to the client with the raw error
// message, matching what the admin panel displays verbatim.
func storeError(w http.ResponseWriter, err error) {
	slog.Error("store_error", "error", err.Error())
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
}

func methodNotAllowed(w http.ResponseWriter) {
	writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
}

func decode(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
