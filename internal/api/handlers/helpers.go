package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

func allowMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	return false
}

// requireQuery returns the trimmed query params, or writes a 400 naming the first missing one.
func requireQuery(w http.ResponseWriter, r *http.Request, keys ...string) ([]string, bool) {
	q := r.URL.Query()
	vals := make([]string, 0, len(keys))
	for _, k := range keys {
		v := strings.TrimSpace(q.Get(k))
		if v == "" {
			writeError(w, r, http.StatusBadRequest, k+" is required")
			return nil, false
		}
		vals = append(vals, v)
	}
	return vals, true
}
