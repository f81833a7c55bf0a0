package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

// maxNameLen bounds account and wallet names in characters, not bytes,
// matching the VARCHAR(50) columns.
const maxNameLen = 50

const (
	defaultSkip  = 0
	defaultLimit = 100
)

// ErrorResponse is the error payload returned by every endpoint
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: account name already exists
	Error string `json:"error"`

	// Offending field, set for validation failures
	// example: name
	Field string `json:"field,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg, field string) {
	writeJSON(w, status, ErrorResponse{Error: msg, Field: field})
}

// parsePagination reads the skip and limit query parameters, applying the
// defaults 0 and 100 when absent.
func parsePagination(r *http.Request) (skip, limit int, err error) {
	skip, err = parseQueryInt(r, "skip", defaultSkip)
	if err != nil {
		return 0, 0, err
	}
	limit, err = parseQueryInt(r, "limit", defaultLimit)
	if err != nil {
		return 0, 0, err
	}
	return skip, limit, nil
}

func parseQueryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%s must be a non-negative integer", name)
	}
	return v, nil
}

// parseOptionalID reads an optional int64 query filter, nil when absent.
func parseOptionalID(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return nil, fmt.Errorf("%s must be a positive integer", name)
	}
	return &v, nil
}
