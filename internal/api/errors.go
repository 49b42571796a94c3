package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/joestump/worklog/internal/logger"
	"github.com/joestump/worklog/internal/store"
)

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Msg  string `json:"msg"`
	Code string `json:"code"`
}

// Envelope wraps every successful response as {"msg": "OK", "data": ...}.
type Envelope[T any] struct {
	Msg  string `json:"msg"`
	Data T      `json:"data,omitempty"`
}

// writeError writes a JSON error response with the given HTTP status code.
func writeError(w http.ResponseWriter, status int, message, code string) {
	writeJSON(w, status, ErrorResponse{Msg: message, Code: code})
}

// writeOK writes a 200 envelope around data.
func writeOK[T any](w http.ResponseWriter, data T) {
	writeJSON(w, http.StatusOK, Envelope[T]{Msg: "OK", Data: data})
}

// writeJSON writes a JSON response with the given HTTP status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeStoreError maps store errors onto API errors. Anything unrecognised
// is logged and reported as a 500.
func writeStoreError(w http.ResponseWriter, r *http.Request, err error, op string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "record not found", "NOT_FOUND")
	case errors.Is(err, store.ErrInvalidTag):
		writeError(w, http.StatusBadRequest, err.Error(), "INVALID_TAG")
	case errors.Is(err, store.ErrEmptyContent):
		writeError(w, http.StatusBadRequest, "content is required", "BAD_REQUEST")
	default:
		logger.FromRequest(r).Err(err).Str("op", op).Msg("store error")
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
	}
}
