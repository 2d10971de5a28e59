// Package respond writes JSON responses and maps apperr kinds to HTTP status
// codes, so handlers never hand-roll status/error bodies.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/chapterhub/chapterhub/internal/app/system/apperr"
	"go.uber.org/zap"
)

// errorBody is the JSON shape for all error responses.
type errorBody struct {
	Error string `json:"error"`
}

// JSON writes v as a JSON body with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes err as a JSON error response using the apperr mapping.
// Internal errors are logged with their cause; the client sees only the
// generic message.
func Error(w http.ResponseWriter, logger *zap.Logger, err error) {
	status := apperr.HTTPStatus(err)
	if status == http.StatusInternalServerError && logger != nil {
		logger.Error("request failed", zap.Error(err))
	}
	JSON(w, status, errorBody{Error: apperr.Message(err)})
}

// Decode parses a JSON request body into dst, rejecting unknown fields so
// dynamic record shapes cannot sneak past the typed request structs.
func Decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return apperr.Wrap(apperr.InvalidArgument, "invalid request body", err)
	}
	return nil
}
