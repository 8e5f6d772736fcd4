// Package httputil maps domain results and errors onto HTTP responses.
package httputil

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/fekuna/omnipos-sales-service/internal/apperror"
	"github.com/fekuna/omnipos-sales-service/pkg/logger"
)

type errorBody struct {
	Error string `json:"error"`
}

type messageBody struct {
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteMessage(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, messageBody{Message: message})
}

// WriteError translates the error taxonomy to status codes. Validation and
// reference failures are client errors, conflicts are 409, not-found is a
// bare 404. Anything else is a store failure: logged in full, surfaced as a
// generic 500 so raw store errors never reach the client.
func WriteError(log logger.ZapLogger, w http.ResponseWriter, err error) {
	switch {
	case apperror.IsValidation(err), apperror.IsReference(err):
		WriteJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
	case apperror.IsNotFound(err):
		w.WriteHeader(http.StatusNotFound)
	case apperror.IsConflict(err):
		WriteJSON(w, http.StatusConflict, errorBody{Error: err.Error()})
	default:
		log.Error("store failure", zap.Error(err))
		WriteJSON(w, http.StatusInternalServerError, errorBody{Error: "internal server error"})
	}
}
