package helpers

import (
	"encoding/json"
	"log"
	"net/http"

	"ember_server/apperrors"
)

// WriteJSONResponse writes payload as JSON with the given status code.
func WriteJSONResponse(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Failed to encode response: %v\n", err)
	}
}

// WriteError writes err as a JSON error envelope, with the HTTP status
// derived from its error code.
func WriteError(w http.ResponseWriter, err error) {
	WriteJSONResponse(w, apperrors.HTTPStatus(err), map[string]interface{}{
		"success": false,
		"code":    apperrors.CodeOf(err),
		"error":   err.Error(),
	})
}
