package handler

import (
	"encoding/json"
	"net/http"

	apperrors "pdf-chat-api/pkg/errors"
)

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError writes an error response (helper function)
func writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write([]byte(`{"error":"` + message + `"}`))
}

// errorEnvelope is the uniform failure body: {"error":{code,message,details?}}.
type errorEnvelope struct {
	Error *apperrors.AppError `json:"error"`
}

// writeAppError translates an application error into its HTTP status and the
// failure envelope. Unrecognized errors become a generic internal error;
// their details are exposed only when debug diagnostics are enabled.
func writeAppError(w http.ResponseWriter, err error, debug bool) {
	appErr, ok := apperrors.As(err)
	if !ok {
		appErr = apperrors.NewInternalError("An internal error occurred", err)
		if debug {
			appErr.WithDetail("error", err.Error())
		}
	}
	writeJSON(w, appErr.StatusCode, errorEnvelope{Error: appErr})
}
