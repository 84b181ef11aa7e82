package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"trustscore/internal/domainerrors"
)

func writeJSON(w http.ResponseWriter, status int, response any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// headers are already sent; an encoding error cannot change the status
	_ = json.NewEncoder(w).Encode(response)
}

// writeError translates domain error codes to HTTP responses.
func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		writeJSON(w, http.StatusGatewayTimeout, map[string]string{"error": "timeout"})
		return
	}
	var de *domainerrors.Error
	if !errors.As(err, &de) {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": string(domainerrors.CodeInternal)})
		return
	}
	response := map[string]string{"error": string(de.Code)}
	// internal messages stay in the logs
	if de.Message != "" && de.Code != domainerrors.CodeInternal {
		response["error_description"] = de.Message
	}
	writeJSON(w, statusFor(de.Code), response)
}

func statusFor(code domainerrors.Code) int {
	switch code {
	case domainerrors.CodeNotFound:
		return http.StatusNotFound
	case domainerrors.CodeBadRequest, domainerrors.CodeValidation:
		return http.StatusBadRequest
	case domainerrors.CodeConflict:
		return http.StatusConflict
	case domainerrors.CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
