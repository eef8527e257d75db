package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// ErrorBody is the failure shape every admin endpoint returns:
// a bare success flag and a localized message string.
type ErrorBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Warn("write json failed", "err", err)
	}
}

func Success(w http.ResponseWriter, payload any) {
	WriteJSON(w, http.StatusOK, payload)
}

func Fail(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, ErrorBody{Success: false, Error: message})
}
