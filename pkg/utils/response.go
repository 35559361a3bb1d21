package utils

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

type Response struct {
	Message string `json:"message"`
}

// ActionResult is the uniform envelope of admin procedures.
type ActionResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func RespondWithJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Error("failed to write response", zap.Error(err))
	}
}

func RespondWithError(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, Response{Message: message})
}

func RespondWithResult(w http.ResponseWriter, code int, data any) {
	RespondWithJSON(w, code, ActionResult{Success: true, Data: data})
}

func RespondWithFailure(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, ActionResult{Success: false, Error: message})
}
