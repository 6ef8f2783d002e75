package utils

import (
	"encoding/json"
	"net/http"
)

// Body shapes follow the original API: plain payloads with "message" for
// confirmations/auth failures and "error" for request failures.

type messageBody struct {
	Message string `json:"message"`
}

type errorBody struct {
	Error string `json:"error"`
}

// ResponseJSON writes an arbitrary payload with the given status code
func ResponseJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(data)
}

// ResponseMessage writes {"message": ...}
func ResponseMessage(w http.ResponseWriter, code int, message string) {
	ResponseJSON(w, code, messageBody{Message: message})
}

// ResponseError writes {"error": ...}
func ResponseError(w http.ResponseWriter, code int, message string) {
	ResponseJSON(w, code, errorBody{Error: message})
}
