// filepath: internal/httpserver/handlers/responses.go
package handlers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the envelope for transport-level errors.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse carries the value passed to Result.Success.
type SuccessResponse struct {
	Result interface{} `json:"result"`
}

// ChannelError is the body of an error reply from a channel handler.
type ChannelError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details"`
}

// ChannelErrorResponse carries the value passed to Result.Error.
type ChannelErrorResponse struct {
	Error ChannelError `json:"error"`
}

// NotImplementedResponse is sent for methods the channel does not know.
type NotImplementedResponse struct {
	NotImplemented bool `json:"not_implemented"`
}

// respondWithError sends a JSON error response.
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

// respondWithJSON sends a JSON response.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, `{"error":"Failed to marshal JSON response"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
