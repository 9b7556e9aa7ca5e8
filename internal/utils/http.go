package utils

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-parking-mate/models"
	"github.com/goccy/go-json"
)

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteEnvelope writes the standard {status, message, data} response body.
// The envelope status always equals the HTTP status code.
//
// Example usage:
//
//	WriteEnvelope(w, http.StatusCreated, "bookmark added", nil)
func WriteEnvelope(w http.ResponseWriter, statusCode int, message string, data any) (int, error) {
	return WriteJSON(w, models.NewResponse(statusCode, message, data), statusCode)
}
