package models

// Response is the envelope written for every API response, errors
// included. Status always mirrors the HTTP status code of the response.
type Response struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// NewResponse builds an envelope for the given status, message and payload.
func NewResponse(status int, message string, data any) Response {
	return Response{Status: status, Message: message, Data: data}
}

// VersionInfo is the payload of GET /api/version.
type VersionInfo struct {
	Version     string `json:"version"`
	BuildDate   string `json:"build_date"`
	BuildCommit string `json:"build_commit"`
}
