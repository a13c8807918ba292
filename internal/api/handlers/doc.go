package handlers

import (
	"net/http"

	"github.com/donaldgifford/phone-spec-scraper/internal/engine"
)

// ErrorResponse is the standard error response body.
type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

// StatusResponse is a generic status response body.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// statusFor maps an envelope's error kind to the HTTP status it is served
// with. A search that found nothing is a normal answer, not an error.
func statusFor(kind engine.ErrorKind) int {
	switch kind {
	case "", engine.KindNotFound:
		return http.StatusOK
	case engine.KindInvalidInput:
		return http.StatusBadRequest
	case engine.KindExtraction:
		return http.StatusUnprocessableEntity
	case engine.KindTransport, engine.KindReconciliationParse:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
