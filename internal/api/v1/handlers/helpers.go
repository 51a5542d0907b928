package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"
	"ulascansenturk/weatherapp/internal/providers"
	"ulascansenturk/weatherapp/internal/service"
	"ulascansenturk/weatherapp/internal/weather"
)

func respondWithError(w http.ResponseWriter, code int, message string) {
	errorCode := "INTERNAL_ERROR"
	title := "Internal Server Error"

	switch code {
	case http.StatusBadRequest:
		errorCode = "BAD_REQUEST"
		title = "Bad Request"
	case http.StatusForbidden:
		errorCode = "FORBIDDEN"
		title = "Forbidden"
	case http.StatusNotFound:
		errorCode = "NOT_FOUND"
		title = "Not Found"
	case http.StatusMethodNotAllowed:
		errorCode = "METHOD_NOT_ALLOWED"
		title = "Method Not Allowed"
	case http.StatusBadGateway:
		errorCode = "BAD_GATEWAY"
		title = "Bad Gateway"
	case http.StatusServiceUnavailable:
		errorCode = "SERVICE_UNAVAILABLE"
		title = "Service Unavailable"
	case http.StatusGatewayTimeout:
		errorCode = "GATEWAY_TIMEOUT"
		title = "Gateway Timeout"
	}

	respondWithJSON(w, code, ErrorResponse{
		Errors: []Error{
			{
				Code:   errorCode,
				Detail: message,
				Status: code,
				Title:  title,
			},
		},
	})
}

func respondWithFetchError(w http.ResponseWriter, err error) {
	respondWithError(w, statusForError(err), err.Error())
}

func statusForError(err error) int {
	var fetchErr *weather.FetchError

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, weather.ErrInvalidQuery):
		return http.StatusBadRequest
	case errors.Is(err, weather.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, weather.ErrProvider):
		if errors.As(err, &fetchErr) && fetchErr.Code == providers.CodeNoMatchingLocation {
			return http.StatusNotFound
		}
		return http.StatusBadRequest
	case errors.Is(err, weather.ErrNetwork), errors.Is(err, weather.ErrParse):
		return http.StatusBadGateway
	case errors.Is(err, service.ErrShutdown):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}
