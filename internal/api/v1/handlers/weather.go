package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"ulascansenturk/weatherapp/internal/db/weatherquery"
	"ulascansenturk/weatherapp/internal/presentation"
	"ulascansenturk/weatherapp/internal/service"
)

const maxHistoryLimit = 100

type WeatherHandler struct {
	weatherService service.WeatherService
	history        weatherquery.Repository
	timeout        time.Duration
	router         *mux.Router
}

// NewWeatherHandler wires the routes. A nil history repository disables
// GET /history.
func NewWeatherHandler(weatherService service.WeatherService, history weatherquery.Repository, timeout time.Duration) *WeatherHandler {
	h := &WeatherHandler{
		weatherService: weatherService,
		history:        history,
		timeout:        timeout,
		router:         mux.NewRouter(),
	}
	h.setupRoutes()
	return h
}

func (h *WeatherHandler) setupRoutes() {
	r := h.router

	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	r.HandleFunc("/weather", h.GetWeather).Methods(http.MethodGet)
	r.HandleFunc("/forecast", h.GetForecast).Methods(http.MethodGet)
	r.HandleFunc("/refresh", h.Refresh).Methods(http.MethodPost)
	r.HandleFunc("/state", h.GetState).Methods(http.MethodGet)
	r.HandleFunc("/history", h.GetHistory).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		respondWithError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
	})
}

func (h *WeatherHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *WeatherHandler) Health(w http.ResponseWriter, _ *http.Request) {
	respondWithJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// GetWeather serves the current conditions view. Without q the configured
// location source decides the place.
func (h *WeatherHandler) GetWeather(w http.ResponseWriter, r *http.Request) {
	result, ok := h.fetch(w, r, h.weatherService.Refresh)
	if !ok {
		return
	}

	respondWithJSON(w, http.StatusOK, presentation.NewCurrentView(*result.Snapshot))
}

func (h *WeatherHandler) GetForecast(w http.ResponseWriter, r *http.Request) {
	result, ok := h.fetch(w, r, h.weatherService.Refresh)
	if !ok {
		return
	}

	respondWithJSON(w, http.StatusOK, presentation.NewDailyView(*result.Snapshot))
}

// Refresh bypasses the cache and reports the resulting store state.
func (h *WeatherHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.fetch(w, r, h.weatherService.ForceRefresh); !ok {
		return
	}

	respondWithJSON(w, http.StatusOK, newStateResponse(h.weatherService.State()))
}

func (h *WeatherHandler) GetState(w http.ResponseWriter, _ *http.Request) {
	respondWithJSON(w, http.StatusOK, newStateResponse(h.weatherService.State()))
}

func (h *WeatherHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	if h.history == nil {
		respondWithError(w, http.StatusNotFound, "history is disabled")
		return
	}

	limit := weatherquery.DefaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > maxHistoryLimit {
			respondWithError(w, http.StatusBadRequest, "limit must be an integer between 1 and "+strconv.Itoa(maxHistoryLimit))
			return
		}
		limit = parsed
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	queries, err := h.history.RecentQueries(ctx, limit)
	if err != nil {
		log.Error().Err(err).Int("limit", limit).Msg("failed to load weather history")
		respondWithError(w, http.StatusInternalServerError, "failed to load weather history: "+err.Error())
		return
	}

	if queries == nil {
		queries = []weatherquery.WeatherQuery{}
	}
	respondWithJSON(w, http.StatusOK, HistoryResponse{Queries: queries})
}

func (h *WeatherHandler) fetch(
	w http.ResponseWriter,
	r *http.Request,
	refresh func(context.Context, string) service.Result,
) (service.Result, bool) {
	query := r.URL.Query().Get("q")

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	result := refresh(ctx, query)
	if result.Err != nil {
		log.Error().Err(result.Err).Str("query", query).Msg("failed to get weather data")
		respondWithFetchError(w, result.Err)
		return result, false
	}
	if result.Snapshot == nil {
		respondWithError(w, http.StatusInternalServerError, "no weather data available")
		return result, false
	}

	return result, true
}
