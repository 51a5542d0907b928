package handlers

import (
	"time"

	"github.com/google/uuid"
	"ulascansenturk/weatherapp/internal/db/weatherquery"
	"ulascansenturk/weatherapp/internal/presentation"
	"ulascansenturk/weatherapp/internal/store"
	"ulascansenturk/weatherapp/internal/weather"
)

type HealthResponse struct {
	Status string `json:"status"`
}

type StateError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type StateResponse struct {
	Status    store.Status              `json:"status"`
	FetchID   string                    `json:"fetch_id,omitempty"`
	Query     string                    `json:"query,omitempty"`
	Location  string                    `json:"location"`
	UpdatedAt *time.Time                `json:"updated_at,omitempty"`
	Error     *StateError               `json:"error,omitempty"`
	Current   *presentation.CurrentView `json:"current,omitempty"`
}

func newStateResponse(st store.State) StateResponse {
	resp := StateResponse{
		Status:   st.Status,
		Query:    st.Query,
		Location: st.DisplayLocation(),
	}

	if st.FetchID != uuid.Nil {
		resp.FetchID = st.FetchID.String()
	}
	if !st.UpdatedAt.IsZero() {
		updatedAt := st.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}
	if st.Err != nil {
		resp.Error = &StateError{Kind: weather.KindOf(st.Err), Message: st.Err.Error()}
	}
	if st.Snapshot != nil {
		view := presentation.NewCurrentView(*st.Snapshot)
		resp.Current = &view
	}

	return resp
}

type HistoryResponse struct {
	Queries []weatherquery.WeatherQuery `json:"queries"`
}

type Error struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
	Title  string `json:"title"`
}

type ErrorResponse struct {
	Errors []Error `json:"errors"`
}
