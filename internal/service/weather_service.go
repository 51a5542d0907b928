package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"
	"ulascansenturk/weatherapp/internal/inmemorycache"
	"ulascansenturk/weatherapp/internal/location"
	"ulascansenturk/weatherapp/internal/store"
	"ulascansenturk/weatherapp/internal/weather"
)

// Result is what every refresh hands back to the views: either a snapshot or
// the typed error that prevented one.
type Result struct {
	Query    string
	Snapshot *weather.Snapshot
	Cached   bool
	Err      error
}

func (r Result) OK() bool {
	return r.Err == nil && r.Snapshot != nil
}

type WeatherService interface {
	// Refresh fetches the forecast for query, or for the configured location
	// source when query is empty. A fresh cache entry short-circuits the call.
	Refresh(ctx context.Context, query string) Result
	// ForceRefresh skips the cache.
	ForceRefresh(ctx context.Context, query string) Result
	RefreshCurrent(ctx context.Context) Result
	State() store.State
	Subscribe() (<-chan store.State, func())
}

type weatherService struct {
	aggregator WeatherRequestAggregator
	store      *store.Store
	cache      inmemorycache.Cache
	locations  location.Source
}

func NewWeatherService(
	aggregator WeatherRequestAggregator,
	st *store.Store,
	cache inmemorycache.Cache,
	locations location.Source,
) WeatherService {
	if locations == nil {
		locations = location.StaticSource{Place: location.DefaultPlace}
	}

	return &weatherService{
		aggregator: aggregator,
		store:      st,
		cache:      cache,
		locations:  locations,
	}
}

func (s *weatherService) Refresh(ctx context.Context, query string) Result {
	return s.refresh(ctx, query, true)
}

func (s *weatherService) ForceRefresh(ctx context.Context, query string) Result {
	return s.refresh(ctx, query, false)
}

func (s *weatherService) RefreshCurrent(ctx context.Context) Result {
	return s.refresh(ctx, "", true)
}

func (s *weatherService) State() store.State {
	return s.store.Get()
}

func (s *weatherService) Subscribe() (<-chan store.State, func()) {
	return s.store.Subscribe()
}

func (s *weatherService) refresh(ctx context.Context, query string, useCache bool) Result {
	query, err := s.resolve(ctx, query)
	if err != nil {
		s.store.Fail(query, err)
		return Result{Query: query, Err: err}
	}

	if useCache && s.cache != nil {
		cached, found, err := s.cache.Get(query)
		if err != nil {
			log.Warn().Err(err).Str("query", query).Msg("failed to read cached forecast")
		} else if found {
			s.store.Complete(query, *cached)
			return Result{Query: query, Snapshot: cached, Cached: true}
		}
	}

	responseChan, err := s.aggregator.AddRequest(ctx, query)
	if err != nil {
		return Result{Query: query, Err: err}
	}

	select {
	case result, ok := <-responseChan:
		if !ok {
			return Result{Query: query, Err: ErrShutdown}
		}
		return result
	case <-ctx.Done():
		return Result{Query: query, Err: ctx.Err()}
	}
}

func (s *weatherService) resolve(ctx context.Context, query string) (string, error) {
	if query = strings.TrimSpace(query); query != "" {
		return query, nil
	}
	return s.locations.Query(ctx)
}
