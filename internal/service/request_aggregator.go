package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"ulascansenturk/weatherapp/internal/db/weatherquery"
	"ulascansenturk/weatherapp/internal/inmemorycache"
	"ulascansenturk/weatherapp/internal/providers"
	"ulascansenturk/weatherapp/internal/store"
	"ulascansenturk/weatherapp/internal/weather"
)

var ErrShutdown = errors.New("weather service is shut down")

const historyWriteTimeout = 5 * time.Second

// WeatherRequestAggregator joins concurrent requests for the same location
// query onto a single provider call.
type WeatherRequestAggregator interface {
	AddRequest(ctx context.Context, query string) (<-chan Result, error)
	InFlight() int
	Shutdown()
}

type locationQueue struct {
	query    string
	channels []chan Result
}

type weatherAggregator struct {
	provider         providers.ForecastProvider
	store            *store.Store
	cache            inmemorycache.Cache
	weatherQueryRepo weatherquery.Repository
	days             int
	cacheTTL         time.Duration

	queues map[string]*locationQueue
	mu     sync.Mutex
	closed bool

	scope       context.Context
	cancelScope context.CancelFunc
	wg          sync.WaitGroup
}

type AggregatorConfig struct {
	Provider   providers.ForecastProvider
	Store      *store.Store
	Cache      inmemorycache.Cache
	Repository weatherquery.Repository
	Days       int
	CacheTTL   time.Duration
}

func NewWeatherRequestAggregator(cfg AggregatorConfig) WeatherRequestAggregator {
	days := cfg.Days
	if days <= 0 {
		days = providers.DefaultDays
	}

	st := cfg.Store
	if st == nil {
		st = store.New()
	}

	scope, cancel := context.WithCancel(context.Background())

	return &weatherAggregator{
		provider:         cfg.Provider,
		store:            st,
		cache:            cfg.Cache,
		weatherQueryRepo: cfg.Repository,
		days:             days,
		cacheTTL:         cfg.CacheTTL,
		queues:           make(map[string]*locationQueue),
		scope:            scope,
		cancelScope:      cancel,
	}
}

func (w *weatherAggregator) AddRequest(ctx context.Context, query string) (<-chan Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// buffered so delivery never blocks on a waiter that gave up
	responseChan := make(chan Result, 1)
	key := inmemorycache.Key(query)

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil, ErrShutdown
	}

	if queue, exists := w.queues[key]; exists {
		queue.channels = append(queue.channels, responseChan)
		log.Debug().Str("query", query).Int("waiting", len(queue.channels)).Msg("joined in-flight fetch")
		return responseChan, nil
	}

	queue := &locationQueue{query: query, channels: []chan Result{responseChan}}
	w.queues[key] = queue

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.processQueue(key, queue)
	}()

	return responseChan, nil
}

func (w *weatherAggregator) InFlight() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.queues)
}

func (w *weatherAggregator) processQueue(key string, queue *locationQueue) {
	fetchID := w.store.BeginFetch(queue.query)

	snapshot, fetchErr := w.provider.FetchForecast(w.scope, queue.query, w.days)

	w.mu.Lock()
	current, exists := w.queues[key]
	if !exists || current != queue {
		// Shutdown already released the waiters
		w.mu.Unlock()
		return
	}
	channels := queue.channels
	queue.channels = nil
	delete(w.queues, key)
	w.mu.Unlock()

	entry := weatherquery.WeatherQuery{
		FetchID:      fetchID.String(),
		Query:        queue.query,
		RequestCount: len(channels),
		CreatedAt:    time.Now(),
	}

	var result Result
	if fetchErr != nil {
		log.Error().
			Err(fetchErr).
			Str("query", queue.query).
			Str("kind", weather.KindOf(fetchErr)).
			Int("waiting", len(channels)).
			Msg("forecast fetch failed")

		w.store.Fail(queue.query, fetchErr)

		entry.Success = false
		entry.ErrorKind = weather.KindOf(fetchErr)
		result = Result{Query: queue.query, Err: fetchErr}
	} else {
		if w.cache != nil {
			if err := w.cache.Set(queue.query, &snapshot, w.cacheTTL); err != nil {
				log.Warn().Err(err).Str("query", queue.query).Msg("failed to cache forecast")
			}
		}

		w.store.Complete(queue.query, snapshot)

		entry.Success = true
		entry.LocationName = snapshot.Location.Label()
		entry.TemperatureC = snapshot.Current.TemperatureC
		entry.Condition = snapshot.Current.Condition
		entry.ForecastDays = len(snapshot.Forecast)
		result = Result{Query: queue.query, Snapshot: &snapshot}
	}

	w.logQuery(entry)

	for _, ch := range channels {
		r := result
		if r.Snapshot != nil {
			clone := r.Snapshot.Clone()
			r.Snapshot = &clone
		}
		ch <- r
		close(ch)
	}
}

func (w *weatherAggregator) logQuery(entry weatherquery.WeatherQuery) {
	if w.weatherQueryRepo == nil {
		return
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), historyWriteTimeout)
		defer cancel()

		if err := w.weatherQueryRepo.LogWeatherQuery(ctx, entry); err != nil {
			log.Error().Err(err).Str("query", entry.Query).Msg("failed to log weather query")
		}
	}()
}

// Shutdown cancels in-flight fetches, closes every waiting channel and waits
// for background work to finish. It is safe to call more than once.
func (w *weatherAggregator) Shutdown() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true

	for key, queue := range w.queues {
		for _, ch := range queue.channels {
			close(ch)
		}
		queue.channels = nil
		delete(w.queues, key)
	}
	w.mu.Unlock()

	w.cancelScope()
	w.wg.Wait()
}
