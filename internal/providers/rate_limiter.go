package providers

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
	"ulascansenturk/weatherapp/internal/weather"
)

// RateLimitedProvider holds every outbound call until the limiter grants a
// token or ctx is done.
type RateLimitedProvider struct {
	provider ForecastProvider
	limiter  *rate.Limiter
	name     string
}

var _ ForecastProvider = (*RateLimitedProvider)(nil)

func NewRateLimitedProvider(provider ForecastProvider, rps float64, burst int) *RateLimitedProvider {
	if burst < 1 {
		burst = 1
	}

	return &RateLimitedProvider{
		provider: provider,
		limiter:  rate.NewLimiter(rate.Limit(rps), burst),
		name:     fmt.Sprintf("%s [Rate Limited]", provider.Name()),
	}
}

func (r *RateLimitedProvider) FetchForecast(ctx context.Context, query string, days int) (weather.Snapshot, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return weather.Snapshot{}, fmt.Errorf("rate limit wait canceled: %w", err)
	}

	return r.provider.FetchForecast(ctx, query, days)
}

func (r *RateLimitedProvider) Name() string {
	return r.name
}
