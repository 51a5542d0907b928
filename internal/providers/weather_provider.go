package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"ulascansenturk/weatherapp/internal/weather"
)

const (
	DefaultBaseURL = "https://api.weatherapi.com"
	DefaultDays    = 7
	MaxDays        = 14

	// CodeNoMatchingLocation is the WeatherAPI error code for an unknown q.
	CodeNoMatchingLocation = 1006

	forecastPath = "/v1/forecast.json"
)

type ForecastProvider interface {
	FetchForecast(ctx context.Context, query string, days int) (weather.Snapshot, error)
	Name() string
}

type Options struct {
	BaseURL string
	APIKey  string
	AQI     bool
	Alerts  bool
	Timeout time.Duration
}

type WeatherAPIClient struct {
	baseURL string
	apiKey  string
	aqi     bool
	alerts  bool
	client  *http.Client
	now     func() time.Time
}

var _ ForecastProvider = (*WeatherAPIClient)(nil)

func NewWeatherAPIClient(opts Options) *WeatherAPIClient {
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &WeatherAPIClient{
		baseURL: baseURL,
		apiKey:  opts.APIKey,
		aqi:     opts.AQI,
		alerts:  opts.Alerts,
		client: &http.Client{
			Timeout: timeout,
		},
		now: time.Now,
	}
}

func (c *WeatherAPIClient) Name() string {
	return "WeatherAPI"
}

func (c *WeatherAPIClient) GetHTTPClient() *http.Client {
	return c.client
}

type forecastResponse struct {
	Location *struct {
		Name      string `json:"name"`
		Region    string `json:"region"`
		Country   string `json:"country"`
		Localtime string `json:"localtime"`
	} `json:"location"`
	Current *struct {
		TempC     float64 `json:"temp_c"`
		Condition struct {
			Text string `json:"text"`
			Icon string `json:"icon"`
		} `json:"condition"`
		WindKph  float64 `json:"wind_kph"`
		WindDir  string  `json:"wind_dir"`
		Humidity int     `json:"humidity"`
		PrecipMm float64 `json:"precip_mm"`
	} `json:"current"`
	Forecast *struct {
		ForecastDay []struct {
			Date string `json:"date"`
			Day  struct {
				MaxTempC          float64 `json:"maxtemp_c"`
				MinTempC          float64 `json:"mintemp_c"`
				MaxWindKph        float64 `json:"maxwind_kph"`
				TotalPrecipMm     float64 `json:"totalprecip_mm"`
				AvgHumidity       float64 `json:"avghumidity"`
				DailyChanceOfRain int     `json:"daily_chance_of_rain"`
				Condition         struct {
					Text string `json:"text"`
				} `json:"condition"`
			} `json:"day"`
		} `json:"forecastday"`
	} `json:"forecast"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (c *WeatherAPIClient) FetchForecast(ctx context.Context, query string, days int) (weather.Snapshot, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return weather.Snapshot{}, fmt.Errorf("%w: location query cannot be empty", weather.ErrInvalidQuery)
	}

	if days < 1 || days > MaxDays {
		return weather.Snapshot{}, fmt.Errorf("%w: days must be between 1 and %d, got %d", weather.ErrInvalidQuery, MaxDays, days)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.forecastURL(query, days), nil)
	if err != nil {
		return weather.Snapshot{}, weather.NewNetworkError(query, fmt.Errorf("failed to create request: %w", err))
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return weather.Snapshot{}, weather.NewNetworkError(query, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return weather.Snapshot{}, weather.NewNetworkError(query, fmt.Errorf("failed to read response body: %w", err))
	}

	var apiResp forecastResponse
	decodeErr := json.Unmarshal(body, &apiResp)

	// weatherapi.com reports lookup failures as a 4xx with an error object
	if decodeErr == nil && apiResp.Error != nil && apiResp.Error.Code != 0 {
		return weather.Snapshot{}, weather.NewProviderError(query, apiResp.Error.Code, apiResp.Error.Message)
	}

	if resp.StatusCode != http.StatusOK {
		return weather.Snapshot{}, weather.NewNetworkError(query, fmt.Errorf("API returned status code: %d", resp.StatusCode))
	}

	if decodeErr != nil {
		return weather.Snapshot{}, weather.NewParseError(query, fmt.Errorf("malformed JSON: %w", decodeErr))
	}

	snapshot, err := apiResp.toSnapshot(c.now())
	if err != nil {
		return weather.Snapshot{}, weather.NewParseError(query, err)
	}

	log.Debug().
		Str("provider", c.Name()).
		Str("query", query).
		Int("days", len(snapshot.Forecast)).
		Msg("forecast fetched")

	return snapshot, nil
}

func (c *WeatherAPIClient) forecastURL(query string, days int) string {
	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("q", query)
	params.Set("days", strconv.Itoa(days))
	params.Set("aqi", yesNo(c.aqi))
	params.Set("alerts", yesNo(c.alerts))

	return c.baseURL + forecastPath + "?" + params.Encode()
}

func (r forecastResponse) toSnapshot(fetchedAt time.Time) (weather.Snapshot, error) {
	if r.Location == nil {
		return weather.Snapshot{}, errors.New("response is missing location")
	}
	if r.Current == nil {
		return weather.Snapshot{}, errors.New("response is missing current conditions")
	}
	if r.Forecast == nil {
		return weather.Snapshot{}, errors.New("response is missing forecast")
	}

	days := make([]weather.DayForecast, 0, len(r.Forecast.ForecastDay))
	for i, fd := range r.Forecast.ForecastDay {
		if _, err := time.Parse(time.DateOnly, fd.Date); err != nil {
			return weather.Snapshot{}, fmt.Errorf("forecast day %d has invalid date %q", i, fd.Date)
		}

		days = append(days, weather.DayForecast{
			Date:            fd.Date,
			MaxTempC:        fd.Day.MaxTempC,
			MinTempC:        fd.Day.MinTempC,
			Condition:       fd.Day.Condition.Text,
			ChanceOfRainPct: fd.Day.DailyChanceOfRain,
			TotalPrecipMm:   fd.Day.TotalPrecipMm,
			AvgHumidityPct:  fd.Day.AvgHumidity,
			MaxWindKph:      fd.Day.MaxWindKph,
		})
	}

	return weather.Snapshot{
		Location: weather.Location{
			Name:      r.Location.Name,
			Region:    r.Location.Region,
			Country:   r.Location.Country,
			LocalTime: r.Location.Localtime,
		},
		Current: weather.Current{
			TemperatureC:    r.Current.TempC,
			Condition:       r.Current.Condition.Text,
			ConditionIcon:   r.Current.Condition.Icon,
			WindSpeedKph:    r.Current.WindKph,
			WindDirection:   r.Current.WindDir,
			HumidityPct:     r.Current.Humidity,
			PrecipitationMm: r.Current.PrecipMm,
		},
		Forecast:  days,
		FetchedAt: fetchedAt.UTC(),
	}, nil
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
