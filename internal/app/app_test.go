package app_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"ulascansenturk/weatherapp/config"
	"ulascansenturk/weatherapp/internal/app"
	"ulascansenturk/weatherapp/internal/store"
)

type AppTestSuite struct {
	suite.Suite
	server  *httptest.Server
	fixture []byte

	mu      sync.Mutex
	queries []string
}

func (s *AppTestSuite) SetupSuite() {
	var err error
	s.fixture, err = os.ReadFile("../providers/testdata/forecast_halifax.json")
	s.Require().NoError(err)

	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.queries = append(s.queries, r.URL.Query().Get("q"))
		s.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(s.fixture)
	}))
}

func (s *AppTestSuite) TearDownSuite() {
	s.server.Close()
}

func (s *AppTestSuite) SetupTest() {
	s.mu.Lock()
	s.queries = nil
	s.mu.Unlock()
}

func (s *AppTestSuite) lastQuery() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.queries) == 0 {
		return ""
	}
	return s.queries[len(s.queries)-1]
}

func (s *AppTestSuite) config() *config.Config {
	return &config.Config{
		ServiceName:          "weatherapp-test",
		HTTPTimeout:          5,
		WeatherAPIBaseURL:    s.server.URL,
		WeatherApiAPIKey:     "test-key",
		ForecastDays:         7,
		DefaultLocation:      "Halifax",
		RateLimitRPS:         50,
		RateLimitBurst:       5,
		CacheTTL:             time.Minute,
		CacheCleanupInterval: time.Minute,
	}
}

func (s *AppTestSuite) TestRefreshCurrentUsesDefaultLocation() {
	a, err := app.New(s.config(), nil)
	s.Require().NoError(err)
	defer a.Close()

	s.Nil(a.Repository)
	s.Equal("WeatherAPI [Rate Limited]", a.Provider.Name())

	result := a.Service.RefreshCurrent(context.Background())

	s.Require().NoError(result.Err)
	s.Require().NotNil(result.Snapshot)
	s.Equal("Halifax", s.lastQuery())
	s.Len(result.Snapshot.Forecast, 7)
	s.Equal(store.StatusLoaded, a.Store.Get().Status)
	s.Equal("Halifax, Nova Scotia", a.Store.DisplayLocation())
}

func (s *AppTestSuite) TestRefreshCurrentUsesDeviceCoordinates() {
	conf := s.config()
	conf.DeviceLatitude = "44.65"
	conf.DeviceLongitude = "-63.6"

	a, err := app.New(conf, nil)
	s.Require().NoError(err)
	defer a.Close()

	result := a.Service.RefreshCurrent(context.Background())

	s.Require().NoError(result.Err)
	s.Equal("44.65,-63.6", s.lastQuery())
}

func (s *AppTestSuite) TestSecondRefreshIsCached() {
	a, err := app.New(s.config(), nil)
	s.Require().NoError(err)
	defer a.Close()

	first := a.Service.Refresh(context.Background(), "Halifax")
	s.Require().True(first.OK())

	second := a.Service.Refresh(context.Background(), "HALIFAX")
	s.Require().True(second.OK())
	s.True(second.Cached)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.Len(s.queries, 1)
}

func (s *AppTestSuite) TestWithoutRateLimit() {
	conf := s.config()
	conf.RateLimitRPS = 0

	a, err := app.New(conf, nil)
	s.Require().NoError(err)
	defer a.Close()

	s.Equal("WeatherAPI", a.Provider.Name())
}

func (s *AppTestSuite) TestInvalidConfig() {
	conf := s.config()
	conf.WeatherApiAPIKey = ""

	_, err := app.New(conf, nil)
	s.Require().ErrorIs(err, config.ErrMissingAPIKey)

	conf = s.config()
	conf.DeviceLatitude = "95"
	conf.DeviceLongitude = "10"

	_, err = app.New(conf, nil)
	s.Require().Error(err)
	s.Contains(err.Error(), "invalid device location")
}

func (s *AppTestSuite) TestNewLogger() {
	conf := s.config()
	conf.LogLevel = "debug"
	s.Equal("debug", app.NewLogger(conf).GetLevel().String())

	conf.LogLevel = "nonsense"
	s.Equal("info", app.NewLogger(conf).GetLevel().String())
}

func TestAppTestSuite(t *testing.T) {
	suite.Run(t, new(AppTestSuite))
}
