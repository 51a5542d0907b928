package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"ulascansenturk/weatherapp/internal/location"
	"ulascansenturk/weatherapp/internal/mocks"
	"ulascansenturk/weatherapp/internal/service"
	"ulascansenturk/weatherapp/internal/store"
	"ulascansenturk/weatherapp/internal/weather"
)

type WeatherServiceTestSuite struct {
	suite.Suite
	mockAggregator *mocks.MockWeatherRequestAggregator
	mockCache      *mocks.MockCache
	mockSource     *mocks.MockSource
	store          *store.Store
	service        service.WeatherService
	ctx            context.Context
}

func (s *WeatherServiceTestSuite) SetupTest() {
	s.mockAggregator = mocks.NewMockWeatherRequestAggregator(s.T())
	s.mockCache = mocks.NewMockCache(s.T())
	s.mockSource = mocks.NewMockSource(s.T())
	s.store = store.New()
	s.service = service.NewWeatherService(s.mockAggregator, s.store, s.mockCache, s.mockSource)
	s.ctx = context.Background()
}

func resultChannel(results ...service.Result) <-chan service.Result {
	ch := make(chan service.Result, len(results))
	for _, r := range results {
		ch <- r
	}
	close(ch)
	return ch
}

func (s *WeatherServiceTestSuite) TestRefreshWithQuery() {
	snapshot := sampleSnapshot("Istanbul", 25.5)
	expected := service.Result{Query: "Istanbul", Snapshot: &snapshot}

	s.mockCache.On("Get", "Istanbul").Return((*weather.Snapshot)(nil), false, nil).Once()
	s.mockAggregator.On("AddRequest", mock.Anything, "Istanbul").Return(resultChannel(expected), nil).Once()

	result := s.service.Refresh(s.ctx, "  Istanbul ")

	s.Equal(expected, result)
	s.True(result.OK())
	s.mockSource.AssertNotCalled(s.T(), "Query", mock.Anything)
}

func (s *WeatherServiceTestSuite) TestRefreshServedFromCache() {
	snapshot := sampleSnapshot("Halifax", 11.3)

	s.mockCache.On("Get", "Halifax").Return(&snapshot, true, nil).Once()

	result := s.service.Refresh(s.ctx, "Halifax")

	s.Require().True(result.OK())
	s.True(result.Cached)
	s.Equal(snapshot, *result.Snapshot)

	state := s.service.State()
	s.Equal(store.StatusLoaded, state.Status)
	s.Equal("Halifax, Nova Scotia", state.DisplayLocation())
	s.mockAggregator.AssertNotCalled(s.T(), "AddRequest", mock.Anything, mock.Anything)
}

func (s *WeatherServiceTestSuite) TestRefreshIgnoresCacheReadError() {
	snapshot := sampleSnapshot("Halifax", 11.3)
	expected := service.Result{Query: "Halifax", Snapshot: &snapshot}

	s.mockCache.On("Get", "Halifax").Return((*weather.Snapshot)(nil), false, errors.New("corrupt entry")).Once()
	s.mockAggregator.On("AddRequest", mock.Anything, "Halifax").Return(resultChannel(expected), nil).Once()

	result := s.service.Refresh(s.ctx, "Halifax")

	s.Equal(expected, result)
}

func (s *WeatherServiceTestSuite) TestForceRefreshSkipsCache() {
	snapshot := sampleSnapshot("Halifax", 11.3)
	expected := service.Result{Query: "Halifax", Snapshot: &snapshot}

	s.mockAggregator.On("AddRequest", mock.Anything, "Halifax").Return(resultChannel(expected), nil).Once()

	result := s.service.ForceRefresh(s.ctx, "Halifax")

	s.Equal(expected, result)
	s.mockCache.AssertNotCalled(s.T(), "Get", mock.Anything)
}

func (s *WeatherServiceTestSuite) TestRefreshCurrentUsesLocationSource() {
	snapshot := sampleSnapshot("Halifax", 11.3)
	expected := service.Result{Query: "44.65,-63.6", Snapshot: &snapshot}

	s.mockSource.On("Query", mock.Anything).Return("44.65,-63.6", nil).Once()
	s.mockCache.On("Get", "44.65,-63.6").Return((*weather.Snapshot)(nil), false, nil).Once()
	s.mockAggregator.On("AddRequest", mock.Anything, "44.65,-63.6").Return(resultChannel(expected), nil).Once()

	result := s.service.RefreshCurrent(s.ctx)

	s.Equal(expected, result)
}

func (s *WeatherServiceTestSuite) TestRefreshWithEmptyQueryUsesLocationSource() {
	snapshot := sampleSnapshot("Halifax", 11.3)
	expected := service.Result{Query: "Halifax", Snapshot: &snapshot}

	s.mockSource.On("Query", mock.Anything).Return("Halifax", nil).Once()
	s.mockAggregator.On("AddRequest", mock.Anything, "Halifax").Return(resultChannel(expected), nil).Once()

	result := s.service.ForceRefresh(s.ctx, "   ")

	s.Equal(expected, result)
}

func (s *WeatherServiceTestSuite) TestLocationSourceError() {
	s.mockSource.On("Query", mock.Anything).Return("", weather.ErrPermissionDenied).Once()

	result := s.service.RefreshCurrent(s.ctx)

	s.ErrorIs(result.Err, weather.ErrPermissionDenied)
	s.Nil(result.Snapshot)

	state := s.service.State()
	s.Equal(store.StatusFailed, state.Status)
	s.Equal("Loading...", state.DisplayLocation())
	s.mockAggregator.AssertNotCalled(s.T(), "AddRequest", mock.Anything, mock.Anything)
}

func (s *WeatherServiceTestSuite) TestRefreshWithAggregatorError() {
	s.mockCache.On("Get", "Paris").Return((*weather.Snapshot)(nil), false, nil).Once()
	s.mockAggregator.On("AddRequest", mock.Anything, "Paris").
		Return((<-chan service.Result)(nil), service.ErrShutdown).
		Once()

	result := s.service.Refresh(s.ctx, "Paris")

	s.ErrorIs(result.Err, service.ErrShutdown)
	s.Equal("Paris", result.Query)
}

func (s *WeatherServiceTestSuite) TestRefreshWithErrorResult() {
	fetchErr := weather.NewProviderError("Atlantis", 1006, "No matching location found.")

	s.mockCache.On("Get", "Atlantis").Return((*weather.Snapshot)(nil), false, nil).Once()
	s.mockAggregator.On("AddRequest", mock.Anything, "Atlantis").
		Return(resultChannel(service.Result{Query: "Atlantis", Err: fetchErr}), nil).
		Once()

	result := s.service.Refresh(s.ctx, "Atlantis")

	s.ErrorIs(result.Err, weather.ErrProvider)
	s.False(result.OK())
}

func (s *WeatherServiceTestSuite) TestRefreshWithClosedChannel() {
	s.mockCache.On("Get", "London").Return((*weather.Snapshot)(nil), false, nil).Once()
	s.mockAggregator.On("AddRequest", mock.Anything, "London").Return(resultChannel(), nil).Once()

	result := s.service.Refresh(s.ctx, "London")

	s.ErrorIs(result.Err, service.ErrShutdown)
}

func (s *WeatherServiceTestSuite) TestRefreshWithContextTimeout() {
	pending := make(chan service.Result)

	s.mockCache.On("Get", "Tokyo").Return((*weather.Snapshot)(nil), false, nil).Once()
	s.mockAggregator.On("AddRequest", mock.Anything, "Tokyo").Return((<-chan service.Result)(pending), nil).Once()

	ctx, cancel := context.WithTimeout(s.ctx, 20*time.Millisecond)
	defer cancel()

	result := s.service.Refresh(ctx, "Tokyo")

	s.ErrorIs(result.Err, context.DeadlineExceeded)
	s.Nil(result.Snapshot)
}

func (s *WeatherServiceTestSuite) TestSubscribeSeesStoreUpdates() {
	snapshot := sampleSnapshot("Halifax", 11.3)
	updates, unsubscribe := s.service.Subscribe()
	defer unsubscribe()

	s.mockCache.On("Get", "Halifax").Return(&snapshot, true, nil).Once()
	s.service.Refresh(s.ctx, "Halifax")

	select {
	case state := <-updates:
		s.Equal(store.StatusLoaded, state.Status)
	case <-time.After(time.Second):
		s.Fail("no state update received")
	}
}

func TestWeatherServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WeatherServiceTestSuite))
}

func TestNewWeatherServiceDefaultsToStaticLocation(t *testing.T) {
	aggregator := mocks.NewMockWeatherRequestAggregator(t)
	snapshot := sampleSnapshot("Halifax", 11.3)
	expected := service.Result{Query: location.DefaultPlace, Snapshot: &snapshot}

	aggregator.On("AddRequest", mock.Anything, location.DefaultPlace).Return(resultChannel(expected), nil).Once()

	svc := service.NewWeatherService(aggregator, store.New(), nil, nil)
	result := svc.RefreshCurrent(context.Background())

	if !result.OK() || result.Query != location.DefaultPlace {
		t.Fatalf("unexpected result: %+v", result)
	}
}
