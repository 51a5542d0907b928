package store_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"ulascansenturk/weatherapp/internal/store"
	"ulascansenturk/weatherapp/internal/weather"
)

type StoreTestSuite struct {
	suite.Suite
	store *store.Store
}

func (s *StoreTestSuite) SetupTest() {
	s.store = store.New()
}

func snapshotFor(name string, temp float64) weather.Snapshot {
	return weather.Snapshot{
		Location: weather.Location{Name: name, Region: "Nova Scotia"},
		Current:  weather.Current{TemperatureC: temp, Condition: "Sunny"},
		Forecast: []weather.DayForecast{{Date: "2025-05-20", MaxTempC: temp + 2, MinTempC: temp - 2}},
	}
}

func (s *StoreTestSuite) TestInitialStateIsIdle() {
	st := s.store.Get()

	s.Equal(store.StatusIdle, st.Status)
	s.Nil(st.Snapshot)
	s.NoError(st.Err)
	s.Equal("Loading...", s.store.DisplayLocation())
}

func (s *StoreTestSuite) TestFetchLifecycle() {
	id := s.store.BeginFetch("Halifax")
	s.NotEqual(uuid.Nil, id)

	st := s.store.Get()
	s.Equal(store.StatusFetching, st.Status)
	s.Equal(id, st.FetchID)
	s.Equal("Halifax", st.Query)

	s.store.Complete("Halifax", snapshotFor("Halifax", 11))

	st = s.store.Get()
	s.Equal(store.StatusLoaded, st.Status)
	s.Require().NotNil(st.Snapshot)
	s.Equal(11.0, st.Snapshot.Current.TemperatureC)
	s.False(st.UpdatedAt.IsZero())
	s.Equal("Halifax, Nova Scotia", s.store.DisplayLocation())
}

func (s *StoreTestSuite) TestFailureRetainsPreviousSnapshot() {
	s.store.BeginFetch("Halifax")
	s.store.Complete("Halifax", snapshotFor("Halifax", 11))
	before := s.store.Get().Snapshot

	fetchErr := weather.NewNetworkError("Halifax", errors.New("connection reset"))
	s.store.BeginFetch("Halifax")
	s.store.Fail("Halifax", fetchErr)

	st := s.store.Get()
	s.Equal(store.StatusFailed, st.Status)
	s.ErrorIs(st.Err, weather.ErrNetwork)
	s.Require().NotNil(st.Snapshot)
	s.Equal(*before, *st.Snapshot)
	s.Equal("Halifax, Nova Scotia", st.DisplayLocation())
}

func (s *StoreTestSuite) TestFailureBeforeAnySnapshotStaysEmpty() {
	s.store.BeginFetch("Halifax")
	s.store.Fail("Halifax", weather.NewParseError("Halifax", errors.New("bad json")))

	st := s.store.Get()
	s.Equal(store.StatusFailed, st.Status)
	s.Nil(st.Snapshot)
	s.Equal("Loading...", st.DisplayLocation())
}

func (s *StoreTestSuite) TestDisplayLocationComesFromSnapshot() {
	s.store.BeginFetch("44.65,-63.6")
	s.store.Complete("44.65,-63.6", snapshotFor("Dartmouth", 9))

	s.Equal("Dartmouth, Nova Scotia", s.store.DisplayLocation())
}

func (s *StoreTestSuite) TestDisplayLocationFallsBackToQuery() {
	s.store.BeginFetch("44.65,-63.6")
	s.store.Complete("44.65,-63.6", weather.Snapshot{})

	s.Equal("44.65,-63.6", s.store.DisplayLocation())
}

func (s *StoreTestSuite) TestHeldSnapshotIsIsolatedFromCaller() {
	snap := snapshotFor("Halifax", 11)
	s.store.Complete("Halifax", snap)
	snap.Forecast[0].MaxTempC = 99

	s.Equal(13.0, s.store.Get().Snapshot.Forecast[0].MaxTempC)
}

func (s *StoreTestSuite) TestSubscribeReceivesUpdates() {
	ch, unsubscribe := s.store.Subscribe()
	defer unsubscribe()

	s.store.BeginFetch("Halifax")

	select {
	case st := <-ch:
		s.Equal(store.StatusFetching, st.Status)
	case <-time.After(time.Second):
		s.Fail("no state delivered")
	}

	s.store.Complete("Halifax", snapshotFor("Halifax", 11))

	select {
	case st := <-ch:
		s.Equal(store.StatusLoaded, st.Status)
	case <-time.After(time.Second):
		s.Fail("no state delivered")
	}
}

func (s *StoreTestSuite) TestSlowSubscriberSeesNewestState() {
	ch, unsubscribe := s.store.Subscribe()
	defer unsubscribe()

	s.store.BeginFetch("Halifax")
	s.store.Complete("Halifax", snapshotFor("Halifax", 11))
	s.store.BeginFetch("Paris")
	s.store.Fail("Paris", weather.NewNetworkError("Paris", errors.New("timeout")))

	st := <-ch
	s.Equal(store.StatusFailed, st.Status)
	s.Equal("Paris", st.Query)

	select {
	case <-ch:
		s.Fail("only the newest state should be pending")
	default:
	}
}

func (s *StoreTestSuite) TestUnsubscribeClosesChannel() {
	ch, unsubscribe := s.store.Subscribe()
	unsubscribe()
	unsubscribe()

	_, ok := <-ch
	s.False(ok)

	s.store.BeginFetch("Halifax")
}

func (s *StoreTestSuite) TestConcurrentWritersLastWriteWins() {
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.store.BeginFetch("Halifax")
			s.store.Complete("Halifax", snapshotFor("Halifax", float64(i)))
			_ = s.store.Get()
		}(i)
	}
	wg.Wait()

	st := s.store.Get()
	s.Equal(store.StatusLoaded, st.Status)
	s.Require().NotNil(st.Snapshot)
	s.GreaterOrEqual(st.Snapshot.Current.TemperatureC, 0.0)
	s.Less(st.Snapshot.Current.TemperatureC, 50.0)
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}
