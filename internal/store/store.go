package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"ulascansenturk/weatherapp/internal/presentation"
	"ulascansenturk/weatherapp/internal/weather"
)

type Status string

const (
	StatusIdle     Status = "idle"
	StatusFetching Status = "fetching"
	StatusLoaded   Status = "loaded"
	StatusFailed   Status = "failed"
)

// State is a value copy of the store. Snapshot is nil until the first
// successful fetch and survives later failures unchanged.
type State struct {
	Status    Status
	FetchID   uuid.UUID
	Query     string
	Snapshot  *weather.Snapshot
	Err       error
	UpdatedAt time.Time
}

func (s State) DisplayLocation() string {
	if s.Snapshot == nil {
		return presentation.LoadingLabel
	}
	if label := s.Snapshot.Location.Label(); label != "" {
		return label
	}
	return s.Query
}

const subscriberBuffer = 1

type Store struct {
	mu          sync.RWMutex
	state       State
	subscribers map[int]chan State
	nextID      int
	now         func() time.Time
}

func New() *Store {
	return &Store{
		state:       State{Status: StatusIdle},
		subscribers: make(map[int]chan State),
		now:         time.Now,
	}
}

func (s *Store) Get() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Store) DisplayLocation() string {
	return s.Get().DisplayLocation()
}

// BeginFetch moves to Fetching and returns the id of the new fetch.
func (s *Store) BeginFetch(query string) uuid.UUID {
	id := uuid.New()
	s.update(func(st *State) {
		st.Status = StatusFetching
		st.FetchID = id
		st.Query = query
		st.Err = nil
	})
	return id
}

// Complete replaces the held snapshot as a whole.
func (s *Store) Complete(query string, snapshot weather.Snapshot) {
	held := snapshot.Clone()
	s.update(func(st *State) {
		st.Status = StatusLoaded
		st.Query = query
		st.Snapshot = &held
		st.Err = nil
	})
}

// Fail records err and keeps whatever snapshot was held before.
func (s *Store) Fail(query string, err error) {
	s.update(func(st *State) {
		st.Status = StatusFailed
		st.Query = query
		st.Err = err
	})
}

// Subscribe delivers every subsequent state. A subscriber that falls behind
// only sees the newest state; the writer never blocks.
func (s *Store) Subscribe() (<-chan State, func()) {
	ch := make(chan State, subscriberBuffer)

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subscribers[id] = ch
	s.mu.Unlock()

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subscribers, id)
			s.mu.Unlock()
			close(ch)
		})
	}

	return ch, unsubscribe
}

func (s *Store) update(fn func(*State)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(&s.state)
	s.state.UpdatedAt = s.now()
	st := s.state

	for _, ch := range s.subscribers {
		select {
		case ch <- st:
		default:
			// drop the stale pending state and replace it
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- st:
			default:
			}
		}
	}
}
