package inmemorycache

import (
	"encoding/json"
	"strings"
	"sync"
	"time"

	"ulascansenturk/weatherapp/internal/weather"
)

type cacheEntry struct {
	data       []byte
	expiration time.Time
}

type Cache interface {
	Get(query string) (*weather.Snapshot, bool, error)
	Set(query string, snapshot *weather.Snapshot, ttl time.Duration) error
}

type InMemoryCache struct {
	cache           map[string]cacheEntry
	mutex           sync.Mutex
	cleanupInterval time.Duration
	stop            chan struct{}
	stopOnce        sync.Once
}

const defaultCleanupInterval = time.Minute

func NewInMemoryCacheProvider(cleanupInterval time.Duration) *InMemoryCache {
	if cleanupInterval <= 0 {
		cleanupInterval = defaultCleanupInterval
	}

	provider := &InMemoryCache{
		cache:           make(map[string]cacheEntry),
		cleanupInterval: cleanupInterval,
		stop:            make(chan struct{}),
	}

	go provider.startCleanup()

	return provider
}

// Key normalises a location query so "Halifax" and " halifax" share an entry.
func Key(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

func (m *InMemoryCache) Get(query string) (*weather.Snapshot, bool, error) {
	key := Key(query)

	m.mutex.Lock()
	defer m.mutex.Unlock()

	entry, exists := m.cache[key]
	if !exists {
		return nil, false, nil
	}

	if time.Now().After(entry.expiration) {
		delete(m.cache, key)
		return nil, false, nil
	}

	var snapshot weather.Snapshot
	if err := json.Unmarshal(entry.data, &snapshot); err != nil {
		return nil, false, err
	}

	return &snapshot, true, nil
}

func (m *InMemoryCache) Set(query string, snapshot *weather.Snapshot, ttl time.Duration) error {
	jsonData, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.cache[Key(query)] = cacheEntry{
		data:       jsonData,
		expiration: time.Now().Add(ttl),
	}

	return nil
}

func (m *InMemoryCache) Close() {
	m.stopOnce.Do(func() {
		close(m.stop)
	})
}

func (m *InMemoryCache) startCleanup() {
	ticker := time.NewTicker(m.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
			m.mutex.Lock()
			now := time.Now()
			for k, v := range m.cache {
				if now.After(v.expiration) {
					delete(m.cache, k)
				}
			}
			m.mutex.Unlock()
		}
	}
}
