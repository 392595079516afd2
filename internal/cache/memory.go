package cache

import (
	"fmt"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/hyperjump/atsumeru/internal/models"
)

type entry struct {
	results   []*models.Result
	expiresAt time.Time
}

// Memory is an LRU-bounded cache with per-entry expiry checked lazily at read
// time. There is no background eviction; an expired entry is removed when it
// is next looked up, or when the LRU evicts it to make room.
type Memory struct {
	lru *lru.Cache[string, *entry]
	ttl time.Duration
	mu  sync.Mutex
	now func() time.Time
}

// NewMemory creates a cache holding at most capacity entries, each valid for
// ttl after its write.
func NewMemory(capacity int, ttl time.Duration) (*Memory, error) {
	l, err := lru.New[string, *entry](capacity)
	if err != nil {
		return nil, fmt.Errorf("creating lru: %w", err)
	}
	return &Memory{lru: l, ttl: ttl, now: time.Now}, nil
}

func (m *Memory) Get(key string) ([]*models.Result, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.lru.Get(key)
	if !ok {
		return nil, false
	}
	if m.now().After(e.expiresAt) {
		m.lru.Remove(key)
		return nil, false
	}
	return e.results, true
}

func (m *Memory) Put(key string, results []*models.Result) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lru.Add(key, &entry{results: results, expiresAt: m.now().Add(m.ttl)})
}

func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lru.Purge()
}

func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lru.Len()
}
