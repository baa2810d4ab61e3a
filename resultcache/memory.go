package resultcache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	key       string
	value     []byte
	expiresAt time.Time
}

// MemoryStore is a thread-safe in-memory Store with LRU eviction and
// per-entry TTL. When the store reaches its capacity, the least recently
// used entry is evicted.
type MemoryStore struct {
	capacity int
	items    map[string]*list.Element
	eviction *list.List
	mu       sync.Mutex
	now      func() time.Time // swappable in tests
}

// NewMemoryStore creates an in-memory store with the given entry capacity.
// The capacity must be positive, otherwise it panics.
func NewMemoryStore(capacity int) *MemoryStore {
	if capacity <= 0 {
		panic("resultcache: capacity must be positive")
	}
	return &MemoryStore{
		capacity: capacity,
		items:    make(map[string]*list.Element),
		eviction: list.New(),
		now:      time.Now,
	}
}

// Get retrieves a cached value and marks it as recently used.
// Expired entries are removed on access and reported as a miss.
func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	elem, ok := s.items[key]
	if !ok {
		return nil, ErrCacheMiss
	}

	entry := elem.Value.(*memoryEntry)
	if !entry.expiresAt.IsZero() && s.now().After(entry.expiresAt) {
		s.removeElement(elem)
		return nil, ErrCacheMiss
	}

	s.eviction.MoveToFront(elem)
	return entry.value, nil
}

// Set stores a value under key. A non-positive ttl means the entry never
// expires (it can still be evicted by capacity pressure).
func (s *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = s.now().Add(ttl)
	}

	if elem, ok := s.items[key]; ok {
		s.eviction.MoveToFront(elem)
		entry := elem.Value.(*memoryEntry)
		entry.value = value
		entry.expiresAt = expiresAt
		return nil
	}

	elem := s.eviction.PushFront(&memoryEntry{key: key, value: value, expiresAt: expiresAt})
	s.items[key] = elem

	if s.eviction.Len() > s.capacity {
		if oldest := s.eviction.Back(); oldest != nil {
			s.removeElement(oldest)
		}
	}
	return nil
}

// Delete removes an entry. Deleting a missing key is not an error.
func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if elem, ok := s.items[key]; ok {
		s.removeElement(elem)
	}
	return nil
}

// Len returns the number of entries currently held, including not yet
// collected expired ones.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eviction.Len()
}

func (s *MemoryStore) removeElement(elem *list.Element) {
	entry := elem.Value.(*memoryEntry)
	delete(s.items, entry.key)
	s.eviction.Remove(elem)
}
