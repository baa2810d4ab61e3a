package configstore

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryStore is a thread-safe in-memory Store for tests and single-process
// deployments that do not need persistence.
type MemoryStore struct {
	mu       sync.RWMutex
	profiles map[string]Profile
	now      func() time.Time // swappable in tests
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		profiles: make(map[string]Profile),
		now:      time.Now,
	}
}

func (s *MemoryStore) Save(_ context.Context, profile Profile) (Profile, error) {
	if err := profile.Validate(); err != nil {
		return Profile{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if existing, ok := s.profiles[profile.Name]; ok {
		profile.CreatedAt = existing.CreatedAt
	} else {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now
	profile.Config = profile.Config.Clone()

	s.profiles[profile.Name] = profile
	return profile, nil
}

func (s *MemoryStore) Get(_ context.Context, name string) (Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, ok := s.profiles[name]
	if !ok {
		return Profile{}, ErrProfileNotFound
	}
	profile.Config = profile.Config.Clone()
	return profile, nil
}

func (s *MemoryStore) List(_ context.Context) ([]Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profiles := make([]Profile, 0, len(s.profiles))
	for _, profile := range s.profiles {
		profile.Config = profile.Config.Clone()
		profiles = append(profiles, profile)
	}
	sort.Slice(profiles, func(i, j int) bool { return profiles[i].Name < profiles[j].Name })
	return profiles, nil
}

func (s *MemoryStore) Delete(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.profiles[name]; !ok {
		return ErrProfileNotFound
	}
	delete(s.profiles, name)
	return nil
}
