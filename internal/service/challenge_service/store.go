package challenge_service

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

const defaultCacheSize = 128

// ChallengeStore owns the two challenge lookup maps. history keeps every
// single generated challenge for the process lifetime, cache holds batch
// results behind a bounded lru. Get reads through history first so both
// populations are addressable by id.
type ChallengeStore struct {
	mu      sync.RWMutex
	history map[string]Challenge
	cache   *lru.Cache[string, Challenge]
}

func NewChallengeStore(cacheSize int) (*ChallengeStore, error) {
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}
	cache, err := lru.New[string, Challenge](cacheSize)
	if err != nil {
		return nil, err
	}
	return &ChallengeStore{
		history: make(map[string]Challenge),
		cache:   cache,
	}, nil
}

// PutHistory inserts or overwrites a challenge in the history map.
func (s *ChallengeStore) PutHistory(challenge Challenge) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history[challenge.ID] = challenge
}

// PutCache inserts or overwrites a challenge in the batch cache.
func (s *ChallengeStore) PutCache(challenge Challenge) {
	s.cache.Add(challenge.ID, challenge)
}

// Get looks a challenge up by id, history first, then the batch cache.
// Absence is reported by the bool, never by a panic.
func (s *ChallengeStore) Get(id string) (Challenge, bool) {
	s.mu.RLock()
	challenge, ok := s.history[id]
	s.mu.RUnlock()
	if ok {
		return challenge, true
	}
	return s.cache.Get(id)
}

// HistoryLen reports how many challenges have been generated so far.
func (s *ChallengeStore) HistoryLen() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.history)
}
