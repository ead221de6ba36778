package fuelcalc

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/rubiojr/fuelcalc/pkg/fuel"
)

const (
	DefaultSessionTTL      = 30 * time.Minute
	sessionCleanupInterval = 5 * time.Minute
)

// Session is one client's calculator. All access to its engine goes through
// Do, which serializes callers.
type Session struct {
	ID     string
	mu     sync.Mutex
	engine *fuel.Engine
}

// Do runs fn with exclusive access to the session engine.
func (s *Session) Do(fn func(e *fuel.Engine) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.engine)
}

// Sessions keeps live sessions in a cache. A session expires after being idle
// for the TTL, and its history is deleted from the storage with it.
type Sessions struct {
	cache   *cache.Cache
	storage *Storage
	log     *slog.Logger
}

func NewSessions(storage *Storage, ttl time.Duration, logger *slog.Logger) *Sessions {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	s := &Sessions{
		cache:   cache.New(ttl, sessionCleanupInterval),
		storage: storage,
		log:     logger,
	}
	s.cache.OnEvicted(s.evicted)
	return s
}

func (s *Sessions) Create() *Session {
	id := uuid.NewString()
	logger := s.log.With("session", id)
	sess := &Session{
		ID: id,
		engine: fuel.NewEngine(
			fuel.WithHistoryStore(s.storage.SessionHistory(id)),
			fuel.WithLogger(logger),
		),
	}
	s.cache.Set(id, sess, cache.DefaultExpiration)
	logger.Debug("Session created")
	return sess
}

// Get returns a live session and extends its expiration.
func (s *Sessions) Get(id string) (*Session, bool) {
	v, found := s.cache.Get(id)
	if !found {
		return nil, false
	}
	sess := v.(*Session)
	// Replace fails if the session was ended meanwhile, which is fine.
	_ = s.cache.Replace(id, sess, cache.DefaultExpiration)
	return sess, true
}

// End removes a session and its history.
func (s *Sessions) End(id string) bool {
	if _, found := s.cache.Get(id); !found {
		return false
	}
	s.cache.Delete(id)
	return true
}

func (s *Sessions) Len() int {
	return s.cache.ItemCount()
}

// Prune evicts expired sessions now instead of waiting for the janitor.
func (s *Sessions) Prune() {
	s.cache.DeleteExpired()
}

func (s *Sessions) evicted(id string, _ interface{}) {
	n, err := s.storage.DeleteRecords(context.Background(), id)
	if err != nil {
		s.log.Error("Failed to delete session history", "session", id, "error", err)
		return
	}
	s.log.Debug("Session ended", "session", id, "deleted_records", n)
}
