package httpx

import (
	"context"
	"sync"
	"time"

	"github.com/Ms-Rodri1k/Projeto-integrador/internal/app"
)

// Sessions keeps one live app.Session per browser. Persisted state outlives an
// evicted session; the next request simply loads it again.
type Sessions struct {
	mu  sync.Mutex
	m   map[string]*app.Session
	new func(id string) *app.Session
}

func NewSessions(factory func(id string) *app.Session) *Sessions {
	return &Sessions{m: map[string]*app.Session{}, new: factory}
}

// Open returns the live session for id, creating it when needed.
func (s *Sessions) Open(id string) *app.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.m[id]; ok {
		return sess
	}
	sess := s.new(id)
	s.m[id] = sess
	return sess
}

// Sweep drops sessions idle for longer than maxIdle and reports how many went.
func (s *Sessions) Sweep(now time.Time, maxIdle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, sess := range s.m {
		if sess.IdleSince(now) > maxIdle {
			delete(s.m, id)
			n++
		}
	}
	return n
}

func (s *Sessions) RunSweeper(ctx context.Context, every, maxIdle time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			s.Sweep(now, maxIdle)
		}
	}
}
