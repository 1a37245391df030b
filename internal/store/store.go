// Package store is the persistent key/value layer behind a storefront session.
//
// Reads never fail from the caller's point of view: an absent key, a value that
// does not decode, or a backend fault all yield the caller's fallback. Writes are
// best-effort and fire-and-forget. Lookup and TryWrite expose the underlying
// outcome for callers (and tests) that need to tell a fallback from a fresh value.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

var (
	ErrNotFound    = errors.New("store: key not found")
	ErrUnavailable = errors.New("store: backend unavailable")
)

const DefaultTimeout = 2 * time.Second

// Backend is the raw byte storage a Store serialises into.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

type Store struct {
	backend Backend
	prefix  string
	timeout time.Duration
	log     *zap.Logger
}

type Option func(*Store)

func WithTimeout(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.timeout = d
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

func New(b Backend, opts ...Option) *Store {
	s := &Store{backend: b, timeout: DefaultTimeout, log: zap.NewNop()}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Scoped returns a store on the same backend whose keys live under the
// namespace of one browser session.
func (s *Store) Scoped(sessionID string) *Store {
	if s == nil {
		return nil
	}
	cp := *s
	cp.prefix = fmt.Sprintf(KeySession, sessionID)
	cp.log = s.log.With(zap.String("session", sessionID))
	return &cp
}

func (s *Store) key(k string) string { return s.prefix + k }

// Result is the explicit outcome of a lookup. Found is false whenever the
// fallback would be used; Err carries the reason unless the key was simply absent.
type Result[T any] struct {
	Value T
	Found bool
	Err   error
}

func Lookup[T any](s *Store, key string) Result[T] {
	if s == nil || s.backend == nil {
		return Result[T]{Err: ErrUnavailable}
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	b, err := s.get(ctx, s.key(key))
	if err != nil {
		return Result[T]{Err: err}
	}
	if len(b) == 0 {
		return Result[T]{Err: ErrNotFound}
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return Result[T]{Err: fmt.Errorf("decode %s: %w", key, err)}
	}
	return Result[T]{Value: v, Found: true}
}

// Read returns the stored value for key, or fallback.
func Read[T any](s *Store, key string, fallback T) T {
	r := Lookup[T](s, key)
	if !r.Found {
		if r.Err != nil && !errors.Is(r.Err, ErrNotFound) && s != nil {
			s.log.Warn("store read failed, using fallback", zap.String("key", key), zap.Error(r.Err))
		}
		return fallback
	}
	return r.Value
}

func (s *Store) TryWrite(key string, v any) error {
	if s == nil || s.backend == nil {
		return ErrUnavailable
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	return s.set(ctx, s.key(key), b)
}

// Write stores v under key. Failures are logged and dropped.
func (s *Store) Write(key string, v any) {
	if err := s.TryWrite(key, v); err != nil && s != nil {
		s.log.Warn("store write dropped", zap.String("key", key), zap.Error(err))
	}
}

// get and set turn a panicking backend into an ordinary fault.
func (s *Store) get(ctx context.Context, key string) (b []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("backend panic: %v", r)
		}
	}()
	return s.backend.Get(ctx, key)
}

func (s *Store) set(ctx context.Context, key string, value []byte) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("backend panic: %v", r)
		}
	}()
	return s.backend.Set(ctx, key, value)
}
