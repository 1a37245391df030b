// Package app runs the storefront loop for one browser session: a navigation
// sets the route and renders, a render rebinds every marker, and a bound
// handler runs an action that persists and renders or navigates again.
package app

import (
	"math/rand/v2"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Ms-Rodri1k/Projeto-integrador/internal/shop"
	"github.com/Ms-Rodri1k/Projeto-integrador/internal/store"
)

type Options struct {
	Catalog  shop.Catalog
	Store    *store.Store
	Events   OrderEvents
	Registry *Registry
	Logger   *zap.Logger
	Now      func() time.Time
	Pick     func(n int) int // highlighted product; uniform random when nil
}

// Session serialises everything that touches its State: navigation, dispatch
// and frame reads each run to completion under one lock.
type Session struct {
	mu       sync.Mutex
	id       string
	state    *State
	router   *Router
	renderer *Renderer
	actions  *Actions
	now      func() time.Time
	lastSeen time.Time
}

func NewSession(id string, opt Options) *Session {
	if opt.Catalog == nil {
		opt.Catalog = shop.DefaultCatalog
	}
	if opt.Registry == nil {
		opt.Registry = NewRegistry()
	}
	if opt.Logger == nil {
		opt.Logger = zap.NewNop()
	}
	if opt.Now == nil {
		opt.Now = time.Now
	}
	if opt.Pick == nil {
		opt.Pick = rand.IntN
	}

	state := Load(opt.Store, opt.Catalog, opt.Pick)
	renderer := &Renderer{state: state, catalog: opt.Catalog, registry: opt.Registry}
	router := &Router{state: state, render: renderer.Render}
	actions := &Actions{
		state:    state,
		store:    opt.Store,
		catalog:  opt.Catalog,
		navigate: router.SetRoute,
		render:   renderer.Render,
		chrome:   renderer.RefreshChrome,
		events:   opt.Events,
		now:      opt.Now,
		log:      opt.Logger.With(zap.String("session", id)),
	}
	renderer.binder = NewBinder(actions)

	return &Session{
		id:       id,
		state:    state,
		router:   router,
		renderer: renderer,
		actions:  actions,
		now:      opt.Now,
		lastSeen: opt.Now(),
	}
}

func (s *Session) ID() string { return s.id }

// Navigate handles a location change and returns the new frame.
func (s *Session) Navigate(location string) Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = s.now()
	s.router.OnNavigate(location)
	return s.renderer.Frame()
}

// Outcome describes what a dispatch did.
type Outcome struct {
	Handled  bool  // the id was bound in the current frame
	Rendered bool  // the handler produced a new frame
	Frame    Frame // the frame after the handler ran
}

// Dispatch runs the handler bound to markerID by the current frame. An id that
// belongs to no marker of that frame (a stale page, a forged request) changes
// nothing.
func (s *Session) Dispatch(markerID string, ev Event) Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = s.now()
	h, ok := s.renderer.Handler(markerID)
	if !ok {
		return Outcome{Frame: s.renderer.Frame()}
	}
	before := s.renderer.Frame().Render
	h(ev)
	f := s.renderer.Frame()
	return Outcome{Handled: true, Rendered: f.Render != before, Frame: f}
}

func (s *Session) Frame() Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.renderer.Frame()
}

// Route is where the session currently is.
func (s *Session) Route() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Route
}

// Snapshot copies the state for read-only callers.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Snapshot(s.renderer.catalog)
}

func (s *Session) IdleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}
