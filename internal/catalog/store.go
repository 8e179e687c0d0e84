package catalog

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Store holds the normalized plugin collection for a session. It is built
// once at start-up and shared by every consumer; the collection is loaded
// at most once and never modified afterwards.
type Store struct {
	source Source
	scorer Scorer
	logger *zap.Logger
	notify ReportFunc

	mu       sync.RWMutex
	plugins  []Plugin
	loading  bool
	phase    Phase
	err      error
	inflight chan struct{}
}

// StoreOption configures a Store
type StoreOption func(*Store)

// WithScorer sets the scorer used for placeholder fields
func WithScorer(scorer Scorer) StoreOption {
	return func(s *Store) {
		s.scorer = scorer
	}
}

// WithLogger sets the store logger
func WithLogger(logger *zap.Logger) StoreOption {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithPhaseHook registers fn to be called on every phase change
func WithPhaseHook(fn ReportFunc) StoreOption {
	return func(s *Store) {
		s.notify = fn
	}
}

// NewStore creates an empty store backed by source
func NewStore(source Source, opts ...StoreOption) *Store {
	s := &Store{
		source:  source,
		loading: true,
		phase:   PhaseIdle,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.scorer == nil {
		s.scorer = NewRandomScorer()
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	return s
}

// Load fetches and normalizes the catalogue unless it is already loaded.
// Callers arriving while a load is running wait for that load instead of
// starting another fetch and share its outcome, including an error caused
// by the first caller's context. A failure is kept in Err and also
// returned; the phase goes back to idle and the collection stays empty so
// Load may be called again.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	if len(s.plugins) > 0 {
		s.loading = false
		s.mu.Unlock()
		return nil
	}
	if wait := s.inflight; wait != nil {
		s.mu.Unlock()
		select {
		case <-wait:
		case <-ctx.Done():
			return ctx.Err()
		}
		s.mu.RLock()
		defer s.mu.RUnlock()
		return s.err
	}

	done := make(chan struct{})
	s.inflight = done
	s.loading = true
	s.err = nil
	s.mu.Unlock()

	records, err := s.source.Fetch(ctx, s.setPhase)

	var plugins []Plugin
	if err == nil {
		plugins = NormalizeAll(records, s.scorer)
	}

	s.mu.Lock()
	if err != nil {
		s.err = err
		s.phase = PhaseIdle
		s.logger.Error("failed to load plugin data", zap.Error(err))
	} else {
		s.plugins = plugins
		s.phase = PhaseDone
		s.logger.Debug("plugin data loaded", zap.Int("plugins", len(plugins)))
	}
	s.loading = false
	s.inflight = nil
	close(done)
	s.mu.Unlock()

	if err == nil && s.notify != nil {
		s.notify(PhaseDone)
	}
	return err
}

func (s *Store) setPhase(p Phase) {
	s.mu.Lock()
	s.phase = p
	s.mu.Unlock()
	s.logger.Debug("load phase", zap.Stringer("phase", p))
	if s.notify != nil {
		s.notify(p)
	}
}

// IsLoading reports whether the catalogue has not finished loading
func (s *Store) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Phase returns the current load phase
func (s *Store) Phase() Phase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.phase
}

// LoadingStatus returns the progress message of the current phase
func (s *Store) LoadingStatus() string {
	return s.Phase().Message()
}

// Err returns the message of the last load failure, or "" if none
func (s *Store) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.err == nil {
		return ""
	}
	return s.err.Error()
}

// LastError returns the last load failure
func (s *Store) LastError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// Plugins returns a snapshot of the collection
func (s *Store) Plugins() []Plugin {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Plugin, len(s.plugins))
	copy(out, s.plugins)
	return out
}

// Len returns the number of loaded plugins
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.plugins)
}

// Find returns the plugin with the given id
func (s *Store) Find(id string) (Plugin, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.plugins {
		if p.ID == id {
			return p, nil
		}
	}
	return Plugin{}, ErrPluginNotFound
}
