// Package sampler observes a set of named counters on a fixed interval and
// serves cached snapshots between sweeps. A sequenced counter pays a lock
// and one sequence unit per live read, so observers that poll often should
// go through a sampler instead of hitting the counter directly.
package sampler

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/tedmax100/counterkit/counter"
)

// Sampler periodically reads every registered counter and keeps the last
// observed values in a TTL cache.
type Sampler struct {
	counters map[string]counter.Counter
	values   *cache.Cache
	interval time.Duration
	ttl      time.Duration
	logger   *zap.Logger
	ticker   *time.Ticker
	ctx      context.Context
	cancel   context.CancelFunc
}

type Option func(*Sampler)

// WithInterval sets the sweep interval.
func WithInterval(d time.Duration) Option {
	return func(s *Sampler) { s.interval = d }
}

// WithTTL sets how long a cached value counts as fresh.
func WithTTL(d time.Duration) Option {
	return func(s *Sampler) { s.ttl = d }
}

// WithLogger sets the logger; the default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Sampler) { s.logger = l }
}

// New builds a sampler over the given counters. The map is not copied;
// callers must not mutate it after construction.
func New(counters map[string]counter.Counter, opts ...Option) *Sampler {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Sampler{
		counters: counters,
		interval: time.Second,
		ttl:      2 * time.Second,
		logger:   zap.NewNop(),
		ctx:      ctx,
		cancel:   cancel,
	}
	for _, o := range opts {
		o(s)
	}
	s.values = cache.New(s.ttl, 10*s.ttl)
	// Created here, not in Run, so Stop never races the loop goroutine.
	s.ticker = time.NewTicker(s.interval)
	return s
}

// Run sweeps until Stop is called. Call it on its own goroutine.
func (s *Sampler) Run() {
	for {
		select {
		case <-s.ticker.C:
			s.sweep()
		case <-s.ctx.Done():
			return
		}
	}
}

func (s *Sampler) sweep() {
	for name, c := range s.counters {
		v := c.Value()
		s.values.Set(name, v, cache.DefaultExpiration)
		s.logger.Debug("sampled counter",
			zap.String("name", name),
			zap.Int64("value", v))
	}
}

// Snapshot returns the last observed value for name. Only when the cached
// value has expired does it read the counter live, caching the result. The
// second return is false for names that were never registered.
func (s *Sampler) Snapshot(name string) (int64, bool) {
	if v, ok := s.values.Get(name); ok {
		return v.(int64), true
	}

	c, ok := s.counters[name]
	if !ok {
		return 0, false
	}

	v := c.Value()
	s.values.Set(name, v, cache.DefaultExpiration)
	return v, true
}

// Stop halts the sweep loop.
func (s *Sampler) Stop() {
	s.ticker.Stop()
	s.cancel()
}
