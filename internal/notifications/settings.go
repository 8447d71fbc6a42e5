// Package notifications delivers shipment status updates to the sender
// and receiver over email and SMS. Delivery is best effort: a failed or
// unconfigured channel is logged and never surfaces to the operation
// that triggered it.
package notifications

import (
	"context"
	"log/slog"
	"sync"

	"courier/internal/core/domain/model/notification"
	"courier/internal/core/ports"
)

// Store resolves the effective notification settings: environment
// defaults overlaid with the admin-managed database row. The merged
// result is cached in-process; Invalidate drops the cache after every
// config write.
type Store struct {
	base notification.Config
	repo ports.NotificationConfigRepository
	log  *slog.Logger

	mu     sync.RWMutex
	cached *notification.Config
}

// NewStore creates a settings store over the given environment defaults
// and config repository.
func NewStore(base notification.Config, repo ports.NotificationConfigRepository, log *slog.Logger) *Store {
	return &Store{
		base: base,
		repo: repo,
		log:  log,
	}
}

// Settings returns the effective configuration. A database read failure
// is logged and the environment defaults are used, so notification
// delivery keeps working while the config table is unreachable.
func (s *Store) Settings(ctx context.Context) notification.Config {
	s.mu.RLock()
	if s.cached != nil {
		cfg := *s.cached
		s.mu.RUnlock()
		return cfg
	}
	s.mu.RUnlock()

	stored, err := s.repo.Get(ctx)
	if err != nil {
		s.log.Error("failed to read notification config, using environment defaults", "error", err)
		return s.base
	}

	merged := stored.MergeInto(s.base)

	s.mu.Lock()
	s.cached = &merged
	s.mu.Unlock()

	return merged
}

// Invalidate drops the cached configuration so the next Settings call
// re-reads the stored row.
func (s *Store) Invalidate() {
	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()
}
