package register

import (
	"context"
	"log/slog"

	"prisonerprofile/internal/platform/config"
	"prisonerprofile/internal/platform/metrics"
	"prisonerprofile/pkg/domain"
)

// Cache is the narrow cache-aside interface the service depends on. The
// snapshot is always read and written whole.
type Cache interface {
	GetActivePrisons(ctx context.Context) ([]Prison, error)
	SetActivePrisons(ctx context.Context, prisons []Prison, durationDays int) error
}

// API is the source-of-truth register lookup.
type API interface {
	GetPrisons(ctx context.Context, token string) ([]Prison, error)
}

// Service resolves prison display names, cache first. Enrichment is always
// best-effort: every failure path degrades to "not found" so a page renders
// an unresolved prison id rather than failing.
type Service struct {
	cache  Cache
	api    API
	logger *slog.Logger
}

// NewService builds the register service. cache may be nil when Redis is not
// configured; every read then falls through to the API.
func NewService(cache Cache, api API, logger *slog.Logger) *Service {
	return &Service{cache: cache, api: api, logger: logger}
}

// PrisonName resolves prisonID to its register record. The second return is
// false when the prison cannot be resolved, whether because it is unknown or
// because both cache and API are unavailable.
func (s *Service) PrisonName(ctx context.Context, token string, prisonID domain.PrisonID) (Prison, bool) {
	if cached, ok := s.fromCache(ctx, prisonID); ok {
		return cached, true
	}

	prisons, err := s.api.GetPrisons(ctx, token)
	if err != nil {
		s.logger.WarnContext(ctx, "prison register lookup failed",
			"prison_id", prisonID.String(),
			"error", err,
		)
		return Prison{}, false
	}

	s.writeBack(ctx, prisons)

	// Match active establishments only, same as the cached snapshot.
	for _, p := range prisons {
		if p.Active && p.PrisonID == prisonID.String() {
			return p, true
		}
	}
	return Prison{}, false
}

// fromCache attempts the cache read. A read failure is treated as a miss: the
// service owns the fallback to the source of truth.
func (s *Service) fromCache(ctx context.Context, prisonID domain.PrisonID) (Prison, bool) {
	if s.cache == nil {
		return Prison{}, false
	}

	prisons, err := s.cache.GetActivePrisons(ctx)
	if err != nil {
		metrics.RegisterCacheOutcome("read_error")
		s.logger.WarnContext(ctx, "register cache read failed",
			"prison_id", prisonID.String(),
			"error", err,
		)
		return Prison{}, false
	}

	for _, p := range prisons {
		if p.PrisonID == prisonID.String() {
			metrics.RegisterCacheOutcome("hit")
			return p, true
		}
	}
	metrics.RegisterCacheOutcome("miss")
	return Prison{}, false
}

// writeBack refreshes the cached snapshot with the active establishments. A
// write failure is logged and swallowed: caching is an optimization and must
// never fail the read path that triggered it.
func (s *Service) writeBack(ctx context.Context, prisons []Prison) {
	if s.cache == nil {
		return
	}
	active := make([]Prison, 0, len(prisons))
	for _, p := range prisons {
		if p.Active {
			active = append(active, p)
		}
	}
	if err := s.cache.SetActivePrisons(ctx, active, config.RegisterCacheTTLDays); err != nil {
		metrics.RegisterCacheOutcome("write_error")
		s.logger.WarnContext(ctx, "register cache write failed", "error", err)
	}
}
