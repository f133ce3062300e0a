package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/skapefps/unimap-api/internal/models"
	appErrors "github.com/skapefps/unimap-api/pkg/errors"
)

type dashboardRepository interface {
	Stats(ctx context.Context) (*models.DashboardStats, error)
}

const dashboardCacheKey = "dash:stats"

// DashboardService composes the admin dashboard entity counts, caching
// the result to keep the landing page cheap.
type DashboardService struct {
	repo     dashboardRepository
	cache    *CacheService
	cacheTTL time.Duration
	logger   *zap.Logger
	now      func() time.Time
}

// NewDashboardService constructs a DashboardService.
func NewDashboardService(repo dashboardRepository, cache *CacheService, cacheTTL time.Duration, logger *zap.Logger) *DashboardService {
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{repo: repo, cache: cache, cacheTTL: cacheTTL, logger: logger, now: time.Now}
}

// Stats returns entity counts and indicates cache utilisation.
func (s *DashboardService) Stats(ctx context.Context) (*models.DashboardStats, bool, error) {
	if s.cache != nil {
		var cached models.DashboardStats
		if hit, err := s.cache.Get(ctx, dashboardCacheKey, &cached); err == nil && hit {
			return &cached, true, nil
		}
	}

	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load dashboard stats")
	}
	stats.GeneratedAt = s.now().UTC()

	if s.cache != nil {
		if err := s.cache.Set(ctx, dashboardCacheKey, stats, s.cacheTTL); err != nil {
			s.logger.Warn("dashboard cache write failed", zap.Error(err))
		}
	}
	return stats, false, nil
}

// Invalidate drops the cached counts, called after imports and batch
// mutations.
func (s *DashboardService) Invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, dashboardCacheKey); err != nil {
		s.logger.Warn("dashboard cache invalidate failed", zap.Error(err))
	}
}
