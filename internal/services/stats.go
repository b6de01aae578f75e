package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/kikoolz/desishub-assessment-app/internal/metrics"
	"github.com/kikoolz/desishub-assessment-app/internal/models"
	"github.com/kikoolz/desishub-assessment-app/internal/repositories"
)

const statsCacheKey = "assessment:stats:dashboard"

type StatsService interface {
	Get(ctx context.Context) (*models.DashboardStats, error)
	Invalidate(ctx context.Context) error
}

type statsService struct {
	repo repositories.CandidateRepository
	rdb  *redis.Client
	ttl  time.Duration
	now  func() time.Time
	log  *zap.Logger
}

// NewStatsService caches dashboard statistics in Redis. A nil client
// disables caching.
func NewStatsService(repo repositories.CandidateRepository, rdb *redis.Client, ttl time.Duration, log *zap.Logger) StatsService {
	return &statsService{
		repo: repo,
		rdb:  rdb,
		ttl:  ttl,
		now:  time.Now,
		log:  log,
	}
}

func (s *statsService) Get(ctx context.Context) (*models.DashboardStats, error) {
	if cached, ok := s.cached(ctx); ok {
		return cached, nil
	}

	stats, err := s.compute()
	if err != nil {
		return nil, err
	}

	if s.rdb != nil && s.ttl > 0 {
		if data, err := json.Marshal(stats); err == nil {
			if err := s.rdb.Set(ctx, statsCacheKey, data, s.ttl).Err(); err != nil {
				s.log.Warn("⚠️  Failed to cache stats", zap.Error(err))
			}
		}
	}

	return stats, nil
}

func (s *statsService) Invalidate(ctx context.Context) error {
	if s.rdb == nil {
		return nil
	}
	if err := s.rdb.Del(ctx, statsCacheKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate stats cache: %w", err)
	}
	return nil
}

func (s *statsService) cached(ctx context.Context) (*models.DashboardStats, bool) {
	if s.rdb == nil {
		return nil, false
	}

	data, err := s.rdb.Get(ctx, statsCacheKey).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		metrics.StatsCacheRequests.WithLabelValues("miss").Inc()
		return nil, false
	case err != nil:
		metrics.StatsCacheRequests.WithLabelValues("error").Inc()
		s.log.Warn("⚠️  Stats cache unavailable", zap.Error(err))
		return nil, false
	}

	var stats models.DashboardStats
	if err := json.Unmarshal(data, &stats); err != nil {
		metrics.StatsCacheRequests.WithLabelValues("error").Inc()
		return nil, false
	}

	metrics.StatsCacheRequests.WithLabelValues("hit").Inc()
	return &stats, true
}

func (s *statsService) compute() (*models.DashboardStats, error) {
	counts, err := s.repo.CountByTier()
	if err != nil {
		return nil, err
	}

	weekly, err := s.repo.CountSince(s.now().AddDate(0, 0, -7))
	if err != nil {
		return nil, err
	}

	stats := &models.DashboardStats{
		WeeklyCount:      weekly,
		TierDistribution: make([]models.TierCount, 5),
	}
	for t := range stats.TierDistribution {
		stats.TierDistribution[t].Tier = t
	}

	var tierSum int64
	for _, c := range counts {
		if c.Tier >= 0 && c.Tier < len(stats.TierDistribution) {
			stats.TierDistribution[c.Tier].Count = c.Count
		}
		stats.TotalCandidates += c.Count
		tierSum += int64(c.Tier) * c.Count
	}

	stats.Tier4Count = stats.TierDistribution[4].Count
	if stats.TotalCandidates > 0 {
		stats.AvgTier = float64(tierSum) / float64(stats.TotalCandidates)
	}

	return stats, nil
}
