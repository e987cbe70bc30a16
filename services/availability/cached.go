// File: services/availability/cached.go
package availability

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"doctorsportal/models"
)

// Invalidator is what the conflict guard calls after an admission so a cached
// day never outlives a booking.
type Invalidator interface {
	Invalidate(ctx context.Context, date string) error
}

// CachedService wraps another availability Service with a per-date redis
// cache. Cache errors degrade to the wrapped service, never to a failure.
type CachedService struct {
	Next   Service
	Client *redis.Client
	TTL    time.Duration
	Logger *zap.Logger
}

func cacheKey(date string) string {
	return "availability:" + date
}

func (s *CachedService) GetAvailability(ctx context.Context, date string) ([]models.TreatmentAvailability, error) {
	key := cacheKey(date)

	if data, err := s.Client.Get(ctx, key).Bytes(); err == nil {
		var cached []models.TreatmentAvailability
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	result, err := s.Next.GetAvailability(ctx, date)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(result); err == nil {
		if err := s.Client.Set(ctx, key, data, s.TTL).Err(); err != nil && s.Logger != nil {
			s.Logger.Warn("failed to cache availability", zap.String("date", date), zap.Error(err))
		}
	}
	return result, nil
}

// Invalidate drops the cached availability for a date.
func (s *CachedService) Invalidate(ctx context.Context, date string) error {
	return s.Client.Del(ctx, cacheKey(date)).Err()
}
