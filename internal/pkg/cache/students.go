// Package cache provides a Redis-backed cache for the approved candidate
// list consumed by recruiter search. The whole list is invalidated on any
// status mutation; there is no incremental maintenance.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/haca/placement/internal/app/models"
)

const approvedStudentsKey = "students:approved"

// StudentCache caches the approved student list. A nil Redis client makes
// every operation a no-op, so the service runs without Redis configured.
type StudentCache struct {
	redis  *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

// NewStudentCache creates a StudentCache. redisClient may be nil.
func NewStudentCache(redisClient *redis.Client, ttl time.Duration, logger zerolog.Logger) *StudentCache {
	return &StudentCache{
		redis:  redisClient,
		ttl:    ttl,
		logger: logger,
	}
}

// GetApproved returns the cached approved list, or ok=false on miss or
// when caching is disabled. Cache errors degrade to a miss.
func (c *StudentCache) GetApproved(ctx context.Context) ([]*models.Student, bool) {
	if c.redis == nil {
		return nil, false
	}

	payload, err := c.redis.Get(ctx, approvedStudentsKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn().Err(err).Msg("Failed to read approved student cache")
		}
		return nil, false
	}

	var students []*models.Student
	if err := json.Unmarshal(payload, &students); err != nil {
		c.logger.Warn().Err(err).Msg("Corrupt approved student cache entry, dropping")
		c.Invalidate(ctx)
		return nil, false
	}

	return students, true
}

// SetApproved stores the approved list with the configured TTL
func (c *StudentCache) SetApproved(ctx context.Context, students []*models.Student) {
	if c.redis == nil {
		return
	}

	payload, err := json.Marshal(students)
	if err != nil {
		c.logger.Warn().Err(err).Msg("Failed to marshal approved students for cache")
		return
	}

	if err := c.redis.Set(ctx, approvedStudentsKey, payload, c.ttl).Err(); err != nil {
		c.logger.Warn().Err(err).Msg("Failed to write approved student cache")
	}
}

// Invalidate drops the cached list. Called after any status mutation.
func (c *StudentCache) Invalidate(ctx context.Context) {
	if c.redis == nil {
		return
	}

	if err := c.redis.Del(ctx, approvedStudentsKey).Err(); err != nil {
		c.logger.Warn().Err(err).Msg("Failed to invalidate approved student cache")
	}
}
