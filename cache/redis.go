package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"chillgamer/models"

	"github.com/redis/go-redis/v9"
)

var (
	RedisClient *redis.Client
	ctx         = context.Background()
)

// InitRedis initializes Redis connection
func InitRedis() error {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "localhost:6379"
	}

	RedisClient = redis.NewClient(&redis.Options{
		Addr:         redisURL,
		Password:     os.Getenv("REDIS_PASSWORD"),
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := RedisClient.Ping(pingCtx).Result(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return nil
}

// CloseRedis closes Redis connection
func CloseRedis() error {
	if RedisClient != nil {
		return RedisClient.Close()
	}
	return nil
}

// IsRedisAvailable checks if Redis is connected
func IsRedisAvailable() bool {
	if RedisClient == nil {
		return false
	}
	_, err := RedisClient.Ping(ctx).Result()
	return err == nil
}

// ==================== CACHE KEYS ====================

const (
	ReviewCachePrefix    = "review:"          // review:<id>
	ReviewsCacheKey      = "reviews:all"      // full review list
	WatchlistCachePrefix = "watchlist:owner:" // watchlist:owner:<email>
)

// ==================== GENERIC CACHE OPERATIONS ====================

// Set stores any value in cache with TTL
func Set(key string, value interface{}, ttl time.Duration) error {
	if !IsRedisAvailable() {
		return fmt.Errorf("redis not available")
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	return RedisClient.Set(ctx, key, data, ttl).Err()
}

// Get retrieves value from cache
func Get(key string, dest interface{}) error {
	if !IsRedisAvailable() {
		return fmt.Errorf("redis not available")
	}

	val, err := RedisClient.Get(ctx, key).Result()
	if err == redis.Nil {
		return fmt.Errorf("cache miss")
	}
	if err != nil {
		return fmt.Errorf("failed to get value: %w", err)
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return fmt.Errorf("failed to unmarshal value: %w", err)
	}

	return nil
}

// Delete removes key from cache
func Delete(key string) error {
	if !IsRedisAvailable() {
		return nil
	}
	return RedisClient.Del(ctx, key).Err()
}

// ==================== REVIEW CACHING ====================

// GetReviewList returns the cached full review list
func GetReviewList() ([]models.Review, error) {
	var reviews []models.Review
	if err := Get(ReviewsCacheKey, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// SetReviewList caches the full review list for 5 minutes
func SetReviewList(reviews []models.Review) error {
	return Set(ReviewsCacheKey, reviews, 5*time.Minute)
}

// GetReview returns a cached single review
func GetReview(id string) (*models.Review, error) {
	var review models.Review
	if err := Get(ReviewCachePrefix+id, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

// SetReview caches a single review for 10 minutes
func SetReview(review models.Review) error {
	return Set(ReviewCachePrefix+review.ID, review, 10*time.Minute)
}

// InvalidateReview removes one review and the full list from cache.
// Every review mutation goes through here so list reads never serve a
// stale entry.
func InvalidateReview(id string) error {
	if err := Delete(ReviewCachePrefix + id); err != nil {
		return err
	}
	return Delete(ReviewsCacheKey)
}

// InvalidateReviewList removes the full review list cache
func InvalidateReviewList() error {
	return Delete(ReviewsCacheKey)
}

// ==================== WATCHLIST CACHING ====================

// GetWatchlist returns the cached watchlist for an owner
func GetWatchlist(email string) ([]models.WatchlistEntry, error) {
	var entries []models.WatchlistEntry
	if err := Get(WatchlistCachePrefix+email, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// SetWatchlist caches an owner's watchlist for 5 minutes
func SetWatchlist(email string, entries []models.WatchlistEntry) error {
	return Set(WatchlistCachePrefix+email, entries, 5*time.Minute)
}

// InvalidateWatchlist removes an owner's watchlist from cache
func InvalidateWatchlist(email string) error {
	return Delete(WatchlistCachePrefix + email)
}
