package infrastructure

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"shopfront/internal/config"
)

// AttemptLimiter counts signup/signin attempts per identifier in a fixed
// window backed by Redis. When Redis is not configured or unreachable the
// limiter is disabled and allows everything.
type AttemptLimiter struct {
	client *redis.Client
	window time.Duration
	max    int
}

func NewAttemptLimiter(cfg *config.Config) *AttemptLimiter {
	limiter := &AttemptLimiter{
		window: cfg.AttemptWindow,
		max:    cfg.AttemptMax,
	}

	if cfg.RedisAddr == "" {
		log.Println("attempt limiter disabled: no Redis address configured")
		return limiter
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("attempt limiter disabled: Redis connection failed: %v", err)
		return limiter
	}

	limiter.client = client
	return limiter
}

// Allow records an attempt for the identifier and reports whether it is
// within the limit. Redis errors do not block the request.
func (l *AttemptLimiter) Allow(ctx context.Context, identifier string) bool {
	if l.client == nil {
		return true
	}

	key := "attempts:" + identifier
	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		log.Printf("attempt limiter Redis error: %v", err)
		return true
	}
	if count == 1 {
		l.client.Expire(ctx, key, l.window)
	}
	return count <= int64(l.max)
}
