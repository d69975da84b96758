// Package usecase implements the daily visit counter for the heat
// feature.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// DefaultNamespace prefixes the per-day Redis keys.
	DefaultNamespace = "heat"
	// keyTTL keeps yesterday's key around briefly and then lets Redis
	// reclaim it; the counter itself resets at local midnight via the
	// date in the key.
	keyTTL = 48 * time.Hour
)

// HeatUsecase counts today's visits. With Redis configured the count is
// an INCR on a per-day key; without it the usecase degrades to an
// in-process counter, mirroring how the rest of the service runs when
// the cache is unavailable.
type HeatUsecase struct {
	rdb       *redis.Client
	namespace string
	loc       *time.Location
	now       func() time.Time

	mu       sync.Mutex
	memDate  string
	memCount int64
}

// NewHeatUsecase creates a HeatUsecase. rdb may be nil. An empty
// namespace falls back to DefaultNamespace.
func NewHeatUsecase(rdb *redis.Client, namespace string) *HeatUsecase {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	loc, err := time.LoadLocation("Asia/Shanghai")
	if err != nil {
		loc = time.FixedZone("CST", 8*3600)
	}
	return &HeatUsecase{rdb: rdb, namespace: namespace, loc: loc, now: time.Now}
}

// Count returns today's visit count.
func (hu *HeatUsecase) Count(ctx context.Context) (int64, error) {
	if hu.rdb == nil {
		return hu.memCountToday(), nil
	}
	n, err := hu.rdb.Get(ctx, hu.key()).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return n, nil
}

// Increment adds one visit and returns the new count.
func (hu *HeatUsecase) Increment(ctx context.Context) (int64, error) {
	if hu.rdb == nil {
		return hu.memIncrement(), nil
	}
	key := hu.key()
	n, err := hu.rdb.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if n == 1 {
		// First visit of the day creates the key; bound its lifetime.
		_ = hu.rdb.Expire(ctx, key, keyTTL).Err()
	}
	return n, nil
}

// key returns the Redis key for today, e.g. "heat:2026-09-01". The day
// boundary follows the site's audience timezone.
func (hu *HeatUsecase) key() string {
	return fmt.Sprintf("%s:%s", hu.namespace, hu.today())
}

func (hu *HeatUsecase) today() string {
	return hu.now().In(hu.loc).Format("2006-01-02")
}

func (hu *HeatUsecase) memCountToday() int64 {
	hu.mu.Lock()
	defer hu.mu.Unlock()
	if hu.memDate != hu.today() {
		return 0
	}
	return hu.memCount
}

func (hu *HeatUsecase) memIncrement() int64 {
	hu.mu.Lock()
	defer hu.mu.Unlock()
	if today := hu.today(); hu.memDate != today {
		hu.memDate = today
		hu.memCount = 0
	}
	hu.memCount++
	return hu.memCount
}
