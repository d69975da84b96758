package usecase

import (
	"context"

	"github.com/al2work/huangjin/internal/shared/ratelimiter"
)

// BackfillUsecase warms the series store for every supported symbol,
// spacing the upstream requests through a rate limiter. It is invoked
// at startup and from the background scheduler; the on-demand refresh
// in HistoryUsecase remains the correctness path.
type BackfillUsecase struct {
	history     *HistoryUsecase
	rateLimiter ratelimiter.RateLimiterInterface
}

// NewBackfillUsecase creates a new BackfillUsecase.
func NewBackfillUsecase(history *HistoryUsecase, rateLimiter ratelimiter.RateLimiterInterface) *BackfillUsecase {
	return &BackfillUsecase{history: history, rateLimiter: rateLimiter}
}

// BackfillAll refreshes every supported symbol in order. Failures are
// absorbed by Refresh (logged, cache kept), so one bad symbol never
// blocks the rest.
func (bu *BackfillUsecase) BackfillAll(ctx context.Context) {
	for _, s := range bu.history.Symbols() {
		bu.rateLimiter.WaitIfNeeded()
		bu.history.Refresh(ctx, s)
	}
}
