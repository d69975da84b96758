// Package usecase implements the business logic for the spot feature:
// a poll-and-cache loop over the live quote aggregator.
package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/al2work/huangjin/internal/feature/spot/domain/entity"
)

// DefaultCacheTTL is the maximum age of a cached snapshot before a
// request polls the aggregator again.
const DefaultCacheTTL = 30 * time.Second

// instrument binds a response key to the aggregator security id and the
// display identity of the instrument.
type instrument struct {
	Key    string // response map key (GOLD, SILVER, PLATINUM)
	SecID  string // aggregator security id
	Symbol string
	Name   string
}

// instruments lists the quoted instruments. SGE products carry market
// code 118 at the aggregator.
var instruments = []instrument{
	{Key: "GOLD", SecID: "118.AU9999", Symbol: "Au99.99", Name: "黄金9999"},
	{Key: "SILVER", SecID: "118.AGTD", Symbol: "Ag(T+D)", Name: "白银T+D"},
	{Key: "PLATINUM", SecID: "118.PT9995", Symbol: "Pt99.95", Name: "铂金9995"},
}

// QuoteRepository abstracts the live quote aggregator. Defined on the
// consumer side per Go convention.
type QuoteRepository interface {
	// GetQuote returns the latest price fields for one security id.
	GetQuote(ctx context.Context, secID string) (entity.Quote, error)
}

// SpotUsecase polls the aggregator for all instruments and caches the
// snapshot in memory for a short TTL. A failed poll falls back to the
// last good snapshot.
type SpotUsecase struct {
	quotes QuoteRepository
	ttl    time.Duration
	now    func() time.Time

	mu        sync.Mutex
	snapshot  map[string]entity.Quote
	fetchedAt time.Time
}

// NewSpotUsecase creates a SpotUsecase. A zero ttl falls back to
// DefaultCacheTTL.
func NewSpotUsecase(quotes QuoteRepository, ttl time.Duration) *SpotUsecase {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &SpotUsecase{quotes: quotes, ttl: ttl, now: time.Now}
}

// GetQuotes returns the current snapshot of all instrument quotes,
// polling the aggregator when the cache is older than the TTL. When
// every fetch fails the previous snapshot is served; ErrNoQuotes is
// returned only if there is nothing cached either.
func (su *SpotUsecase) GetQuotes(ctx context.Context) (map[string]entity.Quote, error) {
	su.mu.Lock()
	defer su.mu.Unlock()

	if su.snapshot != nil && su.now().Sub(su.fetchedAt) < su.ttl {
		return copySnapshot(su.snapshot), nil
	}
	return su.refreshLocked(ctx)
}

// Refresh polls the aggregator unconditionally. Used by the background
// scheduler to keep the cache warm.
func (su *SpotUsecase) Refresh(ctx context.Context) error {
	su.mu.Lock()
	defer su.mu.Unlock()
	_, err := su.refreshLocked(ctx)
	return err
}

func (su *SpotUsecase) refreshLocked(ctx context.Context) (map[string]entity.Quote, error) {
	type result struct {
		key   string
		quote entity.Quote
		err   error
	}

	results := make([]result, len(instruments))
	var wg sync.WaitGroup
	for i, ins := range instruments {
		wg.Add(1)
		go func(i int, ins instrument) {
			defer wg.Done()
			q, err := su.quotes.GetQuote(ctx, ins.SecID)
			results[i] = result{key: ins.Key, quote: q, err: err}
		}(i, ins)
	}
	wg.Wait()

	now := su.now().UnixMilli()
	fresh := map[string]entity.Quote{}
	failures := 0
	for i, r := range results {
		if r.err != nil {
			failures++
			slog.Warn("spot quote fetch failed", "secid", instruments[i].SecID, "error", r.err)
			// Keep the instrument's previous quote if we have one.
			if prev, ok := su.snapshot[r.key]; ok {
				fresh[r.key] = prev
			} else {
				fresh[r.key] = entity.Quote{Symbol: instruments[i].Symbol, Name: instruments[i].Name, Timestamp: now}
			}
			continue
		}
		q := r.quote
		q.Symbol = instruments[i].Symbol
		q.Name = instruments[i].Name
		q.Timestamp = now
		fresh[r.key] = q
	}

	if failures == len(instruments) {
		if su.snapshot != nil {
			return copySnapshot(su.snapshot), nil
		}
		return nil, ErrNoQuotes
	}

	su.snapshot = fresh
	su.fetchedAt = su.now()
	return copySnapshot(fresh), nil
}

func copySnapshot(in map[string]entity.Quote) map[string]entity.Quote {
	out := make(map[string]entity.Quote, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
