// Package usecase implements the business logic for the history feature:
// incremental ingestion of benchmark fixing data, reconciliation into a
// per-symbol time series, and OHLC candlestick derivation.
package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/al2work/huangjin/internal/feature/history/domain/entity"
	"github.com/al2work/huangjin/internal/platform/store"
)

// Supported history symbols.
const (
	SymbolGold   = "GOLD"
	SymbolSilver = "SILVER"
)

const (
	// DefaultRefreshInterval is the maximum age of a cached series
	// before a request triggers an incremental fetch.
	DefaultRefreshInterval = 5 * time.Minute
	// DefaultBaseDate is the backfill start for an empty store: the day
	// the Shanghai benchmark price was first published.
	DefaultBaseDate = "2016-04-19"
)

// symbols lists the instruments served by this feature, in warmup order.
var symbols = []string{SymbolGold, SymbolSilver}

// BenchmarkRepository abstracts the upstream benchmark fixing feed.
// Following Go convention, the interface is defined by the consumer
// (usecase), not the provider (adapters).
type BenchmarkRepository interface {
	// FetchDailyFixes returns all fixing observations from startDate
	// ("2006-01-02", inclusive) to the present.
	FetchDailyFixes(ctx context.Context, symbol, startDate string) (entity.FixSeries, error)
}

// HistoryUsecase owns the per-symbol refresh decision and serves
// period-windowed candlestick slices from the shared series store.
type HistoryUsecase struct {
	benchmark       BenchmarkRepository
	store           *store.SeriesStore
	refreshInterval time.Duration
	baseDate        string
	now             func() time.Time

	mu    sync.Mutex
	locks map[string]*sync.Mutex // per-symbol refresh locks
}

// NewHistoryUsecase creates a HistoryUsecase. Zero refreshInterval and
// empty baseDate fall back to the defaults.
func NewHistoryUsecase(benchmark BenchmarkRepository, st *store.SeriesStore, refreshInterval time.Duration, baseDate string) *HistoryUsecase {
	if refreshInterval <= 0 {
		refreshInterval = DefaultRefreshInterval
	}
	if baseDate == "" {
		baseDate = DefaultBaseDate
	}
	return &HistoryUsecase{
		benchmark:       benchmark,
		store:           st,
		refreshInterval: refreshInterval,
		baseDate:        baseDate,
		now:             time.Now,
		locks:           map[string]*sync.Mutex{},
	}
}

// Symbols returns the supported history symbols.
func (hu *HistoryUsecase) Symbols() []string {
	out := make([]string, len(symbols))
	copy(out, symbols)
	return out
}

// GetHistory returns the trailing candlestick window for symbol and
// period, refreshing the underlying series first when it is empty or
// stale. Unsupported symbols yield an empty slice. A refresh failure is
// downgraded to serving the last good cache; only an empty cache
// combined with a failed fetch returns ErrNoData.
func (hu *HistoryUsecase) GetHistory(ctx context.Context, symbol, period string) ([]entity.Candle, error) {
	if !supported(symbol) {
		return []entity.Candle{}, nil
	}

	hu.Refresh(ctx, symbol)

	entry, ok := hu.store.Get(symbol)
	if !ok {
		return nil, ErrNoData
	}
	return SelectWindow(ToCandles(entry.Series, symbol), period), nil
}

// Refresh fetches and merges new observations for symbol if the stored
// series is missing or older than the refresh interval. A fetch failure
// leaves the store untouched so the staleness window re-triggers the
// attempt on the next request.
func (hu *HistoryUsecase) Refresh(ctx context.Context, symbol string) {
	if !supported(symbol) {
		return
	}

	// At most one in-flight fetch per symbol; followers re-check
	// freshness under the lock and skip the duplicate network call.
	lock := hu.symbolLock(symbol)
	lock.Lock()
	defer lock.Unlock()

	entry, ok := hu.store.Get(symbol)
	if ok && hu.now().Sub(entry.FetchedAt) < hu.refreshInterval {
		return
	}

	// Re-request from the last stored trading day (inclusive) so a
	// correction to that day's fixing is picked up along with newer
	// days. An empty store backfills from the base date.
	start := hu.baseDate
	if ok && len(entry.Series.Morning) > 0 {
		start = dayLabel(entry.Series.Morning[len(entry.Series.Morning)-1].TimestampMS)
	}

	incoming, err := hu.benchmark.FetchDailyFixes(ctx, symbol, start)
	if err != nil {
		slog.Warn("benchmark fetch failed, serving cached series", "symbol", symbol, "start", start, "error", err)
		return
	}

	hu.store.Put(symbol, MergeSeries(entry.Series, incoming), hu.now())
}

// symbolLock returns the refresh lock for symbol, creating it on first use.
func (hu *HistoryUsecase) symbolLock(symbol string) *sync.Mutex {
	hu.mu.Lock()
	defer hu.mu.Unlock()
	l, ok := hu.locks[symbol]
	if !ok {
		l = &sync.Mutex{}
		hu.locks[symbol] = l
	}
	return l
}

func supported(symbol string) bool {
	for _, s := range symbols {
		if s == symbol {
			return true
		}
	}
	return false
}
