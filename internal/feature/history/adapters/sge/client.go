package sge

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/al2work/huangjin/internal/feature/history/adapters/sge/dto"
	"github.com/al2work/huangjin/internal/feature/history/domain/entity"
	"github.com/al2work/huangjin/internal/feature/history/usecase"
)

// seriesPaths maps a symbol to the provider path of its benchmark series.
var seriesPaths = map[string]string{
	usecase.SymbolGold:   "/graph/DayilyJzj",
	usecase.SymbolSilver: "/graph/DayilyShsilverJzj",
}

// userAgent is a fixed browser identity; the feed rejects requests
// without one.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// SGEBenchmark is a BenchmarkRepository implementation backed by the
// exchange's daily benchmark price endpoints.
type SGEBenchmark struct {
	cfg    Config
	client *http.Client
}

// Compile-time check that SGEBenchmark implements BenchmarkRepository.
var _ usecase.BenchmarkRepository = (*SGEBenchmark)(nil)

// NewSGEBenchmark creates a new SGEBenchmark with the given configuration
// and HTTP client.
func NewSGEBenchmark(cfg Config, client *http.Client) *SGEBenchmark {
	return &SGEBenchmark{cfg: cfg, client: client}
}

// FetchDailyFixes posts the start date to the symbol's series path and
// returns the parsed observations. Network errors, non-2xx statuses and
// malformed bodies all surface as plain errors; the caller does not
// distinguish the causes.
func (s *SGEBenchmark) FetchDailyFixes(ctx context.Context, symbol, startDate string) (entity.FixSeries, error) {
	path, ok := seriesPaths[symbol]
	if !ok {
		return entity.FixSeries{}, fmt.Errorf("sge: no series path for symbol %q", symbol)
	}

	form := url.Values{}
	form.Set("start", startDate)
	form.Set("end", "")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.BaseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return entity.FixSeries{}, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=UTF-8")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	req.Header.Set("Referer", s.cfg.Referer)

	res, err := s.client.Do(req)
	if err != nil {
		return entity.FixSeries{}, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return entity.FixSeries{}, fmt.Errorf("sge http %d", res.StatusCode)
	}

	var body dto.DailyFixResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return entity.FixSeries{}, fmt.Errorf("sge decode: %w", err)
	}

	morning, err := toObservations(body.Zp)
	if err != nil {
		return entity.FixSeries{}, fmt.Errorf("sge zp channel: %w", err)
	}
	afternoon, err := toObservations(body.Wp)
	if err != nil {
		return entity.FixSeries{}, fmt.Errorf("sge wp channel: %w", err)
	}
	return entity.FixSeries{Morning: morning, Afternoon: afternoon}, nil
}

// toObservations validates the raw [timestamp, price] pairs of one
// channel. A pair of unexpected length is a shape mismatch, not data to
// coerce.
func toObservations(pairs [][]float64) ([]entity.Observation, error) {
	out := make([]entity.Observation, 0, len(pairs))
	for i, p := range pairs {
		if len(p) != 2 {
			return nil, fmt.Errorf("pair %d has %d elements, want 2", i, len(p))
		}
		out = append(out, entity.Observation{TimestampMS: int64(p[0]), Price: p[1]})
	}
	return out, nil
}
