package eastmoney

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/al2work/huangjin/internal/feature/spot/adapters/eastmoney/dto"
	"github.com/al2work/huangjin/internal/feature/spot/domain/entity"
	"github.com/al2work/huangjin/internal/feature/spot/usecase"
)

// quoteFields is the fixed field list requested from the quote endpoint:
// latest, code, name, open, high, change amount, change percent.
const quoteFields = "f43,f57,f58,f46,f44,f169,f170"

// EastmoneyQuote is a QuoteRepository implementation backed by the
// Eastmoney push quote API.
type EastmoneyQuote struct {
	cfg    Config
	client *http.Client
}

// Compile-time check that EastmoneyQuote implements QuoteRepository.
var _ usecase.QuoteRepository = (*EastmoneyQuote)(nil)

// NewEastmoneyQuote creates a new EastmoneyQuote with the given
// configuration and HTTP client.
func NewEastmoneyQuote(cfg Config, client *http.Client) *EastmoneyQuote {
	return &EastmoneyQuote{cfg: cfg, client: client}
}

// GetQuote fetches the latest quote fields for one security id.
func (e *EastmoneyQuote) GetQuote(ctx context.Context, secID string) (entity.Quote, error) {
	q := url.Values{}
	q.Set("invt", "2")
	q.Set("fltt", "2")
	q.Set("fields", quoteFields)
	q.Set("secid", secID)

	u := fmt.Sprintf("%s/api/qt/stock/get?%s", e.cfg.BaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return entity.Quote{}, err
	}
	req.Header.Set("Referer", e.cfg.Referer)

	res, err := e.client.Do(req)
	if err != nil {
		return entity.Quote{}, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return entity.Quote{}, fmt.Errorf("eastmoney http %d", res.StatusCode)
	}

	var body dto.QuoteResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return entity.Quote{}, fmt.Errorf("eastmoney decode: %w", err)
	}
	if body.Data == nil {
		return entity.Quote{}, fmt.Errorf("eastmoney: no data for secid %q", secID)
	}

	return entity.Quote{
		Price:         body.Data.Latest,
		Change:        body.Data.Change,
		ChangePercent: body.Data.ChangePercent,
	}, nil
}
