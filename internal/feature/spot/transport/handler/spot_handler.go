// Package handler provides the HTTP handlers for the spot feature.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/al2work/huangjin/internal/feature/spot/domain/entity"
	"github.com/al2work/huangjin/internal/feature/spot/transport/http/dto"
)

// SpotUsecase defines the usecase interface consumed by this handler.
type SpotUsecase interface {
	GetQuotes(ctx context.Context) (map[string]entity.Quote, error)
}

// SpotHandler serves the live spot price endpoint.
type SpotHandler struct {
	uc SpotUsecase
}

// NewSpotHandler creates a new SpotHandler with the given usecase.
func NewSpotHandler(uc SpotUsecase) *SpotHandler {
	return &SpotHandler{uc: uc}
}

// GetPricesHandler returns the current spot quote snapshot as JSON,
// keyed by instrument (GOLD, SILVER, PLATINUM).
//
// Endpoint:
// GET /prices
func (h *SpotHandler) GetPricesHandler(c *gin.Context) {
	quotes, err := h.uc.GetQuotes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error()})
		return
	}

	out := make(map[string]dto.QuoteResponse, len(quotes))
	for k, q := range quotes {
		out[k] = dto.QuoteResponse{
			Symbol:        q.Symbol,
			Name:          q.Name,
			Price:         q.Price,
			Change:        q.Change,
			ChangePercent: q.ChangePercent,
			Timestamp:     q.Timestamp,
		}
	}

	c.JSON(http.StatusOK, out)
}
