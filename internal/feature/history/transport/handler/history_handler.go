// Package handler provides the HTTP handlers for the history feature.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/al2work/huangjin/internal/feature/history/domain/entity"
	"github.com/al2work/huangjin/internal/feature/history/transport/http/dto"
)

// HistoryUsecase defines the usecase interface consumed by this handler.
type HistoryUsecase interface {
	GetHistory(ctx context.Context, symbol, period string) ([]entity.Candle, error)
}

// HistoryHandler serves the historical candlestick endpoint.
type HistoryHandler struct {
	uc HistoryUsecase
}

// NewHistoryHandler creates a new HistoryHandler with the given usecase.
func NewHistoryHandler(uc HistoryUsecase) *HistoryHandler {
	return &HistoryHandler{uc: uc}
}

// GetHistoryHandler returns the candlestick window for a symbol and
// period as JSON.
//
// Endpoint:
// GET /history?symbol=GOLD&period=1m
func (h *HistoryHandler) GetHistoryHandler(c *gin.Context) {
	symbol := c.DefaultQuery("symbol", "GOLD")
	period := c.DefaultQuery("period", "1m")

	candles, err := h.uc.GetHistory(c.Request.Context(), symbol, period)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}

	data := make([]dto.CandleResponse, 0, len(candles))
	for _, x := range candles {
		data = append(data, dto.CandleResponse{
			Time:  x.Time,
			Open:  x.Open,
			High:  x.High,
			Low:   x.Low,
			Close: x.Close,
		})
	}

	c.JSON(http.StatusOK, dto.HistoryResponse{
		Symbol: symbol,
		Period: period,
		Data:   data,
	})
}
