package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/al2work/huangjin/internal/feature/history/domain/entity"
	"github.com/al2work/huangjin/internal/feature/history/transport/handler"
	"github.com/al2work/huangjin/internal/feature/history/usecase"
)

// mockHistoryUsecase is a mock implementation of the HistoryUsecase
// interface.
type mockHistoryUsecase struct {
	GetHistoryFunc func(ctx context.Context, symbol, period string) ([]entity.Candle, error)
}

func (m *mockHistoryUsecase) GetHistory(ctx context.Context, symbol, period string) ([]entity.Candle, error) {
	return m.GetHistoryFunc(ctx, symbol, period)
}

func TestHistoryHandler_GetHistoryHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		url            string
		mockGetHistory func(ctx context.Context, symbol, period string) ([]entity.Candle, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success: explicit symbol and period",
			url:  "/history?symbol=SILVER&period=1w",
			mockGetHistory: func(ctx context.Context, symbol, period string) ([]entity.Candle, error) {
				assert.Equal(t, "SILVER", symbol)
				assert.Equal(t, "1w", period)
				return []entity.Candle{
					{Time: "2026-01-05", Open: 0.1, High: 0.105, Low: 0.1, Close: 0.105},
				}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"symbol":"SILVER","period":"1w","data":[{"time":"2026-01-05","open":0.1,"high":0.105,"low":0.1,"close":0.105}]}`,
		},
		{
			name: "success: default parameter values",
			url:  "/history",
			mockGetHistory: func(ctx context.Context, symbol, period string) ([]entity.Candle, error) {
				assert.Equal(t, "GOLD", symbol)
				assert.Equal(t, "1m", period)
				return []entity.Candle{}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"symbol":"GOLD","period":"1m","data":[]}`,
		},
		{
			name: "success: unsupported symbol yields empty data",
			url:  "/history?symbol=COPPER&period=1w",
			mockGetHistory: func(ctx context.Context, symbol, period string) ([]entity.Candle, error) {
				return []entity.Candle{}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"symbol":"COPPER","period":"1w","data":[]}`,
		},
		{
			name: "error: no data available",
			url:  "/history?symbol=GOLD&period=1w",
			mockGetHistory: func(ctx context.Context, symbol, period string) ([]entity.Candle, error) {
				return nil, usecase.ErrNoData
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"no historical data available"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockHistoryUsecase{GetHistoryFunc: tt.mockGetHistory}
			h := handler.NewHistoryHandler(mock)

			r := gin.New()
			r.GET("/history", h.GetHistoryHandler)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, tt.url, nil)
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
