// Package router wires the HTTP routes to their handlers.
package router

import (
	"github.com/gin-gonic/gin"

	heathandler "github.com/al2work/huangjin/internal/feature/heat/transport/handler"
	historyhandler "github.com/al2work/huangjin/internal/feature/history/transport/handler"
	spothandler "github.com/al2work/huangjin/internal/feature/spot/transport/handler"
	"github.com/al2work/huangjin/internal/platform/http/handler"
)

// NewRouter builds the gin engine with all public routes. There is no
// authentication layer; every endpoint is read-only apart from the
// visit counter.
func NewRouter(history *historyhandler.HistoryHandler, spot *spothandler.SpotHandler,
	heat *heathandler.HeatHandler) *gin.Engine {
	r := gin.Default()

	// Liveness probe
	r.GET("/healthz", handler.Health)

	// Historical candlesticks per symbol and period
	r.GET("/history", history.GetHistoryHandler)

	// Live spot quote snapshot
	r.GET("/prices", spot.GetPricesHandler)

	// Daily visit counter
	r.GET("/heat", heat.GetHeatHandler)
	r.POST("/heat", heat.PostHeatHandler)

	return r
}
