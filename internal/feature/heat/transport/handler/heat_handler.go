// Package handler provides the HTTP handlers for the heat feature.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HeatUsecase defines the usecase interface consumed by this handler.
type HeatUsecase interface {
	Count(ctx context.Context) (int64, error)
	Increment(ctx context.Context) (int64, error)
}

// HeatHandler serves the daily visit counter endpoints.
type HeatHandler struct {
	uc HeatUsecase
}

// NewHeatHandler creates a new HeatHandler with the given usecase.
func NewHeatHandler(uc HeatUsecase) *HeatHandler {
	return &HeatHandler{uc: uc}
}

// GetHeatHandler returns today's visit count.
//
// Endpoint:
// GET /heat
func (h *HeatHandler) GetHeatHandler(c *gin.Context) {
	n, err := h.uc.Count(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": n})
}

// PostHeatHandler records one visit and returns the new count.
//
// Endpoint:
// POST /heat
func (h *HeatHandler) PostHeatHandler(c *gin.Context) {
	n, err := h.uc.Increment(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": n})
}
