// Package scheduler runs the background cache-warming jobs.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"

	historyusecase "github.com/al2work/huangjin/internal/feature/history/usecase"
	spotusecase "github.com/al2work/huangjin/internal/feature/spot/usecase"
)

// Scheduler keeps the spot snapshot and the history series fresh so
// request latency stays flat. The on-demand refresh inside the usecases
// remains the correctness path; losing these jobs only costs latency.
type Scheduler struct {
	cron     *cron.Cron
	backfill *historyusecase.BackfillUsecase
	spot     *spotusecase.SpotUsecase
	ctx      context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, backfill *historyusecase.BackfillUsecase, spot *spotusecase.SpotUsecase) *Scheduler {
	return &Scheduler{
		cron:     cron.New(),
		backfill: backfill,
		spot:     spot,
		ctx:      ctx,
	}
}

// Start registers the refresh jobs and starts the cron loop. The specs
// use robfig/cron syntax, e.g. "@every 30s".
func (s *Scheduler) Start(spotSpec, historySpec string) error {
	if _, err := s.cron.AddFunc(spotSpec, func() {
		if err := s.spot.Refresh(s.ctx); err != nil {
			slog.Warn("scheduled spot refresh failed", "error", err)
		}
	}); err != nil {
		return fmt.Errorf("register spot refresh: %w", err)
	}
	if _, err := s.cron.AddFunc(historySpec, func() {
		s.backfill.BackfillAll(s.ctx)
	}); err != nil {
		return fmt.Errorf("register history refresh: %w", err)
	}

	// Warm the history store before the first request hits it.
	go s.backfill.BackfillAll(s.ctx)

	s.cron.Start()
	return nil
}

// Stop stops the cron loop, waiting for running jobs.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
