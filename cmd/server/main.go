package main

import (
	"context"
	"log"
	"os"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"github.com/al2work/huangjin/internal/app/router"
	"github.com/al2work/huangjin/internal/app/scheduler"
	heathandler "github.com/al2work/huangjin/internal/feature/heat/transport/handler"
	heatusecase "github.com/al2work/huangjin/internal/feature/heat/usecase"
	"github.com/al2work/huangjin/internal/feature/history/adapters/sge"
	historyhandler "github.com/al2work/huangjin/internal/feature/history/transport/handler"
	historyusecase "github.com/al2work/huangjin/internal/feature/history/usecase"
	"github.com/al2work/huangjin/internal/feature/spot/adapters/eastmoney"
	spothandler "github.com/al2work/huangjin/internal/feature/spot/transport/handler"
	spotusecase "github.com/al2work/huangjin/internal/feature/spot/usecase"
	"github.com/al2work/huangjin/internal/platform/config"
	infrahttp "github.com/al2work/huangjin/internal/platform/http"
	infraredis "github.com/al2work/huangjin/internal/platform/redis"
	"github.com/al2work/huangjin/internal/platform/store"
	"github.com/al2work/huangjin/internal/shared/ratelimiter"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal(err)
	}

	// Redis (optional; heat counter degrades to in-process counting)
	var rdb *redisv9.Client
	if addr := cfg.RedisAddr(); addr != "" {
		if tmp, err := infraredis.NewRedisClient(addr, cfg.Redis.Password); err != nil {
			log.Println("[WARN] Redis unavailable. Heat counter runs in memory.")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					log.Println("[ERROR] Failed to close Redis client:", err)
				}
			}()
		}
	}

	// Upstream clients
	sgeCfg := sge.LoadConfig()
	benchmarkRepo := sge.NewSGEBenchmark(sgeCfg, infrahttp.NewHTTPClient(sgeCfg.Timeout))
	emCfg := eastmoney.LoadConfig()
	quoteRepo := eastmoney.NewEastmoneyQuote(emCfg, infrahttp.NewHTTPClient(emCfg.Timeout))

	// Store and usecases
	seriesStore := store.NewSeriesStore()
	historyUC := historyusecase.NewHistoryUsecase(benchmarkRepo, seriesStore, cfg.History.RefreshInterval, cfg.History.BaseDate)
	backfillUC := historyusecase.NewBackfillUsecase(historyUC, ratelimiter.NewRateLimiter(10, time.Minute))
	spotUC := spotusecase.NewSpotUsecase(quoteRepo, cfg.Spot.CacheTTL)
	heatUC := heatusecase.NewHeatUsecase(rdb, "")

	// Handlers
	historyH := historyhandler.NewHistoryHandler(historyUC)
	spotH := spothandler.NewSpotHandler(spotUC)
	heatH := heathandler.NewHeatHandler(heatUC)

	// Background cache warming
	sched := scheduler.NewScheduler(context.Background(), backfillUC, spotUC)
	if err := sched.Start(cfg.Schedule.SpotRefresh, cfg.Schedule.HistoryRefresh); err != nil {
		log.Fatal(err)
	}
	defer sched.Stop()

	r := router.NewRouter(historyH, spotH, heatH)
	if err := r.Run(cfg.Server.Addr); err != nil {
		log.Fatal(err)
	}
}
