package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"golang.org/x/net/netutil"

	httpadapter "trustscore/internal/adapters/http"
	pg "trustscore/internal/adapters/postgres"
	rediscache "trustscore/internal/adapters/redis"
	"trustscore/internal/config"
	"trustscore/internal/metrics"
	"trustscore/internal/rules"
	"trustscore/internal/services/assessments"
	"trustscore/internal/services/reports"
	"trustscore/internal/workers/assessrunner"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	if err != nil {
		logger.Warn("config", "error", err)
	}
	if cfg.DatabaseURL == "" {
		return errors.New("DATABASE_URL is required for Postgres adapters")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rs, err := loadRules(cfg.RuleSetPath)
	if err != nil {
		return err
	}
	logger.Info("rule set loaded", "version", rs.Version, "rules", len(rs.Rules), "enabled", rs.Enabled())

	db, err := pg.Connect(ctx, cfg.DatabaseURL, int32(max(cfg.AssessWorkers*4, 10)))
	if err != nil {
		return err
	}
	defer db.Close()
	if cfg.MigrateOnStart {
		if err := db.Migrate(ctx, logger); err != nil {
			return err
		}
	}

	m := metrics.New()
	assessOpts := []assessments.Option{assessments.WithLogger(logger), assessments.WithMetrics(m)}
	reportOpts := []reports.Option{reports.WithLogger(logger), reports.WithMetrics(m)}

	redisClient, err := rediscache.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer redisClient.Close()
		cache := rediscache.NewReportCache(redisClient, cfg.CacheTTL)
		assessOpts = append(assessOpts, assessments.WithCache(cache))
		reportOpts = append(reportOpts, reports.WithCache(cache))
		logger.Info("report cache enabled", "ttl", cfg.CacheTTL)
	}

	assessor := assessments.New(db, db, db, rs, assessOpts...)
	reporter := reports.New(db, reportOpts...)
	srv := httpadapter.New(assessor, reporter, db, rs,
		httpadapter.WithLogger(logger),
		httpadapter.WithHealthCheck(db.Ping),
	)

	var wg sync.WaitGroup
	if cfg.AssessWorkers > 0 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assessrunner.Run(ctx, db, assessor, cfg.AssessWorkers, 500*time.Millisecond,
				assessrunner.WithLogger(logger), assessrunner.WithMetrics(m))
		}()
		logger.Info("assessment workers started", "count", cfg.AssessWorkers)
	}

	ln, err := net.Listen("tcp", cfg.ListenAddr)
	if err != nil {
		return err
	}
	if cfg.MaxConns > 0 {
		ln = netutil.LimitListener(ln, cfg.MaxConns)
	}
	httpSrv := &http.Server{
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.Serve(ln) }()
	logger.Info("listening", "addr", cfg.ListenAddr, "env", cfg.Env)

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("http shutdown", "error", err)
	}
	stop()
	wg.Wait()
	return nil
}

func loadRules(path string) (rules.RuleSet, error) {
	if path == "" {
		return rules.Default()
	}
	return rules.LoadFile(path)
}
