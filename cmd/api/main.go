package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/appointment-api/internal/config"
	dbpkg "github.com/BruksfildServices01/appointment-api/internal/db"
	domain "github.com/BruksfildServices01/appointment-api/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-api/internal/domain/user"
	infraRepo "github.com/BruksfildServices01/appointment-api/internal/infra/repository"
	"github.com/BruksfildServices01/appointment-api/internal/logger"
	"github.com/BruksfildServices01/appointment-api/internal/metrics"
	"github.com/BruksfildServices01/appointment-api/internal/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := logger.New(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	appointments, users, closeStores, err := newStores(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStores()

	if cfg.LogFormat == "json" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Deps{
		Config:       cfg,
		Logger:       log,
		Metrics:      metrics.NewCollector(prometheus.DefaultRegisterer, prometheus.DefaultGatherer),
		Appointments: appointments,
		Users:        users,
	})

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: r,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server running", zap.String("addr", cfg.Addr()), zap.String("store", cfg.StoreDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("listening: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down", zap.Duration("timeout", cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

// newStores builds the repositories for cfg.StoreDriver. Users live in
// postgres for both the postgres and redis drivers.
func newStores(
	ctx context.Context,
	cfg *config.Config,
	log *zap.Logger,
) (domain.Repository, user.Repository, func(), error) {

	if cfg.StoreDriver == config.StoreMemory {
		log.Warn("using in-memory store, data is lost on restart")
		return infraRepo.NewAppointmentMemoryRepository(), infraRepo.NewUserMemoryRepository(), func() {}, nil
	}

	db, err := dbpkg.NewDB(cfg, log)
	if err != nil {
		return nil, nil, nil, err
	}
	users := infraRepo.NewUserGormRepository(db)

	closeDB := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}

	if cfg.StoreDriver == config.StorePostgres {
		return infraRepo.NewAppointmentGormRepository(db), users, closeDB, nil
	}

	rdb, err := dbpkg.NewRedis(ctx, cfg, log)
	if err != nil {
		closeDB()
		return nil, nil, nil, err
	}

	closeAll := func() {
		_ = rdb.Close()
		closeDB()
	}
	return infraRepo.NewAppointmentRedisRepository(rdb, ""), users, closeAll, nil
}
