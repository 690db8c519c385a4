package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"emaxplatform/config"
	"emaxplatform/internal/application"
	"emaxplatform/internal/infrastructure/cache"
	"emaxplatform/internal/infrastructure/database"
	"emaxplatform/internal/infrastructure/repository"
	"emaxplatform/internal/infrastructure/seed"
	"emaxplatform/internal/metrics"
	"emaxplatform/internal/middleware"
	grpc_server "emaxplatform/internal/transport/grpc"
	handlers "emaxplatform/internal/transport/http"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		slog.Error("config load failed", "error", err)
		os.Exit(1)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("service stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	db, err := database.Open(ctx, database.Options{
		Driver:      cfg.DBDriver,
		DSN:         cfg.DSN(),
		MaxAttempts: 5,
		Log:         log,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Warn("database close failed", "error", err)
		}
	}()

	if err := database.AutoMigrateTables(ctx, db, repository.Models()...); err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	courseRepo := repository.NewCourseRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	applicationRepo := repository.NewTeamApplicationRepository(db)

	if cfg.SeedOnStart {
		if err := seed.NewSeeder(courseRepo, enrollmentRepo, applicationRepo, log).Run(ctx); err != nil {
			return err
		}
	}

	var (
		courses application.CourseRepository = courseRepo
		rdb     redis.Cmdable
	)
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer client.Close()
		if err := client.Ping(ctx).Err(); err != nil {
			log.Warn("redis unreachable, cache and rate limiting will fail open", "addr", cfg.RedisAddr, "error", err)
		}
		rdb = client
		courses = cache.NewCourseCache(courseRepo, client, cfg.CacheTTL, log, m)
	} else {
		log.Info("redis disabled, running without course cache and rate limiting")
	}

	pinger := database.NewPinger(db)
	router := handlers.NewRouter(handlers.Handlers{
		Courses: handlers.NewCourseHandler(application.NewCourseService(courses, m), log),
		CourseEnrollments: handlers.NewCourseEnrollmentHandler(
			application.NewCourseEnrollmentService(repository.NewCourseEnrollmentRepository(db), courses, m), log),
		Enrollments:      handlers.NewEnrollmentHandler(application.NewEnrollmentService(enrollmentRepo, m), log),
		TeamApplications: handlers.NewTeamApplicationHandler(application.NewTeamApplicationService(applicationRepo, m), log),
		Health:           handlers.NewHealthHandler(pinger, log),
	}, middleware.NewRateLimiter(rdb, log), handlers.RouterOptions{
		AllowedOrigins: cfg.Origins(),
		SubmitLimit:    cfg.SubmissionRateLimit,
		SubmitWindow:   cfg.SubmissionRateWindow,
		Metrics:        promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		Observer:       m,
	}, log)

	httpServer := &http.Server{
		Addr:              cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	healthReporter := grpc_server.NewHealthReporter(pinger, 15*time.Second, log)
	grpcServer := grpc_server.NewServer(healthReporter)
	lis, err := net.Listen("tcp", cfg.GRPCPort)
	if err != nil {
		return err
	}

	errCh := make(chan error, 2)
	go healthReporter.Run(ctx)
	go func() {
		log.Info("grpc server listening", "addr", cfg.GRPCPort)
		if err := grpcServer.Serve(lis); err != nil {
			errCh <- err
		}
	}()
	go func() {
		log.Info("http server listening", "addr", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info("shutting down")
	case err = <-errCh:
		log.Error("server failed", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if shutdownErr := httpServer.Shutdown(shutdownCtx); shutdownErr != nil {
		log.Warn("http shutdown failed", "error", shutdownErr)
	}
	grpcServer.GracefulStop()
	return err
}
