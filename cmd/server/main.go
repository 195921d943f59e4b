package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"augebit/internal/api"
	"augebit/internal/config"
	"augebit/internal/db"
	"augebit/internal/service"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env is fine; the environment may already be populated.
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger.Info("config loaded",
		"listen_addr", cfg.ListenAddr(),
		"db_driver", cfg.DBDriver,
		"max_open_conns", cfg.MaxOpenConns,
		"email_enabled", cfg.EmailEnabled(),
		"sms_enabled", cfg.SMSEnabled(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := db.Open(db.Options{
		Driver:       cfg.DBDriver,
		DSN:          cfg.DatabaseURL,
		MaxOpenConns: cfg.MaxOpenConns,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := pool.Close(); err != nil {
			logger.Error("error closing database", "error", err)
		}
	}()

	// The server keeps running when the check fails; each request reports
	// the connection error itself.
	checkCtx, cancelCheck := context.WithTimeout(ctx, cfg.AcquireTimeout)
	checkErr := db.CheckConnection(checkCtx, pool, logger)
	cancelCheck()

	if cfg.AutoMigrate {
		if checkErr != nil {
			logger.Warn("skipping migrations, database unreachable")
		} else {
			if err := db.RunMigrations(ctx, pool, cfg.DBDriver); err != nil {
				return err
			}
			logger.Info("migrations complete")
		}
	}

	catalog, err := service.LoadProfessionalCatalog(cfg.ProfessionalsFile)
	if err != nil {
		return err
	}

	var notifiers service.Notifiers
	if cfg.EmailEnabled() {
		notifiers = append(notifiers, service.NewEmailNotifier(cfg.SendGridAPIKey, cfg.SendGridFromEmail, cfg.SendGridFromName))
	}
	if cfg.SMSEnabled() {
		notifiers = append(notifiers, service.NewSMSNotifier(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber))
	}

	appointments := service.NewAppointmentService(cfg.DBDriver, notifiers, logger)

	handler := api.NewHandler(
		pool,
		service.NewEmployeeService(cfg.DBDriver),
		appointments,
		catalog,
		api.HandlerConfig{
			AcquireTimeout: cfg.AcquireTimeout,
			QueryTimeout:   cfg.QueryTimeout,
		},
		logger,
	)

	loginLimiter := api.NewRateLimiter(cfg.LoginRateLimitRPS, cfg.LoginRateBurst)
	if loginLimiter != nil {
		go loginLimiter.Run(ctx, time.Minute, 3*time.Minute)
	}

	router := api.NewRouter(handler, api.RouterOptions{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		LoginLimiter:   loginLimiter,
	})

	scheduler := cron.New(cron.WithChain(
		cron.Recover(cron.PrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelError))),
	))
	if cfg.PoolHealthSchedule != "" {
		if _, err := service.NewJobService(pool, logger).Schedule(scheduler, cfg.PoolHealthSchedule); err != nil {
			return err
		}
	}
	scheduler.Start()
	defer scheduler.Stop()

	srv := &http.Server{
		Addr:              cfg.ListenAddr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		// Covers a full acquire timeout plus query timeout.
		WriteTimeout: cfg.AcquireTimeout + cfg.QueryTimeout + 5*time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case err := <-serveErr:
		if err != nil {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if err := appointments.Wait(shutdownCtx); err != nil {
		logger.Warn("pending booking confirmations abandoned", "error", err)
	}

	logger.Info("shutdown complete")
	return nil
}
