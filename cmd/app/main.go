package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"loadbook/cmd"
	httpin "loadbook/internal/adapters/in/http"
	"loadbook/internal/adapters/out/postgres"

	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := openDatabase(configs)
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	if configs.SeedSampleData {
		if _, err = app.CreateSeeder().Run(ctx); err != nil {
			log.Fatalf("Error seeding sample data: %v", err)
		}
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	if err = startWebServer(ctx, app, configs, logger); err != nil {
		log.Errorf("Web server stopped: %v", err)
	}
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	gormDB, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, err
	}
	if err = postgres.Migrate(gormDB); err != nil {
		return nil, err
	}
	if err = postgres.RegisterErrorTranslation(gormDB); err != nil {
		return nil, err
	}
	return gormDB, nil
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) error {
	doc, err := httpin.LoadOpenAPI(ctx)
	if err != nil {
		return err
	}

	e, err := httpin.NewRouter(app.CreateServer(), httpin.RouterConfig{
		RateLimit: configs.RateLimitRPS,
		Logger:    logger,
		OpenAPI:   doc,
	})
	if err != nil {
		return err
	}
	e.Logger.SetLevel(log.INFO)

	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort))
	}()

	select {
	case err = <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
