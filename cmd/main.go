package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/BillGoldenWater/BiliBiliRecNotifier/internal/config"
	"github.com/BillGoldenWater/BiliBiliRecNotifier/internal/domain"
	"github.com/BillGoldenWater/BiliBiliRecNotifier/internal/handler"
	"github.com/BillGoldenWater/BiliBiliRecNotifier/internal/notify"
	"github.com/BillGoldenWater/BiliBiliRecNotifier/internal/service"
	pkglog "github.com/BillGoldenWater/BiliBiliRecNotifier/pkg/log"
)

const shutdownTimeout = 5 * time.Second

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		l := pkglog.L()
		l.Fatal().Err(err).Msg("failed to load config")
	}

	// Initialize structured logger
	pkglog.Init(pkglog.Config{
		Level:       cfg.Log.Level,
		Pretty:      cfg.Log.Level == "debug",
		ServiceName: "bilibilirec-notifier",
	})
	logger := pkglog.L()

	// Room filter, built once and read-only afterwards
	filter := domain.ParseRoomFilter(cfg.Filter.RoomIDs)
	if filter != nil {
		logger.Info().Int("rooms", len(filter)).Msg("room filter enabled")
	}

	// Initialize service
	eventService := service.NewEventService(notify.Desktop(), filter)

	// Initialize HTTP handler
	httpHandler := handler.NewHandler(eventService)

	// Setup Gin router
	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(pkglog.GinMiddleware(logger))

	httpHandler.RegisterRoutes(r)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	// SIGINT/SIGTERM cancels the context; the server then drains in-flight
	// requests before exiting.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info().Str("addr", addr).Msg("webhook receiver listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info().Msg("shutting down, draining in-flight requests")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Fatal().Err(err).Msg("server error")
	}
	logger.Info().Msg("server exited")
}
