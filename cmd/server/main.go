package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/royalbikes/showroom-backend/internal/auth"
	"github.com/royalbikes/showroom-backend/internal/config"
	"github.com/royalbikes/showroom-backend/internal/repository/mongodb"
	"github.com/royalbikes/showroom-backend/internal/repository/sheets"
	"github.com/royalbikes/showroom-backend/internal/scheduler"
	"github.com/royalbikes/showroom-backend/internal/server/handlers"
	"github.com/royalbikes/showroom-backend/internal/server/router"
	catalogsvc "github.com/royalbikes/showroom-backend/internal/service/catalog"
	dashboardsvc "github.com/royalbikes/showroom-backend/internal/service/dashboard"
	quotationsvc "github.com/royalbikes/showroom-backend/internal/service/quotation"
	"github.com/royalbikes/showroom-backend/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	mongoRepo, err := mongodb.New(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
	if err != nil {
		baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
	}
	defer func() {
		if err := mongoRepo.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close mongodb connection", zap.Error(err))
		}
	}()

	var exporter sheets.Exporter
	if cfg.SheetsEnabled() {
		sheetExporter, err := sheets.NewGoogleSheetExporter(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets exporter", zap.Error(err))
		}
		exporter = sheetExporter
		baseLogger.Info("google sheets summary export enabled")
	}

	authSvc := auth.NewService(cfg.Auth)
	catalogSvc := catalogsvc.NewService(mongoRepo, baseLogger.Named("svc.catalog"))
	quotationSvc := quotationsvc.NewService(mongoRepo, mongoRepo, catalogSvc, cfg.Billing.BillPrefix, baseLogger.Named("svc.quotation"))
	dashboardSvc := dashboardsvc.NewService(mongoRepo, mongoRepo, mongoRepo, exporter, baseLogger.Named("svc.dashboard"))

	engine := router.New(router.Handlers{
		Auth:       handlers.NewAuthHandler(authSvc, mongoRepo, baseLogger.Named("handlers.auth")),
		Vehicle:    handlers.NewVehicleHandler(catalogSvc, baseLogger.Named("handlers.vehicle")),
		Billing:    handlers.NewBillingHandler(quotationSvc, baseLogger.Named("handlers.billing")),
		Booked:     handlers.NewBookedHandler(quotationSvc, baseLogger.Named("handlers.booked")),
		Dashboard:  handlers.NewDashboardHandler(dashboardSvc, baseLogger.Named("handlers.dashboard")),
		Permission: handlers.NewPermissionHandler(mongoRepo, baseLogger.Named("handlers.permission")),
	}, authSvc, baseLogger.Named("router"))

	sched, err := scheduler.NewScheduler(*cfg, dashboardSvc, baseLogger.Named("scheduler"))
	if err != nil {
		baseLogger.Fatal("failed to init scheduler", zap.Error(err))
	}
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
