package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"adminboard/internal/config"
	"adminboard/internal/db"
	"adminboard/internal/httpserver"
	"adminboard/internal/logging"
	"adminboard/internal/metrics"
	customerrepo "adminboard/internal/repository/customer"
	employeerepo "adminboard/internal/repository/employee"
	orderrepo "adminboard/internal/repository/order"
	productrepo "adminboard/internal/repository/product"
	statsrepo "adminboard/internal/repository/stats"
	customersvc "adminboard/internal/service/customer"
	employeesvc "adminboard/internal/service/employee"
	ordersvc "adminboard/internal/service/order"
	productsvc "adminboard/internal/service/product"
)

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		os.Stderr.WriteString("load config: " + err.Error() + "\n")
		os.Exit(1)
	}
	logger := logging.New(cfg.AppName, cfg.LogLevel, cfg.LogPretty)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBDSN, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("connect to db")
	}
	defer dbpool.Close()

	customerRepo := customerrepo.NewPostgres(dbpool, logger)
	customerService := customersvc.New(customerRepo)
	employeeRepo := employeerepo.NewPostgres(dbpool, logger)
	employeeService := employeesvc.New(employeeRepo)
	productRepo := productrepo.NewPostgres(dbpool, logger)
	productService := productsvc.New(productRepo)
	orderRepo := orderrepo.NewPostgres(dbpool, logger)
	orderService := ordersvc.New(orderRepo, productRepo)
	statsRepo := statsrepo.NewPostgres(dbpool, logger)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		CustomerSvc: customerService,
		EmployeeSvc: employeeService,
		ProductSvc:  productService,
		OrderSvc:    orderService,
		StatsRepo:   statsRepo,
		Metrics:     metrics.NewServerMetrics(cfg.AppName),
	}, httpserver.Options{CORSOrigins: cfg.Origins()})
	if err != nil {
		logger.Fatal().Err(err).Msg("init server")
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.HTTPAddr).Msg("starting http server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Info().Str("signal", sig.String()).Msg("shutting down")
	case err := <-serverErr:
		logger.Error().Err(err).Msg("server error")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	} else {
		logger.Info().Msg("server stopped")
	}
}
