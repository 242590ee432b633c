// Package main boots the Bike Store HTTP server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fairyhunter13/bike-store-service/internal/config"
	httpapi "github.com/fairyhunter13/bike-store-service/internal/http"
	"github.com/fairyhunter13/bike-store-service/internal/obs"
	"github.com/fairyhunter13/bike-store-service/internal/service"
	"github.com/fairyhunter13/bike-store-service/internal/store"
)

func buildRepositories(cfg config.Config) (store.ProductRepository, store.OrderRepository, func(), error) {
	if cfg.DatabaseURL == "" {
		obs.Logger.Warn("no_database_url", "msg", "DATABASE_URL empty, using in-memory stores")
		return store.NewMemoryProductRepository(), store.NewMemoryOrderRepository(), func() {}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()
	client, err := mongo.Connect(ctx, mongoopts.Client().ApplyURI(cfg.DatabaseURL))
	if err != nil {
		return nil, nil, nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, nil, nil, err
	}
	db := client.Database(cfg.DatabaseName)

	products := store.NewMongoProductRepository(db)
	if err := products.EnsureIndexes(ctx); err != nil {
		return nil, nil, nil, err
	}
	orders := store.NewMongoOrderRepository(db)

	disconnect := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			obs.Logger.Error("mongo_disconnect_error", "error", err)
		}
	}
	return products, orders, disconnect, nil
}

func main() {
	cfg := config.Load()
	obs.InitLogger()
	obs.Logger.Info("service_starting")

	products, orders, closeStore, err := buildRepositories(cfg)
	if err != nil {
		obs.Logger.Error("store_init_error", "error", err)
		os.Exit(1)
	}
	defer closeStore()
	obs.Logger.Info("store_ready", "mongo", cfg.DatabaseURL != "")

	productSvc := service.NewProductService(products)
	orderSvc := service.NewOrderService(products, orders)

	app := httpapi.NewApp(cfg, productSvc, orderSvc)
	mux := httpapi.NewRouter(app)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		obs.Logger.Info("http_listen", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			obs.Logger.Error("http_server_error", "error", err)
			os.Exit(1)
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	s := <-sigc
	obs.Logger.Info("shutdown_signal", "signal", s.String())

	ctxSrv, cancelSrv := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancelSrv()
	if err := srv.Shutdown(ctxSrv); err != nil {
		obs.Logger.Error("http_shutdown_error", "error", err)
	}
	obs.Logger.Info("service_stopped")
}
