package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/cafetec/cafetec-api/internal/config"
	"github.com/cafetec/cafetec-api/internal/es"
	"github.com/cafetec/cafetec-api/internal/handlers"
	"github.com/cafetec/cafetec-api/internal/logging"
	"github.com/cafetec/cafetec-api/internal/middleware/loggingmw"
	"github.com/cafetec/cafetec-api/internal/mykafka"
	"github.com/cafetec/cafetec-api/internal/service/orders"
	httpserver "github.com/cafetec/cafetec-api/internal/transport/http"
)

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("error de configuración: %v", err)
	}

	logger := logging.New(configuration.LOG_LEVEL)
	slog.SetDefault(logger)

	db, err := config.InitDB(configuration)
	if err != nil {
		log.Fatalf("error de inicialización de la BD: %v", err)
	}

	var prod *mykafka.Producer
	if configuration.KAFKA_ADDRESS != "" {
		prod = mykafka.NewProducer(configuration.KAFKA_ADDRESS)
	} else {
		logger.Warn("KAFKA_ADDRESS not set, events disabled")
	}

	var esClient *elasticsearch.Client
	if configuration.ES_URL != "" {
		esClient, err = es.NewClient(configuration, logger)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		logger.Warn("ES_URL not set, search disabled")
	}

	jwtSecret := []byte(configuration.JWT_SECRET)
	orderSvc := &orders.Service{DB: db}

	e := echo.New()
	e.HideBanner = true
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID(), loggingmw.RequestLogger(logger))

	deps := httpserver.Deps{
		Menu:        &handlers.MenuHandler{DB: db},
		Orders:      &handlers.OrderHandler{Svc: orderSvc, Producer: prod},
		Comments:    &handlers.CommentHandler{DB: db, Producer: prod},
		Auth:        &handlers.AuthHandler{DB: db, JWTSecret: jwtSecret},
		AdminOrders: &handlers.AdminOrderHandler{Svc: orderSvc, Producer: prod},
		Products:    &handlers.ProductHandler{DB: db, Producer: prod, ES: esClient, Index: es.ProductIndex},
		Search:      &handlers.SearchHandler{ES: esClient, Index: es.ProductIndex},
		JWTSecret:   jwtSecret,
	}

	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         ":" + configuration.PORT,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()
	logger.Info("server started", "port", configuration.PORT)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logger.Error("db close error", "error", err)
		}
	} else {
		logger.Error("db handle error", "error", err)
	}

	if err := prod.Close(); err != nil {
		logger.Error("kafka close error", "error", err)
	}

	logger.Info("shutdown complete")
}
