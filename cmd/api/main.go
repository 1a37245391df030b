package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Ms-Rodri1k/Projeto-integrador/internal/app"
	"github.com/Ms-Rodri1k/Projeto-integrador/internal/config"
	"github.com/Ms-Rodri1k/Projeto-integrador/internal/httpx"
	kafkax "github.com/Ms-Rodri1k/Projeto-integrador/internal/kafka"
	"github.com/Ms-Rodri1k/Projeto-integrador/internal/logger"
	"github.com/Ms-Rodri1k/Projeto-integrador/internal/postgres"
	"github.com/Ms-Rodri1k/Projeto-integrador/internal/redisx"
	"github.com/Ms-Rodri1k/Projeto-integrador/internal/shop"
	"github.com/Ms-Rodri1k/Projeto-integrador/internal/store"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	log, err := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, Output: cfg.LogOutput})
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Redis is shared by the redis store backend and the order status endpoint.
	var rdb *redis.Client
	if cfg.StoreBackend == "redis" || len(cfg.KafkaBrokers) > 0 {
		rdb = redisx.New(cfg.RedisAddr)
		defer rdb.Close()
	}

	backend, closeBackend, err := openBackend(ctx, cfg, rdb)
	if err != nil {
		log.Fatal("store backend", zap.String("backend", cfg.StoreBackend), zap.Error(err))
	}
	defer closeBackend()
	st := store.New(backend, store.WithTimeout(cfg.StoreTimeout), store.WithLogger(log.Named("store")))

	// Order events are optional: without brokers the storefront runs standalone.
	var (
		events app.OrderEvents
		prod   *kafkax.Producer
	)
	if len(cfg.KafkaBrokers) > 0 {
		prod = kafkax.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic, 1024, log)
		prod.Start(ctx)
		events = &kafkax.OrderPublisher{Producer: prod, Service: cfg.ServiceName}
	}

	sessions := httpx.NewSessions(func(id string) *app.Session {
		return app.NewSession(id, app.Options{
			Catalog: shop.DefaultCatalog,
			Store:   st.Scoped(id),
			Events:  events,
			Logger:  log.Named("session"),
		})
	})
	go sessions.RunSweeper(ctx, time.Minute, cfg.SessionTTL)

	router := httpx.NewRouter()
	h := &httpx.StorefrontHandler{
		Sessions:  sessions,
		StaticDir: cfg.StaticDir,
		Log:       log.Named("http"),
	}
	if rdb != nil {
		h.Status = rdb
	}
	h.Register(router)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		log.Info("HTTP listening", zap.String("addr", cfg.HTTPAddr), zap.String("store", cfg.StoreBackend))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("listen", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Info("shutting down")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
	if prod != nil {
		prod.Close()
		prod.WaitClosed()
	}
	cancel()
}

func openBackend(ctx context.Context, cfg config.Config, rdb *redis.Client) (store.Backend, func(), error) {
	noop := func() {}
	switch cfg.StoreBackend {
	case "", "memory":
		return store.NewMemory(), noop, nil
	case "redis":
		return store.NewRedis(rdb, 0), noop, nil
	case "postgres":
		db, err := postgres.Connect(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("postgres connect: %w", err)
		}
		if err := postgres.EnsureSchema(ctx, db); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("postgres schema: %w", err)
		}
		return &store.Postgres{DB: db}, db.Close, nil
	case "dynamodb":
		ddb, err := store.NewDynamoClient(ctx, store.DynamoOptions{
			Region:    cfg.DynamoRegion,
			Endpoint:  cfg.DynamoEndpoint,
			AccessKey: cfg.DynamoAccessKey,
			SecretKey: cfg.DynamoSecretKey,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("dynamodb config: %w", err)
		}
		return store.NewDynamo(ddb, cfg.DynamoTable), noop, nil
	case "sqlite":
		s, err := store.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("sqlite open: %w", err)
		}
		return s, func() { _ = s.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}
