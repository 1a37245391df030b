package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Ms-Rodri1k/Projeto-integrador/internal/config"
	kafkax "github.com/Ms-Rodri1k/Projeto-integrador/internal/kafka"
	"github.com/Ms-Rodri1k/Projeto-integrador/internal/logger"
	"github.com/Ms-Rodri1k/Projeto-integrador/internal/redisx"
	"github.com/Ms-Rodri1k/Projeto-integrador/internal/tracker"
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

	if len(cfg.KafkaBrokers) == 0 {
		log.Fatal("PD_KAFKA_BROKERS is required")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	svc := &tracker.Service{
		Redis:       rdb,
		ServiceName: cfg.ServiceName + "-tracker",
		Log:         log.Named("tracker"),
	}

	cons := kafkax.NewConsumer(cfg.KafkaBrokers, cfg.KafkaGroup, cfg.KafkaTopic, cfg.KafkaWorkers, log)

	go func() {
		log.Info("tracker consumer started",
			zap.String("group", cfg.KafkaGroup),
			zap.String("topic", cfg.KafkaTopic),
			zap.Int("workers", cfg.KafkaWorkers))
		if err := cons.Start(ctx, svc.HandleOrderEvent); err != nil {
			log.Error("consumer exit", zap.Error(err))
			cancel()
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sig:
	case <-ctx.Done():
	}
	log.Info("shutting down consumer")
	cancel()
	time.Sleep(500 * time.Millisecond)
}
