package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/airseating/config"
	"github.com/Domenick1991/airseating/internal/kafka"
	"github.com/Domenick1991/airseating/internal/logger"
	"github.com/Domenick1991/airseating/internal/printer"
	"github.com/joho/godotenv"
	kafkaGo "github.com/segmentio/kafka-go"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("load .env: %v", err)
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logs := logger.New(cfg.Log.Level, os.Stderr)

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.CardsTopic)
	defer consumer.Close()

	cards := printer.NewConsolePrinter(os.Stdout)

	logs.Info("waiting for boarding cards", "topic", cfg.Kafka.CardsTopic, "group_id", cfg.Kafka.GroupID)
	err = consumer.Consume(ctx, func(ctx context.Context, msg kafkaGo.Message) error {
		event, err := kafka.DecodeCardEvent(msg)
		if err != nil {
			logs.Warn("skipping card event", "offset", msg.Offset, "error", err)
			return nil
		}
		return cards.Print(event.Card)
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("consumer stopped: %v", err)
	}
	logs.Info("shutting down")
}
