package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/airseating/config"
	"github.com/Domenick1991/airseating/internal/bootstrap"
	"github.com/Domenick1991/airseating/internal/cache"
	"github.com/Domenick1991/airseating/internal/domain"
	"github.com/Domenick1991/airseating/internal/kafka"
	"github.com/Domenick1991/airseating/internal/logger"
	"github.com/Domenick1991/airseating/internal/printer"
	"github.com/Domenick1991/airseating/internal/repository"
	"github.com/Domenick1991/airseating/internal/service/booking"
	"github.com/Domenick1991/airseating/internal/service/flights"
	"github.com/joho/godotenv"
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

	bookingsPath := cfg.Bookings.Path
	if len(os.Args) > 1 {
		bookingsPath = os.Args[1]
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logs := logger.New(cfg.Log.Level, os.Stderr)

	flightRepo := repository.NewFlightRepository()
	bookingOpts := []booking.BookingServiceOption{booking.WithLogger(logs)}
	flightOpts := []flights.FlightServiceOption{flights.WithLogger(logs)}

	if cfg.Cards.Cache {
		redisCache := cache.NewRedisCache(cfg.Redis, cfg.Cards.CacheTTLDuration())
		defer redisCache.Close()
		if err := redisCache.Ping(ctx); err != nil {
			log.Fatalf("connect redis: %v", err)
		}
		bookingOpts = append(bookingOpts, booking.WithCardCache(redisCache))
		flightOpts = append(flightOpts, flights.WithCardCache(redisCache))
	}

	if cfg.Cards.Publish {
		producer := kafka.NewProducer(cfg.Kafka.Brokers, logs)
		defer producer.Close()
		if err := producer.CheckConnection(ctx); err != nil {
			log.Fatalf("connect kafka: %v", err)
		}
		flightOpts = append(flightOpts, flights.WithProducer(producer.WithRetry(cfg.Cards.PublishRetry), cfg.Kafka.CardsTopic))
	}

	runner := bootstrap.Runner{
		Bookings: booking.NewBookingService(flightRepo, domain.DefaultRegistry(), bookingOpts...),
		Flights:  flights.NewFlightService(flightRepo, flightOpts...),
		Render:   printer.NewConsolePrinter(os.Stdout).Render,
		Logger:   logs,
	}

	report, err := bootstrap.Run(ctx, cfg, bookingsPath, runner)
	if err != nil {
		log.Fatalf("run: %v", err)
	}
	logs.Info("done", "batch_id", report.BatchID, "assigned", len(report.Assignments), "rejected", len(report.Rejections))
}
