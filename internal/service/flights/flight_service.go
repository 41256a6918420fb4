package flights

import (
	"context"
	"log/slog"
	"time"

	"github.com/Domenick1991/airseating/internal/domain"
	"github.com/Domenick1991/airseating/internal/kafka"
	"github.com/Domenick1991/airseating/internal/repository"
)

type FlightUseCase interface {
	List(ctx context.Context) ([]*domain.Flight, error)
	GetByNumber(ctx context.Context, number string) (*domain.Flight, error)
	BoardingCards(ctx context.Context, number string) ([]domain.BoardingCard, error)
	PublishBoardingCards(ctx context.Context, number, batchID string) (int, error)
}

type CardCache interface {
	GetCards(ctx context.Context, flightNumber string) ([]domain.BoardingCard, error)
	SetCards(ctx context.Context, flightNumber string, cards []domain.BoardingCard) error
	InvalidateCards(ctx context.Context, flightNumber string) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type FlightService struct {
	repo       repository.FlightRepository
	cache      CardCache
	producer   Producer
	cardsTopic string
	logger     *slog.Logger
	now        func() time.Time
}

type FlightServiceOption func(*FlightService)

func WithCardCache(cache CardCache) FlightServiceOption {
	return func(s *FlightService) {
		s.cache = cache
	}
}

func WithProducer(producer Producer, cardsTopic string) FlightServiceOption {
	return func(s *FlightService) {
		s.producer = producer
		s.cardsTopic = cardsTopic
	}
}

func WithLogger(logger *slog.Logger) FlightServiceOption {
	return func(s *FlightService) {
		s.logger = logger
	}
}

func NewFlightService(repo repository.FlightRepository, opts ...FlightServiceOption) *FlightService {
	service := &FlightService{
		repo:   repo,
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *FlightService) List(ctx context.Context) ([]*domain.Flight, error) {
	return s.repo.List(ctx)
}

func (s *FlightService) GetByNumber(ctx context.Context, number string) (*domain.Flight, error) {
	return s.repo.GetByNumber(ctx, number)
}

// BoardingCards serves cards from the cache when it has them.
func (s *FlightService) BoardingCards(ctx context.Context, number string) ([]domain.BoardingCard, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetCards(ctx, number); err == nil && cached != nil {
			return cached, nil
		}
	}

	flight, err := s.repo.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}

	cards := flight.BoardingCards()
	if s.cache != nil {
		if err := s.cache.SetCards(ctx, number, cards); err != nil {
			s.logger.Warn("card cache write failed", "flight", number, "error", err)
		}
	}
	return cards, nil
}

// PublishBoardingCards sends one event per card and returns how many were sent.
func (s *FlightService) PublishBoardingCards(ctx context.Context, number, batchID string) (int, error) {
	if s.producer == nil || s.cardsTopic == "" {
		return 0, nil
	}

	cards, err := s.BoardingCards(ctx, number)
	if err != nil {
		return 0, err
	}

	issuedAt := s.now()
	for i, card := range cards {
		event := kafka.CardEvent{BatchID: batchID, Card: card, IssuedAt: issuedAt}
		if err := s.producer.Publish(ctx, s.cardsTopic, kafka.CardKey(card), event); err != nil {
			return i, err
		}
	}

	s.logger.Info("boarding cards published", "flight", number, "count", len(cards), "topic", s.cardsTopic)
	return len(cards), nil
}

var _ FlightUseCase = (*FlightService)(nil)
