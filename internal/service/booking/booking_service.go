package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Domenick1991/airseating/internal/domain"
	"github.com/Domenick1991/airseating/internal/repository"
	"github.com/google/uuid"
)

type BookingUseCase interface {
	Book(ctx context.Context, record domain.BookingRecord) (*Assignment, error)
	Import(ctx context.Context, records []domain.BookingRecord) (*ImportReport, error)
}

// CardCache is invalidated whenever a flight gains a passenger.
type CardCache interface {
	InvalidateCards(ctx context.Context, flightNumber string) error
}

type Assignment struct {
	Line         int    `json:"line,omitempty"`
	Passenger    string `json:"passenger"`
	FlightNumber string `json:"flight_number"`
	Seat         string `json:"seat"`
}

type Rejection struct {
	Line   int                  `json:"line"`
	Record domain.BookingRecord `json:"record"`
	Err    error                `json:"-"`
}

type ImportReport struct {
	BatchID     string       `json:"batch_id"`
	Assignments []Assignment `json:"assignments"`
	Rejections  []Rejection  `json:"rejections"`
}

type BookingService struct {
	flights  repository.FlightRepository
	registry *domain.Registry
	cache    CardCache
	logger   *slog.Logger
}

type BookingServiceOption func(*BookingService)

func WithCardCache(cache CardCache) BookingServiceOption {
	return func(s *BookingService) {
		s.cache = cache
	}
}

func WithLogger(logger *slog.Logger) BookingServiceOption {
	return func(s *BookingService) {
		s.logger = logger
	}
}

func NewBookingService(
	flights repository.FlightRepository,
	registry *domain.Registry,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		flights:  flights,
		registry: registry,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// rejectable errors skip one booking; anything else stops the import.
var rejectable = []error{
	domain.ErrRouteNotFound,
	domain.ErrRouteMismatch,
	domain.ErrUnrecognizedAircraftType,
	domain.ErrSeatCapacityExhausted,
	domain.ErrEmptyPassenger,
}

func IsRejection(err error) bool {
	for _, target := range rejectable {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// Import books every record in order, reporting and skipping the ones that
// cannot be placed.
func (s *BookingService) Import(ctx context.Context, records []domain.BookingRecord) (*ImportReport, error) {
	report := &ImportReport{BatchID: uuid.NewString()}
	logger := s.logger.With("batch_id", report.BatchID)

	for i, record := range records {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		line := i + 1
		assignment, err := s.Book(ctx, record)
		if err != nil {
			if !IsRejection(err) {
				return report, fmt.Errorf("line %d: %w", line, err)
			}
			logger.Warn("booking rejected",
				"line", line,
				"passenger", record.Passenger,
				"flight", record.FlightNumber,
				"error", err)
			report.Rejections = append(report.Rejections, Rejection{Line: line, Record: record, Err: err})
			continue
		}

		assignment.Line = line
		report.Assignments = append(report.Assignments, *assignment)
	}

	logger.Info("bookings imported",
		"assigned", len(report.Assignments),
		"rejected", len(report.Rejections))
	return report, nil
}

// Book places one passenger in the next free seat of the record's flight,
// opening the flight if it does not exist yet.
func (s *BookingService) Book(ctx context.Context, record domain.BookingRecord) (*Assignment, error) {
	passenger := strings.TrimSpace(record.Passenger)
	if passenger == "" {
		return nil, domain.ErrEmptyPassenger
	}
	number := strings.TrimSpace(record.FlightNumber)
	requested := record.Route()

	flight, err := s.flights.GetByNumber(ctx, number)
	switch {
	case errors.Is(err, repository.ErrFlightNotFound):
		flight, err = s.openFlight(ctx, number, record)
		if err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		established, ok := flight.FlightRoute()
		if !ok || established != requested {
			return nil, fmt.Errorf("%w: flight %s flies %s, booking asks for %s",
				domain.ErrRouteMismatch, number, flight.Route(), requested)
		}
	}

	seat, err := flight.NextFreeSeat()
	if err != nil {
		return nil, err
	}
	if err := flight.AllocateSeat(seat, passenger); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.InvalidateCards(ctx, number); err != nil {
			s.logger.Warn("card cache invalidation failed", "flight", number, "error", err)
		}
	}

	s.logger.Debug("seat allocated", "flight", number, "seat", seat, "passenger", passenger)
	return &Assignment{Passenger: passenger, FlightNumber: number, Seat: seat}, nil
}

func (s *BookingService) openFlight(ctx context.Context, number string, record domain.BookingRecord) (*domain.Flight, error) {
	aircraft, err := s.registry.NewAircraft(record.AircraftType, record.Registration)
	if err != nil {
		return nil, err
	}

	route, ok := aircraft.FlightRoute(record.Departure, record.Destination)
	if !ok {
		return nil, fmt.Errorf("%w: %s has no %s route", domain.ErrRouteNotFound, aircraft.Model(), record.Route())
	}

	flight, err := domain.NewFlight(number, aircraft, route)
	if err != nil {
		return nil, err
	}
	if err := s.flights.Add(ctx, flight); err != nil {
		return nil, err
	}

	s.logger.Info("flight opened",
		"flight", number,
		"route", route.String(),
		"aircraft", aircraft.Model(),
		"registration", aircraft.Registration())
	return flight, nil
}

var _ BookingUseCase = (*BookingService)(nil)
