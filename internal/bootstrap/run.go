package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Domenick1991/airseating/config"
	"github.com/Domenick1991/airseating/internal/bookingfile"
	"github.com/Domenick1991/airseating/internal/domain"
	"github.com/Domenick1991/airseating/internal/service/booking"
	"github.com/Domenick1991/airseating/internal/service/flights"
)

type Runner struct {
	Bookings booking.BookingUseCase
	Flights  flights.FlightUseCase
	Render   domain.CardRenderer
	Logger   *slog.Logger
}

// Run imports the booking file at path, then renders and publishes the
// boarding cards of every flight in flight number order.
func Run(ctx context.Context, cfg *config.Config, path string, r Runner) (*booking.ImportReport, error) {
	records, err := bookingfile.ReadFile(path)
	if err != nil {
		return nil, err
	}
	r.Logger.Info("booking file read", "path", path, "records", len(records))

	report, err := r.Bookings.Import(ctx, records)
	if err != nil {
		return report, fmt.Errorf("import bookings: %w", err)
	}
	for _, rejection := range report.Rejections {
		r.Logger.Warn("booking skipped",
			"line", rejection.Line,
			"passenger", rejection.Record.Passenger,
			"flight", rejection.Record.FlightNumber,
			"reason", rejection.Err)
	}

	list, err := r.Flights.List(ctx)
	if err != nil {
		return report, fmt.Errorf("list flights: %w", err)
	}

	for _, flight := range list {
		number := flight.Number()

		if cfg.Cards.Print && r.Render != nil {
			cards, err := r.Flights.BoardingCards(ctx, number)
			if err != nil {
				return report, fmt.Errorf("boarding cards for %s: %w", number, err)
			}
			for _, card := range cards {
				r.Render(card)
			}
		}

		if cfg.Cards.Publish {
			sent, err := r.Flights.PublishBoardingCards(ctx, number, report.BatchID)
			if err != nil {
				return report, fmt.Errorf("publish boarding cards for %s: %w", number, err)
			}
			r.Logger.Debug("cards published", "flight", number, "count", sent)
		}

		r.Logger.Info("flight ready",
			"flight", number,
			"route", flight.Route().String(),
			"aircraft", flight.AircraftModel(),
			"free_seats", flight.NumAvailableSeats())
	}

	return report, nil
}
