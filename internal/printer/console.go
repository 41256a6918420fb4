package printer

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/Domenick1991/airseating/internal/domain"
)

// ConsolePrinter writes boxed boarding cards to w.
type ConsolePrinter struct {
	mu sync.Mutex
	w  io.Writer
}

func NewConsolePrinter(w io.Writer) *ConsolePrinter {
	return &ConsolePrinter{w: w}
}

// Render has the domain.CardRenderer signature.
func (p *ConsolePrinter) Render(card domain.BoardingCard) {
	_ = p.Print(card)
}

func (p *ConsolePrinter) Print(card domain.BoardingCard) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	_, err := io.WriteString(p.w, Format(card))
	return err
}

// Format lays a card out as
//
//	+------------------------------------------+
//	|                                          |
//	| Name: Ann  Flight: BA100  Seat: 2B  ...  |
//	|                                          |
//	+------------------------------------------+
func Format(card domain.BoardingCard) string {
	output := fmt.Sprintf("| Name: %s  Flight: %s  Seat: %s  Route: %s-%s  Aircraft: %s  |",
		card.Passenger, card.FlightNumber, card.Seat, card.Departure, card.Destination, card.AircraftModel)

	width := len([]rune(output)) - 2
	banner := "+" + strings.Repeat("-", width) + "+"
	border := "|" + strings.Repeat(" ", width) + "|"

	return strings.Join([]string{banner, border, output, border, banner}, "\n") + "\n\n"
}
